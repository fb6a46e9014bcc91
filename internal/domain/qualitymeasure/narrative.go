package qualitymeasure

import (
	"fmt"
	"time"
)

// relativeDate renders an exam date against a reference as e.g.
// "2 weeks ago on 10/31/25".
func relativeDate(examDate, ref time.Time) string {
	days := int(ref.Sub(examDate).Hours() / 24)

	var rel string
	switch {
	case days < 7:
		rel = fmt.Sprintf("%d day%s ago", days, plural(days))
	case days < 30:
		weeks := days / 7
		rel = fmt.Sprintf("%d week%s ago", weeks, plural(weeks))
	case days < 365:
		months := days / 30
		rel = fmt.Sprintf("%d month%s ago", months, plural(months))
	default:
		years := days / 365
		rel = fmt.Sprintf("%d year%s ago", years, plural(years))
	}
	return fmt.Sprintf("%s on %s", rel, shortDate(examDate))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// shortDate formats as M/D/YY without zero padding.
func shortDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%02d", int(t.Month()), t.Day(), t.Year()%100)
}

// longDate formats as "October 31, 2025".
func longDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// friendlyDuration renders a day count as e.g. "9 years", "2 months, 5 days"
// or "1 year, 3 months".
func friendlyDuration(days int) string {
	if days < 1 {
		return "invalid duration"
	}
	if days >= 365 {
		years, rem := days/365, days%365
		out := fmt.Sprintf("%d year%s", years, moreThanOne(years))
		if rem >= 30 {
			months := rem / 30
			out = fmt.Sprintf("%s, %d month%s", out, months, moreThanOne(months))
		}
		return out
	}
	if days >= 30 {
		months, rem := days/30, days%30
		out := fmt.Sprintf("%d month%s", months, moreThanOne(months))
		if rem > 0 {
			out = fmt.Sprintf("%s, %d day%s", out, rem, moreThanOne(rem))
		}
		return out
	}
	return fmt.Sprintf("%d days", days)
}

func moreThanOne(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
