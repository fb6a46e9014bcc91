package qualitymeasure

import (
	"testing"
	"time"
)

func TestRelativeDate(t *testing.T) {
	ref := time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		exam time.Time
		want string
	}{
		{"same day", ref, "0 days ago on 11/15/25"},
		{"one day", ref.AddDate(0, 0, -1), "1 day ago on 11/14/25"},
		{"six days", ref.AddDate(0, 0, -6), "6 days ago on 11/9/25"},
		{"two weeks", ref.AddDate(0, 0, -15), "2 weeks ago on 10/31/25"},
		{"one month", ref.AddDate(0, 0, -31), "1 month ago on 10/15/25"},
		{"eleven months", ref.AddDate(0, 0, -340), "11 months ago on 12/10/24"},
		{"one year", ref.AddDate(0, 0, -365), "1 year ago on 11/15/24"},
		{"three years", ref.AddDate(-3, 0, 0), "3 years ago on 11/15/22"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relativeDate(tt.exam, ref); got != tt.want {
				t.Errorf("relativeDate = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShortDate(t *testing.T) {
	d := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	if got := shortDate(d); got != "3/5/25" {
		t.Errorf("shortDate = %q, want 3/5/25", got)
	}
	d = time.Date(2004, time.December, 31, 0, 0, 0, 0, time.UTC)
	if got := shortDate(d); got != "12/31/04" {
		t.Errorf("shortDate = %q, want 12/31/04", got)
	}
}

func TestLongDate(t *testing.T) {
	d := time.Date(2025, time.October, 3, 0, 0, 0, 0, time.UTC)
	if got := longDate(d); got != "October 3, 2025" {
		t.Errorf("longDate = %q, want October 3, 2025", got)
	}
}

func TestFriendlyDuration(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, "invalid duration"},
		{10, "10 days"},
		{30, "1 month"},
		{65, "2 months, 5 days"},
		{365, "1 year"},
		{400, "1 year, 1 month"},
		{730, "2 years"},
		{3285, "9 years"},
	}
	for _, tt := range tests {
		if got := friendlyDuration(tt.days); got != tt.want {
			t.Errorf("friendlyDuration(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}
