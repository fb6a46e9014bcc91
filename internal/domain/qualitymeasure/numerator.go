package qualitymeasure

import (
	"context"

	"github.com/google/uuid"

	"github.com/carelane/cqm/internal/domain/record"
	"github.com/carelane/cqm/internal/platform/terminology"
)

// ScreeningCheck describes one acceptable evidence kind for a measure's
// numerator: the concept to search, where to search it, how far back it
// counts, and how long it satisfies the measure once found.
type ScreeningCheck struct {
	Kind             string
	Concept          terminology.Concept
	Systems          []terminology.System
	LookbackYears    int
	NextDueAfterDays int
	Sources          []record.SourceKind
}

// EvaluateNumerator walks the checks most-preferred first and returns the
// first satisfying match. Priority order, not recency, decides: a match on
// an earlier check is returned even when a later check holds more recent
// evidence.
func EvaluateNumerator(ctx context.Context, loc *Locator, patientID uuid.UUID, period MeasurementPeriod, checks []ScreeningCheck) *EvidenceMatch {
	for _, check := range checks {
		windowStart := period.End.AddDate(-check.LookbackYears, 0, 0)
		fact := loc.Find(ctx, patientID, check.Concept, check.Systems, windowStart, period.End, check.Sources...)
		if fact == nil {
			continue
		}
		return &EvidenceMatch{
			Kind:             check.Kind,
			Fact:             fact,
			MatchedAt:        fact.OccurredAt,
			NextDueAfterDays: check.NextDueAfterDays,
		}
	}
	return nil
}
