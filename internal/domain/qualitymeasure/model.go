// Package qualitymeasure implements clinical quality measure evaluation:
// population classification, denominator exclusions, numerator evidence
// search and protocol card generation. Two measures ship, colorectal cancer
// screening and diabetes glycemic status assessment.
package qualitymeasure

import (
	"time"

	"github.com/carelane/cqm/internal/domain/record"
)

// MeasurementPeriod is the date range eligibility is assessed over. All
// lookback windows are computed relative to End.
type MeasurementPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Valid reports whether the period is usable.
func (p MeasurementPeriod) Valid() bool {
	return !p.Start.IsZero() && !p.End.IsZero() && !p.End.Before(p.Start)
}

// Card status values.
type Status string

const (
	StatusNotApplicable Status = "not_applicable"
	StatusSatisfied     Status = "satisfied"
	StatusDue           Status = "due"
)

// Recommendation is one actionable item on a due card. Codes carry the
// order codes for one-click order placement; DiagnosisCodes the supporting
// diagnosis context.
type Recommendation struct {
	Title          string   `json:"title"`
	Button         string   `json:"button"`
	Kind           string   `json:"kind"`
	Codes          []string `json:"codes,omitempty"`
	DiagnosisCodes []string `json:"diagnosis_codes,omitempty"`
	Specialties    []string `json:"specialties,omitempty"`
	Comment        string   `json:"comment,omitempty"`
}

// EvidenceMatch is the numerator evaluator's result: the highest-priority
// satisfying screening evidence.
type EvidenceMatch struct {
	Kind             string       `json:"kind"`
	Fact             *record.Fact `json:"-"`
	MatchedAt        time.Time    `json:"matched_at"`
	NextDueAfterDays int          `json:"next_due_after_days"`
}

// Card is the terminal output of one evaluation. DueIn is days until the
// next screening is due, or -1 when not computable.
type Card struct {
	PatientID string `json:"patient_id"`
	Key       string `json:"key"`
	Title     string `json:"title"`
	Status    Status `json:"status"`
	Narrative string `json:"narrative"`
	DueIn     int    `json:"due_in"`

	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

// Classification is the population state machine's terminal state.
type Classification int

const (
	Unclassified Classification = iota
	InInitialPopulation
	ExcludedFromPopulation
	InDenominator
	ExcludedFromDenominator
)

// PopulationResult carries the classification outcome and, for excluded
// states, the first matching exclusion's narrative reason.
type PopulationResult struct {
	State  Classification
	Reason string
}

// Excluded reports whether the state is terminal-excluded.
func (r PopulationResult) Excluded() bool {
	return r.State == ExcludedFromPopulation || r.State == ExcludedFromDenominator
}

// ExclusionOutcome is one exclusion sub-check's verdict.
type ExclusionOutcome struct {
	Excluded bool
	Reason   string
}
