package qualitymeasure

import (
	"context"

	"github.com/carelane/cqm/internal/domain/patient"
)

// ExclusionCheck is one denominator exclusion sub-check. Checks run in the
// order the measure lists them; the first one reporting Excluded wins and
// its reason is the card narrative. A check that cannot complete (storage
// failure) must log and report not-excluded rather than fail the run.
type ExclusionCheck func(ctx context.Context) ExclusionOutcome

// AgeGate is the initial population age requirement, bounds inclusive.
type AgeGate struct {
	Min int
	Max int
}

// PopulationGate reports whether the patient clears the structural entry
// checks beyond age (qualifying encounter, required diagnosis). A reason is
// returned when the gate fails.
type PopulationGate func(ctx context.Context) (ok bool, reason string)

// Classify runs the population state machine: age gate, then any population
// gates, then the exclusion checks in order. ageReason templates are supplied
// by the measure so narratives stay measure-specific.
func Classify(ctx context.Context, p *patient.Patient, period MeasurementPeriod, gate AgeGate, reasons AgeReasons, gates []PopulationGate, exclusions []ExclusionCheck) PopulationResult {
	age, ok := p.AgeAt(period.End)
	if !ok {
		return PopulationResult{State: ExcludedFromPopulation, Reason: reasons.Missing}
	}
	if age < gate.Min {
		return PopulationResult{State: ExcludedFromPopulation, Reason: reasons.Under}
	}
	if age > gate.Max {
		return PopulationResult{State: ExcludedFromPopulation, Reason: reasons.Over}
	}

	for _, g := range gates {
		ok, reason := g(ctx)
		if !ok {
			return PopulationResult{State: ExcludedFromPopulation, Reason: reason}
		}
	}

	for _, check := range exclusions {
		if out := check(ctx); out.Excluded {
			return PopulationResult{State: ExcludedFromDenominator, Reason: out.Reason}
		}
	}
	return PopulationResult{State: InDenominator}
}

// AgeReasons are the narrative reasons the age gate emits.
type AgeReasons struct {
	Missing string
	Under   string
	Over    string
}
