package qualitymeasure

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carelane/cqm/internal/domain/record"
	"github.com/carelane/cqm/internal/platform/terminology"
)

// Locator finds the best matching fact for a concept across one or more
// source kinds searched in caller priority order.
type Locator struct {
	facts record.Repository
	log   zerolog.Logger
}

func NewLocator(facts record.Repository, log zerolog.Logger) *Locator {
	return &Locator{facts: facts, log: log}
}

// Find searches the source kinds in order. Within a kind the fact with the
// latest OccurredAt in [windowStart, windowEnd] wins, ties broken by ID; the
// first kind that yields any match short-circuits the search even if a
// lower-priority kind holds a more recent fact. A query failure against one
// kind is logged and treated as no match for that kind only.
func (l *Locator) Find(ctx context.Context, patientID uuid.UUID, concept terminology.Concept, systems []terminology.System, windowStart, windowEnd time.Time, sources ...record.SourceKind) *record.Fact {
	codes := terminology.CodesFor(concept, systems...)
	if len(codes) == 0 {
		return nil
	}
	for _, source := range sources {
		if best := l.latestMatch(ctx, patientID, source, codes, windowStart, windowEnd); best != nil {
			return best
		}
	}
	return nil
}

func (l *Locator) latestMatch(ctx context.Context, patientID uuid.UUID, source record.SourceKind, codes map[string]struct{}, windowStart, windowEnd time.Time) *record.Fact {
	facts, err := l.facts.ListByPatientSource(ctx, patientID, source)
	if err != nil {
		l.log.Error().Err(err).
			Str("patient_id", patientID.String()).
			Str("source", string(source)).
			Msg("evidence query failed, treating source as no match")
		return nil
	}
	var best *record.Fact
	for _, f := range facts {
		if f.OccurredAt.Before(windowStart) || f.OccurredAt.After(windowEnd) {
			continue
		}
		if !f.HasCoding(codes) {
			continue
		}
		if best == nil || best.Before(f) {
			best = f
		}
	}
	return best
}

// findOverlapping returns any fact of the given kind matching the concept
// whose effective interval overlaps [periodStart, periodEnd]. Used for
// prevalence-period checks on conditions where OccurredAt windowing does not
// apply. Resolved conditions count only when includeResolved is set.
func (l *Locator) findOverlapping(ctx context.Context, patientID uuid.UUID, source record.SourceKind, concept terminology.Concept, systems []terminology.System, periodStart, periodEnd time.Time, includeResolved bool) *record.Fact {
	codes := terminology.CodesFor(concept, systems...)
	facts, err := l.facts.ListByPatientSource(ctx, patientID, source)
	if err != nil {
		l.log.Error().Err(err).
			Str("patient_id", patientID.String()).
			Str("source", string(source)).
			Msg("overlap query failed, treating source as no match")
		return nil
	}
	for _, f := range facts {
		if f.Resolved() && !includeResolved {
			continue
		}
		if f.HasCoding(codes) && f.OverlapsPeriod(periodStart, periodEnd) {
			return f
		}
	}
	return nil
}

// observationWith reports whether an observation exists whose primary coding
// carries obsCode (empty string matches on coded value alone) and whose coded
// value is in valueCodes (nil skips the value constraint), occurring in the
// window. Callers doing "any time on or before period end" checks pass a
// windowStart far in the past.
func (l *Locator) observationWith(ctx context.Context, patientID uuid.UUID, obsCode string, valueCodes map[string]struct{}, windowStart, windowEnd time.Time) bool {
	facts, err := l.facts.ListByPatientSource(ctx, patientID, record.SourceObservation)
	if err != nil {
		l.log.Error().Err(err).
			Str("patient_id", patientID.String()).
			Msg("observation query failed, treating as absent")
		return false
	}
	var obsCodes map[string]struct{}
	if obsCode != "" {
		obsCodes = map[string]struct{}{obsCode: {}}
	}
	for _, f := range facts {
		if f.OccurredAt.Before(windowStart) || f.OccurredAt.After(windowEnd) {
			continue
		}
		// Exam pattern: primary coding names the assessment, coded value the result.
		if obsCodes != nil && f.HasCoding(obsCodes) {
			if valueCodes == nil || f.HasValueCoding(valueCodes) {
				return true
			}
		}
		if valueCodes == nil {
			continue
		}
		// Questionnaire pattern codes the finding directly; discharge
		// dispositions carry only a coded value.
		if f.HasCoding(valueCodes) || (obsCodes == nil && f.HasValueCoding(valueCodes)) {
			return true
		}
	}
	return false
}
