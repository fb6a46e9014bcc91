package qualitymeasure

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carelane/cqm/internal/domain/patient"
	"github.com/carelane/cqm/internal/domain/record"
)

// Measure is one registered quality measure. Evaluate never fails: data
// problems degrade to conservative no-match decisions inside the measure.
type Measure interface {
	Key() string
	Title() string
	Evaluate(ctx context.Context, p *patient.Patient, period MeasurementPeriod) *Card
}

// MeasureInfo is the listing projection of a registered measure.
type MeasureInfo struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

var ErrUnknownMeasure = fmt.Errorf("unknown measure")

type Service struct {
	patients patient.Repository
	measures map[string]Measure
	keys     []string
	log      zerolog.Logger
}

// NewService registers the shipped measures against the given repositories.
func NewService(patients patient.Repository, facts record.Repository, log zerolog.Logger) *Service {
	s := &Service{
		patients: patients,
		measures: make(map[string]Measure),
		log:      log,
	}
	s.register(NewColorectalMeasure(facts, log))
	s.register(NewGlycemicMeasure(facts, log))
	return s
}

func (s *Service) register(m Measure) {
	if _, dup := s.measures[m.Key()]; dup {
		panic(fmt.Sprintf("qualitymeasure: duplicate measure key %q", m.Key()))
	}
	s.measures[m.Key()] = m
	s.keys = append(s.keys, m.Key())
	sort.Strings(s.keys)
}

// List returns the registered measures in key order.
func (s *Service) List() []MeasureInfo {
	out := make([]MeasureInfo, 0, len(s.keys))
	for _, k := range s.keys {
		m := s.measures[k]
		out = append(out, MeasureInfo{Key: m.Key(), Title: m.Title()})
	}
	return out
}

// DefaultPeriod is the calendar year containing now, in UTC.
func DefaultPeriod(now time.Time) MeasurementPeriod {
	y := now.UTC().Year()
	return MeasurementPeriod{
		Start: time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(y, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
}

// Evaluate runs one measure for one patient. Returns (nil, nil) when the
// patient does not exist.
func (s *Service) Evaluate(ctx context.Context, key string, patientID uuid.UUID, period MeasurementPeriod) (*Card, error) {
	m, ok := s.measures[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMeasure, key)
	}
	if !period.Valid() {
		return nil, fmt.Errorf("invalid measurement period")
	}
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("load patient: %w", err)
	}
	if p == nil {
		return nil, nil
	}
	card := m.Evaluate(ctx, p, period)
	s.log.Info().
		Str("measure", key).
		Str("patient_id", patientID.String()).
		Str("status", string(card.Status)).
		Msg("measure evaluated")
	return card, nil
}

// EvaluateAll runs every registered measure for one patient, in key order.
// Returns (nil, nil) when the patient does not exist.
func (s *Service) EvaluateAll(ctx context.Context, patientID uuid.UUID, period MeasurementPeriod) ([]*Card, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("invalid measurement period")
	}
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("load patient: %w", err)
	}
	if p == nil {
		return nil, nil
	}
	cards := make([]*Card, 0, len(s.keys))
	for _, k := range s.keys {
		cards = append(cards, s.measures[k].Evaluate(ctx, p, period))
	}
	return cards, nil
}
