package qualitymeasure

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carelane/cqm/internal/domain/patient"
	"github.com/carelane/cqm/internal/domain/record"
)

// Shared in-memory fixtures for the measure tests.

var testPeriod = MeasurementPeriod{
	Start: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC),
}

type memFactRepo struct {
	facts      []*record.Fact
	errSources map[record.SourceKind]bool
}

func newMemFactRepo() *memFactRepo {
	return &memFactRepo{errSources: make(map[record.SourceKind]bool)}
}

func (r *memFactRepo) Create(_ context.Context, f *record.Fact) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.facts = append(r.facts, f)
	return nil
}

func (r *memFactRepo) GetByID(_ context.Context, id uuid.UUID) (*record.Fact, error) {
	for _, f := range r.facts {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, nil
}

func (r *memFactRepo) ListByPatientSource(_ context.Context, patientID uuid.UUID, source record.SourceKind) ([]*record.Fact, error) {
	if r.errSources[source] {
		return nil, fmt.Errorf("source %s unavailable", source)
	}
	var out []*record.Fact
	for _, f := range r.facts {
		if f.PatientID == patientID && f.Source == source && !f.Voided {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *memFactRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*record.Fact, int, error) {
	var out []*record.Fact
	for _, f := range r.facts {
		if f.PatientID == patientID {
			out = append(out, f)
		}
	}
	return out, len(out), nil
}

func (r *memFactRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, f := range r.facts {
		if f.ID == id {
			r.facts = append(r.facts[:i], r.facts[i+1:]...)
			return nil
		}
	}
	return nil
}

type memPatientRepo struct {
	patients map[uuid.UUID]*patient.Patient
}

func newMemPatientRepo() *memPatientRepo {
	return &memPatientRepo{patients: make(map[uuid.UUID]*patient.Patient)}
}

func (r *memPatientRepo) Create(_ context.Context, p *patient.Patient) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.patients[p.ID] = p
	return nil
}

func (r *memPatientRepo) GetByID(_ context.Context, id uuid.UUID) (*patient.Patient, error) {
	return r.patients[id], nil
}

func (r *memPatientRepo) GetByMRN(_ context.Context, mrn string) (*patient.Patient, error) {
	for _, p := range r.patients {
		if p.MRN == mrn {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memPatientRepo) List(_ context.Context, limit, offset int) ([]*patient.Patient, int, error) {
	var out []*patient.Patient
	for _, p := range r.patients {
		out = append(out, p)
	}
	return out, len(out), nil
}

func (r *memPatientRepo) Update(_ context.Context, p *patient.Patient) error {
	r.patients[p.ID] = p
	return nil
}

func (r *memPatientRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.patients, id)
	return nil
}

// testPatient builds a patient who is the given age at the test period end.
func testPatient(firstName string, age int) *patient.Patient {
	bd := time.Date(2025-age, time.June, 15, 0, 0, 0, 0, time.UTC)
	return &patient.Patient{
		ID:        uuid.New(),
		MRN:       "MRN-" + firstName,
		Active:    true,
		FirstName: firstName,
		LastName:  "Tester",
		BirthDate: &bd,
	}
}

type factOpt func(*record.Fact)

func withValueCoding(system, code string) factOpt {
	return func(f *record.Fact) {
		f.ValueCodings = append(f.ValueCodings, record.Coding{System: system, Code: code})
	}
}

func withQuantity(v float64) factOpt {
	return func(f *record.Fact) { f.ValueQuantity = &v }
}

func withEffective(start, end *time.Time) factOpt {
	return func(f *record.Fact) {
		f.EffectiveStart = start
		f.EffectiveEnd = end
	}
}

func withStatus(s string) factOpt {
	return func(f *record.Fact) { f.ClinicalStatus = &s }
}

func addFact(repo *memFactRepo, patientID uuid.UUID, source record.SourceKind, system, code string, occurredAt time.Time, opts ...factOpt) *record.Fact {
	f := &record.Fact{
		ID:         uuid.New(),
		PatientID:  patientID,
		Source:     source,
		Codings:    []record.Coding{{System: system, Code: code}},
		OccurredAt: occurredAt,
	}
	for _, opt := range opts {
		opt(f)
	}
	repo.facts = append(repo.facts, f)
	return f
}

func ptrTime(t time.Time) *time.Time { return &t }

func testLogger() zerolog.Logger { return zerolog.Nop() }
