package record

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

type memRepo struct {
	facts map[uuid.UUID]*Fact
}

func newMemRepo() *memRepo {
	return &memRepo{facts: make(map[uuid.UUID]*Fact)}
}

func (r *memRepo) Create(_ context.Context, f *Fact) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.facts[f.ID] = f
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id uuid.UUID) (*Fact, error) {
	return r.facts[id], nil
}

func (r *memRepo) ListByPatientSource(_ context.Context, patientID uuid.UUID, source SourceKind) ([]*Fact, error) {
	var out []*Fact
	for _, f := range r.facts {
		if f.PatientID == patientID && f.Source == source && !f.Voided {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *memRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*Fact, int, error) {
	var out []*Fact
	for _, f := range r.facts {
		if f.PatientID == patientID {
			out = append(out, f)
		}
	}
	return out, len(out), nil
}

func (r *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f, ok := r.facts[id]; ok {
		f.Voided = true
		return nil
	}
	return fmt.Errorf("fact not found")
}

func validFact(patientID uuid.UUID) *Fact {
	return &Fact{
		PatientID:  patientID,
		Source:     SourceLab,
		Codings:    []Coding{{System: "LOINC", Code: "4548-4"}},
		OccurredAt: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_Create(t *testing.T) {
	svc := NewService(newMemRepo())
	f := validFact(uuid.New())
	if err := svc.Create(context.Background(), f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.ID == uuid.Nil {
		t.Error("expected an assigned id")
	}
}

func TestService_Create_Validation(t *testing.T) {
	pid := uuid.New()
	tests := []struct {
		name    string
		mutate  func(*Fact)
		wantErr string
	}{
		{"missing patient", func(f *Fact) { f.PatientID = uuid.Nil }, "patient_id"},
		{"invalid source", func(f *Fact) { f.Source = "note" }, "invalid source"},
		{"no codings", func(f *Fact) { f.Codings = nil }, "coding"},
		{"blank code", func(f *Fact) { f.Codings = []Coding{{System: "LOINC"}} }, "system and code"},
		{
			"inverted effective interval",
			func(f *Fact) {
				start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
				end := start.AddDate(0, -1, 0)
				f.EffectiveStart = &start
				f.EffectiveEnd = &end
			},
			"precedes",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newMemRepo())
			f := validFact(pid)
			tt.mutate(f)
			err := svc.Create(context.Background(), f)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestService_Create_DefaultsOccurredAt(t *testing.T) {
	svc := NewService(newMemRepo())
	f := validFact(uuid.New())
	f.OccurredAt = time.Time{}
	if err := svc.Create(context.Background(), f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.OccurredAt.IsZero() {
		t.Error("expected occurred_at to default")
	}
}

func TestService_VoidHidesFromSourceQueries(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	pid := uuid.New()
	f := validFact(pid)
	if err := svc.Create(context.Background(), f); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Void(context.Background(), f.ID); err != nil {
		t.Fatalf("void: %v", err)
	}
	facts, err := svc.ListByPatientSource(context.Background(), pid, SourceLab)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(facts) != 0 {
		t.Errorf("voided fact still visible to source queries: %d facts", len(facts))
	}
}

func TestService_ListByPatientSource_InvalidSource(t *testing.T) {
	svc := NewService(newMemRepo())
	if _, err := svc.ListByPatientSource(context.Background(), uuid.New(), "note"); err == nil {
		t.Error("expected error for invalid source")
	}
}
