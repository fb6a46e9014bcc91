package record

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var validSources = map[SourceKind]bool{
	SourceLab: true, SourceImaging: true, SourceReferral: true,
	SourceClaim: true, SourceEncounter: true, SourceObservation: true,
	SourceCondition: true, SourceMedication: true, SourceDevice: true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, f *Fact) error {
	if f.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if !validSources[f.Source] {
		return fmt.Errorf("invalid source %q", f.Source)
	}
	if len(f.Codings) == 0 {
		return fmt.Errorf("at least one coding is required")
	}
	for _, c := range f.Codings {
		if c.System == "" || c.Code == "" {
			return fmt.Errorf("codings require both system and code")
		}
	}
	if f.OccurredAt.IsZero() {
		f.OccurredAt = time.Now().UTC()
	}
	if f.EffectiveStart != nil && f.EffectiveEnd != nil && f.EffectiveEnd.Before(*f.EffectiveStart) {
		return fmt.Errorf("effective_end precedes effective_start")
	}
	return s.repo.Create(ctx, f)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Fact, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Fact, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) ListByPatientSource(ctx context.Context, patientID uuid.UUID, source SourceKind) ([]*Fact, error) {
	if !validSources[source] {
		return nil, fmt.Errorf("invalid source %q", source)
	}
	return s.repo.ListByPatientSource(ctx, patientID, source)
}

// Void removes a fact from evaluation without destroying the row history:
// the record layer soft-deletes and queries filter voided facts out.
func (s *Service) Void(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
