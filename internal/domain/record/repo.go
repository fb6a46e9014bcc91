package record

import (
	"context"

	"github.com/google/uuid"
)

// Repository loads clinical facts for evaluation. Code matching happens in
// the measure layer; the repository only narrows by patient and source kind.
type Repository interface {
	Create(ctx context.Context, f *Fact) error
	GetByID(ctx context.Context, id uuid.UUID) (*Fact, error)
	ListByPatientSource(ctx context.Context, patientID uuid.UUID, source SourceKind) ([]*Fact, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Fact, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
