package patient

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

type memRepo struct {
	patients map[uuid.UUID]*Patient
}

func newMemRepo() *memRepo {
	return &memRepo{patients: make(map[uuid.UUID]*Patient)}
}

func (r *memRepo) Create(_ context.Context, p *Patient) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.patients[p.ID] = p
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	return r.patients[id], nil
}

func (r *memRepo) GetByMRN(_ context.Context, mrn string) (*Patient, error) {
	for _, p := range r.patients {
		if p.MRN == mrn {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	var out []*Patient
	for _, p := range r.patients {
		out = append(out, p)
	}
	return out, len(out), nil
}

func (r *memRepo) Update(_ context.Context, p *Patient) error {
	r.patients[p.ID] = p
	return nil
}

func (r *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.patients, id)
	return nil
}

func TestService_Create(t *testing.T) {
	svc := NewService(newMemRepo())
	p := &Patient{MRN: "MRN001", FirstName: "Alice", LastName: "Smith"}
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Active {
		t.Error("new patient should be active")
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newMemRepo())
	if err := svc.Create(context.Background(), &Patient{FirstName: "Alice"}); err == nil {
		t.Error("expected error for missing mrn")
	}
	if err := svc.Create(context.Background(), &Patient{MRN: "MRN001"}); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestService_Create_DuplicateMRN(t *testing.T) {
	svc := NewService(newMemRepo())
	if err := svc.Create(context.Background(), &Patient{MRN: "MRN001", FirstName: "Alice"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	err := svc.Create(context.Background(), &Patient{MRN: "MRN001", FirstName: "Bob"})
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Errorf("err = %v, want duplicate mrn rejection", err)
	}
}

func TestService_Update_RequiresID(t *testing.T) {
	svc := NewService(newMemRepo())
	if err := svc.Update(context.Background(), &Patient{MRN: "MRN001"}); err == nil {
		t.Error("expected error for missing id")
	}
}
