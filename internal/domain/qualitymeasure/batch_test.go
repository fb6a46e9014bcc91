package qualitymeasure

import (
	"context"
	"errors"
	"testing"

	"github.com/carelane/cqm/internal/domain/record"
)

func TestService_EvaluateBatch(t *testing.T) {
	svc, patients, facts := newTestService()

	due := testPatient("Dana", 55)
	patients.patients[due.ID] = due

	screened := testPatient("Cole", 60)
	patients.patients[screened.ID] = screened
	addFact(facts, screened.ID, record.SourceLab, "LOINC", "2335-8", testPeriod.End.AddDate(0, -2, 0))

	young := testPatient("Ivy", 30)
	patients.patients[young.ID] = young

	result, err := svc.EvaluateBatch(context.Background(), ColorectalKey, testPeriod, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Measure != ColorectalKey {
		t.Errorf("measure = %q, want %q", result.Measure, ColorectalKey)
	}
	if len(result.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(result.Items))
	}
	if result.Evaluated != 3 {
		t.Errorf("evaluated = %d, want 3", result.Evaluated)
	}
	if result.Due != 1 {
		t.Errorf("due = %d, want 1", result.Due)
	}
	if result.Satisfied != 1 {
		t.Errorf("satisfied = %d, want 1", result.Satisfied)
	}
	for _, item := range result.Items {
		if item.Card == nil {
			t.Errorf("patient %s has no card", item.PatientID)
		}
		if item.Error != "" {
			t.Errorf("patient %s: unexpected error %q", item.PatientID, item.Error)
		}
	}
}

func TestService_EvaluateBatch_DeterministicOrder(t *testing.T) {
	svc, patients, _ := newTestService()
	for i := 0; i < 10; i++ {
		p := testPatient("Pat", 50+i)
		patients.patients[p.ID] = p
	}

	first, err := svc.EvaluateBatch(context.Background(), ColorectalKey, testPeriod, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.EvaluateBatch(context.Background(), ColorectalKey, testPeriod, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Items) != len(second.Items) {
		t.Fatalf("item counts differ: %d vs %d", len(first.Items), len(second.Items))
	}
	for i := range first.Items {
		if first.Items[i].PatientID != second.Items[i].PatientID {
			t.Fatalf("item %d: order differs between runs", i)
		}
	}
}

func TestService_EvaluateBatch_UnknownMeasure(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.EvaluateBatch(context.Background(), "CMS999", testPeriod, 0)
	if !errors.Is(err, ErrUnknownMeasure) {
		t.Errorf("err = %v, want ErrUnknownMeasure", err)
	}
}

func TestService_EvaluateBatch_EmptyPopulation(t *testing.T) {
	svc, _, _ := newTestService()
	result, err := svc.EvaluateBatch(context.Background(), GlycemicKey, testPeriod, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Evaluated != 0 || len(result.Items) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestService_EvaluateBatch_InvalidPeriod(t *testing.T) {
	svc, _, _ := newTestService()
	bad := MeasurementPeriod{Start: testPeriod.End, End: testPeriod.Start}
	if _, err := svc.EvaluateBatch(context.Background(), ColorectalKey, bad, 0); err == nil {
		t.Error("expected error for inverted period")
	}
}

func TestService_EvaluateBatch_CancelledContext(t *testing.T) {
	svc, patients, _ := newTestService()
	p := testPatient("Max", 55)
	patients.patients[p.ID] = p

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.EvaluateBatch(ctx, ColorectalKey, testPeriod, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Evaluated != 0 {
		t.Errorf("evaluated = %d, want 0 after cancellation", result.Evaluated)
	}
}
