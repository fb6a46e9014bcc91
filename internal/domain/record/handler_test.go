package record

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *memRepo, *echo.Echo) {
	repo := newMemRepo()
	return NewHandler(NewService(repo)), repo, echo.New()
}

func TestHandler_CreateFact(t *testing.T) {
	h, _, e := newTestHandler()
	body := `{"patient_id":"` + uuid.New().String() + `","source":"lab","codings":[{"system":"LOINC","code":"4548-4"}],"occurred_at":"2025-06-01T00:00:00Z","value_quantity":7.5}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateFact(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestHandler_CreateFact_BadRequest(t *testing.T) {
	h, _, e := newTestHandler()
	body := `{"patient_id":"` + uuid.New().String() + `","source":"lab"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateFact(c); err == nil {
		t.Error("expected error for fact without codings")
	}
}

func TestHandler_GetFact(t *testing.T) {
	h, repo, e := newTestHandler()
	f := validFact(uuid.New())
	repo.Create(nil, f)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(f.ID.String())

	if err := h.GetFact(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_GetFact_NotFound(t *testing.T) {
	h, _, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	if err := h.GetFact(c); err == nil {
		t.Error("expected error for unknown fact")
	}
}

func TestHandler_ListPatientFacts_BySource(t *testing.T) {
	h, repo, e := newTestHandler()
	pid := uuid.New()
	repo.Create(nil, validFact(pid))
	other := validFact(pid)
	other.Source = SourceCondition
	repo.Create(nil, other)

	req := httptest.NewRequest(http.MethodGet, "/?source=lab", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(pid.String())

	if err := h.ListPatientFacts(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"source":"lab"`) {
		t.Errorf("body %q missing lab fact", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), `"source":"condition"`) {
		t.Errorf("body %q leaked other sources", rec.Body.String())
	}
}

func TestHandler_VoidFact(t *testing.T) {
	h, repo, e := newTestHandler()
	f := validFact(uuid.New())
	repo.Create(nil, f)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(f.ID.String())

	if err := h.VoidFact(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if !f.Voided {
		t.Error("fact was not voided")
	}
}
