package qualitymeasure

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/carelane/cqm/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole("admin", "physician", "nurse"))
	g.GET("/measures", h.ListMeasures)
	g.POST("/measures/:key/$evaluate", h.Evaluate)
	g.POST("/measures/$evaluate-all", h.EvaluateAll)

	batchGroup := api.Group("", auth.RequireRole("admin", "physician"))
	batchGroup.POST("/measures/:key/$evaluate-batch", h.EvaluateBatch)
}

// evaluateRequest is the evaluation body. The period defaults to the
// current calendar year when omitted.
type evaluateRequest struct {
	PatientID uuid.UUID          `json:"patient_id"`
	Period    *MeasurementPeriod `json:"period,omitempty"`
}

func (r *evaluateRequest) period() MeasurementPeriod {
	if r.Period != nil {
		return *r.Period
	}
	return DefaultPeriod(time.Now())
}

func (h *Handler) ListMeasures(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.List())
}

func (h *Handler) Evaluate(c echo.Context) error {
	var req evaluateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.PatientID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id is required")
	}
	card, err := h.svc.Evaluate(c.Request().Context(), c.Param("key"), req.PatientID, req.period())
	if err != nil {
		if errors.Is(err, ErrUnknownMeasure) {
			return echo.NewHTTPError(http.StatusNotFound, "measure not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if card == nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	return c.JSON(http.StatusOK, card)
}

// batchRequest configures a population scan. Workers defaults to the
// service's pool size when zero.
type batchRequest struct {
	Period  *MeasurementPeriod `json:"period,omitempty"`
	Workers int                `json:"workers,omitempty"`
}

func (r *batchRequest) period() MeasurementPeriod {
	if r.Period != nil {
		return *r.Period
	}
	return DefaultPeriod(time.Now())
}

func (h *Handler) EvaluateBatch(c echo.Context) error {
	var req batchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	result, err := h.svc.EvaluateBatch(c.Request().Context(), c.Param("key"), req.period(), req.Workers)
	if err != nil {
		if errors.Is(err, ErrUnknownMeasure) {
			return echo.NewHTTPError(http.StatusNotFound, "measure not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) EvaluateAll(c echo.Context) error {
	var req evaluateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.PatientID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id is required")
	}
	cards, err := h.svc.EvaluateAll(c.Request().Context(), req.PatientID, req.period())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if cards == nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	return c.JSON(http.StatusOK, cards)
}
