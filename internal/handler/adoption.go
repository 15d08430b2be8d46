package handler

import (
	"net/http"

	"github.com/dangerclosesec/adoptionhub/internal/serializer"
	"github.com/dangerclosesec/adoptionhub/internal/service"
)

type AdoptionHandler struct {
	base
	adoption *service.AdoptionService
	gate     *service.AccessGate
}

func NewAdoptionHandler(adoption *service.AdoptionService, gate *service.AccessGate, opts Options) *AdoptionHandler {
	return &AdoptionHandler{
		base:     newBase(opts),
		adoption: adoption,
		gate:     gate,
	}
}

// MyScorecard handles GET /me/scorecard.
func (h *AdoptionHandler) MyScorecard(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	card, err := h.adoption.Scorecard(r.Context(), identity.EmployeeID, h.now())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.NewScorecard(card))
}

// EmployeeScorecard handles GET /employees/{id}/scorecard.
func (h *AdoptionHandler) EmployeeScorecard(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	employeeID, err := idParam(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.gate.AuthorizeScorecard(r.Context(), identity, employeeID); err != nil {
		h.handleError(w, r, err)
		return
	}

	card, err := h.adoption.Scorecard(r.Context(), employeeID, h.now())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.NewScorecard(card))
}

// DepartmentOverview handles GET /departments/{id}/overview. Scope is
// checked before the department is looked up.
func (h *AdoptionHandler) DepartmentOverview(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	departmentID, err := idParam(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	period, err := h.period(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.gate.AuthorizeDepartment(r.Context(), identity, departmentID); err != nil {
		h.handleError(w, r, err)
		return
	}

	overview, err := h.adoption.DepartmentOverview(r.Context(), departmentID, period)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.NewDepartmentOverview(overview))
}

// UpsertMetric handles POST /adoption-metrics.
func (h *AdoptionHandler) UpsertMetric(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var input service.MetricInput
	if err := decode(r, &input); err != nil {
		h.handleError(w, r, err)
		return
	}
	defer r.Body.Close()

	saved, err := h.adoption.UpsertMetric(r.Context(), identity, h.now(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.NewMetric(saved))
}

// History handles GET /adoption-metrics/history?months=N.
func (h *AdoptionHandler) History(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	months, err := positiveQuery(r, "months")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	metrics, err := h.adoption.History(r.Context(), identity.EmployeeID, months)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if months == 0 {
		months = h.adoption.Config().HistoryDefaultMonths
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.NewHistory(identity.EmployeeID, months, metrics))
}

// Trends handles GET /analytics/trends?months=N.
func (h *AdoptionHandler) Trends(w http.ResponseWriter, r *http.Request) {
	months, err := positiveQuery(r, "months")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	trends, err := h.adoption.Trends(r.Context(), months)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.NewTrends(trends))
}

// ROI handles GET /analytics/roi.
func (h *AdoptionHandler) ROI(w http.ResponseWriter, r *http.Request) {
	period, err := h.period(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	summary, err := h.adoption.ROI(r.Context(), period)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.NewROI(summary))
}

// Rollup handles POST /analytics/rollup. Admin only.
func (h *AdoptionHandler) Rollup(w http.ResponseWriter, r *http.Request) {
	period, err := h.period(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	overviews, err := h.adoption.Rollup(r.Context(), period)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.NewRollup(period.Month, period.Year, overviews))
}
