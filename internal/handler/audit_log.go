package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/repository"
	"github.com/dangerclosesec/adoptionhub/internal/serializer"
	"github.com/dangerclosesec/adoptionhub/internal/service"
)

// AuditLogHandler handles API requests related to audit logs
type AuditLogHandler struct {
	base
	auditLogService *service.AuditLogService
}

// NewAuditLogHandler creates a new audit log handler
func NewAuditLogHandler(auditLogService *service.AuditLogService, opts Options) *AuditLogHandler {
	return &AuditLogHandler{base: newBase(opts), auditLogService: auditLogService}
}

// GetAuditLogs handles GET /audit-logs with filtering. Admin only.
func (h *AuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	params, err := auditParams(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	page, err := h.auditLogService.Query(r.Context(), params)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.NewAuditLogPage(page))
}

func auditParams(r *http.Request) (repository.AuditQueryParams, error) {
	q := r.URL.Query()
	params := repository.AuditQueryParams{
		Action:       q.Get("action"),
		ResourceType: q.Get("resource_type"),
	}

	if v := q.Get("employee_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return params, fmt.Errorf("%w: employee_id must be an integer", domain.ErrInvalidInput)
		}
		params.EmployeeID = &id
	}

	for name, dst := range map[string]*time.Time{"start_time": &params.StartTime, "end_time": &params.EndTime} {
		if v := q.Get(name); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return params, fmt.Errorf("%w: %s must be RFC3339", domain.ErrInvalidInput, name)
			}
			*dst = t
		}
	}

	for name, dst := range map[string]*int{"limit": &params.Limit, "offset": &params.Offset} {
		if v := q.Get(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return params, fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, name)
			}
			*dst = n
		}
	}
	return params, nil
}
