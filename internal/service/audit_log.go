// internal/service/audit_log.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/adoptionhub/internal/audit"
	"github.com/dangerclosesec/adoptionhub/internal/auth"
	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/model"
	"github.com/dangerclosesec/adoptionhub/internal/repository"
	"gorm.io/datatypes"
)

const maxAuditLimit = 500

// Ensure AuditLogService implements the audit.Logger interface
var _ audit.Logger = (*AuditLogService)(nil)

// AuditLogService handles operations related to audit logs
type AuditLogService struct {
	repo repository.AuditLogRepositoryIface
	now  func() time.Time
}

// NewAuditLogService creates a new AuditLogService
func NewAuditLogService(repo repository.AuditLogRepositoryIface) *AuditLogService {
	return &AuditLogService{
		repo: repo,
		now:  time.Now,
	}
}

// Log writes entry. The employee defaults to the identity in ctx; client
// metadata comes from audit.RequestFromContext.
func (s *AuditLogService) Log(ctx context.Context, entry audit.Entry) error {
	log := &model.AuditLog{
		EmployeeID: entry.EmployeeID,
		Action:     entry.Action,
		Timestamp:  s.now().UTC(),
	}

	if log.EmployeeID == nil {
		if identity, ok := auth.IdentityFromContext(ctx); ok {
			id := identity.EmployeeID
			log.EmployeeID = &id
		}
	}
	if entry.ResourceType != "" {
		log.ResourceType = &entry.ResourceType
	}
	if entry.ResourceID != "" {
		log.ResourceID = &entry.ResourceID
	}
	if len(entry.Details) > 0 {
		log.Details = datatypes.JSONMap(entry.Details)
	}

	if req, ok := audit.RequestFromContext(ctx); ok {
		log.IPAddress = optional(req.ClientIP)
		log.UserAgent = optional(req.UserAgent)
		log.RequestID = optional(req.RequestID)
	}

	return s.repo.Create(ctx, log)
}

type AuditLogPage struct {
	Items  []model.AuditLog
	Total  int64
	Limit  int
	Offset int
}

// Query lists audit logs newest first.
func (s *AuditLogService) Query(ctx context.Context, params repository.AuditQueryParams) (*AuditLogPage, error) {
	if params.Limit < 0 || params.Offset < 0 {
		return nil, fmt.Errorf("%w: limit and offset must not be negative", domain.ErrInvalidInput)
	}
	if params.Limit == 0 {
		params.Limit = repository.DefaultAuditLimit
	}
	if params.Limit > maxAuditLimit {
		params.Limit = maxAuditLimit
	}
	if !params.StartTime.IsZero() && !params.EndTime.IsZero() && params.EndTime.Before(params.StartTime) {
		return nil, fmt.Errorf("%w: end must not precede start", domain.ErrInvalidInput)
	}

	logs, total, err := s.repo.Query(ctx, params)
	if err != nil {
		return nil, err
	}
	return &AuditLogPage{Items: logs, Total: total, Limit: params.Limit, Offset: params.Offset}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
