// internal/service/access.go
package service

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/dangerclosesec/adoptionhub/internal/audit"
	"github.com/dangerclosesec/adoptionhub/internal/auth"
	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/model"
)

// AccessGate enforces department and role scoping before any aggregation
// runs. Denials return domain.ErrForbidden and are audited.
type AccessGate struct {
	audit audit.Logger
}

func NewAccessGate(auditLogger audit.Logger) *AccessGate {
	if auditLogger == nil {
		auditLogger = &audit.NoOpLogger{}
	}
	return &AccessGate{audit: auditLogger}
}

// AuthorizeScorecard allows the owner and any admin or manager.
func (g *AccessGate) AuthorizeScorecard(ctx context.Context, identity auth.Identity, employeeID int64) error {
	if identity.EmployeeID == employeeID || identity.IsPrivileged() {
		return nil
	}
	return g.deny(ctx, identity, model.ResourceScorecard, employeeID)
}

// AuthorizeDepartment allows members of the department and any admin or manager.
func (g *AccessGate) AuthorizeDepartment(ctx context.Context, identity auth.Identity, departmentID int64) error {
	if identity.DepartmentID == departmentID || identity.IsPrivileged() {
		return nil
	}
	return g.deny(ctx, identity, model.ResourceDepartment, departmentID)
}

func (g *AccessGate) deny(ctx context.Context, identity auth.Identity, resourceType string, resourceID int64) error {
	employeeID := identity.EmployeeID
	if err := g.audit.Log(ctx, audit.Entry{
		EmployeeID:   &employeeID,
		Action:       model.ActionAccessDenied,
		ResourceType: resourceType,
		ResourceID:   strconv.FormatInt(resourceID, 10),
		Details: map[string]interface{}{
			"role":          string(identity.Role),
			"department_id": identity.DepartmentID,
		},
	}); err != nil {
		slog.WarnContext(ctx, "Writing audit log", "action", model.ActionAccessDenied, "error", err)
	}
	return domain.ErrForbidden
}
