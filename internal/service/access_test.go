package service_test

import (
	"context"
	"testing"

	"github.com/dangerclosesec/adoptionhub/internal/auth"
	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/model"
	"github.com/dangerclosesec/adoptionhub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessGate(t *testing.T) {
	employee := auth.Identity{EmployeeID: 42, DepartmentID: 3, Role: model.RoleEmployee}
	manager := auth.Identity{EmployeeID: 7, DepartmentID: 1, Role: model.RoleManager}
	admin := auth.Identity{EmployeeID: 1, DepartmentID: 1, Role: model.RoleAdmin}

	tests := []struct {
		name     string
		identity auth.Identity
		check    func(*service.AccessGate, auth.Identity) error
		allowed  bool
	}{
		{"own scorecard", employee, scorecardOf(42), true},
		{"peer scorecard", employee, scorecardOf(43), false},
		{"manager reads any scorecard", manager, scorecardOf(43), true},
		{"admin reads any scorecard", admin, scorecardOf(43), true},
		{"own department", employee, departmentOf(3), true},
		{"other department", employee, departmentOf(4), false},
		{"manager reads any department", manager, departmentOf(4), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &recordingLogger{}
			gate := service.NewAccessGate(logger)

			err := tt.check(gate, tt.identity)
			if tt.allowed {
				assert.NoError(t, err)
				assert.Empty(t, logger.entries)
				return
			}

			assert.ErrorIs(t, err, domain.ErrForbidden)
			require.Len(t, logger.entries, 1)
			entry := logger.entries[0]
			assert.Equal(t, model.ActionAccessDenied, entry.Action)
			require.NotNil(t, entry.EmployeeID)
			assert.Equal(t, tt.identity.EmployeeID, *entry.EmployeeID)
		})
	}
}

func scorecardOf(employeeID int64) func(*service.AccessGate, auth.Identity) error {
	return func(g *service.AccessGate, id auth.Identity) error {
		return g.AuthorizeScorecard(context.Background(), id, employeeID)
	}
}

func departmentOf(departmentID int64) func(*service.AccessGate, auth.Identity) error {
	return func(g *service.AccessGate, id auth.Identity) error {
		return g.AuthorizeDepartment(context.Background(), id, departmentID)
	}
}
