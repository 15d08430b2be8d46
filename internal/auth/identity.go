// internal/auth/identity.go
package auth

import (
	"context"
	"strings"

	"github.com/dangerclosesec/adoptionhub/internal/model"
)

// Identity is the authenticated caller. Department and role come from the
// directory row, not from the token.
type Identity struct {
	EmployeeID   int64
	Email        string
	DisplayName  string
	DepartmentID int64
	Role         model.Role
}

// NewIdentity builds the identity for a directory entry.
func NewIdentity(e *model.Employee) Identity {
	return Identity{
		EmployeeID:   e.ID,
		Email:        e.Email,
		DisplayName:  e.DisplayName,
		DepartmentID: e.DepartmentID,
		Role:         NormalizeRole(string(e.Role)),
	}
}

// NormalizeRole folds directory role spellings such as "Manager" onto model roles.
func NormalizeRole(role string) model.Role {
	return model.Role(strings.ToLower(strings.TrimSpace(role)))
}

// HasRole reports whether the identity holds any of roles.
func (i Identity) HasRole(roles ...model.Role) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

// IsPrivileged reports whether the identity may read across departments.
func (i Identity) IsPrivileged() bool {
	return i.HasRole(model.RoleAdmin, model.RoleManager)
}

type identityKey struct{}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext is the only source of the current caller.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}
