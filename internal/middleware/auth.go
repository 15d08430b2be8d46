// internal/middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dangerclosesec/adoptionhub/internal/audit"
	"github.com/dangerclosesec/adoptionhub/internal/auth"
	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/model"
	"github.com/go-chi/chi/v5/middleware"
)

// TokenValidator is satisfied by *auth.TokenManager.
type TokenValidator interface {
	Validate(tokenString string) (*auth.Claims, error)
}

// EmployeeResolver is the directory lookup used to turn claims into an identity.
type EmployeeResolver interface {
	FindByID(ctx context.Context, id int64) (*model.Employee, error)
	FindByEmail(ctx context.Context, email string) (*model.Employee, error)
}

// AuthMiddleware validates the bearer token and stores the caller's
// auth.Identity in the request context. The employee is resolved by the
// employee_id claim, falling back to the email claim.
func AuthMiddleware(tokens TokenValidator, employees EmployeeResolver, metrics *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailed()
				respondWithError(w, r, http.StatusUnauthorized, "Not authenticated", "No authorization header")
				return
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				metrics.AuthFailed()
				respondWithError(w, r, http.StatusUnauthorized, "Not authenticated", "Invalid authorization header")
				return
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				metrics.AuthFailed()
				respondWithError(w, r, http.StatusUnauthorized, "Invalid authentication credentials", "")
				return
			}

			employee, err := resolveEmployee(r.Context(), employees, claims)
			switch {
			case errors.Is(err, domain.ErrEmployeeNotFound):
				metrics.AuthFailed()
				respondWithError(w, r, http.StatusUnauthorized, "Invalid authentication credentials", "Unknown employee")
				return
			case err != nil:
				slog.ErrorContext(r.Context(), "Resolving employee", "error", err, "requestID", middleware.GetReqID(r.Context()))
				respondWithError(w, r, http.StatusInternalServerError, "Internal server error", "")
				return
			case !employee.IsActive():
				metrics.AuthFailed()
				respondWithError(w, r, http.StatusUnauthorized, "Invalid authentication credentials", "Employee account is inactive")
				return
			}

			ctx := auth.WithIdentity(r.Context(), auth.NewIdentity(employee))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveEmployee(ctx context.Context, employees EmployeeResolver, claims *auth.Claims) (*model.Employee, error) {
	if claims.EmployeeID != 0 {
		return employees.FindByID(ctx, claims.EmployeeID)
	}
	return employees.FindByEmail(ctx, claims.Email)
}

// RequireRole rejects authenticated callers lacking every one of roles.
// Rejections are written to the audit log.
func RequireRole(logger audit.Logger, roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := auth.IdentityFromContext(r.Context())
			if !ok {
				respondWithError(w, r, http.StatusUnauthorized, "Not authenticated", "")
				return
			}

			if !identity.HasRole(roles...) {
				employeeID := identity.EmployeeID
				if err := logger.Log(r.Context(), audit.Entry{
					EmployeeID:   &employeeID,
					Action:       model.ActionAccessDenied,
					ResourceType: "route",
					ResourceID:   r.URL.Path,
					Details: map[string]interface{}{
						"method": r.Method,
						"role":   string(identity.Role),
					},
				}); err != nil {
					slog.WarnContext(r.Context(), "Writing audit log", "error", err, "employeeID", employeeID)
				}
				respondWithError(w, r, http.StatusForbidden, "Forbidden", "Insufficient role")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
