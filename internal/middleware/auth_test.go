package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dangerclosesec/adoptionhub/internal/audit"
	"github.com/dangerclosesec/adoptionhub/internal/auth"
	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/middleware"
	"github.com/dangerclosesec/adoptionhub/internal/mocks"
	"github.com/dangerclosesec/adoptionhub/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingLogger struct {
	entries []audit.Entry
}

func (l *recordingLogger) Log(_ context.Context, entry audit.Entry) error {
	l.entries = append(l.entries, entry)
	return nil
}

func newTokens(t *testing.T) *auth.TokenManager {
	t.Helper()
	tm, err := auth.NewTokenManager("test-secret", "HS256", "https://login.example.test", "hub.example.test", time.Hour)
	require.NoError(t, err)
	return tm
}

func identityEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := auth.IdentityFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"employee_id":   identity.EmployeeID,
			"department_id": identity.DepartmentID,
			"role":          identity.Role,
		})
	})
}

func TestAuthMiddleware(t *testing.T) {
	tokens := newTokens(t)

	active := &model.Employee{ID: 42, Email: "e42@example.test", DepartmentID: 3, Role: "Employee", Status: model.StatusActive}
	inactive := &model.Employee{ID: 43, Email: "e43@example.test", DepartmentID: 3, Role: model.RoleEmployee, Status: model.StatusInactive}

	t.Run("identity comes from the directory row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		employees := mocks.NewMockEmployeeRepositoryIface(ctrl)
		employees.EXPECT().FindByID(gomock.Any(), int64(42)).Return(active, nil)

		// The token claims department 9 and admin; the directory says otherwise.
		token, err := tokens.Generate(42, active.Email, "E42", 9, "admin")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		middleware.AuthMiddleware(tokens, employees, nil)(identityEcho(t)).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.EqualValues(t, 42, body["employee_id"])
		assert.EqualValues(t, 3, body["department_id"])
		assert.Equal(t, "employee", body["role"])
	})

	t.Run("falls back to email claim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		employees := mocks.NewMockEmployeeRepositoryIface(ctrl)
		employees.EXPECT().FindByEmail(gomock.Any(), active.Email).Return(active, nil)

		token, err := tokens.Generate(0, active.Email, "E42", 0, "")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		middleware.AuthMiddleware(tokens, employees, nil)(identityEcho(t)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejections", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		employees := mocks.NewMockEmployeeRepositoryIface(ctrl)
		employees.EXPECT().FindByID(gomock.Any(), int64(43)).Return(inactive, nil)
		employees.EXPECT().FindByID(gomock.Any(), int64(99)).Return(nil, domain.ErrEmployeeNotFound)

		inactiveToken, err := tokens.Generate(43, inactive.Email, "E43", 3, "")
		require.NoError(t, err)
		unknownToken, err := tokens.Generate(99, "ghost@example.test", "Ghost", 3, "")
		require.NoError(t, err)

		reg := prometheus.NewRegistry()
		metrics := middleware.NewMetrics(reg)

		headers := map[string]string{
			"missing header": "",
			"wrong scheme":   "Basic abc",
			"bad token":      "Bearer nope",
			"inactive":       "Bearer " + inactiveToken,
			"unknown":        "Bearer " + unknownToken,
		}

		for name, header := range headers {
			t.Run(name, func(t *testing.T) {
				req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
				if header != "" {
					req.Header.Set("Authorization", header)
				}
				rec := httptest.NewRecorder()

				next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
					t.Fatal("next handler must not run")
				})
				middleware.AuthMiddleware(tokens, employees, metrics)(next).ServeHTTP(rec, req)

				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))

				var body map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.EqualValues(t, http.StatusUnauthorized, body["status_code"])
			})
		}
	})

	t.Run("directory failure is a 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		employees := mocks.NewMockEmployeeRepositoryIface(ctrl)
		employees.EXPECT().FindByID(gomock.Any(), int64(42)).Return(nil, errors.New("connection refused"))

		token, err := tokens.Generate(42, active.Email, "E42", 3, "")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		middleware.AuthMiddleware(tokens, employees, nil)(identityEcho(t)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestAuthFailuresAreCounted(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(reg)
	ctrl := gomock.NewController(t)
	employees := mocks.NewMockEmployeeRepositoryIface(ctrl)

	handler := middleware.AuthMiddleware(newTokens(t), employees, metrics)(http.NotFoundHandler())
	for i := 0; i < 3; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/me", nil))
	}

	count, err := testutil.GatherAndCount(reg, "hub_auth_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRequireRole(t *testing.T) {
	logger := &recordingLogger{}
	guard := middleware.RequireRole(logger, model.RoleAdmin)
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/audit-logs", nil)
		req = req.WithContext(auth.WithIdentity(req.Context(), auth.Identity{EmployeeID: 1, Role: model.RoleAdmin}))
		rec := httptest.NewRecorder()
		guard(ok).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("employee is forbidden and audited", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/audit-logs", nil)
		req = req.WithContext(auth.WithIdentity(req.Context(), auth.Identity{EmployeeID: 42, Role: model.RoleEmployee}))
		rec := httptest.NewRecorder()
		guard(ok).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		require.Len(t, logger.entries, 1)
		assert.Equal(t, model.ActionAccessDenied, logger.entries[0].Action)
		assert.Equal(t, int64(42), *logger.entries[0].EmployeeID)
	})

	t.Run("no identity is unauthenticated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guard(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/audit-logs", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
