package auth

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "test-secret"
	testIssuer   = "https://login.example.test"
	testAudience = "hub.example.test"
)

func newTestManager(t *testing.T, now time.Time) *TokenManager {
	t.Helper()
	tm, err := NewTokenManager(testSecret, "HS256", testIssuer, testAudience, time.Hour, WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	return tm
}

func TestTokenRoundTrip(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	tm := newTestManager(t, now)

	token, err := tm.Generate(42, "e42@example.test", "Employee 42", 3, "employee")
	require.NoError(t, err)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.EmployeeID)
	assert.Equal(t, "e42@example.test", claims.Email)
	assert.Equal(t, int64(3), claims.DepartmentID)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestTokenValidateRejects(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	tm := newTestManager(t, now)

	sign := func(claims Claims, method jwt.SigningMethod, secret string) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}
	valid := func() Claims {
		return Claims{
			EmployeeID: 42,
			Email:      "e42@example.test",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    testIssuer,
				Audience:  jwt.ClaimStrings{testAudience},
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
				IssuedAt:  jwt.NewNumericDate(now),
			},
		}
	}

	expired := valid()
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))

	wrongIssuer := valid()
	wrongIssuer.Issuer = "https://evil.example.test"

	wrongAudience := valid()
	wrongAudience.Audience = jwt.ClaimStrings{"other"}

	noExpiry := valid()
	noExpiry.ExpiresAt = nil

	anonymous := valid()
	anonymous.EmployeeID = 0
	anonymous.Email = ""

	tests := map[string]string{
		"garbage":        "not-a-token",
		"expired":        sign(expired, jwt.SigningMethodHS256, testSecret),
		"wrong issuer":   sign(wrongIssuer, jwt.SigningMethodHS256, testSecret),
		"wrong audience": sign(wrongAudience, jwt.SigningMethodHS256, testSecret),
		"wrong secret":   sign(valid(), jwt.SigningMethodHS256, "other-secret"),
		"wrong method":   sign(valid(), jwt.SigningMethodHS512, testSecret),
		"no expiry":      sign(noExpiry, jwt.SigningMethodHS256, testSecret),
		"no identity":    sign(anonymous, jwt.SigningMethodHS256, testSecret),
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tm.Validate(token)
			assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		})
	}
}

func TestNewTokenManagerRejectsAsymmetric(t *testing.T) {
	_, err := NewTokenManager(testSecret, "RS256", testIssuer, testAudience, time.Hour)
	assert.Error(t, err)
}

func TestIdentityContext(t *testing.T) {
	_, ok := IdentityFromContext(context.Background())
	assert.False(t, ok)

	identity := NewIdentity(&model.Employee{ID: 7, Email: "m@example.test", DepartmentID: 2, Role: "Manager"})
	ctx := WithIdentity(context.Background(), identity)

	got, ok := IdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(7), got.EmployeeID)
	assert.Equal(t, model.RoleManager, got.Role)
	assert.True(t, got.IsPrivileged())
	assert.False(t, Identity{Role: model.RoleEmployee}.IsPrivileged())
}
