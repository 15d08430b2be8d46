// internal/auth/token.go
package auth

import (
	"fmt"
	"time"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// TokenManager validates bearer tokens issued by the identity provider.
// Generate exists for development tooling and tests.
type TokenManager struct {
	secret       []byte
	method       *jwt.SigningMethodHMAC
	issuer       string
	audience     string
	expiryPeriod time.Duration
	now          func() time.Time
}

type TokenOption func(*TokenManager)

// WithClock overrides the time source used for issuing and expiry checks.
func WithClock(now func() time.Time) TokenOption {
	return func(tm *TokenManager) {
		tm.now = now
	}
}

func NewTokenManager(secret, algorithm, issuer, audience string, expiryPeriod time.Duration, opts ...TokenOption) (*TokenManager, error) {
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	tm := &TokenManager{
		secret:       []byte(secret),
		method:       method,
		issuer:       issuer,
		audience:     audience,
		expiryPeriod: expiryPeriod,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(tm)
	}
	return tm, nil
}

type Claims struct {
	EmployeeID   int64  `json:"employee_id,omitempty"`
	Email        string `json:"email"`
	DisplayName  string `json:"display_name,omitempty"`
	DepartmentID int64  `json:"department_id,omitempty"`
	Role         string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (tm *TokenManager) Generate(employeeID int64, email, displayName string, departmentID int64, role string) (string, error) {
	now := tm.now()
	claims := Claims{
		EmployeeID:   employeeID,
		Email:        email,
		DisplayName:  displayName,
		DepartmentID: departmentID,
		Role:         role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tm.issuer,
			Audience:  jwt.ClaimStrings{tm.audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.expiryPeriod)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(tm.method, claims)
	return token.SignedString(tm.secret)
}

// Validate checks signature, method, issuer, audience and expiry. Every
// failure wraps domain.ErrUnauthenticated.
func (tm *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	},
		jwt.WithValidMethods([]string{tm.method.Alg()}),
		jwt.WithIssuer(tm.issuer),
		jwt.WithAudience(tm.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tm.now),
	)

	if err != nil {
		return nil, fmt.Errorf("%w: invalid token: %w", domain.ErrUnauthenticated, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", domain.ErrUnauthenticated)
	}

	if claims.EmployeeID == 0 && claims.Email == "" {
		return nil, fmt.Errorf("%w: token carries no employee identity", domain.ErrUnauthenticated)
	}

	return claims, nil
}
