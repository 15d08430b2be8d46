// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrStorageConflict = errors.New("storage conflict")

	// Identity-related errors
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrInactiveEmployee = errors.New("employee is not active")
	ErrForbidden        = errors.New("forbidden")

	// Directory-related errors
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrDepartmentNotFound = errors.New("department not found")

	// Metric-related errors
	ErrInvalidScore  = errors.New("adoption score must be between 0 and 100")
	ErrInvalidPeriod = errors.New("invalid period")

	// Engagement-related errors
	ErrToolNotFound         = errors.New("tool not found")
	ErrResourceNotFound     = errors.New("learning resource not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

// IsNotFound reports whether err is any of the not-found sentinels.
func IsNotFound(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrEmployeeNotFound),
		errors.Is(err, ErrDepartmentNotFound),
		errors.Is(err, ErrToolNotFound),
		errors.Is(err, ErrResourceNotFound),
		errors.Is(err, ErrNotificationNotFound):
		return true
	}
	return false
}
