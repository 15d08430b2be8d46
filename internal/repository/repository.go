// internal/repository/repository.go
package repository

import (
	"errors"
	"fmt"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	serializationFailureCode = "40001"
	deadlockDetectedCode     = "40P01"
	uniqueViolationCode      = "23505"
)

// translateError maps driver failures onto domain sentinels. Missing rows
// become notFound; transient write conflicts become domain.ErrStorageConflict.
// Any other error is returned unchanged for the caller to wrap.
func translateError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", domain.ErrStorageConflict, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case serializationFailureCode, deadlockDetectedCode, uniqueViolationCode:
			return fmt.Errorf("%w: %w", domain.ErrStorageConflict, err)
		}
	}

	return err
}
