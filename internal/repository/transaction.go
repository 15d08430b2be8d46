// internal/repository/transaction.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"gorm.io/gorm"
)

type txContextKey struct{}

// TransactionManagerIface runs fn inside one database transaction. Every
// repository call made with the ctx passed to fn joins that transaction.
type TransactionManagerIface interface {
	Within(ctx context.Context, fn func(ctx context.Context) error) error
}

type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Within commits when fn returns nil and rolls back otherwise. A nested call
// reuses the outer transaction. A failed commit that Postgres reports as a
// serialization failure or deadlock is returned as domain.ErrStorageConflict.
func (m *TransactionManager) Within(ctx context.Context, fn func(ctx context.Context) error) error {
	if fn == nil {
		return errors.New("repository: transaction function is required")
	}
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx := m.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", translateError(tx.Error, domain.ErrNotFound))
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil && !errors.Is(rbErr, gorm.ErrInvalidTransaction) {
			return errors.Join(err, fmt.Errorf("failed to roll back transaction: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", translateError(err, domain.ErrNotFound))
	}
	return nil
}

func txFromContext(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(txContextKey{}).(*gorm.DB)
	return tx, ok
}

// dbFrom returns the transaction carried by ctx, or db when there is none.
func dbFrom(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := txFromContext(ctx); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
