package mysql

import (
	"context"

	"gorm.io/gorm"
)

// TxManager wraps gorm transactions. The transactional DB handle is
// passed to repositories through the context, so every repository call
// inside the closure joins the same transaction.
type TxManager struct {
	db *gorm.DB
}

// NewTxManager creates the manager.
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction runs fn in a database transaction. A non-nil error rolls
// back, nil commits. Nested calls reuse GORM savepoints.
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return fn(txCtx)
	})
}
