package memory

import (
	"context"
)

// TxManager runs the function directly. The in-memory repositories are
// individually synchronized, so there is no transaction to open.
type TxManager struct{}

// NewTxManager creates the pass-through manager.
func NewTxManager() *TxManager {
	return &TxManager{}
}

func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
