package stock

import (
	"context"
)

// TxManager runs fn inside one storage transaction. The ledger's
// check-and-set contract depends on it: row locks taken inside fn are
// held until fn returns.
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
