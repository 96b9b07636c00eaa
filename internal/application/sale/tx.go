package sale

import (
	"context"
)

// TxManager runs fn inside one storage transaction. Sale mutations take
// a row lock on the order inside fn, serializing per sale id.
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
