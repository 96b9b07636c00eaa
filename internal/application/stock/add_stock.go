package stock

import (
	"context"

	"github.com/payflow/storepos/internal/domain/stock"
)

// AddStockUseCase restocks available units.
type AddStockUseCase struct {
	stockRepo stock.Repository
	txManager TxManager
}

// NewAddStockUseCase wires the use case.
func NewAddStockUseCase(stockRepo stock.Repository, txManager TxManager) *AddStockUseCase {
	return &AddStockUseCase{
		stockRepo: stockRepo,
		txManager: txManager,
	}
}

// AddStockRequest carries the adjustment.
type AddStockRequest struct {
	ProductID uint
	Quantity  int
}

// Execute adds quantity to the available counter. The row is locked for
// the duration of the transaction so the validate-then-write pair runs
// against one snapshot.
func (uc *AddStockUseCase) Execute(ctx context.Context, req AddStockRequest) (*stock.Record, error) {
	if req.Quantity <= 0 {
		return nil, stock.ErrInvalidQuantity
	}

	var record *stock.Record
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		r, err := uc.stockRepo.LockByProductID(txCtx, req.ProductID)
		if err != nil {
			return err
		}

		if err := r.Add(req.Quantity); err != nil {
			return err
		}

		if err := uc.stockRepo.Update(txCtx, r); err != nil {
			return err
		}

		record = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}
