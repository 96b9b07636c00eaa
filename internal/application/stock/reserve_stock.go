package stock

import (
	"context"

	"github.com/payflow/storepos/internal/domain/stock"
)

// ReserveStockUseCase holds units against an in-progress sale by moving
// them from available to reserved.
type ReserveStockUseCase struct {
	stockRepo stock.Repository
	txManager TxManager
}

// NewReserveStockUseCase wires the use case.
func NewReserveStockUseCase(stockRepo stock.Repository, txManager TxManager) *ReserveStockUseCase {
	return &ReserveStockUseCase{
		stockRepo: stockRepo,
		txManager: txManager,
	}
}

// ReserveStockRequest carries the hold.
type ReserveStockRequest struct {
	ProductID uint
	Quantity  int
}

// Execute performs the available->reserved counter move atomically: the
// availability check and the write happen under the row lock, so two
// concurrent reservations cannot both pass the check against a stale
// snapshot and over-reserve.
func (uc *ReserveStockUseCase) Execute(ctx context.Context, req ReserveStockRequest) (*stock.Record, error) {
	if req.Quantity <= 0 {
		return nil, stock.ErrInvalidQuantity
	}

	var record *stock.Record
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		r, err := uc.stockRepo.LockByProductID(txCtx, req.ProductID)
		if err != nil {
			return err
		}

		if err := r.Reserve(req.Quantity); err != nil {
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
