package stock

import (
	"context"

	"github.com/payflow/storepos/internal/domain/stock"
)

// ConfirmReservationUseCase consumes previously reserved units, e.g. on
// payment capture. Confirmed units leave the ledger; the available
// counter is untouched.
type ConfirmReservationUseCase struct {
	stockRepo stock.Repository
	txManager TxManager
}

// NewConfirmReservationUseCase wires the use case.
func NewConfirmReservationUseCase(stockRepo stock.Repository, txManager TxManager) *ConfirmReservationUseCase {
	return &ConfirmReservationUseCase{
		stockRepo: stockRepo,
		txManager: txManager,
	}
}

// ConfirmReservationRequest carries the consumption.
type ConfirmReservationRequest struct {
	ProductID uint
	Quantity  int
}

// Execute decrements the reserved counter under the row lock.
func (uc *ConfirmReservationUseCase) Execute(ctx context.Context, req ConfirmReservationRequest) (*stock.Record, error) {
	if req.Quantity <= 0 {
		return nil, stock.ErrInvalidQuantity
	}

	var record *stock.Record
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		r, err := uc.stockRepo.LockByProductID(txCtx, req.ProductID)
		if err != nil {
			return err
		}

		if err := r.Confirm(req.Quantity); err != nil {
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
