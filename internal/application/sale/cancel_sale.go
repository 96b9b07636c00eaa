package sale

import (
	"context"

	"github.com/payflow/storepos/internal/domain/sale"
)

// CancelSaleUseCase applies a fulfillment failure or abandonment,
// moving a CHECKOUT_PENDING sale to CANCELLED.
type CancelSaleUseCase struct {
	saleRepo  sale.Repository
	txManager TxManager
}

// NewCancelSaleUseCase wires the use case.
func NewCancelSaleUseCase(saleRepo sale.Repository, txManager TxManager) *CancelSaleUseCase {
	return &CancelSaleUseCase{
		saleRepo:  saleRepo,
		txManager: txManager,
	}
}

// Execute locks the sale and applies the terminal transition. Like
// completion, replays are rejected by the status machine.
func (uc *CancelSaleUseCase) Execute(ctx context.Context, saleID uint) (*sale.Sale, error) {
	var cancelled *sale.Sale
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		s, err := uc.saleRepo.LockByID(txCtx, saleID)
		if err != nil {
			return err
		}

		if err := s.Cancel(); err != nil {
			return err
		}

		if err := uc.saleRepo.Update(txCtx, s); err != nil {
			return err
		}

		cancelled = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cancelled, nil
}
