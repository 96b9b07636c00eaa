package sale

import (
	"context"

	"github.com/payflow/storepos/internal/domain/sale"
)

// CompleteSaleUseCase applies the fulfillment confirmation, moving a
// CHECKOUT_PENDING sale to its COMPLETED terminal state.
type CompleteSaleUseCase struct {
	saleRepo  sale.Repository
	txManager TxManager
}

// NewCompleteSaleUseCase wires the use case.
func NewCompleteSaleUseCase(saleRepo sale.Repository, txManager TxManager) *CompleteSaleUseCase {
	return &CompleteSaleUseCase{
		saleRepo:  saleRepo,
		txManager: txManager,
	}
}

// Execute locks the sale and applies the terminal transition. Replayed
// confirmations fail the transition check and change nothing, which is
// what makes at-least-once delivery safe here.
func (uc *CompleteSaleUseCase) Execute(ctx context.Context, saleID uint) (*sale.Sale, error) {
	var completed *sale.Sale
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		s, err := uc.saleRepo.LockByID(txCtx, saleID)
		if err != nil {
			return err
		}

		if err := s.Complete(); err != nil {
			return err
		}

		if err := uc.saleRepo.Update(txCtx, s); err != nil {
			return err
		}

		completed = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	return completed, nil
}
