package sale

import (
	"context"

	"github.com/payflow/storepos/internal/domain/sale"
)

// RemoveItemUseCase drops a line from a draft sale.
type RemoveItemUseCase struct {
	saleRepo  sale.Repository
	txManager TxManager
}

// NewRemoveItemUseCase wires the use case.
func NewRemoveItemUseCase(saleRepo sale.Repository, txManager TxManager) *RemoveItemUseCase {
	return &RemoveItemUseCase{
		saleRepo:  saleRepo,
		txManager: txManager,
	}
}

// RemoveItemRequest identifies the line to drop.
type RemoveItemRequest struct {
	SaleID uint
	ItemID uint
}

// Execute locks the sale, removes the line, and persists the
// recomputed totals. The discount is clamped to the new subtotal
// inside the entity.
func (uc *RemoveItemUseCase) Execute(ctx context.Context, req RemoveItemRequest) (*sale.Sale, error) {
	var updated *sale.Sale
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		s, err := uc.saleRepo.LockByID(txCtx, req.SaleID)
		if err != nil {
			return err
		}

		if err := s.RemoveItem(req.ItemID); err != nil {
			return err
		}

		if err := uc.saleRepo.RemoveItem(txCtx, req.SaleID, req.ItemID); err != nil {
			return err
		}

		if err := uc.saleRepo.Update(txCtx, s); err != nil {
			return err
		}

		updated = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
