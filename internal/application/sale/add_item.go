package sale

import (
	"context"

	"github.com/payflow/storepos/internal/domain/sale"
)

// AddItemUseCase appends a line to a draft sale and recomputes the
// running totals. Stock reservation is a separate ledger operation;
// the two are sequenced by the caller, not coupled here.
type AddItemUseCase struct {
	saleRepo  sale.Repository
	txManager TxManager
}

// NewAddItemUseCase wires the use case.
func NewAddItemUseCase(saleRepo sale.Repository, txManager TxManager) *AddItemUseCase {
	return &AddItemUseCase{
		saleRepo:  saleRepo,
		txManager: txManager,
	}
}

// AddItemRequest carries the new line. UnitPrice snapshots the price
// offered at the till.
type AddItemRequest struct {
	SaleID    uint
	ProductID uint
	Quantity  int
	UnitPrice int64
}

// Execute locks the sale, appends the line, and writes both the line
// and the recomputed totals in one transaction.
func (uc *AddItemUseCase) Execute(ctx context.Context, req AddItemRequest) (*sale.Item, error) {
	var created sale.Item
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		s, err := uc.saleRepo.LockByID(txCtx, req.SaleID)
		if err != nil {
			return err
		}

		item, err := s.AddItem(req.ProductID, req.Quantity, req.UnitPrice)
		if err != nil {
			return err
		}

		if err := uc.saleRepo.AddItem(txCtx, item); err != nil {
			return err
		}

		if err := uc.saleRepo.Update(txCtx, s); err != nil {
			return err
		}

		created = *item
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}
