package sale

import (
	"context"

	"github.com/payflow/storepos/internal/domain/sale"
)

// ApplyDiscountUseCase sets the absolute discount on a draft sale.
// Applying again replaces the previous discount, it does not stack.
type ApplyDiscountUseCase struct {
	saleRepo  sale.Repository
	txManager TxManager
}

// NewApplyDiscountUseCase wires the use case.
func NewApplyDiscountUseCase(saleRepo sale.Repository, txManager TxManager) *ApplyDiscountUseCase {
	return &ApplyDiscountUseCase{
		saleRepo:  saleRepo,
		txManager: txManager,
	}
}

// ApplyDiscountRequest carries the discount in minor currency units.
type ApplyDiscountRequest struct {
	SaleID   uint
	Discount int64
}

// Execute locks the sale, applies the discount, and persists the
// recomputed total.
func (uc *ApplyDiscountUseCase) Execute(ctx context.Context, req ApplyDiscountRequest) (*sale.Sale, error) {
	var updated *sale.Sale
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		s, err := uc.saleRepo.LockByID(txCtx, req.SaleID)
		if err != nil {
			return err
		}

		if err := s.ApplyDiscount(req.Discount); err != nil {
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
