package sale

import (
	"context"

	"github.com/payflow/storepos/internal/domain/sale"
)

// StartSaleUseCase opens a draft order for an operator at a store.
type StartSaleUseCase struct {
	saleRepo sale.Repository
}

// NewStartSaleUseCase wires the use case.
func NewStartSaleUseCase(saleRepo sale.Repository) *StartSaleUseCase {
	return &StartSaleUseCase{saleRepo: saleRepo}
}

// StartSaleRequest identifies who is selling where.
type StartSaleRequest struct {
	OperatorID uint
	StoreID    uint
}

// Execute creates the draft with zero items and zero totals. It always
// succeeds short of storage failure.
func (uc *StartSaleUseCase) Execute(ctx context.Context, req StartSaleRequest) (*sale.Sale, error) {
	s := sale.NewSale(sale.GenerateSaleNo(), req.OperatorID, req.StoreID)

	if err := uc.saleRepo.Create(ctx, s); err != nil {
		return nil, err
	}

	return s, nil
}
