package sale

import (
	"context"
	"log"
	"time"

	"github.com/payflow/storepos/internal/domain/event"
	"github.com/payflow/storepos/internal/domain/sale"
	apperrors "github.com/payflow/storepos/pkg/errors"
)

// CheckoutSaleUseCase moves a draft sale to CHECKOUT_PENDING and
// announces it to downstream consumers.
//
// The status write commits first; the event is published after the
// transaction. A publish failure does not roll the status back, the
// sale stays CHECKOUT_PENDING and the error surfaces to the caller.
type CheckoutSaleUseCase struct {
	saleRepo  sale.Repository
	publisher event.Publisher
	txManager TxManager
}

// NewCheckoutSaleUseCase wires the use case.
func NewCheckoutSaleUseCase(saleRepo sale.Repository, publisher event.Publisher, txManager TxManager) *CheckoutSaleUseCase {
	return &CheckoutSaleUseCase{
		saleRepo:  saleRepo,
		publisher: publisher,
		txManager: txManager,
	}
}

// CheckoutSaleRequest identifies the sale to check out.
type CheckoutSaleRequest struct {
	SaleID uint
}

// Execute validates and transitions the sale inside a transaction,
// then publishes exactly one sale.checkout_requested event. A second
// checkout of the same sale fails the draft check under the row lock,
// so the event can never be emitted twice.
func (uc *CheckoutSaleUseCase) Execute(ctx context.Context, req CheckoutSaleRequest) (*sale.Sale, error) {
	var checked *sale.Sale
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		s, err := uc.saleRepo.LockByID(txCtx, req.SaleID)
		if err != nil {
			return err
		}

		if err := s.RequestCheckout(); err != nil {
			return err
		}

		if err := uc.saleRepo.Update(txCtx, s); err != nil {
			return err
		}

		checked = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	evt := sale.NewCheckoutRequestedEvent(checked, time.Now())
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		log.Printf("checkout %s: publish failed: %v", checked.SaleNo, err)
		return checked, &apperrors.AppError{
			Code:    apperrors.ErrCodePublishError,
			Message: "failed to publish checkout event",
			Err:     err,
		}
	}

	return checked, nil
}
