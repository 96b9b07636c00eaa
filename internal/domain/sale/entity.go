package sale

import (
	"time"
)

// Status is the sale order state. Stored as int for cheap indexing.
type Status int

const (
	StatusDraft           Status = 1
	StatusCheckoutPending Status = 2
	StatusCompleted       Status = 3
	StatusCancelled       Status = 4
)

func (s Status) String() string {
	switch s {
	case StatusDraft:
		return "DRAFT"
	case StatusCheckoutPending:
		return "CHECKOUT_PENDING"
	case StatusCompleted:
		return "COMPLETED"
	case StatusCancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// Sale is the order aggregate root; Item is its child entity. Money is
// int64 minor currency units. Items and discount are mutable only in
// DRAFT; the totals always satisfy total = subtotal - discount and
// 0 <= discount <= subtotal.
type Sale struct {
	ID         uint
	SaleNo     string
	OperatorID uint
	StoreID    uint
	Status     Status
	Items      []Item
	Subtotal   int64
	Discount   int64
	Total      int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	FinishedAt *time.Time
}

// Item is one sale line. UnitPrice snapshots the price at the moment
// the line was added, so later catalog changes never alter a sale.
type Item struct {
	ID        uint
	SaleID    uint
	ProductID uint
	Quantity  int
	UnitPrice int64
	CreatedAt time.Time
}

// NewSale opens a draft with no items and zero totals.
func NewSale(saleNo string, operatorID, storeID uint) *Sale {
	now := time.Now()
	return &Sale{
		SaleNo:     saleNo,
		OperatorID: operatorID,
		StoreID:    storeID,
		Status:     StatusDraft,
		Items:      nil,
		Subtotal:   0,
		Discount:   0,
		Total:      0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// CanTransitionTo checks the status machine. DRAFT only moves to
// CHECKOUT_PENDING; the two terminal states are reached from
// CHECKOUT_PENDING by the fulfillment side.
func (s *Sale) CanTransitionTo(target Status) bool {
	transitions := map[Status][]Status{
		StatusDraft:           {StatusCheckoutPending},
		StatusCheckoutPending: {StatusCompleted, StatusCancelled},
		StatusCompleted:       {},
		StatusCancelled:       {},
	}

	allowedTargets, exists := transitions[s.Status]
	if !exists {
		return false
	}

	for _, allowed := range allowedTargets {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the status, rejecting illegal jumps.
func (s *Sale) TransitionTo(target Status) error {
	if !s.CanTransitionTo(target) {
		return ErrSaleNotInDraftStatus
	}
	s.Status = target
	s.UpdatedAt = time.Now()
	return nil
}

// IsDraft reports whether the sale is still mutable.
func (s *Sale) IsDraft() bool {
	return s.Status == StatusDraft
}

// AddItem appends a line and recomputes the totals. The new item
// carries no id yet; the repository fills it on insert.
func (s *Sale) AddItem(productID uint, quantity int, unitPrice int64) (*Item, error) {
	if !s.IsDraft() {
		return nil, ErrSaleNotInDraftStatus
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice < 0 {
		return nil, ErrInvalidUnitPrice
	}

	item := Item{
		SaleID:    s.ID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		CreatedAt: time.Now(),
	}
	s.Items = append(s.Items, item)

	s.Subtotal += unitPrice * int64(quantity)
	s.Total = s.Subtotal - s.Discount
	s.UpdatedAt = time.Now()

	return &s.Items[len(s.Items)-1], nil
}

// RemoveItem deletes a line and recomputes the totals. The subtotal is
// clamped at zero, and the discount is re-clamped to the new subtotal
// so 0 <= discount <= subtotal keeps holding after every removal.
func (s *Sale) RemoveItem(itemID uint) error {
	if !s.IsDraft() {
		return ErrSaleNotInDraftStatus
	}

	idx := -1
	for i, item := range s.Items {
		if item.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrSaleItemNotFound
	}

	removed := s.Items[idx]
	s.Items = append(s.Items[:idx], s.Items[idx+1:]...)

	s.Subtotal -= removed.UnitPrice * int64(removed.Quantity)
	if s.Subtotal < 0 {
		s.Subtotal = 0
	}
	if s.Discount > s.Subtotal {
		s.Discount = s.Subtotal
	}
	s.Total = s.Subtotal - s.Discount
	s.UpdatedAt = time.Now()

	return nil
}

// ApplyDiscount sets (not adds to) the discount and recomputes the
// total. A discount above the subtotal is rejected, including any
// positive discount on an empty sale.
func (s *Sale) ApplyDiscount(discount int64) error {
	if !s.IsDraft() {
		return ErrSaleNotInDraftStatus
	}
	if discount < 0 || discount > s.Subtotal {
		return ErrInvalidDiscount
	}

	s.Discount = discount
	s.Total = s.Subtotal - discount
	s.UpdatedAt = time.Now()
	return nil
}

// RequestCheckout validates completeness and flips the sale to
// CHECKOUT_PENDING. The transition is irreversible from this service's
// point of view.
func (s *Sale) RequestCheckout() error {
	if !s.IsDraft() {
		return ErrSaleNotInDraftStatus
	}
	if len(s.Items) == 0 {
		return ErrSaleWithoutItems
	}
	if s.Total <= 0 {
		return ErrSaleWithInvalidTotal
	}

	return s.TransitionTo(StatusCheckoutPending)
}

// Complete marks fulfillment success. Driven by the downstream
// fulfillment confirmation, never by the checkout path.
func (s *Sale) Complete() error {
	if err := s.TransitionTo(StatusCompleted); err != nil {
		return err
	}
	now := time.Now()
	s.FinishedAt = &now
	return nil
}

// Cancel marks fulfillment failure or abandonment.
func (s *Sale) Cancel() error {
	if err := s.TransitionTo(StatusCancelled); err != nil {
		return err
	}
	now := time.Now()
	s.FinishedAt = &now
	return nil
}

// CalculateSubtotal recomputes the subtotal from the lines, used to
// cross-check the stored running total.
func (s *Sale) CalculateSubtotal() int64 {
	var subtotal int64
	for _, item := range s.Items {
		subtotal += item.UnitPrice * int64(item.Quantity)
	}
	return subtotal
}

// FindItem returns the line with the given id, or nil.
func (s *Sale) FindItem(itemID uint) *Item {
	for i := range s.Items {
		if s.Items[i].ID == itemID {
			return &s.Items[i]
		}
	}
	return nil
}
