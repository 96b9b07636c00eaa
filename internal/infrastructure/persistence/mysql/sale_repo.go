package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/payflow/storepos/internal/domain/sale"
	apperrors "github.com/payflow/storepos/pkg/errors"
)

// saleRepository persists the sale aggregate. Sales load with their
// items via Preload; totals and item rows are written in the same
// TxManager transaction.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates the MySQL sale repository.
func NewSaleRepository(db *gorm.DB) sale.Repository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, s *sale.Sale) error {
	model := toSaleModel(s)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to create sale")
	}

	s.ID = model.ID
	for i := range s.Items {
		s.Items[i].ID = model.Items[i].ID
		s.Items[i].SaleID = model.ID
	}

	return nil
}

func (r *saleRepository) FindByID(ctx context.Context, id uint) (*sale.Sale, error) {
	var model SaleModel
	db := getDB(ctx, r.db)
	err := db.Preload("Items").First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sale.ErrSaleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query sale")
	}

	return toSaleEntity(&model), nil
}

// LockByID locks the sale row with SELECT FOR UPDATE, then loads its
// items. Concurrent mutations of the same sale serialize on the row
// lock, which is what makes the draft check before checkout safe.
func (r *saleRepository) LockByID(ctx context.Context, id uint) (*sale.Sale, error) {
	var model SaleModel
	db := getDB(ctx, r.db)
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items").
		First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sale.ErrSaleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to lock sale")
	}

	return toSaleEntity(&model), nil
}

func (r *saleRepository) Update(ctx context.Context, s *sale.Sale) error {
	db := getDB(ctx, r.db)

	result := db.Model(&SaleModel{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
		"status":      int(s.Status),
		"subtotal":    s.Subtotal,
		"discount":    s.Discount,
		"total":       s.Total,
		"updated_at":  s.UpdatedAt,
		"finished_at": s.FinishedAt,
	})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to update sale")
	}

	if result.RowsAffected == 0 {
		return sale.ErrSaleNotFound
	}

	return nil
}

func (r *saleRepository) AddItem(ctx context.Context, item *sale.Item) error {
	model := SaleItemModel{
		SaleID:    item.SaleID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		CreatedAt: item.CreatedAt,
	}

	db := getDB(ctx, r.db)
	if err := db.Create(&model).Error; err != nil {
		return apperrors.Wrap(err, "failed to create sale item")
	}

	item.ID = model.ID
	return nil
}

func (r *saleRepository) RemoveItem(ctx context.Context, saleID, itemID uint) error {
	db := getDB(ctx, r.db)

	result := db.Where("id = ? AND sale_id = ?", itemID, saleID).Delete(&SaleItemModel{})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to delete sale item")
	}

	if result.RowsAffected == 0 {
		return sale.ErrSaleItemNotFound
	}

	return nil
}

func (r *saleRepository) ListByStoreID(ctx context.Context, storeID uint, page, pageSize int) ([]*sale.Sale, int64, error) {
	var models []SaleModel
	var total int64

	db := getDB(ctx, r.db)
	query := db.Model(&SaleModel{}).Where("store_id = ?", storeID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count sales")
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Items").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&models).Error

	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list sales")
	}

	sales := make([]*sale.Sale, len(models))
	for i := range models {
		sales[i] = toSaleEntity(&models[i])
	}

	return sales, total, nil
}

func toSaleModel(s *sale.Sale) *SaleModel {
	items := make([]SaleItemModel, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemModel{
			ID:        item.ID,
			SaleID:    item.SaleID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			CreatedAt: item.CreatedAt,
		}
	}

	return &SaleModel{
		ID:         s.ID,
		SaleNo:     s.SaleNo,
		OperatorID: s.OperatorID,
		StoreID:    s.StoreID,
		Status:     int(s.Status),
		Subtotal:   s.Subtotal,
		Discount:   s.Discount,
		Total:      s.Total,
		Items:      items,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		FinishedAt: s.FinishedAt,
	}
}

func toSaleEntity(model *SaleModel) *sale.Sale {
	items := make([]sale.Item, len(model.Items))
	for i, item := range model.Items {
		items[i] = sale.Item{
			ID:        item.ID,
			SaleID:    item.SaleID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			CreatedAt: item.CreatedAt,
		}
	}

	return &sale.Sale{
		ID:         model.ID,
		SaleNo:     model.SaleNo,
		OperatorID: model.OperatorID,
		StoreID:    model.StoreID,
		Status:     sale.Status(model.Status),
		Subtotal:   model.Subtotal,
		Discount:   model.Discount,
		Total:      model.Total,
		Items:      items,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
		FinishedAt: model.FinishedAt,
	}
}
