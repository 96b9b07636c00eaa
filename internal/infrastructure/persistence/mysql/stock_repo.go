package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/payflow/storepos/internal/domain/stock"
	apperrors "github.com/payflow/storepos/pkg/errors"
)

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates the MySQL ledger repository.
func NewStockRepository(db *gorm.DB) stock.Repository {
	return &stockRepository{db: db}
}

func (r *stockRepository) Create(ctx context.Context, record *stock.Record) error {
	model := toStockModel(record)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return stock.ErrStockAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create stock record")
	}

	record.ID = model.ID
	return nil
}

func (r *stockRepository) FindByProductID(ctx context.Context, productID uint) (*stock.Record, error) {
	var model StockModel
	db := getDB(ctx, r.db)
	err := db.Where("product_id = ?", productID).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, stock.ErrStockNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query stock record")
	}

	return toStockEntity(&model), nil
}

// LockByProductID reads the ledger row under SELECT FOR UPDATE so the
// read-validate-write of a reservation is atomic. Must run inside a
// TxManager transaction.
func (r *stockRepository) LockByProductID(ctx context.Context, productID uint) (*stock.Record, error) {
	var model StockModel
	db := getDB(ctx, r.db)
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("product_id = ?", productID).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, stock.ErrStockNotFound
		}
		return nil, apperrors.Wrap(err, "failed to lock stock record")
	}

	return toStockEntity(&model), nil
}

func (r *stockRepository) Update(ctx context.Context, record *stock.Record) error {
	db := getDB(ctx, r.db)

	result := db.Model(&StockModel{}).Where("id = ?", record.ID).Updates(map[string]interface{}{
		"available_quantity": record.AvailableQuantity,
		"reserved_quantity":  record.ReservedQuantity,
		"updated_at":         record.UpdatedAt,
	})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to update stock record")
	}

	if result.RowsAffected == 0 {
		return stock.ErrStockNotFound
	}

	return nil
}

func toStockModel(record *stock.Record) *StockModel {
	return &StockModel{
		ID:                record.ID,
		ProductID:         record.ProductID,
		AvailableQuantity: record.AvailableQuantity,
		ReservedQuantity:  record.ReservedQuantity,
		CreatedAt:         record.CreatedAt,
		UpdatedAt:         record.UpdatedAt,
	}
}

func toStockEntity(model *StockModel) *stock.Record {
	return &stock.Record{
		ID:                model.ID,
		ProductID:         model.ProductID,
		AvailableQuantity: model.AvailableQuantity,
		ReservedQuantity:  model.ReservedQuantity,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}
