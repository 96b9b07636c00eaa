package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/payflow/storepos/internal/infrastructure/config"
)

// NewDB opens the MySQL connection, configures the pool, and runs
// AutoMigrate. Production deployments should replace AutoMigrate with
// versioned migrations.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Println("database connected")

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&ProductModel{},
		&StockModel{},
		&SaleModel{},
		&SaleItemModel{},
	)
}

// ProductModel is the GORM catalog row. Infrastructure models carry the
// GORM tags; domain entities stay persistence-free and the repository
// converts between the two.
type ProductModel struct {
	ID          uint      `gorm:"primaryKey"`
	StoreID     uint      `gorm:"index:idx_store_active;not null"`
	Name        string    `gorm:"size:200;not null"`
	Description string    `gorm:"type:text"`
	Price       int64     `gorm:"not null"`
	IsActive    bool      `gorm:"index:idx_store_active;default:true"`
	SKU         string    `gorm:"uniqueIndex;size:64;not null"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

func (ProductModel) TableName() string {
	return "products"
}

// StockModel is the GORM ledger row. The unique index on product_id
// enforces one ledger row per product even under concurrent creates.
type StockModel struct {
	ID                uint `gorm:"primaryKey"`
	ProductID         uint `gorm:"uniqueIndex;not null"`
	AvailableQuantity int  `gorm:"not null;default:0"`
	ReservedQuantity  int  `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (StockModel) TableName() string {
	return "stock_records"
}

// SaleModel is the GORM sale row. SaleNo is the business key; Status is
// a tinyint (1 draft, 2 checkout pending, 3 completed, 4 cancelled).
type SaleModel struct {
	ID         uint            `gorm:"primaryKey"`
	SaleNo     string          `gorm:"uniqueIndex;size:32;not null"`
	OperatorID uint            `gorm:"index;not null"`
	StoreID    uint            `gorm:"index;not null"`
	Status     int             `gorm:"index;type:tinyint;default:1"`
	Subtotal   int64           `gorm:"not null;default:0"`
	Discount   int64           `gorm:"not null;default:0"`
	Total      int64           `gorm:"not null;default:0"`
	Items      []SaleItemModel `gorm:"foreignKey:SaleID"`
	CreatedAt  time.Time       `gorm:"index"`
	UpdatedAt  time.Time
	FinishedAt *time.Time
}

func (SaleModel) TableName() string {
	return "sales"
}

// SaleItemModel is one sale line. UnitPrice snapshots the price at the
// time the line was added.
type SaleItemModel struct {
	ID        uint `gorm:"primaryKey"`
	SaleID    uint `gorm:"index;not null"`
	ProductID uint `gorm:"index;not null"`
	Quantity  int  `gorm:"not null"`
	UnitPrice int64 `gorm:"not null"`
	CreatedAt time.Time
}

func (SaleItemModel) TableName() string {
	return "sale_items"
}
