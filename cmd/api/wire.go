//go:build wireinject
// +build wireinject

// Wire injector declarations. Run `wire gen ./cmd/api` to generate
// wire_gen.go; main.go currently assembles the same graph by hand.
package main

import (
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appproduct "github.com/payflow/storepos/internal/application/product"
	appsale "github.com/payflow/storepos/internal/application/sale"
	appstock "github.com/payflow/storepos/internal/application/stock"
	"github.com/payflow/storepos/internal/domain/event"
	"github.com/payflow/storepos/internal/domain/product"
	"github.com/payflow/storepos/internal/infrastructure/config"
	"github.com/payflow/storepos/internal/infrastructure/messaging"
	"github.com/payflow/storepos/internal/infrastructure/persistence/mysql"
	"github.com/payflow/storepos/internal/infrastructure/persistence/redis"
	"github.com/payflow/storepos/internal/interface/http/handler"
	"github.com/payflow/storepos/internal/interface/http/middleware"
	"github.com/payflow/storepos/pkg/jwt"
	"github.com/payflow/storepos/pkg/mq"
)

var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

var repositorySet = wire.NewSet(
	provideProductRepository,
	mysql.NewStockRepository,
	mysql.NewSaleRepository,
	mysql.NewTxManager,
	wire.Bind(new(appstock.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(appsale.TxManager), new(*mysql.TxManager)),
)

var messagingSet = wire.NewSet(
	provideMQPublisher,
	messaging.NewEventPublisher,
	wire.Bind(new(event.Publisher), new(*messaging.EventPublisher)),
)

// provideProductRepository wraps the MySQL catalog with the Redis
// cache-aside layer, mirroring the manual assembly in main.go.
func provideProductRepository(db *gorm.DB, client *goredis.Client, cfg *config.Config) product.Repository {
	return redis.NewProductCache(
		mysql.NewProductRepository(db),
		client,
		cfg.Redis.ProductCacheTTL,
	)
}

func provideMQPublisher(cfg *config.Config) (*mq.Publisher, error) {
	return mq.NewPublisher(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Exchange, "topic")
}

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

var applicationSet = wire.NewSet(
	appproduct.NewCreateProductUseCase,
	appproduct.NewUpdateProductUseCase,
	appproduct.NewActivateProductUseCase,
	appproduct.NewDeactivateProductUseCase,
	appproduct.NewGetProductUseCase,
	appproduct.NewListProductsUseCase,
	appstock.NewCreateStockUseCase,
	appstock.NewAddStockUseCase,
	appstock.NewReserveStockUseCase,
	appstock.NewConfirmReservationUseCase,
	appstock.NewGetStockUseCase,
	appsale.NewStartSaleUseCase,
	appsale.NewAddItemUseCase,
	appsale.NewRemoveItemUseCase,
	appsale.NewApplyDiscountUseCase,
	appsale.NewCheckoutSaleUseCase,
	appsale.NewGetSaleUseCase,
	appsale.NewListSalesUseCase,
)

var interfaceSet = wire.NewSet(
	provideJWTManager,
	handler.NewProductHandler,
	handler.NewStockHandler,
	handler.NewSaleHandler,
	middleware.NewAuthMiddleware,
)

// App bundles the wired handlers for route registration.
type App struct {
	ProductHandler *handler.ProductHandler
	StockHandler   *handler.StockHandler
	SaleHandler    *handler.SaleHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// InitializeApp builds the full dependency graph.
func InitializeApp() (*App, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		messagingSet,
		applicationSet,
		interfaceSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil
}
