package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appproduct "github.com/payflow/storepos/internal/application/product"
	appsale "github.com/payflow/storepos/internal/application/sale"
	appstock "github.com/payflow/storepos/internal/application/stock"
	"github.com/payflow/storepos/internal/infrastructure/config"
	"github.com/payflow/storepos/internal/infrastructure/messaging"
	"github.com/payflow/storepos/internal/infrastructure/persistence/mysql"
	"github.com/payflow/storepos/internal/infrastructure/persistence/redis"
	"github.com/payflow/storepos/internal/interface/http/handler"
	"github.com/payflow/storepos/internal/interface/http/middleware"
	"github.com/payflow/storepos/pkg/jwt"
	"github.com/payflow/storepos/pkg/metrics"
	"github.com/payflow/storepos/pkg/mq"
	"github.com/payflow/storepos/pkg/response"
	"github.com/payflow/storepos/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	log.Printf("config loaded: port=%d mode=%s db=%s:%d/%s redis=%s",
		cfg.Server.Port, cfg.Server.Mode,
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName,
		cfg.Redis.Addr())

	metrics.InitMetrics()

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer("storepos-api", cfg.Tracing.Endpoint)
		if err != nil {
			log.Fatalf("init tracer: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				log.Printf("shutdown tracer: %v", err)
			}
		}()
	}

	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("init redis: %v", err)
	}

	mqPublisher, err := mq.NewPublisher(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Exchange, "topic")
	if err != nil {
		log.Fatalf("init rabbitmq: %v", err)
	}
	defer mqPublisher.Close()

	// infrastructure
	productRepo := redis.NewProductCache(
		mysql.NewProductRepository(db),
		redisClient,
		cfg.Redis.ProductCacheTTL,
	)
	stockRepo := mysql.NewStockRepository(db)
	saleRepo := mysql.NewSaleRepository(db)
	txManager := mysql.NewTxManager(db)
	eventPublisher := messaging.NewEventPublisher(mqPublisher)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// application
	createProduct := appproduct.NewCreateProductUseCase(productRepo)
	updateProduct := appproduct.NewUpdateProductUseCase(productRepo)
	activateProduct := appproduct.NewActivateProductUseCase(productRepo)
	deactivateProduct := appproduct.NewDeactivateProductUseCase(productRepo)
	getProduct := appproduct.NewGetProductUseCase(productRepo)
	listProducts := appproduct.NewListProductsUseCase(productRepo)

	createStock := appstock.NewCreateStockUseCase(productRepo, stockRepo)
	addStock := appstock.NewAddStockUseCase(stockRepo, txManager)
	reserveStock := appstock.NewReserveStockUseCase(stockRepo, txManager)
	confirmReservation := appstock.NewConfirmReservationUseCase(stockRepo, txManager)
	getStock := appstock.NewGetStockUseCase(stockRepo)

	startSale := appsale.NewStartSaleUseCase(saleRepo)
	addItem := appsale.NewAddItemUseCase(saleRepo, txManager)
	removeItem := appsale.NewRemoveItemUseCase(saleRepo, txManager)
	applyDiscount := appsale.NewApplyDiscountUseCase(saleRepo, txManager)
	checkoutSale := appsale.NewCheckoutSaleUseCase(saleRepo, eventPublisher, txManager)
	getSale := appsale.NewGetSaleUseCase(saleRepo)
	listSales := appsale.NewListSalesUseCase(saleRepo)

	// interface
	productHandler := handler.NewProductHandler(
		createProduct, updateProduct, activateProduct,
		deactivateProduct, getProduct, listProducts,
	)
	stockHandler := handler.NewStockHandler(
		createStock, addStock, reserveStock, confirmReservation, getStock,
	)
	saleHandler := handler.NewSaleHandler(
		startSale, addItem, removeItem, applyDiscount,
		checkoutSale, getSale, listSales,
	)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.Metrics())

	registerRoutes(r, productHandler, stockHandler, saleHandler, authMiddleware)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown server: %v", err)
	}
}

func registerRoutes(
	r *gin.Engine,
	productHandler *handler.ProductHandler,
	stockHandler *handler.StockHandler,
	saleHandler *handler.SaleHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		products := v1.Group("/products")
		{
			products.POST("", productHandler.Create)
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.PUT("/:id", productHandler.Update)
			products.POST("/:id/activate", productHandler.Activate)
			products.POST("/:id/deactivate", productHandler.Deactivate)
		}

		stocks := v1.Group("/stocks")
		{
			stocks.POST("", stockHandler.Create)
			stocks.GET("/:product_id", stockHandler.Get)
			stocks.POST("/:product_id/add", stockHandler.Add)
			stocks.POST("/:product_id/reserve", stockHandler.Reserve)
			stocks.POST("/:product_id/confirm", stockHandler.Confirm)
		}

		sales := v1.Group("/sales")
		{
			sales.POST("", saleHandler.Start)
			sales.GET("", saleHandler.List)
			sales.GET("/:id", saleHandler.Get)
			sales.POST("/:id/items", saleHandler.AddItem)
			sales.DELETE("/:id/items/:item_id", saleHandler.RemoveItem)
			sales.POST("/:id/discount", saleHandler.ApplyDiscount)
			sales.POST("/:id/checkout", saleHandler.Checkout)
		}
	}
}
