package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	appsale "github.com/payflow/storepos/internal/application/sale"
	"github.com/payflow/storepos/internal/infrastructure/config"
	"github.com/payflow/storepos/internal/infrastructure/messaging"
	"github.com/payflow/storepos/internal/infrastructure/persistence/mysql"
)

// fulfillmentQueue is shared by all worker replicas so the broker load
// balances deliveries between them.
const fulfillmentQueue = "storepos.fulfillment"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	log.Printf("config loaded: db=%s:%d/%s rabbitmq=%s:%d exchange=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName,
		cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.Exchange)

	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	saleRepo := mysql.NewSaleRepository(db)
	txManager := mysql.NewTxManager(db)

	completeSale := appsale.NewCompleteSaleUseCase(saleRepo, txManager)
	cancelSale := appsale.NewCancelSaleUseCase(saleRepo, txManager)

	consumer, err := messaging.NewFulfillmentConsumer(
		cfg.RabbitMQ.URL(), cfg.RabbitMQ.Exchange, fulfillmentQueue,
		completeSale, cancelSale,
	)
	if err != nil {
		log.Fatalf("init consumer: %v", err)
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		cancel()
	}()

	log.Printf("consuming fulfillment events from queue %s", fulfillmentQueue)
	if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("consume: %v", err)
	}
}
