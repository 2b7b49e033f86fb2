package main

import (
	"context"
	"log"

	authapp "github.com/Prawin5557/Uzhavar-Connect/internal/application/auth"
	cartapp "github.com/Prawin5557/Uzhavar-Connect/internal/application/cart"
	catalogapp "github.com/Prawin5557/Uzhavar-Connect/internal/application/catalog"
	checkoutapp "github.com/Prawin5557/Uzhavar-Connect/internal/application/checkout"
	reportapp "github.com/Prawin5557/Uzhavar-Connect/internal/application/report"
	"github.com/Prawin5557/Uzhavar-Connect/internal/config"
	ginserver "github.com/Prawin5557/Uzhavar-Connect/internal/infrastructure/http/gin"
	kafkainfra "github.com/Prawin5557/Uzhavar-Connect/internal/infrastructure/messaging/kafka"
	"github.com/Prawin5557/Uzhavar-Connect/internal/infrastructure/persistence/postgres"
	"github.com/Prawin5557/Uzhavar-Connect/internal/interfaces/http/handler"
	"github.com/Prawin5557/Uzhavar-Connect/internal/interfaces/http/router"
	"github.com/Prawin5557/Uzhavar-Connect/pkg/logger"
	"github.com/Prawin5557/Uzhavar-Connect/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	zlog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer zlog.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(cfg.DB)
	if err != nil {
		zlog.Fatal("postgres connection failed", logger.Error(err))
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	withdrawalRepo := postgres.NewWithdrawalRepository(pool)

	producer, err := kafkainfra.NewOrderEventProducer(cfg.Kafka, zlog)
	if err != nil {
		zlog.Fatal("kafka producer failed", logger.Error(err))
	}
	defer producer.Close(ctx)

	authService := authapp.NewService(userRepo)
	catalogService := catalogapp.NewService(productRepo, zlog)
	cartService := cartapp.NewService(catalogService)
	checkoutService := checkoutapp.NewService(orderRepo, cartService, producer, zlog)
	reportService := reportapp.NewService(orderRepo, withdrawalRepo)

	consumer := kafkainfra.NewCatalogFeedConsumer(cfg.Kafka, catalogService)
	go func() {
		if err := consumer.Start(ctx); err != nil {
			zlog.Warn("kafka consumer stopped", logger.Error(err))
		}
	}()
	defer consumer.Close()

	engine := ginserver.NewEngine()
	router.RegisterRoutes(engine, router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Product: handler.NewProductHandler(catalogService),
		Cart:    handler.NewCartHandler(cartService),
		Order:   handler.NewOrderHandler(checkoutService),
		Report:  handler.NewReportHandler(reportService),
	}, metrics.NewServerMetrics("api"))

	zlog.Info("starting api server", logger.String("addr", cfg.Server.Address()))
	server := ginserver.NewServer(cfg.Server, engine)
	if err := server.Run(); err != nil {
		zlog.Fatal("server run failed", logger.Error(err))
	}
}
