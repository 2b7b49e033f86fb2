package main

import (
	"context"
	"log"

	app "github.com/Prawin5557/Uzhavar-Connect/internal/application/feedsync"
	"github.com/Prawin5557/Uzhavar-Connect/internal/config"
	httpfeed "github.com/Prawin5557/Uzhavar-Connect/internal/infrastructure/http/feed"
	kafkainfra "github.com/Prawin5557/Uzhavar-Connect/internal/infrastructure/messaging/kafka"
	"github.com/Prawin5557/Uzhavar-Connect/pkg/logger"
)

// One-shot job: pull the full upstream catalog feed and push each record
// onto the catalog topic. Run it from cron or by hand.
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

	if cfg.Feed.APIKey == "" || cfg.Feed.SourceID == "" {
		zlog.Fatal("FEED_API_KEY or FEED_SOURCE_ID is empty")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := httpfeed.NewClient(cfg.Feed, zlog)

	producer, err := kafkainfra.NewCatalogFeedProducer(cfg.Kafka, zlog)
	if err != nil {
		zlog.Fatal("kafka producer failed", logger.Error(err))
	}
	defer producer.Close(ctx)

	svc := app.NewService(client, producer)

	n, err := svc.Sync(ctx)
	if err != nil {
		zlog.Fatal("feed sync failed", logger.Error(err))
	}

	zlog.Info("feed sync finished",
		logger.Int("records", n),
		logger.String("topic", cfg.Kafka.CatalogTopic),
	)
}
