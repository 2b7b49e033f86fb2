package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/Prawin5557/Uzhavar-Connect/internal/config"
	"github.com/Prawin5557/Uzhavar-Connect/pkg/logger"
)

// CatalogFeedProducer pushes raw feed records onto the catalog topic for
// the API's consumer to ingest.
type CatalogFeedProducer struct {
	client *kgo.Client
	topic  string
	log    logger.Logger
}

func NewCatalogFeedProducer(cfg config.KafkaConfig, log logger.Logger) (*CatalogFeedProducer, error) {
	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.CatalogTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.DisableIdempotentWrite(),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	log.Info("kafka feed producer ready",
		logger.Any("brokers", cfg.Brokers),
		logger.String("topic", cfg.CatalogTopic),
	)

	return &CatalogFeedProducer{
		client: client,
		topic:  cfg.CatalogTopic,
		log:    log,
	}, nil
}

func (p *CatalogFeedProducer) PublishProduct(ctx context.Context, payload []byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("payload is empty")
	}

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(uuid.NewString()),
		Value:     payload,
		Timestamp: time.Now().UTC(),
	}

	results := p.client.ProduceSync(ctx, rec)
	if err := results.FirstErr(); err != nil {
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}

	return nil
}

func (p *CatalogFeedProducer) Close(ctx context.Context) error {
	p.log.Info("closing kafka feed producer", logger.String("topic", p.topic))
	p.client.Close()
	return nil
}
