package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/Prawin5557/Uzhavar-Connect/internal/config"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/order"
	"github.com/Prawin5557/Uzhavar-Connect/internal/infrastructure/encoding/avro"
	"github.com/Prawin5557/Uzhavar-Connect/pkg/logger"
)

// OrderEventProducer publishes Avro-encoded order lifecycle events. It
// satisfies the checkout service's Publisher interface.
type OrderEventProducer struct {
	client  *kgo.Client
	encoder *avro.Encoder
	topic   string
	log     logger.Logger
}

func NewOrderEventProducer(cfg config.KafkaConfig, log logger.Logger) (*OrderEventProducer, error) {
	encoder, err := avro.NewEncoder(avro.OrderEventSchema)
	if err != nil {
		return nil, err
	}

	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.OrderEventsTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.DisableIdempotentWrite(),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	log.Info("kafka producer ready",
		logger.Any("brokers", cfg.Brokers),
		logger.String("topic", cfg.OrderEventsTopic),
	)

	return &OrderEventProducer{
		client:  client,
		encoder: encoder,
		topic:   cfg.OrderEventsTopic,
		log:     log,
	}, nil
}

func (p *OrderEventProducer) PublishOrderEvent(ctx context.Context, o *order.Order, eventType string) error {
	native, err := avro.ToOrderEventNative(o, eventType, time.Now())
	if err != nil {
		return err
	}

	payload, err := p.encoder.EncodeNative(native)
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}

	rec := &kgo.Record{
		Topic: p.topic,
		// Keyed by order so one order's events stay in one partition.
		Key:       []byte(o.ID),
		Value:     payload,
		Timestamp: time.Now().UTC(),
	}

	results := p.client.ProduceSync(ctx, rec)
	if err := results.FirstErr(); err != nil {
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}

	return nil
}

func (p *OrderEventProducer) Close(ctx context.Context) error {
	p.log.Info("closing kafka producer", logger.String("topic", p.topic))
	p.client.Close()
	return nil
}
