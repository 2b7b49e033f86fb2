package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	catalogapp "github.com/Prawin5557/Uzhavar-Connect/internal/application/catalog"
	"github.com/Prawin5557/Uzhavar-Connect/internal/config"
	domain "github.com/Prawin5557/Uzhavar-Connect/internal/domain/catalog"
)

// feedProduct is the JSON shape of one catalog feed record.
type feedProduct struct {
	ID       string  `json:"id"`
	SellerID string  `json:"seller_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Qty      int     `json:"qty"`
	Image    string  `json:"image"`
}

// CatalogFeedConsumer upserts products arriving on the catalog feed
// topic into the catalog.
type CatalogFeedConsumer struct {
	reader  *kafkago.Reader
	handler *catalogapp.Service
}

func NewCatalogFeedConsumer(cfg config.KafkaConfig, handler *catalogapp.Service) *CatalogFeedConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.CatalogTopic,
		MinBytes: 1e3,
		MaxBytes: 1e6,
	})

	return &CatalogFeedConsumer{
		reader:  reader,
		handler: handler,
	}
}

func (c *CatalogFeedConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		var rec feedProduct
		if err := json.Unmarshal(msg.Value, &rec); err != nil {
			return fmt.Errorf("decode message: %w", err)
		}

		product, err := domain.NewProduct(rec.ID, rec.SellerID, rec.Name, rec.Category, rec.Price, rec.Qty, rec.Image)
		if err != nil {
			return fmt.Errorf("feed record %s: %w", rec.ID, err)
		}

		if err := c.handler.Ingest(ctx, product); err != nil {
			return fmt.Errorf("ingest product: %w", err)
		}
	}
}

func (c *CatalogFeedConsumer) Close() {
	_ = c.reader.Close()
}
