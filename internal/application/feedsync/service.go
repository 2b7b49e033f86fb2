package feedsync

import (
	"context"
	"encoding/json"
	"fmt"
)

// ProductFetcher abstracts the feed client so the sync loop is testable.
type ProductFetcher interface {
	FetchProducts(ctx context.Context) ([]json.RawMessage, error)
}

// Publisher pushes one raw feed record onto the catalog topic.
type Publisher interface {
	PublishProduct(ctx context.Context, payload []byte) error
}

type Service struct {
	fetcher   ProductFetcher
	publisher Publisher
}

func NewService(fetcher ProductFetcher, publisher Publisher) *Service {
	return &Service{
		fetcher:   fetcher,
		publisher: publisher,
	}
}

// Sync fetches the full feed and pushes each record (raw JSON) onto the
// catalog topic. Invalid records are skipped, not fatal.
func (s *Service) Sync(ctx context.Context) (int, error) {
	products, err := s.fetcher.FetchProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch products: %w", err)
	}

	count := 0
	for _, raw := range products {
		if !json.Valid(raw) {
			continue
		}
		if err := s.publisher.PublishProduct(ctx, raw); err != nil {
			return count, fmt.Errorf("publish product #%d: %w", count, err)
		}
		count++
	}
	return count, nil
}
