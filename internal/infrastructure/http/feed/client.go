package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/Prawin5557/Uzhavar-Connect/internal/config"
	"github.com/Prawin5557/Uzhavar-Connect/pkg/logger"
)

// Client pulls product records from the upstream catalog feed, one page
// at a time.
type Client struct {
	httpClient *http.Client
	cfg        config.FeedConfig
	log        logger.Logger
}

func NewClient(cfg config.FeedConfig, log logger.Logger) *Client {
	return &Client{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
		},
	}
}

type productsResponse struct {
	Data       []json.RawMessage `json:"data"`
	TotalPages int               `json:"total_pages"`
}

// FetchProducts walks every page of the source's product listing. The
// records come back raw; decoding happens at the ingest boundary.
func (c *Client) FetchProducts(ctx context.Context) ([]json.RawMessage, error) {
	if c.cfg.APIKey == "" || c.cfg.SourceID == "" {
		return nil, fmt.Errorf("feed api_key or source_id is empty")
	}

	allProducts := make([]json.RawMessage, 0)
	page := 1
	totalPages := 1
	pageSize := c.cfg.PageSize
	if pageSize <= 0 {
		pageSize = 200
	}
	sleep := time.Duration(c.cfg.SleepMS) * time.Millisecond
	if sleep <= 0 {
		sleep = time.Second
	}

	base, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid feed base url: %w", err)
	}

	for page <= totalPages {
		u := *base
		u.Path = fmt.Sprintf("%s/sources/%s/products", base.Path, c.cfg.SourceID)

		q := u.Query()
		q.Set("api_key", c.cfg.APIKey)
		q.Set("page_size", fmt.Sprintf("%d", pageSize))
		q.Set("page_number", fmt.Sprintf("%d", page))
		u.RawQuery = q.Encode()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("call feed api: %w", err)
		}

		if resp.Body != nil {
			defer resp.Body.Close()
		}

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("feed server error: status %d", resp.StatusCode)
		}

		var body productsResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}

		if len(body.Data) == 0 {
			break
		}

		allProducts = append(allProducts, body.Data...)
		c.log.Info("feed page fetched",
			logger.Int("page", page),
			logger.Int("records", len(body.Data)),
		)

		if body.TotalPages > 0 {
			totalPages = body.TotalPages
		}
		page++

		select {
		case <-ctx.Done():
			return allProducts, ctx.Err()
		case <-time.After(sleep):
		}
	}

	return allProducts, nil
}
