package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	domain "github.com/Prawin5557/Uzhavar-Connect/internal/domain/catalog"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/repository"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/user"
	"github.com/Prawin5557/Uzhavar-Connect/pkg/logger"
)

// Snapshot is one consistent read of the catalog. Generation orders
// snapshots so a slow fetch can never overwrite a newer one.
type Snapshot struct {
	Products   []domain.Product
	Generation uint64
	FetchedAt  time.Time
}

// Service owns the catalog snapshot and answers view queries against it.
// All reads within one request see the same snapshot.
type Service struct {
	products repository.ProductRepository
	log      logger.Logger

	mu   sync.Mutex
	snap Snapshot
	gen  uint64
}

func NewService(products repository.ProductRepository, log logger.Logger) *Service {
	return &Service{products: products, log: log}
}

// Refresh fetches the current product set. If another refresh was started
// after this one, the late response is discarded and the newer snapshot
// wins (latest supersedes earlier).
func (s *Service) Refresh(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	products, err := s.products.FindAll(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetch products: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.Generation > gen {
		// A refresh started after ours already committed; ours is stale.
		return s.snap, nil
	}
	s.snap = Snapshot{
		Products:   products,
		Generation: gen,
		FetchedAt:  time.Now().UTC(),
	}
	return s.snap, nil
}

// Snapshot returns the last committed snapshot without refetching.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Browse refreshes the snapshot and applies the view state to it.
func (s *Service) Browse(ctx context.Context, view domain.ViewState) ([]domain.Product, error) {
	snap, err := s.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ApplyView(snap.Products, view), nil
}

// Product looks up a single product from the catalog store.
func (s *Service) Product(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch product %s: %w", id, err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// SellerListing is the seller's own paginated listing plus the aggregates
// shown above it. Aggregates always come from the fresh snapshot.
func (s *Service) SellerListing(ctx context.Context, sellerID string, view domain.ViewState, page int) (domain.Page, domain.SellerStats, error) {
	products, err := s.products.FindBySeller(ctx, sellerID)
	if err != nil {
		return domain.Page{}, domain.SellerStats{}, fmt.Errorf("fetch seller products: %w", err)
	}

	stats := domain.StatsFor(products)
	filtered := domain.ApplyView(products, view)
	return domain.Paginate(filtered, page), stats, nil
}

type ProductInput struct {
	Name     string
	Category string
	Price    float64
	Qty      int
	Image    string
}

// Create adds a product to the acting seller's listing.
func (s *Service) Create(ctx context.Context, actor user.Actor, id string, in ProductInput) (*domain.Product, error) {
	if !actor.Authenticated() {
		return nil, user.ErrUnauthenticated
	}
	if actor.Role != user.RoleSeller {
		return nil, user.ErrForbidden
	}

	p, err := domain.NewProduct(id, actor.ID, in.Name, in.Category, in.Price, in.Qty, in.Image)
	if err != nil {
		return nil, err
	}
	if err := s.products.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	s.invalidate()
	return p, nil
}

// Update replaces the mutable fields of a product the actor owns.
func (s *Service) Update(ctx context.Context, actor user.Actor, id string, in ProductInput) (*domain.Product, error) {
	existing, err := s.ownedBy(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	updated, err := domain.NewProduct(id, existing.SellerID, in.Name, in.Category, in.Price, in.Qty, in.Image)
	if err != nil {
		return nil, err
	}
	updated.CreatedAt = existing.CreatedAt

	if err := s.products.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	s.invalidate()
	return updated, nil
}

// Delete removes a product the actor owns.
func (s *Service) Delete(ctx context.Context, actor user.Actor, id string) error {
	if _, err := s.ownedBy(ctx, actor, id); err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.invalidate()
	return nil
}

// Ingest upserts a product record arriving from the catalog feed.
func (s *Service) Ingest(ctx context.Context, p *domain.Product) error {
	if p == nil {
		return fmt.Errorf("product is nil")
	}
	if err := s.products.Save(ctx, p); err != nil {
		return fmt.Errorf("save product: %w", err)
	}

	s.invalidate()
	s.log.Debug("catalog feed product ingested", logger.String("product_id", p.ID))
	return nil
}

func (s *Service) ownedBy(ctx context.Context, actor user.Actor, id string) (*domain.Product, error) {
	if !actor.Authenticated() {
		return nil, user.ErrUnauthenticated
	}
	if actor.Role != user.RoleSeller {
		return nil, user.ErrForbidden
	}

	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch product %s: %w", id, err)
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if existing.SellerID != actor.ID {
		return nil, domain.ErrNotOwner
	}
	return existing, nil
}

// invalidate drops the cached snapshot after a catalog mutation so stale
// AvailableQty values are never used for clamping.
func (s *Service) invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = Snapshot{}
}
