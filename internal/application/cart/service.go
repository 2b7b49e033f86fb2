package cart

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/Prawin5557/Uzhavar-Connect/internal/domain/cart"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/catalog"
)

// ProductFinder resolves the current catalog record for a product so
// quantities are re-validated against live stock on every mutation, not
// just at insertion.
type ProductFinder interface {
	Product(ctx context.Context, id string) (*catalog.Product, error)
}

// View is what the UI renders for a cart: the lines plus totals derived
// from them.
type View struct {
	Lines  []domain.Line `json:"lines"`
	Totals domain.Totals `json:"totals"`
}

// Service keys one cart per session. Each session is single-writer, but
// the API server is not, so access is serialized here.
type Service struct {
	finder ProductFinder

	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func NewService(finder ProductFinder) *Service {
	return &Service{
		finder: finder,
		carts:  make(map[string]*domain.Cart),
	}
}

// Add puts requestedQty of a product into the session's cart, clamped to
// available stock.
func (s *Service) Add(ctx context.Context, sessionID, productID string, requestedQty int) (View, error) {
	if requestedQty < 1 {
		return View{}, domain.ErrInvalidQuantity
	}

	p, err := s.finder.Product(ctx, productID)
	if err != nil {
		return View{}, fmt.Errorf("resolve product: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartFor(sessionID)
	if err := c.Add(*p, requestedQty); err != nil {
		return View{}, err
	}
	return viewOf(c), nil
}

// ChangeQty adjusts a line by delta, clamped to [1, current stock].
func (s *Service) ChangeQty(ctx context.Context, sessionID, productID string, delta int) (View, error) {
	p, err := s.finder.Product(ctx, productID)
	if err != nil {
		return View{}, fmt.Errorf("resolve product: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartFor(sessionID)
	if err := c.ChangeQty(productID, delta, p.AvailableQty); err != nil {
		return View{}, err
	}
	return viewOf(c), nil
}

// Remove deletes a line; absent lines are a no-op.
func (s *Service) Remove(sessionID, productID string) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartFor(sessionID)
	c.Remove(productID)
	return viewOf(c)
}

// Clear empties the session's cart. Callers own any confirmation prompt.
func (s *Service) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cartFor(sessionID).Clear()
}

// Get returns the current cart view.
func (s *Service) Get(sessionID string) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return viewOf(s.cartFor(sessionID))
}

// Lines exposes the raw lines for checkout.
func (s *Service) Lines(sessionID string) []domain.Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cartFor(sessionID).Lines()
}

// cartFor creates the session's cart on first touch. Callers must hold
// the mutex.
func (s *Service) cartFor(sessionID string) *domain.Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = domain.New()
		s.carts[sessionID] = c
	}
	return c
}

func viewOf(c *domain.Cart) View {
	return View{Lines: c.Lines(), Totals: c.Totals()}
}
