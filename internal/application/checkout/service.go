package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	cartdomain "github.com/Prawin5557/Uzhavar-Connect/internal/domain/cart"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/order"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/repository"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/user"
	"github.com/Prawin5557/Uzhavar-Connect/pkg/logger"
)

// CartSource is the slice of the cart manager checkout needs: read the
// lines, and clear them once the order store confirms.
type CartSource interface {
	Lines(sessionID string) []cartdomain.Line
	Clear(sessionID string)
}

// Publisher emits order lifecycle events. Publishing is best-effort and
// never fails the user-facing operation.
type Publisher interface {
	PublishOrderEvent(ctx context.Context, o *order.Order, eventType string) error
}

// Service converts carts into orders and governs status transitions.
type Service struct {
	orders    repository.OrderRepository
	carts     CartSource
	publisher Publisher
	log       logger.Logger
}

func NewService(orders repository.OrderRepository, carts CartSource, publisher Publisher, log logger.Logger) *Service {
	return &Service{orders: orders, carts: carts, publisher: publisher, log: log}
}

// CheckoutCommand carries everything the buyer submits at checkout.
type CheckoutCommand struct {
	SessionID     string
	Delivery      order.Delivery
	PaymentMethod string
}

// Checkout creates an order from the session's cart. The cart is cleared
// only after the order store confirms; on any failure cart and form state
// survive for retry.
func (s *Service) Checkout(ctx context.Context, actor user.Actor, cmd CheckoutCommand) (*order.Order, error) {
	if !actor.Authenticated() {
		return nil, user.ErrUnauthenticated
	}
	if actor.Role != user.RoleBuyer {
		return nil, user.ErrForbidden
	}

	lines := s.carts.Lines(cmd.SessionID)
	if len(lines) == 0 {
		return nil, cartdomain.ErrEmptyCart
	}

	items := make([]order.Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, order.Item{
			ProductID: l.ProductID,
			SellerID:  l.SellerID,
			Name:      l.Name,
			Qty:       l.Qty,
			Price:     l.Price,
		})
	}

	// Priced once here; later catalog changes never touch this order.
	totals := cartdomain.ComputeTotals(lines)

	o, err := order.NewOrder(uuid.NewString(), actor.ID, items, totals.Total, cmd.Delivery, cmd.PaymentMethod)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// The store confirmed; only now does the local cart state change.
	s.carts.Clear(cmd.SessionID)
	s.publish(ctx, o, "order_created")

	return o, nil
}

// Transition applies a lifecycle action to an order on behalf of an
// actor. Rejections leave the stored order untouched.
func (s *Service) Transition(ctx context.Context, actor user.Actor, orderID string, action order.Action) (*order.Order, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("fetch order %s: %w", orderID, err)
	}
	if o == nil {
		return nil, order.ErrNotFound
	}

	if err := o.Apply(actor, action); err != nil {
		return nil, err
	}

	if err := s.orders.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("persist transition: %w", err)
	}

	s.publish(ctx, o, "order_"+string(o.Status))
	return o, nil
}

// OrdersForBuyer lists the acting buyer's orders.
func (s *Service) OrdersForBuyer(ctx context.Context, actor user.Actor) ([]order.Order, error) {
	if !actor.Authenticated() {
		return nil, user.ErrUnauthenticated
	}
	orders, err := s.orders.FindByBuyer(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch buyer orders: %w", err)
	}
	return orders, nil
}

// OrdersForSeller lists orders containing the acting seller's items.
func (s *Service) OrdersForSeller(ctx context.Context, actor user.Actor) ([]order.Order, error) {
	if !actor.Authenticated() {
		return nil, user.ErrUnauthenticated
	}
	orders, err := s.orders.FindBySeller(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch seller orders: %w", err)
	}
	return orders, nil
}

func (s *Service) publish(ctx context.Context, o *order.Order, eventType string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, o, eventType); err != nil {
		s.log.Warn("publish order event failed",
			logger.String("order_id", o.ID),
			logger.String("event_type", eventType),
			logger.Error(err),
		)
	}
}
