package order

import (
	"strings"
	"time"

	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/user"
)

// Item is one order line. SellerID rides along so role-scoped listings
// and ownership checks need no catalog lookup later.
type Item struct {
	ProductID string  `json:"product"`
	SellerID  string  `json:"seller_id"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

// Delivery holds the fields required before an order can be created.
type Delivery struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (d Delivery) validate() error {
	if strings.TrimSpace(d.Name) == "" ||
		strings.TrimSpace(d.Phone) == "" ||
		strings.TrimSpace(d.Address) == "" {
		return ErrMissingDelivery
	}
	return nil
}

// Order is created once in Pending; only Status ever changes afterwards.
// Total is a snapshot taken at creation, never recomputed from the
// catalog.
type Order struct {
	ID            string    `json:"id"`
	BuyerID       string    `json:"buyer_id"`
	Items         []Item    `json:"items"`
	Status        Status    `json:"status"`
	Total         float64   `json:"total"`
	Delivery      Delivery  `json:"delivery"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewOrder(id, buyerID string, items []Item, total float64, delivery Delivery, paymentMethod string) (*Order, error) {
	if id == "" {
		return nil, ErrMissingField
	}
	if buyerID == "" {
		return nil, user.ErrUnauthenticated
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if err := delivery.validate(); err != nil {
		return nil, err
	}

	return &Order{
		ID:            id,
		BuyerID:       buyerID,
		Items:         items,
		Status:        StatusPending,
		Total:         total,
		Delivery:      delivery,
		PaymentMethod: paymentMethod,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// HasSeller reports whether the seller owns at least one line.
func (o *Order) HasSeller(sellerID string) bool {
	for _, it := range o.Items {
		if it.SellerID == sellerID {
			return true
		}
	}
	return false
}

// Apply performs a status transition on behalf of an actor. Anything not
// in the transition table is rejected without mutating the order, as is
// an actor acting on someone else's order.
func (o *Order) Apply(actor user.Actor, action Action) error {
	if !actor.Authenticated() {
		return user.ErrUnauthenticated
	}

	switch actor.Role {
	case user.RoleBuyer:
		if actor.ID != o.BuyerID {
			return ErrTransitionRejected
		}
	case user.RoleSeller:
		if !o.HasSeller(actor.ID) {
			return ErrTransitionRejected
		}
	default:
		return ErrTransitionRejected
	}

	next, err := NextStatus(o.Status, actor.Role, action)
	if err != nil {
		return err
	}

	o.Status = next
	return nil
}
