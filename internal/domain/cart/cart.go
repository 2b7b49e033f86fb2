package cart

import (
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/catalog"
)

// Line is one cart entry. Price is snapshotted at add time; Qty is always
// within [1, AvailableQty of the referenced product at mutation time].
type Line struct {
	ProductID string
	SellerID  string
	Name      string
	Price     float64
	Qty       int
}

// Cart holds at most one line per product id, in insertion order. Totals
// are derived on demand and never stored.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add inserts a line for the product or increments an existing one. The
// resulting quantity is clamped to the product's available stock; adding
// to a line already at the cap is a silent no-op rather than an error.
func (c *Cart) Add(p catalog.Product, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}

	for i := range c.lines {
		if c.lines[i].ProductID != p.ID {
			continue
		}
		if c.lines[i].Qty >= p.AvailableQty {
			// Already holding everything in stock.
			return nil
		}
		next := c.lines[i].Qty + qty
		if next > p.AvailableQty {
			next = p.AvailableQty
		}
		c.lines[i].Qty = next
		return nil
	}

	if p.AvailableQty == 0 {
		return ErrOutOfStock
	}
	if qty > p.AvailableQty {
		qty = p.AvailableQty
	}

	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		SellerID:  p.SellerID,
		Name:      p.Name,
		Price:     p.Price,
		Qty:       qty,
	})
	return nil
}

// ChangeQty adjusts a line by delta. The quantity never drops below 1;
// removal is a separate explicit action. maxQty is the product's current
// available stock, re-checked here because stock may have changed since
// the line was added.
func (c *Cart) ChangeQty(productID string, delta, maxQty int) error {
	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}
		next := c.lines[i].Qty + delta
		if maxQty >= 1 && next > maxQty {
			next = maxQty
		}
		if next < 1 {
			next = 1
		}
		c.lines[i].Qty = next
		return nil
	}
	return ErrLineNotFound
}

// Remove deletes the line entirely. Removing an absent line is a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally. Confirmation prompts belong to
// the caller.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy so callers cannot mutate cart state behind the
// invariants.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Line(productID string) (Line, bool) {
	for _, l := range c.lines {
		if l.ProductID == productID {
			return l, true
		}
	}
	return Line{}, false
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Totals prices the cart. An empty cart totals to zero; the flat delivery
// fee only applies once there is something to deliver.
func (c *Cart) Totals() Totals {
	if len(c.lines) == 0 {
		return Totals{}
	}
	return ComputeTotals(c.lines)
}
