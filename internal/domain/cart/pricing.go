package cart

import "math"

const (
	// FreeDeliveryAbove is the subtotal above which delivery is free.
	// The rule is a step function, not a sliding scale.
	FreeDeliveryAbove = 500.0

	// DeliveryFlatFee applies to every order at or below the threshold.
	DeliveryFlatFee = 40.0

	// TaxRate applies to the subtotal only; fees are not taxed.
	TaxRate = 0.05
)

// Totals is the derived price breakdown of a line set.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// ComputeTotals prices a set of lines. Pure and idempotent, so it is safe
// to call on every mutation.
func ComputeTotals(lines []Line) Totals {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.Price * float64(l.Qty)
	}

	fee := DeliveryFlatFee
	if subtotal > FreeDeliveryAbove {
		fee = 0
	}

	tax := math.Round(subtotal * TaxRate)

	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal + fee + tax,
	}
}
