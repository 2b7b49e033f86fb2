package catalog

import "time"

// Product is a read-only snapshot record from the catalog store.
// AvailableQty is the sole upper bound for any cart line referencing it.
type Product struct {
	ID           string    `json:"id"`
	SellerID     string    `json:"seller_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	AvailableQty int       `json:"available_qty"`
	Image        string    `json:"image"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewProduct(id, sellerID, name, category string, price float64, availableQty int, image string) (*Product, error) {
	if id == "" || sellerID == "" || name == "" {
		return nil, ErrMissingField
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	if availableQty < 0 {
		return nil, ErrInvalidQuantity
	}

	return &Product{
		ID:           id,
		SellerID:     sellerID,
		Name:         name,
		Category:     category,
		Price:        price,
		AvailableQty: availableQty,
		Image:        image,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
