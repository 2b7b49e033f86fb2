package catalog

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortNone      SortKey = "NONE"
	SortPriceAsc  SortKey = "PRICE_ASC"
	SortPriceDesc SortKey = "PRICE_DESC"
)

const (
	// CategoryAll disables category filtering.
	CategoryAll = "ALL"

	// PageSize is the fixed page size of the seller-facing listing.
	PageSize = 5

	// LowStockThreshold marks a product as running low.
	LowStockThreshold = 5
)

// ViewState captures what the user is currently looking at. Applying it
// never mutates the snapshot it reads.
type ViewState struct {
	SearchText string
	Category   string
	Sort       SortKey
}

// ApplyView filters and sorts a product snapshot. The name filter is a
// case-insensitive substring match; the category filter is exact unless
// the category is ALL or empty. Sorting is stable so ties keep snapshot
// order.
func ApplyView(products []Product, view ViewState) []Product {
	search := strings.ToLower(strings.TrimSpace(view.SearchText))

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if view.Category != "" && view.Category != CategoryAll && p.Category != view.Category {
			continue
		}
		out = append(out, p)
	}

	switch view.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}

	return out
}

// Page is one page of a filtered listing.
type Page struct {
	Items      []Product `json:"items"`
	Number     int       `json:"page"`
	PageCount  int       `json:"page_count"`
	TotalItems int       `json:"total_items"`
}

// Paginate slices a filtered listing into fixed-size pages. Out-of-range
// page numbers clamp to [1, pageCount] instead of failing.
func Paginate(products []Product, page int) Page {
	total := len(products)
	pageCount := (total + PageSize - 1) / PageSize
	if pageCount < 1 {
		pageCount = 1
	}

	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:      products[start:end],
		Number:     page,
		PageCount:  pageCount,
		TotalItems: total,
	}
}

// SellerStats are the aggregates shown on the seller's own listing. They
// are recomputed from the current snapshot on every view; caching them
// separately would let them go stale.
type SellerStats struct {
	TotalProducts  int     `json:"total_products"`
	LowStockCount  int     `json:"low_stock_count"`
	InventoryValue float64 `json:"inventory_value"`
}

func StatsFor(products []Product) SellerStats {
	stats := SellerStats{TotalProducts: len(products)}
	for _, p := range products {
		if p.AvailableQty < LowStockThreshold {
			stats.LowStockCount++
		}
		stats.InventoryValue += p.Price * float64(p.AvailableQty)
	}
	return stats
}
