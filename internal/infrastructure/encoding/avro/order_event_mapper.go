package avro

import (
	"fmt"
	"time"

	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/order"
)

// ToOrderEventNative maps an order to the native form goavro expects for
// OrderEventSchema.
func ToOrderEventNative(o *order.Order, eventType string, occurredAt time.Time) (map[string]interface{}, error) {
	if o == nil {
		return nil, fmt.Errorf("order is nil")
	}

	items := make([]interface{}, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, map[string]interface{}{
			"product_id": it.ProductID,
			"seller_id":  it.SellerID,
			"name":       it.Name,
			"qty":        int64(it.Qty),
			"price":      it.Price,
		})
	}

	return map[string]interface{}{
		"order_id":       o.ID,
		"buyer_id":       o.BuyerID,
		"event_type":     eventType,
		"status":         string(o.Status),
		"total":          o.Total,
		"payment_method": o.PaymentMethod,
		"occurred_at":    occurredAt.UTC().Format(time.RFC3339),
		"items":          items,
	}, nil
}
