package avro

// OrderEventSchema is the Avro schema for order lifecycle events. The
// producer owns every field, so no nullable unions are needed.
const OrderEventSchema = `{
	"type": "record",
	"name": "OrderEvent",
	"namespace": "com.uzhavarconnect.order",
	"fields": [
		{"name": "order_id", "type": "string"},
		{"name": "buyer_id", "type": "string"},
		{"name": "event_type", "type": "string"},
		{"name": "status", "type": "string"},
		{"name": "total", "type": "double"},
		{"name": "payment_method", "type": "string"},
		{"name": "occurred_at", "type": "string"},

		{"name": "items", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "OrderEventItem",
				"fields": [
					{"name": "product_id", "type": "string"},
					{"name": "seller_id", "type": "string"},
					{"name": "name", "type": "string"},
					{"name": "qty", "type": "long"},
					{"name": "price", "type": "double"}
				]
			}
		}}
	]
}`
