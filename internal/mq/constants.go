package mq

// Queue names and message definitions

// immediate queue from order service to the fulfillment worker
// deliver message to notify fulfillment of a freshly placed order
const (
	OrderPlacedQueue = "order.fulfillment.placed.immediate"
)

type OrderPlacedMessage struct {
	OrderID       uint    `json:"order_id"`
	CustomerEmail string  `json:"customer_email"`
	TotalPrice    float64 `json:"total_price"`
}
