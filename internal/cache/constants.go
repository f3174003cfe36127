package cache

import (
	"errors"
	"fmt"
	"time"
)

// key names definition
const (
	OrderStatusKey = "order:%d:status" // fulfillment status of an order, '%d' is order id
	NewsFeedKey    = "newsfeed:top"    // cached third-party headlines, a constant
)

const (
	OrderStatusTTL = 24 * time.Hour
	NewsFeedTTL    = 10 * time.Minute
)

func MakeOrderStatusKey(orderID uint) string {
	return fmt.Sprintf("order:%d:status", orderID)
}

type OrderStatus string

var (
	OrderStatusPlaced   OrderStatus = "PLACED"
	OrderStatusNotified OrderStatus = "NOTIFIED"
)

// errors
var (
	ErrCacheMiss = errors.New("cache miss")
)
