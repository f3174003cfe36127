package workflow

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/rtlite/movieworld/internal/cache"
	"github.com/rtlite/movieworld/internal/mq"
)

// FulfillmentWorkflow consumes order-placed messages and records that the
// customer has been notified. The notification itself is just a structured
// log line standing in for the confirmation email.
type FulfillmentWorkflow struct {
	cache  *cache.RedisCache
	logger *zap.Logger
}

func NewFulfillmentWorkflow(cache *cache.RedisCache, logger *zap.Logger) *FulfillmentWorkflow {
	return &FulfillmentWorkflow{
		cache:  cache,
		logger: logger,
	}
}

func (w *FulfillmentWorkflow) Start(mqConn *amqp.Connection) error {
	if err := w.ConsumeOrderPlaced(mqConn); err != nil {
		return err
	}
	return nil
}

func (w *FulfillmentWorkflow) ConsumeOrderPlaced(conn *amqp.Connection) error {
	ch, err := mq.NewChannel(conn)
	if err != nil {
		return err
	}

	msgs, err := ch.Consume(mq.OrderPlacedQueue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			if err := w.handleOrderPlaced(msg); err != nil {
				w.logger.Error("failed to handle order placed message", zap.Error(err))
			}
		}
	}()

	return nil
}

func (w *FulfillmentWorkflow) handleOrderPlaced(msg amqp.Delivery) error {
	var message mq.OrderPlacedMessage
	if err := json.Unmarshal(msg.Body, &message); err != nil {
		msg.Nack(false, false)
		return err
	}

	w.logger.Info("order confirmation sent",
		zap.Uint("order_id", message.OrderID),
		zap.String("customer_email", message.CustomerEmail),
		zap.Float64("total_price", message.TotalPrice),
	)

	if w.cache != nil {
		if err := w.cache.SetOrderStatus(message.OrderID, cache.OrderStatusNotified); err != nil {
			msg.Nack(false, true)
			return err
		}
	}

	msg.Ack(false)

	return nil
}
