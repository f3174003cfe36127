package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Producer struct {
	ch *amqp.Channel
}

func NewProducer(conn *amqp.Connection) (*Producer, error) {
	ch, err := NewChannel(conn)
	if err != nil {
		return nil, err
	}
	return &Producer{ch: ch}, nil
}

func (p *Producer) Close() error {
	return p.ch.Close()
}

func (p *Producer) SendOrderPlaced(message OrderPlacedMessage) error {
	return SendImmediateMessage(p.ch, OrderPlacedQueue, message)
}

func SendImmediateMessage(ch *amqp.Channel, queueName string, message any) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = ch.PublishWithContext(
		context.Background(),
		"",
		queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message to queue %s: %w", queueName, err)
	}

	return nil
}
