package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

const (
	EventsExchange = "inventory_events"

	ReservationExpirationExchange   = "reservation_expiration_exchange"
	ReservationExpirationQueue      = "reservation_expiration_queue"
	ReservationExpirationRoutingKey = "reservation_expiration"
)

// EventPublisher is what the application layer publishes through after a commit.
type EventPublisher interface {
	PublishStockEvent(ctx context.Context, event StockEvent) error
	PublishTransferEvent(ctx context.Context, event TransferEvent) error
	PublishReservationExpiration(ctx context.Context, msg ReservationExpirationMessage) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	mu      sync.Mutex
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

// declareTopology is shared by the publisher and the consumer so either can start first.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		EventsExchange, // name
		"topic",        // type
		true,           // durable
		false,          // auto-delete
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return err
	}

	// Needs the rabbitmq_delayed_message_exchange plugin.
	err = channel.ExchangeDeclare(
		ReservationExpirationExchange,
		"x-delayed-message",
		true,
		false,
		false,
		false,
		amqp091.Table{"x-delayed-type": "direct"},
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		ReservationExpirationQueue, // name
		true,                       // durable
		false,                      // auto-delete
		false,                      // exclusive
		false,                      // no-wait
		nil,                        // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		ReservationExpirationQueue,
		ReservationExpirationRoutingKey,
		ReservationExpirationExchange,
		false,
		nil,
	)
}

func (p *Publisher) PublishStockEvent(ctx context.Context, event StockEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	return p.publishJSON(ctx, EventsExchange, event.Type, event.EventID, event, nil)
}

func (p *Publisher) PublishTransferEvent(ctx context.Context, event TransferEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	return p.publishJSON(ctx, EventsExchange, event.Type, event.EventID, event, nil)
}

func (p *Publisher) PublishReservationExpiration(ctx context.Context, msg ReservationExpirationMessage) error {
	delayMs := time.Until(msg.ExpiresAt).Milliseconds()
	if delayMs < 0 {
		delayMs = 0
	}
	return p.publishJSON(ctx, ReservationExpirationExchange, ReservationExpirationRoutingKey, uuid.NewString(), msg,
		amqp091.Table{"x-delay": delayMs})
}

func (p *Publisher) publishJSON(ctx context.Context, exchange, routingKey, messageID string, payload any, headers amqp091.Table) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.PublishWithContext(
		ctx,
		exchange,   // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    messageID,
			Timestamp:    time.Now().UTC(),
			Headers:      headers,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
