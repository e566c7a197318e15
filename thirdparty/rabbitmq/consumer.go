package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/inventory-service/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer hands expired reservations back to the order service, which owns the decision
// to cancel the order and release its stock through the internal releases endpoint.
type Consumer struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
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

	return &Consumer{
		conn:       conn,
		channel:    channel,
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		ReservationExpirationQueue,
		"reservation-expiry-"+uuid.NewString(), // consumer tag
		false,                                  // auto-ack
		false,                                  // exclusive
		false,                                  // no-local
		false,                                  // no-wait
		nil,                                    // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Warn("[Consumer] delivery channel closed")
					return
				}
				if err := c.handle(ctx, msg.Body); err != nil {
					logger.Error("[Consumer] handle reservation expiration failed", zap.String("error", err.Error()))
					_ = msg.Nack(false, true)
					continue
				}
				_ = msg.Ack(false)
			}
		}
	}()

	return nil
}

// handle returns an error only when the message should be redelivered.
func (c *Consumer) handle(ctx context.Context, body []byte) error {
	var expMsg ReservationExpirationMessage
	if err := json.Unmarshal(body, &expMsg); err != nil {
		logger.Warn("[Consumer] dropping malformed message", zap.String("error", err.Error()))
		return nil
	}
	if expMsg.OrderID == 0 {
		logger.Warn("[Consumer] dropping message without order id")
		return nil
	}

	if err := c.callCancelOrderAPI(ctx, expMsg.OrderID); err != nil {
		return fmt.Errorf("cancel order %d: %w", expMsg.OrderID, err)
	}

	logger.Info("[Consumer] reservation expired, order cancel requested",
		zap.Uint64("order_id", expMsg.OrderID),
		zap.Uint64("variant_id", expMsg.VariantID),
		zap.Uint64("warehouse_id", expMsg.WarehouseID),
		zap.Int64("qty", expMsg.Qty),
	)
	return nil
}

// callCancelOrderAPI treats 4xx as final: the order was already paid or canceled.
func (c *Consumer) callCancelOrderAPI(ctx context.Context, orderID uint64) error {
	url := fmt.Sprintf("%s/internal/v1/order/%d/cancel", c.apiURL, orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "reservation-expiration-consumer")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
