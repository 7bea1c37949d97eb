package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/spbu-ds-practicum-2025/accounts-service/internal/config"
)

// Notification is the JSON payload published for each account notification.
type Notification struct {
	EventID   string `json:"event_id"`
	AccountID string `json:"account_id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// RabbitMQNotifier publishes account notifications to a RabbitMQ topic
// exchange. It implements domain.Notifier; delivery failures are returned to
// the engine, which logs them without affecting the transfer outcome.
type RabbitMQNotifier struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	config  config.RabbitMQConfig
}

// NewRabbitMQNotifier connects to RabbitMQ and declares the target exchange.
func NewRabbitMQNotifier(cfg config.RabbitMQConfig) (*RabbitMQNotifier, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// Declare exchange (topic exchange for routing)
	err = channel.ExchangeDeclare(
		cfg.Exchange, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &RabbitMQNotifier{
		conn:    conn,
		channel: channel,
		config:  cfg,
	}, nil
}

// Notify publishes a notification event for the given account.
func (n *RabbitMQNotifier) Notify(ctx context.Context, accountID, message string) error {
	event := Notification{
		EventID:   uuid.New().String(),
		AccountID: accountID,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	err = n.channel.PublishWithContext(ctx,
		n.config.Exchange,   // exchange
		n.config.RoutingKey, // routing key
		false,               // mandatory
		false,               // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

// Close closes the RabbitMQ channel and connection.
func (n *RabbitMQNotifier) Close() error {
	if n.channel != nil {
		if err := n.channel.Close(); err != nil {
			return fmt.Errorf("failed to close channel: %w", err)
		}
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
