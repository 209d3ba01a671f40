// Package eventbus connects the snapshot cache to journal entry events.
// When an entry is created, edited, or deleted elsewhere in the system,
// the consumer drops the user's cached snapshots so the next query
// recomputes.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// ExchangeName is the topic exchange journal events are published to.
	ExchangeName = "quill.events"

	// DefaultQueueName is the invalidator's queue.
	DefaultQueueName = "quill.analytics.invalidator"

	// entryEventPattern matches journal.entry.created, .updated, .deleted.
	entryEventPattern = "journal.entry.*"
)

// Invalidator is the downstream side of a cache invalidation.
type Invalidator interface {
	InvalidateUser(ctx context.Context, userID uuid.UUID) error
}

// entryEvent is the payload shared by all journal entry events.
type entryEvent struct {
	EventID string    `json:"eventId"`
	UserID  uuid.UUID `json:"userId"`
	EntryID uuid.UUID `json:"entryId"`
}

// RabbitMQInvalidator consumes journal entry events and invalidates the
// snapshot cache for the affected user.
type RabbitMQInvalidator struct {
	conn        *amqp.Connection
	channel     *amqp.Channel
	queue       string
	invalidator Invalidator
	logger      *slog.Logger
	mu          sync.Mutex
	running     bool
}

// RabbitMQInvalidatorConfig configures the invalidator consumer.
type RabbitMQInvalidatorConfig struct {
	URL       string
	QueueName string
	Exchange  string
	Logger    *slog.Logger
}

// NewRabbitMQInvalidator connects to RabbitMQ and binds the entry event
// routing keys to the invalidator queue.
func NewRabbitMQInvalidator(cfg RabbitMQInvalidatorConfig, invalidator Invalidator) (*RabbitMQInvalidator, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.QueueName == "" {
		cfg.QueueName = DefaultQueueName
	}
	if cfg.Exchange == "" {
		cfg.Exchange = ExchangeName
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = ch.QueueDeclare(
		cfg.QueueName,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := ch.QueueBind(cfg.QueueName, entryEventPattern, cfg.Exchange, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	cfg.Logger.Info("cache invalidator connected",
		"queue", cfg.QueueName,
		"exchange", cfg.Exchange,
	)

	return &RabbitMQInvalidator{
		conn:        conn,
		channel:     ch,
		queue:       cfg.QueueName,
		invalidator: invalidator,
		logger:      cfg.Logger,
	}, nil
}

// Start consumes entry events until the context is cancelled.
func (r *RabbitMQInvalidator) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return fmt.Errorf("invalidator already running")
	}
	r.running = true
	r.mu.Unlock()

	if err := r.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	msgs, err := r.channel.Consume(
		r.queue,
		"",    // consumer tag (auto-generated)
		false, // auto-ack (we'll manually ack)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	r.logger.Info("started consuming entry events", "queue", r.queue)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("invalidator context cancelled, stopping")
			return ctx.Err()

		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("message channel closed unexpectedly")
			}

			if err := r.processMessage(ctx, msg); err != nil {
				r.logger.Error("failed to process entry event",
					"routing_key", msg.RoutingKey,
					"error", err,
				)
				if nackErr := msg.Nack(false, true); nackErr != nil {
					r.logger.Error("failed to nack message", "error", nackErr)
				}
			} else {
				if ackErr := msg.Ack(false); ackErr != nil {
					r.logger.Error("failed to ack message", "error", ackErr)
				}
			}
		}
	}
}

func (r *RabbitMQInvalidator) processMessage(ctx context.Context, msg amqp.Delivery) error {
	var event entryEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		// Bad payload, ack and discard rather than requeue forever.
		r.logger.Error("failed to unmarshal entry event",
			"routing_key", msg.RoutingKey,
			"error", err,
		)
		return nil
	}

	if event.UserID == uuid.Nil {
		r.logger.Warn("entry event without user id, discarding",
			"routing_key", msg.RoutingKey,
			"event_id", event.EventID,
		)
		return nil
	}

	if err := r.invalidator.InvalidateUser(ctx, event.UserID); err != nil {
		return fmt.Errorf("failed to invalidate user %s: %w", event.UserID, err)
	}

	r.logger.Debug("invalidated cached snapshots",
		"user_id", event.UserID,
		"routing_key", msg.RoutingKey,
	)
	return nil
}

// Close shuts down the AMQP channel and connection.
func (r *RabbitMQInvalidator) Close() error {
	if err := r.channel.Close(); err != nil {
		return err
	}
	return r.conn.Close()
}
