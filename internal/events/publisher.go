package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/logger"
)

// OrderPlacedEvent is the message published after a successful checkout.
type OrderPlacedEvent struct {
	EventID    string             `json:"event_id"`
	OrderID    int64              `json:"order_id"`
	UserID     int64              `json:"user_id"`
	TotalCents int64              `json:"total_cents"`
	Items      []domain.OrderItem `json:"items"`
	PlacedAt   time.Time          `json:"placed_at"`
}

// Publisher emits order lifecycle events for downstream consumers.
// Publishing is fire-and-forget: checkout succeeds even when the broker
// does not.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, order *domain.Order) error
	Close() error
}

// AMQPPublisher publishes events to a RabbitMQ queue.
type AMQPPublisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

func NewAMQPPublisher(url, queue string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %q: %w", queue, err)
	}

	return &AMQPPublisher{conn: conn, ch: ch, queue: queue}, nil
}

func (p *AMQPPublisher) PublishOrderPlaced(ctx context.Context, order *domain.Order) error {
	event := OrderPlacedEvent{
		EventID:    uuid.NewString(),
		OrderID:    order.ID,
		UserID:     order.UserID,
		TotalCents: order.TotalCents,
		Items:      order.Items,
		PlacedAt:   order.CreatedOn,
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.ch.PublishWithContext(ctx,
		"",      // exchange
		p.queue, // routing key (queue name)
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    event.EventID,
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	logger.Debug("Published order placed event", "order_id", order.ID, "event_id", event.EventID)
	return nil
}

func (p *AMQPPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}

// NoopPublisher discards events; used when event publishing is disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderPlaced(ctx context.Context, order *domain.Order) error {
	logger.Debug("Event publishing disabled, dropping order placed event", "order_id", order.ID)
	return nil
}

func (NoopPublisher) Close() error { return nil }
