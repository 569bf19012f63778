// Package kafka publishes order lifecycle events to the message bus.
// Events are emitted after the owning transaction commits; delivery is
// best-effort and never rolls the state change back.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

const (
	eventOrderCreated       = "order.created"
	eventOrderStatusChanged = "order.status_changed"
	eventOrderCanceled      = "order.canceled"
)

// OrderEventPublisher implements the event publishing port on a kafka writer.
type OrderEventPublisher struct {
	writer *kafka.Writer
}

// NewWriter creates a kafka writer for the given brokers and topic.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

// NewOrderEventPublisher creates a publisher on top of an existing writer.
func NewOrderEventPublisher(writer *kafka.Writer) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer}
}

// orderEvent is the wire envelope shared by all order lifecycle events.
type orderEvent struct {
	Event         string     `json:"event"`
	OrderID       string     `json:"order_id"`
	DailyNumber   int        `json:"daily_number"`
	OrderType     string     `json:"order_type"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	TotalCost     string     `json:"total_cost"`
	CustomerRef   string     `json:"customer_ref"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

// PublishOrderCreated emits an order.created event.
func (p *OrderEventPublisher) PublishOrderCreated(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, eventOrderCreated, aggregate)
}

// PublishOrderStatusChanged emits an order.status_changed event.
func (p *OrderEventPublisher) PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, eventOrderStatusChanged, aggregate)
}

// PublishOrderCanceled emits an order.canceled event.
func (p *OrderEventPublisher) PublishOrderCanceled(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, eventOrderCanceled, aggregate)
}

func newOrderEvent(event string, aggregate *order.Order) orderEvent {
	return orderEvent{
		Event:         event,
		OrderID:       aggregate.ID().String(),
		DailyNumber:   aggregate.DailyNumber(),
		OrderType:     aggregate.OrderType().String(),
		Status:        aggregate.Status().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		TotalCost:     aggregate.TotalCost().String(),
		CustomerRef:   aggregate.CustomerRef(),
		ScheduledAt:   aggregate.ScheduledAt(),
		OccurredAt:    aggregate.UpdatedAt(),
	}
}

func (p *OrderEventPublisher) publish(ctx context.Context, event string, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(newOrderEvent(event, aggregate))
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(aggregate.ID().String()),
		Value: payload,
	})
}
