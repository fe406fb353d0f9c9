package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/config"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"

	"github.com/segmentio/kafka-go"
)

// Writer is the subset of kafka.Writer used by the publisher.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Event struct {
	Event      entities.ShipmentEvent `json:"event"`
	OccurredAt time.Time              `json:"occurred_at"`
	Shipment   Shipment               `json:"shipment"`
}

type Shipment struct {
	ID                    string     `json:"id"`
	UserID                string     `json:"user_id"`
	TrackingNumber        string     `json:"tracking_number"`
	Status                string     `json:"status"`
	ShippingMethod        string     `json:"shipping_method"`
	Priority              string     `json:"priority"`
	Origin                string     `json:"origin"`
	Destination           string     `json:"destination"`
	EstimatedDeliveryDays int        `json:"estimated_delivery_days"`
	EstimatedCost         float64    `json:"estimated_cost"`
	ActualDeliveryDate    *time.Time `json:"actual_delivery_date,omitempty"`
}

type Publisher struct {
	writer Writer
	now    func() time.Time
}

func NewPublisher(cfg config.Kafka) *Publisher {
	return NewPublisherWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.EventsTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
	})
}

func NewPublisherWithWriter(w Writer) *Publisher {
	return &Publisher{writer: w, now: time.Now}
}

// Publish writes the event keyed by tracking number so events of one shipment stay ordered.
func (p *Publisher) Publish(ctx context.Context, event entities.ShipmentEvent, s entities.Shipment) error {
	value, err := json.Marshal(Event{
		Event:      event,
		OccurredAt: p.now().UTC(),
		Shipment: Shipment{
			ID:                    s.ID.String(),
			UserID:                s.UserID.String(),
			TrackingNumber:        s.TrackingNumber,
			Status:                string(s.Status),
			ShippingMethod:        string(s.ShippingMethod),
			Priority:              string(s.Priority),
			Origin:                s.Origin,
			Destination:           s.Destination,
			EstimatedDeliveryDays: s.EstimatedDeliveryDays,
			EstimatedCost:         s.EstimatedCost,
			ActualDeliveryDate:    s.ActualDeliveryDate,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(s.TrackingNumber),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
