package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := NewPublisherWithWriter(w)
	occurred := time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return occurred }

	s := entities.Shipment{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		TrackingNumber: "EXP123456ABC",
		Status:         entities.StatusInTransit,
		ShippingMethod: entities.MethodExpress,
		Priority:       entities.PriorityHigh,
		EstimatedCost:  42.5,
	}

	require.NoError(t, p.Publish(context.Background(), entities.EventShipmentStatusChanged, s))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "EXP123456ABC", string(w.msgs[0].Key))

	var got Event
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, entities.EventShipmentStatusChanged, got.Event)
	assert.True(t, occurred.Equal(got.OccurredAt))
	assert.Equal(t, s.ID.String(), got.Shipment.ID)
	assert.Equal(t, "IN_TRANSIT", got.Shipment.Status)
	assert.Nil(t, got.Shipment.ActualDeliveryDate)
}

func TestPublisher_WriteError(t *testing.T) {
	brokerErr := errors.New("broker down")
	p := NewPublisherWithWriter(&fakeWriter{err: brokerErr})

	err := p.Publish(context.Background(), entities.EventShipmentCreated, entities.Shipment{})
	assert.ErrorIs(t, err, brokerErr)
}
