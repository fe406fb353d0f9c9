package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"
	mocks "github.com/SergeyBogomolovv/shipment-tracker/internal/handler/mocks"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed []kafka.Message
	closed    bool
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

type fakeWriter struct {
	written []kafka.Message
	err     error
	closed  bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestTrackingConsumer_Consume(t *testing.T) {
	delivered := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		value        string
		mockBehavior func(u *mocks.MockTrackingUpdater)
		wantDLQ      bool
	}{
		{
			name:  "applied",
			value: `{"tracking_number":"STD123456ABC","status":"DELIVERED","delivered_at":"2026-06-01T12:00:00Z"}`,
			mockBehavior: func(u *mocks.MockTrackingUpdater) {
				u.EXPECT().
					ApplyTrackingUpdate(mock.Anything, mock.MatchedBy(func(upd entities.TrackingUpdate) bool {
						return upd.TrackingNumber == "STD123456ABC" &&
							upd.Status == entities.StatusDelivered &&
							upd.DeliveredAt != nil && upd.DeliveredAt.Equal(delivered)
					})).
					Return(entities.Shipment{TrackingNumber: "STD123456ABC", Status: entities.StatusDelivered}, nil).Once()
			},
		},
		{
			name:         "malformed json",
			value:        `{"tracking_number":`,
			mockBehavior: func(*mocks.MockTrackingUpdater) {},
			wantDLQ:      true,
		},
		{
			name:         "unknown status",
			value:        `{"tracking_number":"STD123456ABC","status":"LOST"}`,
			mockBehavior: func(*mocks.MockTrackingUpdater) {},
			wantDLQ:      true,
		},
		{
			name:  "unknown tracking number",
			value: `{"tracking_number":"EXP000000XXX","status":"IN_TRANSIT"}`,
			mockBehavior: func(u *mocks.MockTrackingUpdater) {
				u.EXPECT().ApplyTrackingUpdate(mock.Anything, mock.Anything).
					Return(entities.Shipment{}, entities.ErrShipmentNotFound).Once()
			},
			wantDLQ: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			updater := mocks.NewMockTrackingUpdater(t)
			tc.mockBehavior(updater)

			msg := kafka.Message{Topic: "shipment-tracking", Value: []byte(tc.value)}
			reader := &fakeReader{messages: []kafka.Message{msg}}
			dlq := &fakeWriter{}

			consumer := newTrackingConsumer(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, dlq, updater)
			consumer.Consume(context.Background())

			require.Len(t, reader.committed, 1)
			if tc.wantDLQ {
				require.Len(t, dlq.written, 1)
				assert.Equal(t, "shipment-tracking-dlq", dlq.written[0].Topic)
				assert.Equal(t, msg.Value, dlq.written[0].Value)
				return
			}
			assert.Empty(t, dlq.written)
		})
	}
}

func TestTrackingConsumer_DLQFailureSkipsCommit(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{{Topic: "shipment-tracking", Value: []byte(`not json`)}}}
	dlq := &fakeWriter{err: errors.New("broker down")}

	consumer := newTrackingConsumer(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, dlq, mocks.NewMockTrackingUpdater(t))
	consumer.Consume(context.Background())

	assert.Empty(t, reader.committed)
}

func TestTrackingConsumer_Close(t *testing.T) {
	reader := &fakeReader{}
	dlq := &fakeWriter{}

	consumer := newTrackingConsumer(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, dlq, mocks.NewMockTrackingUpdater(t))
	require.NoError(t, consumer.Close())

	assert.True(t, reader.closed)
	assert.True(t, dlq.closed)
}
