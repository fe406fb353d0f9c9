package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/config"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type TrackingUpdater interface {
	ApplyTrackingUpdate(ctx context.Context, upd entities.TrackingUpdate) (entities.Shipment, error)
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type trackingConsumer struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	updater  TrackingUpdater
}

// NewTrackingConsumer читает события перевозчика из KAFKA_TRACKING_TOPIC.
func NewTrackingConsumer(logger *slog.Logger, cfg config.Kafka, updater TrackingUpdater) *trackingConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.TrackingTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	}
	return newTrackingConsumer(logger, reader, dlq, updater)
}

func newTrackingConsumer(logger *slog.Logger, reader messageReader, dlq messageWriter, updater TrackingUpdater) *trackingConsumer {
	return &trackingConsumer{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: validator.New(),
		updater:  updater,
	}
}

func (h *trackingConsumer) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handleMessage(ctx, m); err != nil {
			trackingFailed.Inc()
			h.logger.Error("failed to handle tracking update",
				slog.String("key", string(m.Key)),
				slog.Any("error", err),
			)

			// у writer свои ретраи
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			trackingDLQ.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *trackingConsumer) handleMessage(ctx context.Context, m kafka.Message) error {
	trackingInProgress.Inc()
	defer trackingInProgress.Dec()

	start := time.Now()
	defer func() {
		trackingProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	var msg TrackingMessage
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal tracking update: %w", err)
	}

	if err := h.validate.Struct(msg); err != nil {
		return fmt.Errorf("invalid tracking update: %w", err)
	}

	shipment, err := h.updater.ApplyTrackingUpdate(ctx, TrackingMessageToEntity(msg))
	if err != nil {
		return fmt.Errorf("failed to apply tracking update %s: %w", msg.TrackingNumber, err)
	}

	trackingProcessed.WithLabelValues(string(shipment.Status)).Inc()
	h.logger.Debug("tracking update applied",
		slog.String("tracking_number", shipment.TrackingNumber),
		slog.String("status", string(shipment.Status)),
	)
	return nil
}

func (h *trackingConsumer) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *trackingConsumer) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
