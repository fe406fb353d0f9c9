package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"
	"github.com/SergeyBogomolovv/shipment-tracker/pkg/trm"

	"github.com/google/uuid"
)

const (
	defaultPage      = 1
	defaultPageSize  = 10
	defaultWeightKg  = 1
	trackingAttempts = 3
)

type ShipmentRepo interface {
	Create(ctx context.Context, s entities.Shipment) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (entities.Shipment, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (entities.Shipment, error)
	Update(ctx context.Context, s entities.Shipment) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter entities.ShipmentFilter) ([]entities.Shipment, int, error)
	Stats(ctx context.Context, userID uuid.UUID, since time.Time) (entities.DashboardStats, error)
}

type Pricer interface {
	Apply(s *entities.Shipment)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.ShipmentEvent, s entities.Shipment) error
}

type shipmentService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      ShipmentRepo
	pricer    Pricer
	publisher EventPublisher
	now       func() time.Time
}

// NewShipmentService builds the owner-scoped shipment store. publisher may be nil.
func NewShipmentService(logger *slog.Logger, txManager trm.Manager, repo ShipmentRepo, pricer Pricer, publisher EventPublisher) *shipmentService {
	return &shipmentService{
		logger:    logger.With(slog.String("service", "shipment")),
		txManager: txManager,
		repo:      repo,
		pricer:    pricer,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *shipmentService) Create(ctx context.Context, userID uuid.UUID, input entities.ShipmentPatch) (entities.Shipment, error) {
	now := s.now().UTC()
	shipment := input.Trimmed().Apply(entities.Shipment{
		ID:             uuid.New(),
		UserID:         userID,
		WeightKg:       defaultWeightKg,
		ShippingMethod: entities.MethodStandard,
		Priority:       entities.PriorityNormal,
		Status:         entities.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err := validateStruct(shipment); err != nil {
		return entities.Shipment{}, err
	}

	var err error
	for range trackingAttempts {
		shipment.TrackingNumber = ""
		s.pricer.Apply(&shipment)

		err = s.repo.Create(ctx, shipment)
		if !errors.Is(err, entities.ErrTrackingNumberTaken) {
			break
		}
		s.logger.WarnContext(ctx, "tracking number collision", slog.String("tracking_number", shipment.TrackingNumber))
	}
	if err != nil {
		return entities.Shipment{}, fmt.Errorf("failed to create shipment: %w", err)
	}

	shipmentsCreated.WithLabelValues(string(shipment.ShippingMethod)).Inc()
	s.publish(ctx, entities.EventShipmentCreated, shipment)
	return shipment, nil
}

func (s *shipmentService) List(ctx context.Context, userID uuid.UUID, filter entities.ShipmentFilter) (entities.ShipmentPage, error) {
	if filter.Page == 0 {
		filter.Page = defaultPage
	}
	if filter.PageSize == 0 {
		filter.PageSize = defaultPageSize
	}
	if err := validateStruct(filter); err != nil {
		return entities.ShipmentPage{}, err
	}

	shipments, total, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return entities.ShipmentPage{}, fmt.Errorf("failed to list shipments: %w", err)
	}

	return entities.ShipmentPage{
		Shipments:  shipments,
		Page:       filter.Page,
		Pages:      (total + filter.PageSize - 1) / filter.PageSize,
		TotalCount: total,
	}, nil
}

func (s *shipmentService) Get(ctx context.Context, userID, id uuid.UUID) (entities.Shipment, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *shipmentService) Update(ctx context.Context, userID, id uuid.UUID, patch entities.ShipmentPatch) (entities.Shipment, error) {
	var updated entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}

		updated = patch.Trimmed().Apply(current)
		if err := validateStruct(updated); err != nil {
			return err
		}
		if updated.PricingChanged(current) {
			s.pricer.Apply(&updated)
		}
		updated.UpdatedAt = s.now().UTC()

		return s.repo.Update(ctx, updated)
	})
	if err != nil {
		return entities.Shipment{}, err
	}

	s.publish(ctx, entities.EventShipmentUpdated, updated)
	return updated, nil
}

// UpdateStatus changes the status only. Any transition is currently allowed.
func (s *shipmentService) UpdateStatus(ctx context.Context, userID, id uuid.UUID, upd entities.StatusUpdate) (entities.Shipment, error) {
	if err := validateStruct(upd); err != nil {
		return entities.Shipment{}, err
	}

	var updated entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}
		updated = applyStatus(current, upd.Status, upd.ActualDeliveryDate, s.now().UTC())
		return s.repo.Update(ctx, updated)
	})
	if err != nil {
		return entities.Shipment{}, err
	}

	s.publish(ctx, entities.EventShipmentStatusChanged, updated)
	return updated, nil
}

// ApplyTrackingUpdate applies a carrier status change. It is not scoped to an owner.
func (s *shipmentService) ApplyTrackingUpdate(ctx context.Context, upd entities.TrackingUpdate) (entities.Shipment, error) {
	if err := validateStruct(upd); err != nil {
		return entities.Shipment{}, err
	}

	var updated entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByTrackingNumber(ctx, upd.TrackingNumber)
		if err != nil {
			return err
		}
		updated = applyStatus(current, upd.Status, upd.DeliveredAt, s.now().UTC())
		return s.repo.Update(ctx, updated)
	})
	if err != nil {
		return entities.Shipment{}, err
	}

	s.publish(ctx, entities.EventShipmentStatusChanged, updated)
	return updated, nil
}

func (s *shipmentService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	var deleted entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		deleted, err = s.repo.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}
		return s.repo.Delete(ctx, userID, id)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, entities.EventShipmentDeleted, deleted)
	return nil
}

func (s *shipmentService) Stats(ctx context.Context, userID uuid.UUID) (entities.DashboardStats, error) {
	stats, err := s.repo.Stats(ctx, userID, entities.TrendWindowStart(s.now().UTC()))
	if err != nil {
		return entities.DashboardStats{}, fmt.Errorf("failed to get stats: %w", err)
	}
	return stats, nil
}

// applyStatus sets the status; the delivery date is only recorded for DELIVERED.
func applyStatus(s entities.Shipment, status entities.ShipmentStatus, deliveredAt *time.Time, now time.Time) entities.Shipment {
	s.Status = status
	if status == entities.StatusDelivered && deliveredAt != nil {
		date := deliveredAt.UTC()
		s.ActualDeliveryDate = &date
	}
	s.UpdatedAt = now
	return s
}

// publish is best effort: a failed event never fails the request.
func (s *shipmentService) publish(ctx context.Context, event entities.ShipmentEvent, shipment entities.Shipment) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event, shipment); err != nil {
		eventsFailed.WithLabelValues(string(event)).Inc()
		s.logger.ErrorContext(ctx, "failed to publish event",
			slog.String("event", string(event)),
			slog.String("shipment_id", shipment.ID.String()),
			slog.Any("error", err),
		)
	}
}
