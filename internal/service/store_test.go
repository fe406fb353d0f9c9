package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/pricing"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/repo"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/service"
	"github.com/SergeyBogomolovv/shipment-tracker/pkg/trm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shipmentStore interface {
	Create(ctx context.Context, userID uuid.UUID, input entities.ShipmentPatch) (entities.Shipment, error)
	List(ctx context.Context, userID uuid.UUID, filter entities.ShipmentFilter) (entities.ShipmentPage, error)
	Get(ctx context.Context, userID, id uuid.UUID) (entities.Shipment, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch entities.ShipmentPatch) (entities.Shipment, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, upd entities.StatusUpdate) (entities.Shipment, error)
	ApplyTrackingUpdate(ctx context.Context, upd entities.TrackingUpdate) (entities.Shipment, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Stats(ctx context.Context, userID uuid.UUID) (entities.DashboardStats, error)
}

// newStore wires the shipment service to the in-memory repository and the default rate card.
func newStore() shipmentStore {
	shipments := repo.NewMemoryStore().Shipments()
	engine := pricing.NewEngine(pricing.DefaultConfig())
	return service.NewShipmentService(discardLogger(), trm.NewNopManager(), shipments, engine, nil)
}

func TestStore_CreateScenario(t *testing.T) {
	st := newStore()

	got, err := st.Create(context.Background(), uuid.New(), entities.ShipmentPatch{
		Description:    ptr("Books"),
		Origin:         ptr("Berlin"),
		Destination:    ptr("Munich"),
		DistanceKm:     ptr(500.0),
		WeightKg:       ptr(2.0),
		ShippingMethod: ptr(entities.MethodStandard),
		Priority:       ptr(entities.PriorityNormal),
		IsFragile:      ptr(false),
	})
	require.NoError(t, err)

	// ceil(500/500 + 1) = 2; (8*2 + 500*0.15*2) + (8 + 75) * 0.1 = 174.30
	assert.Equal(t, 2, got.EstimatedDeliveryDays)
	assert.InDelta(t, 174.30, got.EstimatedCost, 1e-9)
	assert.Regexp(t, `^STD\d{6}[A-Z0-9]{3}$`, got.TrackingNumber)
	assert.Equal(t, entities.StatusPending, got.Status)
}

func TestStore_Pagination(t *testing.T) {
	ctx := context.Background()
	st := newStore()
	owner := uuid.New()

	for i := range 25 {
		in := validInput()
		in.Description = ptr(fmt.Sprintf("parcel %d", i))
		_, err := st.Create(ctx, owner, in)
		require.NoError(t, err)
	}

	for page, want := range map[int]int{1: 10, 2: 10, 3: 5} {
		res, err := st.List(ctx, owner, entities.ShipmentFilter{Page: page})
		require.NoError(t, err)
		assert.Len(t, res.Shipments, want, "page %d", page)
		assert.Equal(t, 3, res.Pages)
		assert.Equal(t, 25, res.TotalCount)
		assert.Equal(t, page, res.Page)
	}

	_, err := st.List(ctx, owner, entities.ShipmentFilter{PageSize: 101})
	var ve *entities.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "page_size")

	_, err = st.List(ctx, owner, entities.ShipmentFilter{Status: "LOST"})
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "status")
}

func TestStore_FilterAndSearch(t *testing.T) {
	ctx := context.Background()
	st := newStore()
	owner, other := uuid.New(), uuid.New()

	delivered, err := st.Create(ctx, owner, validInput())
	require.NoError(t, err)
	_, err = st.UpdateStatus(ctx, owner, delivered.ID, entities.StatusUpdate{Status: entities.StatusDelivered})
	require.NoError(t, err)

	onlyOrigin := validInput()
	onlyOrigin.Description = ptr("Lamp")
	onlyOrigin.Origin = ptr("Hamburg harbour")
	onlyOrigin.Destination = ptr("Cologne")
	_, err = st.Create(ctx, owner, onlyOrigin)
	require.NoError(t, err)

	foreign := validInput()
	foreign.Origin = ptr("Hamburg")
	foreignShipment, err := st.Create(ctx, other, foreign)
	require.NoError(t, err)
	_, err = st.UpdateStatus(ctx, other, foreignShipment.ID, entities.StatusUpdate{Status: entities.StatusDelivered})
	require.NoError(t, err)

	res, err := st.List(ctx, owner, entities.ShipmentFilter{Status: "DELIVERED"})
	require.NoError(t, err)
	require.Len(t, res.Shipments, 1)
	assert.Equal(t, delivered.ID, res.Shipments[0].ID)

	res, err = st.List(ctx, owner, entities.ShipmentFilter{Search: "hamburg"})
	require.NoError(t, err)
	require.Len(t, res.Shipments, 1)
	assert.Equal(t, "Lamp", res.Shipments[0].Description)
}

func TestStore_CrossOwnerAccessIsNotFound(t *testing.T) {
	ctx := context.Background()
	st := newStore()
	owner, stranger := uuid.New(), uuid.New()

	s, err := st.Create(ctx, owner, validInput())
	require.NoError(t, err)

	got, err := st.Get(ctx, stranger, s.ID)
	assert.ErrorIs(t, err, entities.ErrShipmentNotFound)
	assert.Equal(t, entities.Shipment{}, got)

	got, err = st.Update(ctx, stranger, s.ID, entities.ShipmentPatch{Notes: ptr("mine now")})
	assert.ErrorIs(t, err, entities.ErrShipmentNotFound)
	assert.Equal(t, entities.Shipment{}, got)

	_, err = st.UpdateStatus(ctx, stranger, s.ID, entities.StatusUpdate{Status: entities.StatusCancelled})
	assert.ErrorIs(t, err, entities.ErrShipmentNotFound)

	assert.ErrorIs(t, st.Delete(ctx, stranger, s.ID), entities.ErrShipmentNotFound)

	unchanged, err := st.Get(ctx, owner, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Notes, unchanged.Notes)
	assert.Equal(t, entities.StatusPending, unchanged.Status)

	_, err = st.Get(ctx, owner, uuid.New())
	assert.ErrorIs(t, err, entities.ErrShipmentNotFound)
}

func TestStore_TrackingNumberIsStable(t *testing.T) {
	ctx := context.Background()
	st := newStore()
	owner := uuid.New()

	s, err := st.Create(ctx, owner, validInput())
	require.NoError(t, err)

	updated, err := st.Update(ctx, owner, s.ID, entities.ShipmentPatch{
		ShippingMethod: ptr(entities.MethodExpress),
		DistanceKm:     ptr(1200.0),
		Priority:       ptr(entities.PriorityUrgent),
	})
	require.NoError(t, err)
	assert.Equal(t, s.TrackingNumber, updated.TrackingNumber)
	assert.Greater(t, updated.EstimatedCost, s.EstimatedCost)

	status, err := st.UpdateStatus(ctx, owner, s.ID, entities.StatusUpdate{Status: entities.StatusInTransit})
	require.NoError(t, err)
	assert.Equal(t, s.TrackingNumber, status.TrackingNumber)
	assert.Equal(t, updated.EstimatedCost, status.EstimatedCost, "status update must not reprice")
}

// Status transitions are currently unrestricted: any status may follow any other.
func TestStore_StatusTransitionsCurrentlyUnrestricted(t *testing.T) {
	ctx := context.Background()
	st := newStore()
	owner := uuid.New()

	s, err := st.Create(ctx, owner, validInput())
	require.NoError(t, err)

	deliveredAt := time.Date(2026, time.June, 2, 15, 0, 0, 0, time.UTC)
	sequence := []entities.StatusUpdate{
		{Status: entities.StatusDelivered, ActualDeliveryDate: &deliveredAt},
		{Status: entities.StatusPending},
		{Status: entities.StatusCancelled},
		{Status: entities.StatusInTransit},
	}
	for _, upd := range sequence {
		got, err := st.UpdateStatus(ctx, owner, s.ID, upd)
		require.NoError(t, err, "transition to %s", upd.Status)
		assert.Equal(t, upd.Status, got.Status)
	}

	got, err := st.Get(ctx, owner, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ActualDeliveryDate)
	assert.True(t, deliveredAt.Equal(*got.ActualDeliveryDate))
}

func TestStore_DeliveryDateOnlyForDelivered(t *testing.T) {
	ctx := context.Background()
	st := newStore()
	owner := uuid.New()

	s, err := st.Create(ctx, owner, validInput())
	require.NoError(t, err)

	date := time.Now()
	got, err := st.UpdateStatus(ctx, owner, s.ID, entities.StatusUpdate{Status: entities.StatusInTransit, ActualDeliveryDate: &date})
	require.NoError(t, err)
	assert.Nil(t, got.ActualDeliveryDate)

	_, err = st.UpdateStatus(ctx, owner, s.ID, entities.StatusUpdate{Status: "LOST"})
	var ve *entities.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "status")
}

func TestStore_ApplyTrackingUpdate(t *testing.T) {
	ctx := context.Background()
	st := newStore()
	owner := uuid.New()

	s, err := st.Create(ctx, owner, validInput())
	require.NoError(t, err)

	deliveredAt := time.Date(2026, time.July, 1, 8, 30, 0, 0, time.UTC)
	got, err := st.ApplyTrackingUpdate(ctx, entities.TrackingUpdate{
		TrackingNumber: s.TrackingNumber,
		Status:         entities.StatusDelivered,
		DeliveredAt:    &deliveredAt,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusDelivered, got.Status)

	stored, err := st.Get(ctx, owner, s.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusDelivered, stored.Status)
	require.NotNil(t, stored.ActualDeliveryDate)

	_, err = st.ApplyTrackingUpdate(ctx, entities.TrackingUpdate{TrackingNumber: "STD000000XXX", Status: entities.StatusInTransit})
	assert.ErrorIs(t, err, entities.ErrShipmentNotFound)
}

func TestStore_Stats(t *testing.T) {
	ctx := context.Background()
	st := newStore()
	owner := uuid.New()

	statuses := []entities.ShipmentStatus{
		entities.StatusPending, entities.StatusInTransit, entities.StatusInTransit,
		entities.StatusDelivered, entities.StatusCancelled, entities.StatusPending,
	}
	var totalCost float64
	for _, status := range statuses {
		s, err := st.Create(ctx, owner, validInput())
		require.NoError(t, err)
		totalCost += s.EstimatedCost
		_, err = st.UpdateStatus(ctx, owner, s.ID, entities.StatusUpdate{Status: status})
		require.NoError(t, err)
	}
	_, err := st.Create(ctx, uuid.New(), validInput())
	require.NoError(t, err)

	stats, err := st.Stats(ctx, owner)
	require.NoError(t, err)

	sum := stats.Summary.Pending + stats.Summary.InTransit + stats.Summary.Delivered + stats.Summary.Cancelled
	assert.Equal(t, 6, stats.Summary.Total)
	assert.Equal(t, stats.Summary.Total, sum)
	assert.Equal(t, 2, stats.Summary.InTransit)

	assert.InDelta(t, totalCost, stats.Financial.TotalCost, 1e-6)
	assert.InDelta(t, totalCost/6, stats.Financial.AverageCost, 1e-6)
	assert.InDelta(t, 3000.0, stats.Financial.TotalDistance, 1e-9)
	assert.Len(t, stats.RecentShipments, entities.RecentShipmentsLimit)
	assert.Equal(t, map[entities.Priority]int{entities.PriorityNormal: 6}, stats.PriorityBreakdown)

	require.Len(t, stats.MonthlyTrends, 1)
	assert.Equal(t, 6, stats.MonthlyTrends[0].Count)
}
