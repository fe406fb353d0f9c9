package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/pricing"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/repo"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/service"
	mocks "github.com/SergeyBogomolovv/shipment-tracker/internal/service/mocks"
	"github.com/SergeyBogomolovv/shipment-tracker/pkg/trm"
	txMocks "github.com/SergeyBogomolovv/shipment-tracker/pkg/trm/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validInput() entities.ShipmentPatch {
	return entities.ShipmentPatch{
		Description: ptr("Books"),
		Origin:      ptr("Berlin"),
		Destination: ptr("Munich"),
		DistanceKm:  ptr(500.0),
		WeightKg:    ptr(2.0),
	}
}

func passThroughTx(t *testing.T) *txMocks.MockManager {
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	return tx
}

func TestShipmentService_Create(t *testing.T) {
	type MockBehavior func(shipmentRepo *mocks.MockShipmentRepo, pricer *mocks.MockPricer, publisher *mocks.MockEventPublisher)

	dbError := errors.New("db error")
	owner := uuid.New()

	priced := func(s *entities.Shipment) {
		if s.TrackingNumber == "" {
			s.TrackingNumber = "STD000001ABC"
		}
		s.EstimatedDeliveryDays = 2
		s.EstimatedCost = 174.3
	}

	testCases := []struct {
		name         string
		input        entities.ShipmentPatch
		mockBehavior MockBehavior
		wantFields   []string
		wantErr      error
	}{
		{
			name:  "OK with defaults",
			input: validInput(),
			mockBehavior: func(shipmentRepo *mocks.MockShipmentRepo, pricer *mocks.MockPricer, publisher *mocks.MockEventPublisher) {
				pricer.EXPECT().Apply(mock.Anything).Run(priced).Once()
				shipmentRepo.EXPECT().
					Create(mock.Anything, mock.MatchedBy(func(s entities.Shipment) bool {
						return s.UserID == owner &&
							s.Status == entities.StatusPending &&
							s.ShippingMethod == entities.MethodStandard &&
							s.Priority == entities.PriorityNormal &&
							s.TrackingNumber == "STD000001ABC"
					})).
					Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, entities.EventShipmentCreated, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "missing required fields",
			input: entities.ShipmentPatch{
				WeightKg: ptr(0.01),
				Notes:    ptr("fragile"),
			},
			mockBehavior: func(*mocks.MockShipmentRepo, *mocks.MockPricer, *mocks.MockEventPublisher) {},
			wantFields:   []string{"description", "origin", "destination", "distance_km", "weight_kg"},
		},
		{
			name: "blank text counts as missing",
			input: func() entities.ShipmentPatch {
				in := validInput()
				in.Description = ptr("   ")
				in.Origin = ptr("\t")
				return in
			}(),
			mockBehavior: func(*mocks.MockShipmentRepo, *mocks.MockPricer, *mocks.MockEventPublisher) {},
			wantFields:   []string{"description", "origin"},
		},
		{
			name: "text fields are trimmed",
			input: func() entities.ShipmentPatch {
				in := validInput()
				in.Destination = ptr("  Munich  ")
				in.Notes = ptr(" ring twice\n")
				return in
			}(),
			mockBehavior: func(shipmentRepo *mocks.MockShipmentRepo, pricer *mocks.MockPricer, publisher *mocks.MockEventPublisher) {
				pricer.EXPECT().Apply(mock.Anything).Run(priced).Once()
				shipmentRepo.EXPECT().
					Create(mock.Anything, mock.MatchedBy(func(s entities.Shipment) bool {
						return s.Destination == "Munich" && s.Notes == "ring twice"
					})).
					Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, entities.EventShipmentCreated, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "invalid enum",
			input: func() entities.ShipmentPatch {
				in := validInput()
				in.ShippingMethod = ptr(entities.ShippingMethod("OVERNIGHT"))
				in.Priority = ptr(entities.Priority("CRITICAL"))
				return in
			}(),
			mockBehavior: func(*mocks.MockShipmentRepo, *mocks.MockPricer, *mocks.MockEventPublisher) {},
			wantFields:   []string{"shipping_method", "priority"},
		},
		{
			name:  "tracking number collision is regenerated",
			input: validInput(),
			mockBehavior: func(shipmentRepo *mocks.MockShipmentRepo, pricer *mocks.MockPricer, publisher *mocks.MockEventPublisher) {
				pricer.EXPECT().Apply(mock.Anything).Run(priced).Twice()
				shipmentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(entities.ErrTrackingNumberTaken).Once()
				shipmentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, entities.EventShipmentCreated, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:  "repo fails",
			input: validInput(),
			mockBehavior: func(shipmentRepo *mocks.MockShipmentRepo, pricer *mocks.MockPricer, _ *mocks.MockEventPublisher) {
				pricer.EXPECT().Apply(mock.Anything).Run(priced).Once()
				shipmentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(dbError).Once()
			},
			wantErr: dbError,
		},
		{
			name:  "publish failure does not fail create",
			input: validInput(),
			mockBehavior: func(shipmentRepo *mocks.MockShipmentRepo, pricer *mocks.MockPricer, publisher *mocks.MockEventPublisher) {
				pricer.EXPECT().Apply(mock.Anything).Run(priced).Once()
				shipmentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			shipmentRepo := mocks.NewMockShipmentRepo(t)
			pricer := mocks.NewMockPricer(t)
			publisher := mocks.NewMockEventPublisher(t)
			tc.mockBehavior(shipmentRepo, pricer, publisher)

			svc := service.NewShipmentService(discardLogger(), passThroughTx(t), shipmentRepo, pricer, publisher)
			got, err := svc.Create(context.Background(), owner, tc.input)

			if tc.wantFields != nil {
				var ve *entities.ValidationError
				require.ErrorAs(t, err, &ve)
				for _, field := range tc.wantFields {
					assert.Contains(t, ve.Fields, field)
				}
				return
			}
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, owner, got.UserID)
			assert.Equal(t, "STD000001ABC", got.TrackingNumber)
			assert.Equal(t, 2.0, got.WeightKg)
		})
	}
}

func TestShipmentService_CreateDefaultWeight(t *testing.T) {
	shipments := repo.NewMemoryStore().Shipments()
	svc := service.NewShipmentService(discardLogger(), trm.NewNopManager(), shipments, pricing.NewEngine(pricing.DefaultConfig()), nil)

	in := validInput()
	in.WeightKg = nil
	got, err := svc.Create(context.Background(), uuid.New(), in)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.WeightKg)

	// явный ноль не подменяется значением по умолчанию
	in.WeightKg = ptr(0.0)
	_, err = svc.Create(context.Background(), uuid.New(), in)
	var ve *entities.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "weight_kg")
}

func TestShipmentService_Update(t *testing.T) {
	owner := uuid.New()
	stored := entities.Shipment{
		ID:             uuid.New(),
		UserID:         owner,
		Description:    "Books",
		Origin:         "Berlin",
		Destination:    "Munich",
		DistanceKm:     500,
		WeightKg:       2,
		ShippingMethod: entities.MethodStandard,
		Priority:       entities.PriorityNormal,
		Status:         entities.StatusPending,
		TrackingNumber: "STD000001ABC",
		Notes:          "leave at door",
	}

	testCases := []struct {
		name         string
		patch        entities.ShipmentPatch
		mockBehavior func(shipmentRepo *mocks.MockShipmentRepo, pricer *mocks.MockPricer, publisher *mocks.MockEventPublisher)
		check        func(t *testing.T, got entities.Shipment, err error)
	}{
		{
			name:  "non pricing field does not reprice",
			patch: entities.ShipmentPatch{Notes: ptr("")},
			mockBehavior: func(shipmentRepo *mocks.MockShipmentRepo, _ *mocks.MockPricer, publisher *mocks.MockEventPublisher) {
				shipmentRepo.EXPECT().GetByID(mock.Anything, owner, stored.ID).Return(stored, nil).Once()
				shipmentRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, entities.EventShipmentUpdated, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, got entities.Shipment, err error) {
				require.NoError(t, err)
				assert.Equal(t, "", got.Notes, "explicit empty notes must be honored")
				assert.Equal(t, "Books", got.Description)
			},
		},
		{
			name:  "pricing field reprices",
			patch: entities.ShipmentPatch{DistanceKm: ptr(1500.0)},
			mockBehavior: func(shipmentRepo *mocks.MockShipmentRepo, pricer *mocks.MockPricer, publisher *mocks.MockEventPublisher) {
				shipmentRepo.EXPECT().GetByID(mock.Anything, owner, stored.ID).Return(stored, nil).Once()
				pricer.EXPECT().Apply(mock.Anything).Run(func(s *entities.Shipment) {
					s.EstimatedCost = 999
				}).Once()
				shipmentRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, entities.EventShipmentUpdated, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, got entities.Shipment, err error) {
				require.NoError(t, err)
				assert.Equal(t, 999.0, got.EstimatedCost)
				assert.Equal(t, "STD000001ABC", got.TrackingNumber)
			},
		},
		{
			name:  "merged record is validated",
			patch: entities.ShipmentPatch{Description: ptr("")},
			mockBehavior: func(shipmentRepo *mocks.MockShipmentRepo, _ *mocks.MockPricer, _ *mocks.MockEventPublisher) {
				shipmentRepo.EXPECT().GetByID(mock.Anything, owner, stored.ID).Return(stored, nil).Once()
			},
			check: func(t *testing.T, _ entities.Shipment, err error) {
				var ve *entities.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Contains(t, ve.Fields, "description")
			},
		},
		{
			name:  "blank description is rejected",
			patch: entities.ShipmentPatch{Description: ptr("  ")},
			mockBehavior: func(shipmentRepo *mocks.MockShipmentRepo, _ *mocks.MockPricer, _ *mocks.MockEventPublisher) {
				shipmentRepo.EXPECT().GetByID(mock.Anything, owner, stored.ID).Return(stored, nil).Once()
			},
			check: func(t *testing.T, _ entities.Shipment, err error) {
				var ve *entities.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Contains(t, ve.Fields, "description")
			},
		},
		{
			name:  "padded text is trimmed",
			patch: entities.ShipmentPatch{Description: ptr("  Old books "), Origin: ptr(" Hamburg")},
			mockBehavior: func(shipmentRepo *mocks.MockShipmentRepo, _ *mocks.MockPricer, publisher *mocks.MockEventPublisher) {
				shipmentRepo.EXPECT().GetByID(mock.Anything, owner, stored.ID).Return(stored, nil).Once()
				shipmentRepo.EXPECT().
					Update(mock.Anything, mock.MatchedBy(func(s entities.Shipment) bool {
						return s.Description == "Old books" && s.Origin == "Hamburg"
					})).
					Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, entities.EventShipmentUpdated, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, got entities.Shipment, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Old books", got.Description)
				assert.Equal(t, "Hamburg", got.Origin)
			},
		},
		{
			name:  "not found",
			patch: entities.ShipmentPatch{Notes: ptr("x")},
			mockBehavior: func(shipmentRepo *mocks.MockShipmentRepo, _ *mocks.MockPricer, _ *mocks.MockEventPublisher) {
				shipmentRepo.EXPECT().GetByID(mock.Anything, owner, stored.ID).Return(entities.Shipment{}, entities.ErrShipmentNotFound).Once()
			},
			check: func(t *testing.T, _ entities.Shipment, err error) {
				assert.ErrorIs(t, err, entities.ErrShipmentNotFound)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			shipmentRepo := mocks.NewMockShipmentRepo(t)
			pricer := mocks.NewMockPricer(t)
			publisher := mocks.NewMockEventPublisher(t)
			tc.mockBehavior(shipmentRepo, pricer, publisher)

			svc := service.NewShipmentService(discardLogger(), passThroughTx(t), shipmentRepo, pricer, publisher)
			got, err := svc.Update(context.Background(), owner, stored.ID, tc.patch)
			tc.check(t, got, err)
		})
	}
}

func TestShipmentService_UpdateTxError(t *testing.T) {
	txErr := errors.New("failed to begin tx")
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().Do(mock.Anything, mock.Anything).Return(txErr).Once()

	svc := service.NewShipmentService(discardLogger(), tx, mocks.NewMockShipmentRepo(t), mocks.NewMockPricer(t), nil)
	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), entities.ShipmentPatch{})
	assert.ErrorIs(t, err, txErr)
}
