package pricing_test

import (
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Quote(t *testing.T) {
	engine := pricing.NewEngine(pricing.DefaultConfig())

	testCases := []struct {
		name     string
		in       pricing.Input
		wantDays int
		wantCost float64
	}{
		{
			// (8*2 + 500*0.15*2) * 1 * 1 * 1 + (8 + 75) * 0.1 = 166 + 8.3
			name: "standard normal 500km 2kg",
			in: pricing.Input{
				Method:     entities.MethodStandard,
				DistanceKm: 500,
				WeightKg:   2,
				Priority:   entities.PriorityNormal,
			},
			wantDays: 2,
			wantCost: 174.30,
		},
		{
			// (8*3.5 + 1200*0.15*3.5) * 1.8 * 1.5 * 0.8 + 3.5*5 + (8 + 180) * 0.1
			name: "express urgent fragile long distance",
			in: pricing.Input{
				Method:     entities.MethodExpress,
				DistanceKm: 1200,
				WeightKg:   3.5,
				Priority:   entities.PriorityUrgent,
				IsFragile:  true,
			},
			wantDays: 2,
			wantCost: 1457.58,
		},
		{
			// вес ниже минимального тарифицируется как 0.5 кг
			name: "light parcel uses minimum chargeable weight",
			in: pricing.Input{
				Method:     entities.MethodStandard,
				DistanceKm: 100,
				WeightKg:   0.2,
				Priority:   entities.PriorityLow,
			},
			wantDays: 2,
			wantCost: 12.65,
		},
		{
			name: "express short hop is at least one day",
			in: pricing.Input{
				Method:     entities.MethodExpress,
				DistanceKm: 10,
				WeightKg:   1,
				Priority:   entities.PriorityNormal,
			},
			wantDays: 1,
			wantCost: 18.05,
		},
		{
			// 501 км попадает во второй тариф: (8 + 75.15) * 0.9 + 8.315
			name: "mid distance tier discount",
			in: pricing.Input{
				Method:     entities.MethodStandard,
				DistanceKm: 501,
				WeightKg:   1,
				Priority:   entities.PriorityNormal,
			},
			wantDays: 3,
			wantCost: 83.15,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := engine.Quote(tc.in)
			assert.Equal(t, tc.wantDays, q.EstimatedDeliveryDays)
			assert.InDelta(t, tc.wantCost, q.EstimatedCost, 1e-9)
		})
	}
}

func TestEngine_QuoteProperties(t *testing.T) {
	engine := pricing.NewEngine(pricing.DefaultConfig())

	distances := []float64{1, 42, 499.5, 500, 500.5, 999, 1000, 1001, 5000}
	weights := []float64{0.1, 0.5, 1, 2.25, 30}
	priorities := []entities.Priority{
		entities.PriorityLow, entities.PriorityNormal, entities.PriorityHigh, entities.PriorityUrgent,
	}
	methods := []entities.ShippingMethod{entities.MethodStandard, entities.MethodExpress}

	for _, d := range distances {
		for _, w := range weights {
			for _, fragile := range []bool{false, true} {
				for _, m := range methods {
					prev := -1.0
					for _, p := range priorities {
						q := engine.Quote(pricing.Input{Method: m, DistanceKm: d, WeightKg: w, Priority: p, IsFragile: fragile})

						require.GreaterOrEqual(t, q.EstimatedDeliveryDays, 1)
						require.GreaterOrEqual(t, q.EstimatedCost, 0.0)
						cents := q.EstimatedCost * 100
						require.InDelta(t, math.Round(cents), cents, 1e-6, "cost %v has more than 2 decimals", q.EstimatedCost)

						require.GreaterOrEqual(t, q.EstimatedCost, prev, "priority %s decreased cost", p)
						prev = q.EstimatedCost
					}
				}

				std := engine.Quote(pricing.Input{Method: entities.MethodStandard, DistanceKm: d, WeightKg: w, Priority: entities.PriorityNormal, IsFragile: fragile})
				exp := engine.Quote(pricing.Input{Method: entities.MethodExpress, DistanceKm: d, WeightKg: w, Priority: entities.PriorityNormal, IsFragile: fragile})
				require.LessOrEqual(t, exp.EstimatedDeliveryDays, std.EstimatedDeliveryDays)
			}
		}
	}
}

func TestEngine_CustomConfig(t *testing.T) {
	cfg := pricing.DefaultConfig()
	cfg.FuelSurchargeRate = 0
	cfg.DistanceTiers = nil
	cfg.Standard.HandlingDays = 0

	engine := pricing.NewEngine(cfg)
	q := engine.Quote(pricing.Input{
		Method:     entities.MethodStandard,
		DistanceKm: 2000,
		WeightKg:   1,
		Priority:   entities.PriorityNormal,
	})

	assert.Equal(t, 4, q.EstimatedDeliveryDays)
	assert.InDelta(t, 308.0, q.EstimatedCost, 1e-9)
}

func TestEngine_TrackingNumber(t *testing.T) {
	clock := func() time.Time { return time.UnixMilli(1_700_000_123_456) }
	seq := 0
	rnd := func(n int) int {
		seq++
		return (seq * 11) % n
	}
	engine := pricing.NewEngine(pricing.DefaultConfig(), pricing.WithClock(clock), pricing.WithRand(rnd))

	assert.Equal(t, "STD123456BMX", engine.TrackingNumber(entities.MethodStandard))
	assert.Regexp(t, regexp.MustCompile(`^EXP123456[A-Z0-9]{3}$`), engine.TrackingNumber(entities.MethodExpress))
}

func TestEngine_Apply(t *testing.T) {
	engine := pricing.NewEngine(pricing.DefaultConfig())

	s := entities.Shipment{
		ShippingMethod: entities.MethodStandard,
		DistanceKm:     500,
		WeightKg:       2,
		Priority:       entities.PriorityNormal,
	}
	engine.Apply(&s)

	assert.Equal(t, 2, s.EstimatedDeliveryDays)
	assert.InDelta(t, 174.30, s.EstimatedCost, 1e-9)
	require.Regexp(t, `^STD\d{6}[A-Z0-9]{3}$`, s.TrackingNumber)

	tracking := s.TrackingNumber
	s.ShippingMethod = entities.MethodExpress
	s.DistanceKm = 1500
	engine.Apply(&s)

	assert.Equal(t, tracking, s.TrackingNumber, "tracking number must not be regenerated")
	assert.Equal(t, 3, s.EstimatedDeliveryDays)
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *pricing.Config)
		wantErr bool
	}{
		{name: "default", mutate: func(*pricing.Config) {}},
		{name: "zero speed", mutate: func(c *pricing.Config) { c.Express.SpeedKmPerDay = 0 }, wantErr: true},
		{name: "zero base rate", mutate: func(c *pricing.Config) { c.BaseRatePerKg = 0 }, wantErr: true},
		{
			name: "tiers out of order",
			mutate: func(c *pricing.Config) {
				c.DistanceTiers = []pricing.DistanceTier{{AboveKm: 500, Multiplier: 0.9}, {AboveKm: 1000, Multiplier: 0.8}}
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := pricing.DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
