// Package pricing derives delivery estimates, cost and tracking numbers for shipments.
package pricing

import (
	"errors"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"
)

type MethodRates struct {
	SpeedKmPerDay float64 `envconfig:"SPEED_KM_PER_DAY" validate:"gt=0"`
	HandlingDays  float64 `envconfig:"HANDLING_DAYS" validate:"gte=0"`
	Multiplier    float64 `envconfig:"MULTIPLIER" validate:"gt=0"`
}

type PriorityMultipliers struct {
	Low    float64 `envconfig:"LOW" validate:"gt=0"`
	Normal float64 `envconfig:"NORMAL" validate:"gt=0"`
	High   float64 `envconfig:"HIGH" validate:"gt=0"`
	Urgent float64 `envconfig:"URGENT" validate:"gt=0"`
}

// DistanceTier applies Multiplier to shipments strictly longer than AboveKm.
type DistanceTier struct {
	AboveKm    float64
	Multiplier float64
}

type Config struct {
	Standard MethodRates `envconfig:"STANDARD"`
	Express  MethodRates `envconfig:"EXPRESS"`
	Priority PriorityMultipliers

	BaseRatePerKg       float64 `envconfig:"BASE_RATE_PER_KG" validate:"gt=0"`
	DistanceRatePerKmKg float64 `envconfig:"DISTANCE_RATE" validate:"gte=0"`
	MinChargeableKg     float64 `envconfig:"MIN_CHARGEABLE_KG" validate:"gt=0"`
	FragileFeePerKg     float64 `envconfig:"FRAGILE_FEE_PER_KG" validate:"gte=0"`
	FuelSurchargeRate   float64 `envconfig:"FUEL_SURCHARGE_RATE" validate:"gte=0"`

	// Отсортированы по убыванию AboveKm, срабатывает первый подходящий.
	DistanceTiers []DistanceTier `ignored:"true"`
}

// DefaultConfig returns the rate card the service ships with.
func DefaultConfig() Config {
	return Config{
		Standard: MethodRates{SpeedKmPerDay: 500, HandlingDays: 1, Multiplier: 1},
		Express:  MethodRates{SpeedKmPerDay: 800, HandlingDays: 0.5, Multiplier: 1.8},
		Priority: PriorityMultipliers{Low: 0.9, Normal: 1, High: 1.2, Urgent: 1.5},

		BaseRatePerKg:       8,
		DistanceRatePerKmKg: 0.15,
		MinChargeableKg:     0.5,
		FragileFeePerKg:     5,
		FuelSurchargeRate:   0.1,

		DistanceTiers: []DistanceTier{
			{AboveKm: 1000, Multiplier: 0.8},
			{AboveKm: 500, Multiplier: 0.9},
		},
	}
}

// Validate checks the rate card for values the formulas cannot work with.
func (c Config) Validate() error {
	if c.Standard.SpeedKmPerDay <= 0 || c.Express.SpeedKmPerDay <= 0 {
		return errors.New("speed must be positive")
	}
	if c.BaseRatePerKg <= 0 || c.MinChargeableKg <= 0 {
		return errors.New("base rate and minimum chargeable weight must be positive")
	}
	for i, tier := range c.DistanceTiers {
		if tier.Multiplier <= 0 {
			return errors.New("distance tier multiplier must be positive")
		}
		if i > 0 && tier.AboveKm >= c.DistanceTiers[i-1].AboveKm {
			return errors.New("distance tiers must be sorted by descending distance")
		}
	}
	return nil
}

type Input struct {
	Method     entities.ShippingMethod
	DistanceKm float64
	WeightKg   float64
	Priority   entities.Priority
	IsFragile  bool
}

type Quote struct {
	EstimatedDeliveryDays int
	EstimatedCost         float64
}

type Engine struct {
	cfg  Config
	now  func() time.Time
	rand func(n int) int
}

type Option func(*Engine)

// WithClock replaces the wall clock used for tracking numbers.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRand replaces the random source used for tracking number suffixes.
func WithRand(rnd func(n int) int) Option {
	return func(e *Engine) { e.rand = rnd }
}

func NewEngine(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:  cfg,
		now:  time.Now,
		rand: rand.IntN,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Quote computes delivery days and cost. Input is expected to be validated by the caller.
func (e *Engine) Quote(in Input) Quote {
	rates := e.methodRates(in.Method)

	days := int(math.Ceil(in.DistanceKm/rates.SpeedKmPerDay + rates.HandlingDays))
	days = max(days, 1)

	chargeable := math.Max(e.cfg.MinChargeableKg, in.WeightKg)
	distanceRate := in.DistanceKm * e.cfg.DistanceRatePerKmKg

	baseCost := e.cfg.BaseRatePerKg*chargeable + distanceRate*chargeable
	total := baseCost * rates.Multiplier * e.priorityMultiplier(in.Priority) * e.distanceMultiplier(in.DistanceKm)

	if in.IsFragile {
		total += chargeable * e.cfg.FragileFeePerKg
	}
	total += (e.cfg.BaseRatePerKg + distanceRate) * e.cfg.FuelSurchargeRate

	return Quote{
		EstimatedDeliveryDays: days,
		EstimatedCost:         roundCents(total),
	}
}

// Apply writes the derived fields onto s. The tracking number is only generated once.
func (e *Engine) Apply(s *entities.Shipment) {
	q := e.Quote(Input{
		Method:     s.ShippingMethod,
		DistanceKm: s.DistanceKm,
		WeightKg:   s.WeightKg,
		Priority:   s.Priority,
		IsFragile:  s.IsFragile,
	})
	s.EstimatedDeliveryDays = q.EstimatedDeliveryDays
	s.EstimatedCost = q.EstimatedCost

	if s.TrackingNumber == "" {
		s.TrackingNumber = e.TrackingNumber(s.ShippingMethod)
	}
}

const (
	trackingAlphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	trackingTimeLen   = 6
	trackingRandomLen = 3
)

// TrackingNumber builds a method prefix, the last six digits of the unix millisecond
// clock and a short random suffix. Global uniqueness is enforced by storage.
func (e *Engine) TrackingNumber(method entities.ShippingMethod) string {
	prefix := "STD"
	if method == entities.MethodExpress {
		prefix = "EXP"
	}

	millis := strconv.FormatInt(e.now().UnixMilli(), 10)
	if len(millis) > trackingTimeLen {
		millis = millis[len(millis)-trackingTimeLen:]
	}

	var b strings.Builder
	b.Grow(len(prefix) + trackingTimeLen + trackingRandomLen)
	b.WriteString(prefix)
	b.WriteString(millis)
	for range trackingRandomLen {
		b.WriteByte(trackingAlphabet[e.rand(len(trackingAlphabet))])
	}
	return strings.ToUpper(b.String())
}

func (e *Engine) methodRates(m entities.ShippingMethod) MethodRates {
	if m == entities.MethodExpress {
		return e.cfg.Express
	}
	return e.cfg.Standard
}

func (e *Engine) priorityMultiplier(p entities.Priority) float64 {
	switch p {
	case entities.PriorityLow:
		return e.cfg.Priority.Low
	case entities.PriorityHigh:
		return e.cfg.Priority.High
	case entities.PriorityUrgent:
		return e.cfg.Priority.Urgent
	default:
		return e.cfg.Priority.Normal
	}
}

func (e *Engine) distanceMultiplier(km float64) float64 {
	for _, tier := range e.cfg.DistanceTiers {
		if km > tier.AboveKm {
			return tier.Multiplier
		}
	}
	return 1
}

// roundCents rounds half away from zero; costs are never negative so this is half-up.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
