package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ShipmentStatus string

const (
	StatusPending   ShipmentStatus = "PENDING"
	StatusInTransit ShipmentStatus = "IN_TRANSIT"
	StatusDelivered ShipmentStatus = "DELIVERED"
	StatusCancelled ShipmentStatus = "CANCELLED"
)

type ShippingMethod string

const (
	MethodStandard ShippingMethod = "STANDARD"
	MethodExpress  ShippingMethod = "EXPRESS"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// StatusFilterAll disables status filtering in shipment listings.
const StatusFilterAll = "all"

type Shipment struct {
	ID     uuid.UUID `validate:"required"`
	UserID uuid.UUID `validate:"required"`

	Description string `validate:"required,max=500"`
	Origin      string `validate:"required"`
	Destination string `validate:"required"`

	DistanceKm float64 `validate:"gte=1"`
	WeightKg   float64 `validate:"gte=0.1"`
	IsFragile  bool

	ShippingMethod ShippingMethod `validate:"required,oneof=STANDARD EXPRESS"`
	Priority       Priority       `validate:"required,oneof=LOW NORMAL HIGH URGENT"`
	Status         ShipmentStatus `validate:"required,oneof=PENDING IN_TRANSIT DELIVERED CANCELLED"`

	// вычисляются движком тарификации
	EstimatedDeliveryDays int
	EstimatedCost         float64
	TrackingNumber        string

	Notes              string `validate:"max=1000"`
	ActualDeliveryDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PricingChanged reports whether any field that feeds the pricing engine differs.
func (s Shipment) PricingChanged(prev Shipment) bool {
	return s.DistanceKm != prev.DistanceKm ||
		s.WeightKg != prev.WeightKg ||
		s.ShippingMethod != prev.ShippingMethod ||
		s.Priority != prev.Priority ||
		s.IsFragile != prev.IsFragile
}

// ShipmentPatch carries a partial update. nil fields keep their stored value.
type ShipmentPatch struct {
	Description    *string
	Status         *ShipmentStatus
	IsFragile      *bool
	Origin         *string
	Destination    *string
	DistanceKm     *float64
	ShippingMethod *ShippingMethod
	WeightKg       *float64
	Priority       *Priority
	Notes          *string
}

// Trimmed returns a copy of p with surrounding whitespace removed from its text fields.
func (p ShipmentPatch) Trimmed() ShipmentPatch {
	p.Description = trimPtr(p.Description)
	p.Origin = trimPtr(p.Origin)
	p.Destination = trimPtr(p.Destination)
	p.Notes = trimPtr(p.Notes)
	return p
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// Apply returns a copy of s with every non-nil patch field applied.
func (p ShipmentPatch) Apply(s Shipment) Shipment {
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.IsFragile != nil {
		s.IsFragile = *p.IsFragile
	}
	if p.Origin != nil {
		s.Origin = *p.Origin
	}
	if p.Destination != nil {
		s.Destination = *p.Destination
	}
	if p.DistanceKm != nil {
		s.DistanceKm = *p.DistanceKm
	}
	if p.ShippingMethod != nil {
		s.ShippingMethod = *p.ShippingMethod
	}
	if p.WeightKg != nil {
		s.WeightKg = *p.WeightKg
	}
	if p.Priority != nil {
		s.Priority = *p.Priority
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
	return s
}

type StatusUpdate struct {
	Status             ShipmentStatus `validate:"required,oneof=PENDING IN_TRANSIT DELIVERED CANCELLED"`
	ActualDeliveryDate *time.Time
}

// TrackingUpdate is a carrier-side status change addressed by tracking number.
type TrackingUpdate struct {
	TrackingNumber string         `validate:"required"`
	Status         ShipmentStatus `validate:"required,oneof=PENDING IN_TRANSIT DELIVERED CANCELLED"`
	DeliveredAt    *time.Time
}

type ShipmentFilter struct {
	Status   string `validate:"omitempty,oneof=all PENDING IN_TRANSIT DELIVERED CANCELLED"`
	Search   string
	Page     int `validate:"gte=1"`
	PageSize int `validate:"gte=1,lte=100"`
}

func (f ShipmentFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// StatusValue returns the status to match, or "" when the filter matches every status.
func (f ShipmentFilter) StatusValue() string {
	if f.Status == StatusFilterAll {
		return ""
	}
	return f.Status
}

type ShipmentPage struct {
	Shipments  []Shipment
	Page       int
	Pages      int
	TotalCount int
}

// PackingInstructions is generated free text for a shipment.
type PackingInstructions struct {
	Instructions string
	Shipment     Shipment
}
