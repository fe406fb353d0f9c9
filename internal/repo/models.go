package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"

	"github.com/google/uuid"
)

var shipmentColumns = []string{
	"id", "user_id", "description", "status", "is_fragile", "origin", "destination",
	"distance_km", "shipping_method", "estimated_delivery_days", "estimated_cost",
	"tracking_number", "priority", "weight_kg", "notes", "actual_delivery_date",
	"created_at", "updated_at",
}

type Shipment struct {
	ID                    uuid.UUID    `db:"id"`
	UserID                uuid.UUID    `db:"user_id"`
	Description           string       `db:"description"`
	Status                string       `db:"status"`
	IsFragile             bool         `db:"is_fragile"`
	Origin                string       `db:"origin"`
	Destination           string       `db:"destination"`
	DistanceKm            float64      `db:"distance_km"`
	ShippingMethod        string       `db:"shipping_method"`
	EstimatedDeliveryDays int          `db:"estimated_delivery_days"`
	EstimatedCost         float64      `db:"estimated_cost"`
	TrackingNumber        string       `db:"tracking_number"`
	Priority              string       `db:"priority"`
	WeightKg              float64      `db:"weight_kg"`
	Notes                 string       `db:"notes"`
	ActualDeliveryDate    sql.NullTime `db:"actual_delivery_date"`
	CreatedAt             time.Time    `db:"created_at"`
	UpdatedAt             time.Time    `db:"updated_at"`
}

func ShipmentToEntity(s Shipment) entities.Shipment {
	return entities.Shipment{
		ID:                    s.ID,
		UserID:                s.UserID,
		Description:           s.Description,
		Status:                entities.ShipmentStatus(s.Status),
		IsFragile:             s.IsFragile,
		Origin:                s.Origin,
		Destination:           s.Destination,
		DistanceKm:            s.DistanceKm,
		ShippingMethod:        entities.ShippingMethod(s.ShippingMethod),
		EstimatedDeliveryDays: s.EstimatedDeliveryDays,
		EstimatedCost:         s.EstimatedCost,
		TrackingNumber:        s.TrackingNumber,
		Priority:              entities.Priority(s.Priority),
		WeightKg:              s.WeightKg,
		Notes:                 s.Notes,
		ActualDeliveryDate:    nullTimeToPtr(s.ActualDeliveryDate),
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

var userColumns = []string{
	"id", "name", "email", "password_hash", "phone", "company", "address", "created_at", "updated_at",
}

type User struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Phone        string    `db:"phone"`
	Company      string    `db:"company"`
	Address      string    `db:"address"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Phone:        u.Phone,
		Company:      u.Company,
		Address:      u.Address,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

type statusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

type priorityCount struct {
	Priority string `db:"priority"`
	Count    int    `db:"count"`
}

type financialRow struct {
	TotalCost     float64 `db:"total_cost"`
	AverageCost   float64 `db:"average_cost"`
	TotalDistance float64 `db:"total_distance"`
}

type recentRow struct {
	ID                    uuid.UUID `db:"id"`
	Description           string    `db:"description"`
	Status                string    `db:"status"`
	TrackingNumber        string    `db:"tracking_number"`
	EstimatedDeliveryDays int       `db:"estimated_delivery_days"`
	CreatedAt             time.Time `db:"created_at"`
}

type trendRow struct {
	Year      int     `db:"year"`
	Month     int     `db:"month"`
	Count     int     `db:"count"`
	TotalCost float64 `db:"total_cost"`
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
