package handler

import (
	"time"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"
)

// Shipment представляет отправление
type Shipment struct {
	ID                    string     `json:"_id"`
	User                  string     `json:"user"`
	Description           string     `json:"description"`
	Status                string     `json:"status"`
	IsFragile             bool       `json:"is_fragile"`
	Origin                string     `json:"origin"`
	Destination           string     `json:"destination"`
	DistanceKm            float64    `json:"distance_km"`
	ShippingMethod        string     `json:"shipping_method"`
	EstimatedDeliveryDays int        `json:"estimated_delivery_days"`
	EstimatedCost         float64    `json:"estimated_cost"`
	TrackingNumber        string     `json:"tracking_number"`
	Priority              string     `json:"priority"`
	WeightKg              float64    `json:"weight_kg"`
	Notes                 string     `json:"notes"`
	ActualDeliveryDate    *time.Time `json:"actual_delivery_date,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// ShipmentRequest тело создания и частичного обновления отправления
type ShipmentRequest struct {
	Description    *string  `json:"description,omitempty"`
	Status         *string  `json:"status,omitempty"`
	IsFragile      *bool    `json:"is_fragile,omitempty"`
	Origin         *string  `json:"origin,omitempty"`
	Destination    *string  `json:"destination,omitempty"`
	DistanceKm     *float64 `json:"distance_km,omitempty"`
	ShippingMethod *string  `json:"shipping_method,omitempty"`
	WeightKg       *float64 `json:"weight_kg,omitempty"`
	Priority       *string  `json:"priority,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// StatusRequest тело быстрого обновления статуса
type StatusRequest struct {
	Status             string  `json:"status"`
	ActualDeliveryDate *string `json:"actual_delivery_date,omitempty"`
}

// ShipmentList страница списка отправлений
type ShipmentList struct {
	Shipments  []Shipment `json:"shipments"`
	Page       int        `json:"page"`
	Pages      int        `json:"pages"`
	TotalCount int        `json:"totalCount"`
}

// PackingShipment краткие данные отправления в ответе с инструкциями
type PackingShipment struct {
	ID             string `json:"id"`
	Description    string `json:"description"`
	IsFragile      bool   `json:"is_fragile"`
	ShippingMethod string `json:"shipping_method"`
}

// PackingResponse сгенерированные инструкции по упаковке
type PackingResponse struct {
	Instructions string          `json:"instructions"`
	Shipment     PackingShipment `json:"shipment"`
}

// PackingErrorResponse ошибка генерации инструкций
type PackingErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Stats статистика для дашборда
type Stats struct {
	Summary           StatsSummary     `json:"summary"`
	Financial         StatsFinancial   `json:"financial"`
	RecentShipments   []RecentShipment `json:"recentShipments"`
	PriorityBreakdown map[string]int   `json:"priorityBreakdown"`
	MonthlyTrends     []MonthlyTrend   `json:"monthlyTrends"`
}

type StatsSummary struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	InTransit int `json:"inTransit"`
	Delivered int `json:"delivered"`
	Cancelled int `json:"cancelled"`
}

type StatsFinancial struct {
	TotalCost     float64 `json:"totalCost"`
	AverageCost   float64 `json:"averageCost"`
	TotalDistance float64 `json:"totalDistance"`
}

type RecentShipment struct {
	ID                    string    `json:"_id"`
	Description           string    `json:"description"`
	Status                string    `json:"status"`
	TrackingNumber        string    `json:"tracking_number"`
	EstimatedDeliveryDays int       `json:"estimated_delivery_days"`
	CreatedAt             time.Time `json:"createdAt"`
}

type TrendPeriod struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type MonthlyTrend struct {
	ID        TrendPeriod `json:"_id"`
	Count     int         `json:"count"`
	TotalCost float64     `json:"totalCost"`
}

// RegisterRequest данные для регистрации
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest данные для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ProfileRequest частичное обновление профиля
type ProfileRequest struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Address string `json:"address,omitempty"`
}

// PasswordRequest смена пароля
type PasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// User профиль пользователя
type User struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Company   string     `json:"company,omitempty"`
	Address   string     `json:"address,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// AuthResponse профиль пользователя вместе с токеном
type AuthResponse struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Address string `json:"address,omitempty"`
	Token   string `json:"token"`
}

// TrackingMessage событие перевозчика из топика трекинга
type TrackingMessage struct {
	TrackingNumber string     `json:"tracking_number" validate:"required"`
	Status         string     `json:"status" validate:"required,oneof=PENDING IN_TRANSIT DELIVERED CANCELLED"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
}

func ShipmentEntityToJSON(s entities.Shipment) Shipment {
	return Shipment{
		ID:                    s.ID.String(),
		User:                  s.UserID.String(),
		Description:           s.Description,
		Status:                string(s.Status),
		IsFragile:             s.IsFragile,
		Origin:                s.Origin,
		Destination:           s.Destination,
		DistanceKm:            s.DistanceKm,
		ShippingMethod:        string(s.ShippingMethod),
		EstimatedDeliveryDays: s.EstimatedDeliveryDays,
		EstimatedCost:         s.EstimatedCost,
		TrackingNumber:        s.TrackingNumber,
		Priority:              string(s.Priority),
		WeightKg:              s.WeightKg,
		Notes:                 s.Notes,
		ActualDeliveryDate:    s.ActualDeliveryDate,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

func ShipmentPageToJSON(p entities.ShipmentPage) ShipmentList {
	shipments := make([]Shipment, len(p.Shipments))
	for i, s := range p.Shipments {
		shipments[i] = ShipmentEntityToJSON(s)
	}
	return ShipmentList{
		Shipments:  shipments,
		Page:       p.Page,
		Pages:      p.Pages,
		TotalCount: p.TotalCount,
	}
}

func ShipmentRequestToPatch(req ShipmentRequest) entities.ShipmentPatch {
	patch := entities.ShipmentPatch{
		Description: req.Description,
		IsFragile:   req.IsFragile,
		Origin:      req.Origin,
		Destination: req.Destination,
		DistanceKm:  req.DistanceKm,
		WeightKg:    req.WeightKg,
		Notes:       req.Notes,
	}
	if req.Status != nil {
		status := entities.ShipmentStatus(*req.Status)
		patch.Status = &status
	}
	if req.ShippingMethod != nil {
		method := entities.ShippingMethod(*req.ShippingMethod)
		patch.ShippingMethod = &method
	}
	if req.Priority != nil {
		priority := entities.Priority(*req.Priority)
		patch.Priority = &priority
	}
	return patch
}

func PackingEntityToJSON(p entities.PackingInstructions) PackingResponse {
	return PackingResponse{
		Instructions: p.Instructions,
		Shipment: PackingShipment{
			ID:             p.Shipment.ID.String(),
			Description:    p.Shipment.Description,
			IsFragile:      p.Shipment.IsFragile,
			ShippingMethod: string(p.Shipment.ShippingMethod),
		},
	}
}

func StatsEntityToJSON(s entities.DashboardStats) Stats {
	recent := make([]RecentShipment, len(s.RecentShipments))
	for i, r := range s.RecentShipments {
		recent[i] = RecentShipment{
			ID:                    r.ID,
			Description:           r.Description,
			Status:                string(r.Status),
			TrackingNumber:        r.TrackingNumber,
			EstimatedDeliveryDays: r.EstimatedDeliveryDays,
			CreatedAt:             r.CreatedAt,
		}
	}

	priorities := make(map[string]int, len(s.PriorityBreakdown))
	for p, n := range s.PriorityBreakdown {
		priorities[string(p)] = n
	}

	trends := make([]MonthlyTrend, len(s.MonthlyTrends))
	for i, t := range s.MonthlyTrends {
		trends[i] = MonthlyTrend{
			ID:        TrendPeriod{Year: t.Year, Month: t.Month},
			Count:     t.Count,
			TotalCost: t.TotalCost,
		}
	}

	return Stats{
		Summary: StatsSummary{
			Total:     s.Summary.Total,
			Pending:   s.Summary.Pending,
			InTransit: s.Summary.InTransit,
			Delivered: s.Summary.Delivered,
			Cancelled: s.Summary.Cancelled,
		},
		Financial: StatsFinancial{
			TotalCost:     s.Financial.TotalCost,
			AverageCost:   s.Financial.AverageCost,
			TotalDistance: s.Financial.TotalDistance,
		},
		RecentShipments:   recent,
		PriorityBreakdown: priorities,
		MonthlyTrends:     trends,
	}
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Company:   u.Company,
		Address:   u.Address,
		CreatedAt: timePtr(u.CreatedAt),
		UpdatedAt: timePtr(u.UpdatedAt),
	}
}

func SessionToJSON(s entities.Session) AuthResponse {
	return AuthResponse{
		ID:      s.User.ID.String(),
		Name:    s.User.Name,
		Email:   s.User.Email,
		Phone:   s.User.Phone,
		Company: s.User.Company,
		Address: s.User.Address,
		Token:   s.Token,
	}
}

func TrackingMessageToEntity(m TrackingMessage) entities.TrackingUpdate {
	return entities.TrackingUpdate{
		TrackingNumber: m.TrackingNumber,
		Status:         entities.ShipmentStatus(m.Status),
		DeliveredAt:    m.DeliveredAt,
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
