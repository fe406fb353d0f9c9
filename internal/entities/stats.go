package entities

import "time"

// TrendWindowMonths is how far back the monthly trend of the dashboard reaches.
const TrendWindowMonths = 6

// RecentShipmentsLimit is the number of shipments shown in the dashboard feed.
const RecentShipmentsLimit = 5

type StatusSummary struct {
	Total     int
	Pending   int
	InTransit int
	Delivered int
	Cancelled int
}

type FinancialSummary struct {
	TotalCost     float64
	AverageCost   float64
	TotalDistance float64
}

type RecentShipment struct {
	ID                    string
	Description           string
	Status                ShipmentStatus
	TrackingNumber        string
	EstimatedDeliveryDays int
	CreatedAt             time.Time
}

type MonthlyTrend struct {
	Year      int
	Month     int
	Count     int
	TotalCost float64
}

type DashboardStats struct {
	Summary           StatusSummary
	Financial         FinancialSummary
	RecentShipments   []RecentShipment
	PriorityBreakdown map[Priority]int
	MonthlyTrends     []MonthlyTrend
}

// TrendWindowStart returns the first instant included in the monthly trend.
func TrendWindowStart(now time.Time) time.Time {
	return now.AddDate(0, -TrendWindowMonths, 0)
}

// AddStatus increments the counter matching status and the total.
func (s *StatusSummary) AddStatus(status ShipmentStatus, n int) {
	switch status {
	case StatusPending:
		s.Pending += n
	case StatusInTransit:
		s.InTransit += n
	case StatusDelivered:
		s.Delivered += n
	case StatusCancelled:
		s.Cancelled += n
	}
	s.Total += n
}
