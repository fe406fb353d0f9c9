package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

const trackingNumberIndex = "shipments_tracking_number_key"

type shipmentRepo struct {
	postgresRepo
}

func NewShipmentRepo(db *sqlx.DB) *shipmentRepo {
	return &shipmentRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *shipmentRepo) Create(ctx context.Context, s entities.Shipment) error {
	query, args := r.qb.Insert("shipments").
		Columns(shipmentColumns...).
		Values(
			s.ID, s.UserID, s.Description, string(s.Status), s.IsFragile, s.Origin, s.Destination,
			s.DistanceKm, string(s.ShippingMethod), s.EstimatedDeliveryDays, s.EstimatedCost,
			s.TrackingNumber, string(s.Priority), s.WeightKg, s.Notes, nullTime(s.ActualDeliveryDate),
			s.CreatedAt, s.UpdatedAt,
		).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if uniqueViolationOn(err, trackingNumberIndex) {
		return entities.ErrTrackingNumberTaken
	}
	if err != nil {
		return fmt.Errorf("failed to insert shipment: %w", err)
	}
	return nil
}

func (r *shipmentRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (entities.Shipment, error) {
	return r.getOne(ctx, sq.Eq{"id": id, "user_id": userID})
}

func (r *shipmentRepo) GetByTrackingNumber(ctx context.Context, trackingNumber string) (entities.Shipment, error) {
	return r.getOne(ctx, sq.Eq{"tracking_number": trackingNumber})
}

func (r *shipmentRepo) getOne(ctx context.Context, where sq.Eq) (entities.Shipment, error) {
	query, args := r.withLock(ctx, r.qb.Select(shipmentColumns...).
		From("shipments").
		Where(where)).
		MustSql()

	var row Shipment
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Shipment{}, entities.ErrShipmentNotFound
	}
	if err != nil {
		return entities.Shipment{}, fmt.Errorf("failed to get shipment: %w", err)
	}
	return ShipmentToEntity(row), nil
}

func (r *shipmentRepo) Update(ctx context.Context, s entities.Shipment) error {
	query, args := r.qb.Update("shipments").
		SetMap(map[string]any{
			"description":             s.Description,
			"status":                  string(s.Status),
			"is_fragile":              s.IsFragile,
			"origin":                  s.Origin,
			"destination":             s.Destination,
			"distance_km":             s.DistanceKm,
			"shipping_method":         string(s.ShippingMethod),
			"estimated_delivery_days": s.EstimatedDeliveryDays,
			"estimated_cost":          s.EstimatedCost,
			"priority":                string(s.Priority),
			"weight_kg":               s.WeightKg,
			"notes":                   s.Notes,
			"actual_delivery_date":    nullTime(s.ActualDeliveryDate),
			"updated_at":              s.UpdatedAt,
		}).
		Where(sq.Eq{"id": s.ID, "user_id": s.UserID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update shipment: %w", err)
	}
	return requireAffected(res, entities.ErrShipmentNotFound)
}

func (r *shipmentRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query, args := r.qb.Delete("shipments").
		Where(sq.Eq{"id": id, "user_id": userID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete shipment: %w", err)
	}
	return requireAffected(res, entities.ErrShipmentNotFound)
}

func (r *shipmentRepo) List(ctx context.Context, userID uuid.UUID, filter entities.ShipmentFilter) ([]entities.Shipment, int, error) {
	where := sq.And{sq.Eq{"user_id": userID}}
	if status := filter.StatusValue(); status != "" {
		where = append(where, sq.Eq{"status": status})
	}
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		where = append(where, sq.Or{
			sq.ILike{"description": pattern},
			sq.ILike{"origin": pattern},
			sq.ILike{"destination": pattern},
		})
	}

	query, args := r.qb.Select("COUNT(*)").From("shipments").Where(where).MustSql()
	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count shipments: %w", err)
	}
	if total == 0 {
		return []entities.Shipment{}, 0, nil
	}

	query, args = r.qb.Select(shipmentColumns...).
		From("shipments").
		Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(filter.Offset())).
		MustSql()

	var rows []Shipment
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to select shipments: %w", err)
	}

	result := make([]entities.Shipment, 0, len(rows))
	for _, row := range rows {
		result = append(result, ShipmentToEntity(row))
	}
	return result, total, nil
}

// Stats runs the dashboard aggregations in parallel on the pool, outside of any transaction.
func (r *shipmentRepo) Stats(ctx context.Context, userID uuid.UUID, since time.Time) (entities.DashboardStats, error) {
	owner := sq.Eq{"user_id": userID}

	var (
		statuses   []statusCount
		financial  financialRow
		recent     []recentRow
		priorities []priorityCount
		trends     []trendRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		query, args := r.qb.Select("status", "COUNT(*) AS count").
			From("shipments").Where(owner).GroupBy("status").MustSql()
		if err := r.db.SelectContext(gctx, &statuses, query, args...); err != nil {
			return fmt.Errorf("failed to count statuses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		query, args := r.qb.Select(
			"COALESCE(SUM(estimated_cost), 0) AS total_cost",
			"COALESCE(AVG(estimated_cost), 0) AS average_cost",
			"COALESCE(SUM(distance_km), 0) AS total_distance",
		).From("shipments").Where(owner).MustSql()
		if err := r.db.GetContext(gctx, &financial, query, args...); err != nil {
			return fmt.Errorf("failed to sum costs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		query, args := r.qb.Select(
			"id", "description", "status", "tracking_number", "estimated_delivery_days", "created_at",
		).From("shipments").Where(owner).
			OrderBy("created_at DESC", "id").
			Limit(entities.RecentShipmentsLimit).
			MustSql()
		if err := r.db.SelectContext(gctx, &recent, query, args...); err != nil {
			return fmt.Errorf("failed to select recent shipments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		query, args := r.qb.Select("priority", "COUNT(*) AS count").
			From("shipments").Where(owner).GroupBy("priority").MustSql()
		if err := r.db.SelectContext(gctx, &priorities, query, args...); err != nil {
			return fmt.Errorf("failed to count priorities: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		// месяцы считаются в UTC независимо от таймзоны сессии
		query, args := r.qb.Select(
			"EXTRACT(YEAR FROM created_at AT TIME ZONE 'UTC')::int AS year",
			"EXTRACT(MONTH FROM created_at AT TIME ZONE 'UTC')::int AS month",
			"COUNT(*) AS count",
			"COALESCE(SUM(estimated_cost), 0) AS total_cost",
		).From("shipments").
			Where(sq.And{owner, sq.GtOrEq{"created_at": since}}).
			GroupBy("year", "month").
			OrderBy("year", "month").
			MustSql()
		if err := r.db.SelectContext(gctx, &trends, query, args...); err != nil {
			return fmt.Errorf("failed to aggregate monthly trends: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return entities.DashboardStats{}, err
	}

	stats := entities.DashboardStats{
		Financial: entities.FinancialSummary{
			TotalCost:     financial.TotalCost,
			AverageCost:   financial.AverageCost,
			TotalDistance: financial.TotalDistance,
		},
		RecentShipments:   make([]entities.RecentShipment, 0, len(recent)),
		PriorityBreakdown: make(map[entities.Priority]int, len(priorities)),
		MonthlyTrends:     make([]entities.MonthlyTrend, 0, len(trends)),
	}
	for _, s := range statuses {
		stats.Summary.AddStatus(entities.ShipmentStatus(s.Status), s.Count)
	}
	for _, row := range recent {
		stats.RecentShipments = append(stats.RecentShipments, entities.RecentShipment{
			ID:                    row.ID.String(),
			Description:           row.Description,
			Status:                entities.ShipmentStatus(row.Status),
			TrackingNumber:        row.TrackingNumber,
			EstimatedDeliveryDays: row.EstimatedDeliveryDays,
			CreatedAt:             row.CreatedAt,
		})
	}
	for _, p := range priorities {
		stats.PriorityBreakdown[entities.Priority(p.Priority)] = p.Count
	}
	for _, t := range trends {
		stats.MonthlyTrends = append(stats.MonthlyTrends, entities.MonthlyTrend{
			Year:      t.Year,
			Month:     t.Month,
			Count:     t.Count,
			TotalCost: t.TotalCost,
		})
	}
	return stats, nil
}
