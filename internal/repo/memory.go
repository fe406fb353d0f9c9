package repo

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"

	"github.com/google/uuid"
)

// MemoryStore keeps users and shipments in process memory. It backs the memory
// storage driver and follows the same contract as the postgres repositories.
type MemoryStore struct {
	mu        sync.RWMutex
	users     map[uuid.UUID]entities.User
	shipments map[uuid.UUID]entities.Shipment
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:     make(map[uuid.UUID]entities.User),
		shipments: make(map[uuid.UUID]entities.Shipment),
	}
}

// Shipments returns the shipment repository view of the store.
func (m *MemoryStore) Shipments() *memoryShipmentRepo {
	return &memoryShipmentRepo{m}
}

// Users returns the user repository view of the store.
func (m *MemoryStore) Users() *memoryUserRepo {
	return &memoryUserRepo{m}
}

type memoryShipmentRepo struct {
	*MemoryStore
}

func (r *memoryShipmentRepo) Create(ctx context.Context, s entities.Shipment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.shipments {
		if existing.TrackingNumber == s.TrackingNumber {
			return entities.ErrTrackingNumberTaken
		}
	}
	r.shipments[s.ID] = s
	return nil
}

func (r *memoryShipmentRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (entities.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return entities.Shipment{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.shipments[id]
	if !ok || s.UserID != userID {
		return entities.Shipment{}, entities.ErrShipmentNotFound
	}
	return s, nil
}

func (r *memoryShipmentRepo) GetByTrackingNumber(ctx context.Context, trackingNumber string) (entities.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return entities.Shipment{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.shipments {
		if s.TrackingNumber == trackingNumber {
			return s, nil
		}
	}
	return entities.Shipment{}, entities.ErrShipmentNotFound
}

func (r *memoryShipmentRepo) Update(ctx context.Context, s entities.Shipment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.shipments[s.ID]
	if !ok || stored.UserID != s.UserID {
		return entities.ErrShipmentNotFound
	}
	// владелец, трек-номер и дата создания не меняются
	s.TrackingNumber = stored.TrackingNumber
	s.CreatedAt = stored.CreatedAt
	r.shipments[s.ID] = s
	return nil
}

func (r *memoryShipmentRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.shipments[id]
	if !ok || s.UserID != userID {
		return entities.ErrShipmentNotFound
	}
	delete(r.shipments, id)
	return nil
}

func (r *memoryShipmentRepo) List(ctx context.Context, userID uuid.UUID, filter entities.ShipmentFilter) ([]entities.Shipment, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	status := filter.StatusValue()
	search := strings.ToLower(filter.Search)

	matched := r.owned(userID, func(s entities.Shipment) bool {
		if status != "" && string(s.Status) != status {
			return false
		}
		if search == "" {
			return true
		}
		return strings.Contains(strings.ToLower(s.Description), search) ||
			strings.Contains(strings.ToLower(s.Origin), search) ||
			strings.Contains(strings.ToLower(s.Destination), search)
	})
	sortNewestFirst(matched)

	total := len(matched)
	start := min(filter.Offset(), total)
	end := min(start+filter.PageSize, total)

	page := make([]entities.Shipment, end-start)
	copy(page, matched[start:end])
	return page, total, nil
}

func (r *memoryShipmentRepo) Stats(ctx context.Context, userID uuid.UUID, since time.Time) (entities.DashboardStats, error) {
	if err := ctx.Err(); err != nil {
		return entities.DashboardStats{}, err
	}

	owned := r.owned(userID, func(entities.Shipment) bool { return true })
	sortNewestFirst(owned)

	stats := entities.DashboardStats{
		RecentShipments:   make([]entities.RecentShipment, 0, entities.RecentShipmentsLimit),
		PriorityBreakdown: make(map[entities.Priority]int),
		MonthlyTrends:     []entities.MonthlyTrend{},
	}

	type month struct{ year, month int }
	trends := make(map[month]*entities.MonthlyTrend)

	for i, s := range owned {
		stats.Summary.AddStatus(s.Status, 1)
		stats.Financial.TotalCost += s.EstimatedCost
		stats.Financial.TotalDistance += s.DistanceKm
		stats.PriorityBreakdown[s.Priority]++

		if i < entities.RecentShipmentsLimit {
			stats.RecentShipments = append(stats.RecentShipments, entities.RecentShipment{
				ID:                    s.ID.String(),
				Description:           s.Description,
				Status:                s.Status,
				TrackingNumber:        s.TrackingNumber,
				EstimatedDeliveryDays: s.EstimatedDeliveryDays,
				CreatedAt:             s.CreatedAt,
			})
		}

		if s.CreatedAt.Before(since) {
			continue
		}
		created := s.CreatedAt.UTC()
		key := month{created.Year(), int(created.Month())}
		t, ok := trends[key]
		if !ok {
			t = &entities.MonthlyTrend{Year: key.year, Month: key.month}
			trends[key] = t
		}
		t.Count++
		t.TotalCost += s.EstimatedCost
	}

	if len(owned) > 0 {
		stats.Financial.AverageCost = stats.Financial.TotalCost / float64(len(owned))
	}
	for _, t := range trends {
		stats.MonthlyTrends = append(stats.MonthlyTrends, *t)
	}
	slices.SortFunc(stats.MonthlyTrends, func(a, b entities.MonthlyTrend) int {
		return cmp.Or(cmp.Compare(a.Year, b.Year), cmp.Compare(a.Month, b.Month))
	})
	return stats, nil
}

func (r *memoryShipmentRepo) owned(userID uuid.UUID, match func(entities.Shipment) bool) []entities.Shipment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []entities.Shipment
	for _, s := range r.shipments {
		if s.UserID == userID && match(s) {
			result = append(result, s)
		}
	}
	return result
}

func sortNewestFirst(shipments []entities.Shipment) {
	slices.SortFunc(shipments, func(a, b entities.Shipment) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
}

type memoryUserRepo struct {
	*MemoryStore
}

func (r *memoryUserRepo) Create(ctx context.Context, u entities.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(u.Email, u.ID) {
		return entities.ErrEmailTaken
	}
	r.users[u.ID] = u
	return nil
}

func (r *memoryUserRepo) GetByID(ctx context.Context, id uuid.UUID) (entities.User, error) {
	if err := ctx.Err(); err != nil {
		return entities.User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return entities.User{}, entities.ErrUserNotFound
	}
	return u, nil
}

func (r *memoryUserRepo) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	if err := ctx.Err(); err != nil {
		return entities.User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return entities.User{}, entities.ErrUserNotFound
}

func (r *memoryUserRepo) Update(ctx context.Context, u entities.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[u.ID]
	if !ok {
		return entities.ErrUserNotFound
	}
	if r.emailTaken(u.Email, u.ID) {
		return entities.ErrEmailTaken
	}
	u.CreatedAt = stored.CreatedAt
	r.users[u.ID] = u
	return nil
}

// emailTaken must be called with the lock held.
func (r *memoryUserRepo) emailTaken(email string, except uuid.UUID) bool {
	for id, u := range r.users {
		if id != except && u.Email == email {
			return true
		}
	}
	return false
}
