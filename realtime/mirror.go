package realtime

import (
	"sync"

	"github.com/viejosabroso/restaurant-orders/models"
	"github.com/viejosabroso/restaurant-orders/store"
)

// MenuMirror bridges the store's push-based menu subscription into a
// pull-friendly view. It holds the latest full snapshot and derives
// projections from it; each delivery supersedes the previous snapshot
// entirely.
type MenuMirror struct {
	mu      sync.RWMutex
	items   []models.MenuItem
	loading bool
	err     error

	unsub     store.Unsubscribe
	closeOnce sync.Once
}

func NewMenuMirror(s *store.Store) *MenuMirror {
	m := &MenuMirror{loading: true}
	m.unsub = s.SubscribeMenuItems(m.apply)
	return m
}

func (m *MenuMirror) apply(items []models.MenuItem, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = items
	m.err = err
	m.loading = false
}

// Items returns the full catalog mirror, unavailable items included. Admin
// views read this.
func (m *MenuMirror) Items() []models.MenuItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.MenuItem, len(m.items))
	copy(out, m.items)
	return out
}

// ItemsByCategory filters the mirror to available items of one category.
// Recomputed per call; the catalog is small.
func (m *MenuMirror) ItemsByCategory(category models.Category) []models.MenuItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.MenuItem, 0)
	for _, it := range m.items {
		if it.Category == category && it.Available {
			out = append(out, it)
		}
	}
	return out
}

// AvailableItems filters the mirror to items customers can order.
func (m *MenuMirror) AvailableItems() []models.MenuItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.MenuItem, 0)
	for _, it := range m.items {
		if it.Available {
			out = append(out, it)
		}
	}
	return out
}

// Loading is true until the first snapshot delivery, error included.
func (m *MenuMirror) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Err reports the last subscription failure, nil after a successful delivery.
func (m *MenuMirror) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.err
}

// Close releases the subscription. Safe to call more than once.
func (m *MenuMirror) Close() {
	m.closeOnce.Do(m.unsub)
}

// OrderStats aggregates the active-orders mirror for the kitchen header.
type OrderStats struct {
	Total         int `json:"total"`
	New           int `json:"new"`
	InPreparation int `json:"inPreparation"`
	Ready         int `json:"ready"`
}

// StatsOf counts an active-orders snapshot by status.
func StatsOf(orders []models.Order) OrderStats {
	stats := OrderStats{Total: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case models.StatusNew:
			stats.New++
		case models.StatusInPreparation:
			stats.InPreparation++
		case models.StatusReady:
			stats.Ready++
		}
	}
	return stats
}

// OrderMirror is the orders counterpart of MenuMirror: latest active-orders
// snapshot plus derived statistics.
type OrderMirror struct {
	mu      sync.RWMutex
	orders  []models.Order
	loading bool
	err     error

	unsub     store.Unsubscribe
	closeOnce sync.Once
}

func NewOrderMirror(s *store.Store) *OrderMirror {
	m := &OrderMirror{loading: true}
	m.unsub = s.SubscribeOrders(m.apply)
	return m
}

func (m *OrderMirror) apply(orders []models.Order, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = orders
	m.err = err
	m.loading = false
}

// Orders returns the current active-orders snapshot, newest first.
func (m *OrderMirror) Orders() []models.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Order, len(m.orders))
	copy(out, m.orders)
	return out
}

// Stats aggregates the current snapshot.
func (m *OrderMirror) Stats() OrderStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return StatsOf(m.orders)
}

func (m *OrderMirror) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

func (m *OrderMirror) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.err
}

func (m *OrderMirror) Close() {
	m.closeOnce.Do(m.unsub)
}
