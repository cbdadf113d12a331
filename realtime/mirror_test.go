package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/viejosabroso/restaurant-orders/models"
	"github.com/viejosabroso/restaurant-orders/store"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	s := store.New(db)
	if err := s.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return s
}

func seedItem(t *testing.T, s *store.Store, name string, cat models.Category) models.MenuItem {
	t.Helper()
	id, err := s.AddMenuItem(store.MenuItemDraft{Name: name, Price: 50, Category: cat})
	assert.NoError(t, err)
	item, err := s.GetMenuItem(id)
	assert.NoError(t, err)
	return item
}

func TestMenuMirrorLoadingClearsOnFirstDelivery(t *testing.T) {
	s := setupTestStore(t)
	m := NewMenuMirror(s)
	defer m.Close()

	// the subscription delivers synchronously, so the first snapshot has
	// already arrived by the time the constructor returns
	assert.False(t, m.Loading())
	assert.NoError(t, m.Err())
	assert.Empty(t, m.Items())
}

func TestMenuMirrorTracksChanges(t *testing.T) {
	s := setupTestStore(t)
	m := NewMenuMirror(s)
	defer m.Close()

	seedItem(t, s, "Tacos", models.CategoryFood)
	assert.Len(t, m.Items(), 1)

	seedItem(t, s, "Flan", models.CategoryDesserts)
	assert.Len(t, m.Items(), 2)
}

func TestItemsByCategoryHidesUnavailable(t *testing.T) {
	s := setupTestStore(t)
	m := NewMenuMirror(s)
	defer m.Close()

	tacos := seedItem(t, s, "Tacos", models.CategoryFood)
	seedItem(t, s, "Flan", models.CategoryDesserts)

	food := m.ItemsByCategory(models.CategoryFood)
	assert.Len(t, food, 1)
	assert.Equal(t, "Tacos", food[0].Name)

	// toggling availability removes the item from the projection but not
	// from the full mirror (admin still sees it)
	off := false
	err := s.UpdateMenuItem(tacos.ID, store.MenuItemPatch{Available: &off})
	assert.NoError(t, err)

	assert.Empty(t, m.ItemsByCategory(models.CategoryFood))
	assert.Len(t, m.Items(), 2)
	assert.Len(t, m.AvailableItems(), 1)
}

func TestMenuMirrorCloseIsIdempotent(t *testing.T) {
	s := setupTestStore(t)
	m := NewMenuMirror(s)

	m.Close()
	m.Close()

	seedItem(t, s, "Tacos", models.CategoryFood)
	assert.Empty(t, m.Items(), "closed mirror must not receive updates")
}

func TestOrderMirrorStats(t *testing.T) {
	s := setupTestStore(t)
	m := NewOrderMirror(s)
	defer m.Close()

	tacos := seedItem(t, s, "Tacos", models.CategoryFood)

	first, err := s.AddOrder("Ana", nil, []models.CartItem{{MenuItem: tacos, Quantity: 1}}, 50)
	assert.NoError(t, err)
	_, err = s.AddOrder("Luis", nil, []models.CartItem{{MenuItem: tacos, Quantity: 2}}, 100)
	assert.NoError(t, err)

	stats := m.Stats()
	assert.Equal(t, OrderStats{Total: 2, New: 2}, stats)

	assert.NoError(t, s.UpdateOrderStatus(first, models.StatusInPreparation))
	stats = m.Stats()
	assert.Equal(t, OrderStats{Total: 2, New: 1, InPreparation: 1}, stats)

	assert.NoError(t, s.UpdateOrderStatus(first, models.StatusReady))
	assert.NoError(t, s.UpdateOrderStatus(first, models.StatusDelivered))
	stats = m.Stats()
	assert.Equal(t, OrderStats{Total: 1, New: 1}, stats)
	assert.Len(t, m.Orders(), 1)
}

func TestOrderMirrorNewestFirst(t *testing.T) {
	s := setupTestStore(t)
	m := NewOrderMirror(s)
	defer m.Close()

	tacos := seedItem(t, s, "Tacos", models.CategoryFood)
	_, err := s.AddOrder("Ana", nil, []models.CartItem{{MenuItem: tacos, Quantity: 1}}, 50)
	assert.NoError(t, err)
	_, err = s.AddOrder("Luis", nil, []models.CartItem{{MenuItem: tacos, Quantity: 1}}, 50)
	assert.NoError(t, err)

	orders := m.Orders()
	assert.Len(t, orders, 2)
	assert.False(t, orders[0].CreatedAt.Before(orders[1].CreatedAt))
}
