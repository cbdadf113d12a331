package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/viejosabroso/restaurant-orders/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	s := New(db)
	if err := s.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return s
}

func boolPtr(b bool) *bool        { return &b }
func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func seedItem(t *testing.T, s *Store, name string, price float64, cat models.Category) models.MenuItem {
	t.Helper()
	id, err := s.AddMenuItem(MenuItemDraft{Name: name, Price: price, Category: cat})
	assert.NoError(t, err)
	item, err := s.GetMenuItem(id)
	assert.NoError(t, err)
	return item
}

func TestAddMenuItemRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.AddMenuItem(MenuItemDraft{
		Name:        "Tacos",
		Description: "Tres tacos al pastor",
		Price:       85.0,
		Category:    models.CategoryFood,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	item, err := s.GetMenuItem(id)
	assert.NoError(t, err)
	assert.Equal(t, "Tacos", item.Name)
	assert.Equal(t, "Tres tacos al pastor", item.Description)
	assert.Equal(t, 85.0, item.Price)
	assert.Equal(t, models.CategoryFood, item.Category)
	// available defaults to true when omitted
	assert.True(t, item.Available)
	assert.Equal(t, item.CreatedAt, item.UpdatedAt)
}

func TestAddMenuItemValidation(t *testing.T) {
	s := setupTestStore(t)
	var validation *ValidationError

	_, err := s.AddMenuItem(MenuItemDraft{Name: "  ", Price: 10, Category: models.CategoryFood})
	assert.ErrorAs(t, err, &validation)

	_, err = s.AddMenuItem(MenuItemDraft{Name: "Tacos", Price: -1, Category: models.CategoryFood})
	assert.ErrorAs(t, err, &validation)

	_, err = s.AddMenuItem(MenuItemDraft{Name: "Tacos", Price: 10, Category: "drinks"})
	assert.ErrorAs(t, err, &validation)
}

func TestListMenuItemsSortedByCategoryThenName(t *testing.T) {
	s := setupTestStore(t)
	seedItem(t, s, "tacos", 85, models.CategoryFood)
	seedItem(t, s, "Flan", 45, models.CategoryDesserts)
	seedItem(t, s, "Agua fresca", 20, models.CategoryBeverages)
	seedItem(t, s, "Enchiladas", 95, models.CategoryFood)

	items, err := s.ListMenuItems()
	assert.NoError(t, err)
	assert.Len(t, items, 4)
	// beverages < desserts < food; case-normalized names within category
	assert.Equal(t, "Agua fresca", items[0].Name)
	assert.Equal(t, "Flan", items[1].Name)
	assert.Equal(t, "Enchiladas", items[2].Name)
	assert.Equal(t, "tacos", items[3].Name)
}

func TestListMenuItemsTieBreakIsDeterministic(t *testing.T) {
	s := setupTestStore(t)
	seedItem(t, s, "Tacos", 85, models.CategoryFood)
	seedItem(t, s, "Tacos", 90, models.CategoryFood)

	first, err := s.ListMenuItems()
	assert.NoError(t, err)
	second, err := s.ListMenuItems()
	assert.NoError(t, err)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[1].ID, second[1].ID)
	assert.True(t, first[0].ID < first[1].ID)
}

func TestUpdateMenuItemMergesProvidedFieldsOnly(t *testing.T) {
	s := setupTestStore(t)
	item := seedItem(t, s, "Tacos", 85, models.CategoryFood)

	err := s.UpdateMenuItem(item.ID, MenuItemPatch{Price: floatPtr(90)})
	assert.NoError(t, err)

	updated, err := s.GetMenuItem(item.ID)
	assert.NoError(t, err)
	assert.Equal(t, 90.0, updated.Price)
	// untouched fields keep their values
	assert.Equal(t, "Tacos", updated.Name)
	assert.Equal(t, models.CategoryFood, updated.Category)
	assert.True(t, updated.Available)
}

func TestUpdateMenuItemNotFound(t *testing.T) {
	s := setupTestStore(t)
	err := s.UpdateMenuItem("missing", MenuItemPatch{Name: strPtr("X")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMenuItemIsIdempotent(t *testing.T) {
	s := setupTestStore(t)
	item := seedItem(t, s, "Tacos", 85, models.CategoryFood)

	assert.NoError(t, s.DeleteMenuItem(item.ID))
	// second delete of the same id must not error
	assert.NoError(t, s.DeleteMenuItem(item.ID))

	_, err := s.GetMenuItem(item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubscribeMenuItemsDeliversImmediateAndOnChange(t *testing.T) {
	s := setupTestStore(t)
	seedItem(t, s, "Tacos", 85, models.CategoryFood)

	var snapshots [][]models.MenuItem
	unsub := s.SubscribeMenuItems(func(items []models.MenuItem, err error) {
		assert.NoError(t, err)
		snapshots = append(snapshots, items)
	})

	// immediate snapshot with the current catalog
	assert.Len(t, snapshots, 1)
	assert.Len(t, snapshots[0], 1)

	seedItem(t, s, "Flan", 45, models.CategoryDesserts)
	assert.Len(t, snapshots, 2)

	last := snapshots[len(snapshots)-1]
	assert.Len(t, last, 2)

	unsub()
	seedItem(t, s, "Agua", 20, models.CategoryBeverages)
	assert.Len(t, snapshots, 2, "no deliveries after unsubscribe")

	// double-unsubscribe is a no-op
	unsub()
}

func TestSubscribersAreIndependent(t *testing.T) {
	s := setupTestStore(t)

	countA, countB := 0, 0
	unsubA := s.SubscribeMenuItems(func([]models.MenuItem, error) { countA++ })
	unsubB := s.SubscribeMenuItems(func([]models.MenuItem, error) { countB++ })
	defer unsubB()

	seedItem(t, s, "Tacos", 85, models.CategoryFood)
	assert.Equal(t, 2, countA)
	assert.Equal(t, 2, countB)

	unsubA()
	seedItem(t, s, "Flan", 45, models.CategoryDesserts)
	assert.Equal(t, 2, countA)
	assert.Equal(t, 3, countB)
}

func TestAddOrderSnapshotsItemsByValue(t *testing.T) {
	s := setupTestStore(t)
	tacos := seedItem(t, s, "Tacos", 85, models.CategoryFood)
	agua := seedItem(t, s, "Agua", 35, models.CategoryBeverages)

	id, err := s.AddOrder("Ana", nil, []models.CartItem{
		{MenuItem: tacos, Quantity: 1},
		{MenuItem: agua, Quantity: 1},
	}, 120.0)
	assert.NoError(t, err)

	order, err := s.GetOrder(id)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusNew, order.Status)
	assert.Equal(t, 120.0, order.Total)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, "Ana", order.CustomerName)

	// later catalog edits must not touch the placed order
	err = s.UpdateMenuItem(tacos.ID, MenuItemPatch{Price: floatPtr(999)})
	assert.NoError(t, err)

	order, err = s.GetOrder(id)
	assert.NoError(t, err)
	assert.Equal(t, 85.0, order.Items[0].MenuItem.Price)
	assert.Equal(t, 120.0, order.Total)
}

func TestAddOrderValidation(t *testing.T) {
	s := setupTestStore(t)
	tacos := seedItem(t, s, "Tacos", 85, models.CategoryFood)
	var validation *ValidationError

	_, err := s.AddOrder("  ", nil, []models.CartItem{{MenuItem: tacos, Quantity: 1}}, 85)
	assert.ErrorAs(t, err, &validation)

	_, err = s.AddOrder("Ana", nil, nil, 0)
	assert.ErrorAs(t, err, &validation)

	_, err = s.AddOrder("Ana", nil, []models.CartItem{{MenuItem: tacos, Quantity: 0}}, 0)
	assert.ErrorAs(t, err, &validation)
}

func TestUpdateOrderStatusFollowsTheLinearMachine(t *testing.T) {
	s := setupTestStore(t)
	tacos := seedItem(t, s, "Tacos", 85, models.CategoryFood)
	id, err := s.AddOrder("Ana", nil, []models.CartItem{{MenuItem: tacos, Quantity: 1}}, 85)
	assert.NoError(t, err)

	// skipping a stage is rejected
	var transition *IllegalTransitionError
	err = s.UpdateOrderStatus(id, models.StatusReady)
	assert.ErrorAs(t, err, &transition)

	// going backwards is rejected
	err = s.UpdateOrderStatus(id, models.StatusNew)
	assert.ErrorAs(t, err, &transition)

	assert.NoError(t, s.UpdateOrderStatus(id, models.StatusInPreparation))
	assert.NoError(t, s.UpdateOrderStatus(id, models.StatusReady))
	assert.NoError(t, s.UpdateOrderStatus(id, models.StatusDelivered))

	// delivered is terminal
	err = s.UpdateOrderStatus(id, models.StatusDelivered)
	assert.ErrorAs(t, err, &transition)

	err = s.UpdateOrderStatus("missing", models.StatusInPreparation)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubscribeOrdersExcludesDelivered(t *testing.T) {
	s := setupTestStore(t)
	tacos := seedItem(t, s, "Tacos", 85, models.CategoryFood)
	id, err := s.AddOrder("Ana", nil, []models.CartItem{{MenuItem: tacos, Quantity: 1}}, 85)
	assert.NoError(t, err)

	var latest []models.Order
	unsub := s.SubscribeOrders(func(orders []models.Order, err error) {
		assert.NoError(t, err)
		latest = orders
	})
	defer unsub()
	assert.Len(t, latest, 1)

	// still present while in-preparation and ready
	assert.NoError(t, s.UpdateOrderStatus(id, models.StatusInPreparation))
	assert.Len(t, latest, 1)
	assert.Equal(t, models.StatusInPreparation, latest[0].Status)

	assert.NoError(t, s.UpdateOrderStatus(id, models.StatusReady))
	assert.Len(t, latest, 1)

	// gone once delivered
	assert.NoError(t, s.UpdateOrderStatus(id, models.StatusDelivered))
	assert.Empty(t, latest)

	// archival, not deleted
	order, err := s.GetOrder(id)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, order.Status)
}

func TestGetOrdersByStatus(t *testing.T) {
	s := setupTestStore(t)
	tacos := seedItem(t, s, "Tacos", 85, models.CategoryFood)

	first, err := s.AddOrder("Ana", nil, []models.CartItem{{MenuItem: tacos, Quantity: 1}}, 85)
	assert.NoError(t, err)
	_, err = s.AddOrder("Luis", nil, []models.CartItem{{MenuItem: tacos, Quantity: 2}}, 170)
	assert.NoError(t, err)
	assert.NoError(t, s.UpdateOrderStatus(first, models.StatusInPreparation))

	newOrders, err := s.GetOrdersByStatus(models.StatusNew)
	assert.NoError(t, err)
	assert.Len(t, newOrders, 1)
	assert.Equal(t, "Luis", newOrders[0].CustomerName)

	inPrep, err := s.GetOrdersByStatus(models.StatusInPreparation)
	assert.NoError(t, err)
	assert.Len(t, inPrep, 1)
	assert.Equal(t, "Ana", inPrep[0].CustomerName)

	_, err = s.GetOrdersByStatus("cancelled")
	var validation *ValidationError
	assert.True(t, errors.As(err, &validation))
}

func TestSettingsMergeWrite(t *testing.T) {
	s := setupTestStore(t)

	_, found, err := s.GetSettings()
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, s.UpdateSettings(SettingsPatch{HeaderTitle: strPtr("La Cocina")}))

	settings, found, err := s.GetSettings()
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "La Cocina", settings.HeaderTitle)
	// unspecified fields come from the defaults on first save
	assert.Equal(t, "#FF7518", settings.ThemeColor)

	// a second partial write keeps earlier overrides
	assert.NoError(t, s.UpdateSettings(SettingsPatch{ThemeColor: strPtr("#000000")}))
	settings, _, err = s.GetSettings()
	assert.NoError(t, err)
	assert.Equal(t, "La Cocina", settings.HeaderTitle)
	assert.Equal(t, "#000000", settings.ThemeColor)
}

func TestMenuItemAvailabilityToggle(t *testing.T) {
	s := setupTestStore(t)
	item := seedItem(t, s, "Tacos", 85, models.CategoryFood)

	assert.NoError(t, s.UpdateMenuItem(item.ID, MenuItemPatch{Available: boolPtr(false)}))

	updated, err := s.GetMenuItem(item.ID)
	assert.NoError(t, err)
	assert.False(t, updated.Available)

	// still present in the unfiltered catalog
	items, err := s.ListMenuItems()
	assert.NoError(t, err)
	assert.Len(t, items, 1)
}
