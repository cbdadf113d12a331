package store

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/viejosabroso/restaurant-orders/models"
)

// AddOrder creates an order from a checkout: each cart line's menu item is
// snapshotted by value, the total is persisted as given and the order starts
// in status "new".
func (s *Store) AddOrder(customerName string, tableNumber *string, items []models.CartItem, total float64) (string, error) {
	if strings.TrimSpace(customerName) == "" {
		return "", &ValidationError{Field: "customerName", Reason: "must not be blank"}
	}
	if len(items) == 0 {
		return "", &ValidationError{Field: "items", Reason: "must not be empty"}
	}
	lines := make(models.OrderLines, 0, len(items))
	for _, it := range items {
		if it.Quantity < 1 {
			return "", &ValidationError{Field: "items", Reason: "quantity must be at least 1"}
		}
		lines = append(lines, models.OrderLine{
			MenuItem: it.MenuItem.Snapshot(),
			Quantity: it.Quantity,
		})
	}

	now := time.Now()
	order := models.Order{
		ID:           uuid.NewString(),
		CustomerName: customerName,
		TableNumber:  tableNumber,
		Items:        lines,
		Total:        total,
		Status:       models.StatusNew,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return "", unavailable(err)
	}
	s.publishOrders()
	return order.ID, nil
}

// GetOrder fetches a single order by id.
func (s *Store) GetOrder(id string) (models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, unavailable(err)
	}
	return order, nil
}

// UpdateOrderStatus advances an order's lifecycle. The write is rejected with
// IllegalTransitionError unless newStatus is the exact successor of the
// persisted status, so two terminals racing on the same order cannot both
// win. The check and the write share one transaction.
func (s *Store) UpdateOrderStatus(id string, newStatus models.OrderStatus) error {
	if !newStatus.Valid() {
		return &ValidationError{Field: "status", Reason: "unknown order status"}
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return unavailable(err)
		}
		next, ok := models.NextStatus(order.Status)
		if !ok || next != newStatus {
			return &IllegalTransitionError{From: order.Status, To: newStatus}
		}
		return tx.Model(&order).Updates(map[string]interface{}{
			"status":     newStatus,
			"updated_at": time.Now(),
		}).Error
	})
	if err != nil {
		return err
	}
	s.publishOrders()
	return nil
}

// SubscribeOrders opens a live query on the orders collection. Every delivery
// is the full set of active orders (delivered ones are archival and excluded)
// sorted newest first. Filtering happens here instead of in a server-side
// compound index on purpose.
func (s *Store) SubscribeOrders(onUpdate func([]models.Order, error)) Unsubscribe {
	unsub := s.orderFeed.subscribe(onUpdate)
	orders, err := s.activeOrders()
	onUpdate(orders, err)
	return unsub
}

// GetOrdersByStatus is a one-shot fetch-all-then-filter, newest first.
func (s *Store) GetOrdersByStatus(status models.OrderStatus) ([]models.Order, error) {
	if !status.Valid() {
		return nil, &ValidationError{Field: "status", Reason: "unknown order status"}
	}
	all, err := s.fetchOrders()
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0)
	for _, o := range all {
		if o.Status == status {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

// ListOrders returns every order including delivered ones, newest first.
// Admin surfaces use this; the kitchen display never does.
func (s *Store) ListOrders() ([]models.Order, error) {
	return s.fetchOrders()
}

func (s *Store) activeOrders() ([]models.Order, error) {
	all, err := s.fetchOrders()
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(all))
	for _, o := range all {
		if o.Status.Active() {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (s *Store) fetchOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Find(&orders).Error; err != nil {
		return nil, unavailable(err)
	}
	sort.SliceStable(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID < orders[j].ID
	})
	return orders, nil
}

func (s *Store) publishOrders() {
	orders, err := s.activeOrders()
	s.orderFeed.publish(orders, err)
}
