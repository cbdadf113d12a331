package cart

import (
	"sync"

	"github.com/viejosabroso/restaurant-orders/models"
)

// Cart is a session-scoped aggregator keyed by menu item id. It keeps the
// snapshot taken when the item was added, so a mid-session price edit by an
// admin never changes a cart already in progress. Nothing here is persisted;
// the lines become order lines at checkout.
type Cart struct {
	mu    sync.Mutex
	lines map[string]*models.CartItem
	order []string // insertion order, for stable rendering
}

func New() *Cart {
	return &Cart{lines: make(map[string]*models.CartItem)}
}

// Add increments the quantity for the item, inserting it with quantity 1 on
// first add. The snapshot stored is the one passed on that first add.
func (c *Cart) Add(item models.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if line, ok := c.lines[item.ID]; ok {
		line.Quantity++
		return
	}
	c.lines[item.ID] = &models.CartItem{MenuItem: item, Quantity: 1}
	c.order = append(c.order, item.ID)
}

// SetQuantity sets the quantity for an item; zero or negative removes the
// line entirely. Unknown ids are ignored.
func (c *Cart) SetQuantity(id string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if quantity <= 0 {
		c.removeLocked(id)
		return
	}
	if line, ok := c.lines[id]; ok {
		line.Quantity = quantity
	}
}

// Remove drops a line unconditionally.
func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)
}

func (c *Cart) removeLocked(id string) {
	if _, ok := c.lines[id]; !ok {
		return
	}
	delete(c.lines, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear empties the cart, after a successful checkout or an explicit cancel.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = make(map[string]*models.CartItem)
	c.order = nil
}

// Total sums quantity * snapshot price over all lines. Recomputed on demand.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, line := range c.lines {
		total += float64(line.Quantity) * line.MenuItem.Price
	}
	return total
}

// ItemCount sums quantities, for the cart badge.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Items returns the lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}
