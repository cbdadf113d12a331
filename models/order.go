package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// OrderLine is one line of a placed order: a by-value snapshot of the menu
// item plus the ordered quantity.
type OrderLine struct {
	MenuItem MenuItemSnapshot `json:"menuItem"`
	Quantity int              `json:"quantity"`
}

// OrderLines is stored as a JSON document column.
type OrderLines []OrderLine

func (l OrderLines) Value() (driver.Value, error) {
	if l == nil {
		l = OrderLines{}
	}
	return json.Marshal(l)
}

func (l *OrderLines) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = OrderLines{}
		return nil
	}
	return fmt.Errorf("cannot scan %T into OrderLines", value)
}

type Order struct {
	ID           string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	CustomerName string      `gorm:"type:varchar(255);not null" json:"customerName"`
	TableNumber  *string     `gorm:"type:varchar(50)" json:"tableNumber,omitempty"`
	Items        OrderLines  `gorm:"type:text;not null" json:"items"`
	Total        float64     `gorm:"type:decimal(10,2);not null" json:"total"`
	Status       OrderStatus `gorm:"type:varchar(20);not null;default:'new'" json:"status"`
	CreatedAt    time.Time   `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time   `gorm:"not null" json:"updatedAt"`
}

// CartItem pairs a menu item snapshot with a quantity. It lives only in a
// shopping session and becomes an OrderLine at checkout.
type CartItem struct {
	MenuItem MenuItem `json:"menuItem"`
	Quantity int      `json:"quantity"`
}
