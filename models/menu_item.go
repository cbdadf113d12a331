package models

import (
	"fmt"
	"time"
)

type Category string

const (
	CategoryFood      Category = "food"
	CategoryBeverages Category = "beverages"
	CategoryDesserts  Category = "desserts"
)

// ParseCategory rejects anything outside the closed enumeration.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryFood, CategoryBeverages, CategoryDesserts:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

func (c Category) Valid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

type MenuItem struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    Category  `gorm:"type:varchar(20);not null" json:"category"`
	ImageURL    *string   `gorm:"type:varchar(512)" json:"imageUrl,omitempty"`
	// No column default here: one would make the ORM drop an explicit
	// false on insert. The gateway applies the defaults-to-true rule.
	Available bool      `gorm:"not null" json:"available"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

// Snapshot copies the fields an order keeps for each line. Orders embed the
// copy, never a reference, so later catalog edits don't touch placed orders.
func (m MenuItem) Snapshot() MenuItemSnapshot {
	return MenuItemSnapshot{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		Available:   m.Available,
	}
}

type MenuItemSnapshot struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Available   bool     `json:"available"`
}
