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

// MenuItemDraft carries the user-supplied fields of a new menu item.
// Available defaults to true when nil.
type MenuItemDraft struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Category    models.Category `json:"category"`
	ImageURL    *string         `json:"imageUrl"`
	Available   *bool           `json:"available"`
}

// MenuItemPatch is a partial update. Nil fields are stripped before writing;
// the store never sees null-ish placeholders.
type MenuItemPatch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *float64         `json:"price"`
	Category    *models.Category `json:"category"`
	ImageURL    *string          `json:"imageUrl"`
	Available   *bool            `json:"available"`
}

// ListMenuItems fetches the full catalog once, sorted by (category, name)
// ascending with case-normalized collation.
func (s *Store) ListMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.Find(&items).Error; err != nil {
		return nil, unavailable(err)
	}
	sortMenuItems(items)
	return items, nil
}

// GetMenuItem fetches a single item by id.
func (s *Store) GetMenuItem(id string) (models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MenuItem{}, ErrNotFound
		}
		return models.MenuItem{}, unavailable(err)
	}
	return item, nil
}

// SubscribeMenuItems opens a live query on the menu collection. The callback
// fires once immediately with the current snapshot and again after every
// change, always with the full sorted catalog. Subscribers are independent.
func (s *Store) SubscribeMenuItems(onUpdate func([]models.MenuItem, error)) Unsubscribe {
	unsub := s.menuFeed.subscribe(onUpdate)
	items, err := s.ListMenuItems()
	onUpdate(items, err)
	return unsub
}

// AddMenuItem validates the draft, assigns id and timestamps and writes the
// document. Returns the store-assigned id.
func (s *Store) AddMenuItem(draft MenuItemDraft) (string, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return "", &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if draft.Price < 0 {
		return "", &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if !draft.Category.Valid() {
		return "", &ValidationError{Field: "category", Reason: "unknown category"}
	}

	available := true
	if draft.Available != nil {
		available = *draft.Available
	}
	now := time.Now()
	item := models.MenuItem{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		Category:    draft.Category,
		ImageURL:    draft.ImageURL,
		Available:   available,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return "", unavailable(err)
	}
	s.publishMenu()
	return item.ID, nil
}

// UpdateMenuItem merges the provided fields into an existing document and
// bumps updatedAt. Absent fields are left untouched.
func (s *Store) UpdateMenuItem(id string, patch MenuItemPatch) error {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return &ValidationError{Field: "name", Reason: "must not be empty"}
		}
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return &ValidationError{Field: "price", Reason: "must not be negative"}
		}
		updates["price"] = *patch.Price
	}
	if patch.Category != nil {
		if !patch.Category.Valid() {
			return &ValidationError{Field: "category", Reason: "unknown category"}
		}
		updates["category"] = *patch.Category
	}
	if patch.ImageURL != nil {
		updates["image_url"] = *patch.ImageURL
	}
	if patch.Available != nil {
		updates["available"] = *patch.Available
	}
	updates["updated_at"] = time.Now()

	var item models.MenuItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return unavailable(err)
	}
	if err := s.db.Model(&item).Updates(updates).Error; err != nil {
		return unavailable(err)
	}
	s.publishMenu()
	return nil
}

// DeleteMenuItem removes the document permanently. Deleting a nonexistent id
// is not an error.
func (s *Store) DeleteMenuItem(id string) error {
	if err := s.db.Delete(&models.MenuItem{}, "id = ?", id).Error; err != nil {
		return unavailable(err)
	}
	s.publishMenu()
	return nil
}

func (s *Store) publishMenu() {
	items, err := s.ListMenuItems()
	s.menuFeed.publish(items, err)
}

func sortMenuItems(items []models.MenuItem) {
	sort.SliceStable(items, func(i, j int) bool {
		ci, cj := strings.ToLower(string(items[i].Category)), strings.ToLower(string(items[j].Category))
		if ci != cj {
			return ci < cj
		}
		ni, nj := strings.ToLower(items[i].Name), strings.ToLower(items[j].Name)
		if ni != nj {
			return ni < nj
		}
		return items[i].ID < items[j].ID
	})
}
