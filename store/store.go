package store

import (
	"gorm.io/gorm"

	"github.com/viejosabroso/restaurant-orders/models"
)

// Store is the only path between the entity model and the database. It owns
// the live snapshot feeds for the menu and orders collections: every
// successful write re-queries the collection and pushes the full sorted
// snapshot to all subscribers.
type Store struct {
	db        *gorm.DB
	menuFeed  *feed[[]models.MenuItem]
	orderFeed *feed[[]models.Order]
}

func New(db *gorm.DB) *Store {
	return &Store{
		db:        db,
		menuFeed:  newFeed[[]models.MenuItem](),
		orderFeed: newFeed[[]models.Order](),
	}
}

func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(
		&models.MenuItem{},
		&models.Order{},
		&models.AppSettings{},
	)
}
