package database

import (
	"github.com/viejosabroso/restaurant-orders/models"
	"github.com/viejosabroso/restaurant-orders/store"
	"github.com/viejosabroso/restaurant-orders/utils"
)

var initialMenuItems = []store.MenuItemDraft{
	{
		Name:        "Tacos al Pastor",
		Description: "Deliciosos tacos con carne al pastor, piña y salsa verde",
		Price:       85.0,
		Category:    models.CategoryFood,
	},
	{
		Name:        "Quesadilla de Flor de Calabaza",
		Description: "Quesadilla artesanal con flor de calabaza y queso oaxaca",
		Price:       65.0,
		Category:    models.CategoryFood,
	},
	{
		Name:        "Pozole Rojo",
		Description: "Tradicional pozole rojo con cerdo y acompañamientos",
		Price:       120.0,
		Category:    models.CategoryFood,
	},
	{
		Name:        "Enchiladas Verdes",
		Description: "Enchiladas bañadas en salsa verde con pollo y crema",
		Price:       95.0,
		Category:    models.CategoryFood,
	},
	{
		Name:        "Agua de Horchata",
		Description: "Refrescante agua de horchata casera",
		Price:       35.0,
		Category:    models.CategoryBeverages,
	},
	{
		Name:        "Agua de Jamaica",
		Description: "Agua fresca de flor de jamaica",
		Price:       30.0,
		Category:    models.CategoryBeverages,
	},
	{
		Name:        "Agua de Tamarindo",
		Description: "Agua fresca de tamarindo con chile piquín",
		Price:       35.0,
		Category:    models.CategoryBeverages,
	},
	{
		Name:        "Flan Napolitano",
		Description: "Cremoso flan casero con caramelo",
		Price:       45.0,
		Category:    models.CategoryDesserts,
	},
	{
		Name:        "Churros con Cajeta",
		Description: "Churros recién hechos con cajeta y azúcar canela",
		Price:       55.0,
		Category:    models.CategoryDesserts,
	},
}

// SeedMenuItems fills an empty catalog with the starter menu. A catalog with
// any items at all is left alone.
func SeedMenuItems(s *store.Store) error {
	items, err := s.ListMenuItems()
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return nil
	}
	for _, draft := range initialMenuItems {
		if _, err := s.AddMenuItem(draft); err != nil {
			return err
		}
	}
	utils.InfoLogger.Printf("Seeded %d menu items", len(initialMenuItems))
	return nil
}
