package realtime

import (
	"github.com/viejosabroso/restaurant-orders/models"
	"github.com/viejosabroso/restaurant-orders/store"
	"github.com/viejosabroso/restaurant-orders/utils"
)

// AttachHub relays the store's snapshot feeds to the websocket hub so every
// connected client sees catalog and order changes as they happen. The
// returned Unsubscribe detaches both relays.
func AttachHub(s *store.Store, h *Hub) store.Unsubscribe {
	unsubMenu := s.SubscribeMenuItems(func(items []models.MenuItem, err error) {
		if err != nil {
			utils.ErrorLogger.Printf("menu feed error: %v", err)
			items = []models.MenuItem{}
		}
		h.Broadcast(Message{Event: EventMenuUpdate, Data: items})
	})
	unsubOrders := s.SubscribeOrders(func(orders []models.Order, err error) {
		if err != nil {
			utils.ErrorLogger.Printf("orders feed error: %v", err)
			orders = []models.Order{}
		}
		h.Broadcast(Message{Event: EventOrderUpdate, Data: orders})
		h.Broadcast(Message{Event: EventStatsUpdate, Data: StatsOf(orders)})
	})
	return func() {
		unsubMenu()
		unsubOrders()
	}
}
