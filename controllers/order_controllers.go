package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/viejosabroso/restaurant-orders/metrics"
	"github.com/viejosabroso/restaurant-orders/models"
	"github.com/viejosabroso/restaurant-orders/realtime"
	"github.com/viejosabroso/restaurant-orders/store"
	"github.com/viejosabroso/restaurant-orders/utils"
)

type OrderController struct {
	Store  *store.Store
	Mirror *realtime.OrderMirror
}

func NewOrderController(s *store.Store, m *realtime.OrderMirror) *OrderController {
	return &OrderController{Store: s, Mirror: m}
}

// CreateOrder is the checkout action: the cart lines arrive with the menu
// item snapshots the session captured, and the order is created atomically
// with status "new". The gateway validates; binding stays loose on purpose.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body struct {
		CustomerName string            `json:"customerName"`
		TableNumber  *string           `json:"tableNumber"`
		Items        []models.CartItem `json:"items"`
		Total        float64           `json:"total"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	id, err := oc.Store.AddOrder(body.CustomerName, body.TableNumber, body.Items, body.Total)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	metrics.OrdersPlaced.Inc()

	order, err := oc.Store.GetOrder(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrderByID returns one order, delivered ones included.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, err := oc.Store.GetOrder(c.Param("order_id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetKitchenDisplay serves the live kitchen view from the realtime mirror:
// active orders newest first, with the one legal action per order.
func (oc *OrderController) GetKitchenDisplay(c *gin.Context) {
	if err := oc.Mirror.Err(); err != nil {
		respondStoreError(c, err)
		return
	}
	orders := oc.Mirror.Orders()
	type displayOrder struct {
		models.Order
		ActionLabel string `json:"actionLabel"`
	}
	display := make([]displayOrder, 0, len(orders))
	for _, o := range orders {
		display = append(display, displayOrder{Order: o, ActionLabel: models.ActionLabel(o.Status)})
	}
	utils.RespondJSON(c, http.StatusOK, "Kitchen display orders", display)
}

// GetOrderStats aggregates the active-orders mirror for the kitchen header.
func (oc *OrderController) GetOrderStats(c *gin.Context) {
	if err := oc.Mirror.Err(); err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order stats", oc.Mirror.Stats())
}

// GetOrdersByStatus is a one-shot filtered fetch.
// Endpoint: GET /orders/by-status?status=<status>
func (oc *OrderController) GetOrdersByStatus(c *gin.Context) {
	status, err := models.ParseOrderStatus(c.Query("status"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	orders, err := oc.Store.GetOrdersByStatus(status)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Orders with status "+string(status), orders)
}

// GetAllOrders lists every order including delivered ones (admin archive).
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Store.ListOrders()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// UpdateOrderStatus advances an order to the requested status. Anything but
// the single legal successor is rejected with 409.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("order_id")
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	status, err := models.ParseOrderStatus(body.Status)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := oc.Store.UpdateOrderStatus(id, status); err != nil {
		respondStoreError(c, err)
		return
	}
	metrics.StatusTransitions.WithLabelValues(string(status)).Inc()

	order, err := oc.Store.GetOrder(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}
