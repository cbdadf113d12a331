package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "restaurant_orders_placed_total",
		Help: "Orders created through checkout.",
	})

	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "restaurant_order_status_transitions_total",
		Help: "Order status transitions by target status.",
	}, []string{"status"})

	WSClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "restaurant_ws_clients",
		Help: "Connected websocket clients.",
	})
)

// Handler exposes the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
