package models

import "fmt"

type OrderStatus string

const (
	StatusNew           OrderStatus = "new"
	StatusInPreparation OrderStatus = "in-preparation"
	StatusReady         OrderStatus = "ready"
	StatusDelivered     OrderStatus = "delivered"
)

// ParseOrderStatus rejects anything outside the closed enumeration.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusNew, StatusInPreparation, StatusReady, StatusDelivered:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

func (s OrderStatus) Valid() bool {
	_, err := ParseOrderStatus(string(s))
	return err == nil
}

// Active reports whether an order still belongs on the kitchen display.
// Delivered orders are archival, not deleted.
func (s OrderStatus) Active() bool {
	switch s {
	case StatusNew, StatusInPreparation, StatusReady:
		return true
	}
	return false
}

// NextStatus returns the single legal successor in the strictly linear
// lifecycle new -> in-preparation -> ready -> delivered. Delivered is
// terminal; ok is false there.
func NextStatus(s OrderStatus) (next OrderStatus, ok bool) {
	switch s {
	case StatusNew:
		return StatusInPreparation, true
	case StatusInPreparation:
		return StatusReady, true
	case StatusReady:
		return StatusDelivered, true
	}
	return "", false
}

// ActionLabel is the label of the one action a view offers for an order in
// the given status. Empty for terminal states.
func ActionLabel(s OrderStatus) string {
	switch s {
	case StatusNew:
		return "Start preparation"
	case StatusInPreparation:
		return "Mark ready"
	case StatusReady:
		return "Deliver"
	}
	return ""
}
