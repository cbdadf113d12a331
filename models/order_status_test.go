package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLifecycleIsStrictlyLinear(t *testing.T) {
	next, ok := NextStatus(StatusNew)
	assert.True(t, ok)
	assert.Equal(t, StatusInPreparation, next)

	next, ok = NextStatus(StatusInPreparation)
	assert.True(t, ok)
	assert.Equal(t, StatusReady, next)

	next, ok = NextStatus(StatusReady)
	assert.True(t, ok)
	assert.Equal(t, StatusDelivered, next)

	// Delivered is terminal
	_, ok = NextStatus(StatusDelivered)
	assert.False(t, ok)
}

func TestActionLabels(t *testing.T) {
	assert.Equal(t, "Start preparation", ActionLabel(StatusNew))
	assert.Equal(t, "Mark ready", ActionLabel(StatusInPreparation))
	assert.Equal(t, "Deliver", ActionLabel(StatusReady))
	assert.Equal(t, "", ActionLabel(StatusDelivered))
}

func TestParseOrderStatusRejectsUnknownValues(t *testing.T) {
	for _, valid := range []string{"new", "in-preparation", "ready", "delivered"} {
		s, err := ParseOrderStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, OrderStatus(valid), s)
	}

	_, err := ParseOrderStatus("cancelled")
	assert.Error(t, err)
	_, err = ParseOrderStatus("")
	assert.Error(t, err)
}

func TestActiveStatuses(t *testing.T) {
	assert.True(t, StatusNew.Active())
	assert.True(t, StatusInPreparation.Active())
	assert.True(t, StatusReady.Active())
	assert.False(t, StatusDelivered.Active())
}

func TestParseCategoryRejectsUnknownValues(t *testing.T) {
	for _, valid := range []string{"food", "beverages", "desserts"} {
		cat, err := ParseCategory(valid)
		assert.NoError(t, err)
		assert.Equal(t, Category(valid), cat)
	}

	_, err := ParseCategory("drinks")
	assert.Error(t, err)
}
