package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/viejosabroso/restaurant-orders/models"
	"github.com/viejosabroso/restaurant-orders/realtime"
	"github.com/viejosabroso/restaurant-orders/store"
	"github.com/viejosabroso/restaurant-orders/utils"
)

type MenuController struct {
	Store  *store.Store
	Mirror *realtime.MenuMirror
}

func NewMenuController(s *store.Store, m *realtime.MenuMirror) *MenuController {
	return &MenuController{Store: s, Mirror: m}
}

// GetAllMenuItems returns the full catalog, unavailable items included.
// Admin views use this; customer surfaces filter by category instead.
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	items, err := mc.Store.ListMenuItems()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetMenuItemsByCategory serves the customer menu from the realtime mirror:
// available items of one category only.
// Endpoint: GET /menus/by-category?category=<category>
func (mc *MenuController) GetMenuItemsByCategory(c *gin.Context) {
	categoryStr := c.Query("category")
	if categoryStr == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("query parameter 'category' is required"))
		return
	}
	category, err := models.ParseCategory(categoryStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := mc.Mirror.Err(); err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu items for category "+categoryStr, mc.Mirror.ItemsByCategory(category))
}

// GetMenuItemByID returns one item.
func (mc *MenuController) GetMenuItemByID(c *gin.Context) {
	item, err := mc.Store.GetMenuItem(c.Param("menu_id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// CreateMenuItem adds a catalog item from an admin form.
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var draft store.MenuItemDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	id, err := mc.Store.AddMenuItem(draft)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	item, err := mc.Store.GetMenuItem(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem merges the provided fields; absent fields stay untouched.
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	id := c.Param("menu_id")
	var patch store.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := mc.Store.UpdateMenuItem(id, patch); err != nil {
		respondStoreError(c, err)
		return
	}
	item, err := mc.Store.GetMenuItem(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem removes an item permanently. Idempotent.
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id := c.Param("menu_id")
	if err := mc.Store.DeleteMenuItem(id); err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"menu_id": id})
}
