package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/viejosabroso/restaurant-orders/models"
	"github.com/viejosabroso/restaurant-orders/store"
	"github.com/viejosabroso/restaurant-orders/utils"
)

type SettingsController struct {
	Store *store.Store
}

func NewSettingsController(s *store.Store) *SettingsController {
	return &SettingsController{Store: s}
}

// GetSettings returns the branding document, falling back to the compiled-in
// defaults until an admin has saved one.
func (sc *SettingsController) GetSettings(c *gin.Context) {
	settings, found, err := sc.Store.GetSettings()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if !found {
		settings = models.DefaultSettings()
	}
	utils.RespondJSON(c, http.StatusOK, "App settings", settings)
}

// UpdateSettings merge-writes a partial branding update.
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var patch store.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := sc.Store.UpdateSettings(patch); err != nil {
		respondStoreError(c, err)
		return
	}
	settings, _, err := sc.Store.GetSettings()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Settings updated", settings)
}
