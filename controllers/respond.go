package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/viejosabroso/restaurant-orders/storage"
	"github.com/viejosabroso/restaurant-orders/store"
	"github.com/viejosabroso/restaurant-orders/utils"
)

// respondStoreError maps the gateway error taxonomy to HTTP statuses.
func respondStoreError(c *gin.Context, err error) {
	var validation *store.ValidationError
	var transition *store.IllegalTransitionError
	switch {
	case errors.As(err, &validation):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.As(err, &transition):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, store.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, store.ErrStoreUnavailable):
		utils.RespondError(c, http.StatusServiceUnavailable, err)
	case errors.Is(err, storage.ErrUploadRejected):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
