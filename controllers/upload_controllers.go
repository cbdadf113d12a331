package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/viejosabroso/restaurant-orders/storage"
	"github.com/viejosabroso/restaurant-orders/utils"
)

type UploadController struct {
	Images *storage.ImageStore
}

func NewUploadController(images *storage.ImageStore) *UploadController {
	return &UploadController{Images: images}
}

// UploadImage stores one image under an optional folder prefix. Type and
// size are checked before anything touches disk.
func (uc *UploadController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("an image file is required"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("error reading uploaded file"))
		return
	}
	defer f.Close()

	folder := c.PostForm("folder")
	result, err := uc.Images.Save(fileHeader.Header.Get("Content-Type"), fileHeader.Size, f, folder)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Image uploaded", result)
}

// DeleteImage removes a stored image. Best effort; a missing file succeeds.
// Endpoint: DELETE /admin/uploads?file=<fileName>
func (uc *UploadController) DeleteImage(c *gin.Context) {
	fileName := c.Query("file")
	if fileName == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("query parameter 'file' is required"))
		return
	}
	uc.Images.Delete(fileName)
	utils.RespondJSON(c, http.StatusOK, "Image deleted", gin.H{"fileName": fileName})
}
