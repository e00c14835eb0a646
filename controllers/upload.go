package controllers

import (
	"fmt"
	"net/http"
	"time"

	"barberhub-backend/store"
	"barberhub-backend/utils"

	"github.com/gin-gonic/gin"
)

// UploadLogo pushes the uploaded image to Cloudinary and stores the returned
// public URL as the session shop's logo reference.
func UploadLogo(c *gin.Context) {
	shopID, ok := sessionShopID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Logo file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Failed to read logo file")
		return
	}
	defer file.Close()

	publicID := fmt.Sprintf("%s_%d", shopID, time.Now().Unix())
	url, err := utils.UploadImage(c.Request.Context(), file, publicID, "barberhub/logos")
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to upload logo")
		return
	}

	shop, err := Shops.Update(shopID, store.ShopPatch{Logo: &url})
	if err != nil {
		respondStoreError(c, err, "Shop not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"logo": url, "shop": shop})
}
