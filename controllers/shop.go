// controllers/shop.go
package controllers

import (
	"log"
	"net/http"

	"barberhub-backend/models"
	"barberhub-backend/store"
	"barberhub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UpdateShopInput defines the updatable shop profile fields. Absent fields
// are left untouched.
type UpdateShopInput struct {
	Name        *string             `json:"name"`
	Owner       *string             `json:"owner"`
	Email       *string             `json:"email"`
	Phone       *string             `json:"phone"`
	Address     *string             `json:"address"`
	Description *string             `json:"description"`
	Logo        *string             `json:"logo"`
	ColorScheme *models.ColorScheme `json:"colorScheme"`
	Hours       *models.Hours       `json:"hours"`
	SocialMedia *models.SocialLinks `json:"socialMedia"`
}

// GetShops lists all shops, optionally narrowed by a case-insensitive
// substring search over name, address and description. The listing never
// fails: on a backend error it logs and returns an empty list.
func GetShops(c *gin.Context) {
	query := c.Query("search")

	shops, err := Shops.Search(query)
	if err != nil {
		log.Printf("Failed to list shops: %v", err)
		c.JSON(http.StatusOK, []models.Shop{})
		return
	}
	if shops == nil {
		shops = []models.Shop{}
	}
	c.JSON(http.StatusOK, shops)
}

// GetShop retrieves a single shop by ID for the public storefront.
func GetShop(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid shop ID format")
		return
	}

	shop, err := Shops.GetByID(shopID)
	if err != nil {
		respondStoreError(c, err, "Shop not found")
		return
	}
	c.JSON(http.StatusOK, shop)
}

// UpdateShop updates the session's shop profile.
func UpdateShop(c *gin.Context) {
	shopID, ok := sessionShopID(c)
	if !ok {
		return
	}

	var input UpdateShopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Email != nil && !utils.ValidateEmail(*input.Email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid email address")
		return
	}
	if input.Phone != nil && *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	shop, err := Shops.Update(shopID, store.ShopPatch{
		Name:        input.Name,
		Owner:       input.Owner,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		Description: input.Description,
		Logo:        input.Logo,
		ColorScheme: input.ColorScheme,
		Hours:       input.Hours,
		SocialMedia: input.SocialMedia,
	})
	if err != nil {
		respondStoreError(c, err, "Shop not found")
		return
	}
	c.JSON(http.StatusOK, shop)
}

// DeleteShop removes the session's shop. Deleting an already-removed shop is
// not an error.
func DeleteShop(c *gin.Context) {
	shopID, ok := sessionShopID(c)
	if !ok {
		return
	}

	if err := Shops.Delete(shopID); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete shop")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shop deleted successfully"})
}
