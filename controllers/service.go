// controllers/service.go
package controllers

import (
	"net/http"

	"barberhub-backend/store"
	"barberhub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"min=0"`
	Duration    int     `json:"duration" binding:"required,min=1"` // in minutes
	Description string  `json:"description"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	Description *string  `json:"description"`
}

// GetServices retrieves all services for the session's shop.
func GetServices(c *gin.Context) {
	shopID, ok := sessionShopID(c)
	if !ok {
		return
	}

	shop, err := Shops.GetByID(shopID)
	if err != nil {
		respondStoreError(c, err, "Shop not found")
		return
	}
	c.JSON(http.StatusOK, shop.Services)
}

// CreateService attaches a new service to the session's shop.
func CreateService(c *gin.Context) {
	shopID, ok := sessionShopID(c)
	if !ok {
		return
	}

	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := Shops.AddService(shopID, store.ServiceInput{
		Name:        input.Name,
		Price:       input.Price,
		Duration:    input.Duration,
		Description: input.Description,
	})
	if err != nil {
		respondStoreError(c, err, "Shop not found")
		return
	}
	c.JSON(http.StatusCreated, service)
}

// UpdateService updates an existing service. The store reports a missing
// (shop, service) pair softly, so the nil result must be checked here.
func UpdateService(c *gin.Context) {
	shopID, ok := sessionShopID(c)
	if !ok {
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Price != nil && *input.Price < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Price must not be negative")
		return
	}
	if input.Duration != nil && *input.Duration <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Duration must be positive")
		return
	}

	service, err := Shops.UpdateService(shopID, serviceID, store.ServicePatch{
		Name:        input.Name,
		Price:       input.Price,
		Duration:    input.Duration,
		Description: input.Description,
	})
	if err != nil {
		respondStoreError(c, err, "Service not found")
		return
	}
	if service == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service from the session's shop.
func DeleteService(c *gin.Context) {
	shopID, ok := sessionShopID(c)
	if !ok {
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	removed, err := Shops.DeleteService(shopID, serviceID)
	if err != nil {
		respondStoreError(c, err, "Service not found")
		return
	}
	if !removed {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
