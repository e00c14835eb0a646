package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"barberhub-backend/models"
	"barberhub-backend/store"
	"barberhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	ShopName    string `json:"shopName" binding:"required"`
	ShopAddress string `json:"shopAddress" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates the owner account and their shop with generated branding
// and a starter service list. Shop and user are two separate writes: if the
// user write fails the shop is not rolled back, only reported.
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if _, err := Users.GetUserByEmail(input.Email); err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Storage error")
		return
	}

	shop, err := Shops.Create(store.ShopInput{
		Name:        input.ShopName,
		Owner:       input.Name,
		Email:       input.Email,
		Address:     input.ShopAddress,
		Description: fmt.Sprintf("Welcome to %s! We provide professional barber services with attention to detail and customer satisfaction.", input.ShopName),
		ColorScheme: generatedColorScheme(input.ShopName),
		Hours:       defaultHours(),
		SocialMedia: models.SocialLinks{"facebook": "", "instagram": "", "twitter": ""},
		Services:    defaultServices(),
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create shop")
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}
	user := models.User{
		Email:    input.Email,
		Password: hashed,
		Name:     input.Name,
		Role:     "owner",
		ShopID:   shop.ID,
	}
	if err := Users.CreateUser(&user); err != nil {
		log.Printf("inconsistency: shop %s created but owner account failed: %v", shop.ID, err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), shop.ID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	setSessionCookie(c, token)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
		"shop": shop,
	})
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	user, err := Users.GetUserByEmail(strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Storage error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.ShopID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	if err := Users.TouchLastLogin(user.ID); err != nil {
		log.Printf("Failed to update last login for %s: %v", user.ID, err)
	}
	setSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":     user.ID,
			"email":  user.Email,
			"name":   user.Name,
			"shopId": user.ShopID,
		},
	})
}

// Logout clears the session cookie. The token itself simply expires.
func Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func Me(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	user, err := Users.GetUserByID(userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	response := gin.H{
		"id":     user.ID,
		"email":  user.Email,
		"name":   user.Name,
		"role":   user.Role,
		"shopId": user.ShopID,
	}
	if shop, err := Shops.GetByID(user.ShopID); err == nil {
		response["shop"] = shop
	}
	c.JSON(http.StatusOK, gin.H{"user": response})
}

func setSessionCookie(c *gin.Context, token string) {
	maxAge := utils.TokenExpiryHours() * 3600
	c.SetCookie("token", token, maxAge, "/", "", true, true)
}

// Starter branding and services for freshly registered shops.

var shopPalette = []models.ColorScheme{
	{Primary: "#d4af37", Secondary: "#f4d03f", Background: "#1a1a1a", Text: "#333333"},
	{Primary: "#007cff", Secondary: "#4da6ff", Background: "#f8f9fa", Text: "#333333"},
	{Primary: "#8b4513", Secondary: "#a0522d", Background: "#2c1810", Text: "#f5f5f5"},
	{Primary: "#e74c3c", Secondary: "#ec7063", Background: "#1a1a1a", Text: "#f5f5f5"},
	{Primary: "#27ae60", Secondary: "#58d68d", Background: "#f8f9fa", Text: "#333333"},
	{Primary: "#9b59b6", Secondary: "#bb8fce", Background: "#1a1a1a", Text: "#f5f5f5"},
}

func generatedColorScheme(shopName string) *models.ColorScheme {
	scheme := shopPalette[len(shopName)%len(shopPalette)]
	return &scheme
}

func defaultHours() models.Hours {
	return models.Hours{
		"monday":    "9:00 AM - 7:00 PM",
		"tuesday":   "9:00 AM - 7:00 PM",
		"wednesday": "9:00 AM - 7:00 PM",
		"thursday":  "9:00 AM - 7:00 PM",
		"friday":    "9:00 AM - 8:00 PM",
		"saturday":  "8:00 AM - 6:00 PM",
		"sunday":    "10:00 AM - 5:00 PM",
	}
}

func defaultServices() []store.ServiceInput {
	return []store.ServiceInput{
		{Name: "Classic Haircut", Price: 30, Duration: 45, Description: "Traditional barber haircut with precision styling"},
		{Name: "Beard Trim & Style", Price: 20, Duration: 30, Description: "Professional beard trimming and shaping"},
		{Name: "Hot Towel Shave", Price: 35, Duration: 40, Description: "Traditional hot towel shave with premium products"},
	}
}
