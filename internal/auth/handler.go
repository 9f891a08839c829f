package auth

import (
	"github.com/avtanos/provider-map/internal/database"
	"github.com/avtanos/provider-map/internal/models"
	"github.com/avtanos/provider-map/internal/response"
	"github.com/avtanos/provider-map/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

var policy = bluemonday.UGCPolicy()

// dummyHash keeps the bcrypt comparison in the login path even when the
// username does not exist, so both failure causes take the same time
// and produce the same response.
var dummyHash, _ = utils.HashPassword("dummy-password-for-timing")

// RegisterHandler creates a provider and its owning user in one
// transaction and returns an issued token. Accepts multipart form data
// with an optional photo part.
func RegisterHandler(c *fiber.Ctx) error {
	var body struct {
		Username    string   `json:"username" form:"username"`
		Email       string   `json:"email" form:"email"`
		Password    string   `json:"password" form:"password"`
		Name        string   `json:"name" form:"name"`
		Category    string   `json:"category" form:"category"`
		Description string   `json:"description" form:"description"`
		Latitude    *float64 `json:"latitude" form:"latitude"`
		Longitude   *float64 `json:"longitude" form:"longitude"`
		Phone       string   `json:"phone" form:"phone"`
		Address     string   `json:"address" form:"address"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Username == "" || body.Email == "" || body.Password == "" ||
		body.Name == "" || body.Category == "" ||
		body.Latitude == nil || body.Longitude == nil {
		return response.ValidationError(c, map[string]string{
			"username":  "username is required",
			"email":     "email is required",
			"password":  "password is required",
			"name":      "name is required",
			"category":  "category is required",
			"latitude":  "latitude is required",
			"longitude": "longitude is required",
		})
	}

	var existing models.User
	if err := database.DB.Where("username = ?", body.Username).First(&existing).Error; err == nil {
		return response.Conflict(c, "Username already registered")
	}
	if err := database.DB.Where("email = ?", body.Email).First(&existing).Error; err == nil {
		return response.Conflict(c, "Email already registered")
	}

	photoURL := ""
	if photo, err := c.FormFile("photo"); err == nil && photo != nil {
		url, err := utils.UploadFile(photo)
		if err != nil {
			return response.BadRequest(c, err.Error(), nil)
		}
		photoURL = url
	}

	hashedPassword, err := utils.HashPassword(body.Password)
	if err != nil {
		return response.InternalError(c, "Failed to hash password")
	}

	provider := models.ServiceProvider{
		Name:        body.Name,
		Category:    body.Category,
		Description: policy.Sanitize(body.Description),
		Latitude:    *body.Latitude,
		Longitude:   *body.Longitude,
		Phone:       body.Phone,
		Address:     body.Address,
		Photo:       photoURL,
		IsActive:    true,
	}

	u := models.User{
		Username:     body.Username,
		Email:        body.Email,
		PasswordHash: hashedPassword,
		Role:         models.RoleUser,
		IsActive:     true,
	}

	// Provider and user are created atomically: no orphan provider is
	// left behind when the user insert fails.
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&provider).Error; err != nil {
			return err
		}
		u.ProviderID = &provider.ID
		return tx.Create(&u).Error
	})
	if err != nil {
		return response.InternalError(c, "Failed to register")
	}

	accessToken, err := utils.GenerateJWT(u.Username, u.Role)
	if err != nil {
		return response.InternalError(c, "Failed to issue token")
	}

	return response.Created(c, fiber.Map{
		"access_token": accessToken,
		"token_type":   "bearer",
		"user_id":      u.ID,
		"provider_id":  u.ProviderID,
		"role":         u.Role,
	}, "Registration successful")
}

func LoginHandler(c *fiber.Ctx) error {
	var body struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Username == "" || body.Password == "" {
		return response.ValidationError(c, map[string]string{
			"username": "username is required",
			"password": "password is required",
		})
	}

	u, ok := Authenticate(body.Username, body.Password)
	if !ok {
		return response.Unauthorized(c, "Incorrect username or password")
	}

	accessToken, err := utils.GenerateJWT(u.Username, u.Role)
	if err != nil {
		return response.InternalError(c, "Failed to issue token")
	}

	return response.Success(c, fiber.Map{
		"access_token": accessToken,
		"token_type":   "bearer",
		"user_id":      u.ID,
		"provider_id":  u.ProviderID,
		"role":         u.Role,
	}, "Login successful")
}

func MeHandler(c *fiber.Ctx) error {
	u := CurrentUser(c)
	if u == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	return response.Success(c, u, "User retrieved successfully")
}

func MyProviderHandler(c *fiber.Ctx) error {
	u := CurrentUser(c)
	if u == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	if u.ProviderID == nil {
		return response.NotFound(c, "Provider")
	}

	var provider models.ServiceProvider
	if err := database.DB.First(&provider, *u.ProviderID).Error; err != nil {
		return response.NotFound(c, "Provider")
	}

	return response.Success(c, provider, "Provider retrieved successfully")
}
