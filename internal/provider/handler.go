package provider

import (
	"encoding/json"
	"strconv"

	"github.com/avtanos/provider-map/internal/auth"
	"github.com/avtanos/provider-map/internal/database"
	"github.com/avtanos/provider-map/internal/models"
	"github.com/avtanos/provider-map/internal/response"
	"github.com/avtanos/provider-map/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// ListProvidersHandler serves the public map/listing view. All three of
// lat, lng and radius must be present for the proximity filter to
// apply; radius=0 is a valid exact-coordinate query, so presence is
// decided by the query string, not by zero values.
func ListProvidersHandler(c *fiber.Ctx) error {
	category := c.Query("category")

	providers, err := ListProviders(category)
	if err != nil {
		return response.InternalError(c, "Failed to fetch providers")
	}

	latStr, lngStr, radiusStr := c.Query("lat"), c.Query("lng"), c.Query("radius")
	if latStr != "" && lngStr != "" && radiusStr != "" {
		lat, err1 := strconv.ParseFloat(latStr, 64)
		lng, err2 := strconv.ParseFloat(lngStr, 64)
		radius, err3 := strconv.ParseFloat(radiusStr, 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return response.BadRequest(c, "Invalid lat/lng/radius", nil)
		}
		providers = FilterByRadius(providers, lat, lng, radius)
	}

	return response.Success(c, providers, "Providers retrieved successfully")
}

func GetProviderHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.NotFound(c, "Provider")
	}

	p, err := GetProvider(uint(id))
	if err != nil {
		return response.NotFound(c, "Provider")
	}

	return response.Success(c, p, "Provider retrieved successfully")
}

// CreateProviderHandler creates a listing directly, without an owning
// user. The registration path is the one that links an owner.
func CreateProviderHandler(c *fiber.Ctx) error {
	var body struct {
		Name        string   `json:"name" form:"name"`
		Category    string   `json:"category" form:"category"`
		Description string   `json:"description" form:"description"`
		Latitude    *float64 `json:"latitude" form:"latitude"`
		Longitude   *float64 `json:"longitude" form:"longitude"`
		Phone       string   `json:"phone" form:"phone"`
		Email       string   `json:"email" form:"email"`
		Website     string   `json:"website" form:"website"`
		Address     string   `json:"address" form:"address"`
		Photo       string   `json:"photo" form:"photo"`
		Tags        []string `json:"tags" form:"tags"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Name == "" || body.Category == "" || body.Latitude == nil || body.Longitude == nil {
		return response.ValidationError(c, map[string]string{
			"name":      "name is required",
			"category":  "category is required",
			"latitude":  "latitude is required",
			"longitude": "longitude is required",
		})
	}

	p := models.ServiceProvider{
		Name:        body.Name,
		Category:    body.Category,
		Description: policy.Sanitize(body.Description),
		Latitude:    *body.Latitude,
		Longitude:   *body.Longitude,
		Phone:       body.Phone,
		Email:       body.Email,
		Website:     body.Website,
		Address:     body.Address,
		Photo:       body.Photo,
		IsActive:    true,
	}

	if len(body.Tags) > 0 {
		tagsJSON, _ := json.Marshal(body.Tags)
		p.Tags = tagsJSON
	}

	if err := database.DB.Create(&p).Error; err != nil {
		return response.InternalError(c, "Failed to create provider")
	}

	return response.Created(c, p, "Provider created successfully")
}

// UpdateProviderHandler applies a partial update. Only the owner may
// update a listing: the check is ownership via provider_id, so an admin
// without the matching link is forbidden too.
func UpdateProviderHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.NotFound(c, "Provider")
	}

	u := auth.CurrentUser(c)
	if u == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	var p models.ServiceProvider
	if err := database.DB.First(&p, id).Error; err != nil {
		return response.NotFound(c, "Provider")
	}

	if !u.OwnsProvider(p.ID) {
		return response.Forbidden(c, "Not enough permissions")
	}

	var body struct {
		Name        *string  `json:"name" form:"name"`
		Category    *string  `json:"category" form:"category"`
		Description *string  `json:"description" form:"description"`
		Latitude    *float64 `json:"latitude" form:"latitude"`
		Longitude   *float64 `json:"longitude" form:"longitude"`
		Phone       *string  `json:"phone" form:"phone"`
		Email       *string  `json:"email" form:"email"`
		Website     *string  `json:"website" form:"website"`
		Address     *string  `json:"address" form:"address"`
		Tags        []string `json:"tags" form:"tags"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Name != nil {
		p.Name = *body.Name
	}
	if body.Category != nil {
		p.Category = *body.Category
	}
	if body.Description != nil {
		p.Description = policy.Sanitize(*body.Description)
	}
	if body.Latitude != nil {
		p.Latitude = *body.Latitude
	}
	if body.Longitude != nil {
		p.Longitude = *body.Longitude
	}
	if body.Phone != nil {
		p.Phone = *body.Phone
	}
	if body.Email != nil {
		p.Email = *body.Email
	}
	if body.Website != nil {
		p.Website = *body.Website
	}
	if body.Address != nil {
		p.Address = *body.Address
	}
	if len(body.Tags) > 0 {
		tagsJSON, _ := json.Marshal(body.Tags)
		p.Tags = tagsJSON
	}

	if photo, err := c.FormFile("photo"); err == nil && photo != nil {
		url, err := utils.UploadFile(photo)
		if err != nil {
			return response.BadRequest(c, err.Error(), nil)
		}
		// Old asset cleanup is best-effort; an orphaned file must not
		// block the update.
		if p.Photo != "" {
			_ = utils.DeleteFile(p.Photo)
		}
		p.Photo = url
	}

	if err := database.DB.Save(&p).Error; err != nil {
		return response.InternalError(c, "Failed to update provider")
	}

	return response.Success(c, p, "Provider updated successfully")
}

// DeleteProviderHandler soft-deletes by flipping the active flag. The
// row stays fetchable by id and can be reactivated by an admin.
func DeleteProviderHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.NotFound(c, "Provider")
	}

	u := auth.CurrentUser(c)
	if u == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	var p models.ServiceProvider
	if err := database.DB.First(&p, id).Error; err != nil {
		return response.NotFound(c, "Provider")
	}

	if !u.OwnsProvider(p.ID) && !u.IsAdmin() {
		return response.Forbidden(c, "Not enough permissions")
	}

	p.IsActive = false
	if err := database.DB.Save(&p).Error; err != nil {
		return response.InternalError(c, "Failed to delete provider")
	}

	return response.Success(c, nil, "Provider deleted successfully")
}

// AdminDeleteProviderHandler removes the row entirely, independent of
// ownership.
func AdminDeleteProviderHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.NotFound(c, "Provider")
	}

	var p models.ServiceProvider
	if err := database.DB.First(&p, id).Error; err != nil {
		return response.NotFound(c, "Provider")
	}

	if p.Photo != "" {
		_ = utils.DeleteFile(p.Photo)
	}

	if err := database.DB.Delete(&p).Error; err != nil {
		return response.InternalError(c, "Failed to delete provider")
	}

	return response.NoContent(c)
}

// ToggleActiveHandler flips the active flag. Calling it twice restores
// the original state; it is a toggle, not a setter.
func ToggleActiveHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.NotFound(c, "Provider")
	}

	var p models.ServiceProvider
	if err := database.DB.First(&p, id).Error; err != nil {
		return response.NotFound(c, "Provider")
	}

	p.IsActive = !p.IsActive
	if err := database.DB.Save(&p).Error; err != nil {
		return response.InternalError(c, "Failed to update provider")
	}

	return response.Success(c, p, "Provider status updated")
}
