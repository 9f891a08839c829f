package admin

import (
	"github.com/avtanos/provider-map/internal/database"
	"github.com/avtanos/provider-map/internal/models"
	"github.com/avtanos/provider-map/internal/response"
	"github.com/gofiber/fiber/v2"
)

type categoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// StatsHandler returns the aggregate counts behind the admin dashboard.
func StatsHandler(c *fiber.Ctx) error {
	var totalProviders, activeProviders, totalUsers, totalMessages int64

	if err := database.DB.Model(&models.ServiceProvider{}).Count(&totalProviders).Error; err != nil {
		return response.InternalError(c, "Failed to fetch stats")
	}
	if err := database.DB.Model(&models.ServiceProvider{}).Where("is_active = ?", true).Count(&activeProviders).Error; err != nil {
		return response.InternalError(c, "Failed to fetch stats")
	}
	if err := database.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return response.InternalError(c, "Failed to fetch stats")
	}
	if err := database.DB.Model(&models.Message{}).Count(&totalMessages).Error; err != nil {
		return response.InternalError(c, "Failed to fetch stats")
	}

	byCategory := []categoryCount{}
	err := database.DB.Model(&models.ServiceProvider{}).
		Select("category, count(*) as count").
		Group("category").
		Scan(&byCategory).Error
	if err != nil {
		return response.InternalError(c, "Failed to fetch stats")
	}

	return response.Success(c, fiber.Map{
		"total_providers":       totalProviders,
		"active_providers":      activeProviders,
		"total_users":           totalUsers,
		"total_messages":        totalMessages,
		"providers_by_category": byCategory,
	}, "Stats retrieved successfully")
}
