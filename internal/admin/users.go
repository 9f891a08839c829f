package admin

import (
	"github.com/avtanos/provider-map/internal/auth"
	"github.com/avtanos/provider-map/internal/database"
	"github.com/avtanos/provider-map/internal/models"
	"github.com/avtanos/provider-map/internal/response"
	"github.com/gofiber/fiber/v2"
)

func validRole(role string) bool {
	switch role {
	case models.RoleUser, models.RoleAdmin, models.RoleSuperAdmin:
		return true
	}
	return false
}

func ListUsersHandler(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 50)
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	var total int64
	if err := database.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		return response.InternalError(c, "Failed to fetch users")
	}

	users := []models.User{}
	if err := database.DB.Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		return response.InternalError(c, "Failed to fetch users")
	}

	meta := &response.Meta{Skip: skip, Limit: limit, Total: total}
	return response.SuccessWithMeta(c, users, meta, "Users retrieved successfully")
}

func GetUserHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.NotFound(c, "User")
	}

	var u models.User
	if err := database.DB.Preload("Provider").First(&u, id).Error; err != nil {
		return response.NotFound(c, "User")
	}

	return response.Success(c, u, "User retrieved successfully")
}

// UpdateUserHandler lets a super-admin change role, active flag, email
// and provider linkage. Only supplied fields change.
func UpdateUserHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.NotFound(c, "User")
	}

	var body struct {
		Username   *string `json:"username"`
		Email      *string `json:"email"`
		Role       *string `json:"role"`
		IsActive   *bool   `json:"is_active"`
		ProviderID *uint   `json:"provider_id"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	var u models.User
	if err := database.DB.First(&u, id).Error; err != nil {
		return response.NotFound(c, "User")
	}

	if body.Username != nil && *body.Username != u.Username {
		var existing models.User
		if err := database.DB.Where("username = ? AND id != ?", *body.Username, id).First(&existing).Error; err == nil {
			return response.Conflict(c, "Username already taken")
		}
		u.Username = *body.Username
	}

	if body.Email != nil && *body.Email != u.Email {
		var existing models.User
		if err := database.DB.Where("email = ? AND id != ?", *body.Email, id).First(&existing).Error; err == nil {
			return response.Conflict(c, "Email already taken")
		}
		u.Email = *body.Email
	}

	if body.Role != nil {
		if !validRole(*body.Role) {
			return response.BadRequest(c, "Invalid role", nil)
		}
		u.Role = *body.Role
	}

	if body.IsActive != nil {
		u.IsActive = *body.IsActive
	}

	if body.ProviderID != nil {
		var p models.ServiceProvider
		if err := database.DB.First(&p, *body.ProviderID).Error; err != nil {
			return response.NotFound(c, "Provider")
		}
		u.ProviderID = body.ProviderID
	}

	if err := database.DB.Save(&u).Error; err != nil {
		return response.InternalError(c, "Failed to update user")
	}

	return response.Success(c, u, "User updated successfully")
}

func DeleteUserHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.NotFound(c, "User")
	}

	var u models.User
	if err := database.DB.First(&u, id).Error; err != nil {
		return response.NotFound(c, "User")
	}

	current := auth.CurrentUser(c)
	if current != nil && current.ID == uint(id) {
		return response.BadRequest(c, "Cannot delete your own account", nil)
	}

	if err := database.DB.Delete(&u).Error; err != nil {
		return response.InternalError(c, "Failed to delete user")
	}

	return response.NoContent(c)
}
