package auth

import (
	"strings"

	"github.com/avtanos/provider-map/internal/database"
	"github.com/avtanos/provider-map/internal/models"
	"github.com/avtanos/provider-map/internal/response"
	"github.com/avtanos/provider-map/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// JWTProtected verifies the bearer token and resolves the current user.
// The loaded user is stored in c.Locals("user") for downstream handlers.
func JWTProtected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Missing authorization token")
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return response.Unauthorized(c, "Invalid token format")
		}

		username, err := utils.ParseJWT(tokenParts[1])
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		// The subject may have been deleted or deactivated after the
		// token was issued; a stateless token is only as good as the
		// account behind it.
		var u models.User
		if err := database.DB.Where("username = ?", username).First(&u).Error; err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}
		if !u.IsActive {
			return response.Unauthorized(c, "Account is deactivated")
		}

		c.Locals("user", &u)
		return c.Next()
	}
}

// RoleProtected allows the request through only when the resolved
// user's role is in the allowed set. Must run after JWTProtected.
func RoleProtected(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, ok := c.Locals("user").(*models.User)
		if !ok {
			return response.Unauthorized(c, "User not found")
		}

		for _, role := range allowedRoles {
			if u.Role == role {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// CurrentUser returns the user resolved by JWTProtected.
func CurrentUser(c *fiber.Ctx) *models.User {
	u, _ := c.Locals("user").(*models.User)
	return u
}
