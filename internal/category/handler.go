package category

import (
	"github.com/avtanos/provider-map/internal/database"
	"github.com/avtanos/provider-map/internal/models"
	"github.com/avtanos/provider-map/internal/response"
	"github.com/gofiber/fiber/v2"
)

// ListCategoriesHandler is the public category list used by the map
// filter bar.
func ListCategoriesHandler(c *fiber.Ctx) error {
	categories := []models.Category{}
	if err := database.DB.Find(&categories).Error; err != nil {
		return response.InternalError(c, "Failed to fetch categories")
	}

	return response.Success(c, fiber.Map{"categories": categories}, "Categories retrieved successfully")
}

// AdminListCategoriesHandler is the same list behind the admin panel.
func AdminListCategoriesHandler(c *fiber.Ctx) error {
	categories := []models.Category{}
	if err := database.DB.Find(&categories).Error; err != nil {
		return response.InternalError(c, "Failed to fetch categories")
	}

	return response.Success(c, categories, "Categories retrieved successfully")
}

func CreateCategoryHandler(c *fiber.Ctx) error {
	var body struct {
		Value string `json:"value" form:"value"`
		Label string `json:"label" form:"label"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Value == "" || body.Label == "" {
		return response.ValidationError(c, map[string]string{
			"value": "value is required",
			"label": "label is required",
		})
	}

	var existing models.Category
	if err := database.DB.Where("value = ?", body.Value).First(&existing).Error; err == nil {
		return response.Conflict(c, "Category already exists")
	}

	cat := models.Category{Value: body.Value, Label: body.Label}
	if err := database.DB.Create(&cat).Error; err != nil {
		return response.InternalError(c, "Failed to create category")
	}

	return response.Created(c, cat, "Category created successfully")
}

// DeleteCategoryHandler removes a category by value. There is no
// foreign key between providers and categories, so the in-use guard
// lives here: deletion is refused while any provider references the
// value.
func DeleteCategoryHandler(c *fiber.Ctx) error {
	value := c.Params("value")

	var cat models.Category
	if err := database.DB.Where("value = ?", value).First(&cat).Error; err != nil {
		return response.NotFound(c, "Category")
	}

	var count int64
	if err := database.DB.Model(&models.ServiceProvider{}).Where("category = ?", value).Count(&count).Error; err != nil {
		return response.InternalError(c, "Failed to check category usage")
	}
	if count > 0 {
		return response.Conflict(c, "Category is still in use by providers")
	}

	if err := database.DB.Delete(&cat).Error; err != nil {
		return response.InternalError(c, "Failed to delete category")
	}

	return response.NoContent(c)
}
