package upload

import (
	"github.com/avtanos/provider-map/internal/response"
	"github.com/avtanos/provider-map/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// UploadHandler stores a photo asset and returns its URL. Validation
// (image extension allow-list, 5 MiB cap) happens inside the storage
// layer so every upload path shares it.
func UploadHandler(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "File is required", nil)
	}

	url, err := utils.UploadFile(file)
	if err != nil {
		return response.BadRequest(c, err.Error(), nil)
	}

	return response.Success(c, fiber.Map{"url": url}, "File uploaded successfully")
}
