package message

import (
	"github.com/avtanos/provider-map/internal/auth"
	"github.com/avtanos/provider-map/internal/database"
	"github.com/avtanos/provider-map/internal/models"
	"github.com/avtanos/provider-map/internal/response"
	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// CreateMessageHandler records a lead from an anonymous visitor. The
// only requirement is that the target provider exists.
func CreateMessageHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.NotFound(c, "Provider")
	}

	var p models.ServiceProvider
	if err := database.DB.First(&p, id).Error; err != nil {
		return response.NotFound(c, "Provider")
	}

	var body struct {
		ClientName  string `json:"client_name" form:"client_name"`
		ClientPhone string `json:"client_phone" form:"client_phone"`
		ClientEmail string `json:"client_email" form:"client_email"`
		MessageText string `json:"message_text" form:"message_text"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.ClientName == "" || body.ClientPhone == "" || body.MessageText == "" {
		return response.ValidationError(c, map[string]string{
			"client_name":  "client_name is required",
			"client_phone": "client_phone is required",
			"message_text": "message_text is required",
		})
	}

	m := models.Message{
		ProviderID:  p.ID,
		ClientName:  body.ClientName,
		ClientPhone: body.ClientPhone,
		ClientEmail: body.ClientEmail,
		MessageText: policy.Sanitize(body.MessageText),
	}

	if err := database.DB.Create(&m).Error; err != nil {
		return response.InternalError(c, "Failed to create message")
	}

	return response.Created(c, m, "Message sent successfully")
}

// ListMessagesHandler returns the leads of one provider. Leads carry
// visitor contact details, so only the provider's owner or an admin may
// read them.
func ListMessagesHandler(c *fiber.Ctx) error {
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

	messages := []models.Message{}
	if err := database.DB.Where("provider_id = ?", p.ID).Find(&messages).Error; err != nil {
		return response.InternalError(c, "Failed to fetch messages")
	}

	return response.Success(c, messages, "Messages retrieved successfully")
}
