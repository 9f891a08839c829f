package upload_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avtanos/provider-map/internal/testutils"
	"github.com/avtanos/provider-map/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func uploadFile(t *testing.T, app *fiber.App, filename string, content []byte) (int, testutils.StandardResponse) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	assert.NoError(t, err)
	part.Write(content)
	writer.Close()

	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	rec := httptest.NewRecorder()
	rec.Code = resp.StatusCode
	io.Copy(rec.Body, resp.Body)
	resp.Body.Close()

	var result testutils.StandardResponse
	testutils.ParseResponse(t, rec, &result)
	return rec.Code, result
}

func TestUploadHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)

	t.Run("Success - Image upload returns a relative URL", func(t *testing.T) {
		code, result := uploadFile(t, app, "photo.jpg", []byte("fake image bytes"))
		assert.Equal(t, 200, code)
		assert.True(t, result.Success)

		data := result.Data.(map[string]interface{})
		url := data["url"].(string)
		assert.True(t, strings.HasPrefix(url, "/uploads/"))
		assert.True(t, strings.HasSuffix(url, ".jpg"))
	})

	t.Run("Error - Extension outside the allow-list", func(t *testing.T) {
		code, result := uploadFile(t, app, "notes.txt", []byte("plain text"))
		assert.Equal(t, 400, code)
		assert.False(t, result.Success)
	})

	t.Run("Error - Payload over the size cap", func(t *testing.T) {
		big := make([]byte, utils.MaxUploadSize+1)
		code, result := uploadFile(t, app, "huge.png", big)
		assert.Equal(t, 400, code)
		assert.False(t, result.Success)
	})

	t.Run("Error - Missing file part", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "POST", "/api/upload", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.Code)
	})
}
