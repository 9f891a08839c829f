package category_test

import (
	"testing"

	"github.com/avtanos/provider-map/internal/database"
	"github.com/avtanos/provider-map/internal/models"
	"github.com/avtanos/provider-map/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestListCategoriesHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)

	resp, err := testutils.MakeRequest(app, "GET", "/api/categories", nil, "")
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.Code)

	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)

	data := result.Data.(map[string]interface{})
	categories := data["categories"].([]interface{})

	values := []string{}
	for _, raw := range categories {
		values = append(values, raw.(map[string]interface{})["value"].(string))
	}
	assert.ElementsMatch(t, []string{"cargo", "plumber", "tow_truck", "electrician", "other"}, values)
}

func TestCreateCategoryHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)

	testutils.CreateTestUser(t, database.DB, "admin", "admin@x.com", "secret123", models.RoleAdmin)
	adminToken := testutils.GetAuthToken(t, "admin", models.RoleAdmin)

	testutils.CreateTestUser(t, database.DB, "root", "root@x.com", "secret123", models.RoleSuperAdmin)
	superToken := testutils.GetAuthToken(t, "root", models.RoleSuperAdmin)

	t.Run("Error - Admin is not enough", func(t *testing.T) {
		body := map[string]interface{}{"value": "carpenter", "label": "Плотники"}

		resp, err := testutils.MakeRequest(app, "POST", "/api/admin/categories", body, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)
	})

	t.Run("Success - Super-admin creates category", func(t *testing.T) {
		body := map[string]interface{}{"value": "carpenter", "label": "Плотники"}

		resp, err := testutils.MakeRequest(app, "POST", "/api/admin/categories", body, superToken)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var cat models.Category
		assert.NoError(t, database.DB.Where("value = ?", "carpenter").First(&cat).Error)
		assert.Equal(t, "Плотники", cat.Label)
	})

	t.Run("Error - Duplicate value", func(t *testing.T) {
		body := map[string]interface{}{"value": "carpenter", "label": "Другая подпись"}

		resp, err := testutils.MakeRequest(app, "POST", "/api/admin/categories", body, superToken)
		assert.NoError(t, err)
		assert.Equal(t, 409, resp.Code)

		testutils.AssertError(t, resp, "CONFLICT")
	})

	t.Run("Error - Missing fields", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "POST", "/api/admin/categories", map[string]interface{}{"value": "x"}, superToken)
		assert.NoError(t, err)
		assert.Equal(t, 422, resp.Code)
	})
}

func TestDeleteCategoryHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)

	testutils.CreateTestUser(t, database.DB, "root", "root@x.com", "secret123", models.RoleSuperAdmin)
	superToken := testutils.GetAuthToken(t, "root", models.RoleSuperAdmin)

	p := testutils.CreateTestProvider(t, database.DB, "Bob Plumbing", "plumber", 42.87, 74.59)

	t.Run("Error - Category still referenced by a provider", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "DELETE", "/api/admin/categories/plumber", nil, superToken)
		assert.NoError(t, err)
		assert.Equal(t, 409, resp.Code)

		testutils.AssertError(t, resp, "CONFLICT")
	})

	t.Run("Success - Deletable once no provider references it", func(t *testing.T) {
		assert.NoError(t, database.DB.Delete(p).Error)

		resp, err := testutils.MakeRequest(app, "DELETE", "/api/admin/categories/plumber", nil, superToken)
		assert.NoError(t, err)
		assert.Equal(t, 204, resp.Code)

		var gone models.Category
		assert.Error(t, database.DB.Where("value = ?", "plumber").First(&gone).Error)
	})

	t.Run("Error - Unknown category", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "DELETE", "/api/admin/categories/nope", nil, superToken)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
	})
}

func TestAdminListCategoriesHandler_RoleGate(t *testing.T) {
	app := testutils.SetupTestApp(t)

	testutils.CreateTestUser(t, database.DB, "bob", "bob@x.com", "secret123", models.RoleUser)
	userToken := testutils.GetAuthToken(t, "bob", models.RoleUser)

	testutils.CreateTestUser(t, database.DB, "admin", "admin@x.com", "secret123", models.RoleAdmin)
	adminToken := testutils.GetAuthToken(t, "admin", models.RoleAdmin)

	resp, err := testutils.MakeRequest(app, "GET", "/api/admin/categories", nil, userToken)
	assert.NoError(t, err)
	assert.Equal(t, 403, resp.Code)

	resp, err = testutils.MakeRequest(app, "GET", "/api/admin/categories", nil, adminToken)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.Code)
}
