package admin_test

import (
	"fmt"
	"testing"

	"github.com/avtanos/provider-map/internal/database"
	"github.com/avtanos/provider-map/internal/models"
	"github.com/avtanos/provider-map/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestListUsersHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)

	root := testutils.CreateTestUser(t, database.DB, "root", "root@x.com", "secret123", models.RoleSuperAdmin)
	superToken := testutils.GetAuthToken(t, root.Username, root.Role)

	testutils.CreateTestUser(t, database.DB, "admin", "admin@x.com", "secret123", models.RoleAdmin)
	adminToken := testutils.GetAuthToken(t, "admin", models.RoleAdmin)

	for i := 0; i < 3; i++ {
		testutils.CreateTestUser(t, database.DB,
			fmt.Sprintf("user%d", i), fmt.Sprintf("user%d@x.com", i), "secret123", models.RoleUser)
	}

	t.Run("Error - Admin is not enough for user management", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/api/admin/users/", nil, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)
	})

	t.Run("Success - Super-admin lists with pagination", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/api/admin/users/?skip=0&limit=2", nil, superToken)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		assert.Len(t, result.Data.([]interface{}), 2)
		assert.NotNil(t, result.Meta)
		assert.Equal(t, int64(5), result.Meta.Total)
	})

	t.Run("Success - Skip walks the pages", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/api/admin/users/?skip=4&limit=2", nil, superToken)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		assert.Len(t, result.Data.([]interface{}), 1)
	})
}

func TestGetUserHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)

	testutils.CreateTestUser(t, database.DB, "root", "root@x.com", "secret123", models.RoleSuperAdmin)
	superToken := testutils.GetAuthToken(t, "root", models.RoleSuperAdmin)

	u := testutils.CreateTestUser(t, database.DB, "bob", "bob@x.com", "secret123", models.RoleUser)

	t.Run("Success - Fetch by id", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", fmt.Sprintf("/api/admin/users/%d", u.ID), nil, superToken)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		data := result.Data.(map[string]interface{})
		assert.Equal(t, "bob", data["username"])
	})

	t.Run("Error - Unknown id", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/api/admin/users/99999", nil, superToken)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
	})
}

func TestUpdateUserHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)

	testutils.CreateTestUser(t, database.DB, "root", "root@x.com", "secret123", models.RoleSuperAdmin)
	superToken := testutils.GetAuthToken(t, "root", models.RoleSuperAdmin)

	u := testutils.CreateTestUser(t, database.DB, "bob", "bob@x.com", "secret123", models.RoleUser)
	testutils.CreateTestUser(t, database.DB, "carol", "carol@x.com", "secret123", models.RoleUser)

	p := testutils.CreateTestProvider(t, database.DB, "Bob Plumbing", "plumber", 42.87, 74.59)

	t.Run("Success - Promote and link provider", func(t *testing.T) {
		body := map[string]interface{}{
			"role":        models.RoleAdmin,
			"provider_id": p.ID,
		}

		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/api/admin/users/%d", u.ID), body, superToken)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var updated models.User
		assert.NoError(t, database.DB.First(&updated, u.ID).Error)
		assert.Equal(t, models.RoleAdmin, updated.Role)
		assert.NotNil(t, updated.ProviderID)
		assert.Equal(t, p.ID, *updated.ProviderID)
	})

	t.Run("Success - Deactivate account", func(t *testing.T) {
		body := map[string]interface{}{"is_active": false}

		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/api/admin/users/%d", u.ID), body, superToken)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var updated models.User
		assert.NoError(t, database.DB.First(&updated, u.ID).Error)
		assert.False(t, updated.IsActive)
	})

	t.Run("Error - Email already taken", func(t *testing.T) {
		body := map[string]interface{}{"email": "carol@x.com"}

		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/api/admin/users/%d", u.ID), body, superToken)
		assert.NoError(t, err)
		assert.Equal(t, 409, resp.Code)

		testutils.AssertError(t, resp, "CONFLICT")
	})

	t.Run("Error - Invalid role value", func(t *testing.T) {
		body := map[string]interface{}{"role": "emperor"}

		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/api/admin/users/%d", u.ID), body, superToken)
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.Code)
	})

	t.Run("Error - Unknown provider link", func(t *testing.T) {
		body := map[string]interface{}{"provider_id": 99999}

		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/api/admin/users/%d", u.ID), body, superToken)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
	})
}

func TestDeleteUserHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)

	root := testutils.CreateTestUser(t, database.DB, "root", "root@x.com", "secret123", models.RoleSuperAdmin)
	superToken := testutils.GetAuthToken(t, "root", models.RoleSuperAdmin)

	u := testutils.CreateTestUser(t, database.DB, "bob", "bob@x.com", "secret123", models.RoleUser)

	t.Run("Error - Super-admin cannot delete own account", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "DELETE", fmt.Sprintf("/api/admin/users/%d", root.ID), nil, superToken)
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.Code)

		testutils.AssertError(t, resp, "BAD_REQUEST")

		// Account must remain present afterward
		var stillThere models.User
		assert.NoError(t, database.DB.First(&stillThere, root.ID).Error)
	})

	t.Run("Success - Delete another user", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "DELETE", fmt.Sprintf("/api/admin/users/%d", u.ID), nil, superToken)
		assert.NoError(t, err)
		assert.Equal(t, 204, resp.Code)

		var gone models.User
		assert.Error(t, database.DB.First(&gone, u.ID).Error)
	})
}

func TestStatsHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)

	testutils.CreateTestUser(t, database.DB, "admin", "admin@x.com", "secret123", models.RoleAdmin)
	adminToken := testutils.GetAuthToken(t, "admin", models.RoleAdmin)

	testutils.CreateTestProvider(t, database.DB, "Plumber A", "plumber", 42.87, 74.59)
	testutils.CreateTestProvider(t, database.DB, "Cargo B", "cargo", 40.51, 72.80)
	inactive := testutils.CreateTestProvider(t, database.DB, "Gone C", "plumber", 42.87, 74.59)
	inactive.IsActive = false
	assert.NoError(t, database.DB.Save(inactive).Error)

	resp, err := testutils.MakeRequest(app, "GET", "/api/admin/stats", nil, adminToken)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.Code)

	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)
	data := result.Data.(map[string]interface{})

	assert.Equal(t, float64(3), data["total_providers"])
	assert.Equal(t, float64(2), data["active_providers"])
	assert.Equal(t, float64(1), data["total_users"])
	assert.Equal(t, float64(0), data["total_messages"])
	assert.Len(t, data["providers_by_category"].([]interface{}), 2)
}
