package http_test

import (
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Konaisya/construction-company/internal/appcontext"
	"github.com/Konaisya/construction-company/internal/entity"
	"github.com/Konaisya/construction-company/internal/http"
	"github.com/Konaisya/construction-company/internal/service"
	"github.com/Konaisya/construction-company/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testSecret = []byte("test-secret")

func setupTestAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.City{},
		&entity.Category{},
		&entity.Unit{},
		&entity.Attribute{},
		&entity.User{},
		&entity.Project{},
		&entity.ProjectAttribute{},
		&entity.ProjectImage{},
		&entity.Order{},
	))

	ctx := &appcontext.Context{
		DB:        db,
		Logger:    zap.NewNop(),
		JWTSecret: testSecret,
		TokenTTL:  time.Hour,
	}
	return http.NewHTTPService(ctx).Engine(), db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role entity.Role) *entity.User {
	user := &entity.User{Name: "Test User", Email: email, Role: role, Password: "irrelevant"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProject(t *testing.T, db *gorm.DB, slug string) *entity.Project {
	city := &entity.City{Name: "Astana"}
	require.NoError(t, db.Create(city).Error)
	category := &entity.Category{Name: "Residential"}
	require.NoError(t, db.Create(category).Error)
	project := &entity.Project{Name: "Project " + slug, Slug: slug, IDCategory: category.ID, IDCity: city.ID}
	require.NoError(t, db.Create(project).Error)
	return project
}

func seedOrder(t *testing.T, db *gorm.DB, idUser, idProject uint) *entity.Order {
	order := &entity.Order{IDUser: idUser, IDProject: idProject, Status: entity.OrderPending, CreatedDate: "2024-01-01"}
	require.NoError(t, db.Create(order).Error)
	return order
}

func tokenFor(t *testing.T, user *entity.User) string {
	token, err := utils.GenerateJWT(testSecret, user, time.Hour)
	require.NoError(t, err)
	return token
}

func doRequest(engine *gin.Engine, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestListOrdersScopedToCaller(t *testing.T) {
	engine, db := setupTestAPI(t)

	alice := seedUser(t, db, "alice@example.com", entity.RoleUser)
	bob := seedUser(t, db, "bob@example.com", entity.RoleUser)
	project := seedProject(t, db, "tower")
	aliceOrder := seedOrder(t, db, alice.ID, project.ID)
	seedOrder(t, db, bob.ID, project.ID)

	// Asking for someone else's orders still returns only the caller's own.
	target := fmt.Sprintf("/api/orders/?id_user=%d", bob.ID)
	resp := doRequest(engine, nethttp.MethodGet, target, tokenFor(t, alice))
	require.Equal(t, nethttp.StatusOK, resp.Code)

	var views []service.OrderView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, aliceOrder.ID, views[0].ID)
	assert.Equal(t, alice.ID, views[0].IDUser)
}

func TestListOrdersAdminSeesAll(t *testing.T) {
	engine, db := setupTestAPI(t)

	admin := seedUser(t, db, "admin@example.com", entity.RoleAdmin)
	alice := seedUser(t, db, "alice@example.com", entity.RoleUser)
	project := seedProject(t, db, "tower")
	seedOrder(t, db, admin.ID, project.ID)
	seedOrder(t, db, alice.ID, project.ID)

	resp := doRequest(engine, nethttp.MethodGet, "/api/orders/", tokenFor(t, admin))
	require.Equal(t, nethttp.StatusOK, resp.Code)

	var views []service.OrderView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &views))
	assert.Len(t, views, 2)

	// Admin filters are honored as-is.
	target := fmt.Sprintf("/api/orders/?id_user=%d", alice.ID)
	resp = doRequest(engine, nethttp.MethodGet, target, tokenFor(t, admin))
	require.Equal(t, nethttp.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, alice.ID, views[0].IDUser)
}

func TestListOrdersEmptyIsNotFound(t *testing.T) {
	engine, db := setupTestAPI(t)
	alice := seedUser(t, db, "alice@example.com", entity.RoleUser)

	resp := doRequest(engine, nethttp.MethodGet, "/api/orders/", tokenFor(t, alice))
	assert.Equal(t, nethttp.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"status": "NOT_FOUND"}`, resp.Body.String())
}

func TestGetOrderForbiddenForNonOwner(t *testing.T) {
	engine, db := setupTestAPI(t)

	alice := seedUser(t, db, "alice@example.com", entity.RoleUser)
	bob := seedUser(t, db, "bob@example.com", entity.RoleUser)
	admin := seedUser(t, db, "admin@example.com", entity.RoleAdmin)
	project := seedProject(t, db, "tower")
	order := seedOrder(t, db, alice.ID, project.ID)

	target := fmt.Sprintf("/api/orders/%d", order.ID)

	resp := doRequest(engine, nethttp.MethodGet, target, tokenFor(t, bob))
	assert.Equal(t, nethttp.StatusForbidden, resp.Code)
	assert.JSONEq(t, `{"status": "FORBIDDEN"}`, resp.Body.String())

	resp = doRequest(engine, nethttp.MethodGet, target, tokenFor(t, alice))
	assert.Equal(t, nethttp.StatusOK, resp.Code)

	resp = doRequest(engine, nethttp.MethodGet, target, tokenFor(t, admin))
	assert.Equal(t, nethttp.StatusOK, resp.Code)
}

func TestOrdersRequireAuth(t *testing.T) {
	engine, _ := setupTestAPI(t)

	resp := doRequest(engine, nethttp.MethodGet, "/api/orders/", "")
	assert.Equal(t, nethttp.StatusUnauthorized, resp.Code)
}

func TestDeleteOrderForbiddenForNonOwner(t *testing.T) {
	engine, db := setupTestAPI(t)

	alice := seedUser(t, db, "alice@example.com", entity.RoleUser)
	bob := seedUser(t, db, "bob@example.com", entity.RoleUser)
	project := seedProject(t, db, "tower")
	order := seedOrder(t, db, alice.ID, project.ID)

	target := fmt.Sprintf("/api/orders/%d", order.ID)

	resp := doRequest(engine, nethttp.MethodDelete, target, tokenFor(t, bob))
	assert.Equal(t, nethttp.StatusForbidden, resp.Code)

	resp = doRequest(engine, nethttp.MethodDelete, target, tokenFor(t, alice))
	assert.Equal(t, nethttp.StatusOK, resp.Code)

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", order.ID).Count(&count).Error)
	assert.Zero(t, count)
}
