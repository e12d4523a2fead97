package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"backend/config"
	"backend/controllers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := config.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	config.DB = db
	controllers.Init(db)
	return SetupRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerBody(username string) map[string]any {
	return map[string]any{
		"username":       username,
		"age":            30,
		"gender":         "Male",
		"height":         175,
		"weight":         80,
		"activity_level": "Moderate",
		"health_goals":   []string{"weight_loss"},
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterAndDuplicateUsername(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/users", registerBody("alice"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/users", registerBody("alice"))
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "username already taken", resp["error"])
}

func TestRegisterValidationFailure(t *testing.T) {
	r := setupRouter(t)

	body := registerBody("bob")
	body["gender"] = "unknown"
	w := doJSON(t, r, http.MethodPost, "/users", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserByIDAndUsername(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/users", registerBody("carol"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID uint `json:"ID"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/users/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/users/carol", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/users/nobody", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFoodLogRoundTripOverHTTP(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/users", registerBody("dave"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID uint `json:"ID"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	log := map[string]any{
		"date":      "2026-03-01T08:00:00Z",
		"meal_type": "Lunch",
		"food_item": "Lentils",
		"quantity":  200,
		"calories":  232,
	}
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/users/%d/food-logs", created.ID), log)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/users/%d/food-logs?days=7", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Lentils")
}

func TestAnalyticsForUnknownUser(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/users/999/analytics/nutrition", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/users/abc/progress", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRebuildClustersWithNoUsers(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/clusters/rebuild", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"clusters":0`)
}
