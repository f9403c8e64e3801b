package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"agrimanager-backend/internal/api/handlers"
	"agrimanager-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	handler := handlers.NewHealthHandler(db)

	httpSuite := testutils.SetupHTTPTest(nil)
	httpSuite.Router.GET("/health", handler.Health)
	httpSuite.Router.GET("/health/ready", handler.Ready)
	httpSuite.Router.GET("/health/live", handler.Live)

	t.Run("healthy database", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var body handlers.HealthResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "healthy", body.Services["database"])
	})

	t.Run("ready", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"ready":true`)
	})

	t.Run("closed database", func(t *testing.T) {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"status":"unhealthy"`)

		recorder = httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)
		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

		recorder = httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
