package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photostudio-backend/internal/handlers"
	"photostudio-backend/internal/models"
)

type fakeStats struct {
	stats *models.DashboardStats
	err   error
}

func (f *fakeStats) DashboardStats() (*models.DashboardStats, error) {
	return f.stats, f.err
}

func TestGetDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	source := &fakeStats{stats: &models.DashboardStats{
		ActiveProjects:    3,
		DeliveredProjects: 7,
		PendingInquiries:  2,
		PendingReviews:    1,
		TotalClients:      12,
		TotalRevenueCents: 450000,
	}}
	router := gin.New()
	router.GET("/admin/dashboard", handlers.NewDashboardHandler(source).GetDashboard)

	req, _ := http.NewRequest("GET", "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, *source.stats, got)
}

func TestGetDashboard_StoreError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	source := &fakeStats{err: errors.New("connection refused")}
	router := gin.New()
	router.GET("/admin/dashboard", handlers.NewDashboardHandler(source).GetDashboard)

	req, _ := http.NewRequest("GET", "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
