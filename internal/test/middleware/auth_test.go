package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"photostudio-backend/internal/config"
	"photostudio-backend/internal/middleware"
	"photostudio-backend/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret-key-for-jwt-signing-must-be-long-enough",
		AccessTokenMinutes: 15,
	}
}

func testUser(role string) *models.User {
	return &models.User{
		ID:   uuid.New(),
		Role: role,
	}
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AuthMiddleware(testConfig()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AuthMiddleware(testConfig()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	user := testUser(models.RoleAdmin)

	tokenString, err := middleware.IssueToken(cfg, user)
	assert.NoError(t, err)

	router := gin.New()
	router.Use(middleware.AuthMiddleware(cfg))
	router.GET("/test", func(c *gin.Context) {
		userID, exists := c.Get(middleware.UserIDKey)
		assert.True(t, exists)
		assert.Equal(t, user.ID.String(), userID)
		assert.Equal(t, models.RoleAdmin, c.GetString(middleware.RoleKey))
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)

	signing := testConfig()
	tokenString, err := middleware.IssueToken(signing, testUser(models.RoleClient))
	assert.NoError(t, err)

	verifying := testConfig()
	verifying.JWTSecret = "a-completely-different-secret-key-of-proper-length"

	router := gin.New()
	router.Use(middleware.AuthMiddleware(verifying))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_Mismatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	tokenString, err := middleware.IssueToken(cfg, testUser(models.RoleClient))
	assert.NoError(t, err)

	router := gin.New()
	router.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleAdmin))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_Match(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	tokenString, err := middleware.IssueToken(cfg, testUser(models.RoleAdmin))
	assert.NoError(t, err)

	router := gin.New()
	router.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleAdmin))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
