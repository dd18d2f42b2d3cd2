package middleware_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"photostudio-backend/internal/middleware"
)

func sanitizeRouter(t *testing.T, captured *map[string]interface{}) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.SanitizeInput())
	router.POST("/test", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		assert.NoError(t, json.Unmarshal(body, captured))
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestSanitizeInput_StripsMarkup(t *testing.T) {
	var captured map[string]interface{}
	router := sanitizeRouter(t, &captured)

	payload := `{"name":"<script>alert(1)</script>Jane","message":"hello <b>world</b>"}`
	req, _ := http.NewRequest("POST", "/test", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Jane", captured["name"])
	assert.Equal(t, "hello world", captured["message"])
}

func TestSanitizeInput_LeavesNonStringsAlone(t *testing.T) {
	var captured map[string]interface{}
	router := sanitizeRouter(t, &captured)

	payload := `{"rating":5,"approved":true}`
	req, _ := http.NewRequest("POST", "/test", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(5), captured["rating"])
	assert.Equal(t, true, captured["approved"])
}

func TestSanitizeInput_RejectsMalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.SanitizeInput())
	router.POST("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("POST", "/test", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSanitizeInput_IgnoresGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.SanitizeInput())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
