package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lakehouse/utils"
)

func todayRouter(clock utils.Clock) (*gin.Engine, *time.Time) {
	gin.SetMode(gin.TestMode)
	var captured time.Time
	r := gin.New()
	r.Use(TodayMiddleware(clock))
	r.GET("/", func(c *gin.Context) {
		captured = Today(c)
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func TestTodayMiddleware_UsesClock(t *testing.T) {
	fixed := time.Date(2025, time.July, 6, 0, 0, 0, 0, time.UTC)
	router, captured := todayRouter(utils.FixedClock{Date: fixed})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, fixed, *captured)
}

func TestTodayMiddleware_Override(t *testing.T) {
	fixed := time.Date(2025, time.July, 6, 0, 0, 0, 0, time.UTC)
	router, captured := todayRouter(utils.FixedClock{Date: fixed})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Today-Override", "2025-01-15")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), *captured)
}

func TestTodayMiddleware_BadOverride(t *testing.T) {
	router, _ := todayRouter(utils.SystemClock{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Today-Override", "tomorrow")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
