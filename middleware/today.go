package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lakehouse/config"
	"lakehouse/models"
	"lakehouse/utils"
)

const contextToday = "today"

// TodayMiddleware resolves "today" for the request: the clock's date, or the
// X-Today-Override header outside production so the timeline can be
// previewed at arbitrary dates.
func TodayMiddleware(clock utils.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		today := clock.Today()

		if override := c.GetHeader("X-Today-Override"); override != "" && !config.IsProduction() {
			parsed, err := models.ParseDate(override)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid X-Today-Override date; expected YYYY-MM-DD"})
				return
			}
			today = parsed
		}

		c.Set(contextToday, today)
		c.Next()
	}
}

// Today returns the date resolved by TodayMiddleware, falling back to the
// system clock when the middleware is not installed.
func Today(c *gin.Context) time.Time {
	if v, ok := c.Get(contextToday); ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return utils.SystemClock{}.Today()
}
