package api

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	ginmiddleware "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/pitchside/turf-booking-backend/logger"
)

// RateLimit caps requests per client IP using an in-process store. rate uses
// the limiter format, e.g. "10-1m" for ten requests per minute.
func RateLimit(rate string) gin.HandlerFunc {
	parsed, err := limiter.NewRateFromFormatted(rate)

	if err != nil {
		logger.Log.WithError(err).Errorf("invalid rate %q, rate limiting disabled", rate)
		return func(c *gin.Context) { c.Next() }
	}

	return ginmiddleware.NewMiddleware(limiter.New(memory.NewStore(), parsed))
}
