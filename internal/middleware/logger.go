package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sereneapp/serene-api/internal/logger"
)

// Logger middleware logs HTTP requests through the structured logger
// and threads a request ID into the gin and request contexts. Incoming
// X-Request-ID headers are honored so clients can correlate retries.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		ctx := logger.WithRequestID(c.Request.Context(), c.GetHeader("X-Request-ID"))
		requestID := logger.RequestIDFromContext(ctx)
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		log := logger.FromContext(c.Request.Context()).WithContext(c.Request.Context())
		log.Info("request completed",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)),
		)
	}
}
