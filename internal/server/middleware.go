package server

import (
	"time"

	"nft-auction-house/utils"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the per-request correlation id. Incoming values
// are honored so callers can trace a request across services; otherwise
// one is generated.
const RequestIDHeader = "X-Request-ID"

// RequestLoggerMiddleware tags every request with a correlation id and
// logs it with timing and response size.
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	requestID := c.GetHeader(RequestIDHeader)
	if requestID == "" {
		requestID = utils.GenerateID()
	}
	c.Writer.Header().Set(RequestIDHeader, requestID)

	c.Next()

	utils.Info("http request", map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"bytes":      c.Writer.Size(),
		"latency":    time.Since(start).String(),
	})
}
