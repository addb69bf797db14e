package middleware

import (
	"io"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a panicking handler into a 500 error body carrying the
// request id that was logged with the stack. Broken client connections are
// left to gin.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		id := RequestIDFrom(c)
		logger.Errorw("panic recovered",
			"error", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", id,
			"stack", string(debug.Stack()),
		)

		body := gin.H{
			"code":    "INTERNAL_ERROR",
			"message": "internal server error",
		}
		if id != "" {
			body["request_id"] = id
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": body})
	})
}
