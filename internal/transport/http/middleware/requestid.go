package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/irohit373/AlignTODO/internal/reqctx"
)

// RequestID attaches a request ID to the context and response header,
// preserving an incoming X-Request-ID when the client supplies one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = reqctx.NewID()
		}

		c.Request = c.Request.WithContext(reqctx.WithRequestID(c.Request.Context(), id))
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
