package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery переводит панику обработчика в 500. В ответ попадает request_id,
// по которому запись в логе находится вместе со стеком.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			requestID := c.GetString(requestIDKey)
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "handler panicked",
				logger.String("request_id", requestID),
				logger.String("method", c.Request.Method),
				logger.String("path", c.FullPath()),
				logger.Any("panic", rec),
				logger.String("stack", string(debug.Stack())),
			)

			c.Set("error", fmt.Sprintf("panic: %v", rec))
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{
				"error":      "internal server error",
				"request_id": requestID,
			})
		}()

		c.Next()
	}
}
