package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"cfp_agreements/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a panic into a JSON 500 carrying the request id.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				requestID := GetRequestID(c)
				logger.Error("[http][recovery] panic recovered",
					zap.String("panic", fmt.Sprint(rec)),
					zap.String("request_id", requestID),
					zap.String("method", c.Request.Method),
					zap.String("route", c.FullPath()),
					zap.ByteString("stack", debug.Stack()),
				)
				appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError).
					WithDetails(gin.H{"request_id": requestID})
				c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			}
		}()
		c.Next()
	}
}
