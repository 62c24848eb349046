package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"cfp_agreements/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errAdminDisabled = pkg.NewDomainErrorSimple("ADMIN_DISABLED", "Admin API is not configured", http.StatusServiceUnavailable)
	errUnauthorized  = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or missing bearer token", http.StatusUnauthorized)
)

// AdminAuth guards back-office routes with a static bearer token. With no
// token configured every request is refused.
func AdminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.AbortWithStatusJSON(errAdminDisabled.HTTPStatus, errAdminDisabled.ToHTTPError())
			return
		}

		parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(parts[1])), []byte(token)) != 1 {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Next()
	}
}
