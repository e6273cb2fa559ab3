package middleware

import (
	"construtora_erp/internal/infrastructure/erpapi"
	"strings"

	"github.com/gin-gonic/gin"
)

// ForwardToken picks the caller's bearer token from the cookieName session
// cookie (or an Authorization header) and attaches it to the request context
// so the ERP client can forward it. Authentication itself is left to the
// backend. cookieName comes from the normalized config.
func ForwardToken(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if v, err := c.Cookie(cookieName); err == nil {
			token = strings.TrimSpace(v)
		}
		if token == "" {
			h := strings.TrimSpace(c.GetHeader("Authorization"))
			if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
				token = strings.TrimSpace(h[7:])
			}
		}
		if token != "" {
			c.Request = c.Request.WithContext(erpapi.WithToken(c.Request.Context(), token))
		}
		c.Next()
	}
}
