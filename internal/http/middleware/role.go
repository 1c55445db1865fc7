package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"schooladmin/internal/domain"
)

// RequireRoles lets the request through only when the caller's role is one
// of allowedRoles. It must run after AuthRequired.
//
//	r.DELETE("/cars/:id", RequireRoles("owner", "admin"), handler)
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		id, ok := Identity(c)
		if !ok || id.Role == "" {
			unauthorized(c, "role missing from token")
			return
		}
		if _, ok := allowed[id.Role]; !ok {
			Abort(c, domain.ForbiddenError{Msg: "role " + id.Role + " may not do this"})
			return
		}
		c.Next()
	}
}
