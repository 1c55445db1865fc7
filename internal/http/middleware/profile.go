package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

type profileChecker interface {
	RequireComplete(ctx context.Context, schoolID int64) error
}

// RequireCompleteProfile blocks the route until the caller's school has
// filled in its profile. It must run after AuthRequired.
func RequireCompleteProfile(profiles profileChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := Identity(c)
		if !ok {
			unauthorized(c, "authentication required")
			return
		}
		if err := profiles.RequireComplete(c.Request.Context(), id.SchoolID); err != nil {
			Abort(c, err)
			return
		}
		c.Next()
	}
}
