package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"schooladmin/internal/domain"
)

const identityKey = "identity"

// Claims is the token payload issued by the admin login.
type Claims struct {
	SchoolID int64  `json:"school_id"`
	UserID   int64  `json:"user_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthRequired verifies the HS256 bearer token and stores the caller's
// identity in the context.
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || raw == header {
			unauthorized(c, "bearer token required")
			return
		}
		if len(secret) == 0 {
			unauthorized(c, "authentication is not configured")
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			msg := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "token expired"
			}
			unauthorized(c, msg)
			return
		}
		if claims.SchoolID <= 0 || claims.UserID <= 0 {
			unauthorized(c, "token carries no school or user")
			return
		}

		c.Set(identityKey, domain.RequestContext{
			SchoolID: claims.SchoolID,
			UserID:   claims.UserID,
			Role:     strings.ToLower(strings.TrimSpace(claims.Role)),
		})
		c.Next()
	}
}

// Identity returns the verified caller, if any.
func Identity(c *gin.Context) (domain.RequestContext, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.RequestContext{}, false
	}
	id, ok := v.(domain.RequestContext)
	return id, ok
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":     false,
		"message":    msg,
		"request_id": GetRequestID(c),
	})
}
