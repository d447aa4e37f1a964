package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"petbnb/internal/domain"
	"petbnb/internal/pkg/response"
)

const (
	CtxToken  = "token"
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// BearerToken extracts the caller's bearer token and decodes its claims
// without verifying the signature. Verification is the upstream core API's
// job; the BFF only needs the user id and role the same way the mobile app
// reads them out of its own token. A tampered token buys nothing here: every
// upstream call carries the raw token and fails with 401.
func BearerToken(log *zap.Logger) gin.HandlerFunc {
	parser := jwtlib.NewParser()

	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims := jwtlib.MapClaims{}
		if _, _, err := parser.ParseUnverified(tokenStr, claims); err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Malformed token")
			c.Abort()
			return
		}

		userID := stringClaim(claims, "sub")
		if userID == "" {
			userID = stringClaim(claims, "user_id")
		}

		// Canonical claim is "role"; some older tokens carry "user_type".
		role := stringClaim(claims, "role")
		if role == "" {
			if role = stringClaim(claims, "user_type"); role != "" {
				log.Debug("token uses legacy user_type claim", zap.String("user_id", userID))
			}
		}

		c.Set(CtxToken, tokenStr)
		c.Set(CtxUserID, userID)
		c.Set(CtxRole, role)
		c.Next()
	}
}

// RequireRole ensures the authenticated user has the given role.
func RequireRole(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}
		if role != string(required) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

func stringClaim(claims jwtlib.MapClaims, key string) string {
	v, ok := claims[key]
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprintf("%.0f", t)
	}
	return ""
}
