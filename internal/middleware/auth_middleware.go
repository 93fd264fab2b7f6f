package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims represents the JWT token claims. Subject carries the external
// identity provider id, which is the identifier the services key on.
type JWTClaims struct {
	ExternalID string `json:"external_id"`
	UserType   string `json:"user_type"`
	jwt.RegisteredClaims
}

// AuthRequired middleware validates JWT token and sets user context
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token required"})
			c.Abort()
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*JWTClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		externalID := claims.ExternalID
		if externalID == "" {
			externalID = claims.Subject
		}
		if externalID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing identity in token"})
			c.Abort()
			return
		}

		c.Set("external_id", externalID)
		c.Set("user_type", claims.UserType)

		c.Next()
	}
}

// HostRequired middleware ensures user can list vehicles for rent
func HostRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userType, exists := c.Get("user_type")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User type not found"})
			c.Abort()
			return
		}

		userTypeStr, ok := userType.(string)
		if !ok || (userTypeStr != "host" && userTypeStr != "both") {
			c.JSON(http.StatusForbidden, gin.H{"error": "Host access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
