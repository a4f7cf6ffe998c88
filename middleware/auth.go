package middleware

import (
	"net/http"
	"strings"

	"utsavia/devstore"
	"utsavia/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token and puts the vendor id on the
// request context.
func JWTAuthMiddleware(store *devstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		vendorID, err := utils.ExtractVendorID(tokenString, "access")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		if _, ok := store.VendorByID(vendorID); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Vendor not found"})
			return
		}

		c.Set("vendorID", vendorID)
		c.Next()
	}
}
