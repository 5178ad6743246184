package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "token"
	ctxUserIDKey  = "userID"
)

// authRequired resolves the session cookie into a user id and stores it
// in the gin context. Requests without a valid cookie get a 401.
func authRequired(customers CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "not authorized, please login"})
			return
		}
		userID, err := customers.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "not authorized, please login"})
			return
		}
		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

// sellerRequired gates seller-only routes. It runs after authRequired.
func sellerRequired(customers CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := customers.Get(c.Request.Context(), currentUserID(c))
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}
		if !user.IsSeller {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "seller account required"})
			return
		}
		c.Next()
	}
}

func currentUserID(c *gin.Context) string {
	return c.GetString(ctxUserIDKey)
}
