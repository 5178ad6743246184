package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	customersvc "forever-commerce/internal/service/customer"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerHandler creates the account and starts a session right away,
// so a fresh registration does not need a separate login round trip.
func registerHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customersvc.RegisterInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		user, err := deps.CustomerSvc.Register(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		_, token, err := deps.CustomerSvc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		setSessionCookie(c, token, deps.TokenTTL)
		c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
	}
}

func loginHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		user, token, err := deps.CustomerSvc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		setSessionCookie(c, token, deps.TokenTTL)
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

func logoutHandler(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged out"})
}

func currentUserHandler(customers CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := customers.Get(c.Request.Context(), currentUserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

func becomeSellerHandler(customers CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := customers.BecomeSeller(c.Request.Context(), currentUserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

func setSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, token, int(ttl.Seconds()), "/", "", false, true)
}
