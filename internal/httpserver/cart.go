package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cartsvc "forever-commerce/internal/service/cart"
)

type cartLineRequest struct {
	Quantity     int    `json:"quantity"`
	SelectedSize string `json:"selectedSize"`
}

func fetchCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := carts.Fetch(c.Request.Context(), currentUserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": items})
	}
}

func addToCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartsvc.AddInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		items, err := carts.Add(c.Request.Context(), currentUserID(c), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": items})
	}
}

func updateCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartLineRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		items, err := carts.UpdateQuantity(c.Request.Context(), currentUserID(c), c.Param("productId"), req.Quantity, req.SelectedSize)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": items})
	}
}

// removeFromCartHandler takes the size from the body because a product
// can sit in the cart once per size, and the line key needs both parts.
func removeFromCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartLineRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				badRequest(c, "invalid request body")
				return
			}
		}
		items, err := carts.Remove(c.Request.Context(), currentUserID(c), c.Param("productId"), req.SelectedSize)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": items})
	}
}
