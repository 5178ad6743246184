package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ordersvc "forever-commerce/internal/service/order"
)

func placeOrderHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ordersvc.PlaceInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		orderID, err := orders.PlaceOrder(c.Request.Context(), currentUserID(c), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "orderId": orderID})
	}
}

func listOrdersHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListOrders(c.Request.Context(), currentUserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": list})
	}
}
