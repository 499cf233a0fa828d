package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mit-market/models"
	"mit-market/services"
)

type OrderController struct {
	Orders *services.OrderService
}

// @Summary Get order history
// @Description List the current user's order snapshots, newest first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	orders, err := ctrl.Orders.List(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrNotAuthenticated) {
			c.JSON(401, gin.H{"success": false, "message": "You must be logged in"})
			return
		}
		c.JSON(502, gin.H{"success": false, "message": "Failed to load orders"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Orders retrieved",
		"data":    orders,
	})
}

// @Summary Get order by ID
// @Description Get a single order snapshot
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{orderId} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	userID := c.GetString("user_id")
	orderID := c.Param("orderId")

	order, err := ctrl.Orders.Get(c.Request.Context(), userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotAuthenticated):
			c.JSON(401, gin.H{"success": false, "message": "You must be logged in"})
		case errors.Is(err, models.ErrNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		default:
			c.JSON(502, gin.H{"success": false, "message": "Failed to load order"})
		}
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order retrieved",
		"data":    order,
	})
}
