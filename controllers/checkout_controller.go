package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mit-market/models"
	"mit-market/services"
)

type CheckoutController struct {
	Checkout *services.CheckoutService
}

// @Summary Checkout
// @Description Freeze the cart into an order snapshot and clear the cart
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param form body models.CheckoutRequest true "Shipping form"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Submit(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	orderID, err := ctrl.Checkout.Submit(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotAuthenticated):
			c.JSON(401, gin.H{"success": false, "message": "You must be logged in to make a payment"})
		case errors.Is(err, models.ErrEmptyCart):
			c.JSON(400, gin.H{"success": false, "message": "Your cart is empty. Add items before making a payment"})
		case errors.Is(err, models.ErrValidation):
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(502, gin.H{"success": false, "message": "Payment failed. Please try again"})
		}
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"data": gin.H{
			"orderId": orderID,
		},
	})
}
