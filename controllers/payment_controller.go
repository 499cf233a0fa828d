package controllers

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"

	"mit-market/models"
)

// PaymentController is the dummy payment gateway. It is a standalone
// prototype: the checkout flow never calls it.
type PaymentController struct {
	SuccessRate float64
}

// @Summary Simulate a payment
// @Description Dummy gateway returning a random success/failure outcome
// @Tags Payment
// @Accept json
// @Produce json
// @Param payment body models.PaymentRequest true "Card details"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/payment [post]
func (ctrl *PaymentController) Pay(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid payment details"})
		return
	}

	rate := ctrl.SuccessRate
	if rate < 0 || rate > 1 {
		rate = 0.8
	}

	if rand.Float64() < rate {
		c.JSON(200, gin.H{
			"success":       true,
			"message":       "Payment Successful!",
			"transactionId": fmt.Sprintf("TXN%d", time.Now().UnixMilli()),
		})
		return
	}

	c.JSON(200, gin.H{
		"success": false,
		"message": "Payment Failed! Please try again.",
	})
}
