package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mit-market/models"
	"mit-market/services"
)

type CartController struct {
	Carts *services.CartService
}

func cartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotAuthenticated):
		c.JSON(401, gin.H{"success": false, "message": "You must be logged in"})
	default:
		c.JSON(502, gin.H{"success": false, "message": "Cart is temporarily unavailable, please try again"})
	}
}

// @Summary Get cart
// @Description Get the current user's cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetString("user_id")

	cart, err := ctrl.Carts.Load(c.Request.Context(), userID)
	if err != nil {
		cartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart retrieved",
		"data":    cart,
	})
}

// @Summary Add cart item
// @Description Add a product to the cart. Adding a product that is already in the cart is a no-op.
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Product to add"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	item := models.CartItem{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Category:    req.Category,
		Offers:      req.Offers,
		Quantity:    req.Quantity,
	}

	cart, err := ctrl.Carts.Add(c.Request.Context(), userID, item)
	if err != nil {
		cartError(c, err)
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Item added to cart",
		"data":    cart,
	})
}

// @Summary Update item quantity
// @Description Set the quantity of a cart item. Quantities below 1 are clamped to 1.
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param quantity body models.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/{productId} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("productId")

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	cart, err := ctrl.Carts.UpdateQuantity(c.Request.Context(), userID, productID, *req.Quantity)
	if err != nil {
		cartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Quantity updated",
		"data":    cart,
	})
}

// @Summary Remove cart item
// @Description Remove a product from the cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("productId")

	cart, err := ctrl.Carts.Remove(c.Request.Context(), userID, productID)
	if err != nil {
		cartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Item removed from cart",
		"data":    cart,
	})
}

// @Summary Clear cart
// @Description Remove every item from the cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := ctrl.Carts.Clear(c.Request.Context(), userID); err != nil {
		cartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart cleared",
		"data":    []models.CartItem{},
	})
}
