package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mit-market/models"
	"mit-market/services"
)

type AuthController struct {
	Auth  *services.AuthService
	Carts *services.CartService
}

// @Summary Register new user
// @Description Register a new account (local auth mode only)
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	resp, err := ctrl.Auth.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			c.JSON(400, gin.H{"success": false, "message": "Email already registered"})
			return
		}
		c.JSON(502, gin.H{"success": false, "message": "Registration failed"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Account created",
		"data":    resp,
	})
}

// @Summary Login
// @Description Login with email and password (local auth mode only)
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	resp, err := ctrl.Auth.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidLogin) {
			c.JSON(401, gin.H{"success": false, "message": "Invalid email or password"})
			return
		}
		c.JSON(502, gin.H{"success": false, "message": "Login failed"})
		return
	}

	// Drop any cart mirror left from a previous session for this user.
	ctrl.Carts.Forget(resp.UID)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    resp,
	})
}

// @Summary Get profile
// @Description Get the current user's profile
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := ctrl.Auth.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to load profile"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Profile retrieved",
		"data":    profile,
	})
}

// @Summary Update profile
// @Description Update the current user's profile fields
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.Response
// @Router /auth/profile [patch]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	profile, err := ctrl.Auth.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to update profile"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Profile updated",
		"data":    profile,
	})
}
