package middleware

import (
	"context"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"mit-market/models"
	"mit-market/utils"
)

// TokenVerifier resolves a bearer token to a stable user id. Production uses
// Firebase ID tokens; local mode verifies the service's own HS256 JWTs.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (uid, email string, err error)
}

type FirebaseVerifier struct {
	Auth *fbauth.Client
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (string, string, error) {
	decoded, err := v.Auth.VerifyIDToken(ctx, token)
	if err != nil {
		return "", "", err
	}
	email, _ := decoded.Claims["email"].(string)
	return decoded.UID, email, nil
}

type LocalVerifier struct{}

func (v *LocalVerifier) Verify(_ context.Context, token string) (string, string, error) {
	claims, err := utils.ValidateToken(token)
	if err != nil {
		return "", "", err
	}
	return claims.UID, claims.Email, nil
}

func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		uid, email, err := verifier.Verify(c.Request.Context(), tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("user_id", uid)
		c.Set("user_email", email)
		c.Next()
	}
}
