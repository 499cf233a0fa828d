package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mit-market/models"
	"mit-market/repositories"
	"mit-market/services"
	"mit-market/store"
)

func cartRouter(t *testing.T) (*gin.Engine, *services.CartService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	carts := services.NewCartService(repositories.NewCartRepository(store.NewMemoryStore()))
	ctrl := &CartController{Carts: carts}

	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("user_id", "u1") })
	router.PATCH("/cart/:productId", ctrl.UpdateQuantity)
	return router, carts
}

func patchJSON(t *testing.T, router *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUpdateQuantityAcceptsExplicitZero(t *testing.T) {
	router, carts := cartRouter(t)
	ctx := context.Background()

	_, err := carts.Add(ctx, "u1", models.CartItem{ID: "p1", Name: "Item", Price: 10, Quantity: 3})
	require.NoError(t, err)

	// 0 and negative values both reach the service and clamp to 1.
	for _, body := range []string{`{"quantity": 0}`, `{"quantity": -3}`} {
		w := patchJSON(t, router, "/cart/p1", body)
		require.Equal(t, 200, w.Code, "body %s", body)

		var resp struct {
			Data []models.CartItem `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, 1, resp.Data[0].Quantity)
	}
}

func TestUpdateQuantityRejectsMissingField(t *testing.T) {
	router, _ := cartRouter(t)

	w := patchJSON(t, router, "/cart/p1", `{}`)
	assert.Equal(t, 400, w.Code)
}
