package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"mit-market/config"
	"mit-market/controllers"
	"mit-market/middleware"
	"mit-market/models"
	"mit-market/repositories"
	"mit-market/services"
	"mit-market/store"
)

func SetupRoutes(router *gin.Engine, st store.Store, verifier middleware.TokenVerifier) {
	cartRepo := repositories.NewCartRepository(st)
	orderRepo := repositories.NewOrderRepository(st)
	productRepo := repositories.NewProductRepository(st)
	userRepo := repositories.NewUserRepository(st)

	emailService, err := models.NewEmailService()
	if err != nil {
		log.Println("Email service disabled:", err)
		emailService = nil
	}

	cartService := services.NewCartService(cartRepo)
	checkoutService := services.NewCheckoutService(cartService, orderRepo, emailService)
	orderService := services.NewOrderService(orderRepo)
	authService := services.NewAuthService(userRepo)

	authCtrl := &controllers.AuthController{Auth: authService, Carts: cartService}
	productCtrl := &controllers.ProductController{Products: productRepo}
	cartCtrl := &controllers.CartController{Carts: cartService}
	checkoutCtrl := &controllers.CheckoutController{Checkout: checkoutService}
	orderCtrl := &controllers.OrderController{Orders: orderService}
	paymentCtrl := &controllers.PaymentController{SuccessRate: config.AppConfig.PaymentSuccessRate}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	// Standalone payment simulator; the checkout flow does not call it.
	router.POST("/api/payment", paymentCtrl.Pay)

	router.GET("/categories", productCtrl.GetAllCategories)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.GET("/products/:id/comments", productCtrl.GetComments)

	if config.AppConfig.AuthMode == "local" {
		router.POST("/auth/register", authCtrl.Register)
		router.POST("/auth/login", authCtrl.Login)
	}

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(verifier))
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart", cartCtrl.AddItem)
		auth.DELETE("/cart", cartCtrl.ClearCart)
		auth.PATCH("/cart/:productId", cartCtrl.UpdateQuantity)
		auth.DELETE("/cart/:productId", cartCtrl.RemoveItem)

		auth.POST("/checkout", checkoutCtrl.Submit)

		auth.GET("/orders", orderCtrl.GetOrders)
		auth.GET("/orders/:orderId", orderCtrl.GetOrderByID)
	}
}
