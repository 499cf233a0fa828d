package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"mit-market/config"
	_ "mit-market/docs"
	"mit-market/middleware"
	"mit-market/models"
	"mit-market/routes"
	"mit-market/store"
)

// @title MIT Market API
// @version 1.0
// @description Student marketplace backend: catalog, per-user cart, simulated checkout and order history.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	ctx := context.Background()

	st, err := store.New(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize document store: %v", err)
	}
	defer st.Close()

	models.InitRedis()
	defer models.CloseRedis()

	var verifier middleware.TokenVerifier
	if config.AppConfig.AuthMode == "local" {
		log.Println("Auth mode: local (self-issued JWTs)")
		verifier = &middleware.LocalVerifier{}
	} else {
		if err := config.InitFirebase(ctx); err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
		verifier = &middleware.FirebaseVerifier{Auth: config.FirebaseAuth}
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, st, verifier)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
