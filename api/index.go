package api

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"mit-market/config"
	"mit-market/middleware"
	"mit-market/models"
	"mit-market/routes"
	"mit-market/store"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()

		ctx := context.Background()
		st, err := store.New(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize document store: %v", err)
		}

		models.InitRedis()

		var verifier middleware.TokenVerifier
		if config.AppConfig.AuthMode == "local" {
			verifier = &middleware.LocalVerifier{}
		} else {
			if err := config.InitFirebase(ctx); err != nil {
				log.Fatalf("Failed to initialize Firebase: %v", err)
			}
			verifier = &middleware.FirebaseVerifier{Auth: config.FirebaseAuth}
		}

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, st, verifier)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
