package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string
	Port   string

	// Document store backend: firebase | postgres | memory
	StoreBackend        string
	FirebaseDatabaseURL string
	FirebaseCredentials string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Identity mode: firebase verifies Firebase ID tokens, local issues its own JWTs
	AuthMode  string
	JWTSecret string
	JWTExpiry string

	PaymentSuccessRate float64
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	successRate, err := strconv.ParseFloat(os.Getenv("PAYMENT_SUCCESS_RATE"), 64)
	if err != nil || successRate <= 0 || successRate > 1 {
		successRate = 0.8
	}

	AppConfig = &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		Port:                getEnv("APP_PORT", getEnv("PORT", "8082")),
		StoreBackend:        getEnv("STORE_BACKEND", "firebase"),
		FirebaseDatabaseURL: getEnv("FIREBASE_DATABASE_URL", ""),
		FirebaseCredentials: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "mit_market"),
		DBSSLMode:           getEnv("DB_SSLMODE", "disable"),
		AuthMode:            getEnv("AUTH_MODE", "firebase"),
		JWTSecret:           getEnv("JWT_SECRET", "secret"),
		JWTExpiry:           getEnv("JWT_EXPIRY", "24h"),
		PaymentSuccessRate:  successRate,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Store backend: %s", AppConfig.StoreBackend)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
