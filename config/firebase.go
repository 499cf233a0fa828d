package config

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	fbdb "firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

var (
	FirebaseApp  *firebase.App
	FirebaseAuth *fbauth.Client
	FirebaseDB   *fbdb.Client
)

// InitFirebase creates the shared Firebase app plus the auth client, and the
// Realtime Database client when FIREBASE_DATABASE_URL is configured. With no
// credentials file set, ADC (Application Default Credentials) is used.
func InitFirebase(ctx context.Context) error {
	if FirebaseApp != nil {
		return nil
	}

	conf := &firebase.Config{DatabaseURL: AppConfig.FirebaseDatabaseURL}

	var opts []option.ClientOption
	if AppConfig.FirebaseCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(AppConfig.FirebaseCredentials))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return fmt.Errorf("failed to create firebase app: %w", err)
	}
	FirebaseApp = app

	FirebaseAuth, err = app.Auth(ctx)
	if err != nil {
		return fmt.Errorf("failed to create firebase auth client: %w", err)
	}

	if AppConfig.FirebaseDatabaseURL != "" {
		FirebaseDB, err = app.Database(ctx)
		if err != nil {
			return fmt.Errorf("failed to create firebase database client: %w", err)
		}
	}

	log.Println("Firebase connected")
	return nil
}
