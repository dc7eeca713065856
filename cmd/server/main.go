package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/aksuu-app/aksuu-server/internal/api"
	"github.com/aksuu-app/aksuu-server/internal/api/handlers"
	"github.com/aksuu-app/aksuu-server/internal/auth"
	"github.com/aksuu-app/aksuu-server/internal/config"
	"github.com/aksuu-app/aksuu-server/internal/repositories"
)

func main() {
	db, err := repositories.Connect(config.Envs.DB_URL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	creds := repositories.NewCredentialStore(db)
	resets := repositories.NewResetStore(db)
	settings := repositories.NewSettingsStore(db)
	eventStore := repositories.NewEventStore(db)
	photos := repositories.NewPhotoStore(config.Envs.R2)

	authSvc := auth.NewService(creds, resets, settings)

	router := api.SetupRouter(api.Handlers{
		Auth:     handlers.NewAuthHandler(authSvc),
		Events:   handlers.NewEventHandler(eventStore, photos, authSvc),
		Settings: handlers.NewSettingsHandler(settings),
		Photos:   handlers.NewPhotoHandler(photos),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Envs.Port),
		Handler: router,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting AKSUU server on port: %s", config.Envs.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on port %s: %v", config.Envs.Port, err)
	}
}
