package api

import (
	"fmt"
	"log"
	"net/http"

	_ "github.com/aksuu-app/aksuu-server/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/aksuu-app/aksuu-server/internal/api/handlers"
	"github.com/aksuu-app/aksuu-server/internal/api/middleware"
	"github.com/aksuu-app/aksuu-server/internal/config"
	"github.com/rs/cors"
)

// Handlers collects the wired handler set; SetupRouter owns only the route
// table.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Events   *handlers.EventHandler
	Settings *handlers.SettingsHandler
	Photos   *handlers.PhotoHandler
}

func SetupRouter(h Handlers) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(config.Envs.CorsConfig)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	authMux := http.NewServeMux()
	authMux.HandleFunc("/sign-up", h.Auth.Register)
	authMux.HandleFunc("/login", h.Auth.Login)
	authMux.HandleFunc("/reset/request", h.Auth.RequestReset)
	authMux.HandleFunc("/reset/verify", h.Auth.VerifyResetCode)
	authMux.HandleFunc("/reset/password", h.Auth.SetNewPassword)
	authMux.HandleFunc("/google/login", h.Auth.HandleGoogleLogin)
	authMux.HandleFunc("/google/callback", h.Auth.HandleGoogleCallback)

	// Session-scoped auth endpoints live on the same prefix, behind the
	// middleware individually.
	authMux.Handle("/logout", middleware.AuthMiddleware(http.HandlerFunc(h.Auth.Logout)))
	authMux.Handle("/account", middleware.AuthMiddleware(http.HandlerFunc(h.Auth.DeleteAccount)))

	mainMux.Handle("/api/v1/auth/",
		http.StripPrefix("/api/v1/auth", authMux),
	)

	// The feed is the app's landing screen: list and detail stay public,
	// writes require a session.
	mainMux.HandleFunc("GET /api/v1/events", h.Events.List)
	mainMux.HandleFunc("GET /api/v1/events/{id}", h.Events.Get)
	mainMux.Handle("POST /api/v1/events",
		middleware.AuthMiddleware(http.HandlerFunc(h.Events.Create)),
	)
	mainMux.Handle("PUT /api/v1/events/{id}",
		middleware.AuthMiddleware(http.HandlerFunc(h.Events.Update)),
	)

	// ---------- PROTECTED ROUTES ----------
	protectedMux := http.NewServeMux()

	photoMux := http.NewServeMux()
	photoMux.HandleFunc("/presign", h.Photos.Presign)
	photoMux.HandleFunc("/complete", h.Photos.Complete)

	protectedMux.Handle("/photos/",
		http.StripPrefix("/photos", photoMux),
	)

	protectedMux.HandleFunc("/profile", h.Auth.Profile)
	protectedMux.HandleFunc("/settings", h.Settings.Settings)

	mainMux.Handle("/api/v1/",
		http.StripPrefix(
			"/api/v1",
			middleware.AuthMiddleware(protectedMux),
		),
	)

	log.Println("Router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(handler)
	return handler
}
