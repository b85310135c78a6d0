package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"heavylingam-backend/internal/config"
	"heavylingam-backend/internal/security"
)

// NewRouter assembles the public catalog surface, the auth endpoints and the
// session-gated admin console under /api/v1.
func NewRouter(
	cfg config.HTTPConfig,
	tokens security.TokenManager,
	catalogHandler *CatalogHandler,
	adminHandler *AdminHandler,
	authHandler *AuthHandler,
	streamHandler *StreamHandler,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(CORSMiddleware(cfg.AllowedOrigins))
	router.Use(LoggingMiddleware)
	router.Use(MetricsMiddleware)

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public catalog
	api.HandleFunc("/listings", catalogHandler.HandleBrowse).Methods("GET")
	api.HandleFunc("/listings/stream", streamHandler.HandleStream).Methods("GET")
	api.HandleFunc("/listings/{id}", catalogHandler.HandleDetail).Methods("GET")
	api.HandleFunc("/i18n/{locale}", catalogHandler.HandleTranslations).Methods("GET")

	// Auth
	api.HandleFunc("/auth/login", authHandler.HandleLogin).Methods("POST")
	api.HandleFunc("/auth/logout", authHandler.HandleLogout).Methods("POST")

	// Admin console, session-gated
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(AuthMiddleware(tokens))
	admin.HandleFunc("/listings", adminHandler.HandleOverview).Methods("GET")
	admin.HandleFunc("/listings", adminHandler.HandleCreate).Methods("POST")
	admin.HandleFunc("/listings/stream", streamHandler.HandleStream).Methods("GET")
	admin.HandleFunc("/listings/{id}", adminHandler.HandleUpdate).Methods("PUT")
	admin.HandleFunc("/listings/{id}", adminHandler.HandleDelete).Methods("DELETE")
	admin.HandleFunc("/images", adminHandler.HandleImageUpload).Methods("POST")

	return router
}
