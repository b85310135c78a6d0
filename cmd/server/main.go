package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpapi "heavylingam-backend/internal/api/http"
	"heavylingam-backend/internal/cache"
	"heavylingam-backend/internal/config"
	"heavylingam-backend/internal/i18n"
	"heavylingam-backend/internal/jobs"
	"heavylingam-backend/internal/logger"
	"heavylingam-backend/internal/metrics"
	"heavylingam-backend/internal/scheduler"
	"heavylingam-backend/internal/security"
	"heavylingam-backend/internal/service"
	"heavylingam-backend/internal/store"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Heavylingam backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Store configuration", "type", cfg.Store.Type, "path", cfg.Store.Path)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize backing store
	var st store.Store
	switch cfg.Store.Type {
	case "firebase":
		fb, err := store.NewFirebaseStore(ctx, cfg.Store.DatabaseURL, cfg.Store.CredentialsFile, cfg.Store.PollInterval())
		if err != nil {
			logger.Error("Failed to connect to Firebase", "error", err)
			log.Fatalf("Failed to connect to Firebase: %v", err)
		}
		st = fb
		logger.Info("Firebase store connected", "database_url", cfg.Store.DatabaseURL)
	default:
		st = store.NewMemoryStore()
		logger.Info("Using in-memory store")
	}

	// Initialize warm snapshot cache
	var warm *cache.SnapshotCache
	if cfg.Redis.Enabled {
		warm, err = cache.NewSnapshotCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.SnapshotTTL())
		if err != nil {
			logger.Error("Failed to connect to Redis", "error", err)
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer warm.Close()
		logger.Info("Redis snapshot cache connected", "addr", cfg.Redis.Addr)
	}

	// Initialize the listing hub. The hub owns the single store
	// subscription; everything downstream reads through it.
	hub := cache.NewHub(st, cfg.Store.Path, warm)
	hub.Start(ctx)
	defer hub.Stop()

	// Keep the listings gauge in step with the hub
	go func() {
		updates, cancel := hub.Listen()
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case listings, ok := <-updates:
				if !ok {
					return
				}
				metrics.ListingsTotal.Set(float64(len(listings)))
			}
		}
	}()

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionExpiry())

	// Initialize Services
	catalogSvc := service.NewCatalogService(hub)
	adminSvc := service.NewAdminService(st, hub, cfg.Store.Path)
	authSvc := service.NewAuthService(cfg.Auth.Admins, tokenManager)
	imageIntake := service.NewImageIntake(cfg.Upload)

	// Initialize HTTP handlers
	catalogHandler := httpapi.NewCatalogHandler(catalogSvc, i18n.New())
	adminHandler := httpapi.NewAdminHandler(adminSvc, imageIntake)
	authHandler := httpapi.NewAuthHandler(authSvc)
	streamHandler := httpapi.NewStreamHandler(hub)

	router := httpapi.NewRouter(cfg.HTTP, tokenManager, catalogHandler, adminHandler, authHandler, streamHandler)

	// Initialize scheduler
	jobRunner := jobs.NewJobRunner(hub, warm, adminSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	server := &http.Server{
		Addr:        cfg.GetServerAddress(),
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("Server stopped")
}
