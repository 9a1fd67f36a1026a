package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	identityapp "github.com/NoahAndreani/NBA-Projet-compensatoire/internal/application/identity"
	statsapp "github.com/NoahAndreani/NBA-Projet-compensatoire/internal/application/stats"
	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/infrastructure/auth"
	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/infrastructure/balldontlie"
	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/infrastructure/config"
	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/infrastructure/logger"
	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/infrastructure/persistence"
	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/interfaces/http/handler"
	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/interfaces/http/router"
	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/interfaces/http/view"
)

func main() {
	// A local .env is a convenience for development; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting NBA stats browser",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)
	log.Info("Upstream API key", zap.String("key", maskAPIKey(cfg.Upstream.APIKey)))

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database ready", zap.String("driver", cfg.Database.Driver))

	// Repositories and services
	userRepo := persistence.NewGormUserRepository(db.DB)
	authService := identityapp.NewAuthService(userRepo, log)
	sessions := auth.NewSessionService(cfg.Session, cfg.App.Name)

	// The placeholder key means "no credential": the gateway then omits the
	// Authorization header, matching how the upstream treats anonymous calls.
	apiKey := cfg.Upstream.APIKey
	if apiKey == config.PlaceholderAPIKey {
		apiKey = ""
	}
	gatewayConfig := &balldontlie.Config{
		BaseURL:        cfg.Upstream.BaseURL,
		APIKey:         apiKey,
		TimeoutSeconds: cfg.Upstream.TimeoutSeconds,
		PerPage:        cfg.Upstream.PerPage,
		RosterPerPage:  cfg.Upstream.RosterPerPage,
	}
	gateway, err := balldontlie.NewClient(gatewayConfig, log)
	if err != nil {
		log.Fatal("Failed to build upstream client", zap.Error(err))
	}

	browseService := statsapp.NewBrowseService(gateway, statsapp.BrowseServiceConfig{
		PerPage:       cfg.Upstream.PerPage,
		RosterPerPage: cfg.Upstream.RosterPerPage,
	}, log)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	templates, err := view.Templates()
	if err != nil {
		log.Fatal("Failed to parse templates", zap.Error(err))
	}
	engine.SetHTMLTemplate(templates)

	handlers := router.Handlers{
		Auth:    handler.NewAuthHandler(authService, sessions, log),
		Players: handler.NewPlayersHandler(browseService, log),
		Teams:   handler.NewTeamsHandler(browseService, log),
		Games:   handler.NewGamesHandler(browseService, log),
	}
	router.NewRouter(engine, sessions, handlers).Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}

// maskAPIKey keeps only a short prefix of the credential for startup logs.
func maskAPIKey(key string) string {
	if key == "" || key == config.PlaceholderAPIKey {
		return "(none)"
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:8] + "..."
}
