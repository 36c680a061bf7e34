package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"syscall"
	"time"

	"quoterelay/internal/config"
	"quoterelay/internal/handlers"
	"quoterelay/internal/middleware"
	"quoterelay/internal/repositories"
	"quoterelay/internal/routes"
	"quoterelay/internal/services"
	"quoterelay/internal/utils"

	"github.com/gin-gonic/gin"

	_ "quoterelay/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires middleware, swagger and the quote routes around service.
func NewRouter(cfg *config.Config, quoteService *services.QuoteService) (*gin.Engine, error) {
	allowed, err := regexp.Compile(cfg.Server.AllowedOriginPattern)
	if err != nil {
		return nil, fmt.Errorf("allowed origin pattern: %w", err)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORSMiddleware(allowed))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	quoteHandler := handlers.NewQuoteHandler(quoteService)
	routes.SetupRoutes(router, quoteHandler, *cfg.Server.LegacyAmountGet)
	return router, nil
}

func newOwnerCache(cfg config.OwnerCacheConfig) (repositories.OwnerCacheRepository, func()) {
	switch cfg.Driver {
	case config.CacheMemory:
		return repositories.NewMemoryOwnerCache(cfg.TTL), func() {}
	case config.CacheRedis:
		rc := repositories.NewRedisOwnerCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.TTL)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rc.Ping(ctx); err != nil {
			// lookups fall through to HubSpot while redis is down
			log.Printf("[owner-cache] redis %s unreachable: %v", cfg.RedisAddr, err)
		}
		return rc, func() {
			if err := rc.Close(); err != nil {
				log.Printf("[owner-cache] close: %v", err)
			}
		}
	default:
		return nil, func() {}
	}
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests.
func Run(cfg *config.Config) error {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	if cfg.HubSpot.APIToken == "" {
		log.Printf("[app] HUBSPOT_API_TOKEN is empty, HubSpot calls will be rejected")
	}

	crm := utils.NewHubSpotClient(cfg.HubSpot.APIToken, cfg.HubSpot.BaseURL, cfg.HubSpot.Timeout)
	ownerCache, closeCache := newOwnerCache(cfg.OwnerCache)
	defer closeCache()

	quoteService := services.NewQuoteService(crm, ownerCache, cfg.Quotes.EnrichConcurrency)

	router, err := NewRouter(cfg, quoteService)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Server running on http://localhost:%d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Println("Server stopped")
	return nil
}
