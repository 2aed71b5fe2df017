package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/projectkrs/krs/internal/config"
	"github.com/projectkrs/krs/internal/metrics"
	"github.com/projectkrs/krs/internal/server/http/handlers"
	"github.com/projectkrs/krs/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.OrderDeskFacade, cfg *config.Config, logger *slog.Logger) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	// Route on the escaped path so that an encoded "/" inside a selfie name stays in :name.
	engine.UseRawPath = true
	engine.UnescapePathValues = true
	engine.MaxMultipartMemory = cfg.MaxUploadBytes

	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	corsMiddleware, err := newCORS(cfg.CORSOrigins)
	if err != nil {
		return nil, err
	}

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics())
	engine.Use(corsMiddleware)
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/selfie/", "/metrics"})))

	orderHandler := handlers.NewOrderHandler(facade)
	selfieHandler := handlers.NewSelfieHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)
	staticHandler := handlers.NewStaticHandler(cfg.FrontendDir)

	engine.POST("/save_order", orderHandler.Save)
	engine.POST("/save_selfie", orderHandler.SaveSelfie)
	engine.GET("/get_orders", orderHandler.List)
	engine.GET("/get_order", orderHandler.Get)
	engine.GET("/list_selfies", selfieHandler.List)
	engine.GET("/selfie/:name", selfieHandler.Get)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	engine.NoRoute(staticHandler.Serve)

	return engine, nil
}

func newCORS(origins []string) (gin.HandlerFunc, error) {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Encoding", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cors: %w", err)
	}
	return cors.New(cfg), nil
}
