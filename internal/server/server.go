// Package server exposes the projection engine over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rpgo/pac-simulator/internal/calculation"
	"github.com/rpgo/pac-simulator/internal/config"
	"github.com/rpgo/pac-simulator/internal/i18n"
)

const shutdownTimeout = 5 * time.Second

// Server wires the HTTP routes to the calculation engine.
type Server struct {
	cfg    config.ServerConfig
	engine *calculation.CalculationEngine
	bundle *i18n.Bundle
	parser *config.InputParser
	router *gin.Engine
}

// New builds a server with its routes registered.
func New(cfg config.ServerConfig, engine *calculation.CalculationEngine) *Server {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	s := &Server{
		cfg:    cfg,
		engine: engine,
		bundle: i18n.Default(),
		parser: config.NewInputParser(),
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(corsConfig(s.cfg.AllowedOrigins)))

	r.GET("/healthz", s.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/report", s.report)

	api := r.Group("/api/v1")
	{
		api.GET("/projection", s.projection)
		api.POST("/projection", s.projection)
		api.POST("/compare", s.compare)
		api.GET("/presets", s.presets)
	}
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept-Language"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.engine.Logger.Infof("listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.engine.Logger.Infof("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// localizer resolves the request language: ?lang first, then Accept-Language,
// then the configured default.
func (s *Server) localizer(c *gin.Context) *i18n.Localizer {
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return s.bundle.Localizer(lang)
	}
	if accept := strings.TrimSpace(c.GetHeader("Accept-Language")); accept != "" {
		return s.bundle.Localizer(accept)
	}
	return s.bundle.Localizer(s.cfg.DefaultLanguage)
}
