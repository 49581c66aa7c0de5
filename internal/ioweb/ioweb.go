// Package ioweb is the web front end of GNlineage. It serves an HTML
// form, a JSON API and Prometheus metrics.
package ioweb

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	gnlineage "github.com/gnames/gnlineage/pkg"
	"github.com/gnames/gnlineage/pkg/config"
	"github.com/gnames/gnlineage/pkg/lineage"
	"github.com/gnames/gnlineage/pkg/templates"
)

const (
	// MaxQueries limits the number of names in one request.
	MaxQueries = 1_000

	shutdownTimeout = 5 * time.Second
)

// Server handles web requests against one taxonomy dump.
type Server struct {
	cfg     *config.Config
	finder  *cachedFinder
	metrics *metrics
	page    *template.Template
	router  *gin.Engine
}

// New creates a server on top of a lineage finder, usually a
// lineage.Resolver.
func New(cfg *config.Config, f lineage.Finder) (*Server, error) {
	page, err := template.New("index").Parse(templates.IndexHTML)
	if err != nil {
		return nil, err
	}

	m := newMetrics()
	cf, err := newCachedFinder(f, cfg.Server.CacheSize, m)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     cfg,
		finder:  cf,
		metrics: m,
		page:    page,
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), m.middleware())
	s.setupRoutes(router)
	s.router = router
	return s, nil
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured port until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		slog.Info("Starting web server", "addr", addr)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return ServerError(addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Stopping web server", "addr", addr)
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(), shutdownTimeout,
	)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return ServerError(addr, err)
	}
	return nil
}

func (s *Server) setupRoutes(router *gin.Engine) {
	router.GET("/", s.formHandler)
	router.POST("/", s.formSubmitHandler)

	api := router.Group("/api/v1")
	{
		api.GET("/ping", pingHandler)
		api.GET("/version", versionHandler)
		api.GET("/lineage", s.lineageGetHandler)
		api.POST("/lineage", s.lineagePostHandler)
	}

	router.GET("/metrics", gin.WrapH(
		promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}),
	))
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

func pingHandler(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

func versionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": gnlineage.Version,
		"build":   gnlineage.Build,
	})
}
