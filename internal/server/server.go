// Package server exposes the Sahayak HTTP API: mock auth, artifact
// generation and retrieval, and the single-page app shell.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sahayak-project/sahayak-backend/internal/ai"
	"github.com/sahayak-project/sahayak-backend/internal/config"
	"github.com/sahayak-project/sahayak-backend/internal/store"
)

// Version reported by the health endpoint
const Version = "2.0.0"

// DefaultUserID is attached to generation requests that carry no userId.
// Unauthenticated demo traffic is allowed by design.
const DefaultUserID = "demo-user"

// Server wires the record store and the generation service to the HTTP API
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *store.Store
	ai     ai.Service
	router *gin.Engine
}

// New assembles the router with all API routes and the SPA fallback
func New(cfg *config.Config, logger *slog.Logger, st *store.Store, svc ai.Service) *Server {
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	s := &Server{
		cfg:    cfg,
		logger: logger,
		store:  st,
		ai:     svc,
		router: router,
	}
	s.registerRoutes()
	return s
}

// Router returns the HTTP handler, mainly for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Run serves HTTP until the context is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    ":" + s.cfg.Port,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info("api server listening", "port", s.cfg.Port, "ai_provider", s.cfg.AIProvider)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api")

	api.POST("/auth/register", s.handleRegister)
	api.POST("/auth/login", s.handleLogin)
	api.POST("/auth/logout", s.handleLogout)

	api.POST("/generate-content", s.handleGenerateContent)
	api.POST("/generate-worksheet", s.handleGenerateWorksheet)
	api.POST("/generate-visual-aid", s.handleGenerateVisualAid)
	api.POST("/process-voice-assessment", s.handleVoiceAssessment)
	api.POST("/analyze-image", s.handleAnalyzeImage)
	api.POST("/process-video", s.handleProcessVideo)

	api.GET("/user/:userId/content", s.handleUserContent)
	api.GET("/user/:userId/worksheets", s.handleUserWorksheets)
	api.GET("/user/:userId/stats", s.handleUserStats)

	api.GET("/health", s.handleHealth)

	// Everything outside /api is the single-page app
	s.router.NoRoute(s.handleStatic)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"message":   "Sahayak API is running",
		"timestamp": time.Now(),
		"version":   Version,
	})
}

// handleStatic serves SPA assets. Unknown /api paths get a JSON 404; unknown
// app paths fall back to the index document for client-side routing.
func (s *Server) handleStatic(c *gin.Context) {
	reqPath := c.Request.URL.Path
	if reqPath == "/api" || strings.HasPrefix(reqPath, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
		return
	}

	candidate := filepath.Join(s.cfg.StaticDir, filepath.Clean("/"+reqPath))
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		c.File(candidate)
		return
	}

	c.File(filepath.Join(s.cfg.StaticDir, "index.html"))
}
