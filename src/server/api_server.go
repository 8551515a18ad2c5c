package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"stock-dashboard/src/analysis"
	"stock-dashboard/src/interfaces"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
	"stock-dashboard/src/utils"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// APIServer
// -----------------------------------------------------------------------------

type APIServer struct {
	Config   *models.MConfig
	Logger   *logger.Logger
	provider interfaces.IInstrumentProvider
	analysis *analysis.AnalysisFacade
	market   *utils.MarketScheduler

	engine *gin.Engine
	http   *http.Server
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewAPIServer(
	cfg *models.MConfig,
	provider interfaces.IInstrumentProvider,
	facade *analysis.AnalysisFacade,
	market *utils.MarketScheduler,
	log *logger.Logger,
) *APIServer {
	// Set Gin mode
	if cfg.LogLevel != "DEBUG" && gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &APIServer{
		Config:   cfg,
		Logger:   log,
		provider: provider,
		analysis: facade,
		market:   market,
		engine:   gin.New(),
	}

	s.engine.Use(gin.Recovery(), requestID(), requestLogger(log), cors())
	s.setupRoutes()

	s.http = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *APIServer) setupRoutes() {
	api := s.engine.Group("/api")

	api.GET("/stocks", s.getStocks)
	api.GET("/stocks/:code", s.getStock)
	api.GET("/stocks/:code/history", s.getHistory)
	api.GET("/sectors", s.getSectors)
	api.GET("/movers", s.getMovers)
	api.GET("/market", s.getMarket)
	api.GET("/config", s.getConfig)
	api.GET("/health", s.getHealth)

	// Dashboard assets
	if s.Config.StaticDir != "" {
		s.engine.Static("/ui", s.Config.StaticDir)
		s.engine.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/ui/")
		})
	}
}

// Handler exposes the router, mostly for tests
func (s *APIServer) Handler() http.Handler {
	return s.engine
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

// Start blocks until the server stops. A clean Stop returns nil.
func (s *APIServer) Start() error {
	s.Logger.Info("Starting server on %s", s.http.Addr)

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// -----------------------------------------------------------------------------

func (s *APIServer) Stop(ctx context.Context) error {
	s.Logger.Info("Stopping HTTP server...")
	return s.http.Shutdown(ctx)
}
