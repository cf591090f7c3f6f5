package api

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/dhanush-r-m/TradeWiz/internal/model"
	"github.com/dhanush-r-m/TradeWiz/internal/service"
	"github.com/gin-gonic/gin"
)

// This file serves as the main entry point for the API package. It defines the APIHandler struct and its dependencies.
// The actual implementation of the HTTP handlers, routing, server management, middleware, and validation are organized into separate files for better maintainability.
// The package structure is as follows:
// - api.go: Main API handler and dependencies (this file)
// - handler.go: HTTP request handlers
// - middleware.go: Middleware functions
// - validator.go: Request validation

// Constants
const (
	DefaultTimeout      = 30 * time.Second
	ServiceVersion      = "1.0.0"
	ServiceName         = "trade-sort-bench"
	RequestIDContextKey = "request_id"
	RequestIDHeaderKey  = "X-Request-ID"
)

// BenchService is the engine facade the API talks to.
type BenchService interface {
	Stats(ctx context.Context) model.RunStatistics
	History(ctx context.Context) []model.PerformanceSample
	SortedOutput(ctx context.Context, limit int) []model.Transaction
	EncodedSample(ctx context.Context) []model.EncodedTransaction
	Status(ctx context.Context) service.EngineStatus
	Start(ctx context.Context) service.EngineStatus
	Stop(ctx context.Context) service.EngineStatus
	Reset(ctx context.Context) service.EngineStatus
	Configure(ctx context.Context, update service.ConfigUpdate) (service.EngineStatus, error)
}

// APIHandler handles HTTP requests using Gin framework
type APIHandler struct {
	benchService BenchService
	validator    *Validator
	logger       *slog.Logger
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(benchService BenchService, logger *slog.Logger) *APIHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &APIHandler{
		benchService: benchService,
		validator:    GetValidator(),
		logger:       logger,
	}
}

// StartServer starts the HTTP server
func (h *APIHandler) StartServer(port int) error {
	router := h.SetupRoutes()
	return router.Run(":" + strconv.Itoa(port))
}

// SetupRoutes configures all API routes
func (h *APIHandler) SetupRoutes() *gin.Engine {
	// Set Gin to release mode for production
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Add middleware
	router.Use(requestIDMiddleware())
	router.Use(ginLoggerMiddleware())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Query routes
	router.GET("/stats", h.GetStats)
	router.GET("/history", h.GetHistory)
	router.GET("/sorted", h.GetSorted)
	router.GET("/encoded", h.GetEncodedSample)
	router.GET("/status", h.GetStatus)
	router.GET("/health", h.HealthCheck)

	// Command routes
	router.POST("/control/start", h.StartEngine)
	router.POST("/control/stop", h.StopEngine)
	router.POST("/control/reset", h.ResetEngine)
	router.PUT("/config", h.UpdateConfig)

	return router
}
