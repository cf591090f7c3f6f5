package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dhanush-r-m/TradeWiz/internal/service"
	"github.com/gin-gonic/gin"
)

// GetStats handles GET /stats requests
func (h *APIHandler) GetStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.benchService.Stats(ctx))
}

// GetHistory handles GET /history requests
func (h *APIHandler) GetHistory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.benchService.History(ctx))
}

// GetSorted handles GET /sorted requests
func (h *APIHandler) GetSorted(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultTimeout)
	defer cancel()

	limit, err := h.validator.ValidateSortedLimit(c.Query("limit"))
	if err != nil {
		h.handleValidationError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.benchService.SortedOutput(ctx, limit))
}

// GetEncodedSample handles GET /encoded requests
func (h *APIHandler) GetEncodedSample(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.benchService.EncodedSample(ctx))
}

// GetStatus handles GET /status requests
func (h *APIHandler) GetStatus(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.benchService.Status(ctx))
}

// StartEngine handles POST /control/start requests
func (h *APIHandler) StartEngine(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.benchService.Start(ctx))
}

// StopEngine handles POST /control/stop requests
func (h *APIHandler) StopEngine(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.benchService.Stop(ctx))
}

// ResetEngine handles POST /control/reset requests
func (h *APIHandler) ResetEngine(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.benchService.Reset(ctx))
}

// UpdateConfig handles PUT /config requests
func (h *APIHandler) UpdateConfig(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultTimeout)
	defer cancel()

	var body service.ConfigUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		h.handleValidationError(c, err)
		return
	}

	if err := h.validator.ValidateConfigUpdate(body); err != nil {
		h.handleValidationError(c, err)
		return
	}

	status, err := h.benchService.Configure(ctx, body)
	if err != nil {
		h.handleValidationError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// HealthCheck handles GET /health requests
func (h *APIHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"service":   ServiceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   ServiceVersion,
	})
}

// handleError logs the error and sends appropriate HTTP response
func (h *APIHandler) handleError(c *gin.Context, err error, statusCode int, userMessage string) {
	requestID, exists := c.Get(RequestIDContextKey)
	requestIDStr := "unknown"
	if exists {
		if id, ok := requestID.(string); ok {
			requestIDStr = id
		}
	}

	h.logger.Error("API error",
		slog.String("request_id", requestIDStr),
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("error", err.Error()),
		slog.Int("status_code", statusCode),
	)

	c.JSON(statusCode, gin.H{
		"error":      userMessage,
		"request_id": requestIDStr,
	})
}

// handleValidationError handles validation errors specifically
func (h *APIHandler) handleValidationError(c *gin.Context, err error) {
	h.handleError(c, err, http.StatusBadRequest, err.Error())
}
