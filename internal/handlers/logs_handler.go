package handlers

import (
	"net/http"
	"strconv"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/inspecto/internal/interfaces"
)

// LogsHandler exposes the console capture ring buffer.
type LogsHandler struct {
	capture interfaces.LogCaptureService
	logger  arbor.ILogger
}

// NewLogsHandler creates a logs handler.
func NewLogsHandler(capture interfaces.LogCaptureService, logger arbor.ILogger) *LogsHandler {
	return &LogsHandler{
		capture: capture,
		logger:  logger,
	}
}

// ConsoleHandler returns recent captured console output, oldest first.
// GET /api/logs/console?max_entries=100&severity=Warning&category=Blueprint
func (h *LogsHandler) ConsoleHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	maxEntries := 100
	if maxStr := r.URL.Query().Get("max_entries"); maxStr != "" {
		if m, err := strconv.Atoi(maxStr); err == nil && m > 0 {
			maxEntries = m
		}
	}

	severity := r.URL.Query().Get("severity")
	if severity == "" {
		severity = interfaces.SeverityAll
	}
	category := r.URL.Query().Get("category")

	entries := h.capture.Entries(maxEntries, severity, category)

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(entries),
		"entries": entries,
	})
}
