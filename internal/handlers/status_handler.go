package handlers

import (
	"net/http"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/inspecto/internal/common"
	"github.com/ternarybob/inspecto/internal/interfaces"
)

// StatusHandler serves health, version and application status.
type StatusHandler struct {
	resolver  interfaces.BlueprintResolver
	storage   interfaces.SnapshotStorage
	capture   interfaces.LogCaptureService
	bridge    *WebSocketHandler
	logger    arbor.ILogger
	startedAt time.Time
}

// NewStatusHandler creates a status handler. bridge may be nil when no
// WebSocket endpoint is served.
func NewStatusHandler(resolver interfaces.BlueprintResolver, storage interfaces.SnapshotStorage, capture interfaces.LogCaptureService, bridge *WebSocketHandler, logger arbor.ILogger) *StatusHandler {
	return &StatusHandler{
		resolver:  resolver,
		storage:   storage,
		capture:   capture,
		bridge:    bridge,
		logger:    logger,
		startedAt: time.Now(),
	}
}

// HealthHandler is the liveness probe.
// GET /api/health
func (h *StatusHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteSuccess(w, "healthy")
}

// VersionHandler returns build information.
// GET /api/version
func (h *StatusHandler) VersionHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// GetStatusHandler returns application counters.
// GET /api/status
func (h *StatusHandler) GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	snapshots := 0
	if h.storage != nil {
		if count, err := h.storage.CountSnapshots(); err == nil {
			snapshots = count
		} else {
			h.logger.Warn().Err(err).Msg("Failed to count snapshots for status")
		}
	}

	captured := 0
	if h.capture != nil {
		captured = h.capture.Count()
	}

	wsClients := 0
	if h.bridge != nil {
		wsClients = h.bridge.ClientCount()
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"version":        common.GetVersion(),
		"uptime_seconds": int(time.Since(h.startedAt).Seconds()),
		"blueprints":     h.resolver.Count(),
		"snapshots":      snapshots,
		"captured_logs":  captured,
		"ws_clients":     wsClients,
	})
}
