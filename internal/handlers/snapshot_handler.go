package handlers

import (
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/inspecto/internal/interfaces"
)

// SnapshotHandler serves the persisted extraction history.
type SnapshotHandler struct {
	storage interfaces.SnapshotStorage
	logger  arbor.ILogger
}

// NewSnapshotHandler creates a snapshot handler.
func NewSnapshotHandler(storage interfaces.SnapshotStorage, logger arbor.ILogger) *SnapshotHandler {
	return &SnapshotHandler{
		storage: storage,
		logger:  logger,
	}
}

// ListHandler lists snapshots, newest first.
// GET /api/snapshots?blueprint=BP_Door&limit=10
// DELETE /api/snapshots?blueprint=BP_Door
func (h *SnapshotHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodDelete:
		h.deleteByBlueprint(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *SnapshotHandler) list(w http.ResponseWriter, r *http.Request) {
	blueprintName := r.URL.Query().Get("blueprint")
	limit := GetLimitParam(r, 50)

	snaps, err := h.storage.ListSnapshots(blueprintName, limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list snapshots")
		WriteError(w, http.StatusInternalServerError, "Failed to list snapshots")
		return
	}

	// Listing omits the documents; they are fetched individually by id.
	type listEntry struct {
		ID            string `json:"id"`
		BlueprintName string `json:"blueprint_name"`
		NodeCount     int    `json:"node_count"`
		CreatedAt     string `json:"created_at"`
	}
	entries := make([]listEntry, 0, len(snaps))
	for _, s := range snaps {
		entries = append(entries, listEntry{
			ID:            s.ID,
			BlueprintName: s.BlueprintName,
			NodeCount:     s.NodeCount,
			CreatedAt:     s.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"count":     len(entries),
		"snapshots": entries,
	})
}

func (h *SnapshotHandler) deleteByBlueprint(w http.ResponseWriter, r *http.Request) {
	blueprintName := r.URL.Query().Get("blueprint")
	if blueprintName == "" {
		WriteError(w, http.StatusBadRequest, "blueprint query parameter is required")
		return
	}

	deleted, err := h.storage.DeleteSnapshots(blueprintName)
	if err != nil {
		h.logger.Error().Err(err).Str("blueprint", blueprintName).Msg("Failed to delete snapshots")
		WriteError(w, http.StatusInternalServerError, "Failed to delete snapshots")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": deleted,
	})
}

// GetHandler returns one snapshot with its full document.
// GET /api/snapshots/{id}
func (h *SnapshotHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/snapshots/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, http.StatusBadRequest, "Invalid snapshot id")
		return
	}

	snap, err := h.storage.GetSnapshot(id)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Snapshot not found")
		return
	}

	WriteJSON(w, http.StatusOK, snap)
}
