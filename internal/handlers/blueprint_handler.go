package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/inspecto/internal/interfaces"
	"github.com/ternarybob/inspecto/internal/models"
)

// BlueprintHandler serves blueprint listing and extraction requests.
type BlueprintHandler struct {
	resolver  interfaces.BlueprintResolver
	extractor interfaces.ExtractionService
	storage   interfaces.SnapshotStorage
	snapshot  bool
	logger    arbor.ILogger
}

// NewBlueprintHandler creates a blueprint handler. storage may be nil when
// snapshot-on-extract is disabled.
func NewBlueprintHandler(resolver interfaces.BlueprintResolver, extractor interfaces.ExtractionService, storage interfaces.SnapshotStorage, snapshotOnExtract bool, logger arbor.ILogger) *BlueprintHandler {
	return &BlueprintHandler{
		resolver:  resolver,
		extractor: extractor,
		storage:   storage,
		snapshot:  snapshotOnExtract,
		logger:    logger,
	}
}

// ListHandler returns summaries of every registered blueprint.
// GET /api/blueprints
func (h *BlueprintHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	summaries := h.resolver.List()
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"count":      len(summaries),
		"blueprints": summaries,
	})
}

type extractRequest struct {
	ClassName string `json:"class_name"`
}

// ExtractHandler extracts the full document for one blueprint.
// POST /api/blueprints/extract {"class_name": "BP_Door"}
func (h *BlueprintHandler) ExtractHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ClassName == "" {
		WriteError(w, http.StatusBadRequest, "class_name is required")
		return
	}

	doc, err := h.extractor.Extract(r.Context(), req.ClassName)
	if err != nil {
		if errors.Is(err, interfaces.ErrBlueprintNotFound) {
			WriteJSON(w, http.StatusNotFound, map[string]interface{}{
				"success": false,
				"message": fmt.Sprintf("Blueprint not found: %s", req.ClassName),
			})
			return
		}
		h.logger.Error().Err(err).Str("blueprint", req.ClassName).Msg("Extraction failed")
		WriteError(w, http.StatusInternalServerError, "Extraction failed")
		return
	}

	if h.snapshot && h.storage != nil {
		snap := &models.Snapshot{BlueprintName: req.ClassName, Document: doc}
		snap.NodeCount = snap.TotalNodes()
		if err := h.storage.SaveSnapshot(snap); err != nil {
			h.logger.Warn().Err(err).Str("blueprint", req.ClassName).Msg("Failed to persist extraction snapshot")
		}
	}

	WriteJSON(w, http.StatusOK, doc)
}
