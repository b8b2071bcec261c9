package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/inspecto/internal/interfaces"
	"github.com/ternarybob/inspecto/internal/models"
)

func TestExtractHandler_ReturnsDocument(t *testing.T) {
	extractor := &stubExtractor{docs: map[string]*models.BlueprintDocument{
		"BP_Door": sampleDocument("BP_Door"),
	}}
	h := NewBlueprintHandler(&stubResolver{}, extractor, nil, false, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/blueprints/extract", strings.NewReader(`{"class_name":"BP_Door"}`))
	rec := httptest.NewRecorder()
	h.ExtractHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var doc models.BlueprintDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.True(t, doc.Success)
	assert.Equal(t, "BP_Door", doc.Info.Name)
	require.Len(t, doc.EventGraphs, 1)
	assert.Equal(t, 2, doc.EventGraphs[0].NodeCount)
}

func TestExtractHandler_NotFound(t *testing.T) {
	h := NewBlueprintHandler(&stubResolver{}, &stubExtractor{}, nil, false, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/blueprints/extract", strings.NewReader(`{"class_name":"BP_Ghost"}`))
	rec := httptest.NewRecorder()
	h.ExtractHandler(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "BP_Ghost")
}

func TestExtractHandler_BadRequests(t *testing.T) {
	h := NewBlueprintHandler(&stubResolver{}, &stubExtractor{}, nil, false, testLogger())

	rec := httptest.NewRecorder()
	h.ExtractHandler(rec, httptest.NewRequest(http.MethodPost, "/api/blueprints/extract", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.ExtractHandler(rec, httptest.NewRequest(http.MethodPost, "/api/blueprints/extract", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.ExtractHandler(rec, httptest.NewRequest(http.MethodGet, "/api/blueprints/extract", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestExtractHandler_SnapshotOnExtract(t *testing.T) {
	extractor := &stubExtractor{docs: map[string]*models.BlueprintDocument{
		"BP_Door": sampleDocument("BP_Door"),
	}}
	storage := newStubStorage()
	h := NewBlueprintHandler(&stubResolver{}, extractor, storage, true, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/blueprints/extract", strings.NewReader(`{"class_name":"BP_Door"}`))
	rec := httptest.NewRecorder()
	h.ExtractHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, storage.saved, 1)
	assert.Equal(t, "BP_Door", storage.saved[0].BlueprintName)
	assert.Equal(t, 2, storage.saved[0].NodeCount)
}

func TestListHandler_ReturnsSummaries(t *testing.T) {
	resolver := &stubResolver{summaries: []interfaces.BlueprintSummary{
		{Name: "BP_Door", ParentClass: "Actor"},
		{Name: "BP_Lamp", ParentClass: "Actor"},
	}}
	h := NewBlueprintHandler(resolver, &stubExtractor{}, nil, false, testLogger())

	rec := httptest.NewRecorder()
	h.ListHandler(rec, httptest.NewRequest(http.MethodGet, "/api/blueprints", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Success    bool                          `json:"success"`
		Count      int                           `json:"count"`
		Blueprints []interfaces.BlueprintSummary `json:"blueprints"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Count)
	require.Len(t, body.Blueprints, 2)
	assert.Equal(t, "BP_Door", body.Blueprints[0].Name)
}
