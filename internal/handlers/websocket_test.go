package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/inspecto/internal/common"
	"github.com/ternarybob/inspecto/internal/interfaces"
	"github.com/ternarybob/inspecto/internal/models"
)

func newTestBridge(config *common.WebSocketConfig) *WebSocketHandler {
	resolver := &stubResolver{summaries: []interfaces.BlueprintSummary{{Name: "BP_Door"}}}
	extractor := &stubExtractor{docs: map[string]*models.BlueprintDocument{
		"BP_Door": sampleDocument("BP_Door"),
	}}
	capture := &stubCapture{}
	capture.Capture("LogTemp", interfaces.SeverityDisplay, "hello")
	return NewWebSocketHandler(resolver, extractor, capture, config, testLogger())
}

func dialBridge(t *testing.T, h *WebSocketHandler) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(h.HandleWebSocket))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// Discard the greeting frame carrying the server instance id
	var greeting wsResponse
	require.NoError(t, conn.ReadJSON(&greeting))
	require.True(t, greeting.Success)

	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, frame string) map[string]interface{} {
	t.Helper()
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(frame)))
	var resp map[string]interface{}
	require.NoError(t, conn.ReadJSON(&resp))
	return resp
}

func TestWebSocket_Ping(t *testing.T) {
	conn := dialBridge(t, newTestBridge(nil))

	resp := roundTrip(t, conn, `{"id":"1","command":"ping"}`)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "pong", resp["result"])
	assert.Equal(t, "1", resp["id"])
}

func TestWebSocket_ListBlueprints(t *testing.T) {
	conn := dialBridge(t, newTestBridge(nil))

	resp := roundTrip(t, conn, `{"id":"2","command":"list_blueprints"}`)
	require.Equal(t, true, resp["success"])
	result := resp["result"].(map[string]interface{})
	assert.Equal(t, float64(1), result["count"])
}

func TestWebSocket_GetBlueprintData(t *testing.T) {
	conn := dialBridge(t, newTestBridge(nil))

	resp := roundTrip(t, conn, `{"id":"3","command":"get_blueprint_data","params":{"class_name":"BP_Door"}}`)
	require.Equal(t, true, resp["success"])
	result := resp["result"].(map[string]interface{})
	info := result["blueprint_info"].(map[string]interface{})
	assert.Equal(t, "BP_Door", info["name"])

	resp = roundTrip(t, conn, `{"id":"4","command":"get_blueprint_data","params":{"class_name":"BP_Ghost"}}`)
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["error"], "BP_Ghost")

	resp = roundTrip(t, conn, `{"id":"5","command":"get_blueprint_data","params":{}}`)
	assert.Equal(t, false, resp["success"])
}

func TestWebSocket_GetConsoleOutput(t *testing.T) {
	conn := dialBridge(t, newTestBridge(nil))

	resp := roundTrip(t, conn, `{"id":"6","command":"get_console_output"}`)
	require.Equal(t, true, resp["success"])
	result := resp["result"].(map[string]interface{})
	assert.Equal(t, float64(1), result["count"])
}

func TestWebSocket_UnknownCommand(t *testing.T) {
	conn := dialBridge(t, newTestBridge(nil))

	resp := roundTrip(t, conn, `{"id":"7","command":"teleport"}`)
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["error"], "teleport")
}

func TestWebSocket_RateLimit(t *testing.T) {
	config := &common.WebSocketConfig{CommandsPerSecond: 0.001, CommandBurst: 1}
	conn := dialBridge(t, newTestBridge(config))

	first := roundTrip(t, conn, `{"id":"a","command":"ping"}`)
	assert.Equal(t, true, first["success"])

	second := roundTrip(t, conn, `{"id":"b","command":"ping"}`)
	assert.Equal(t, false, second["success"])
	assert.Contains(t, second["error"], "Rate limit")
}
