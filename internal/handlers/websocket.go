package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/inspecto/internal/common"
	"github.com/ternarybob/inspecto/internal/interfaces"
	"golang.org/x/time/rate"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// wsCommand is one inbound command frame. ID is echoed back so clients can
// correlate responses over the shared connection.
type wsCommand struct {
	ID      string          `json:"id"`
	Command string          `json:"command"`
	Params  json.RawMessage `json:"params"`
}

// wsResponse is one outbound response frame.
type wsResponse struct {
	ID      string      `json:"id,omitempty"`
	Success bool        `json:"success"`
	Result  interface{} `json:"result,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// WebSocketHandler is the command bridge: clients send JSON command frames
// and receive JSON responses over one connection.
type WebSocketHandler struct {
	resolver  interfaces.BlueprintResolver
	extractor interfaces.ExtractionService
	capture   interfaces.LogCaptureService
	config    *common.WebSocketConfig
	logger    arbor.ILogger

	mu               sync.RWMutex
	clients          map[*websocket.Conn]bool
	serverInstanceID string // Unique ID generated on startup - clients use to detect server restart
}

// NewWebSocketHandler creates the command bridge handler.
func NewWebSocketHandler(resolver interfaces.BlueprintResolver, extractor interfaces.ExtractionService, capture interfaces.LogCaptureService, config *common.WebSocketConfig, logger arbor.ILogger) *WebSocketHandler {
	h := &WebSocketHandler{
		resolver:         resolver,
		extractor:        extractor,
		capture:          capture,
		config:           config,
		logger:           logger,
		clients:          make(map[*websocket.Conn]bool),
		serverInstanceID: common.NewInstanceID(),
	}

	logger.Info().Str("server_instance_id", h.serverInstanceID).Msg("WebSocket handler initialized with server instance ID")

	return h
}

// HandleWebSocket upgrades the connection and serves command frames until
// the client disconnects. Each connection gets its own rate limiter.
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	h.logger.Debug().Str("remote", conn.RemoteAddr().String()).Msg("WebSocket client connected")

	// Greet with the instance id so reconnecting clients can detect restarts
	conn.WriteJSON(wsResponse{
		Success: true,
		Result:  map[string]string{"server_instance_id": h.serverInstanceID},
	})

	limiter := h.newLimiter()

	for {
		var cmd wsCommand
		if err := conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn().Err(err).Msg("WebSocket read error")
			}
			break
		}

		if limiter != nil && !limiter.Allow() {
			conn.WriteJSON(wsResponse{ID: cmd.ID, Success: false, Error: "Rate limit exceeded"})
			continue
		}

		conn.WriteJSON(h.dispatch(r, &cmd))
	}

	h.logger.Debug().Str("remote", conn.RemoteAddr().String()).Msg("WebSocket client disconnected")
}

func (h *WebSocketHandler) newLimiter() *rate.Limiter {
	if h.config == nil || h.config.CommandsPerSecond <= 0 {
		return nil
	}
	burst := h.config.CommandBurst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(h.config.CommandsPerSecond), burst)
}

// dispatch routes one command frame.
func (h *WebSocketHandler) dispatch(r *http.Request, cmd *wsCommand) wsResponse {
	switch cmd.Command {
	case "ping":
		return wsResponse{ID: cmd.ID, Success: true, Result: "pong"}

	case "list_blueprints":
		summaries := h.resolver.List()
		return wsResponse{ID: cmd.ID, Success: true, Result: map[string]interface{}{
			"count":      len(summaries),
			"blueprints": summaries,
		}}

	case "get_blueprint_data":
		var params struct {
			ClassName string `json:"class_name"`
		}
		if err := json.Unmarshal(cmd.Params, &params); err != nil || params.ClassName == "" {
			return wsResponse{ID: cmd.ID, Success: false, Error: "class_name parameter is required"}
		}
		doc, err := h.extractor.Extract(r.Context(), params.ClassName)
		if err != nil {
			return wsResponse{ID: cmd.ID, Success: false, Error: err.Error()}
		}
		return wsResponse{ID: cmd.ID, Success: true, Result: doc}

	case "get_console_output":
		var params struct {
			MaxEntries int    `json:"max_entries"`
			Severity   string `json:"severity"`
			Category   string `json:"category"`
		}
		if len(cmd.Params) > 0 {
			if err := json.Unmarshal(cmd.Params, &params); err != nil {
				return wsResponse{ID: cmd.ID, Success: false, Error: "Invalid parameters"}
			}
		}
		if params.MaxEntries <= 0 {
			params.MaxEntries = 100
		}
		if params.Severity == "" {
			params.Severity = interfaces.SeverityAll
		}
		entries := h.capture.Entries(params.MaxEntries, params.Severity, params.Category)
		return wsResponse{ID: cmd.ID, Success: true, Result: map[string]interface{}{
			"count":   len(entries),
			"entries": entries,
		}}

	default:
		h.logger.Debug().Str("command", cmd.Command).Msg("Unknown WebSocket command")
		return wsResponse{ID: cmd.ID, Success: false, Error: "Unknown command: " + cmd.Command}
	}
}

// ClientCount returns the number of connected clients.
func (h *WebSocketHandler) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
