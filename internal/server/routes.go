package server

func (s *Server) registerRoutes() {
	// WebSocket command bridge
	s.router.HandleFunc("/ws", s.app.WSHandler.HandleWebSocket)

	// Blueprint endpoints
	s.router.HandleFunc("/api/blueprints", s.app.BlueprintHandler.ListHandler)
	s.router.HandleFunc("/api/blueprints/extract", s.app.BlueprintHandler.ExtractHandler)

	// Snapshot endpoints
	s.router.HandleFunc("/api/snapshots", s.app.SnapshotHandler.ListHandler)
	s.router.HandleFunc("/api/snapshots/", s.app.SnapshotHandler.GetHandler)

	// Log capture
	s.router.HandleFunc("/api/logs/console", s.app.LogsHandler.ConsoleHandler)

	// Status endpoints
	s.router.HandleFunc("/api/status", s.app.StatusHandler.GetStatusHandler)
	s.router.HandleFunc("/api/version", s.app.StatusHandler.VersionHandler)
	s.router.HandleFunc("/api/health", s.app.StatusHandler.HealthHandler)
}
