package app

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/inspecto/internal/common"
	"github.com/ternarybob/inspecto/internal/handlers"
	"github.com/ternarybob/inspecto/internal/interfaces"
	"github.com/ternarybob/inspecto/internal/services/capture"
	"github.com/ternarybob/inspecto/internal/services/extract"
	"github.com/ternarybob/inspecto/internal/services/registry"
	"github.com/ternarybob/inspecto/internal/services/scheduler"
	"github.com/ternarybob/inspecto/internal/storage/badger"
)

// App wires configuration, services, storage and handlers together.
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	StorageManager interfaces.StorageManager
	Registry       *registry.Service
	Capture        interfaces.LogCaptureService
	Extractor      interfaces.ExtractionService
	Scheduler      *scheduler.Service

	BlueprintHandler *handlers.BlueprintHandler
	SnapshotHandler  *handlers.SnapshotHandler
	LogsHandler      *handlers.LogsHandler
	StatusHandler    *handlers.StatusHandler
	WSHandler        *handlers.WebSocketHandler
}

// New builds the application: storage first, then services, then handlers.
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	if logger == nil {
		logger = common.GetLogger()
	}

	a := &App{
		Config: cfg,
		Logger: logger,
	}

	storageManager, err := badger.NewManager(logger, &cfg.Storage.Badger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.StorageManager = storageManager

	a.Capture = capture.NewService(cfg.Capture.MaxEntries, logger)
	a.Registry = registry.NewService(logger)

	loader := registry.NewLoader(a.Registry, logger)
	loaded, err := loader.LoadDirectory(cfg.Blueprints.AssetsDir)
	if err != nil {
		storageManager.Close()
		return nil, fmt.Errorf("failed to load blueprint assets: %w", err)
	}
	logger.Info().Int("blueprints", loaded).Msg("Blueprint registry initialized")

	extractor := extract.NewService(a.Registry, a.Capture, logger)
	a.Extractor = extractor

	a.Scheduler = scheduler.NewService(&cfg.Snapshots, a.Registry, extractor, storageManager.SnapshotStorage(), logger)

	a.BlueprintHandler = handlers.NewBlueprintHandler(a.Registry, extractor, storageManager.SnapshotStorage(), cfg.Snapshots.SnapshotOnExtract, logger)
	a.SnapshotHandler = handlers.NewSnapshotHandler(storageManager.SnapshotStorage(), logger)
	a.LogsHandler = handlers.NewLogsHandler(a.Capture, logger)
	a.WSHandler = handlers.NewWebSocketHandler(a.Registry, extractor, a.Capture, &cfg.WebSocket, logger)
	a.StatusHandler = handlers.NewStatusHandler(a.Registry, storageManager.SnapshotStorage(), a.Capture, a.WSHandler, logger)

	return a, nil
}

// Start launches background services.
func (a *App) Start() error {
	if err := a.Scheduler.Start(); err != nil {
		return err
	}
	return nil
}

// Close stops background services and releases storage.
func (a *App) Close() error {
	a.Logger.Info().Msg("Shutting down application")

	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.StorageManager != nil {
		if err := a.StorageManager.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close storage manager")
			return err
		}
	}

	return nil
}
