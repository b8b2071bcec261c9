package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	arbor_models "github.com/ternarybob/arbor/models"
	"github.com/ternarybob/inspecto/internal/common"
	"github.com/ternarybob/inspecto/internal/services/capture"
	"github.com/ternarybob/inspecto/internal/services/extract"
	"github.com/ternarybob/inspecto/internal/services/registry"
	"github.com/ternarybob/inspecto/internal/storage/badger"
)

func main() {
	configPath := os.Getenv("INSPECTO_CONFIG")
	if configPath == "" {
		configPath = "inspecto.toml"
	}

	config, err := common.LoadFromFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Minimal logging to avoid cluttering MCP stdio
	logger := arbor.NewLogger().WithConsoleWriter(arbor_models.WriterConfiguration{
		Type:             arbor_models.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		DisableTimestamp: false,
	}).WithLevelFromString("warn")

	storageManager, err := badger.NewManager(logger, &config.Storage.Badger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize storage")
	}
	defer storageManager.Close()

	captureService := capture.NewService(config.Capture.MaxEntries, logger)

	registryService := registry.NewService(logger)
	loader := registry.NewLoader(registryService, logger)
	if _, err := loader.LoadDirectory(config.Blueprints.AssetsDir); err != nil {
		logger.Fatal().Err(err).Msg("Failed to load blueprint assets")
	}

	extractor := extract.NewService(registryService, captureService, logger)

	mcpServer := server.NewMCPServer(
		"inspecto",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(createGetBlueprintDataTool(), handleGetBlueprintData(extractor, logger))
	mcpServer.AddTool(createListBlueprintsTool(), handleListBlueprints(registryService, logger))
	mcpServer.AddTool(createListSnapshotsTool(), handleListSnapshots(storageManager.SnapshotStorage(), logger))
	mcpServer.AddTool(createGetSnapshotTool(), handleGetSnapshot(storageManager.SnapshotStorage(), logger))
	mcpServer.AddTool(createGetConsoleOutputTool(), handleGetConsoleOutput(captureService, logger))

	// Blocks on stdio
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
