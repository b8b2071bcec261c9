package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/inspecto/internal/interfaces"
)

// handleGetBlueprintData implements the get_blueprint_data tool
func handleGetBlueprintData(extractor interfaces.ExtractionService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		className, err := request.RequireString("class_name")
		if err != nil || className == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: class_name parameter is required"),
				},
			}, nil
		}

		doc, err := extractor.Extract(ctx, className)
		if err != nil {
			if errors.Is(err, interfaces.ErrBlueprintNotFound) {
				return &mcp.CallToolResult{
					Content: []mcp.Content{
						mcp.NewTextContent(fmt.Sprintf("Blueprint not found: %s", className)),
					},
				}, nil
			}
			logger.Error().Err(err).Str("class_name", className).Msg("Extraction failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Extraction error: %v", err)),
				},
			}, nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(formatBlueprintDocument(doc)),
			},
		}, nil
	}
}

// handleListBlueprints implements the list_blueprints tool
func handleListBlueprints(resolver interfaces.BlueprintResolver, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summaries := resolver.List()
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(formatBlueprintSummaries(summaries)),
			},
		}, nil
	}
}

// handleListSnapshots implements the list_snapshots tool
func handleListSnapshots(storage interfaces.SnapshotStorage, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		blueprintName := request.GetString("blueprint_name", "")
		limit := request.GetInt("limit", 20)

		snapshots, err := storage.ListSnapshots(blueprintName, limit)
		if err != nil {
			logger.Error().Err(err).Msg("List snapshots failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("List error: %v", err)),
				},
			}, nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(formatSnapshotList(blueprintName, snapshots)),
			},
		}, nil
	}
}

// handleGetSnapshot implements the get_snapshot tool
func handleGetSnapshot(storage interfaces.SnapshotStorage, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		snapshotID, err := request.RequireString("snapshot_id")
		if err != nil || snapshotID == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: snapshot_id parameter is required"),
				},
			}, nil
		}

		snapshot, err := storage.GetSnapshot(snapshotID)
		if err != nil {
			logger.Error().Err(err).Str("snapshot_id", snapshotID).Msg("Get snapshot failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Snapshot not found: %v", err)),
				},
			}, nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(formatSnapshot(snapshot)),
			},
		}, nil
	}
}

// handleGetConsoleOutput implements the get_console_output tool
func handleGetConsoleOutput(capture interfaces.LogCaptureService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		maxEntries := request.GetInt("max_entries", 100)
		severity := request.GetString("severity", interfaces.SeverityAll)
		category := request.GetString("category", "")

		entries := capture.Entries(maxEntries, severity, category)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(formatConsoleOutput(entries)),
			},
		}, nil
	}
}
