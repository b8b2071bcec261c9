package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createGetBlueprintDataTool returns the get_blueprint_data tool definition
func createGetBlueprintDataTool() mcp.Tool {
	return mcp.NewTool("get_blueprint_data",
		mcp.WithDescription("Extract the full definition of a Blueprint class: metadata, components, variables, functions and event graphs"),
		mcp.WithString("class_name",
			mcp.Required(),
			mcp.Description("Blueprint class name (e.g. BP_Door) or asset path"),
		),
	)
}

// createListBlueprintsTool returns the list_blueprints tool definition
func createListBlueprintsTool() mcp.Tool {
	return mcp.NewTool("list_blueprints",
		mcp.WithDescription("List all registered Blueprint classes with summary counts"),
	)
}

// createListSnapshotsTool returns the list_snapshots tool definition
func createListSnapshotsTool() mcp.Tool {
	return mcp.NewTool("list_snapshots",
		mcp.WithDescription("List stored Blueprint snapshots, newest first"),
		mcp.WithString("blueprint_name",
			mcp.Description("Filter by Blueprint class name"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum results to return (default: 20)"),
		),
	)
}

// createGetSnapshotTool returns the get_snapshot tool definition
func createGetSnapshotTool() mcp.Tool {
	return mcp.NewTool("get_snapshot",
		mcp.WithDescription("Retrieve a stored snapshot by its unique ID, including the full extracted document"),
		mcp.WithString("snapshot_id",
			mcp.Required(),
			mcp.Description("Snapshot ID (format: snap_{uuid})"),
		),
	)
}

// createGetConsoleOutputTool returns the get_console_output tool definition
func createGetConsoleOutputTool() mcp.Tool {
	return mcp.NewTool("get_console_output",
		mcp.WithDescription("Read captured log output, optionally filtered by severity or category"),
		mcp.WithNumber("max_entries",
			mcp.Description("Maximum entries to return (default: 100)"),
		),
		mcp.WithString("severity",
			mcp.Description("Filter: Error, Warning, Display"),
		),
		mcp.WithString("category",
			mcp.Description("Case-insensitive substring match on log category"),
		),
	)
}
