package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/inspecto/internal/interfaces"
	"github.com/ternarybob/inspecto/internal/models"
)

// formatBlueprintDocument formats an extracted document as markdown with the
// full JSON payload attached.
func formatBlueprintDocument(doc *models.BlueprintDocument) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", doc.Info.Name))
	sb.WriteString(fmt.Sprintf("**Path:** %s\n", doc.Info.Path))
	sb.WriteString(fmt.Sprintf("**Parent Class:** %s\n", doc.Info.ParentClass))
	sb.WriteString(fmt.Sprintf("**Type:** %s\n\n", doc.Info.BlueprintType))

	sb.WriteString(fmt.Sprintf("**Components:** %d | **Variables:** %d | **Functions:** %d | **Event Graphs:** %d\n\n",
		len(doc.Components), len(doc.Variables), len(doc.Functions), len(doc.EventGraphs)))

	if len(doc.Functions) > 0 {
		sb.WriteString("## Functions\n\n")
		for _, fn := range doc.Functions {
			sb.WriteString(fmt.Sprintf("- **%s** (%s", fn.Name, fn.AccessSpecifier))
			if fn.IsPure {
				sb.WriteString(", pure")
			}
			sb.WriteString(fmt.Sprintf("): %d inputs, %d outputs, %d nodes\n",
				len(fn.Inputs), len(fn.Outputs), fn.Graph.NodeCount))
		}
		sb.WriteString("\n")
	}

	if len(doc.EventGraphs) > 0 {
		sb.WriteString("## Graphs\n\n")
		for _, g := range doc.EventGraphs {
			sb.WriteString(fmt.Sprintf("- **%s** (%s): %d nodes, %d connections\n",
				g.Name, g.Kind, g.NodeCount, g.ConnectionCount))
		}
		sb.WriteString("\n")
	}

	docJSON, _ := json.MarshalIndent(doc, "", "  ")
	sb.WriteString("## Document\n\n```json\n")
	sb.Write(docJSON)
	sb.WriteString("\n```\n")

	return sb.String()
}

// formatBlueprintSummaries formats the registry listing as markdown
func formatBlueprintSummaries(summaries []interfaces.BlueprintSummary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Registered Blueprints (%d)\n\n", len(summaries)))

	if len(summaries) == 0 {
		sb.WriteString("No blueprints registered.\n")
		return sb.String()
	}

	for i, s := range summaries {
		sb.WriteString(fmt.Sprintf("%d. **%s** (%s)\n", i+1, s.Name, s.Path))
		sb.WriteString(fmt.Sprintf("   Parent: %s | Graphs: %d | Components: %d | Variables: %d | Functions: %d\n\n",
			s.ParentClass, s.Graphs, s.Components, s.Variables, s.Functions))
	}

	return sb.String()
}

// formatSnapshotList formats a snapshot listing as markdown
func formatSnapshotList(blueprintName string, snapshots []*models.Snapshot) string {
	var sb strings.Builder
	if blueprintName != "" {
		sb.WriteString(fmt.Sprintf("## Snapshots for \"%s\" (%d)\n\n", blueprintName, len(snapshots)))
	} else {
		sb.WriteString(fmt.Sprintf("## Snapshots (%d)\n\n", len(snapshots)))
	}

	if len(snapshots) == 0 {
		sb.WriteString("No snapshots found.\n")
		return sb.String()
	}

	for i, snap := range snapshots {
		sb.WriteString(fmt.Sprintf("%d. **%s** (%s)\n", i+1, snap.ID, snap.BlueprintName))
		sb.WriteString(fmt.Sprintf("   Nodes: %d | Created: %s\n\n",
			snap.NodeCount, snap.CreatedAt.Format(time.RFC3339)))
	}

	return sb.String()
}

// formatSnapshot formats a single snapshot with its full document as markdown
func formatSnapshot(snap *models.Snapshot) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Snapshot %s\n\n", snap.ID))
	sb.WriteString(fmt.Sprintf("**Blueprint:** %s\n", snap.BlueprintName))
	sb.WriteString(fmt.Sprintf("**Nodes:** %d\n", snap.NodeCount))
	sb.WriteString(fmt.Sprintf("**Created:** %s\n\n", snap.CreatedAt.Format(time.RFC3339)))

	docJSON, _ := json.MarshalIndent(snap.Document, "", "  ")
	sb.WriteString("## Document\n\n```json\n")
	sb.Write(docJSON)
	sb.WriteString("\n```\n")

	return sb.String()
}

// formatConsoleOutput formats captured log entries as markdown
func formatConsoleOutput(entries []interfaces.CapturedLog) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Console Output (%d entries)\n\n", len(entries)))

	if len(entries) == 0 {
		sb.WriteString("No captured output.\n")
		return sb.String()
	}

	sb.WriteString("```\n")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("[%s] %s: %s: %s\n", e.Timestamp, e.Category, e.Severity, e.Message))
	}
	sb.WriteString("```\n")

	return sb.String()
}
