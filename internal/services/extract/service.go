// Package extract is the blueprint introspection engine: it walks a live
// blueprint's graphs, component tree and variable declarations and
// assembles a fully materialized document for consumers with no access to
// the live model.
//
// Extraction is single-threaded, synchronous and read-only. It never
// mutates the model and holds no state between calls; the caller guarantees
// the model is not mutated concurrently for the duration of one Extract.
// Malformed elements (nil nodes, pins or templates) are skipped and logged,
// never surfaced; only a failed lookup is a hard error.
package extract

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/inspecto/internal/blueprint"
	"github.com/ternarybob/inspecto/internal/interfaces"
	"github.com/ternarybob/inspecto/internal/models"
)

const captureCategory = "Introspection"

// Service assembles blueprint documents. The resolver and capture device are
// injected collaborators; capture may be nil.
type Service struct {
	resolver interfaces.BlueprintResolver
	capture  interfaces.LogCaptureService
	logger   arbor.ILogger
}

// NewService creates an extraction service.
func NewService(resolver interfaces.BlueprintResolver, capture interfaces.LogCaptureService, logger arbor.ILogger) *Service {
	return &Service{
		resolver: resolver,
		capture:  capture,
		logger:   logger,
	}
}

// Extract resolves name to a blueprint and assembles its document. The
// returned document is fresh and never mutated afterwards. Returns
// interfaces.ErrBlueprintNotFound (wrapped with the requested name) when the
// resolver knows no such blueprint.
func (s *Service) Extract(ctx context.Context, name string) (*models.BlueprintDocument, error) {
	bp, err := s.resolver.Find(name)
	if err != nil {
		s.logger.Warn().Str("blueprint", name).Msg("Blueprint lookup failed")
		return nil, fmt.Errorf("%w: %s", interfaces.ErrBlueprintNotFound, name)
	}

	s.logger.Info().Str("blueprint", bp.Name).Msg("Extracting blueprint data")
	s.diag(interfaces.SeverityDisplay, fmt.Sprintf("Extracting blueprint data for %s", bp.Name))

	doc := &models.BlueprintDocument{
		Success:     true,
		Info:        extractInfo(bp),
		Components:  s.extractComponents(bp),
		Variables:   s.extractVariables(bp),
		Functions:   s.extractFunctions(bp),
		EventGraphs: s.extractEventGraphs(bp),
	}

	s.logger.Info().
		Str("blueprint", bp.Name).
		Int("components", len(doc.Components)).
		Int("variables", len(doc.Variables)).
		Int("functions", len(doc.Functions)).
		Int("event_graphs", len(doc.EventGraphs)).
		Msg("Blueprint extraction complete")

	return doc, nil
}

// extractInfo builds the metadata block.
func extractInfo(bp *blueprint.Blueprint) models.BlueprintInfo {
	parent := "None"
	if bp.ParentClass != "" {
		parent = bp.ParentClass
	}

	bpType := bp.Type
	if bpType == "" {
		bpType = blueprint.TypeNormal
	}

	return models.BlueprintInfo{
		Name:          bp.Name,
		Path:          bp.Path,
		ParentClass:   parent,
		BlueprintType: string(bpType),
		Description:   bp.Description,
		Category:      bp.Category,
		Package:       bp.Package,
	}
}

// extractEventGraphs emits one GraphDocument per auto-generated top-level
// graph, then the construction script when the blueprint has one.
func (s *Service) extractEventGraphs(bp *blueprint.Blueprint) []models.GraphDocument {
	docs := make([]models.GraphDocument, 0, len(bp.EventGraphs)+1)

	for _, g := range bp.EventGraphs {
		if g == nil {
			continue
		}
		s.logger.Debug().Str("graph", g.Name).Int("nodes", len(g.Nodes)).Msg("Extracting event graph")
		docs = append(docs, s.extractGraph(g, models.GraphKindEventGraph))
	}

	if cs := bp.ConstructionScript(); cs != nil {
		s.logger.Debug().Str("graph", cs.Name).Int("nodes", len(cs.Nodes)).Msg("Extracting construction script")
		docs = append(docs, s.extractGraph(cs, models.GraphKindConstructionScript))
	}

	return docs
}

// diag mirrors a diagnostic record into the capture device so skip
// decisions stay observable without being surfaced to the caller.
func (s *Service) diag(severity, message string) {
	if s.capture != nil {
		s.capture.Capture(captureCategory, severity, message)
	}
}
