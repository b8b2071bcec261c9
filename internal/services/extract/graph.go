package extract

import (
	"fmt"

	"github.com/ternarybob/inspecto/internal/blueprint"
	"github.com/ternarybob/inspecto/internal/interfaces"
	"github.com/ternarybob/inspecto/internal/models"
)

// extractGraph materializes one graph document. Summary counts are derived
// from the materialized arrays so the document stays internally consistent
// even when the live model's own counters are stale.
func (s *Service) extractGraph(g *blueprint.Graph, kind string) models.GraphDocument {
	doc := models.GraphDocument{
		Name:        g.Name,
		Kind:        kind,
		Nodes:       []models.NodeDoc{},
		Connections: []models.ConnectionDoc{},
	}

	index := s.buildNodeIndex(g)

	for _, n := range g.Nodes {
		if n == nil {
			continue
		}
		doc.Nodes = append(doc.Nodes, s.extractNode(n))
	}

	doc.Connections = s.reduceConnections(g, index)
	doc.NodeCount = len(doc.Nodes)
	doc.ConnectionCount = len(doc.Connections)

	return doc
}

// buildNodeIndex maps each node's identity to its position ordinal in
// traversal order. Nil entries are skipped; a duplicated identity is
// last-write-wins. The index is internal bookkeeping only: documents always
// carry the original identities.
func (s *Service) buildNodeIndex(g *blueprint.Graph) map[string]int {
	index := make(map[string]int, len(g.Nodes))
	ordinal := 0
	for _, n := range g.Nodes {
		if n == nil {
			continue
		}
		if _, dup := index[n.ID()]; dup {
			s.logger.Warn().Str("graph", g.Name).Str("node", n.ID()).Msg("Duplicate node identity in graph")
			s.diag(interfaces.SeverityWarning, fmt.Sprintf("Duplicate node identity %s in graph %s", n.ID(), g.Name))
		}
		index[n.ID()] = ordinal
		ordinal++
	}
	return index
}

// extractNode captures one node: identity, runtime type, placement,
// semantic category with its category-specific facts, and pins.
func (s *Service) extractNode(n blueprint.Node) models.NodeDoc {
	x, y := n.Position()
	category, fields := classifyNode(n)

	return models.NodeDoc{
		ID:             n.ID(),
		RuntimeType:    n.RuntimeType(),
		Title:          n.Title(),
		Position:       models.Position{X: x, Y: y},
		Category:       category,
		CategoryFields: fields,
		Pins:           extractPins(n),
	}
}

// extractPins emits one PinDoc per non-nil pin. The default value is omitted
// when the pin reports none; the connection count is the pin's own link
// count, a per-pin fact independent of connection dedup.
func extractPins(n blueprint.Node) []models.PinDoc {
	pins := make([]models.PinDoc, 0, len(n.Pins()))
	for _, p := range n.Pins() {
		if p == nil {
			continue
		}

		doc := models.PinDoc{
			ID:              p.ID,
			Name:            p.Name,
			Type:            p.Type.Category,
			SubType:         p.Type.SubCategory,
			Direction:       pinDirection(p.Direction),
			DefaultValue:    p.DefaultValue,
			IsReference:     p.Type.IsReference,
			IsConst:         p.Type.IsConst,
			ConnectionCount: len(p.LinkedTo),
		}
		if p.Type.SubCategoryObject != nil {
			doc.ObjectType = p.Type.SubCategoryObject.Name
		}

		pins = append(pins, doc)
	}
	return pins
}

func pinDirection(d blueprint.PinDirection) string {
	if d == blueprint.PinInput {
		return models.PinDirectionInput
	}
	return models.PinDirectionOutput
}

// reduceConnections derives the edge set from per-pin link lists. The
// underlying model stores every wire symmetrically on both endpoints, so
// only structurally-output-direction pins contribute edges; the input-side
// mirror of each link is skipped. This is a deliberate simplification, not
// a general graph-theoretic dedup: a pass-through node kind that reports its
// nominal input as output-type is still walked by structural direction only.
//
// Links whose target pin has no owning node, or whose owner is not
// materialized in the same graph, are dropped so every emitted edge
// references nodes present in the document.
func (s *Service) reduceConnections(g *blueprint.Graph, index map[string]int) []models.ConnectionDoc {
	connections := []models.ConnectionDoc{}

	for _, n := range g.Nodes {
		if n == nil {
			continue
		}
		for _, p := range n.Pins() {
			if p == nil || p.Direction != blueprint.PinOutput {
				continue
			}
			for _, linked := range p.LinkedTo {
				if linked == nil || linked.OwningNode() == nil {
					continue
				}
				target := linked.OwningNode()
				if _, ok := index[target.ID()]; !ok {
					s.logger.Debug().
						Str("graph", g.Name).
						Str("from", n.ID()).
						Str("to", target.ID()).
						Msg("Skipping link to node outside graph")
					s.diag(interfaces.SeverityWarning,
						fmt.Sprintf("Skipping link from %s to unmaterialized node %s in graph %s", n.ID(), target.ID(), g.Name))
					continue
				}

				connections = append(connections, models.ConnectionDoc{
					FromNode:    n.ID(),
					FromPin:     p.ID,
					FromPinName: p.Name,
					ToNode:      target.ID(),
					ToPin:       linked.ID,
					ToPinName:   linked.Name,
				})
			}
		}
	}

	return connections
}
