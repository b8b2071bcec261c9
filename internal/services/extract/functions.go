package extract

import (
	"fmt"

	"github.com/ternarybob/inspecto/internal/blueprint"
	"github.com/ternarybob/inspecto/internal/interfaces"
	"github.com/ternarybob/inspecto/internal/models"
)

// extractFunctions partitions the blueprint's graphs and emits one
// FunctionDoc per user-defined function graph. The decision table, in
// order:
//
//  1. a graph in the designated auto-generated set is an event graph
//     (matched by identity, never by name) and is excluded here;
//  2. the user-editable graph carrying the reserved construction-script
//     name is the construction script and is excluded here;
//  3. any remaining graph containing a function entry node is a function;
//     the first entry node found is the signature source;
//  4. everything else is ignored.
func (s *Service) extractFunctions(bp *blueprint.Blueprint) []models.FunctionDoc {
	functions := []models.FunctionDoc{}

	for _, g := range bp.AllGraphs() {
		if g == nil {
			continue
		}
		if bp.IsEventGraph(g) {
			continue
		}
		if bp.IsFunctionGraph(g) && g.Name == blueprint.ConstructionScriptName {
			continue
		}

		entry := findFunctionEntry(g)
		if entry == nil {
			s.logger.Debug().Str("graph", g.Name).Msg("Skipping graph without function entry node")
			s.diag(interfaces.SeverityDisplay, fmt.Sprintf("Graph %s has no function entry node, ignored", g.Name))
			continue
		}

		s.logger.Debug().Str("graph", g.Name).Int("nodes", len(g.Nodes)).Msg("Extracting function graph")
		functions = append(functions, s.extractFunction(g, entry))
	}

	return functions
}

// findFunctionEntry returns the first node in traversal order exposing the
// function-entry capability, or nil.
func findFunctionEntry(g *blueprint.Graph) blueprint.FunctionEntry {
	for _, n := range g.Nodes {
		if n == nil {
			continue
		}
		if entry, ok := n.(blueprint.FunctionEntry); ok {
			return entry
		}
	}
	return nil
}

// extractFunction builds the signature from the sentinel nodes and attaches
// the full graph document. Inputs are the entry node's output-direction
// non-exec pins; outputs come from the first result node found. Multiple
// result nodes are not merged: only the first is consulted, which can drop
// data on multi-result graphs (faithful to the host model's own behavior).
func (s *Service) extractFunction(g *blueprint.Graph, entry blueprint.FunctionEntry) models.FunctionDoc {
	meta := entry.FunctionMetadata()

	doc := models.FunctionDoc{
		Name:            g.Name,
		Category:        meta.Category,
		Description:     meta.Tooltip,
		IsPure:          meta.Pure,
		AccessSpecifier: accessSpecifier(entry.FunctionFlags()),
		Inputs:          []models.ParamDoc{},
		Outputs:         []models.ParamDoc{},
		LocalVariables:  []models.LocalVarDoc{},
	}

	if entryNode, ok := entry.(blueprint.Node); ok {
		for _, p := range entryNode.Pins() {
			if p == nil || p.Direction != blueprint.PinOutput || p.Type.IsExec() {
				continue
			}
			doc.Inputs = append(doc.Inputs, paramFromPin(p, true))
		}
	}

	if result := findFunctionResult(s, g); result != nil {
		for _, p := range result.ResultPins() {
			if p == nil || p.Type.IsExec() {
				continue
			}
			doc.Outputs = append(doc.Outputs, paramFromPin(p, false))
		}
	}

	for _, local := range entry.LocalVariables() {
		lv := models.LocalVarDoc{
			Name:    local.Name,
			Type:    local.Type.Category,
			SubType: local.Type.SubCategory,
		}
		doc.LocalVariables = append(doc.LocalVariables, lv)
	}

	doc.Graph = s.extractGraph(g, models.GraphKindFunction)

	return doc
}

// findFunctionResult returns the first result node in traversal order;
// additional result nodes are logged and left unconsulted.
func findFunctionResult(s *Service, g *blueprint.Graph) blueprint.FunctionResult {
	var first blueprint.FunctionResult
	for _, n := range g.Nodes {
		if n == nil {
			continue
		}
		if result, ok := n.(blueprint.FunctionResult); ok {
			if first != nil {
				s.logger.Warn().Str("graph", g.Name).Msg("Graph has multiple result nodes, only the first is consulted")
				s.diag(interfaces.SeverityWarning, fmt.Sprintf("Graph %s has multiple result nodes", g.Name))
				break
			}
			first = result
		}
	}
	return first
}

// accessSpecifier maps entry-node flag bits, checked private then
// protected, defaulting to public.
func accessSpecifier(flags blueprint.FunctionFlag) string {
	switch {
	case flags&blueprint.FuncPrivate != 0:
		return models.AccessPrivate
	case flags&blueprint.FuncProtected != 0:
		return models.AccessProtected
	default:
		return models.AccessPublic
	}
}

// paramFromPin converts a signature pin into a parameter document. Default
// values only apply to inputs.
func paramFromPin(p *blueprint.Pin, withDefault bool) models.ParamDoc {
	doc := models.ParamDoc{
		Name:        p.Name,
		Type:        p.Type.Category,
		SubType:     p.Type.SubCategory,
		IsReference: p.Type.IsReference,
		IsConst:     p.Type.IsConst,
	}
	if p.Type.SubCategoryObject != nil {
		doc.ObjectType = p.Type.SubCategoryObject.Name
	}
	if withDefault {
		doc.DefaultValue = p.DefaultValue
	}
	return doc
}
