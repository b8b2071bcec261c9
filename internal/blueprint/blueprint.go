package blueprint

// BlueprintType is the closed set of blueprint flavors.
type BlueprintType string

const (
	TypeNormal          BlueprintType = "Normal"
	TypeConst           BlueprintType = "Const"
	TypeMacroLibrary    BlueprintType = "MacroLibrary"
	TypeInterface       BlueprintType = "Interface"
	TypeLevelScript     BlueprintType = "LevelScript"
	TypeFunctionLibrary BlueprintType = "FunctionLibrary"
)

// ConstructionScriptName is the reserved name of the construction-script
// graph among a blueprint's user-editable function graphs.
const ConstructionScriptName = "UserConstructionScript"

// Blueprint is a named class definition: metadata, a component tree,
// declared variables, and node-graphs. EventGraphs is the designated set of
// auto-generated top-level graphs; membership is by identity, never by name.
// FunctionGraphs holds the user-editable graphs, including the construction
// script. OtherGraphs holds utility graphs (macro expansions, delegate
// graphs) that extraction ignores unless they carry a function entry node.
type Blueprint struct {
	Name        string
	Path        string
	ParentClass string
	Type        BlueprintType
	Description string
	Category    string
	Package     string

	EventGraphs    []*Graph
	FunctionGraphs []*Graph
	OtherGraphs    []*Graph

	Components []*ComponentNode
	Variables  []VariableDescription
}

// AllGraphs returns every graph the blueprint owns, event graphs first. The
// returned slice is fresh; callers may reorder it freely.
func (b *Blueprint) AllGraphs() []*Graph {
	graphs := make([]*Graph, 0, len(b.EventGraphs)+len(b.FunctionGraphs)+len(b.OtherGraphs))
	graphs = append(graphs, b.EventGraphs...)
	graphs = append(graphs, b.FunctionGraphs...)
	graphs = append(graphs, b.OtherGraphs...)
	return graphs
}

// IsEventGraph reports whether g is one of the blueprint's auto-generated
// top-level graphs. Matching is by identity so a user function named like an
// event graph is never misclassified.
func (b *Blueprint) IsEventGraph(g *Graph) bool {
	for _, eg := range b.EventGraphs {
		if eg == g {
			return true
		}
	}
	return false
}

// IsFunctionGraph reports whether g is listed among the user-editable
// function graphs, by identity.
func (b *Blueprint) IsFunctionGraph(g *Graph) bool {
	for _, fg := range b.FunctionGraphs {
		if fg == g {
			return true
		}
	}
	return false
}

// ConstructionScript returns the construction-script graph, or nil when the
// blueprint has none. The construction script is the user-editable function
// graph carrying the reserved name.
func (b *Blueprint) ConstructionScript() *Graph {
	for _, g := range b.FunctionGraphs {
		if g != nil && g.Name == ConstructionScriptName {
			return g
		}
	}
	return nil
}
