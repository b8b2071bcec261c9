package models

// Graph kinds emitted in GraphDocument.Kind.
const (
	GraphKindEventGraph         = "event_graph"
	GraphKindConstructionScript = "construction_script"
	GraphKindFunction           = "function"
)

// Node categories emitted in NodeDoc.Category.
const (
	NodeCategoryEvent        = "event"
	NodeCategoryFunctionCall = "function_call"
	NodeCategoryVariableGet  = "variable_get"
	NodeCategoryVariableSet  = "variable_set"
	NodeCategoryCustomEvent  = "custom_event"
	NodeCategoryOther        = "other"
)

// Pin directions emitted in PinDoc.Direction.
const (
	PinDirectionInput  = "input"
	PinDirectionOutput = "output"
)

// GraphDocument is the serialized form of a single node-graph.
// NodeCount and ConnectionCount are always derived from the materialized
// Nodes and Connections slices, never from the live model's own counters.
type GraphDocument struct {
	Name            string          `json:"name"`
	Kind            string          `json:"kind"`
	Nodes           []NodeDoc       `json:"nodes"`
	Connections     []ConnectionDoc `json:"connections"`
	NodeCount       int             `json:"node_count"`
	ConnectionCount int             `json:"connection_count"`
}

// Position is a node's placement on the graph canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeDoc is the serialized form of a single graph node. ID is the
// externally-assigned node GUID and is unique within its graph.
// CategoryFields carries the category-specific facts (event_name,
// function_name, variable_name) and is present only when the node's
// category produced any.
type NodeDoc struct {
	ID             string            `json:"id"`
	RuntimeType    string            `json:"runtime_type"`
	Title          string            `json:"title"`
	Position       Position          `json:"position"`
	Category       string            `json:"category"`
	CategoryFields map[string]string `json:"category_fields,omitempty"`
	Pins           []PinDoc          `json:"pins"`
}

// PinDoc is the serialized form of a single pin. DefaultValue is omitted
// entirely when the live pin reports no explicit default. ConnectionCount is
// the link count the pin itself reports, independent of connection dedup.
type PinDoc struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	SubType         string `json:"sub_type,omitempty"`
	ObjectType      string `json:"object_type,omitempty"`
	Direction       string `json:"direction"`
	DefaultValue    string `json:"default_value,omitempty"`
	IsReference     bool   `json:"is_reference"`
	IsConst         bool   `json:"is_const"`
	ConnectionCount int    `json:"connection_count"`
}

// ConnectionDoc is one directed record per undirected wire, always oriented
// output → input. FromNode and ToNode reference NodeDoc.ID values within the
// same GraphDocument.
type ConnectionDoc struct {
	FromNode    string `json:"from_node"`
	FromPin     string `json:"from_pin"`
	FromPinName string `json:"from_pin_name"`
	ToNode      string `json:"to_node"`
	ToPin       string `json:"to_pin"`
	ToPinName   string `json:"to_pin_name"`
}
