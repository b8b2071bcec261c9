// Package blueprint is the live, in-memory object model the extraction
// engine introspects: blueprints owning node-graphs, component templates and
// variable declarations. The model is polymorphic and open-ended; node and
// template kinds advertise what they can do through narrow capability
// interfaces rather than a type hierarchy.
//
// The package never serializes itself. Extraction is read-only and the
// caller must guarantee no concurrent mutation while an extraction runs.
package blueprint

// PinDirection distinguishes input from output pins.
type PinDirection int

const (
	PinInput PinDirection = iota
	PinOutput
)

// ContainerType is the closed set of container kinds a pin type can carry.
type ContainerType int

const (
	ContainerNone ContainerType = iota
	ContainerArray
	ContainerSet
	ContainerMap
)

// PinCategoryExec is the pin-type category of execution (flow) pins.
// Execution pins never contribute to function signatures.
const PinCategoryExec = "exec"

// ObjectRef names an object type referenced by a pin type, with its full
// asset path.
type ObjectRef struct {
	Name string
	Path string
}

// PinType is the full type descriptor shared by pins and variable
// declarations.
type PinType struct {
	Category          string
	SubCategory       string
	SubCategoryObject *ObjectRef
	Container         ContainerType
	IsReference       bool
	IsConst           bool
	IsWeakPointer     bool
}

// IsExec reports whether the type describes an execution pin.
func (t PinType) IsExec() bool {
	return t.Category == PinCategoryExec
}

// Pin is a typed, directional connection point on a node. Links are stored
// symmetrically: a wire between two pins appears in the LinkedTo slice of
// both endpoints.
type Pin struct {
	ID           string
	Name         string
	Direction    PinDirection
	Type         PinType
	DefaultValue string
	LinkedTo     []*Pin

	owner Node
}

// OwningNode returns the node this pin is attached to, or nil for a detached
// pin.
func (p *Pin) OwningNode() Node {
	return p.owner
}

// Link wires this pin to other, recording the link on both endpoints the way
// the host model stores them. Linking a pin to itself or to nil is ignored.
func (p *Pin) Link(other *Pin) {
	if other == nil || other == p {
		return
	}
	p.LinkedTo = append(p.LinkedTo, other)
	other.LinkedTo = append(other.LinkedTo, p)
}

// Node is a graph vertex. Concrete node kinds embed NodeBase and advertise
// semantics through the capability interfaces in nodes.go.
type Node interface {
	ID() string
	RuntimeType() string
	Title() string
	Position() (x, y float64)
	Pins() []*Pin
}

// NodeBase carries the identity, placement and pin list common to every node
// kind.
type NodeBase struct {
	Guid      string
	Class     string
	NodeTitle string
	PosX      float64
	PosY      float64
	NodePins  []*Pin
}

func (b *NodeBase) ID() string          { return b.Guid }
func (b *NodeBase) RuntimeType() string { return b.Class }
func (b *NodeBase) Title() string       { return b.NodeTitle }

func (b *NodeBase) Position() (float64, float64) { return b.PosX, b.PosY }

func (b *NodeBase) Pins() []*Pin { return b.NodePins }

// Graph is a named node-graph. The node list may contain nil entries when
// the host model is partially initialized; consumers skip them.
type Graph struct {
	Name  string
	Nodes []Node
}

// AddNode appends a node and claims ownership of its pins. nil nodes are
// stored as-is so a partially-initialized model round-trips faithfully.
func (g *Graph) AddNode(n Node) {
	if n != nil {
		for _, p := range n.Pins() {
			if p != nil {
				p.owner = n
			}
		}
	}
	g.Nodes = append(g.Nodes, n)
}

// AddNodes appends every node in order.
func (g *Graph) AddNodes(nodes ...Node) {
	for _, n := range nodes {
		g.AddNode(n)
	}
}
