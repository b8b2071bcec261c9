package blueprint

// Capability interfaces. The classifier probes nodes against these in a
// fixed order; a node kind that matches none of them degrades to the "other"
// category. New node kinds only need a new capability check, not a schema
// change.

// EventSource is implemented by nodes that fire when a named engine event
// occurs.
type EventSource interface {
	EventName() string
}

// FunctionCaller is implemented by nodes that invoke a named member
// function.
type FunctionCaller interface {
	CalledFunction() string
}

// VariableReader is implemented by nodes that read a named member variable.
type VariableReader interface {
	ReadsVariable() string
}

// VariableWriter is implemented by nodes that write a named member variable.
type VariableWriter interface {
	WritesVariable() string
}

// CustomEventSource is implemented by nodes that declare a user-defined
// event.
type CustomEventSource interface {
	CustomEventName() string
}

// FunctionFlag is the access/qualifier bitmask carried by function entry
// nodes.
type FunctionFlag uint32

const (
	FuncPrivate FunctionFlag = 1 << iota
	FuncProtected
	FuncStatic
	FuncConst
)

// FunctionMetadata is the descriptive block attached to a function entry
// node.
type FunctionMetadata struct {
	Category string
	Tooltip  string
	Pure     bool
}

// FunctionEntry is the sentinel capability that marks a graph as a
// user-defined function and carries its signature source: the entry node's
// output-direction non-exec pins are the function's inputs.
type FunctionEntry interface {
	FunctionMetadata() FunctionMetadata
	FunctionFlags() FunctionFlag
	LocalVariables() []VariableDescription
}

// FunctionResult is the sentinel capability that marks a function's return
// site: the result node's input-direction non-exec pins are the function's
// outputs.
type FunctionResult interface {
	ResultPins() []*Pin
}

// EventNode fires on an engine-dispatched event (BeginPlay, Tick, overlap
// callbacks and the like).
type EventNode struct {
	NodeBase
	Event string
}

func (n *EventNode) EventName() string { return n.Event }

// CallFunctionNode invokes a member function by name.
type CallFunctionNode struct {
	NodeBase
	Function string
}

func (n *CallFunctionNode) CalledFunction() string { return n.Function }

// VariableGetNode reads a member variable.
type VariableGetNode struct {
	NodeBase
	Variable string
}

func (n *VariableGetNode) ReadsVariable() string { return n.Variable }

// VariableSetNode writes a member variable.
type VariableSetNode struct {
	NodeBase
	Variable string
}

func (n *VariableSetNode) WritesVariable() string { return n.Variable }

// CustomEventNode declares a user-defined event. It deliberately does not
// implement EventSource so the classifier reports it as its own category.
type CustomEventNode struct {
	NodeBase
	Event string
}

func (n *CustomEventNode) CustomEventName() string { return n.Event }

// FunctionEntryNode anchors a user-defined function graph.
type FunctionEntryNode struct {
	NodeBase
	Metadata FunctionMetadata
	Flags    FunctionFlag
	Locals   []VariableDescription
}

func (n *FunctionEntryNode) FunctionMetadata() FunctionMetadata    { return n.Metadata }
func (n *FunctionEntryNode) FunctionFlags() FunctionFlag           { return n.Flags }
func (n *FunctionEntryNode) LocalVariables() []VariableDescription { return n.Locals }

// FunctionResultNode anchors a user-defined function's return site.
type FunctionResultNode struct {
	NodeBase
}

// ResultPins returns the node's input-direction pins, which describe the
// function's outputs.
func (n *FunctionResultNode) ResultPins() []*Pin {
	var pins []*Pin
	for _, p := range n.NodePins {
		if p != nil && p.Direction == PinInput {
			pins = append(pins, p)
		}
	}
	return pins
}

// CommentNode is a purely annotational node with no execution semantics. It
// matches no capability and classifies as "other".
type CommentNode struct {
	NodeBase
	Text string
}
