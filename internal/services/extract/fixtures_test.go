package extract

import (
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/inspecto/internal/blueprint"
	"github.com/ternarybob/inspecto/internal/interfaces"
)

// stubResolver is a fixed-map resolver for tests.
type stubResolver struct {
	blueprints map[string]*blueprint.Blueprint
}

func (r *stubResolver) Find(name string) (*blueprint.Blueprint, error) {
	if bp, ok := r.blueprints[name]; ok {
		return bp, nil
	}
	return nil, interfaces.ErrBlueprintNotFound
}

func (r *stubResolver) List() []interfaces.BlueprintSummary { return nil }

func (r *stubResolver) Count() int { return len(r.blueprints) }

// recordingCapture retains every captured entry for assertion.
type recordingCapture struct {
	entries []interfaces.CapturedLog
}

func (c *recordingCapture) Capture(category, severity, message string) {
	c.entries = append(c.entries, interfaces.CapturedLog{
		Category: category,
		Severity: severity,
		Message:  message,
	})
}

func (c *recordingCapture) Entries(int, string, string) []interfaces.CapturedLog {
	return c.entries
}

func (c *recordingCapture) Count() int { return len(c.entries) }

func testLogger() arbor.ILogger {
	return arbor.NewLogger()
}

func newTestService(blueprints ...*blueprint.Blueprint) *Service {
	resolver := &stubResolver{blueprints: map[string]*blueprint.Blueprint{}}
	for _, bp := range blueprints {
		resolver.blueprints[bp.Name] = bp
	}
	return NewService(resolver, nil, testLogger())
}

func execPin(id, name string, dir blueprint.PinDirection) *blueprint.Pin {
	return &blueprint.Pin{
		ID:        id,
		Name:      name,
		Direction: dir,
		Type:      blueprint.PinType{Category: blueprint.PinCategoryExec},
	}
}

func dataPin(id, name, category string, dir blueprint.PinDirection) *blueprint.Pin {
	return &blueprint.Pin{
		ID:        id,
		Name:      name,
		Direction: dir,
		Type:      blueprint.PinType{Category: category},
	}
}

func eventNode(id, event string, pins ...*blueprint.Pin) *blueprint.EventNode {
	return &blueprint.EventNode{
		NodeBase: blueprint.NodeBase{
			Guid:      id,
			Class:     "K2Node_Event",
			NodeTitle: "Event " + event,
			NodePins:  pins,
		},
		Event: event,
	}
}

func callNode(id, function string, pins ...*blueprint.Pin) *blueprint.CallFunctionNode {
	return &blueprint.CallFunctionNode{
		NodeBase: blueprint.NodeBase{
			Guid:      id,
			Class:     "K2Node_CallFunction",
			NodeTitle: function,
			NodePins:  pins,
		},
		Function: function,
	}
}

func entryNode(id string, flags blueprint.FunctionFlag, pins ...*blueprint.Pin) *blueprint.FunctionEntryNode {
	return &blueprint.FunctionEntryNode{
		NodeBase: blueprint.NodeBase{
			Guid:      id,
			Class:     "K2Node_FunctionEntry",
			NodeTitle: "Entry",
			NodePins:  pins,
		},
		Flags: flags,
	}
}

func resultNode(id string, pins ...*blueprint.Pin) *blueprint.FunctionResultNode {
	return &blueprint.FunctionResultNode{
		NodeBase: blueprint.NodeBase{
			Guid:      id,
			Class:     "K2Node_FunctionResult",
			NodeTitle: "Return Node",
			NodePins:  pins,
		},
	}
}

func graphOf(name string, nodes ...blueprint.Node) *blueprint.Graph {
	g := &blueprint.Graph{Name: name}
	g.AddNodes(nodes...)
	return g
}

// wiredEventGraph builds the canonical two-node fixture: an event node and a
// function-call node joined by one execution wire.
func wiredEventGraph() *blueprint.Graph {
	evExec := execPin("pin-ev-out", "then", blueprint.PinOutput)
	callExec := execPin("pin-call-in", "execute", blueprint.PinInput)
	ev := eventNode("node-event", "BeginPlay", evExec)
	call := callNode("node-call", "PrintString", callExec)
	g := graphOf("EventGraph", ev, call)
	evExec.Link(callExec)
	return g
}
