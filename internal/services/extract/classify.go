package extract

import (
	"github.com/ternarybob/inspecto/internal/blueprint"
	"github.com/ternarybob/inspecto/internal/models"
)

// classifyNode determines a node's semantic category by probing its
// capabilities in a fixed order; the first match wins. Node kinds matching
// no capability degrade to "other" with no fields rather than failing, so
// unknown kinds pass through extraction gracefully.
func classifyNode(n blueprint.Node) (string, map[string]string) {
	if e, ok := n.(blueprint.EventSource); ok {
		return models.NodeCategoryEvent, categoryField("event_name", e.EventName())
	}
	if c, ok := n.(blueprint.FunctionCaller); ok {
		return models.NodeCategoryFunctionCall, categoryField("function_name", c.CalledFunction())
	}
	if r, ok := n.(blueprint.VariableReader); ok {
		return models.NodeCategoryVariableGet, categoryField("variable_name", r.ReadsVariable())
	}
	if w, ok := n.(blueprint.VariableWriter); ok {
		return models.NodeCategoryVariableSet, categoryField("variable_name", w.WritesVariable())
	}
	if ce, ok := n.(blueprint.CustomEventSource); ok {
		return models.NodeCategoryCustomEvent, categoryField("event_name", ce.CustomEventName())
	}
	return models.NodeCategoryOther, nil
}

// categoryField builds a one-entry field map, or nil when the referenced
// member name is empty so the document omits the block entirely.
func categoryField(key, value string) map[string]string {
	if value == "" {
		return nil
	}
	return map[string]string{key: value}
}
