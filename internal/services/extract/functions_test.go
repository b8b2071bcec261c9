package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/inspecto/internal/blueprint"
	"github.com/ternarybob/inspecto/internal/models"
)

// signedFunctionGraph builds a function graph with two inputs, one output
// and an execution pin on each sentinel.
func signedFunctionGraph(name string, flags blueprint.FunctionFlag) *blueprint.Graph {
	entry := entryNode("node-entry", flags,
		execPin("pin-entry-exec", "then", blueprint.PinOutput),
		dataPin("pin-in-a", "Amount", "int", blueprint.PinOutput),
		dataPin("pin-in-b", "Instigator", "object", blueprint.PinOutput),
	)
	result := resultNode("node-result",
		execPin("pin-result-exec", "execute", blueprint.PinInput),
		dataPin("pin-out", "Remaining", "int", blueprint.PinInput),
	)
	return graphOf(name, entry, result)
}

func TestExtractFunctions_SignatureFromSentinels(t *testing.T) {
	bp := &blueprint.Blueprint{
		Name:           "BP_Health",
		FunctionGraphs: []*blueprint.Graph{signedFunctionGraph("ApplyDamage", 0)},
	}

	s := newTestService()
	functions := s.extractFunctions(bp)

	require.Len(t, functions, 1)
	fn := functions[0]
	assert.Equal(t, "ApplyDamage", fn.Name)
	assert.Len(t, fn.Inputs, 2)
	assert.Len(t, fn.Outputs, 1)
	assert.Len(t, fn.LocalVariables, 0)
	assert.Equal(t, "Amount", fn.Inputs[0].Name)
	assert.Equal(t, "int", fn.Inputs[0].Type)
	assert.Equal(t, "Remaining", fn.Outputs[0].Name)
	assert.Equal(t, models.GraphKindFunction, fn.Graph.Kind)
	assert.Equal(t, 2, fn.Graph.NodeCount)
}

func TestExtractFunctions_EventGraphNeverPartitionedAsFunction(t *testing.T) {
	// An auto-generated graph containing an incidental entry-like node must
	// stay an event graph: membership is matched by identity.
	trap := graphOf("EventGraph", entryNode("node-entry", 0))
	bp := &blueprint.Blueprint{
		Name:        "BP_Trap",
		EventGraphs: []*blueprint.Graph{trap},
	}

	s := newTestService(bp)
	assert.Empty(t, s.extractFunctions(bp))

	doc, err := s.Extract(context.Background(), "BP_Trap")
	require.NoError(t, err)
	require.Len(t, doc.EventGraphs, 1)
	assert.Equal(t, models.GraphKindEventGraph, doc.EventGraphs[0].Kind)
	assert.Empty(t, doc.Functions)
}

func TestExtractFunctions_ConstructionScriptExcluded(t *testing.T) {
	cs := graphOf(blueprint.ConstructionScriptName, entryNode("node-entry", 0))
	bp := &blueprint.Blueprint{
		Name:           "BP_Door",
		FunctionGraphs: []*blueprint.Graph{cs},
	}

	s := newTestService()
	assert.Empty(t, s.extractFunctions(bp))
}

func TestExtractFunctions_GraphWithoutEntryIgnored(t *testing.T) {
	utility := graphOf("MacroExpansion", callNode("node-1", "Lerp"))
	bp := &blueprint.Blueprint{
		Name:        "BP_Util",
		OtherGraphs: []*blueprint.Graph{utility},
	}

	s := newTestService()
	assert.Empty(t, s.extractFunctions(bp))
}

func TestExtractFunctions_OnlyFirstResultNodeConsulted(t *testing.T) {
	entry := entryNode("node-entry", 0)
	first := resultNode("node-result-1", dataPin("pin-a", "Primary", "bool", blueprint.PinInput))
	second := resultNode("node-result-2", dataPin("pin-b", "Secondary", "bool", blueprint.PinInput))
	bp := &blueprint.Blueprint{
		Name:           "BP_Branchy",
		FunctionGraphs: []*blueprint.Graph{graphOf("Check", entry, first, second)},
	}

	s := newTestService()
	functions := s.extractFunctions(bp)

	require.Len(t, functions, 1)
	require.Len(t, functions[0].Outputs, 1)
	assert.Equal(t, "Primary", functions[0].Outputs[0].Name)
}

func TestExtractFunction_AccessSpecifier(t *testing.T) {
	tests := []struct {
		flags blueprint.FunctionFlag
		want  string
	}{
		{0, models.AccessPublic},
		{blueprint.FuncPrivate, models.AccessPrivate},
		{blueprint.FuncProtected, models.AccessProtected},
		{blueprint.FuncPrivate | blueprint.FuncProtected, models.AccessPrivate},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, accessSpecifier(tt.flags))
	}
}

func TestExtractFunction_LocalVariablesAndMetadata(t *testing.T) {
	entry := entryNode("node-entry", 0)
	entry.Metadata = blueprint.FunctionMetadata{Category: "Combat", Tooltip: "Applies damage", Pure: true}
	entry.Locals = []blueprint.VariableDescription{
		{Name: "Scratch", Type: blueprint.PinType{Category: "float"}},
		{Name: "Hits", Type: blueprint.PinType{Category: "struct", SubCategory: "HitResult"}},
	}
	bp := &blueprint.Blueprint{
		Name:           "BP_Combat",
		FunctionGraphs: []*blueprint.Graph{graphOf("Resolve", entry)},
	}

	s := newTestService()
	functions := s.extractFunctions(bp)

	require.Len(t, functions, 1)
	fn := functions[0]
	assert.Equal(t, "Combat", fn.Category)
	assert.Equal(t, "Applies damage", fn.Description)
	assert.True(t, fn.IsPure)
	require.Len(t, fn.LocalVariables, 2)
	assert.Equal(t, "Scratch", fn.LocalVariables[0].Name)
	assert.Equal(t, "HitResult", fn.LocalVariables[1].SubType)
}

func TestExtractFunction_ExecPinsExcludedFromSignature(t *testing.T) {
	g := signedFunctionGraph("ApplyDamage", 0)
	bp := &blueprint.Blueprint{Name: "BP_Health", FunctionGraphs: []*blueprint.Graph{g}}

	s := newTestService()
	functions := s.extractFunctions(bp)

	require.Len(t, functions, 1)
	for _, p := range functions[0].Inputs {
		assert.NotEqual(t, blueprint.PinCategoryExec, p.Type)
	}
	for _, p := range functions[0].Outputs {
		assert.NotEqual(t, blueprint.PinCategoryExec, p.Type)
	}
}
