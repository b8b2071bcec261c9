package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/inspecto/internal/blueprint"
	"github.com/ternarybob/inspecto/internal/interfaces"
)

func newTestRegistry() *Service {
	return NewService(arbor.NewLogger())
}

func TestRegistry_FindByNameThenPath(t *testing.T) {
	r := newTestRegistry()
	bp := &blueprint.Blueprint{Name: "BP_Door", Path: "/Game/Blueprints/BP_Door"}
	require.NoError(t, r.Register(bp))

	byName, err := r.Find("BP_Door")
	require.NoError(t, err)
	assert.Same(t, bp, byName)

	byPath, err := r.Find("/Game/Blueprints/BP_Door")
	require.NoError(t, err)
	assert.Same(t, bp, byPath)
}

func TestRegistry_FindUnknown(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Find("BP_Missing")
	assert.True(t, errors.Is(err, interfaces.ErrBlueprintNotFound))
}

func TestRegistry_RegisterValidation(t *testing.T) {
	r := newTestRegistry()

	assert.Error(t, r.Register(nil))
	assert.Error(t, r.Register(&blueprint.Blueprint{}))
	assert.Equal(t, 0, r.Count())
}

func TestRegistry_ReRegisterReplaces(t *testing.T) {
	r := newTestRegistry()
	first := &blueprint.Blueprint{Name: "BP_Door", ParentClass: "Actor"}
	second := &blueprint.Blueprint{Name: "BP_Door", ParentClass: "StaticMeshActor"}

	require.NoError(t, r.Register(first))
	require.NoError(t, r.Register(second))

	assert.Equal(t, 1, r.Count())
	found, err := r.Find("BP_Door")
	require.NoError(t, err)
	assert.Same(t, second, found)
}

func TestRegistry_ListSummariesInRegistrationOrder(t *testing.T) {
	r := newTestRegistry()
	require.NoError(t, r.Register(&blueprint.Blueprint{
		Name: "BP_Zulu",
		FunctionGraphs: []*blueprint.Graph{
			{Name: "DoThing"},
			{Name: blueprint.ConstructionScriptName},
		},
		Variables: []blueprint.VariableDescription{{Name: "A"}},
	}))
	require.NoError(t, r.Register(&blueprint.Blueprint{Name: "BP_Alpha"}))

	summaries := r.List()
	require.Len(t, summaries, 2)
	assert.Equal(t, "BP_Zulu", summaries[0].Name)
	assert.Equal(t, "BP_Alpha", summaries[1].Name)
	// The construction script is not counted as a user-defined function.
	assert.Equal(t, 1, summaries[0].Functions)
	assert.Equal(t, 2, summaries[0].Graphs)
	assert.Equal(t, 1, summaries[0].Variables)
}
