package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/inspecto/internal/blueprint"
)

func TestExtractComponents_CapabilityGating(t *testing.T) {
	bp := &blueprint.Blueprint{
		Name: "BP_Lamp",
		Components: []*blueprint.ComponentNode{
			{
				Name: "DefaultSceneRoot",
				Template: &blueprint.SceneComponent{
					Class:    "SceneComponent",
					Location: blueprint.Vec3{X: 1, Y: 2, Z: 3},
					Movable:  true,
					Visible:  true,
				},
			},
			{
				Name:       "LampMesh",
				ParentName: "DefaultSceneRoot",
				Template: &blueprint.StaticMeshComponent{
					SceneComponent: blueprint.SceneComponent{Class: "StaticMeshComponent", Visible: true},
					Mesh:           "/Game/Meshes/SM_Lamp",
					MassKg:         4.5,
					CastShadow:     true,
					Materials:      2,
				},
			},
			{
				Name:       "Bulb",
				ParentName: "LampMesh",
				Template: &blueprint.LightComponent{
					SceneComponent: blueprint.SceneComponent{Class: "PointLightComponent", Visible: true},
					LightIntensity: 5000,
					Color:          blueprint.Color{R: 1, G: 0.9, B: 0.8, A: 1},
					ShadowCasting:  true,
				},
			},
			{
				Name:     "Audio",
				Template: &blueprint.ActorComponent{Class: "AudioComponent"},
			},
		},
	}

	s := newTestService()
	components := s.extractComponents(bp)

	require.Len(t, components, 4)

	root := components[0]
	assert.Equal(t, "SceneComponent", root.Type)
	assert.Equal(t, "None", root.ParentComponent)
	require.NotNil(t, root.Transform)
	assert.Equal(t, [3]float64{1, 2, 3}, root.Transform.Location)
	require.NotNil(t, root.Mobility)
	assert.True(t, *root.Mobility)
	assert.Nil(t, root.MeshProperties)
	assert.Nil(t, root.LightProperties)

	mesh := components[1]
	assert.Equal(t, "DefaultSceneRoot", mesh.ParentComponent)
	require.NotNil(t, mesh.Transform)
	require.NotNil(t, mesh.MeshProperties)
	assert.Equal(t, "/Game/Meshes/SM_Lamp", mesh.MeshProperties.StaticMesh)
	assert.Equal(t, 4.5, mesh.MeshProperties.Mass)
	assert.Equal(t, 2, mesh.MeshProperties.NumMaterials)
	assert.Nil(t, mesh.LightProperties)

	light := components[2]
	require.NotNil(t, light.LightProperties)
	assert.Equal(t, float64(5000), light.LightProperties.Intensity)
	assert.Equal(t, [4]float64{1, 0.9, 0.8, 1}, light.LightProperties.LightColor)
	assert.True(t, light.LightProperties.CastShadows)
	assert.Nil(t, light.MeshProperties)

	// Templates without spatial presence contribute no enrichment blocks.
	audio := components[3]
	assert.Equal(t, "AudioComponent", audio.Type)
	assert.Equal(t, "None", audio.ParentComponent)
	assert.Nil(t, audio.Transform)
	assert.Nil(t, audio.Mobility)
	assert.Nil(t, audio.Visible)
	assert.Nil(t, audio.HiddenInGame)
}

func TestExtractComponents_SkipsNilEntriesAndTemplates(t *testing.T) {
	bp := &blueprint.Blueprint{
		Name: "BP_Partial",
		Components: []*blueprint.ComponentNode{
			nil,
			{Name: "Ghost"},
			{Name: "Real", Template: &blueprint.ActorComponent{Class: "ActorComponent"}},
		},
	}

	s := newTestService()
	components := s.extractComponents(bp)

	require.Len(t, components, 1)
	assert.Equal(t, "Real", components[0].Name)
}

func TestExtractComponents_ParentIsFreeTextBackReference(t *testing.T) {
	// A parent name with no corresponding entry passes through untouched:
	// the back-reference carries no referential integrity.
	bp := &blueprint.Blueprint{
		Name: "BP_Orphan",
		Components: []*blueprint.ComponentNode{
			{
				Name:       "Mesh",
				ParentName: "MissingRoot",
				Template:   &blueprint.ActorComponent{Class: "StaticMeshComponent"},
			},
		},
	}

	s := newTestService()
	components := s.extractComponents(bp)

	require.Len(t, components, 1)
	assert.Equal(t, "MissingRoot", components[0].ParentComponent)
}

func TestExtractComponents_EmptyTreeYieldsEmptySlice(t *testing.T) {
	s := newTestService()
	components := s.extractComponents(&blueprint.Blueprint{Name: "BP_Bare"})

	assert.NotNil(t, components)
	assert.Empty(t, components)
}
