package extract

import (
	"fmt"

	"github.com/ternarybob/inspecto/internal/blueprint"
	"github.com/ternarybob/inspecto/internal/interfaces"
	"github.com/ternarybob/inspecto/internal/models"
)

// extractComponents walks the component tree and emits one ComponentDoc per
// entry with a non-nil template. Each enrichment block is gated by its own
// capability check and independently optional; a template may contribute to
// zero, one or many blocks.
func (s *Service) extractComponents(bp *blueprint.Blueprint) []models.ComponentDoc {
	components := []models.ComponentDoc{}

	for _, node := range bp.Components {
		if node == nil || node.Template == nil {
			if node != nil {
				s.logger.Debug().Str("component", node.Name).Msg("Skipping component without template")
				s.diag(interfaces.SeverityWarning, fmt.Sprintf("Component %s has no template, skipped", node.Name))
			}
			continue
		}

		doc := models.ComponentDoc{
			Name:            node.Name,
			Type:            node.Template.TypeName(),
			ParentComponent: parentName(node),
		}

		if spatial, ok := node.Template.(blueprint.Spatial); ok {
			loc := spatial.RelativeLocation()
			rot := spatial.RelativeRotation()
			scale := spatial.RelativeScale()
			doc.Transform = &models.Transform{
				Location: [3]float64{loc.X, loc.Y, loc.Z},
				Rotation: [3]float64{rot.X, rot.Y, rot.Z},
				Scale:    [3]float64{scale.X, scale.Y, scale.Z},
			}
			doc.Mobility = boolPtr(spatial.IsMovable())
			doc.Visible = boolPtr(spatial.IsVisible())
			doc.HiddenInGame = boolPtr(spatial.IsHiddenInGame())
		}

		if mesh, ok := node.Template.(blueprint.MeshSurface); ok {
			doc.MeshProperties = &models.MeshProperties{
				StaticMesh:            mesh.MeshAssetPath(),
				SimulatePhysics:       mesh.SimulatesPhysics(),
				GenerateOverlapEvents: mesh.GeneratesOverlapEvents(),
				Mass:                  mesh.Mass(),
				CastShadow:            mesh.CastsShadow(),
				NumMaterials:          mesh.MaterialCount(),
			}
		}

		if light, ok := node.Template.(blueprint.LightEmitter); ok {
			color := light.LightColor()
			doc.LightProperties = &models.LightProperties{
				Intensity:   light.Intensity(),
				LightColor:  [4]float64{color.R, color.G, color.B, color.A},
				CastShadows: light.CastsShadows(),
			}
		}

		components = append(components, doc)
	}

	s.logger.Debug().Int("count", len(components)).Msg("Extracted components")

	return components
}

// parentName is a free-text back-reference with no enforced referential
// integrity; roots carry the sentinel "None".
func parentName(node *blueprint.ComponentNode) string {
	if node.ParentName == "" {
		return "None"
	}
	return node.ParentName
}

func boolPtr(v bool) *bool {
	return &v
}
