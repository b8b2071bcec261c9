package extract

import (
	"github.com/ternarybob/inspecto/internal/blueprint"
	"github.com/ternarybob/inspecto/internal/models"
)

// lifetimeConditionNames is the closed mapping of replication conditions.
// Unrecognized values fall back to "None".
var lifetimeConditionNames = map[blueprint.LifetimeCondition]string{
	blueprint.CondInitialOnly:                "InitialOnly",
	blueprint.CondOwnerOnly:                  "OwnerOnly",
	blueprint.CondSkipOwner:                  "SkipOwner",
	blueprint.CondSimulatedOnly:              "SimulatedOnly",
	blueprint.CondAutonomousOnly:             "AutonomousOnly",
	blueprint.CondSimulatedOrPhysics:         "SimulatedOrPhysics",
	blueprint.CondInitialOrOwner:             "InitialOrOwner",
	blueprint.CondCustom:                     "Custom",
	blueprint.CondReplayOrOwner:              "ReplayOrOwner",
	blueprint.CondReplayOnly:                 "ReplayOnly",
	blueprint.CondSimulatedOnlyNoReplay:      "SimulatedOnlyNoReplay",
	blueprint.CondSimulatedOrPhysicsNoReplay: "SimulatedOrPhysicsNoReplay",
	blueprint.CondSkipReplay:                 "SkipReplay",
}

// extractVariables emits one VariableDoc per declared variable, preserving
// declaration order.
func (s *Service) extractVariables(bp *blueprint.Blueprint) []models.VariableDoc {
	variables := make([]models.VariableDoc, 0, len(bp.Variables))

	for _, v := range bp.Variables {
		doc := models.VariableDoc{
			Name:         v.Name,
			TypeInfo:     typeInfo(v.Type),
			Type:         legacyTypeString(v.Type),
			Category:     v.Category,
			FriendlyName: v.FriendlyName,
			Flags: models.VariableFlags{
				IsExposed:           v.Flags.Has(blueprint.PropExposeOnSpawn),
				IsBlueprintReadOnly: v.Flags.Has(blueprint.PropBlueprintReadOnly),
				IsEditable:          v.Flags.Has(blueprint.PropEdit),
				IsBlueprintVisible:  v.Flags.Has(blueprint.PropBlueprintVisible),
				IsTransient:         v.Flags.Has(blueprint.PropTransient),
				IsConfig:            v.Flags.Has(blueprint.PropConfig),
			},
			Replication:  models.ReplicationNone,
			DefaultValue: v.DefaultValue,
			Guid:         v.Guid,
		}

		if len(v.Metadata) > 0 {
			doc.Metadata = make(map[string]string, len(v.Metadata))
			for _, entry := range v.Metadata {
				doc.Metadata[entry.Key] = entry.Value
			}
		}

		if v.Flags.Has(blueprint.PropReplicated) {
			doc.Replication = models.ReplicationReplicated
			if v.RepNotifyFunc != "" {
				doc.Replication = models.ReplicationRepNotify
				doc.RepNotifyFunction = v.RepNotifyFunc
			}
			doc.ReplicationCondition = conditionName(v.ReplicationCondition)
		}

		variables = append(variables, doc)
	}

	s.logger.Debug().Int("count", len(variables)).Msg("Extracted variables")

	return variables
}

// typeInfo builds the full type descriptor.
func typeInfo(t blueprint.PinType) models.TypeInfo {
	info := models.TypeInfo{
		Category:      t.Category,
		SubCategory:   t.SubCategory,
		ContainerType: containerName(t.Container),
		IsReference:   t.IsReference,
		IsConst:       t.IsConst,
		IsWeakPointer: t.IsWeakPointer,
	}
	if t.SubCategoryObject != nil {
		info.ObjectType = t.SubCategoryObject.Name
		info.ObjectPath = t.SubCategoryObject.Path
	}
	return info
}

// containerName maps the closed container enumeration; anything
// unrecognized defaults to "none".
func containerName(c blueprint.ContainerType) string {
	switch c {
	case blueprint.ContainerArray:
		return models.ContainerArray
	case blueprint.ContainerSet:
		return models.ContainerSet
	case blueprint.ContainerMap:
		return models.ContainerMap
	default:
		return models.ContainerNone
	}
}

// conditionName maps a replication condition through the closed table,
// falling back to "None" for unrecognized values.
func conditionName(c blueprint.LifetimeCondition) string {
	if name, ok := lifetimeConditionNames[c]; ok {
		return name
	}
	return "None"
}

// legacyTypeString is the compact "category" or "category:ObjectType" form
// kept for backward compatibility with older consumers.
func legacyTypeString(t blueprint.PinType) string {
	if t.SubCategoryObject != nil {
		return t.Category + ":" + t.SubCategoryObject.Name
	}
	return t.Category
}
