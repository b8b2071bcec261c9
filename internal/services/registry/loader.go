package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/inspecto/internal/blueprint"
)

// Asset file schema. Assets are authored JSON snapshots of blueprint class
// definitions; the loader materializes them into the live object model.

type blueprintAsset struct {
	Name        string `json:"name" validate:"required"`
	Path        string `json:"path"`
	ParentClass string `json:"parent_class"`
	Type        string `json:"blueprint_type"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Package     string `json:"package"`

	Components  []componentAsset `json:"components" validate:"dive"`
	Variables   []variableAsset  `json:"variables" validate:"dive"`
	EventGraphs []graphAsset     `json:"event_graphs" validate:"dive"`
	Functions   []graphAsset     `json:"functions" validate:"dive"`
	OtherGraphs []graphAsset     `json:"other_graphs" validate:"dive"`
}

type componentAsset struct {
	Name     string `json:"name" validate:"required"`
	Class    string `json:"class" validate:"required"`
	Parent   string `json:"parent"`
	Template *struct {
		Location     [3]float64 `json:"location"`
		Rotation     [3]float64 `json:"rotation"`
		Scale        [3]float64 `json:"scale"`
		Movable      bool       `json:"movable"`
		Visible      bool       `json:"visible"`
		HiddenInGame bool       `json:"hidden_in_game"`

		StaticMesh      string  `json:"static_mesh"`
		SimulatePhysics bool    `json:"simulate_physics"`
		OverlapEvents   bool    `json:"generate_overlap_events"`
		Mass            float64 `json:"mass"`
		CastShadow      bool    `json:"cast_shadow"`
		NumMaterials    int     `json:"num_materials"`

		Intensity   float64    `json:"intensity"`
		LightColor  [4]float64 `json:"light_color"`
		CastShadows bool       `json:"cast_shadows"`
	} `json:"template"`
}

type variableAsset struct {
	Name                 string            `json:"name" validate:"required"`
	Type                 pinTypeAsset      `json:"type"`
	Category             string            `json:"category"`
	FriendlyName         string            `json:"friendly_name"`
	Metadata             map[string]string `json:"metadata"`
	Flags                []string          `json:"flags"`
	RepNotifyFunction    string            `json:"rep_notify_function"`
	ReplicationCondition int               `json:"replication_condition"`
	DefaultValue         string            `json:"default_value"`
	Guid                 string            `json:"guid"`
}

type pinTypeAsset struct {
	Category      string `json:"category" validate:"required"`
	SubCategory   string `json:"sub_category"`
	ObjectType    string `json:"object_type"`
	ObjectPath    string `json:"object_path"`
	Container     string `json:"container"`
	IsReference   bool   `json:"is_reference"`
	IsConst       bool   `json:"is_const"`
	IsWeakPointer bool   `json:"is_weak_pointer"`
}

type graphAsset struct {
	Name  string      `json:"name" validate:"required"`
	Nodes []nodeAsset `json:"nodes" validate:"dive"`
	Links []linkAsset `json:"links" validate:"dive"`
}

type nodeAsset struct {
	ID     string     `json:"id"`
	Kind   string     `json:"kind" validate:"required"`
	Class  string     `json:"class"`
	Title  string     `json:"title"`
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	Member string     `json:"member"`
	Pins   []pinAsset `json:"pins" validate:"dive"`

	// function_entry only
	FunctionCategory string          `json:"function_category"`
	Tooltip          string          `json:"tooltip"`
	Pure             bool            `json:"pure"`
	Access           string          `json:"access"`
	Locals           []variableAsset `json:"locals"`
}

type pinAsset struct {
	ID           string       `json:"id" validate:"required"`
	Name         string       `json:"name"`
	Direction    string       `json:"direction" validate:"omitempty,oneof=input output"`
	Type         pinTypeAsset `json:"type"`
	DefaultValue string       `json:"default_value"`
}

type linkAsset struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

// Loader materializes blueprint asset files into the live object model and
// registers them.
type Loader struct {
	registry *Service
	validate *validator.Validate
	logger   arbor.ILogger
}

// NewLoader creates an asset loader targeting registry.
func NewLoader(registry *Service, logger arbor.ILogger) *Loader {
	return &Loader{
		registry: registry,
		validate: validator.New(),
		logger:   logger,
	}
}

// LoadDirectory loads every *.json asset under dir and registers the
// resulting blueprints. A missing directory is not an error; a malformed
// asset file is logged and skipped.
func (l *Loader) LoadDirectory(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		l.logger.Info().Str("dir", dir).Msg("Blueprint asset directory does not exist, skipping")
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read asset directory: %w", err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := l.LoadFile(path); err != nil {
			l.logger.Warn().Err(err).Str("file", path).Msg("Skipping malformed blueprint asset")
			continue
		}
		loaded++
	}

	l.logger.Info().Int("count", loaded).Str("dir", dir).Msg("Loaded blueprint assets")

	return loaded, nil
}

// LoadFile loads one asset file and registers the blueprint it describes.
func (l *Loader) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read asset file: %w", err)
	}

	var asset blueprintAsset
	if err := json.Unmarshal(data, &asset); err != nil {
		return fmt.Errorf("failed to parse asset file: %w", err)
	}
	if err := l.validate.Struct(&asset); err != nil {
		return fmt.Errorf("asset validation failed: %w", err)
	}

	bp, err := l.build(&asset)
	if err != nil {
		return err
	}

	return l.registry.Register(bp)
}

// build materializes one asset into the live model.
func (l *Loader) build(asset *blueprintAsset) (*blueprint.Blueprint, error) {
	bp := &blueprint.Blueprint{
		Name:        asset.Name,
		Path:        asset.Path,
		ParentClass: asset.ParentClass,
		Type:        blueprint.BlueprintType(asset.Type),
		Description: asset.Description,
		Category:    asset.Category,
		Package:     asset.Package,
	}

	for i := range asset.Components {
		bp.Components = append(bp.Components, buildComponent(&asset.Components[i]))
	}
	for i := range asset.Variables {
		bp.Variables = append(bp.Variables, buildVariable(&asset.Variables[i]))
	}

	for i := range asset.EventGraphs {
		g, err := l.buildGraph(&asset.EventGraphs[i])
		if err != nil {
			return nil, err
		}
		bp.EventGraphs = append(bp.EventGraphs, g)
	}
	for i := range asset.Functions {
		g, err := l.buildGraph(&asset.Functions[i])
		if err != nil {
			return nil, err
		}
		bp.FunctionGraphs = append(bp.FunctionGraphs, g)
	}
	for i := range asset.OtherGraphs {
		g, err := l.buildGraph(&asset.OtherGraphs[i])
		if err != nil {
			return nil, err
		}
		bp.OtherGraphs = append(bp.OtherGraphs, g)
	}

	return bp, nil
}

// buildGraph materializes nodes in two passes: nodes and pins first, then
// links resolved by pin ID. Pin IDs are scoped to the graph.
func (l *Loader) buildGraph(asset *graphAsset) (*blueprint.Graph, error) {
	g := &blueprint.Graph{Name: asset.Name}
	pins := make(map[string]*blueprint.Pin)

	for i := range asset.Nodes {
		node, err := buildNode(&asset.Nodes[i])
		if err != nil {
			return nil, fmt.Errorf("graph %s: %w", asset.Name, err)
		}
		for _, p := range node.Pins() {
			if _, dup := pins[p.ID]; dup {
				return nil, fmt.Errorf("graph %s: duplicate pin id %s", asset.Name, p.ID)
			}
			pins[p.ID] = p
		}
		g.AddNode(node)
	}

	for _, link := range asset.Links {
		from, ok := pins[link.From]
		if !ok {
			return nil, fmt.Errorf("graph %s: link references unknown pin %s", asset.Name, link.From)
		}
		to, ok := pins[link.To]
		if !ok {
			return nil, fmt.Errorf("graph %s: link references unknown pin %s", asset.Name, link.To)
		}
		from.Link(to)
	}

	return g, nil
}

// buildNode dispatches on the asset's declared kind. Nodes without an
// explicit ID receive a generated one.
func buildNode(asset *nodeAsset) (blueprint.Node, error) {
	base := blueprint.NodeBase{
		Guid:      asset.ID,
		Class:     asset.Class,
		NodeTitle: asset.Title,
		PosX:      asset.X,
		PosY:      asset.Y,
	}
	if base.Guid == "" {
		base.Guid = uuid.NewString()
	}
	for i := range asset.Pins {
		base.NodePins = append(base.NodePins, buildPin(&asset.Pins[i]))
	}

	switch asset.Kind {
	case "event":
		if base.Class == "" {
			base.Class = "K2Node_Event"
		}
		return &blueprint.EventNode{NodeBase: base, Event: asset.Member}, nil
	case "call_function":
		if base.Class == "" {
			base.Class = "K2Node_CallFunction"
		}
		return &blueprint.CallFunctionNode{NodeBase: base, Function: asset.Member}, nil
	case "variable_get":
		if base.Class == "" {
			base.Class = "K2Node_VariableGet"
		}
		return &blueprint.VariableGetNode{NodeBase: base, Variable: asset.Member}, nil
	case "variable_set":
		if base.Class == "" {
			base.Class = "K2Node_VariableSet"
		}
		return &blueprint.VariableSetNode{NodeBase: base, Variable: asset.Member}, nil
	case "custom_event":
		if base.Class == "" {
			base.Class = "K2Node_CustomEvent"
		}
		return &blueprint.CustomEventNode{NodeBase: base, Event: asset.Member}, nil
	case "function_entry":
		if base.Class == "" {
			base.Class = "K2Node_FunctionEntry"
		}
		node := &blueprint.FunctionEntryNode{
			NodeBase: base,
			Metadata: blueprint.FunctionMetadata{
				Category: asset.FunctionCategory,
				Tooltip:  asset.Tooltip,
				Pure:     asset.Pure,
			},
			Flags: accessFlags(asset.Access),
		}
		for i := range asset.Locals {
			node.Locals = append(node.Locals, buildVariable(&asset.Locals[i]))
		}
		return node, nil
	case "function_result":
		if base.Class == "" {
			base.Class = "K2Node_FunctionResult"
		}
		return &blueprint.FunctionResultNode{NodeBase: base}, nil
	case "comment":
		if base.Class == "" {
			base.Class = "EdGraphNode_Comment"
		}
		return &blueprint.CommentNode{NodeBase: base, Text: asset.Member}, nil
	default:
		return nil, fmt.Errorf("unknown node kind %q", asset.Kind)
	}
}

func buildPin(asset *pinAsset) *blueprint.Pin {
	dir := blueprint.PinInput
	if asset.Direction == "output" {
		dir = blueprint.PinOutput
	}
	return &blueprint.Pin{
		ID:           asset.ID,
		Name:         asset.Name,
		Direction:    dir,
		Type:         buildPinType(&asset.Type),
		DefaultValue: asset.DefaultValue,
	}
}

func buildPinType(asset *pinTypeAsset) blueprint.PinType {
	t := blueprint.PinType{
		Category:      asset.Category,
		SubCategory:   asset.SubCategory,
		IsReference:   asset.IsReference,
		IsConst:       asset.IsConst,
		IsWeakPointer: asset.IsWeakPointer,
	}
	if asset.ObjectType != "" {
		t.SubCategoryObject = &blueprint.ObjectRef{Name: asset.ObjectType, Path: asset.ObjectPath}
	}
	switch asset.Container {
	case "array":
		t.Container = blueprint.ContainerArray
	case "set":
		t.Container = blueprint.ContainerSet
	case "map":
		t.Container = blueprint.ContainerMap
	}
	return t
}

func buildVariable(asset *variableAsset) blueprint.VariableDescription {
	v := blueprint.VariableDescription{
		Name:                 asset.Name,
		Type:                 buildPinType(&asset.Type),
		Category:             asset.Category,
		FriendlyName:         asset.FriendlyName,
		Flags:                propertyFlags(asset.Flags),
		RepNotifyFunc:        asset.RepNotifyFunction,
		ReplicationCondition: blueprint.LifetimeCondition(asset.ReplicationCondition),
		DefaultValue:         asset.DefaultValue,
		Guid:                 asset.Guid,
	}
	for key, value := range asset.Metadata {
		v.Metadata = append(v.Metadata, blueprint.MetadataEntry{Key: key, Value: value})
	}
	return v
}

func propertyFlags(names []string) blueprint.PropertyFlag {
	var flags blueprint.PropertyFlag
	for _, name := range names {
		switch name {
		case "edit":
			flags |= blueprint.PropEdit
		case "blueprint_visible":
			flags |= blueprint.PropBlueprintVisible
		case "blueprint_read_only":
			flags |= blueprint.PropBlueprintReadOnly
		case "transient":
			flags |= blueprint.PropTransient
		case "config":
			flags |= blueprint.PropConfig
		case "expose_on_spawn":
			flags |= blueprint.PropExposeOnSpawn
		case "replicated":
			flags |= blueprint.PropReplicated
		}
	}
	return flags
}

func accessFlags(access string) blueprint.FunctionFlag {
	switch access {
	case "private":
		return blueprint.FuncPrivate
	case "protected":
		return blueprint.FuncProtected
	default:
		return 0
	}
}

// buildComponent picks the template shape from the component's class name.
// Mesh-bearing and light-emitting classes get their enrichment facets;
// classes with a template block but neither facet get a plain scene
// template; classes without a template block are non-spatial.
func buildComponent(asset *componentAsset) *blueprint.ComponentNode {
	node := &blueprint.ComponentNode{
		Name:       asset.Name,
		ParentName: asset.Parent,
	}

	if asset.Template == nil {
		node.Template = &blueprint.ActorComponent{Class: asset.Class}
		return node
	}

	scene := blueprint.SceneComponent{
		Class:        asset.Class,
		Location:     vec3(asset.Template.Location),
		Rotation:     vec3(asset.Template.Rotation),
		Scale:        vec3(asset.Template.Scale),
		Movable:      asset.Template.Movable,
		Visible:      asset.Template.Visible,
		HiddenInGame: asset.Template.HiddenInGame,
	}

	switch {
	case strings.Contains(asset.Class, "MeshComponent"):
		node.Template = &blueprint.StaticMeshComponent{
			SceneComponent:  scene,
			Mesh:            asset.Template.StaticMesh,
			SimulatePhysics: asset.Template.SimulatePhysics,
			OverlapEvents:   asset.Template.OverlapEvents,
			MassKg:          asset.Template.Mass,
			CastShadow:      asset.Template.CastShadow,
			Materials:       asset.Template.NumMaterials,
		}
	case strings.Contains(asset.Class, "LightComponent"):
		node.Template = &blueprint.LightComponent{
			SceneComponent: scene,
			LightIntensity: asset.Template.Intensity,
			Color: blueprint.Color{
				R: asset.Template.LightColor[0],
				G: asset.Template.LightColor[1],
				B: asset.Template.LightColor[2],
				A: asset.Template.LightColor[3],
			},
			ShadowCasting: asset.Template.CastShadows,
		}
	default:
		node.Template = &scene
	}

	return node
}

func vec3(v [3]float64) blueprint.Vec3 {
	return blueprint.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
