package models

// Container kinds emitted in TypeInfo.ContainerType.
const (
	ContainerNone  = "none"
	ContainerArray = "array"
	ContainerSet   = "set"
	ContainerMap   = "map"
)

// Replication modes emitted in VariableDoc.Replication.
const (
	ReplicationNone       = "None"
	ReplicationReplicated = "Replicated"
	ReplicationRepNotify  = "RepNotify"
)

// Access specifiers emitted in FunctionDoc.AccessSpecifier.
const (
	AccessPublic    = "public"
	AccessPrivate   = "private"
	AccessProtected = "protected"
)

// BlueprintInfo is the metadata block of an extracted blueprint.
type BlueprintInfo struct {
	Name          string `json:"name"`
	Path          string `json:"path"`
	ParentClass   string `json:"parent_class"`
	BlueprintType string `json:"blueprint_type"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Package       string `json:"package,omitempty"`
}

// Transform is the spatial placement of a component template.
type Transform struct {
	Location [3]float64 `json:"location"`
	Rotation [3]float64 `json:"rotation"`
	Scale    [3]float64 `json:"scale"`
}

// MeshProperties is the rendering/physics enrichment block for mesh-bearing
// component templates.
type MeshProperties struct {
	StaticMesh            string  `json:"static_mesh"`
	SimulatePhysics       bool    `json:"simulate_physics"`
	GenerateOverlapEvents bool    `json:"generate_overlap_events"`
	Mass                  float64 `json:"mass"`
	CastShadow            bool    `json:"cast_shadow"`
	NumMaterials          int     `json:"num_materials"`
}

// LightProperties is the illumination enrichment block for light-emitting
// component templates.
type LightProperties struct {
	Intensity   float64    `json:"intensity"`
	LightColor  [4]float64 `json:"light_color"`
	CastShadows bool       `json:"cast_shadows"`
}

// ComponentDoc describes one component template. ParentComponent is a
// free-text back-reference: it names another ComponentDoc in the same
// document or is the sentinel "None" for roots. Each enrichment block is
// independently optional.
type ComponentDoc struct {
	Name            string           `json:"name"`
	Type            string           `json:"type"`
	ParentComponent string           `json:"parent_component"`
	Transform       *Transform       `json:"transform,omitempty"`
	Mobility        *bool            `json:"mobility,omitempty"`
	Visible         *bool            `json:"visible,omitempty"`
	HiddenInGame    *bool            `json:"hidden_in_game,omitempty"`
	MeshProperties  *MeshProperties  `json:"mesh_properties,omitempty"`
	LightProperties *LightProperties `json:"light_properties,omitempty"`
}

// TypeInfo is the full type descriptor of a declared variable.
type TypeInfo struct {
	Category      string `json:"category"`
	SubCategory   string `json:"sub_category"`
	ContainerType string `json:"container_type"`
	ObjectType    string `json:"object_type,omitempty"`
	ObjectPath    string `json:"object_path,omitempty"`
	IsReference   bool   `json:"is_reference"`
	IsConst       bool   `json:"is_const"`
	IsWeakPointer bool   `json:"is_weak_pointer"`
}

// VariableFlags carries the declared variable's visibility and lifetime
// flags.
type VariableFlags struct {
	IsExposed           bool `json:"is_exposed"`
	IsBlueprintReadOnly bool `json:"is_blueprint_read_only"`
	IsEditable          bool `json:"is_editable"`
	IsBlueprintVisible  bool `json:"is_blueprint_visible"`
	IsTransient         bool `json:"is_transient"`
	IsConfig            bool `json:"is_config"`
}

// VariableDoc describes one declared blueprint variable. Type is the legacy
// compact form ("category" or "category:ObjectType") kept for backward
// compatibility with older consumers. Metadata is absent when the variable
// declares no metadata entries. ReplicationCondition is only present when
// the variable is replicated.
type VariableDoc struct {
	Name                 string            `json:"name"`
	TypeInfo             TypeInfo          `json:"type_info"`
	Type                 string            `json:"type"`
	Category             string            `json:"category"`
	FriendlyName         string            `json:"friendly_name"`
	Metadata             map[string]string `json:"metadata,omitempty"`
	Flags                VariableFlags     `json:"flags"`
	Replication          string            `json:"replication"`
	RepNotifyFunction    string            `json:"rep_notify_function,omitempty"`
	ReplicationCondition string            `json:"replication_condition,omitempty"`
	DefaultValue         string            `json:"default_value"`
	Guid                 string            `json:"guid"`
}

// ParamDoc describes one function input or output parameter.
type ParamDoc struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	SubType      string `json:"sub_type,omitempty"`
	ObjectType   string `json:"object_type,omitempty"`
	DefaultValue string `json:"default_value,omitempty"`
	IsReference  bool   `json:"is_reference"`
	IsConst      bool   `json:"is_const"`
}

// LocalVarDoc describes one local variable attached to a function's entry
// node.
type LocalVarDoc struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	SubType string `json:"sub_type,omitempty"`
}

// FunctionDoc describes one user-defined function: signature plus the full
// graph document.
type FunctionDoc struct {
	Name            string        `json:"name"`
	Category        string        `json:"category"`
	Description     string        `json:"description"`
	IsPure          bool          `json:"is_pure"`
	AccessSpecifier string        `json:"access_specifier"`
	Inputs          []ParamDoc    `json:"inputs"`
	Outputs         []ParamDoc    `json:"outputs"`
	LocalVariables  []LocalVarDoc `json:"local_variables"`
	Graph           GraphDocument `json:"graph"`
}

// BlueprintDocument is the top-level extraction result. It is constructed
// once per request, fully materialized, and never mutated after return.
type BlueprintDocument struct {
	Success     bool            `json:"success"`
	Info        BlueprintInfo   `json:"blueprint_info"`
	Components  []ComponentDoc  `json:"components"`
	Variables   []VariableDoc   `json:"variables"`
	Functions   []FunctionDoc   `json:"functions"`
	EventGraphs []GraphDocument `json:"event_graphs"`
}
