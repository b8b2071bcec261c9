package blueprint

// Vec3 is a three-component vector. Rotations are (pitch, yaw, roll).
type Vec3 struct {
	X, Y, Z float64
}

// Color is an RGBA color with float channels.
type Color struct {
	R, G, B, A float64
}

// ComponentTemplate is the prototype object held by a component tree node.
// Templates advertise optional facets through the Spatial, MeshSurface and
// LightEmitter capability interfaces; a template may support zero, one or
// many of them.
type ComponentTemplate interface {
	TypeName() string
}

// Spatial is implemented by templates that support 3-D placement.
type Spatial interface {
	RelativeLocation() Vec3
	RelativeRotation() Vec3
	RelativeScale() Vec3
	IsMovable() bool
	IsVisible() bool
	IsHiddenInGame() bool
}

// MeshSurface is implemented by templates that render a mesh.
type MeshSurface interface {
	MeshAssetPath() string
	SimulatesPhysics() bool
	GeneratesOverlapEvents() bool
	Mass() float64
	CastsShadow() bool
	MaterialCount() int
}

// LightEmitter is implemented by templates that illuminate the scene.
type LightEmitter interface {
	Intensity() float64
	LightColor() Color
	CastsShadows() bool
}

// ActorComponent is a template with no spatial presence (timers, audio,
// movement logic). It contributes no enrichment blocks.
type ActorComponent struct {
	Class string
}

func (c *ActorComponent) TypeName() string { return c.Class }

// SceneComponent is a template with a transform in the owner's space.
type SceneComponent struct {
	Class        string
	Location     Vec3
	Rotation     Vec3
	Scale        Vec3
	Movable      bool
	Visible      bool
	HiddenInGame bool
}

func (c *SceneComponent) TypeName() string { return c.Class }

func (c *SceneComponent) RelativeLocation() Vec3 { return c.Location }
func (c *SceneComponent) RelativeRotation() Vec3 { return c.Rotation }
func (c *SceneComponent) RelativeScale() Vec3    { return c.Scale }
func (c *SceneComponent) IsMovable() bool        { return c.Movable }
func (c *SceneComponent) IsVisible() bool        { return c.Visible }
func (c *SceneComponent) IsHiddenInGame() bool   { return c.HiddenInGame }

// StaticMeshComponent renders a mesh asset and optionally simulates physics.
type StaticMeshComponent struct {
	SceneComponent
	Mesh            string
	SimulatePhysics bool
	OverlapEvents   bool
	MassKg          float64
	CastShadow      bool
	Materials       int
}

func (c *StaticMeshComponent) MeshAssetPath() string        { return c.Mesh }
func (c *StaticMeshComponent) SimulatesPhysics() bool       { return c.SimulatePhysics }
func (c *StaticMeshComponent) GeneratesOverlapEvents() bool { return c.OverlapEvents }
func (c *StaticMeshComponent) Mass() float64                { return c.MassKg }
func (c *StaticMeshComponent) CastsShadow() bool            { return c.CastShadow }
func (c *StaticMeshComponent) MaterialCount() int           { return c.Materials }

// LightComponent illuminates the scene. Point and spot lights reuse it with
// different Class names.
type LightComponent struct {
	SceneComponent
	LightIntensity float64
	Color          Color
	ShadowCasting  bool
}

func (c *LightComponent) Intensity() float64 { return c.LightIntensity }
func (c *LightComponent) LightColor() Color  { return c.Color }
func (c *LightComponent) CastsShadows() bool { return c.ShadowCasting }

// ComponentNode is one entry in the blueprint's component tree. ParentName
// is a name back-reference to another ComponentNode (never an ownership
// pointer); it is empty for roots. Template may be nil for
// partially-initialized entries, which extraction skips.
type ComponentNode struct {
	Name       string
	ParentName string
	Template   ComponentTemplate
}
