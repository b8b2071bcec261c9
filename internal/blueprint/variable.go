package blueprint

// PropertyFlag is the bitmask of declaration flags on a blueprint variable.
type PropertyFlag uint64

const (
	PropEdit PropertyFlag = 1 << iota
	PropBlueprintVisible
	PropBlueprintReadOnly
	PropTransient
	PropConfig
	PropExposeOnSpawn
	PropReplicated
)

// Has reports whether every bit in flag is set.
func (f PropertyFlag) Has(flag PropertyFlag) bool {
	return f&flag == flag
}

// LifetimeCondition is the replication condition attached to a replicated
// variable. The zero value means unconditional replication.
type LifetimeCondition int

const (
	CondNone LifetimeCondition = iota
	CondInitialOnly
	CondOwnerOnly
	CondSkipOwner
	CondSimulatedOnly
	CondAutonomousOnly
	CondSimulatedOrPhysics
	CondInitialOrOwner
	CondCustom
	CondReplayOrOwner
	CondReplayOnly
	CondSimulatedOnlyNoReplay
	CondSimulatedOrPhysicsNoReplay
	CondSkipReplay
)

// MetadataEntry is one key/value metadata pair on a variable declaration.
type MetadataEntry struct {
	Key   string
	Value string
}

// VariableDescription is one declared variable on a blueprint, or a local
// variable attached to a function entry node.
type VariableDescription struct {
	Name                 string
	Type                 PinType
	Category             string
	FriendlyName         string
	Metadata             []MetadataEntry
	Flags                PropertyFlag
	RepNotifyFunc        string
	ReplicationCondition LifetimeCondition
	DefaultValue         string
	Guid                 string
}
