package interfaces

import (
	"errors"

	"github.com/ternarybob/inspecto/internal/blueprint"
)

// ErrBlueprintNotFound is returned when no registered blueprint matches the
// requested name or path. It is the only hard error the extraction engine
// surfaces.
var ErrBlueprintNotFound = errors.New("blueprint not found")

// BlueprintSummary is the listing form of a registered blueprint.
type BlueprintSummary struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	ParentClass string `json:"parent_class"`
	Graphs      int    `json:"graphs"`
	Components  int    `json:"components"`
	Variables   int    `json:"variables"`
	Functions   int    `json:"functions"`
}

// BlueprintResolver resolves a class-definition name to a live blueprint.
// The engine treats this as injected; a failed lookup is a request-level
// error, not an engine fault.
type BlueprintResolver interface {
	// Find resolves name against registered blueprint names, then full
	// asset paths. Returns ErrBlueprintNotFound when nothing matches.
	Find(name string) (*blueprint.Blueprint, error)

	// List returns summaries of every registered blueprint in registration
	// order.
	List() []BlueprintSummary

	// Count returns the number of registered blueprints.
	Count() int
}
