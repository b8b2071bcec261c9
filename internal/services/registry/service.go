// Package registry maintains the set of live blueprints the extraction
// engine can resolve. Blueprints are registered at startup from asset files
// or at runtime over the API; lookup is by class name first, then by full
// asset path.
package registry

import (
	"fmt"
	"sync"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/inspecto/internal/blueprint"
	"github.com/ternarybob/inspecto/internal/interfaces"
)

// Service is an in-memory blueprint registry safe for concurrent use.
type Service struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]*blueprint.Blueprint
	byPath map[string]*blueprint.Blueprint
	logger arbor.ILogger
}

// NewService creates an empty registry.
func NewService(logger arbor.ILogger) *Service {
	return &Service{
		byName: make(map[string]*blueprint.Blueprint),
		byPath: make(map[string]*blueprint.Blueprint),
		logger: logger,
	}
}

// Register adds bp to the registry. Re-registering a name replaces the
// previous entry, which keeps the registry consistent with editors that
// reload assets in place.
func (s *Service) Register(bp *blueprint.Blueprint) error {
	if bp == nil {
		return fmt.Errorf("cannot register nil blueprint")
	}
	if bp.Name == "" {
		return fmt.Errorf("cannot register blueprint without a name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[bp.Name]; exists {
		s.logger.Warn().Str("blueprint", bp.Name).Msg("Replacing previously registered blueprint")
	} else {
		s.order = append(s.order, bp.Name)
	}

	s.byName[bp.Name] = bp
	if bp.Path != "" {
		s.byPath[bp.Path] = bp
	}

	s.logger.Debug().Str("blueprint", bp.Name).Str("path", bp.Path).Msg("Registered blueprint")

	return nil
}

// Find resolves name against registered class names first, then full asset
// paths.
func (s *Service) Find(name string) (*blueprint.Blueprint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if bp, ok := s.byName[name]; ok {
		return bp, nil
	}
	if bp, ok := s.byPath[name]; ok {
		return bp, nil
	}

	return nil, interfaces.ErrBlueprintNotFound
}

// List returns summaries in registration order.
func (s *Service) List() []interfaces.BlueprintSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]interfaces.BlueprintSummary, 0, len(s.order))
	for _, name := range s.order {
		bp := s.byName[name]
		summaries = append(summaries, summarize(bp))
	}
	return summaries
}

// Count returns the number of registered blueprints.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func summarize(bp *blueprint.Blueprint) interfaces.BlueprintSummary {
	functions := 0
	for _, g := range bp.FunctionGraphs {
		if g != nil && g.Name != blueprint.ConstructionScriptName {
			functions++
		}
	}
	return interfaces.BlueprintSummary{
		Name:        bp.Name,
		Path:        bp.Path,
		ParentClass: bp.ParentClass,
		Graphs:      len(bp.AllGraphs()),
		Components:  len(bp.Components),
		Variables:   len(bp.Variables),
		Functions:   functions,
	}
}
