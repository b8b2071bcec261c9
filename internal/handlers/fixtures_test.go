package handlers

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/inspecto/internal/blueprint"
	"github.com/ternarybob/inspecto/internal/interfaces"
	"github.com/ternarybob/inspecto/internal/models"
)

type stubResolver struct {
	summaries []interfaces.BlueprintSummary
}

func (r *stubResolver) Find(string) (*blueprint.Blueprint, error) {
	return nil, interfaces.ErrBlueprintNotFound
}
func (r *stubResolver) List() []interfaces.BlueprintSummary { return r.summaries }
func (r *stubResolver) Count() int                          { return len(r.summaries) }

type stubExtractor struct {
	docs map[string]*models.BlueprintDocument
}

func (e *stubExtractor) Extract(_ context.Context, name string) (*models.BlueprintDocument, error) {
	if doc, ok := e.docs[name]; ok {
		return doc, nil
	}
	return nil, fmt.Errorf("%w: %s", interfaces.ErrBlueprintNotFound, name)
}

type stubStorage struct {
	snaps     map[string]*models.Snapshot
	saved     []*models.Snapshot
	deleted   []string
	listErr   error
	saveCalls int
}

func newStubStorage() *stubStorage {
	return &stubStorage{snaps: map[string]*models.Snapshot{}}
}

func (s *stubStorage) SaveSnapshot(snap *models.Snapshot) error {
	s.saveCalls++
	if snap.ID == "" {
		snap.ID = fmt.Sprintf("snap_%d", s.saveCalls)
	}
	s.snaps[snap.ID] = snap
	s.saved = append(s.saved, snap)
	return nil
}

func (s *stubStorage) GetSnapshot(id string) (*models.Snapshot, error) {
	if snap, ok := s.snaps[id]; ok {
		return snap, nil
	}
	return nil, fmt.Errorf("snapshot not found: %s", id)
}

func (s *stubStorage) ListSnapshots(blueprintName string, limit int) ([]*models.Snapshot, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []*models.Snapshot
	for _, snap := range s.saved {
		if blueprintName != "" && snap.BlueprintName != blueprintName {
			continue
		}
		out = append(out, snap)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *stubStorage) DeleteSnapshot(id string) error {
	delete(s.snaps, id)
	return nil
}

func (s *stubStorage) DeleteSnapshots(blueprintName string) (int, error) {
	s.deleted = append(s.deleted, blueprintName)
	count := 0
	for id, snap := range s.snaps {
		if snap.BlueprintName == blueprintName {
			delete(s.snaps, id)
			count++
		}
	}
	return count, nil
}

func (s *stubStorage) CountSnapshots() (int, error) { return len(s.snaps), nil }

type stubCapture struct {
	entries []interfaces.CapturedLog
}

func (c *stubCapture) Capture(category, severity, message string) {
	c.entries = append(c.entries, interfaces.CapturedLog{Category: category, Severity: severity, Message: message})
}

func (c *stubCapture) Entries(maxEntries int, severityFilter, categoryFilter string) []interfaces.CapturedLog {
	out := []interfaces.CapturedLog{}
	for _, e := range c.entries {
		if severityFilter != "" && severityFilter != interfaces.SeverityAll && e.Severity != severityFilter {
			continue
		}
		out = append(out, e)
	}
	if maxEntries > 0 && len(out) > maxEntries {
		out = out[len(out)-maxEntries:]
	}
	return out
}

func (c *stubCapture) Count() int { return len(c.entries) }

func testLogger() arbor.ILogger {
	return arbor.NewLogger()
}

func sampleDocument(name string) *models.BlueprintDocument {
	return &models.BlueprintDocument{
		Success: true,
		Info:    models.BlueprintInfo{Name: name, ParentClass: "Actor", BlueprintType: "Normal"},
		Components: []models.ComponentDoc{
			{Name: "DefaultSceneRoot", Type: "SceneComponent", ParentComponent: "None"},
		},
		Variables: []models.VariableDoc{},
		Functions: []models.FunctionDoc{},
		EventGraphs: []models.GraphDocument{
			{Name: "EventGraph", Kind: models.GraphKindEventGraph, Nodes: []models.NodeDoc{}, Connections: []models.ConnectionDoc{}, NodeCount: 2, ConnectionCount: 1},
		},
	}
}
