package models

import "time"

// Snapshot is a persisted extraction result. Snapshots are write-once: the
// scheduler and the extract endpoint append them, the API only reads them.
type Snapshot struct {
	ID            string             `json:"id"` // snap_{uuid}
	BlueprintName string             `json:"blueprint_name" badgerhold:"index"`
	Document      *BlueprintDocument `json:"document"`
	NodeCount     int                `json:"node_count"`
	CreatedAt     time.Time          `json:"created_at"`
}

// TotalNodes sums node counts across every graph in the snapshot's document.
func (s *Snapshot) TotalNodes() int {
	if s.Document == nil {
		return 0
	}
	total := 0
	for _, g := range s.Document.EventGraphs {
		total += g.NodeCount
	}
	for _, f := range s.Document.Functions {
		total += f.Graph.NodeCount
	}
	return total
}
