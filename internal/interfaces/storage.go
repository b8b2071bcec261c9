package interfaces

import "github.com/ternarybob/inspecto/internal/models"

// SnapshotStorage persists extraction results.
type SnapshotStorage interface {
	// SaveSnapshot stores a snapshot, assigning CreatedAt when unset.
	SaveSnapshot(snap *models.Snapshot) error

	// GetSnapshot retrieves a snapshot by id.
	GetSnapshot(id string) (*models.Snapshot, error)

	// ListSnapshots returns snapshots newest-first, optionally filtered by
	// blueprint name. limit <= 0 means no limit.
	ListSnapshots(blueprintName string, limit int) ([]*models.Snapshot, error)

	// DeleteSnapshot removes one snapshot by id.
	DeleteSnapshot(id string) error

	// DeleteSnapshots removes every snapshot for a blueprint and returns
	// the number deleted.
	DeleteSnapshots(blueprintName string) (int, error)

	// CountSnapshots returns the total number of stored snapshots.
	CountSnapshots() (int, error)
}

// StorageManager owns the database connection and hands out typed storages.
type StorageManager interface {
	SnapshotStorage() SnapshotStorage
	Close() error
}
