package badger

import (
	"fmt"
	"sort"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/inspecto/internal/common"
	"github.com/ternarybob/inspecto/internal/interfaces"
	"github.com/ternarybob/inspecto/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// SnapshotStorage implements the SnapshotStorage interface for Badger
type SnapshotStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewSnapshotStorage creates a new SnapshotStorage instance
func NewSnapshotStorage(db *BadgerDB, logger arbor.ILogger) interfaces.SnapshotStorage {
	return &SnapshotStorage{
		db:     db,
		logger: logger,
	}
}

func (s *SnapshotStorage) SaveSnapshot(snap *models.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("snapshot is required")
	}
	if snap.BlueprintName == "" {
		return fmt.Errorf("snapshot blueprint name is required")
	}

	if snap.ID == "" {
		snap.ID = common.NewSnapshotID()
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now()
	}
	if snap.NodeCount == 0 {
		snap.NodeCount = snap.TotalNodes()
	}

	if err := s.db.Store().Upsert(snap.ID, snap); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	s.logger.Debug().Str("id", snap.ID).Str("blueprint", snap.BlueprintName).Msg("Saved snapshot")

	return nil
}

func (s *SnapshotStorage) GetSnapshot(id string) (*models.Snapshot, error) {
	var snap models.Snapshot
	if err := s.db.Store().Get(id, &snap); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("snapshot not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return &snap, nil
}

func (s *SnapshotStorage) ListSnapshots(blueprintName string, limit int) ([]*models.Snapshot, error) {
	var snaps []models.Snapshot

	var err error
	if blueprintName != "" {
		err = s.db.Store().Find(&snaps, badgerhold.Where("BlueprintName").Eq(blueprintName).Index("BlueprintName"))
	} else {
		err = s.db.Store().Find(&snaps, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].CreatedAt.After(snaps[j].CreatedAt)
	})

	if limit > 0 && len(snaps) > limit {
		snaps = snaps[:limit]
	}

	out := make([]*models.Snapshot, len(snaps))
	for i := range snaps {
		out[i] = &snaps[i]
	}
	return out, nil
}

func (s *SnapshotStorage) DeleteSnapshot(id string) error {
	if err := s.db.Store().Delete(id, &models.Snapshot{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return fmt.Errorf("snapshot not found: %s", id)
		}
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStorage) DeleteSnapshots(blueprintName string) (int, error) {
	if blueprintName == "" {
		return 0, fmt.Errorf("blueprint name is required")
	}

	var snaps []models.Snapshot
	if err := s.db.Store().Find(&snaps, badgerhold.Where("BlueprintName").Eq(blueprintName).Index("BlueprintName")); err != nil {
		return 0, fmt.Errorf("failed to find snapshots: %w", err)
	}

	deleted := 0
	for i := range snaps {
		if err := s.db.Store().Delete(snaps[i].ID, &models.Snapshot{}); err != nil {
			s.logger.Warn().Err(err).Str("id", snaps[i].ID).Msg("Failed to delete snapshot")
			continue
		}
		deleted++
	}

	s.logger.Debug().Int("count", deleted).Str("blueprint", blueprintName).Msg("Deleted snapshots")

	return deleted, nil
}

func (s *SnapshotStorage) CountSnapshots() (int, error) {
	count, err := s.db.Store().Count(&models.Snapshot{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count snapshots: %w", err)
	}
	return int(count), nil
}
