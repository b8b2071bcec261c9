// Package scheduler runs the periodic snapshot sweep: on each tick it
// extracts every registered blueprint, persists the result, and prunes old
// snapshots down to the configured retention.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/inspecto/internal/common"
	"github.com/ternarybob/inspecto/internal/interfaces"
	"github.com/ternarybob/inspecto/internal/models"
)

// Service owns the cron runner for snapshot sweeps.
type Service struct {
	config    *common.SnapshotsConfig
	resolver  interfaces.BlueprintResolver
	extractor interfaces.ExtractionService
	storage   interfaces.SnapshotStorage
	logger    arbor.ILogger

	cron    *cron.Cron
	entryID cron.EntryID
}

// NewService creates a snapshot sweep scheduler.
func NewService(config *common.SnapshotsConfig, resolver interfaces.BlueprintResolver, extractor interfaces.ExtractionService, storage interfaces.SnapshotStorage, logger arbor.ILogger) *Service {
	return &Service{
		config:    config,
		resolver:  resolver,
		extractor: extractor,
		storage:   storage,
		logger:    logger,
		cron:      cron.New(cron.WithSeconds()),
	}
}

// Start registers the sweep schedule and starts the cron runner. Disabled
// configurations start nothing and return nil.
func (s *Service) Start() error {
	if !s.config.Enabled {
		s.logger.Info().Msg("Snapshot scheduler disabled")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, func() {
		if err := s.Sweep(context.Background()); err != nil {
			s.logger.Warn().Err(err).Msg("Snapshot sweep failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule snapshot sweep: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.logger.Info().Str("schedule", s.config.Schedule).Msg("Snapshot scheduler started")

	return nil
}

// Stop halts the cron runner and waits for a running sweep to finish.
func (s *Service) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("Snapshot scheduler stopped")
}

// Sweep extracts and persists every registered blueprint, then prunes each
// blueprint's history down to the retention limit. Failures on one blueprint
// do not stop the sweep; the first error is returned after completion.
func (s *Service) Sweep(ctx context.Context) error {
	summaries := s.resolver.List()
	s.logger.Info().Int("blueprints", len(summaries)).Msg("Starting snapshot sweep")

	var firstErr error
	saved := 0
	for _, summary := range summaries {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		doc, err := s.extractor.Extract(ctx, summary.Name)
		if err != nil {
			s.logger.Warn().Err(err).Str("blueprint", summary.Name).Msg("Sweep extraction failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		snap := &models.Snapshot{
			BlueprintName: summary.Name,
			Document:      doc,
		}
		snap.NodeCount = snap.TotalNodes()
		if err := s.storage.SaveSnapshot(snap); err != nil {
			s.logger.Warn().Err(err).Str("blueprint", summary.Name).Msg("Sweep snapshot save failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		saved++

		if err := s.prune(summary.Name); err != nil {
			s.logger.Warn().Err(err).Str("blueprint", summary.Name).Msg("Sweep prune failed")
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	s.logger.Info().Int("saved", saved).Msg("Snapshot sweep complete")

	return firstErr
}

// prune deletes snapshots beyond the retention limit for one blueprint.
// Retention <= 0 keeps everything.
func (s *Service) prune(blueprintName string) error {
	retain := s.config.RetainPerBlueprint
	if retain <= 0 {
		return nil
	}

	snaps, err := s.storage.ListSnapshots(blueprintName, 0)
	if err != nil {
		return err
	}
	if len(snaps) <= retain {
		return nil
	}

	// ListSnapshots is newest-first; everything past the retention window
	// is deleted.
	pruned := 0
	for _, snap := range snaps[retain:] {
		if err := s.storage.DeleteSnapshot(snap.ID); err != nil {
			return err
		}
		pruned++
	}

	s.logger.Debug().Str("blueprint", blueprintName).Int("pruned", pruned).Msg("Pruned snapshots")

	return nil
}
