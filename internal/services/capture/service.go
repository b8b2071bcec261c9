// Package capture implements the console capture device: a fixed-capacity
// ring buffer of log entries that lets remote consumers read recent
// diagnostic output without access to the process's log stream.
package capture

import (
	"strings"
	"sync"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/inspecto/internal/interfaces"
)

// DefaultMaxEntries is the buffer capacity used when the configuration
// supplies none.
const DefaultMaxEntries = 1000

// Service is a thread-safe circular log buffer. Once full, each new entry
// overwrites the oldest one.
type Service struct {
	mu      sync.RWMutex
	entries []interfaces.CapturedLog
	next    int
	full    bool
	logger  arbor.ILogger
}

// NewService creates a capture service with the given capacity. Capacities
// below 1 fall back to DefaultMaxEntries.
func NewService(maxEntries int, logger arbor.ILogger) *Service {
	if maxEntries < 1 {
		logger.Warn().Int("max_entries", maxEntries).Msg("Invalid capture capacity, using default")
		maxEntries = DefaultMaxEntries
	}
	return &Service{
		entries: make([]interfaces.CapturedLog, maxEntries),
		logger:  logger,
	}
}

// Capture appends one entry, stamping it with the current UTC time.
func (s *Service) Capture(category, severity, message string) {
	entry := interfaces.CapturedLog{
		Timestamp: time.Now().UTC().Format("2006.01.02-15.04.05"),
		Category:  category,
		Severity:  severity,
		Message:   message,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[s.next] = entry
	s.next++
	if s.next == len(s.entries) {
		s.next = 0
		s.full = true
	}
}

// Entries returns up to maxEntries of the most recent retained entries in
// oldest-first order. severityFilter narrows to one severity
// (interfaces.SeverityAll disables it); categoryFilter is a case-insensitive
// substring match (empty disables it). maxEntries <= 0 returns everything
// retained.
func (s *Service) Entries(maxEntries int, severityFilter, categoryFilter string) []interfaces.CapturedLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	retained := s.retainedLocked()

	matched := make([]interfaces.CapturedLog, 0, len(retained))
	for _, e := range retained {
		if severityFilter != "" && severityFilter != interfaces.SeverityAll && e.Severity != severityFilter {
			continue
		}
		if categoryFilter != "" && !strings.Contains(strings.ToLower(e.Category), strings.ToLower(categoryFilter)) {
			continue
		}
		matched = append(matched, e)
	}

	if maxEntries > 0 && len(matched) > maxEntries {
		matched = matched[len(matched)-maxEntries:]
	}

	return matched
}

// Count returns the number of entries currently retained.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.full {
		return len(s.entries)
	}
	return s.next
}

// retainedLocked copies the live window in oldest-first order. Callers must
// hold at least the read lock.
func (s *Service) retainedLocked() []interfaces.CapturedLog {
	if !s.full {
		out := make([]interfaces.CapturedLog, s.next)
		copy(out, s.entries[:s.next])
		return out
	}

	out := make([]interfaces.CapturedLog, 0, len(s.entries))
	out = append(out, s.entries[s.next:]...)
	out = append(out, s.entries[:s.next]...)
	return out
}
