package capture

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/inspecto/internal/interfaces"
)

func newTestCapture(maxEntries int) *Service {
	return NewService(maxEntries, arbor.NewLogger())
}

func TestCapture_RetainsInOrder(t *testing.T) {
	s := newTestCapture(10)

	s.Capture("LogTemp", interfaces.SeverityDisplay, "first")
	s.Capture("LogTemp", interfaces.SeverityDisplay, "second")
	s.Capture("LogTemp", interfaces.SeverityDisplay, "third")

	entries := s.Entries(0, interfaces.SeverityAll, "")
	require.Len(t, entries, 3)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, "third", entries[2].Message)
	assert.Equal(t, 3, s.Count())
}

func TestCapture_WrapsAroundAtCapacity(t *testing.T) {
	s := newTestCapture(3)

	for i := 1; i <= 5; i++ {
		s.Capture("LogTemp", interfaces.SeverityDisplay, fmt.Sprintf("msg-%d", i))
	}

	entries := s.Entries(0, interfaces.SeverityAll, "")
	require.Len(t, entries, 3)
	assert.Equal(t, "msg-3", entries[0].Message)
	assert.Equal(t, "msg-5", entries[2].Message)
	assert.Equal(t, 3, s.Count())
}

func TestCapture_SeverityFilter(t *testing.T) {
	s := newTestCapture(10)

	s.Capture("LogTemp", interfaces.SeverityDisplay, "ok")
	s.Capture("LogTemp", interfaces.SeverityWarning, "careful")
	s.Capture("LogTemp", interfaces.SeverityError, "broken")

	errors := s.Entries(0, interfaces.SeverityError, "")
	require.Len(t, errors, 1)
	assert.Equal(t, "broken", errors[0].Message)

	all := s.Entries(0, interfaces.SeverityAll, "")
	assert.Len(t, all, 3)
}

func TestCapture_CategorySubstringFilter(t *testing.T) {
	s := newTestCapture(10)

	s.Capture("LogBlueprint", interfaces.SeverityDisplay, "a")
	s.Capture("LogNet", interfaces.SeverityDisplay, "b")
	s.Capture("Introspection", interfaces.SeverityDisplay, "c")

	matched := s.Entries(0, interfaces.SeverityAll, "blueprint")
	require.Len(t, matched, 1)
	assert.Equal(t, "a", matched[0].Message)
}

func TestCapture_MaxEntriesReturnsMostRecent(t *testing.T) {
	s := newTestCapture(10)

	for i := 1; i <= 5; i++ {
		s.Capture("LogTemp", interfaces.SeverityDisplay, fmt.Sprintf("msg-%d", i))
	}

	entries := s.Entries(2, interfaces.SeverityAll, "")
	require.Len(t, entries, 2)
	assert.Equal(t, "msg-4", entries[0].Message)
	assert.Equal(t, "msg-5", entries[1].Message)
}

func TestCapture_InvalidCapacityFallsBack(t *testing.T) {
	s := newTestCapture(0)
	s.Capture("LogTemp", interfaces.SeverityDisplay, "x")
	assert.Equal(t, 1, s.Count())
}

func TestCapture_ConcurrentWritersAndReaders(t *testing.T) {
	s := newTestCapture(64)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Capture("LogTemp", interfaces.SeverityDisplay, fmt.Sprintf("w%d-%d", worker, i))
				s.Entries(10, interfaces.SeverityAll, "")
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 64, s.Count())
}
