package common

import (
	"github.com/google/uuid"
)

// NewSnapshotID generates a unique snapshot ID with the "snap_" prefix
// Format: snap_<uuid>
func NewSnapshotID() string {
	return "snap_" + uuid.New().String()
}

// NewInstanceID generates a unique server instance ID
func NewInstanceID() string {
	return uuid.New().String()
}
