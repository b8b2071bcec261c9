package interfaces

// Log severities recorded by the capture device. SeverityAll is only valid
// as a filter.
const (
	SeverityAll     = "All"
	SeverityError   = "Error"
	SeverityWarning = "Warning"
	SeverityDisplay = "Display"
)

// CapturedLog is one entry in the console capture ring buffer.
type CapturedLog struct {
	Timestamp string `json:"timestamp"`
	Category  string `json:"category"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
}

// LogCaptureService is the circular-buffer log capture device. It records
// diagnostic output from the extraction engine and its collaborators so that
// silent skip decisions remain observable. It is not part of the engine's
// correctness contract; every method is safe for concurrent use.
type LogCaptureService interface {
	// Capture appends one entry, overwriting the oldest once the buffer is
	// full.
	Capture(category, severity, message string)

	// Entries returns up to maxEntries of the most recent entries in
	// oldest-first order, filtered by severity (SeverityAll for no filter)
	// and category substring (empty for no filter). maxEntries <= 0 returns
	// everything retained.
	Entries(maxEntries int, severityFilter, categoryFilter string) []CapturedLog

	// Count returns the number of entries currently retained.
	Count() int
}
