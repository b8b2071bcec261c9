package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogger(t *testing.T) {
	logger := GetLogger()
	require.NotNil(t, logger)

	// Repeated calls return the same instance
	assert.Equal(t, logger, GetLogger())
}

func TestInitLogger_ConsoleOnly(t *testing.T) {
	config := NewDefaultConfig()
	config.Logging.Level = "warn"
	config.Logging.Output = []string{"stdout"}

	logger := InitLogger(config)
	require.NotNil(t, logger)

	// No file writer configured, so no log file path
	assert.Empty(t, GetLogFilePath(logger))
}

func TestPrintBanner(t *testing.T) {
	assert.NotPanics(t, func() { PrintBanner("dev") })
}
