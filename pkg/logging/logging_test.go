package logging

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerVerbosityLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		level     zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		SetupLogger(tt.verbosity)
		assert.Equal(t, tt.level, zerolog.GlobalLevel())
	}
}

func TestGetLoggerAddsComponent(t *testing.T) {
	var buf strings.Builder
	logger := GetLogger("envpath").Output(&buf)
	logger.Warn().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"envpath"`)
	assert.Contains(t, buf.String(), "test message")
}

func TestLogFilePathUnderStateDir(t *testing.T) {
	path := getLogFilePath()
	assert.Contains(t, path, "zov")
	assert.True(t, strings.HasSuffix(path, "zov.log"))
}
