package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithFieldAttachesField(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Output: &buf})

	seedLogger := WithField("component", "seed")
	seedLogger.Info().Msg("demo course created")

	out := buf.String()
	assert.Contains(t, out, `"component":"seed"`)
	assert.Contains(t, out, "demo course created")
}

func TestConfigureLevelFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})

	Info().Msg("should be dropped")
	Warn().Msg("should be kept")

	out := buf.String()
	assert.NotContains(t, out, "should be dropped")
	assert.Contains(t, out, "should be kept")
}
