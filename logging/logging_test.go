package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevelFiltersMessages(t *testing.T) {
	saved := Logger
	t.Cleanup(func() { Logger = saved })

	var buf bytes.Buffer
	SetOutput(&buf)
	require.NoError(t, SetLevel("warn"))

	Logger.Info().Msg("hidden")
	Logger.Warn().Str("asset", "flush.wav").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, `"asset":"flush.wav"`)
}

func TestSetLevelRejectsUnknownLevel(t *testing.T) {
	saved := Logger
	t.Cleanup(func() { Logger = saved })

	assert.Error(t, SetLevel("loud"))
}
