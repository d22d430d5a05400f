package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLoggerTo(t *testing.T) {
	defer func(debug, js bool) {
		LogDebug, LogJson = debug, js
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}(LogDebug, LogJson)

	LogDebug, LogJson = false, true
	var buf bytes.Buffer
	ConfigureLoggerTo(&buf)

	log.Debug().Msg("hidden")
	assert.Equal(t, 0, buf.Len())

	log.Info().Str("component", "test").Msg("shown")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["message"])
	assert.Equal(t, "test", rec["component"])
	assert.Equal(t, "info", rec["level"])

	LogDebug = true
	buf.Reset()
	ConfigureLoggerTo(&buf)
	log.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
