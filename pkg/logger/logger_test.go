package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info().Str("key", "value").Msg("test message")

	var output map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &output)
	require.NoError(t, err, "logger output should be valid JSON")

	assert.Equal(t, "test message", output["message"])
	assert.Equal(t, "value", output["key"])
	assert.Equal(t, "info", output["level"])
	assert.Equal(t, "split-wallet-engine", output["service"])
	assert.Contains(t, output, "time", "should include timestamp")
}

func TestComponent_TagsSubsystem(t *testing.T) {
	var buf bytes.Buffer
	log := Component(NewWithWriter("info", &buf), "repair_worker")

	log.Info().Msg("drained")

	var output map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, "repair_worker", output["component"])
	assert.Equal(t, "split-wallet-engine", output["service"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("trace"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("panic"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
}

func TestNew_InfoLevel_FiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Debug().Msg("should not appear")
	assert.Empty(t, buf.String(), "debug messages should be filtered at info level")
}

func TestNew_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("error", &buf)

	log.Warn().Msg("should not appear")
	assert.Empty(t, buf.String())

	log.Error().Msg("error msg")
	assert.NotEmpty(t, buf.String())
}

func TestNew_InvalidLevel_DefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("invalid", &buf)

	log.Debug().Msg("should not appear")
	assert.Empty(t, buf.String(), "invalid level should default to info, filtering debug")

	log.Info().Msg("should appear")
	assert.NotEmpty(t, buf.String())
}

func TestCritical_TagsSeverity(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("error", &buf)

	Critical(log).Str("split_wallet_id", "w-1").Msg("index out of sync")

	var output map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, "error", output["level"])
	assert.Equal(t, "critical", output["severity"])
	assert.Equal(t, "w-1", output["split_wallet_id"])
}

func TestNew_PrettyMode(t *testing.T) {
	// pretty mode writes to stdout
	log := New("info", true)
	log.Info().Msg("pretty mode test")
}
