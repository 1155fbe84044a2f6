package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_StructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info().Str("account_id", "acc-1").Msg("wallet debited")

	var output map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output), "logger output should be valid JSON")

	assert.Equal(t, "wallet debited", output["message"])
	assert.Equal(t, "acc-1", output["account_id"])
	assert.Equal(t, "info", output["level"])
	assert.Contains(t, output, "time")
}

func TestNewWithWriter_Levels(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{"debug", true, true},
		{"DEBUG", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"error", false, false},
		{"", false, true},
		{"bogus", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var debugBuf, infoBuf bytes.Buffer
			debugLog := NewWithWriter(tt.level, &debugBuf)
			debugLog.Debug().Msg("d")
			infoLog := NewWithWriter(tt.level, &infoBuf)
			infoLog.Info().Msg("i")

			assert.Equal(t, tt.debugSeen, debugBuf.Len() > 0)
			assert.Equal(t, tt.infoSeen, infoBuf.Len() > 0)
		})
	}
}

func TestNew_PrettyMode(t *testing.T) {
	// Pretty mode writes to stdout; only checks it does not panic.
	log := New("info", true, "telco-billing")
	log.Info().Msg("pretty mode test")
}
