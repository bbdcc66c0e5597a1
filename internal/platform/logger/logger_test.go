package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"egid/internal/platform/config"
)

func TestNew(t *testing.T) {
	t.Run("json output respects level", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, config.Server{LogLevel: slog.LevelWarn, LogFormat: config.LogFormatJSON})
		log.Info("dropped")
		log.Warn("kept", "k", "v")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "kept", entry["msg"])
		assert.Equal(t, "v", entry["k"])
	})

	t.Run("text output", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf, config.Server{LogFormat: config.LogFormatText}).Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})
}
