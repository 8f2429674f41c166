//go:build !integration

package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String()+"_"+tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.level))
		})
	}
}

func TestInitWithWriter(t *testing.T) {
	t.Cleanup(func() { Init("info", false) })

	var buf bytes.Buffer
	InitWithWriter("warn", false, &buf)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	log := Logger()
	log.Info().Msg("dropped")
	log.Warn().Str("feature_rate", "clips").Msg("kept")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["message"])
	assert.Equal(t, ServiceName, line["service"])
	assert.Equal(t, "clips", line["feature_rate"])
	assert.Contains(t, line, "time")
}

func TestInit_Pretty(t *testing.T) {
	t.Cleanup(func() { Init("info", false) })

	var buf bytes.Buffer
	InitWithWriter("info", true, &buf)
	log := Logger()
	log.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestWithContext(t *testing.T) {
	t.Cleanup(func() { Init("info", false) })

	var buf bytes.Buffer
	InitWithWriter("info", false, &buf)

	l := WithContext(map[string]interface{}{"version": 3, "subject": "anna"})
	l.Info().Msg("config")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, float64(3), line["version"])
	assert.Equal(t, "anna", line["subject"])
}

func TestOpenAuditSink(t *testing.T) {
	t.Run("stderr when empty", func(t *testing.T) {
		w, err := OpenAuditSink("")
		require.NoError(t, err)
		assert.NoError(t, w.Close())
	})

	t.Run("appends to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "audit.log")
		for _, line := range []string{"a\n", "b\n"} {
			w, err := OpenAuditSink(path)
			require.NoError(t, err)
			_, err = w.Write([]byte(line))
			require.NoError(t, err)
			require.NoError(t, w.Close())
		}
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "a\nb\n", string(data))
	})

	t.Run("unwritable directory", func(t *testing.T) {
		_, err := OpenAuditSink(filepath.Join(t.TempDir(), "missing", "audit.log"))
		assert.Error(t, err)
	})
}
