package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "unlock")

	l.Info().Msg("session ready")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "unlock", entry["role"])
	assert.Equal(t, "session ready", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_EntryFields")
}

func TestNewLogger_GlobalSettings(t *testing.T) {
	require.NotNil(t, NewLogger("client"))

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_WritesToConfiguredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	t.Setenv(LogFileEnv, path)

	l := NewClientLogger("client")
	l.Warn().Str("storage_key", "MASTER_KEY").Msg("stored master key is unreadable")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"storage_key":"MASTER_KEY"`)
	assert.Contains(t, string(data), `"role":"client"`)
}

func TestClientLogPath_DefaultsNextToExecutable(t *testing.T) {
	t.Setenv(LogFileEnv, "")

	assert.Equal(t, "logs", filepath.Base(clientLogPath()))
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "feed")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child")
	assert.Equal(t, "feed", decodeEntry(t, &buf)["role"])
}

func TestForNote(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "notes")

	parent.ForNote("note-42").Info().Msg("opened")
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "note-42", entry["note_id"])

	buf.Reset()
	parent.Info().Msg("parent untouched")
	assert.NotContains(t, decodeEntry(t, &buf), "note_id")
}

func TestFromContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	attached := newLogger(&buf, "ctx")
	ctx := attached.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")
	assert.Equal(t, "ctx", decodeEntry(t, &buf)["role"])
}
