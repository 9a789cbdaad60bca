package cliutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Hello, %s!", "World")
	assert.Equal(t, "Hello, World!", buf.String())
}

func TestWritef_MultipleArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %d items, %v active", "Status", 42, true)
	assert.Equal(t, "Status: 42 items, true active", buf.String())
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestWritef_WriteError(t *testing.T) {
	// Must not panic; the error is reported to stderr.
	Writef(errorWriter{}, "dropped")
}

func TestEmitJSON(t *testing.T) {
	var buf bytes.Buffer
	err := EmitJSON(&buf, map[string]int{"x": 1, "y": 3})
	require.NoError(t, err)

	assert.JSONEq(t, `{"x": 1, "y": 3}`, buf.String())
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")), "JSON output should end with newline")
}

func TestEmitYAML(t *testing.T) {
	var buf bytes.Buffer
	err := EmitYAML(&buf, map[string]int{"x": 1, "y": 3})
	require.NoError(t, err)

	var got map[string]int
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string]int{"x": 1, "y": 3}, got)
}
