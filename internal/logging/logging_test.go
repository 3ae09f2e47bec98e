package logging

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nicspectra/internal/config"
)

func TestWriterStderrOnly(t *testing.T) {
	var stderr bytes.Buffer
	w, closer := Writer(config.LogConfig{}, &stderr)
	fmt.Fprintln(w, "hola")
	assert.NoError(t, closer.Close())
	assert.Equal(t, "hola\n", stderr.String())
}

func TestWriterTeesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nicspectra.log")
	var stderr bytes.Buffer
	w, closer := Writer(config.LogConfig{File: path, MaxSizeMB: 1}, &stderr)
	fmt.Fprintln(w, "calc ok")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "calc ok\n", string(data))
	assert.Equal(t, "calc ok\n", stderr.String())
}
