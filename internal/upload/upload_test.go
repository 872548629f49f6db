package upload

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURL_EncodesSmallFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foto.png")
	// Minimal PNG signature so content detection resolves the type.
	payload := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 16)...)
	require.NoError(t, os.WriteFile(path, payload, 0o644))

	url, err := DataURL(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
}

func TestDataURL_RejectsOversizedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grande.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, MaxSize+1), 0o644))

	_, err := DataURL(path)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestDataURL_MissingFile(t *testing.T) {
	_, err := DataURL(filepath.Join(t.TempDir(), "nada.jpg"))
	assert.Error(t, err)
}
