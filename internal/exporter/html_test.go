package exporter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/errors"
)

func TestHTMLWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site", "index.html")
	w := NewHTMLWriter(nil)

	require.NoError(t, w.Write(context.Background(), path, []byte("<!doctype html>first")))
	require.NoError(t, w.Write(context.Background(), path, []byte("<!doctype html>second")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<!doctype html>second", string(content))
}

func TestHTMLWriter_WriteFailure(t *testing.T) {
	dir := t.TempDir()

	err := NewHTMLWriter(nil).Write(context.Background(), dir, []byte("x"))

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeStorage))
}
