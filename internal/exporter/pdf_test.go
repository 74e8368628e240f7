package exporter

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileURL(t *testing.T) {
	dir := t.TempDir()

	got, err := fileURL(filepath.Join(dir, "index.html"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "file:///"))
	assert.True(t, strings.HasSuffix(got, "/index.html"))
}

func TestFileURL_Relative(t *testing.T) {
	got, err := fileURL("index.html")
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "file", u.Scheme)
	assert.Equal(t, "/"+strings.TrimPrefix(filepath.ToSlash(filepath.Join(wd, "index.html")), "/"), u.Path)
}

func TestPDFExporter_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "index.html")
	pdfPath := filepath.Join(dir, "index.pdf")
	require.NoError(t, os.WriteFile(htmlPath, []byte("<html><body>x</body></html>"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewPDFExporter(nil, time.Second).Export(ctx, htmlPath, pdfPath)

	assert.Error(t, err)
	assert.NoFileExists(t, pdfPath)
}
