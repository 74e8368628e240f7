package exporter

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/errors"
	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/pkg/contracts/domain"
)

func readCSV(t *testing.T, path string) (bool, [][]string) {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	hasBOM := bytes.HasPrefix(content, utf8BOM)
	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(content, utf8BOM))).ReadAll()
	require.NoError(t, err)
	return hasBOM, records
}

func TestCSVWriter_WriteCSV(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(nil, filepath.Join(dir, "nested"))

	path, err := w.WriteCSV(context.Background(), "out.csv", WriteOptions{
		Headers: []string{"a", "b"},
		Records: [][]string{{"1", "x,y"}, {"2", `quote"d`}},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "out.csv"), path)

	hasBOM, records := readCSV(t, path)
	assert.False(t, hasBOM)
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "x,y"}, {"2", `quote"d`}}, records)
}

func TestCSVWriter_Overwrites(t *testing.T) {
	w := NewCSVWriter(nil, t.TempDir())
	ctx := context.Background()

	_, err := w.WriteCSV(ctx, "out.csv", WriteOptions{Records: [][]string{{"old"}, {"old"}}})
	require.NoError(t, err)
	path, err := w.WriteCSV(ctx, "out.csv", WriteOptions{Records: [][]string{{"new"}}})
	require.NoError(t, err)

	_, records := readCSV(t, path)
	assert.Equal(t, [][]string{{"new"}}, records)
}

func TestCSVWriter_WriteSummaries(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(nil, dir)

	tables := []domain.SummaryTable{
		{
			Key:         domain.SummaryCategory,
			GroupColumn: domain.ColCategory,
			ValueColumn: domain.ColAfterDiscount,
			Rows:        []domain.SummaryRow{{Label: "Mobiles", Value: 1500.25}, {Label: "Books", Value: 300}},
		},
		{Key: domain.SummaryPayment},
	}

	paths, err := w.WriteSummaries(context.Background(), tables)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "category.csv"),
		filepath.Join(dir, "payment.csv"),
	}, paths)

	hasBOM, records := readCSV(t, paths[0])
	assert.True(t, hasBOM)
	assert.Equal(t, [][]string{
		{"label", "after_discount"},
		{"Mobiles", "1500.25"},
		{"Books", "300"},
	}, records)

	_, records = readCSV(t, paths[1])
	assert.Equal(t, [][]string{{"label", "after_discount"}}, records)
}

func TestCSVWriter_WriteSummariesFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := NewCSVWriter(nil, blocker).WriteSummaries(context.Background(), []domain.SummaryTable{
		{Key: domain.SummaryTrend},
	})

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeStorage))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "300", formatValue(300))
	assert.Equal(t, "0.3", formatValue(0.3))
	assert.Equal(t, "1234567.89", formatValue(1234567.89))
}
