package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_ColumnPresence(t *testing.T) {
	table := mustTable(t, []string{"after_discount", "category"}, map[string][]string{
		"after_discount": {"1", "2"},
		"category":       {"x", "y"},
	})

	assert.True(t, table.Has("after_discount", "category"))
	assert.True(t, table.Has())
	assert.False(t, table.Has("category", "sku_name"))
	assert.Equal(t, []string{"sku_name", "ym"}, table.Missing("sku_name", "category", "ym"))
	assert.Nil(t, table.Missing("category"))
}

func TestTable_TypedAccess(t *testing.T) {
	table := mustTable(t, []string{"after_discount", "category"}, map[string][]string{
		"after_discount": {"1", "2"},
		"category":       {"x", ""},
	})

	values, ok := table.Floats("after_discount")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2}, values)

	labels, ok := table.Strings("category")
	require.True(t, ok)
	assert.Equal(t, []string{"x", "nan"}, labels)

	_, ok = table.Floats("category")
	assert.False(t, ok)
	_, ok = table.Strings("after_discount")
	assert.False(t, ok)
	_, ok = table.Strings("missing")
	assert.False(t, ok)
}

func TestTable_NamesIsACopy(t *testing.T) {
	table := mustTable(t, []string{"category"}, map[string][]string{"category": {"x"}})

	names := table.Names()
	names[0] = "changed"

	assert.Equal(t, []string{"category"}, table.Names())
}

func TestNewTableFromColumns_RaggedColumns(t *testing.T) {
	_, err := NewTableFromColumns([]string{"a", "b"}, map[string][]string{
		"a": {"1", "2"},
		"b": {"1"},
	})
	assert.Error(t, err)
}

func TestNewTableFromColumns_NoColumns(t *testing.T) {
	table := mustTable(t, nil, nil)

	assert.Equal(t, 0, table.Len())
	assert.Empty(t, table.Names())
}
