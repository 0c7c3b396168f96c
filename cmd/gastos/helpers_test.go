package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastos-cli/gastos/internal/model"
)

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := parseID(bad)
		assert.Error(t, err, "id %q should be rejected", bad)
	}
}

func TestParseDateFlag(t *testing.T) {
	date, err := parseDateFlag("2025-01-15", "from")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, time.January, date.Month())
	assert.Equal(t, 15, date.Day())

	date, err = parseDateFlag("", "from")
	require.NoError(t, err)
	assert.Nil(t, date)

	_, err = parseDateFlag("15/01/2025", "from")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--from")
}

func TestParseTypeFlag(t *testing.T) {
	typ, err := parseTypeFlag("expense")
	require.NoError(t, err)
	require.NotNil(t, typ)
	assert.Equal(t, model.TypeExpense, *typ)

	typ, err = parseTypeFlag("")
	require.NoError(t, err)
	assert.Nil(t, typ)

	_, err = parseTypeFlag("transfer")
	assert.Error(t, err)
}

func TestBuildFilter(t *testing.T) {
	t.Run("all flags empty", func(t *testing.T) {
		filter, err := buildFilter("", "", "", "")
		require.NoError(t, err)
		assert.True(t, filter.IsZero())
	})

	t.Run("all flags set", func(t *testing.T) {
		filter, err := buildFilter("expense", "Comida", "2025-01-01", "2025-01-31")
		require.NoError(t, err)
		require.NotNil(t, filter.Type)
		assert.Equal(t, model.TypeExpense, *filter.Type)
		require.NotNil(t, filter.CategoryName)
		assert.Equal(t, "Comida", *filter.CategoryName)
		require.NotNil(t, filter.DateFrom)
		require.NotNil(t, filter.DateTo)
	})

	t.Run("bad date propagates", func(t *testing.T) {
		_, err := buildFilter("", "", "not-a-date", "")
		assert.Error(t, err)
	})
}
