package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteJournalRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.sqlite")
	j, err := NewSQLite(path, "fifo", 2025)
	require.NoError(t, err)
	defer j.Close()

	assert.NotEmpty(t, j.RunID())

	want := sampleSale()
	require.NoError(t, j.RecordSale(want))

	sales, err := j.ListSales(j.RunID())
	require.NoError(t, err)
	require.Len(t, sales, 1)

	got := sales[0]
	assert.Equal(t, want.ISIN, got.ISIN)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Category, got.Category)
	assert.InDelta(t, want.Shares, got.Shares, 1e-9)
	assert.InDelta(t, want.Proceeds, got.Proceeds, 1e-9)
	assert.InDelta(t, want.CostBasis, got.CostBasis, 1e-9)
	assert.InDelta(t, want.Profit, got.Profit, 1e-9)
}

func TestSQLiteJournalSeparatesRuns(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.sqlite")

	first, err := NewSQLite(path, "avgcost", 2024)
	require.NoError(t, err)
	require.NoError(t, first.RecordSale(sampleSale()))
	require.NoError(t, first.Close())

	second, err := NewSQLite(path, "avgcost", 2025)
	require.NoError(t, err)
	defer second.Close()

	sales, err := second.ListSales(second.RunID())
	require.NoError(t, err)
	assert.Empty(t, sales)
}
