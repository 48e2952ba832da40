package directory

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elc-tools/pubrec/internal/observability"
)

func writeWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()
	data := workbookBytes(t, map[string][][]string{"Contacts": rows})
	path := filepath.Join(t.TempDir(), "master.xlsx")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func newTestStore(path string) *Store {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewStore(path, []string{"Contacts"}, logger, observability.NewMetricsForTesting())
}

func TestStore_NotReadyBeforeLoad(t *testing.T) {
	store := newTestStore("irrelevant.xlsx")

	assert.Nil(t, store.Snapshot())
	require.Error(t, store.CheckReadiness(context.Background()))
}

func TestStore_LoadAndSnapshot(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"County", "City", "Dept Type", "Dept Name"},
		{"Lee", "Fort Myers", "Building", "FM Building"},
	})
	store := newTestStore(path)

	require.NoError(t, store.Load())
	require.NoError(t, store.CheckReadiness(context.Background()))

	snap := store.Snapshot()
	require.NotNil(t, snap)
	assert.Len(t, snap.Rows, 1)
	assert.True(t, snap.Usable())
}

func TestStore_ReloadSwapsSnapshot(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"County", "City", "Dept Type", "Dept Name"},
		{"Lee", "Fort Myers", "Building", "FM Building"},
	})
	store := newTestStore(path)
	require.NoError(t, store.Load())
	first := store.Snapshot()

	data := workbookBytes(t, map[string][][]string{"Contacts": {
		{"County", "City", "Dept Type", "Dept Name"},
		{"Lee", "Fort Myers", "Building", "FM Building"},
		{"Lee", "*", "Fire", "Lee Fire Rescue"},
	}})
	require.NoError(t, os.WriteFile(path, data, 0o644))

	require.NoError(t, store.Load())
	second := store.Snapshot()

	assert.Len(t, first.Rows, 1)
	assert.Len(t, second.Rows, 2)
	// The first snapshot is untouched by the reload.
	assert.Equal(t, "FM Building", first.Rows[0].DeptName)
}

func TestStore_FailedReloadKeepsOldSnapshot(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"County", "City", "Dept Type", "Dept Name"},
		{"Lee", "Fort Myers", "Building", "FM Building"},
	})
	store := newTestStore(path)
	require.NoError(t, store.Load())

	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))
	require.Error(t, store.Load())

	snap := store.Snapshot()
	require.NotNil(t, snap)
	assert.Len(t, snap.Rows, 1)
}

func TestStore_UnusableSnapshotStillSwaps(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"County", "Contact"},
		{"Lee", "A. Rivera"},
	})
	store := newTestStore(path)

	require.NoError(t, store.Load())
	snap := store.Snapshot()
	require.NotNil(t, snap)
	assert.False(t, snap.Usable())
	assert.Empty(t, snap.Rows)
}
