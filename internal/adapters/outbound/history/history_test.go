package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliokit/templint/internal/adapters/outbound/history"
	"github.com/foliokit/templint/internal/domain"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	first := domain.HistoryEntry{Timestamp: "2026-08-25T10:00:00Z", Score: 72, Grade: "C", Valid: true}
	second := domain.HistoryEntry{Timestamp: "2026-08-25T11:00:00Z", Score: 96, Grade: "A", Valid: true, CommitHash: "abc123"}

	require.NoError(t, h.Save(dir, first))
	require.NoError(t, h.Save(dir, second))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])
}

func TestLoad_NoHistoryIsEmpty(t *testing.T) {
	h := history.New()
	entries, err := h.Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoad_CorruptFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, ".templint", "history.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0755))
	require.NoError(t, os.WriteFile(fp, []byte("{not json"), 0644))

	h := history.New()
	_, err := h.Load(dir)
	assert.Error(t, err)
}
