package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mindsetlab/growth-tracker/internal/models"
	"github.com/mindsetlab/growth-tracker/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.Open(filepath.Join(t.TempDir(), "app_data.json"))
}

func TestDeleteEntryRemovesExactlyOne(t *testing.T) {
	ctx := context.Background()
	repo := NewJournalRepository(newTestStore(t))

	first := models.NewJournalEntry(models.Today(), "one", "a", "😊", nil, "alice")
	second := models.NewJournalEntry(models.Today(), "two", "b", "😐", nil, "alice")
	third := models.NewJournalEntry(models.Today(), "three", "c", "😁", nil, "alice")
	for _, e := range []models.JournalEntry{first, second, third} {
		require.NoError(t, repo.InsertEntry(ctx, e))
	}

	require.NoError(t, repo.DeleteEntry(ctx, second.ID))

	entries := repo.ListByUser(ctx, "alice")
	require.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].ID)
	assert.Equal(t, "one", entries[0].Reflection)
	assert.Equal(t, third.ID, entries[1].ID)
	assert.Equal(t, "three", entries[1].Reflection)
}

func TestDeleteEntryAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := NewJournalRepository(newTestStore(t))

	entry := models.NewJournalEntry(models.Today(), "keep me", "", "😊", nil, "alice")
	require.NoError(t, repo.InsertEntry(ctx, entry))

	require.NoError(t, repo.DeleteEntry(ctx, "no-such-id"))
	require.NoError(t, repo.DeleteEntry(ctx, "no-such-id"))

	assert.Len(t, repo.ListByUser(ctx, "alice"), 1)
}

func TestListByUserFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewJournalRepository(newTestStore(t))

	require.NoError(t, repo.InsertEntry(ctx, models.NewJournalEntry(models.Today(), "mine", "", "😊", nil, "alice")))
	require.NoError(t, repo.InsertEntry(ctx, models.NewJournalEntry(models.Today(), "theirs", "", "😞", nil, "bob")))

	entries := repo.ListByUser(ctx, "alice")
	require.Len(t, entries, 1)
	assert.Equal(t, "mine", entries[0].Reflection)
}

func TestEntriesStoreWhateverTheyAreGiven(t *testing.T) {
	// No validation layer: empty reflection, unknown mood and tags are
	// stored as-is.
	ctx := context.Background()
	repo := NewJournalRepository(newTestStore(t))

	entry := models.NewJournalEntry(models.Today(), "", "", "ecstatic", []string{"NotAVocabularyTag"}, "alice")
	require.NoError(t, repo.InsertEntry(ctx, entry))

	stored, found := repo.GetEntry(ctx, entry.ID)
	require.True(t, found)
	assert.Empty(t, stored.Reflection)
	assert.Equal(t, "ecstatic", stored.Mood)
	assert.Equal(t, []string{"NotAVocabularyTag"}, stored.Tags)
}
