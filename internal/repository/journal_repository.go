package repository

import (
	"context"
	"fmt"

	"github.com/mindsetlab/growth-tracker/internal/models"
	"github.com/mindsetlab/growth-tracker/internal/storage"
	"github.com/sirupsen/logrus"
)

// JournalRepository handles store operations related to journal
// entries.
type JournalRepository struct {
	store *storage.Store
}

// NewJournalRepository creates a new instance of JournalRepository.
func NewJournalRepository(store *storage.Store) *JournalRepository {
	return &JournalRepository{store: store}
}

// InsertEntry appends a journal entry. Entries are never mutated
// afterwards.
func (r *JournalRepository) InsertEntry(ctx context.Context, entry models.JournalEntry) error {
	err := r.store.Update(func(doc *models.Document) error {
		doc.JournalEntries = append(doc.JournalEntries, entry)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to insert journal entry: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"entryID": entry.ID,
		"user":    entry.User,
	}).Info("Journal entry inserted")
	return nil
}

// DeleteEntry removes the entry with the given ID, keeping every other
// entry's content and relative order. Deleting an absent ID is a
// no-op.
func (r *JournalRepository) DeleteEntry(ctx context.Context, id string) error {
	removed := false
	err := r.store.Update(func(doc *models.Document) error {
		kept := doc.JournalEntries[:0]
		for _, entry := range doc.JournalEntries {
			if entry.ID == id {
				removed = true
				continue
			}
			kept = append(kept, entry)
		}
		doc.JournalEntries = kept
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete journal entry: %v", err)
	}
	if removed {
		logrus.WithField("entryID", id).Info("Journal entry deleted")
	}
	return nil
}

// GetEntry fetches one entry by ID.
func (r *JournalRepository) GetEntry(ctx context.Context, id string) (models.JournalEntry, bool) {
	var (
		entry models.JournalEntry
		found bool
	)
	r.store.View(func(doc *models.Document) {
		for _, e := range doc.JournalEntries {
			if e.ID == id {
				entry = e
				found = true
				return
			}
		}
	})
	return entry, found
}

// ListByUser returns the user's entries in insertion order.
func (r *JournalRepository) ListByUser(ctx context.Context, username string) []models.JournalEntry {
	entries := []models.JournalEntry{}
	r.store.View(func(doc *models.Document) {
		for _, e := range doc.JournalEntries {
			if e.User == username {
				entries = append(entries, e)
			}
		}
	})
	return entries
}
