package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindsetlab/growth-tracker/internal/models"
	"github.com/mindsetlab/growth-tracker/internal/repository"
	"github.com/sirupsen/logrus"
)

// JournalService encapsulates the business logic for journal entries.
type JournalService struct {
	repo *repository.JournalRepository
}

// NewJournalService creates a new instance of JournalService.
func NewJournalService(repo *repository.JournalRepository) *JournalService {
	return &JournalService{repo: repo}
}

// CreateEntry stores a new journal entry for the user. There is no
// validation layer: empty reflection text, unknown moods and tags are
// accepted and stored as-is.
func (s *JournalService) CreateEntry(ctx context.Context, username string, date models.Date, reflection, lessons, mood string, tags []string) (models.JournalEntry, error) {
	if date.IsZero() {
		date = models.Today()
	}
	entry := models.NewJournalEntry(date, reflection, lessons, mood, tags, username)
	if err := s.repo.InsertEntry(ctx, entry); err != nil {
		return models.JournalEntry{}, err
	}
	return entry, nil
}

// ListEntries returns the user's entries, newest first, filtered by a
// case-insensitive substring match over reflection and lessons. An
// empty query matches everything.
func (s *JournalService) ListEntries(ctx context.Context, username, query string) []models.JournalEntry {
	entries := s.repo.ListByUser(ctx, username)
	query = strings.ToLower(query)

	matched := []models.JournalEntry{}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if query == "" ||
			strings.Contains(strings.ToLower(e.Reflection), query) ||
			strings.Contains(strings.ToLower(e.Lessons), query) {
			matched = append(matched, e)
		}
	}
	return matched
}

// DeleteEntry removes one of the user's entries by ID. Deleting an
// entry that is already gone is a no-op; deleting someone else's entry
// is refused.
func (s *JournalService) DeleteEntry(ctx context.Context, username, id string) error {
	entry, found := s.repo.GetEntry(ctx, id)
	if !found {
		logrus.WithField("entryID", id).Info("Journal entry already gone, nothing to delete")
		return nil
	}
	if entry.User != username {
		return fmt.Errorf("entry %s does not belong to %s", id, username)
	}
	return s.repo.DeleteEntry(ctx, id)
}
