package repository

import (
	"context"
	"fmt"

	"github.com/mindsetlab/growth-tracker/internal/models"
	"github.com/mindsetlab/growth-tracker/internal/storage"
	"github.com/sirupsen/logrus"
)

// ChallengeRepository handles store operations related to completed
// challenges.
type ChallengeRepository struct {
	store *storage.Store
}

// NewChallengeRepository creates a new instance of ChallengeRepository.
func NewChallengeRepository(store *storage.Store) *ChallengeRepository {
	return &ChallengeRepository{store: store}
}

// AppendCompletion records a finished challenge.
func (r *ChallengeRepository) AppendCompletion(ctx context.Context, completion models.ChallengeCompletion) error {
	err := r.store.Update(func(doc *models.Document) error {
		doc.CompletedChallenges = append(doc.CompletedChallenges, completion)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append completion: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"user": completion.User,
		"date": completion.Date.String(),
	}).Info("Challenge completion recorded")
	return nil
}

// RemoveCompletion deletes the first record matching the given one by
// value. Completions carry no ID, so value match is the only handle.
// No match is a no-op.
func (r *ChallengeRepository) RemoveCompletion(ctx context.Context, completion models.ChallengeCompletion) error {
	err := r.store.Update(func(doc *models.Document) error {
		for i, c := range doc.CompletedChallenges {
			if c.Matches(completion) {
				doc.CompletedChallenges = append(doc.CompletedChallenges[:i], doc.CompletedChallenges[i+1:]...)
				logrus.WithField("user", completion.User).Info("Challenge completion removed")
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove completion: %v", err)
	}
	return nil
}

// ListByUser returns the user's completions in insertion order.
func (r *ChallengeRepository) ListByUser(ctx context.Context, username string) []models.ChallengeCompletion {
	completions := []models.ChallengeCompletion{}
	r.store.View(func(doc *models.Document) {
		for _, c := range doc.CompletedChallenges {
			if c.User == username {
				completions = append(completions, c)
			}
		}
	})
	return completions
}

// ListAll returns every completion in insertion order.
func (r *ChallengeRepository) ListAll(ctx context.Context) []models.ChallengeCompletion {
	completions := []models.ChallengeCompletion{}
	r.store.View(func(doc *models.Document) {
		completions = append(completions, doc.CompletedChallenges...)
	})
	return completions
}
