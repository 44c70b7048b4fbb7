package services

import (
	"context"

	"github.com/mindsetlab/growth-tracker/internal/catalog"
	"github.com/mindsetlab/growth-tracker/internal/models"
	"github.com/mindsetlab/growth-tracker/internal/repository"
)

// AssignedChallenge is a freshly picked challenge, not yet completed.
// Nothing is persisted until the user completes it.
type AssignedChallenge struct {
	Tier      string `json:"tier"`
	Challenge string `json:"challenge"`
}

// ChallengeService encapsulates the business logic for daily
// challenges.
type ChallengeService struct {
	repo *repository.ChallengeRepository
}

// NewChallengeService creates a new instance of ChallengeService.
func NewChallengeService(repo *repository.ChallengeRepository) *ChallengeService {
	return &ChallengeService{repo: repo}
}

// AssignChallenge picks a random challenge from the tier, or from a
// random tier when none is given.
func (s *ChallengeService) AssignChallenge(ctx context.Context, tier string) (AssignedChallenge, error) {
	if tier == "" {
		tier = catalog.RandomTier()
	}
	text, err := catalog.Pick(tier)
	if err != nil {
		return AssignedChallenge{}, err
	}
	return AssignedChallenge{Tier: tier, Challenge: text}, nil
}

// CompleteChallenge records the challenge as done. The date defaults
// to today when the caller does not supply one. The challenge text is
// stored verbatim; it is not checked against the catalog, since the
// catalog may change under old records.
func (s *ChallengeService) CompleteChallenge(ctx context.Context, username, challenge string, date models.Date) (models.ChallengeCompletion, error) {
	if date.IsZero() {
		date = models.Today()
	}
	completion := models.ChallengeCompletion{
		Date:      date,
		Challenge: challenge,
		User:      username,
	}
	if err := s.repo.AppendCompletion(ctx, completion); err != nil {
		return models.ChallengeCompletion{}, err
	}
	return completion, nil
}

// RemoveCompletion deletes a recorded completion by value match.
// Nothing happens when no record matches.
func (s *ChallengeService) RemoveCompletion(ctx context.Context, username, challenge string, date models.Date) error {
	return s.repo.RemoveCompletion(ctx, models.ChallengeCompletion{
		Date:      date,
		Challenge: challenge,
		User:      username,
	})
}

// ListCompletions returns the user's completions in insertion order.
func (s *ChallengeService) ListCompletions(ctx context.Context, username string) []models.ChallengeCompletion {
	return s.repo.ListByUser(ctx, username)
}
