package services

import (
	"context"

	"github.com/mindsetlab/growth-tracker/internal/metrics"
	"github.com/mindsetlab/growth-tracker/internal/models"
	"github.com/mindsetlab/growth-tracker/internal/repository"
)

// ProgressSummary is the progress-tracker view: lifetime total,
// current streak, and the per-day counts for the last week.
type ProgressSummary struct {
	Total  int            `json:"total"`
	Streak int            `json:"streak"`
	Weekly map[string]int `json:"weekly"`
}

// ProgressService encapsulates the derived-metric computations over
// completion records.
type ProgressService struct {
	repo *repository.ChallengeRepository
}

// NewProgressService creates a new instance of ProgressService.
func NewProgressService(repo *repository.ChallengeRepository) *ProgressService {
	return &ProgressService{repo: repo}
}

// Summary computes the user's progress numbers from their completion
// records.
func (s *ProgressService) Summary(ctx context.Context, username string) ProgressSummary {
	completions := s.repo.ListByUser(ctx, username)

	dates := make([]models.Date, 0, len(completions))
	for _, c := range completions {
		dates = append(dates, c.Date)
	}

	return ProgressSummary{
		Total:  len(completions),
		Streak: metrics.CalculateStreak(dates),
		Weekly: metrics.WeeklyProgress(completions),
	}
}

// Streak returns just the current streak for the user.
func (s *ProgressService) Streak(ctx context.Context, username string) int {
	completions := s.repo.ListByUser(ctx, username)
	dates := make([]models.Date, 0, len(completions))
	for _, c := range completions {
		dates = append(dates, c.Date)
	}
	return metrics.CalculateStreak(dates)
}
