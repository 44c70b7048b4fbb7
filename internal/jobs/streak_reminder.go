package jobs

import (
	"context"

	"github.com/mindsetlab/growth-tracker/internal/metrics"
	"github.com/mindsetlab/growth-tracker/internal/models"
	"github.com/mindsetlab/growth-tracker/internal/repository"
	"github.com/sirupsen/logrus"
)

// StreakReminder scans for users whose streak is about to break: an
// active streak with nothing completed today yet.
type StreakReminder struct {
	Users      *repository.UserRepository
	Challenges *repository.ChallengeRepository
}

// NewStreakReminder creates a new instance of StreakReminder.
func NewStreakReminder(users *repository.UserRepository, challenges *repository.ChallengeRepository) *StreakReminder {
	return &StreakReminder{
		Users:      users,
		Challenges: challenges,
	}
}

// RunDailyScan checks every user and logs the ones at risk of losing
// their streak today.
func (j *StreakReminder) RunDailyScan(ctx context.Context) error {
	usernames := j.Users.AllUsernames(ctx)
	today := models.Today()
	atRisk := 0

	for _, username := range usernames {
		completions := j.Challenges.ListByUser(ctx, username)

		dates := make([]models.Date, 0, len(completions))
		completedToday := false
		for _, c := range completions {
			dates = append(dates, c.Date)
			if c.Date.Equal(today) {
				completedToday = true
			}
		}

		streak := metrics.CalculateStreak(dates)
		if streak > 0 && !completedToday {
			atRisk++
			logrus.WithFields(logrus.Fields{
				"username": username,
				"streak":   streak,
			}).Info("Streak at risk, no challenge completed today")
		}
	}

	logrus.WithFields(logrus.Fields{
		"users":  len(usernames),
		"atRisk": atRisk,
	}).Info("Streak reminder scan finished")
	return nil
}
