package cron

import (
	"context"

	"github.com/mindsetlab/growth-tracker/internal/jobs"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartJobs wires the background jobs onto a cron schedule and starts
// it. The returned cron can be stopped at shutdown.
func StartJobs(reminder *jobs.StreakReminder) *cron.Cron {
	c := cron.New()

	// Evening nudge for streaks at risk
	c.AddFunc("0 18 * * *", func() {
		if err := reminder.RunDailyScan(context.Background()); err != nil {
			logrus.WithError(err).Error("Streak reminder scan failed")
		}
	})

	c.Start()
	return c
}
