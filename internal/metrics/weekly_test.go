package metrics

import (
	"testing"

	"github.com/mindsetlab/growth-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestWeeklyProgressEmpty(t *testing.T) {
	today := mustDate(t, "2025-03-10")

	progress := weeklyProgressFrom(today, nil)

	require.Len(t, progress, 7)
	for i := 0; i < 7; i++ {
		key := today.AddDays(-i).String()
		count, ok := progress[key]
		assert.True(t, ok, "day %s missing", key)
		assert.Zero(t, count)
	}
}

func TestWeeklyProgressCountsPerDay(t *testing.T) {
	today := mustDate(t, "2025-03-10")
	completions := []models.ChallengeCompletion{
		{Date: today, Challenge: "Teach a concept to someone else", User: "alice"},
		{Date: today, Challenge: "Reflect on one mistake and what it taught you", User: "alice"},
		{Date: today.AddDays(-3), Challenge: "Try a new learning method for 30 minutes", User: "alice"},
	}

	progress := weeklyProgressFrom(today, completions)

	assert.Equal(t, 2, progress[today.String()])
	assert.Equal(t, 1, progress[today.AddDays(-3).String()])
	assert.Equal(t, 0, progress[today.AddDays(-1).String()])
	assert.Equal(t, 0, progress[today.AddDays(-6).String()])
}

func TestWeeklyProgressKeepsOutOfWindowDates(t *testing.T) {
	today := mustDate(t, "2025-03-10")
	old := today.AddDays(-30)
	completions := []models.ChallengeCompletion{
		{Date: old, Challenge: "Tackle a problem outside your comfort zone", User: "bob"},
	}

	progress := weeklyProgressFrom(today, completions)

	require.Len(t, progress, 8)
	assert.Equal(t, 1, progress[old.String()])
}
