package metrics

import "github.com/mindsetlab/growth-tracker/internal/models"

// WeeklyProgress buckets completions per calendar day for the bar
// chart. Today and the six days before it are always present, zeroed;
// completions dated outside that window show up as extra keys rather
// than being dropped. Keys are ISO "YYYY-MM-DD" strings.
func WeeklyProgress(completions []models.ChallengeCompletion) map[string]int {
	return weeklyProgressFrom(models.Today(), completions)
}

func weeklyProgressFrom(today models.Date, completions []models.ChallengeCompletion) map[string]int {
	progress := make(map[string]int, 7+len(completions))
	for i := 0; i < 7; i++ {
		progress[today.AddDays(-i).String()] = 0
	}
	for _, c := range completions {
		progress[c.Date.String()]++
	}
	return progress
}
