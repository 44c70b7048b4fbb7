// Package metrics computes derived numbers from completion records.
// Everything here is a pure function over its arguments; nothing
// touches the store.
package metrics

import (
	"sort"

	"github.com/mindsetlab/growth-tracker/internal/models"
)

// CalculateStreak returns the length of the consecutive-day run ending
// at the most recent of the supplied dates. Duplicate dates are
// collapsed first — a second completion on the same day continues the
// scan without adding to the count — and the counter starts at 1 only
// once a newest date exists, so a single completion today yields 1.
// The walk stops at the first gap wider than one day.
func CalculateStreak(dates []models.Date) int {
	if len(dates) == 0 {
		return 0
	}

	seen := make(map[string]models.Date, len(dates))
	for _, d := range dates {
		seen[d.String()] = d
	}
	unique := make([]models.Date, 0, len(seen))
	for _, d := range seen {
		unique = append(unique, d)
	}
	sort.Slice(unique, func(i, j int) bool {
		return unique[j].Before(unique[i])
	})

	streak := 1
	cursor := unique[0]
	for _, d := range unique[1:] {
		if cursor.DaysSince(d) != 1 {
			break
		}
		streak++
		cursor = d
	}
	return streak
}
