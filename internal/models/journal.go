package models

import "github.com/google/uuid"

// Moods a journal entry can carry, from worst to best. The order is
// only used when rendering the picker; nothing sorts by it.
var Moods = []string{"😞", "😐", "😊", "😁"}

// Tags is the fixed label vocabulary for journal entries.
var Tags = []string{"Learning", "Challenge", "Breakthrough", "Struggle"}

// JournalEntry is a single dated reflection. Entries are immutable
// after creation; the only lifecycle operation is deletion by ID.
type JournalEntry struct {
	ID         string   `json:"id"`
	Date       Date     `json:"date"`
	Reflection string   `json:"reflection"`
	Lessons    string   `json:"lessons"`
	Mood       string   `json:"mood"`
	Tags       []string `json:"tags"`
	User       string   `json:"user"`
}

// NewJournalEntry builds an entry with a fresh ID. No field is
// validated; empty text and unknown moods are stored as given.
func NewJournalEntry(date Date, reflection, lessons, mood string, tags []string, user string) JournalEntry {
	if tags == nil {
		tags = []string{}
	}
	return JournalEntry{
		ID:         uuid.NewString(),
		Date:       date,
		Reflection: reflection,
		Lessons:    lessons,
		Mood:       mood,
		Tags:       tags,
		User:       user,
	}
}
