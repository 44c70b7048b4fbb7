package models

// ChallengeCompletion records one finished daily challenge. The
// challenge text is copied from the catalog at assignment time, so the
// record carries no catalog reference and has no ID of its own;
// removal is by value match.
type ChallengeCompletion struct {
	Date      Date   `json:"date"`
	Challenge string `json:"challenge"`
	User      string `json:"user"`
}

// Matches reports whether two completions are the same record for the
// purposes of value-based removal.
func (c ChallengeCompletion) Matches(other ChallengeCompletion) bool {
	return c.Date.Equal(other.Date) && c.Challenge == other.Challenge && c.User == other.User
}
