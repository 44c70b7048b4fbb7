package models

// SchemaVersion tags documents written by this version of the code.
// Files written before the tag existed unmarshal with Version == 0 and
// are otherwise identical.
const SchemaVersion = 1

// Document is the root structure holding all persisted application
// state. It is loaded and saved as one unit; there is no partial
// persistence.
type Document struct {
	Version             int                   `json:"version,omitempty"`
	JournalEntries      []JournalEntry        `json:"journal_entries"`
	CompletedChallenges []ChallengeCompletion `json:"completed_challenges"`
	CommunityPosts      []CommunityPost       `json:"community_posts"`
	Users               map[string]UserRecord `json:"users"`
}

// NewDocument returns an empty document with all four collections
// initialized, so they marshal as [] and {} rather than null.
func NewDocument() *Document {
	return &Document{
		Version:             SchemaVersion,
		JournalEntries:      []JournalEntry{},
		CompletedChallenges: []ChallengeCompletion{},
		CommunityPosts:      []CommunityPost{},
		Users:               map[string]UserRecord{},
	}
}

// Normalize fills in collections a hand-edited or legacy file may have
// left null, so the rest of the code never has to nil-check them.
func (d *Document) Normalize() {
	if d.JournalEntries == nil {
		d.JournalEntries = []JournalEntry{}
	}
	if d.CompletedChallenges == nil {
		d.CompletedChallenges = []ChallengeCompletion{}
	}
	if d.CommunityPosts == nil {
		d.CommunityPosts = []CommunityPost{}
	}
	if d.Users == nil {
		d.Users = map[string]UserRecord{}
	}
}
