package models

import (
	"time"

	"github.com/google/uuid"
)

// CommunityPost is a message on the shared community wall.
type CommunityPost struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Content string    `json:"content"`
	Author  string    `json:"author"`
	Likes   int       `json:"likes"`
}

// NewCommunityPost builds a post stamped with the creation instant and
// zero likes.
func NewCommunityPost(content, author string) CommunityPost {
	return CommunityPost{
		ID:      uuid.NewString(),
		Date:    time.Now(),
		Content: content,
		Author:  author,
		Likes:   0,
	}
}
