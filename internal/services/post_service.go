package services

import (
	"context"
	"strings"

	"github.com/mindsetlab/growth-tracker/internal/models"
	"github.com/mindsetlab/growth-tracker/internal/repository"
)

// PostService encapsulates the business logic for the community wall.
type PostService struct {
	repo *repository.PostRepository
}

// NewPostService creates a new instance of PostService.
func NewPostService(repo *repository.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// CreatePost publishes a post to the wall. Content is stored as-is.
func (s *PostService) CreatePost(ctx context.Context, author, content string) (models.CommunityPost, error) {
	post := models.NewCommunityPost(content, author)
	if err := s.repo.InsertPost(ctx, post); err != nil {
		return models.CommunityPost{}, err
	}
	return post, nil
}

// ListPosts returns all posts, newest first, filtered by a
// case-insensitive substring match on content. Posts are visible to
// every user, not just their author.
func (s *PostService) ListPosts(ctx context.Context, query string) []models.CommunityPost {
	posts := s.repo.ListPosts(ctx)
	query = strings.ToLower(query)

	matched := []models.CommunityPost{}
	for i := len(posts) - 1; i >= 0; i-- {
		if query == "" || strings.Contains(strings.ToLower(posts[i].Content), query) {
			matched = append(matched, posts[i])
		}
	}
	return matched
}

// LikePost increments the post's like count. Any user may like any
// post, their own included; a vanished post is a no-op.
func (s *PostService) LikePost(ctx context.Context, id string) error {
	return s.repo.LikePost(ctx, id)
}

// DeletePost removes a post; only its author may do so.
func (s *PostService) DeletePost(ctx context.Context, id, author string) error {
	return s.repo.DeletePost(ctx, id, author)
}
