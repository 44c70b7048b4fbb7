package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mindsetlab/growth-tracker/internal/models"
	"github.com/mindsetlab/growth-tracker/internal/storage"
	"github.com/sirupsen/logrus"
)

// ErrNotAuthor is returned when someone other than the author tries to
// delete a community post.
var ErrNotAuthor = errors.New("only the author can delete a post")

// PostRepository handles store operations related to community posts.
type PostRepository struct {
	store *storage.Store
}

// NewPostRepository creates a new instance of PostRepository.
func NewPostRepository(store *storage.Store) *PostRepository {
	return &PostRepository{store: store}
}

// InsertPost appends a post to the wall.
func (r *PostRepository) InsertPost(ctx context.Context, post models.CommunityPost) error {
	err := r.store.Update(func(doc *models.Document) error {
		doc.CommunityPosts = append(doc.CommunityPosts, post)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to insert post: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"postID": post.ID,
		"author": post.Author,
	}).Info("Community post inserted")
	return nil
}

// LikePost increments the like count of the given post. Liking a post
// that is already gone is a no-op. Increments run through the store's
// single writer, so concurrent likes all land.
func (r *PostRepository) LikePost(ctx context.Context, id string) error {
	err := r.store.Update(func(doc *models.Document) error {
		for i := range doc.CommunityPosts {
			if doc.CommunityPosts[i].ID == id {
				doc.CommunityPosts[i].Likes++
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to like post: %v", err)
	}
	return nil
}

// DeletePost removes the post with the given ID if author matches the
// post's author. Deleting an absent post is a no-op.
func (r *PostRepository) DeletePost(ctx context.Context, id, author string) error {
	err := r.store.Update(func(doc *models.Document) error {
		for i, post := range doc.CommunityPosts {
			if post.ID != id {
				continue
			}
			if post.Author != author {
				return ErrNotAuthor
			}
			doc.CommunityPosts = append(doc.CommunityPosts[:i], doc.CommunityPosts[i+1:]...)
			logrus.WithField("postID", id).Info("Community post deleted")
			return nil
		}
		return nil
	})
	if errors.Is(err, ErrNotAuthor) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to delete post: %v", err)
	}
	return nil
}

// ListPosts returns every post in insertion order.
func (r *PostRepository) ListPosts(ctx context.Context) []models.CommunityPost {
	posts := []models.CommunityPost{}
	r.store.View(func(doc *models.Document) {
		posts = append(posts, doc.CommunityPosts...)
	})
	return posts
}
