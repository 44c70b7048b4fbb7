package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/mindsetlab/growth-tracker/internal/models"
	"github.com/mindsetlab/growth-tracker/internal/storage"
	"github.com/sirupsen/logrus"
)

// UserRepository handles store operations related to users.
type UserRepository struct {
	store *storage.Store
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(store *storage.Store) *UserRepository {
	return &UserRepository{store: store}
}

// GetUser looks a user up by name. The match is case-sensitive and a
// miss is an empty result, not an error.
func (r *UserRepository) GetUser(ctx context.Context, username string) (models.UserRecord, bool) {
	var (
		record models.UserRecord
		found  bool
	)
	r.store.View(func(doc *models.Document) {
		record, found = doc.Users[username]
	})
	return record, found
}

// EnsureUser creates the user on first sight with joined = today.
// Calling it again with the same name never touches the existing
// record, so the joined date survives every later login.
func (r *UserRepository) EnsureUser(ctx context.Context, username string) (models.UserRecord, error) {
	var record models.UserRecord
	err := r.store.Update(func(doc *models.Document) error {
		if existing, ok := doc.Users[username]; ok {
			record = existing
			return nil
		}
		record = models.UserRecord{Joined: models.Today()}
		doc.Users[username] = record
		logrus.WithField("username", username).Info("User created on first login")
		return nil
	})
	if err != nil {
		return models.UserRecord{}, fmt.Errorf("failed to ensure user: %v", err)
	}
	return record, nil
}

// SetCredential stores a password hash on the user record. Only the
// password-backed authenticator calls this.
func (r *UserRepository) SetCredential(ctx context.Context, username, hash string) error {
	err := r.store.Update(func(doc *models.Document) error {
		record, ok := doc.Users[username]
		if !ok {
			return fmt.Errorf("user %q not found", username)
		}
		record.Credential = hash
		doc.Users[username] = record
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set credential: %v", err)
	}
	logrus.WithField("username", username).Info("Credential updated")
	return nil
}

// AllUsernames returns every known username in stable order.
func (r *UserRepository) AllUsernames(ctx context.Context) []string {
	var names []string
	r.store.View(func(doc *models.Document) {
		for name := range doc.Users {
			names = append(names, name)
		}
	})
	sort.Strings(names)
	return names
}
