package services

import (
	"context"
	"fmt"

	"github.com/mindsetlab/growth-tracker/internal/models"
	"github.com/mindsetlab/growth-tracker/internal/repository"
	"github.com/sirupsen/logrus"
)

// UserService encapsulates the business logic for user identity.
type UserService struct {
	auth  Authenticator
	users *repository.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(auth Authenticator, users *repository.UserRepository) *UserService {
	return &UserService{auth: auth, users: users}
}

// Login runs the configured authentication scheme and returns the
// public view of the user.
func (s *UserService) Login(ctx context.Context, username, password string) (models.PublicUser, error) {
	record, err := s.auth.Authenticate(ctx, username, password)
	if err != nil {
		logrus.WithField("username", username).WithError(err).Warn("Authentication failed")
		return models.PublicUser{}, err
	}

	logrus.WithField("username", username).Info("User authenticated")
	return models.PublicUser{Username: username, Joined: record.Joined}, nil
}

// GetUser fetches the public view of a user by name.
func (s *UserService) GetUser(ctx context.Context, username string) (models.PublicUser, error) {
	record, found := s.users.GetUser(ctx, username)
	if !found {
		return models.PublicUser{}, fmt.Errorf("user %q not found", username)
	}
	return models.PublicUser{Username: username, Joined: record.Joined}, nil
}
