package services

import (
	"context"
	"fmt"

	"github.com/mindsetlab/growth-tracker/internal/models"
	"github.com/mindsetlab/growth-tracker/internal/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator maps a login attempt to a user record. The default
// scheme is name-only — identity is whatever name you typed, no
// password, which makes impersonation trivial. That is the historical
// contract of the application, kept on purpose; the interface exists
// so a deployment can swap in a stronger scheme without touching any
// calling code.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (models.UserRecord, error)
}

// NameAuthenticator is the default scheme: a case-sensitive lookup by
// name, creating the record on first sight. The password argument is
// ignored.
type NameAuthenticator struct {
	users *repository.UserRepository
}

// NewNameAuthenticator creates a new instance of NameAuthenticator.
func NewNameAuthenticator(users *repository.UserRepository) *NameAuthenticator {
	return &NameAuthenticator{users: users}
}

// Authenticate returns the user's record, creating it with
// joined = today on first login. Repeat logins never touch the joined
// date.
func (a *NameAuthenticator) Authenticate(ctx context.Context, username, _ string) (models.UserRecord, error) {
	if username == "" {
		return models.UserRecord{}, fmt.Errorf("username is required")
	}
	return a.users.EnsureUser(ctx, username)
}

// PasswordAuthenticator is the substitutable stronger scheme: the
// first login with a name claims it and stores a bcrypt hash, every
// later login must present the same password. Records it writes carry
// the hash in an extra field; name-only documents are untouched.
type PasswordAuthenticator struct {
	users *repository.UserRepository
}

// NewPasswordAuthenticator creates a new instance of
// PasswordAuthenticator.
func NewPasswordAuthenticator(users *repository.UserRepository) *PasswordAuthenticator {
	return &PasswordAuthenticator{users: users}
}

func (a *PasswordAuthenticator) Authenticate(ctx context.Context, username, password string) (models.UserRecord, error) {
	if username == "" || password == "" {
		return models.UserRecord{}, fmt.Errorf("username and password are required")
	}

	record, found := a.users.GetUser(ctx, username)
	if !found || record.Credential == "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			logrus.WithError(err).Error("Password hashing failed")
			return models.UserRecord{}, fmt.Errorf("failed to hash password: %v", err)
		}
		record, err = a.users.EnsureUser(ctx, username)
		if err != nil {
			return models.UserRecord{}, err
		}
		if err := a.users.SetCredential(ctx, username, string(hash)); err != nil {
			return models.UserRecord{}, err
		}
		record.Credential = string(hash)
		return record, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.Credential), []byte(password)); err != nil {
		logrus.WithField("username", username).Warn("Invalid credentials")
		return models.UserRecord{}, fmt.Errorf("invalid credentials")
	}
	return record, nil
}
