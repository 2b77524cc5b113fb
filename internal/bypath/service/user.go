package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/bypath/internal/bypath/domain"
	"github.com/aussiebroadwan/bypath/internal/bypath/store"
	"github.com/aussiebroadwan/bypath/pkg/idx"
	"github.com/aussiebroadwan/bypath/pkg/slogx"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

// UserService manages the user identities that tokens attach to.
type UserService struct {
	Store store.Store
}

// CreateUser registers a new user identity.
func (s *UserService) CreateUser(ctx context.Context, username, displayName string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	if displayName == "" {
		displayName = username
	}

	user := domain.User{
		ID:          idx.New().String(),
		Username:    username,
		DisplayName: displayName,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		l.Error("failed to create user", "error", err, "username", username)
		return domain.User{}, err
	}

	l.Info("user created", "user_id", user.ID, "username", username)
	return user, nil
}

// GetUser returns a user by ID.
func (s *UserService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}
