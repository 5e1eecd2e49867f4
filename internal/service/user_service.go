package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-server/internal/operator/actions"
	"github.com/carson-networks/budget-server/internal/passhash"
	"github.com/carson-networks/budget-server/internal/storage"
	"github.com/carson-networks/budget-server/internal/storage/sqlconfig"
)

// UserService handles registration, login and profile business logic.
type UserService struct {
	storage   *storage.Storage
	processor Processor
	tokens    TokenIssuer
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage, processor Processor, tokens TokenIssuer) *UserService {
	return &UserService{storage: store, processor: processor, tokens: tokens}
}

// Register creates a new user with a one-way password hash and returns the
// profile.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*Profile, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}
	if err := passhash.CheckPolicy(password); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	existing, err := s.storage.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	hash, err := passhash.Hash(password)
	if err != nil {
		return nil, err
	}

	action := &actions.RegisterUser{
		Create: sqlconfig.UserCreate{
			Name:         name,
			Email:        email,
			PasswordHash: hash,
		},
	}
	if err := s.processor.Process(ctx, action); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, err
	}

	return profileFromStorage(action.Created), nil
}

// Login verifies the credentials and issues an access token. Unknown email
// and wrong password are indistinguishable to the caller so registered
// addresses cannot be probed.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.storage.Users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || !passhash.Verify(user.PasswordHash, password) {
		return "", fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}

	return s.tokens.Issue(user.ID)
}

// GetProfile retrieves a user's profile by id.
func (s *UserService) GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	user, err := s.storage.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	return profileFromStorage(user), nil
}

// UpdateName replaces the user's display name and returns the updated
// profile.
func (s *UserService) UpdateName(ctx context.Context, userID uuid.UUID, name string) (*Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	action := &actions.UpdateUserName{ID: userID, Name: name}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	if action.Modified == 0 {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	return s.GetProfile(ctx, userID)
}

// ChangePassword re-verifies the old password and replaces the stored hash.
func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	user, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: user not found", ErrNotFound)
	}
	if !passhash.Verify(user.PasswordHash, oldPassword) {
		return fmt.Errorf("%w: old password is incorrect", ErrInvalidInput)
	}
	if err := passhash.CheckPolicy(newPassword); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := passhash.Hash(newPassword)
	if err != nil {
		return err
	}

	action := &actions.UpdateUserPassword{ID: userID, Hash: hash}
	return s.processor.Process(ctx, action)
}
