package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-server/internal/passhash"
	"github.com/carson-networks/budget-server/internal/storage/sqlconfig"
)

func TestUserService_Register(t *testing.T) {
	svc, mocks := newTestService(t)
	userID := uuid.Must(uuid.NewV4())

	mocks.users.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(nil, nil)
	mocks.users.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(create *sqlconfig.UserCreate) bool {
		return create.Name == "Alice" &&
			create.Email == "alice@example.com" &&
			passhash.Verify(create.PasswordHash, "longenough")
	})).RunAndReturn(func(ctx context.Context, create *sqlconfig.UserCreate) (*sqlconfig.User, error) {
		return &sqlconfig.User{
			ID:           userID,
			Name:         create.Name,
			Email:        create.Email,
			PasswordHash: create.PasswordHash,
		}, nil
	})

	profile, err := svc.User.Register(context.Background(), "Alice", "alice@example.com", "longenough")
	assert.NoError(t, err)
	assert.Equal(t, userID, profile.ID)
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, "alice@example.com", profile.Email)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, mocks := newTestService(t)

	mocks.users.EXPECT().FindByEmail(mock.Anything, "alice@example.com").
		Return(&sqlconfig.User{ID: uuid.Must(uuid.NewV4()), Email: "alice@example.com"}, nil)

	profile, err := svc.User.Register(context.Background(), "Alice", "alice@example.com", "longenough")
	assert.ErrorIs(t, err, ErrConflict)
	assert.Nil(t, profile)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	svc, _ := newTestService(t)

	profile, err := svc.User.Register(context.Background(), "Alice", "alice@example.com", "short")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, profile)
}

func TestUserService_Register_MissingFields(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.User.Register(context.Background(), "", "alice@example.com", "longenough")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.User.Register(context.Background(), "Alice", "   ", "longenough")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUserService_Login(t *testing.T) {
	svc, mocks := newTestService(t)
	userID := uuid.Must(uuid.NewV4())
	hash, err := passhash.Hash("longenough")
	assert.NoError(t, err)

	mocks.users.EXPECT().FindByEmail(mock.Anything, "alice@example.com").
		Return(&sqlconfig.User{ID: userID, Email: "alice@example.com", PasswordHash: hash}, nil)

	accessToken, err := svc.User.Login(context.Background(), "alice@example.com", "longenough")
	assert.NoError(t, err)
	assert.Equal(t, "token-for-"+userID.String(), accessToken)
}

func TestUserService_Login_BadCredentials(t *testing.T) {
	svc, mocks := newTestService(t)
	hash, err := passhash.Hash("longenough")
	assert.NoError(t, err)

	mocks.users.EXPECT().FindByEmail(mock.Anything, "alice@example.com").
		Return(&sqlconfig.User{ID: uuid.Must(uuid.NewV4()), PasswordHash: hash}, nil)
	mocks.users.EXPECT().FindByEmail(mock.Anything, "nobody@example.com").Return(nil, nil)

	// Wrong password and unknown email return the same error so the
	// endpoint cannot be used to probe registered addresses.
	_, wrongPassword := svc.User.Login(context.Background(), "alice@example.com", "wrongwrong")
	_, unknownEmail := svc.User.Login(context.Background(), "nobody@example.com", "longenough")

	assert.ErrorIs(t, wrongPassword, ErrUnauthorized)
	assert.ErrorIs(t, unknownEmail, ErrUnauthorized)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc, mocks := newTestService(t)
	userID := uuid.Must(uuid.NewV4())

	mocks.users.EXPECT().FindByID(mock.Anything, userID).Return(nil, nil)

	profile, err := svc.User.GetProfile(context.Background(), userID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, profile)
}

func TestUserService_UpdateName(t *testing.T) {
	svc, mocks := newTestService(t)
	userID := uuid.Must(uuid.NewV4())

	mocks.users.EXPECT().UpdateName(mock.Anything, userID, "Alice B").Return(1, nil)
	mocks.users.EXPECT().FindByID(mock.Anything, userID).
		Return(&sqlconfig.User{ID: userID, Name: "Alice B", Email: "alice@example.com"}, nil)

	profile, err := svc.User.UpdateName(context.Background(), userID, "Alice B")
	assert.NoError(t, err)
	assert.Equal(t, "Alice B", profile.Name)
}

func TestUserService_UpdateName_Empty(t *testing.T) {
	svc, _ := newTestService(t)

	profile, err := svc.User.UpdateName(context.Background(), uuid.Must(uuid.NewV4()), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, profile)
}

func TestUserService_ChangePassword(t *testing.T) {
	svc, mocks := newTestService(t)
	userID := uuid.Must(uuid.NewV4())
	hash, err := passhash.Hash("oldpassword")
	assert.NoError(t, err)

	mocks.users.EXPECT().FindByID(mock.Anything, userID).
		Return(&sqlconfig.User{ID: userID, PasswordHash: hash}, nil)
	mocks.users.EXPECT().UpdatePasswordHash(mock.Anything, userID, mock.MatchedBy(func(newHash []byte) bool {
		return passhash.Verify(newHash, "newpassword")
	})).Return(1, nil)

	err = svc.User.ChangePassword(context.Background(), userID, "oldpassword", "newpassword")
	assert.NoError(t, err)
}

func TestUserService_ChangePassword_WrongOld(t *testing.T) {
	svc, mocks := newTestService(t)
	userID := uuid.Must(uuid.NewV4())
	hash, err := passhash.Hash("oldpassword")
	assert.NoError(t, err)

	mocks.users.EXPECT().FindByID(mock.Anything, userID).
		Return(&sqlconfig.User{ID: userID, PasswordHash: hash}, nil)

	err = svc.User.ChangePassword(context.Background(), userID, "notoldpassword", "newpassword")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
