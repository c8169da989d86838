package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/forum-api/forum/backend/internal/service/mocks"
	"github.com/forum-api/forum/shared/domain"
	internal_errors "github.com/forum-api/forum/shared/errors"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- Mocks ---

type MockJwt struct {
	NewTokenFunc func(user domain.User) (string, error)
}

func (m *MockJwt) NewToken(user domain.User) (string, error) {
	if m.NewTokenFunc != nil {
		return m.NewTokenFunc(user)
	}
	return "test_token", nil
}

func setupAuth(t *testing.T) (*Auth, *mocks.MockUserStorage, *MockJwt) {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockUserStorage(ctrl)
	jwt := &MockJwt{}
	return NewAuth(storage, jwt), storage, jwt
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	input := RegisterInput{Username: "dicoding", Password: "secret", Fullname: "Dicoding Indonesia"}

	t.Run("Success", func(t *testing.T) {
		service, storage, _ := setupAuth(t)

		storage.EXPECT().UsernameExists(gomock.Any(), "dicoding").Return(false, nil)
		storage.EXPECT().AddUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, data domain.UserCreationData) (domain.User, error) {
				assert.Equal(t, "dicoding", data.Username)
				assert.Equal(t, "Dicoding Indonesia", data.Fullname)
				assert.NotEqual(t, "secret", data.PassHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(data.PassHash), []byte("secret")))
				return domain.User{Id: "user-123", Username: data.Username, PassHash: data.PassHash, Fullname: data.Fullname}, nil
			})

		user, err := service.Register(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, domain.RegisteredUser{Id: "user-123", Username: "dicoding", Fullname: "Dicoding Indonesia"}, user)
	})

	t.Run("UsernameTaken", func(t *testing.T) {
		service, storage, _ := setupAuth(t)

		storage.EXPECT().UsernameExists(gomock.Any(), "dicoding").Return(true, nil)
		storage.EXPECT().AddUser(gomock.Any(), gomock.Any()).Times(0)

		_, err := service.Register(ctx, input)
		assert.True(t, internal_errors.HasCode(err, internal_errors.UsernameTaken))
	})

	t.Run("UsernameTooLong", func(t *testing.T) {
		service, _, _ := setupAuth(t)

		_, err := service.Register(ctx, RegisterInput{Username: strings.Repeat("a", 51), Password: "secret", Fullname: "x"})
		assert.True(t, internal_errors.HasCode(err, internal_errors.UsernameTooLong))
	})

	t.Run("RestrictedCharacter", func(t *testing.T) {
		service, _, _ := setupAuth(t)

		_, err := service.Register(ctx, RegisterInput{Username: "dico ding", Password: "secret", Fullname: "x"})
		assert.True(t, internal_errors.HasCode(err, internal_errors.UsernameRestrictedCharacter))
	})

	t.Run("MissingField", func(t *testing.T) {
		service, _, _ := setupAuth(t)

		_, err := service.Register(ctx, RegisterInput{Username: "dicoding"})
		var vErr *internal_errors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "REGISTER_USER", vErr.Op)
		assert.Equal(t, internal_errors.MissingField, vErr.Code)
	})

	t.Run("StorageError", func(t *testing.T) {
		service, storage, _ := setupAuth(t)
		storageErr := errors.New("db down")

		storage.EXPECT().UsernameExists(gomock.Any(), gomock.Any()).Return(false, nil)
		storage.EXPECT().AddUser(gomock.Any(), gomock.Any()).Return(domain.User{}, storageErr)

		_, err := service.Register(ctx, input)
		assert.ErrorIs(t, err, storageErr)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	passHash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	user := domain.User{Id: "user-123", Username: "dicoding", PassHash: string(passHash)}

	t.Run("Success", func(t *testing.T) {
		service, storage, jwt := setupAuth(t)
		jwt.NewTokenFunc = func(u domain.User) (string, error) {
			assert.Equal(t, user.Id, u.Id)
			return "signed", nil
		}

		storage.EXPECT().UserByUsername(gomock.Any(), "dicoding").Return(user, nil)

		token, err := service.Login(ctx, domain.Credentials{Username: "dicoding", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "signed", token)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		service, storage, _ := setupAuth(t)

		storage.EXPECT().UserByUsername(gomock.Any(), "dicoding").Return(user, nil)

		_, err := service.Login(ctx, domain.Credentials{Username: "dicoding", Password: "wrong"})
		assert.True(t, internal_errors.Is[*internal_errors.AuthenticationError](err))
		assert.True(t, internal_errors.HasCode(err, internal_errors.InvalidCredentials))
	})

	t.Run("UnknownUser", func(t *testing.T) {
		service, storage, _ := setupAuth(t)

		storage.EXPECT().UserByUsername(gomock.Any(), "ghost").
			Return(domain.User{}, &internal_errors.NotFoundError{Code: internal_errors.UserNotFound, Message: "user not found"})

		_, err := service.Login(ctx, domain.Credentials{Username: "ghost", Password: "secret"})
		assert.True(t, internal_errors.HasCode(err, internal_errors.InvalidCredentials))
	})

	t.Run("MissingPassword", func(t *testing.T) {
		service, _, _ := setupAuth(t)

		_, err := service.Login(ctx, domain.Credentials{Username: "dicoding"})
		var vErr *internal_errors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "USER_LOGIN", vErr.Op)
	})

	t.Run("TokenError", func(t *testing.T) {
		service, storage, jwt := setupAuth(t)
		tokenErr := errors.New("can't create token")
		jwt.NewTokenFunc = func(domain.User) (string, error) { return "", tokenErr }

		storage.EXPECT().UserByUsername(gomock.Any(), gomock.Any()).Return(user, nil)

		_, err := service.Login(ctx, domain.Credentials{Username: "dicoding", Password: "secret"})
		assert.ErrorIs(t, err, tokenErr)
	})
}
