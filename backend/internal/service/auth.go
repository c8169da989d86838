package service

import (
	"context"
	"regexp"

	"github.com/forum-api/forum/shared/domain"
	"github.com/forum-api/forum/shared/errors"
	"github.com/forum-api/forum/shared/logger"
	"golang.org/x/crypto/bcrypt"
)

const maxUsernameLen = 50

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (domain.RegisteredUser, error)
	Login(ctx context.Context, creds domain.Credentials) (string, error)
}

type RegisterInput struct {
	Username domain.Username
	Password domain.Password
	Fullname string
}

type Auth struct {
	storage UserStorage
	jwt     Jwt
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage UserStorage, jwt Jwt) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

// Register creates a user with a bcrypt hashed password.
func (a *Auth) Register(ctx context.Context, input RegisterInput) (domain.RegisteredUser, error) {
	err := requireFields("REGISTER_USER",
		field{"username", input.Username},
		field{"password", input.Password},
		field{"fullname", input.Fullname},
	)
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	if len(input.Username) > maxUsernameLen {
		return domain.RegisteredUser{}, &errors.ValidationError{Op: "REGISTER_USER", Code: errors.UsernameTooLong, Message: "username is longer than 50 characters"}
	}
	if !usernamePattern.MatchString(input.Username) {
		return domain.RegisteredUser{}, &errors.ValidationError{Op: "REGISTER_USER", Code: errors.UsernameRestrictedCharacter, Message: "username may contain only letters, digits and underscore"}
	}

	taken, err := a.storage.UsernameExists(ctx, input.Username)
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	if taken {
		return domain.RegisteredUser{}, &errors.ValidationError{Op: "REGISTER_USER", Code: errors.UsernameTaken, Message: "username is not available"}
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.RegisteredUser{}, err
	}

	user, err := a.storage.AddUser(ctx, domain.UserCreationData{
		Username: input.Username,
		PassHash: string(passHash),
		Fullname: input.Fullname,
	})
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	return domain.RegisteredUser{Id: user.Id, Username: user.Username, Fullname: user.Fullname}, nil
}

// Login checks the credentials and returns an access token.
// Unknown user and wrong password fail the same way to not leak existing users.
func (a *Auth) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	err := requireFields("USER_LOGIN",
		field{"username", creds.Username},
		field{"password", creds.Password},
	)
	if err != nil {
		return "", err
	}

	invalid := &errors.AuthenticationError{Code: errors.InvalidCredentials, Message: "invalid credentials"}

	user, err := a.storage.UserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", invalid
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		logger.From(ctx).Debug("password verification failed", "user_id", user.Id)
		return "", invalid
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", err
	}
	return token, nil
}
