package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/forum-api/forum/shared/domain"
	internal_errors "github.com/forum-api/forum/shared/errors"
)

func (s *Storage) AddUser(ctx context.Context, creationData domain.UserCreationData) (domain.User, error) {
	user := domain.User{
		Id:       s.newId(domain.UserIdPrefix),
		Username: creationData.Username,
		PassHash: creationData.PassHash,
		Fullname: creationData.Fullname,
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, username, password, fullname) VALUES ($1, $2, $3, $4)",
		user.Id, user.Username, user.PassHash, user.Fullname,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, &internal_errors.ValidationError{Op: "REGISTER_USER", Code: internal_errors.UsernameTaken, Message: "username is not available"}
		}
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

func (s *Storage) UserByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, password, fullname FROM users WHERE username = $1",
		username,
	).Scan(&user.Id, &user.Username, &user.PassHash, &user.Fullname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.NotFoundError{Code: internal_errors.UserNotFound, Message: "user not found"}
		}
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *Storage) UsernameExists(ctx context.Context, username domain.Username) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)", username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}
