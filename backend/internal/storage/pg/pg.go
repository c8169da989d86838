package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/forum-api/forum/shared/config"
	internal_errors "github.com/forum-api/forum/shared/errors"
	"github.com/forum-api/forum/shared/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
)

const queryTimeout = 5 * time.Second

type Storage struct {
	db    *sql.DB
	newId func(prefix string) string
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")

	storage := &Storage{db: db, newId: newId}
	if path := cfg.Private.Pg.InitPath; path != "" {
		if err := storage.applyScript(ctx, path); err != nil {
			db.Close()
			return nil, err
		}
		logger.Log.Info("init script applied", "path", path)
	}
	return storage, nil
}

func Connect(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Private.Pg.Host, cfg.Private.Pg.Port, cfg.Private.Pg.User, cfg.Private.Pg.Password, cfg.Private.Pg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// Ping reports whether the database is reachable. Used by the readiness probe.
func (s *Storage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return s.db.PingContext(ctx)
}

func (s *Storage) applyScript(ctx context.Context, path string) error {
	script, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read init script: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, string(script)); err != nil {
		return fmt.Errorf("failed to apply init script: %w", err)
	}
	return nil
}

func newId(prefix string) string {
	return prefix + uuid.NewString()
}

func hasCode(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}
	return false
}

func isUniqueViolation(err error) bool {
	return hasCode(err, pgerrcode.UniqueViolation)
}

// Foreign key constraint names from migrations/init.sql.
const (
	threadOwnerFK   = "threads_owner_fkey"
	commentThreadFK = "comments_thread_id_fkey"
	commentOwnerFK  = "comments_owner_fkey"
	replyCommentFK  = "replies_comment_id_fkey"
	replyOwnerFK    = "replies_owner_fkey"
	likeUserFK      = "user_comment_likes_user_id_fkey"
	likeCommentFK   = "user_comment_likes_comment_id_fkey"
)

// violates reports whether err is a foreign key violation of the named constraint.
func violates(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgerrcode.ForeignKeyViolation && pqErr.Constraint == constraint
	}
	return false
}

// userGone is returned when a write references a user deleted after its token was issued.
func userGone() error {
	return &internal_errors.AuthenticationError{Code: internal_errors.InvalidToken, Message: "user no longer exists"}
}
