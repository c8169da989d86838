package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/forum-api/forum/shared/domain"
	internal_errors "github.com/forum-api/forum/shared/errors"
)

func (s *Storage) AddThread(ctx context.Context, creationData domain.ThreadCreationData) (domain.AddedThread, error) {
	var added domain.AddedThread
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO threads (id, title, body, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, owner
    `, s.newId(domain.ThreadIdPrefix), creationData.Title, creationData.Body, creationData.Owner,
	).Scan(&added.Id, &added.Title, &added.Owner)
	if err != nil {
		if violates(err, threadOwnerFK) {
			return domain.AddedThread{}, userGone()
		}
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return added, nil
}

func (s *Storage) VerifyThreadExists(ctx context.Context, id domain.ThreadId) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM threads WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check thread existence: %w", err)
	}
	return exists, nil
}

func (s *Storage) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	var thread domain.Thread
	err := s.db.QueryRowContext(ctx, `
        SELECT t.id, t.title, t.body, t.owner, u.username, t.date
        FROM threads t
        JOIN users u ON t.owner = u.id
        WHERE t.id = $1
    `, id).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.Owner, &thread.Username, &thread.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, internal_errors.NewThreadNotFound()
		}
		return domain.Thread{}, fmt.Errorf("failed to get thread: %w", err)
	}
	return thread, nil
}
