package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/forum-api/forum/shared/domain"
	internal_errors "github.com/forum-api/forum/shared/errors"
)

func (s *Storage) AddComment(ctx context.Context, creationData domain.CommentCreationData) (domain.AddedComment, error) {
	var added domain.AddedComment
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO comments (id, thread_id, content, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, content, owner
    `, s.newId(domain.CommentIdPrefix), creationData.ThreadId, creationData.Content, creationData.Owner,
	).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		if violates(err, commentThreadFK) {
			return domain.AddedComment{}, internal_errors.NewThreadNotFound()
		}
		if violates(err, commentOwnerFK) {
			return domain.AddedComment{}, userGone()
		}
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return added, nil
}

func (s *Storage) VerifyCommentExists(ctx context.Context, id domain.CommentId) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check comment existence: %w", err)
	}
	return exists, nil
}

func (s *Storage) CommentOwner(ctx context.Context, id domain.CommentId) (domain.UserId, error) {
	var owner domain.UserId
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM comments WHERE id = $1", id).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", internal_errors.NewCommentNotFound()
		}
		return "", fmt.Errorf("failed to get comment owner: %w", err)
	}
	return owner, nil
}

func (s *Storage) CommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT c.id, c.thread_id, c.content, c.owner, u.username, c.date, c.is_delete
        FROM comments c
        JOIN users u ON c.owner = u.id
        WHERE c.thread_id = $1
        ORDER BY c.date ASC, c.seq ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.Id, &c.ThreadId, &c.Content, &c.Owner, &c.Username, &c.CreatedAt, &c.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return comments, nil
}

// DeleteComment sets the soft delete flag. The row and its content stay in place.
func (s *Storage) DeleteComment(ctx context.Context, id domain.CommentId) error {
	result, err := s.db.ExecContext(ctx, "UPDATE comments SET is_delete = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return internal_errors.NewCommentNotFound()
	}
	return nil
}
