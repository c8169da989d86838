package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/forum-api/forum/shared/domain"
	internal_errors "github.com/forum-api/forum/shared/errors"
)

func (s *Storage) AddReply(ctx context.Context, creationData domain.ReplyCreationData) (domain.AddedReply, error) {
	var added domain.AddedReply
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO replies (id, comment_id, content, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, content, owner
    `, s.newId(domain.ReplyIdPrefix), creationData.CommentId, creationData.Content, creationData.Owner,
	).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		// the comment was removed between the existence check and the insert
		if violates(err, replyCommentFK) {
			return domain.AddedReply{}, internal_errors.NewCommentNotFound()
		}
		if violates(err, replyOwnerFK) {
			return domain.AddedReply{}, userGone()
		}
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return added, nil
}

func (s *Storage) RepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.Reply, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT r.id, r.comment_id, r.content, r.owner, u.username, r.date, r.is_delete
        FROM replies r
        JOIN users u ON r.owner = u.id
        WHERE r.comment_id = $1
        ORDER BY r.date ASC, r.seq ASC
    `, commentId)
	if err != nil {
		return nil, fmt.Errorf("failed to query replies: %w", err)
	}
	defer rows.Close()

	replies := []domain.Reply{}
	for rows.Next() {
		var r domain.Reply
		if err := rows.Scan(&r.Id, &r.CommentId, &r.Content, &r.Owner, &r.Username, &r.CreatedAt, &r.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate replies: %w", err)
	}
	return replies, nil
}

func (s *Storage) VerifyReplyExists(ctx context.Context, id domain.ReplyId) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM replies WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check reply existence: %w", err)
	}
	if !exists {
		return internal_errors.NewReplyNotFound()
	}
	return nil
}

func (s *Storage) ReplyOwner(ctx context.Context, id domain.ReplyId) (domain.UserId, error) {
	var owner domain.UserId
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM replies WHERE id = $1", id).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", internal_errors.NewReplyNotFound()
		}
		return "", fmt.Errorf("failed to get reply owner: %w", err)
	}
	return owner, nil
}

func (s *Storage) VerifyReplyOwnership(ctx context.Context, id domain.ReplyId, owner domain.UserId) error {
	actual, err := s.ReplyOwner(ctx, id)
	if err != nil {
		return err
	}
	if actual != owner {
		return internal_errors.NewNotAuthorized("you are not the owner of this reply")
	}
	return nil
}

func (s *Storage) DeleteReplyById(ctx context.Context, id domain.ReplyId) error {
	result, err := s.db.ExecContext(ctx, "UPDATE replies SET is_delete = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return internal_errors.NewReplyNotFound()
	}
	return nil
}
