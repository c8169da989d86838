package pg

import (
	"context"
	"fmt"

	"github.com/forum-api/forum/shared/domain"
	internal_errors "github.com/forum-api/forum/shared/errors"
	"github.com/forum-api/forum/shared/logger"
	"github.com/lib/pq"
)

func (s *Storage) CheckUserLikedComment(ctx context.Context, userId domain.UserId, commentId domain.CommentId) (bool, error) {
	var liked bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM user_comment_likes WHERE user_id = $1 AND comment_id = $2)",
		userId, commentId,
	).Scan(&liked)
	if err != nil {
		return false, fmt.Errorf("failed to check comment like: %w", err)
	}
	return liked, nil
}

// LikeComment records a like. A concurrent duplicate is rejected by the unique
// constraint and treated as success since the pair is already there.
func (s *Storage) LikeComment(ctx context.Context, userId domain.UserId, commentId domain.CommentId) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO user_comment_likes (user_id, comment_id) VALUES ($1, $2)",
		userId, commentId,
	)
	if err != nil {
		if isUniqueViolation(err) {
			logger.From(ctx).Debug("comment already liked", "user_id", userId, "comment_id", commentId)
			return nil
		}
		if violates(err, likeCommentFK) {
			return internal_errors.NewCommentNotFound()
		}
		if violates(err, likeUserFK) {
			return userGone()
		}
		return fmt.Errorf("failed to like comment: %w", err)
	}
	return nil
}

func (s *Storage) UnlikeComment(ctx context.Context, userId domain.UserId, commentId domain.CommentId) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM user_comment_likes WHERE user_id = $1 AND comment_id = $2",
		userId, commentId,
	)
	if err != nil {
		return fmt.Errorf("failed to unlike comment: %w", err)
	}
	return nil
}

func (s *Storage) LikeCount(ctx context.Context, commentId domain.CommentId) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM user_comment_likes WHERE comment_id = $1", commentId).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

func (s *Storage) LikeCounts(ctx context.Context, commentIds []domain.CommentId) (map[domain.CommentId]int, error) {
	counts := make(map[domain.CommentId]int, len(commentIds))
	if len(commentIds) == 0 {
		return counts, nil
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT comment_id, COUNT(*)
        FROM user_comment_likes
        WHERE comment_id = ANY($1)
        GROUP BY comment_id
    `, pq.Array(commentIds))
	if err != nil {
		return nil, fmt.Errorf("failed to query like counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    domain.CommentId
			count int
		)
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("failed to scan like count: %w", err)
		}
		counts[id] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate like counts: %w", err)
	}
	return counts, nil
}
