package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ajeet990/myfacebook/internal/domain"
)

// CommentRepository defines persistence access for post comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error)
	ListByPostIDs(ctx context.Context, postIDs []int64) ([]domain.Comment, error)
	Count(ctx context.Context) (int64, error)
}

type commentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository returns a Postgres-backed implementation.
func NewCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &commentRepository{pool: pool}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	const query = `
        INSERT INTO comments (post_id, user_id, text)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		comment.PostID,
		comment.UserID,
		comment.Text,
	).Scan(&comment.ID, &comment.CreatedAt)
}

func (r *commentRepository) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	const query = `
        SELECT id, post_id, user_id, text, created_at
        FROM comments WHERE post_id=$1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanComments(rows)
}

func (r *commentRepository) ListByPostIDs(ctx context.Context, postIDs []int64) ([]domain.Comment, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	const query = `
        SELECT id, post_id, user_id, text, created_at
        FROM comments WHERE post_id = ANY($1) ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, postIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanComments(rows)
}

func (r *commentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments`).Scan(&count)
	return count, err
}

func scanComments(rows pgx.Rows) ([]domain.Comment, error) {
	var comments []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.UserID,
			&comment.Text,
			&comment.CreatedAt,
		); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}
