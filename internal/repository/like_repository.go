package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ajeet990/myfacebook/internal/domain"
)

// LikeRepository defines persistence access for post likes.
type LikeRepository interface {
	Create(ctx context.Context, like *domain.Like) error
	Delete(ctx context.Context, id int64) error
	GetByUserAndPost(ctx context.Context, userID, postID int64) (*domain.Like, error)
	ListByPostIDs(ctx context.Context, postIDs []int64) ([]domain.Like, error)
	Count(ctx context.Context) (int64, error)
}

type likeRepository struct {
	pool *pgxpool.Pool
}

// NewLikeRepository returns a Postgres-backed implementation.
func NewLikeRepository(pool *pgxpool.Pool) LikeRepository {
	return &likeRepository{pool: pool}
}

func (r *likeRepository) Create(ctx context.Context, like *domain.Like) error {
	const query = `
        INSERT INTO likes (post_id, user_id)
        VALUES ($1, $2)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query, like.PostID, like.UserID).
		Scan(&like.ID, &like.CreatedAt)
}

func (r *likeRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM likes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *likeRepository) GetByUserAndPost(ctx context.Context, userID, postID int64) (*domain.Like, error) {
	const query = `
        SELECT id, post_id, user_id, created_at
        FROM likes WHERE user_id=$1 AND post_id=$2`

	var like domain.Like
	if err := r.pool.QueryRow(ctx, query, userID, postID).Scan(
		&like.ID,
		&like.PostID,
		&like.UserID,
		&like.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) ListByPostIDs(ctx context.Context, postIDs []int64) ([]domain.Like, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	const query = `
        SELECT id, post_id, user_id, created_at
        FROM likes WHERE post_id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, postIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var likes []domain.Like
	for rows.Next() {
		var like domain.Like
		if err := rows.Scan(&like.ID, &like.PostID, &like.UserID, &like.CreatedAt); err != nil {
			return nil, err
		}
		likes = append(likes, like)
	}
	return likes, rows.Err()
}

func (r *likeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM likes`).Scan(&count)
	return count, err
}
