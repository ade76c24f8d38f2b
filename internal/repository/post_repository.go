package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ajeet990/myfacebook/internal/domain"
)

// PostRepository defines persistence access for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	ListAll(ctx context.Context) ([]domain.Post, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]domain.Post, error)
	ListByAuthors(ctx context.Context, authorIDs []int64) ([]domain.Post, error)
	Count(ctx context.Context) (int64, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}

type postRepository struct {
	pool *pgxpool.Pool
}

// NewPostRepository returns a Postgres-backed implementation.
func NewPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postRepository{pool: pool}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	const query = `
        INSERT INTO posts (author_id, text, image_url)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		post.AuthorID,
		post.Text,
		post.ImageURL,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	const query = `
        SELECT id, author_id, text, image_url, created_at, updated_at
        FROM posts WHERE id=$1`

	var post domain.Post
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.AuthorID,
		&post.Text,
		&post.ImageURL,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListAll(ctx context.Context) ([]domain.Post, error) {
	const query = `
        SELECT id, author_id, text, image_url, created_at, updated_at
        FROM posts ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID int64) ([]domain.Post, error) {
	const query = `
        SELECT id, author_id, text, image_url, created_at, updated_at
        FROM posts WHERE author_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *postRepository) ListByAuthors(ctx context.Context, authorIDs []int64) ([]domain.Post, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	const query = `
        SELECT id, author_id, text, image_url, created_at, updated_at
        FROM posts WHERE author_id = ANY($1) ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, authorIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count)
	return count, err
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE author_id=$1`, authorID).Scan(&count)
	return count, err
}

func scanPosts(rows pgx.Rows) ([]domain.Post, error) {
	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID,
			&post.AuthorID,
			&post.Text,
			&post.ImageURL,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
