package service

import (
	"context"

	"github.com/Ajeet990/myfacebook/internal/domain"
	"github.com/Ajeet990/myfacebook/internal/repository"
)

// AdminService serves the admin user list and dashboard aggregates.
type AdminService struct {
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	likes    repository.LikeRepository
}

// NewAdminService builds the service.
func NewAdminService(users repository.UserRepository, posts repository.PostRepository, comments repository.CommentRepository, likes repository.LikeRepository) *AdminService {
	return &AdminService{users: users, posts: posts, comments: comments, likes: likes}
}

// UserWithPosts pairs an account with its posts for the admin list.
type UserWithPosts struct {
	User  domain.User
	Posts []domain.Post
}

// Pagination describes the page window returned.
type Pagination struct {
	TotalUsers  int64 `json:"totalUsers"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"perPage"`
}

// ListUsers returns a page of non-admin users, newest first, each with
// their posts.
func (s *AdminService) ListUsers(ctx context.Context, page, limit int) ([]UserWithPosts, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	users, err := s.users.ListNonAdmin(ctx, offset, limit)
	if err != nil {
		return nil, Pagination{}, err
	}
	total, err := s.users.CountNonAdmin(ctx)
	if err != nil {
		return nil, Pagination{}, err
	}

	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	posts, err := s.posts.ListByAuthors(ctx, ids)
	if err != nil {
		return nil, Pagination{}, err
	}
	postsByAuthor := map[int64][]domain.Post{}
	for _, p := range posts {
		postsByAuthor[p.AuthorID] = append(postsByAuthor[p.AuthorID], p)
	}

	result := make([]UserWithPosts, 0, len(users))
	for _, u := range users {
		result = append(result, UserWithPosts{User: u, Posts: postsByAuthor[u.ID]})
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	return result, Pagination{
		TotalUsers:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PerPage:     limit,
	}, nil
}

// DashboardStats are the aggregate counts shown on the admin dashboard.
type DashboardStats struct {
	Users    int64 `json:"users"`
	Posts    int64 `json:"posts"`
	Comments int64 `json:"comments"`
	Likes    int64 `json:"likes"`
}

// Dashboard computes aggregate counts.
func (s *AdminService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.Count(ctx)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.Count(ctx)
	if err != nil {
		return nil, err
	}
	likes, err := s.likes.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{Users: users, Posts: posts, Comments: comments, Likes: likes}, nil
}
