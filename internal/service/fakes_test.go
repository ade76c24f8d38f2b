package service

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Ajeet990/myfacebook/internal/domain"
	"github.com/Ajeet990/myfacebook/internal/events"
	"github.com/Ajeet990/myfacebook/internal/session"
)

type fakeUserRepo struct {
	users  []domain.User
	nextID int64
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByIDs(_ context.Context, ids []int64) ([]domain.User, error) {
	var out []domain.User
	for _, id := range ids {
		for i := range f.users {
			if f.users[i].ID == id {
				out = append(out, f.users[i])
			}
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) ListNonAdmin(_ context.Context, offset, limit int) ([]domain.User, error) {
	var all []domain.User
	for _, u := range f.users {
		if u.Role != domain.RoleAdmin {
			all = append(all, u)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeUserRepo) CountNonAdmin(_ context.Context) (int64, error) {
	var count int64
	for _, u := range f.users {
		if u.Role != domain.RoleAdmin {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakePostRepo struct {
	posts  []domain.Post
	nextID int64
}

func (f *fakePostRepo) Create(_ context.Context, post *domain.Post) error {
	f.nextID++
	post.ID = f.nextID
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	f.posts = append(f.posts, *post)
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id int64) (*domain.Post, error) {
	for i := range f.posts {
		if f.posts[i].ID == id {
			p := f.posts[i]
			return &p, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakePostRepo) ListAll(_ context.Context) ([]domain.Post, error) {
	out := make([]domain.Post, len(f.posts))
	copy(out, f.posts)
	return out, nil
}

func (f *fakePostRepo) ListByAuthor(_ context.Context, authorID int64) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range f.posts {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) ListByAuthors(_ context.Context, authorIDs []int64) ([]domain.Post, error) {
	var out []domain.Post
	for _, id := range authorIDs {
		for _, p := range f.posts {
			if p.AuthorID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (f *fakePostRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.posts)), nil
}

func (f *fakePostRepo) CountByAuthor(_ context.Context, authorID int64) (int64, error) {
	var count int64
	for _, p := range f.posts {
		if p.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

type fakeLikeRepo struct {
	likes  []domain.Like
	nextID int64
}

func (f *fakeLikeRepo) Create(_ context.Context, like *domain.Like) error {
	f.nextID++
	like.ID = f.nextID
	like.CreatedAt = time.Now()
	f.likes = append(f.likes, *like)
	return nil
}

func (f *fakeLikeRepo) Delete(_ context.Context, id int64) error {
	for i := range f.likes {
		if f.likes[i].ID == id {
			f.likes = append(f.likes[:i], f.likes[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeLikeRepo) GetByUserAndPost(_ context.Context, userID, postID int64) (*domain.Like, error) {
	for i := range f.likes {
		if f.likes[i].UserID == userID && f.likes[i].PostID == postID {
			l := f.likes[i]
			return &l, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeLikeRepo) ListByPostIDs(_ context.Context, postIDs []int64) ([]domain.Like, error) {
	var out []domain.Like
	for _, id := range postIDs {
		for _, l := range f.likes {
			if l.PostID == id {
				out = append(out, l)
			}
		}
	}
	return out, nil
}

func (f *fakeLikeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.likes)), nil
}

type fakeCommentRepo struct {
	comments []domain.Comment
	nextID   int64
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *domain.Comment) error {
	f.nextID++
	comment.ID = f.nextID
	comment.CreatedAt = time.Now()
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeCommentRepo) ListByPost(_ context.Context, postID int64) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) ListByPostIDs(_ context.Context, postIDs []int64) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, id := range postIDs {
		for _, c := range f.comments {
			if c.PostID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.comments)), nil
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]session.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]session.Session{}}
}

func (f *fakeSessionStore) Create(_ context.Context, s session.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[s.Token] = s
	return nil
}

func (f *fakeSessionStore) Get(_ context.Context, token string) (*session.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[token]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, token)
	return nil
}

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}
