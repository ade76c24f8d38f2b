package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Ajeet990/myfacebook/internal/domain"
	"github.com/Ajeet990/myfacebook/internal/events"
	"github.com/Ajeet990/myfacebook/internal/repository"
	"github.com/Ajeet990/myfacebook/pkg/util"
)

// PostService coordinates feed, like and comment flows.
type PostService struct {
	posts      repository.PostRepository
	likes      repository.LikeRepository
	comments   repository.CommentRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// PostDependencies encapsulates repo requirements for the post service.
type PostDependencies struct {
	PostRepo    repository.PostRepository
	LikeRepo    repository.LikeRepository
	CommentRepo repository.CommentRepository
	UserRepo    repository.UserRepository
	Dispatcher  events.Dispatcher
}

// NewPostService builds the service.
func NewPostService(deps PostDependencies) *PostService {
	return &PostService{
		posts:      deps.PostRepo,
		likes:      deps.LikeRepo,
		comments:   deps.CommentRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CommentView pairs a comment with its author.
type CommentView struct {
	Comment domain.Comment
	User    domain.User
}

// PostView is a post with everything the feed renders.
type PostView struct {
	Post     domain.Post
	Author   domain.User
	Likes    []domain.Like
	Comments []CommentView
}

// Feed returns every post, newest first, with authors, likes and
// comments attached.
func (s *PostService) Feed(ctx context.Context) ([]PostView, error) {
	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, posts)
}

// ListUserPosts returns the posts authored by one user.
func (s *PostService) ListUserPosts(ctx context.Context, userID int64) ([]PostView, error) {
	posts, err := s.posts.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, posts)
}

// CreatePost stores a new post. The handler has already persisted any
// uploaded image and validated that text or image is present.
func (s *PostService) CreatePost(ctx context.Context, authorID int64, text, imageURL *string) (*domain.Post, error) {
	post := &domain.Post{
		AuthorID: authorID,
		Text:     text,
		ImageURL: imageURL,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventPostCreated,
		ActorID:   authorID,
		Timestamp: time.Now(),
		Payload:   events.PostCreatedPayload{PostID: post.ID, HasImage: imageURL != nil},
	})
	return post, nil
}

// ToggleLike likes the post when no like exists, unlikes otherwise.
// Returns whether the post is liked after the call.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID int64) (bool, *domain.Like, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil, util.NewNotFound("Post")
		}
		return false, nil, err
	}

	existing, err := s.likes.GetByUserAndPost(ctx, userID, postID)
	switch {
	case err == nil:
		if err := s.likes.Delete(ctx, existing.ID); err != nil {
			return false, nil, err
		}
		s.publishLike(ctx, userID, postID, false)
		return false, nil, nil
	case errors.Is(err, pgx.ErrNoRows):
		like := &domain.Like{PostID: postID, UserID: userID}
		if err := s.likes.Create(ctx, like); err != nil {
			return false, nil, err
		}
		s.publishLike(ctx, userID, postID, true)
		return true, like, nil
	default:
		return false, nil, err
	}
}

// ListComments returns a post's comments in ascending order, each with
// its author.
func (s *PostService) ListComments(ctx context.Context, postID int64) ([]CommentView, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("Post")
		}
		return nil, err
	}

	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.attachCommentAuthors(ctx, comments)
}

// AddComment attaches a comment to a post.
func (s *PostService) AddComment(ctx context.Context, userID, postID int64, text string) (*CommentView, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("Post")
		}
		return nil, err
	}

	comment := &domain.Comment{PostID: postID, UserID: userID, Text: text}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventCommentAdded,
		ActorID:   userID,
		Timestamp: time.Now(),
		Payload:   events.CommentAddedPayload{PostID: postID, CommentID: comment.ID},
	})

	return &CommentView{Comment: *comment, User: *user}, nil
}

func (s *PostService) assemble(ctx context.Context, posts []domain.Post) ([]PostView, error) {
	if len(posts) == 0 {
		return []PostView{}, nil
	}

	postIDs := make([]int64, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
	}

	likes, err := s.likes.ListByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	userIDs := map[int64]struct{}{}
	for _, p := range posts {
		userIDs[p.AuthorID] = struct{}{}
	}
	for _, c := range comments {
		userIDs[c.UserID] = struct{}{}
	}
	ids := make([]int64, 0, len(userIDs))
	for id := range userIDs {
		ids = append(ids, id)
	}
	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	userByID := make(map[int64]domain.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	likesByPost := map[int64][]domain.Like{}
	for _, l := range likes {
		likesByPost[l.PostID] = append(likesByPost[l.PostID], l)
	}
	commentsByPost := map[int64][]CommentView{}
	for _, c := range comments {
		commentsByPost[c.PostID] = append(commentsByPost[c.PostID], CommentView{
			Comment: c,
			User:    userByID[c.UserID],
		})
	}

	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, PostView{
			Post:     p,
			Author:   userByID[p.AuthorID],
			Likes:    likesByPost[p.ID],
			Comments: commentsByPost[p.ID],
		})
	}
	return views, nil
}

func (s *PostService) attachCommentAuthors(ctx context.Context, comments []domain.Comment) ([]CommentView, error) {
	if len(comments) == 0 {
		return []CommentView{}, nil
	}
	userIDs := map[int64]struct{}{}
	for _, c := range comments {
		userIDs[c.UserID] = struct{}{}
	}
	ids := make([]int64, 0, len(userIDs))
	for id := range userIDs {
		ids = append(ids, id)
	}
	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	userByID := make(map[int64]domain.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, CommentView{Comment: c, User: userByID[c.UserID]})
	}
	return views, nil
}

func (s *PostService) publishLike(ctx context.Context, userID, postID int64, liked bool) {
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventPostLiked,
		ActorID:   userID,
		Timestamp: time.Now(),
		Payload:   events.PostLikedPayload{PostID: postID, Liked: liked},
	})
}

func (s *PostService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
