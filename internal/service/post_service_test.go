package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ajeet990/myfacebook/internal/domain"
	"github.com/Ajeet990/myfacebook/internal/events"
	"github.com/Ajeet990/myfacebook/pkg/util"
)

func newPostFixture() (*PostService, *fakeUserRepo, *fakePostRepo, *recordingDispatcher) {
	users := &fakeUserRepo{users: []domain.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser},
		{ID: 2, Name: "Bob", Email: "bob@example.com", Role: domain.RoleUser},
	}, nextID: 2}
	posts := &fakePostRepo{}
	svc := NewPostService(PostDependencies{
		PostRepo:    posts,
		LikeRepo:    &fakeLikeRepo{},
		CommentRepo: &fakeCommentRepo{},
		UserRepo:    users,
		Dispatcher:  &recordingDispatcher{},
	})
	return svc, users, posts, svc.dispatcher.(*recordingDispatcher)
}

func strptr(s string) *string { return &s }

func TestCreatePostPublishesEvent(t *testing.T) {
	svc, _, _, dispatcher := newPostFixture()

	post, err := svc.CreatePost(context.Background(), 1, strptr("hello"), nil)
	require.NoError(t, err)
	assert.NotZero(t, post.ID)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventPostCreated, dispatcher.published[0].Type)
}

func TestToggleLikeLikesThenUnlikes(t *testing.T) {
	svc, _, _, _ := newPostFixture()

	post, err := svc.CreatePost(context.Background(), 1, strptr("hello"), nil)
	require.NoError(t, err)

	liked, like, err := svc.ToggleLike(context.Background(), 2, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)
	require.NotNil(t, like)
	assert.Equal(t, int64(2), like.UserID)

	liked, like, err = svc.ToggleLike(context.Background(), 2, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Nil(t, like)
}

func TestToggleLikeUnknownPost(t *testing.T) {
	svc, _, _, _ := newPostFixture()

	_, _, err := svc.ToggleLike(context.Background(), 1, 999)
	require.Error(t, err)
	assert.Equal(t, 404, util.ToDomainError(err).HTTPStatus)
}

func TestCommentsCarryAuthors(t *testing.T) {
	svc, _, _, _ := newPostFixture()

	post, err := svc.CreatePost(context.Background(), 1, strptr("hello"), nil)
	require.NoError(t, err)

	view, err := svc.AddComment(context.Background(), 2, post.ID, "nice one")
	require.NoError(t, err)
	assert.Equal(t, "Bob", view.User.Name)

	comments, err := svc.ListComments(context.Background(), post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "nice one", comments[0].Comment.Text)
	assert.Equal(t, "Bob", comments[0].User.Name)
}

func TestFeedAssemblesAuthorsLikesComments(t *testing.T) {
	svc, _, _, _ := newPostFixture()

	post, err := svc.CreatePost(context.Background(), 1, strptr("hello"), nil)
	require.NoError(t, err)
	_, _, err = svc.ToggleLike(context.Background(), 2, post.ID)
	require.NoError(t, err)
	_, err = svc.AddComment(context.Background(), 2, post.ID, "nice one")
	require.NoError(t, err)

	views, err := svc.Feed(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, "Alice", view.Author.Name)
	require.Len(t, view.Likes, 1)
	assert.Equal(t, int64(2), view.Likes[0].UserID)
	require.Len(t, view.Comments, 1)
	assert.Equal(t, "Bob", view.Comments[0].User.Name)
}

func TestAdminListUsersPagination(t *testing.T) {
	users := &fakeUserRepo{users: []domain.User{
		{ID: 1, Name: "Alice", Role: domain.RoleUser},
		{ID: 2, Name: "Bob", Role: domain.RoleUser},
		{ID: 3, Name: "Root", Role: domain.RoleAdmin},
	}, nextID: 3}
	posts := &fakePostRepo{}
	svc := NewAdminService(users, posts, &fakeCommentRepo{}, &fakeLikeRepo{})

	page, pagination, err := svc.ListUsers(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, int64(2), pagination.TotalUsers)
	assert.Equal(t, int64(2), pagination.TotalPages)
	assert.Equal(t, 1, pagination.CurrentPage)

	// Admin accounts never appear in the list.
	for _, u := range page {
		assert.NotEqual(t, domain.RoleAdmin, u.User.Role)
	}
}
