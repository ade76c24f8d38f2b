package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Ajeet990/myfacebook/internal/api/dto"
	"github.com/Ajeet990/myfacebook/internal/auth"
	"github.com/Ajeet990/myfacebook/internal/config"
	"github.com/Ajeet990/myfacebook/internal/service"
	"github.com/Ajeet990/myfacebook/pkg/util"
)

// PostsHandler manages feed, post, like and comment endpoints.
type PostsHandler struct {
	service *service.PostService
	upload  config.UploadConfig
}

// NewPostsHandler constructs handler.
func NewPostsHandler(postService *service.PostService, upload config.UploadConfig) *PostsHandler {
	return &PostsHandler{service: postService, upload: upload}
}

// Feed handles GET /api/get-all-post and GET /api/posts/all (public).
func (h *PostsHandler) Feed(c *fiber.Ctx) error {
	views, err := h.service.Feed(c.Context())
	if err != nil {
		return err
	}
	return util.SendResponse(c, http.StatusOK, util.Envelope{
		Success: true,
		Message: "Posts fetched successfully",
		Data:    fiber.Map{"posts": postResponses(views)},
	})
}

// ListMine handles GET /api/posts.
func (h *PostsHandler) ListMine(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return util.NewUnauthorized("Unauthorized")
	}
	views, err := h.service.ListUserPosts(c.Context(), identity.ID)
	if err != nil {
		return err
	}
	return util.SendResponse(c, http.StatusOK, util.Envelope{
		Success: true,
		Message: "Posts fetched successfully",
		Data:    fiber.Map{"posts": postResponses(views)},
	})
}

// Create handles POST /api/posts (multipart: text + optional image).
func (h *PostsHandler) Create(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return util.NewUnauthorized("Unauthorized")
	}

	var text *string
	if v := strings.TrimSpace(c.FormValue("text")); v != "" {
		text = &v
	}

	var imageURL *string
	if file, err := c.FormFile("image"); err == nil && file != nil {
		name := uuid.NewString() + filepath.Ext(file.Filename)
		if err := c.SaveFile(file, filepath.Join(h.upload.Dir, name)); err != nil {
			return util.NewInternalError(err)
		}
		url := h.upload.PublicPrefix + "/" + name
		imageURL = &url
	}

	if text == nil && imageURL == nil {
		return util.NewValidationError("Text or image is required", nil)
	}

	post, err := h.service.CreatePost(c.Context(), identity.ID, text, imageURL)
	if err != nil {
		return err
	}
	return util.SendResponse(c, http.StatusCreated, util.Envelope{
		Success: true,
		Message: "Post created successfully",
		Data: fiber.Map{"post": fiber.Map{
			"id":        post.ID,
			"text":      post.Text,
			"imageUrl":  post.ImageURL,
			"createdAt": post.CreatedAt,
		}},
	})
}

// ToggleLike handles POST /api/posts/like. The acting user comes from
// the injected identity, never from the request body.
func (h *PostsHandler) ToggleLike(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return util.NewUnauthorized("Unauthorized")
	}

	var req dto.LikeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.PostID <= 0 {
		return util.NewValidationError("postId must be a positive integer", nil)
	}

	liked, like, err := h.service.ToggleLike(c.Context(), identity.ID, req.PostID)
	if err != nil {
		return err
	}

	if liked {
		return util.SendResponse(c, http.StatusCreated, util.Envelope{
			Success: true,
			Message: "Post liked successfully",
			Data: fiber.Map{
				"liked": true,
				"like":  dto.LikeResponse{ID: like.ID, UserID: like.UserID},
			},
		})
	}
	return util.SendResponse(c, http.StatusOK, util.Envelope{
		Success: true,
		Message: "Post unliked successfully",
		Data:    fiber.Map{"liked": false},
	})
}

// ListComments handles GET /api/posts/:postId/comment.
func (h *PostsHandler) ListComments(c *fiber.Ctx) error {
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}
	views, err := h.service.ListComments(c.Context(), postID)
	if err != nil {
		return err
	}
	return util.SendResponse(c, http.StatusOK, util.Envelope{
		Success: true,
		Message: "Comments fetched successfully",
		Data:    fiber.Map{"comments": commentResponses(views)},
	})
}

// AddComment handles POST /api/posts/:postId/comment.
func (h *PostsHandler) AddComment(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return util.NewUnauthorized("Unauthorized")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	text := strings.TrimSpace(req.Text)
	if len(text) < 2 {
		return util.NewValidationError("Comment must be at least 2 characters", nil)
	}
	if len(text) > 500 {
		return util.NewValidationError("Comment cannot exceed 500 characters", nil)
	}

	view, err := h.service.AddComment(c.Context(), identity.ID, postID, text)
	if err != nil {
		return err
	}
	return util.SendResponse(c, http.StatusCreated, util.Envelope{
		Success: true,
		Message: "Comment added successfully",
		Data:    fiber.Map{"comment": commentResponse(*view)},
	})
}

func parsePostID(c *fiber.Ctx) (int64, error) {
	postID, err := strconv.ParseInt(c.Params("postId"), 10, 64)
	if err != nil || postID <= 0 {
		return 0, util.NewValidationError("postId must be a positive integer", nil)
	}
	return postID, nil
}

func postResponses(views []service.PostView) []dto.PostResponse {
	out := make([]dto.PostResponse, 0, len(views))
	for _, v := range views {
		likes := make([]dto.LikeResponse, 0, len(v.Likes))
		for _, l := range v.Likes {
			likes = append(likes, dto.LikeResponse{ID: l.ID, UserID: l.UserID})
		}
		out = append(out, dto.PostResponse{
			ID:        v.Post.ID,
			Text:      v.Post.Text,
			ImageURL:  v.Post.ImageURL,
			Author:    dto.PostAuthor{ID: v.Author.ID, Name: v.Author.Name},
			Likes:     likes,
			Comments:  commentResponses(v.Comments),
			CreatedAt: v.Post.CreatedAt,
		})
	}
	return out
}

func commentResponses(views []service.CommentView) []dto.CommentResponse {
	out := make([]dto.CommentResponse, 0, len(views))
	for _, v := range views {
		out = append(out, commentResponse(v))
	}
	return out
}

func commentResponse(v service.CommentView) dto.CommentResponse {
	return dto.CommentResponse{
		ID:        v.Comment.ID,
		Text:      v.Comment.Text,
		User:      dto.PostAuthor{ID: v.User.ID, Name: v.User.Name},
		CreatedAt: v.Comment.CreatedAt,
	}
}
