package dto

import "time"

// PostAuthor is the reduced author view embedded in feed entries.
type PostAuthor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LikeResponse is the reduced like view embedded in feed entries.
type LikeResponse struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`
}

// CommentResponse is a comment with its author.
type CommentResponse struct {
	ID        int64      `json:"id"`
	Text      string     `json:"text"`
	User      PostAuthor `json:"user"`
	CreatedAt time.Time  `json:"createdAt"`
}

// PostResponse is a feed entry.
type PostResponse struct {
	ID        int64             `json:"id"`
	Text      *string           `json:"text"`
	ImageURL  *string           `json:"imageUrl"`
	Author    PostAuthor        `json:"author"`
	Likes     []LikeResponse    `json:"likes"`
	Comments  []CommentResponse `json:"comments"`
	CreatedAt time.Time         `json:"createdAt"`
}

// LikeRequest payload for the like toggle.
type LikeRequest struct {
	PostID int64 `json:"postId"`
}

// CommentRequest payload for adding a comment.
type CommentRequest struct {
	Text string `json:"text"`
}
