package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventPostCreated    EventType = "post_created"
	EventPostLiked      EventType = "post_liked"
	EventCommentAdded   EventType = "comment_added"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   int64       `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// PostCreatedPayload payload.
type PostCreatedPayload struct {
	PostID   int64 `json:"post_id"`
	HasImage bool  `json:"has_image"`
}

// PostLikedPayload payload.
type PostLikedPayload struct {
	PostID int64 `json:"post_id"`
	Liked  bool  `json:"liked"`
}

// CommentAddedPayload payload.
type CommentAddedPayload struct {
	PostID    int64 `json:"post_id"`
	CommentID int64 `json:"comment_id"`
}
