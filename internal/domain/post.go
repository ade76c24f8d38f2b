package domain

import "time"

// Post is a feed entry authored by a user. Either Text or ImageURL
// must be present.
type Post struct {
	ID        int64
	AuthorID  int64
	Text      *string
	ImageURL  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Like marks that a user liked a post. At most one per (user, post).
type Like struct {
	ID        int64
	PostID    int64
	UserID    int64
	CreatedAt time.Time
}

// Comment is a user remark attached to a post.
type Comment struct {
	ID        int64
	PostID    int64
	UserID    int64
	Text      string
	CreatedAt time.Time
}
