package auth

import "strings"

// Class is the protection level a route prefix requires.
type Class int

const (
	ClassPublic Class = iota
	ClassProtectedUser
	ClassProtectedAdmin
)

type rule struct {
	prefix string
	class  Class
}

// Classifier maps request paths to a protection class via
// longest-prefix match over a fixed ordered table. Paths outside the
// table are public.
type Classifier struct {
	rules []rule
}

// NewClassifier builds the default route classification table.
func NewClassifier() *Classifier {
	return &Classifier{rules: []rule{
		{"/api/auth", ClassPublic},
		{"/api/register", ClassPublic},
		{"/api/get-all-post", ClassPublic},
		{"/api/posts/all", ClassPublic},
		{"/api/public", ClassPublic},
		{"/admin", ClassProtectedAdmin},
		{"/profile", ClassProtectedUser},
		{"/api", ClassProtectedUser},
	}}
}

// Classify returns the protection class for a path. The longest
// matching prefix wins, so /api/posts/all stays public while /api/posts
// requires a user.
func (cl *Classifier) Classify(path string) Class {
	best := -1
	class := ClassPublic
	for _, r := range cl.rules {
		if strings.HasPrefix(path, r.prefix) && len(r.prefix) > best {
			best = len(r.prefix)
			class = r.class
		}
	}
	return class
}

// IsAPIPath reports whether rejections for the path should be rendered
// as structured JSON rather than a browser redirect.
func IsAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api")
}
