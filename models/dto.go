package models

import "time"

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreatePostRequest binds the multipart form (or JSON body) of a new
// post. Image holds the stored-file reference and is filled in by the
// handler once the upload has been persisted, never by the client.
type CreatePostRequest struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
	Image   string `json:"-" form:"-"`
}

// UpdatePostRequest follows empty-means-unchanged semantics: a field
// left empty keeps its stored value.
type UpdatePostRequest struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
	Image   string `json:"-" form:"-"`
}

type CreateCommentRequest struct {
	PostID  uint   `json:"post_id"`
	Content string `json:"content"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// PostResponse is the list item shape. AuthorID is omitted for anonymous
// consumers, which only get the denormalized author name.
type PostResponse struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Image      string    `json:"image,omitempty"`
	AuthorID   *uint     `json:"author_id,omitempty"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
