package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// User roles. The admin privilege is an explicit attribute of the account,
// not a property of its position in the store.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User represents a registered account.
type User struct {
	ID           int       `validate:"gte=0"`
	Name         string    `validate:"required,min=2,max=100"`
	Email        string    `validate:"required,email"`
	PasswordHash string    `validate:"required"`
	Role         string    `validate:"required,oneof=admin member"`
	CreatedAt    time.Time `validate:"required"`
}

// Post represents a blog post with comments.
type Post struct {
	ID        int        `validate:"gte=0"`
	Title     string     `validate:"required,min=3,max=250"`
	Subtitle  string     `validate:"required,max=250"`
	Date      string     `validate:"required"`
	Body      string     `validate:"required,min=10"`
	ImgURL    string     `validate:"required,url"`
	AuthorID  int        `validate:"required,gt=0"`
	CreatedAt time.Time  `validate:"required"`
	Author    *User      `json:"-" validate:"-"`
	Comments  []*Comment `json:"-" validate:"-"`
}

// Comment represents a comment on a blog post. Comments are immutable once
// created.
type Comment struct {
	ID        int       `validate:"gte=0"`
	Text      string    `validate:"required,min=1,max=2000"`
	AuthorID  int       `validate:"required,gt=0"`
	PostID    int       `validate:"required,gt=0"`
	CreatedAt time.Time `validate:"required"`
	Author    *User     `json:"-" validate:"-"`
}
