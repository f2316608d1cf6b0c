package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment references its post by ID only. Existence of the post is
// checked at creation time, not enforced by the store.
type Comment struct {
	ID         uint           `json:"id" gorm:"primarykey"`
	Content    string         `json:"content" gorm:"type:text;not null"`
	PostID     uint           `json:"post_id" gorm:"not null;index"`
	AuthorID   uint           `json:"author_id" gorm:"not null;index"`
	AuthorName string         `json:"author_name" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
