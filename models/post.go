package models

import (
	"time"

	"gorm.io/gorm"
)

// Post carries the author's username alongside the author reference so
// list reads never join users. The name goes stale if the author renames
// themselves; that trade is accepted.
type Post struct {
	ID         uint           `json:"id" gorm:"primarykey"`
	Title      string         `json:"title" gorm:"not null"`
	Content    string         `json:"content" gorm:"type:text;not null"`
	Image      string         `json:"image,omitempty"`
	AuthorID   uint           `json:"author_id" gorm:"not null;index"`
	AuthorName string         `json:"author_name" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
