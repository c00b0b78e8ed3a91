package models

import (
	"time"

	"gorm.io/gorm"
)

// Page is standalone, undated content (about, contact, and the like).
// Unlike posts, pages have no scheduled-publishing gate: IsPublished alone
// decides public visibility.
type Page struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Slug        string         `gorm:"size:220;not null;uniqueIndex" json:"slug"`
	Excerpt     string         `gorm:"size:300" json:"excerpt"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	IsPublished bool           `gorm:"not null;default:false;index" json:"is_published"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
