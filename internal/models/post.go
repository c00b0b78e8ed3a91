package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a dated blog entry. Visibility for public reads requires
// IsPublished plus, when PublishedAt is set, a publish date that is not in
// the future; the repository layer enforces this on every query.
type Post struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Title         string         `gorm:"size:200;not null" json:"title"`
	Slug          string         `gorm:"size:220;not null;uniqueIndex" json:"slug"`
	Excerpt       string         `gorm:"size:300" json:"excerpt"`
	Content       string         `gorm:"type:text;not null" json:"content"`
	CoverImageURL string         `json:"cover_image_url"`
	IsPublished   bool           `gorm:"not null;default:false;index" json:"is_published"`
	PublishedAt   *time.Time     `gorm:"index" json:"published_at"`
	AuthorID      uint           `gorm:"not null;index" json:"author_id"`
	Author        Author         `gorm:"foreignKey:AuthorID" json:"author"`
	CategoryID    *uint          `gorm:"index" json:"category_id"`
	Category      *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags          []Tag          `gorm:"many2many:post_tags" json:"tags"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
