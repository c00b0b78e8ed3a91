package repository

import (
	"context"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// PageRepository defines read operations for standalone pages.
type PageRepository interface {
	GetBySlug(ctx context.Context, slug string) (*models.Page, error)
}

type pageRepository struct {
	db *gorm.DB
}

// NewPageRepository creates a new page repository
func NewPageRepository(db *gorm.DB) PageRepository {
	return &pageRepository{db: db}
}

func (r *pageRepository) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	var page models.Page
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Where("slug = ?", slug).
		First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}
