package repository

import (
	"context"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// TaxonomyRepository resolves categories and tags by their public slug.
// An unknown slug surfaces as gorm.ErrRecordNotFound; distinguishing that
// from "known slug with zero posts" is the caller's job.
type TaxonomyRepository interface {
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetTagBySlug(ctx context.Context, slug string) (*models.Tag, error)
}

type taxonomyRepository struct {
	db *gorm.DB
}

// NewTaxonomyRepository creates a new taxonomy repository
func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

func (r *taxonomyRepository) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *taxonomyRepository) GetTagBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}
