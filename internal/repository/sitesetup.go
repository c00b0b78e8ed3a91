package repository

import (
	"context"
	"errors"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// SiteSetupRepository reads the site-wide presentation settings. The newest
// row wins; a missing row is not an error, the site simply has no setup yet.
type SiteSetupRepository interface {
	Latest(ctx context.Context) (*models.SiteSetup, error)
}

type siteSetupRepository struct {
	db *gorm.DB
}

// NewSiteSetupRepository creates a new site setup repository
func NewSiteSetupRepository(db *gorm.DB) SiteSetupRepository {
	return &siteSetupRepository{db: db}
}

func (r *siteSetupRepository) Latest(ctx context.Context) (*models.SiteSetup, error) {
	var setup models.SiteSetup
	err := cache.Aside(ctx, cache.SiteSetupKey, &setup, cache.SiteSetupTTL, func() error {
		return r.db.WithContext(ctx).Order("id DESC").First(&setup).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setup, nil
}
