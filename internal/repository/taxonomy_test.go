package repository

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTaxonomyRepository_GetCategoryBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaxonomyRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Category{Name: "Tech", Slug: "tech"}).Error)

	category, err := repo.GetCategoryBySlug(ctx, "tech")
	require.NoError(t, err)
	assert.Equal(t, "Tech", category.Name)

	_, err = repo.GetCategoryBySlug(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTaxonomyRepository_GetTagBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaxonomyRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Tag{Name: "go", Slug: "go"}).Error)

	tag, err := repo.GetTagBySlug(ctx, "go")
	require.NoError(t, err)
	assert.Equal(t, "go", tag.Name)

	_, err = repo.GetTagBySlug(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
