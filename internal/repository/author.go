package repository

import (
	"context"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// AuthorRepository defines read operations for authors.
type AuthorRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Author, error)
}

type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository creates a new author repository
func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) GetByID(ctx context.Context, id uint) (*models.Author, error) {
	var author models.Author
	if err := r.db.WithContext(ctx).First(&author, id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}
