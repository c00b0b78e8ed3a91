// Package repository provides read-only data access for published content.
// Every query goes through the visibility scope: content edited or scheduled
// by the admin system stays invisible here until it is published.
package repository

import (
	"context"
	"strings"
	"time"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the read operations for public post listings and
// detail lookups. Listing reads return the complete visible sequence ordered
// newest-first by id; pagination happens in the service layer.
type PostRepository interface {
	ListPublished(ctx context.Context) ([]*models.Post, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]*models.Post, error)
	ListByTag(ctx context.Context, tagID uint) ([]*models.Post, error)
	Search(ctx context.Context, term string) ([]*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// visiblePosts is the visibility scope: published flag set and, when a
// publish date exists, not scheduled for the future. No read bypasses it.
func visiblePosts(db *gorm.DB) *gorm.DB {
	return db.
		Where("posts.is_published = ?", true).
		Where("posts.published_at IS NULL OR posts.published_at <= ?", time.Now().UTC())
}

func (r *postRepository) listQuery(ctx context.Context) *gorm.DB {
	return visiblePosts(r.db.WithContext(ctx).Model(&models.Post{})).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Order("posts.id DESC")
}

func (r *postRepository) ListPublished(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.listQuery(ctx).Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.listQuery(ctx).
		Where("posts.author_id = ?", authorID).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByCategory(ctx context.Context, categoryID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.listQuery(ctx).
		Where("posts.category_id = ?", categoryID).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByTag(ctx context.Context, tagID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.listQuery(ctx).
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id = ?", tagID).
		Find(&posts).Error
	return posts, err
}

// likeEscaper neutralizes LIKE metacharacters so a search term always
// matches as a literal substring, never as a pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search matches term case-insensitively against title, excerpt and content.
// LOWER/LIKE instead of ILIKE keeps the query portable across Postgres and
// the sqlite test driver.
func (r *postRepository) Search(ctx context.Context, term string) ([]*models.Post, error) {
	like := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	var posts []*models.Post
	err := r.listQuery(ctx).
		Where(`LOWER(posts.title) LIKE ? ESCAPE '\' OR LOWER(posts.excerpt) LIKE ? ESCAPE '\' OR LOWER(posts.content) LIKE ? ESCAPE '\'`,
			like, like, like).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	err := visiblePosts(r.db.WithContext(ctx).Model(&models.Post{})).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Where("posts.slug = ?", slug).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}
