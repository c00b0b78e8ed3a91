package seed

import (
	"context"
	"fmt"
	"log/slog"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// Options controls how much content Run generates.
type Options struct {
	Authors    int
	Categories int
	Tags       int
	Posts      int
	Pages      int
}

// DefaultOptions returns a content volume suitable for local development.
func DefaultOptions() Options {
	return Options{
		Authors:    4,
		Categories: 5,
		Tags:       10,
		Posts:      40,
		Pages:      3,
	}
}

var categoryNames = []string{"Engineering", "Design", "Travel", "Food", "Music", "Books", "Science", "Sports"}

var tagNames = []string{"go", "postgres", "redis", "docker", "linux", "testing", "performance", "tutorial", "opinion", "release", "howto", "retro"}

var pageTitles = []string{"About", "Contact", "Privacy Policy", "Now"}

// Run populates the database with fake content. It skips seeding entirely
// when posts already exist so repeated runs stay idempotent.
func Run(db *gorm.DB, opts Options) error {
	var count int64
	if err := db.Model(&models.Post{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting posts: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping", "posts", count)
		return nil
	}

	f := NewFactory(db)

	if _, err := f.CreateSiteSetup("Inkwell"); err != nil {
		return fmt.Errorf("creating site setup: %w", err)
	}
	// The setup is cached with a TTL; drop any stale copy right away.
	cache.InvalidateSiteSetup(context.Background())

	authors := make([]*models.Author, 0, opts.Authors)
	for i := 0; i < opts.Authors; i++ {
		author, err := f.CreateAuthor()
		if err != nil {
			return fmt.Errorf("creating author: %w", err)
		}
		authors = append(authors, author)
	}

	categories := make([]*models.Category, 0, opts.Categories)
	for i := 0; i < opts.Categories && i < len(categoryNames); i++ {
		category, err := f.CreateCategory(categoryNames[i])
		if err != nil {
			return fmt.Errorf("creating category: %w", err)
		}
		categories = append(categories, category)
	}

	tags := make([]*models.Tag, 0, opts.Tags)
	for i := 0; i < opts.Tags && i < len(tagNames); i++ {
		tag, err := f.CreateTag(tagNames[i])
		if err != nil {
			return fmt.Errorf("creating tag: %w", err)
		}
		tags = append(tags, tag)
	}

	for i := 0; i < opts.Posts; i++ {
		author := authors[f.rng.Intn(len(authors))]
		overrides := []func(*models.Post){}

		if len(categories) > 0 && f.rng.Intn(10) > 0 {
			category := categories[f.rng.Intn(len(categories))]
			overrides = append(overrides, func(p *models.Post) { p.CategoryID = &category.ID })
		}
		if len(tags) > 0 {
			picked := pickTags(f, tags)
			overrides = append(overrides, func(p *models.Post) { p.Tags = picked })
		}
		// Roughly one post in eight stays a draft so listings have
		// invisible content to skip over.
		if f.rng.Intn(8) == 0 {
			overrides = append(overrides, func(p *models.Post) {
				p.IsPublished = false
				p.PublishedAt = nil
			})
		}

		if _, err := f.CreatePost(author, overrides...); err != nil {
			return fmt.Errorf("creating post: %w", err)
		}
	}

	for i := 0; i < opts.Pages && i < len(pageTitles); i++ {
		if _, err := f.CreatePage(pageTitles[i]); err != nil {
			return fmt.Errorf("creating page: %w", err)
		}
	}

	slog.Info("database seeded",
		"authors", opts.Authors,
		"posts", opts.Posts,
		"pages", opts.Pages,
	)
	return nil
}

func pickTags(f *Factory, tags []*models.Tag) []models.Tag {
	n := f.rng.Intn(4)
	picked := make([]models.Tag, 0, n)
	seen := map[uint]bool{}
	for len(picked) < n {
		t := tags[f.rng.Intn(len(tags))]
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		picked = append(picked, *t)
	}
	return picked
}
