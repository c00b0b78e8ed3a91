// Package seed provides helpers to create demo and test content for the
// application database. These helpers are intended for development and
// testing only; production content is owned by the admin system.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Slugify lowercases s and replaces whitespace with hyphens, keeping only
// URL-safe characters.
func Slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

// CreateAuthor persists a fake author account.
func (f *Factory) CreateAuthor(overrides ...func(*models.Author)) (*models.Author, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(gofakeit.Password(true, true, true, false, false, 16)), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	author := &models.Author{
		Username:  strings.ToLower(gofakeit.Username()),
		Email:     gofakeit.Email(),
		Password:  string(hashed),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
	}
	for _, o := range overrides {
		o(author)
	}

	if err := f.db.Create(author).Error; err != nil {
		return nil, err
	}
	return author, nil
}

// CreateCategory persists a category named name, deriving the slug from it.
func (f *Factory) CreateCategory(name string) (*models.Category, error) {
	category := &models.Category{Name: name, Slug: Slugify(name)}
	if err := f.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// CreateTag persists a tag named name, deriving the slug from it.
func (f *Factory) CreateTag(name string) (*models.Tag, error) {
	tag := &models.Tag{Name: name, Slug: Slugify(name)}
	if err := f.db.Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

// CreatePost persists a fake post by author. By default the post is
// published with a past publish date; use overrides for drafts and
// scheduled posts.
func (f *Factory) CreatePost(author *models.Author, overrides ...func(*models.Post)) (*models.Post, error) {
	title := strings.TrimSuffix(gofakeit.Sentence(f.rng.Intn(5)+3), ".")
	publishedAt := time.Now().UTC().Add(-time.Duration(f.rng.Intn(90*24)) * time.Hour)

	post := &models.Post{
		Title:       title,
		Slug:        fmt.Sprintf("%s-%d", Slugify(title), f.rng.Intn(100000)),
		Excerpt:     gofakeit.Sentence(12),
		Content:     gofakeit.Paragraph(3, 5, 12, "\n\n"),
		IsPublished: true,
		PublishedAt: &publishedAt,
		AuthorID:    author.ID,
	}
	for _, o := range overrides {
		o(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreatePage persists a fake standalone page.
func (f *Factory) CreatePage(title string, overrides ...func(*models.Page)) (*models.Page, error) {
	page := &models.Page{
		Title:       title,
		Slug:        Slugify(title),
		Excerpt:     gofakeit.Sentence(10),
		Content:     gofakeit.Paragraph(2, 4, 10, "\n\n"),
		IsPublished: true,
	}
	for _, o := range overrides {
		o(page)
	}

	if err := f.db.Create(page).Error; err != nil {
		return nil, err
	}
	return page, nil
}

// CreateSiteSetup persists the site settings row.
func (f *Factory) CreateSiteSetup(title string) (*models.SiteSetup, error) {
	setup := &models.SiteSetup{
		Title:           title,
		Description:     gofakeit.Sentence(8),
		FaviconURL:      "/media/favicon.ico",
		ShowHeader:      true,
		ShowSearch:      true,
		ShowMenu:        true,
		ShowDescription: true,
		ShowPagination:  true,
		ShowFooter:      true,
	}
	if err := f.db.Create(setup).Error; err != nil {
		return nil, err
	}
	return setup, nil
}
