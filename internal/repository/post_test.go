package repository

import (
	"context"
	"testing"
	"time"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Author{},
		&models.Category{},
		&models.Tag{},
		&models.Post{},
		&models.Page{},
		&models.SiteSetup{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func createAuthor(t *testing.T, db *gorm.DB, username string) *models.Author {
	t.Helper()
	author := &models.Author{Username: username, Email: username + "@example.com"}
	require.NoError(t, db.Create(author).Error)
	return author
}

func pastTime(hours int) *time.Time {
	ts := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	return &ts
}

func futureTime(hours int) *time.Time {
	ts := time.Now().UTC().Add(time.Duration(hours) * time.Hour)
	return &ts
}

func createPost(t *testing.T, db *gorm.DB, post *models.Post) *models.Post {
	t.Helper()
	if post.Excerpt == "" {
		post.Excerpt = "excerpt"
	}
	if post.Content == "" {
		post.Content = "content"
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestPostRepository_ListPublished(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createAuthor(t, db, "alice")

	createPost(t, db, &models.Post{Title: "Oldest", Slug: "oldest", IsPublished: true, PublishedAt: pastTime(72), AuthorID: author.ID})
	createPost(t, db, &models.Post{Title: "Draft", Slug: "draft", IsPublished: false, AuthorID: author.ID})
	createPost(t, db, &models.Post{Title: "Scheduled", Slug: "scheduled", IsPublished: true, PublishedAt: futureTime(24), AuthorID: author.ID})
	createPost(t, db, &models.Post{Title: "No Date", Slug: "no-date", IsPublished: true, AuthorID: author.ID})
	createPost(t, db, &models.Post{Title: "Newest", Slug: "newest", IsPublished: true, PublishedAt: pastTime(1), AuthorID: author.ID})

	posts, err := repo.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)

	// Newest id first; drafts and future-dated posts never appear.
	assert.Equal(t, "Newest", posts[0].Title)
	assert.Equal(t, "No Date", posts[1].Title)
	assert.Equal(t, "Oldest", posts[2].Title)

	// Preloads hydrate the author relation.
	assert.Equal(t, "alice", posts[0].Author.Username)
}

func TestPostRepository_ListByAuthor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createAuthor(t, db, "alice")
	bob := createAuthor(t, db, "bob")

	createPost(t, db, &models.Post{Title: "By Alice", Slug: "by-alice", IsPublished: true, PublishedAt: pastTime(2), AuthorID: alice.ID})
	createPost(t, db, &models.Post{Title: "By Bob", Slug: "by-bob", IsPublished: true, PublishedAt: pastTime(2), AuthorID: bob.ID})
	createPost(t, db, &models.Post{Title: "Alice Draft", Slug: "alice-draft", IsPublished: false, AuthorID: alice.ID})

	posts, err := repo.ListByAuthor(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "By Alice", posts[0].Title)

	// An id with no posts at all yields an empty result, not an error.
	posts, err = repo.ListByAuthor(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostRepository_ListByCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createAuthor(t, db, "alice")
	tech := &models.Category{Name: "Tech", Slug: "tech"}
	food := &models.Category{Name: "Food", Slug: "food"}
	require.NoError(t, db.Create(tech).Error)
	require.NoError(t, db.Create(food).Error)

	createPost(t, db, &models.Post{Title: "Tech Post", Slug: "tech-post", IsPublished: true, PublishedAt: pastTime(2), AuthorID: author.ID, CategoryID: &tech.ID})
	createPost(t, db, &models.Post{Title: "Food Post", Slug: "food-post", IsPublished: true, PublishedAt: pastTime(2), AuthorID: author.ID, CategoryID: &food.ID})
	createPost(t, db, &models.Post{Title: "Uncategorized", Slug: "uncategorized", IsPublished: true, PublishedAt: pastTime(2), AuthorID: author.ID})

	posts, err := repo.ListByCategory(ctx, tech.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Tech Post", posts[0].Title)
	assert.Equal(t, "Tech", posts[0].Category.Name)
}

func TestPostRepository_ListByTag(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createAuthor(t, db, "alice")
	golang := &models.Tag{Name: "go", Slug: "go"}
	linux := &models.Tag{Name: "linux", Slug: "linux"}
	require.NoError(t, db.Create(golang).Error)
	require.NoError(t, db.Create(linux).Error)

	createPost(t, db, &models.Post{Title: "Both Tags", Slug: "both-tags", IsPublished: true, PublishedAt: pastTime(3), AuthorID: author.ID, Tags: []models.Tag{*golang, *linux}})
	createPost(t, db, &models.Post{Title: "Only Linux", Slug: "only-linux", IsPublished: true, PublishedAt: pastTime(2), AuthorID: author.ID, Tags: []models.Tag{*linux}})
	createPost(t, db, &models.Post{Title: "Tagged Draft", Slug: "tagged-draft", IsPublished: false, AuthorID: author.ID, Tags: []models.Tag{*golang}})

	posts, err := repo.ListByTag(ctx, linux.ID)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Only Linux", posts[0].Title)
	assert.Equal(t, "Both Tags", posts[1].Title)

	posts, err = repo.ListByTag(ctx, golang.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Both Tags", posts[0].Title)
}

func TestPostRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createAuthor(t, db, "alice")

	createPost(t, db, &models.Post{Title: "Brewing Coffee", Slug: "brewing-coffee", IsPublished: true, PublishedAt: pastTime(5), AuthorID: author.ID})
	createPost(t, db, &models.Post{Title: "Morning Routine", Slug: "morning-routine", Excerpt: "A cup of COFFEE to start", IsPublished: true, PublishedAt: pastTime(4), AuthorID: author.ID})
	createPost(t, db, &models.Post{Title: "Tea Time", Slug: "tea-time", Content: "Mostly about coffee, actually", IsPublished: true, PublishedAt: pastTime(3), AuthorID: author.ID})
	createPost(t, db, &models.Post{Title: "Gardening", Slug: "gardening", IsPublished: true, PublishedAt: pastTime(2), AuthorID: author.ID})
	createPost(t, db, &models.Post{Title: "Paris Notes", Slug: "paris-notes", Excerpt: "Café reviews from the 5th", IsPublished: true, PublishedAt: pastTime(1), AuthorID: author.ID})
	createPost(t, db, &models.Post{Title: "Secret Coffee Draft", Slug: "secret-coffee", IsPublished: false, AuthorID: author.ID})

	tests := []struct {
		name     string
		term     string
		expected []string
	}{
		{
			name:     "matches title excerpt and content, newest first",
			term:     "coffee",
			expected: []string{"Tea Time", "Morning Routine", "Brewing Coffee"},
		},
		{
			name:     "case insensitive",
			term:     "COFFEE",
			expected: []string{"Tea Time", "Morning Routine", "Brewing Coffee"},
		},
		{
			name:     "no matches",
			term:     "astronomy",
			expected: []string{},
		},
		{
			name:     "accented term matches mixed case",
			term:     "café",
			expected: []string{"Paris Notes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts, err := repo.Search(ctx, tt.term)
			require.NoError(t, err)
			titles := make([]string, 0, len(posts))
			for _, p := range posts {
				titles = append(titles, p.Title)
			}
			assert.Equal(t, tt.expected, titles)
		})
	}
}

func TestPostRepository_Search_LiteralMetacharacters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createAuthor(t, db, "alice")

	createPost(t, db, &models.Post{Title: "Plain Post", Slug: "plain-post", IsPublished: true, PublishedAt: pastTime(3), AuthorID: author.ID})
	createPost(t, db, &models.Post{Title: "Big Sale", Slug: "big-sale", Excerpt: "Discount 100% off", IsPublished: true, PublishedAt: pastTime(2), AuthorID: author.ID})
	createPost(t, db, &models.Post{Title: "Snake Case", Slug: "snake-case", Content: "the c_t convention", IsPublished: true, PublishedAt: pastTime(1), AuthorID: author.ID})

	tests := []struct {
		name     string
		term     string
		expected []string
	}{
		{
			name:     "percent matches only a literal percent",
			term:     "%",
			expected: []string{"Big Sale"},
		},
		{
			name:     "term containing percent",
			term:     "100%",
			expected: []string{"Big Sale"},
		},
		{
			name:     "underscore does not match arbitrary characters",
			term:     "c_t",
			expected: []string{"Snake Case"},
		},
		{
			name:     "lone underscore",
			term:     "_",
			expected: []string{"Snake Case"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts, err := repo.Search(ctx, tt.term)
			require.NoError(t, err)
			titles := make([]string, 0, len(posts))
			for _, p := range posts {
				titles = append(titles, p.Title)
			}
			assert.Equal(t, tt.expected, titles)
		})
	}
}

func TestPostRepository_GetBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createAuthor(t, db, "alice")
	golang := &models.Tag{Name: "go", Slug: "go"}
	require.NoError(t, db.Create(golang).Error)

	createPost(t, db, &models.Post{Title: "Hello World", Slug: "hello-world", IsPublished: true, PublishedAt: pastTime(2), AuthorID: author.ID, Tags: []models.Tag{*golang}})
	createPost(t, db, &models.Post{Title: "Hidden", Slug: "hidden", IsPublished: false, AuthorID: author.ID})
	createPost(t, db, &models.Post{Title: "Not Yet", Slug: "not-yet", IsPublished: true, PublishedAt: futureTime(48), AuthorID: author.ID})

	t.Run("visible post", func(t *testing.T) {
		post, err := repo.GetBySlug(ctx, "hello-world")
		require.NoError(t, err)
		assert.Equal(t, "Hello World", post.Title)
		assert.Equal(t, "alice", post.Author.Username)
		require.Len(t, post.Tags, 1)
		assert.Equal(t, "go", post.Tags[0].Slug)
	})

	t.Run("draft is invisible", func(t *testing.T) {
		_, err := repo.GetBySlug(ctx, "hidden")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("future-dated is invisible", func(t *testing.T) {
		_, err := repo.GetBySlug(ctx, "not-yet")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, err := repo.GetBySlug(ctx, "nope")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
