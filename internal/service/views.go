package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"inkwell/internal/cache"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"

	"gorm.io/gorm"
)

// ViewService orchestrates the public content views. Each view kind runs the
// same single pass: resolve the selector, query, paginate, resolve the title,
// assemble the payload. There is no shared state between requests; the only
// shared resource is the read-only store behind the repositories.
type ViewService struct {
	posts    repository.PostRepository
	pages    repository.PageRepository
	authors  repository.AuthorRepository
	taxonomy repository.TaxonomyRepository
	site     repository.SiteSetupRepository
}

// NewViewService creates a ViewService wired to the given repositories.
func NewViewService(
	posts repository.PostRepository,
	pages repository.PageRepository,
	authors repository.AuthorRepository,
	taxonomy repository.TaxonomyRepository,
	site repository.SiteSetupRepository,
) *ViewService {
	return &ViewService{
		posts:    posts,
		pages:    pages,
		authors:  authors,
		taxonomy: taxonomy,
		site:     site,
	}
}

// siteSetup fetches the current site settings best-effort: a failing lookup
// must not take down a content view.
func (s *ViewService) siteSetup(ctx context.Context) *models.SiteSetup {
	if s.site == nil {
		return nil
	}
	setup, err := s.site.Latest(ctx)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "site setup lookup failed", slog.String("error", err.Error()))
		return nil
	}
	return setup
}

// buildListing paginates the already-filtered, already-ordered posts and
// assembles the common listing payload.
func (s *ViewService) buildListing(ctx context.Context, posts []*models.Post, rawPage, title string) *models.ListingView {
	pagePosts, pagination := Paginate(posts, ParsePage(rawPage), PerPage)
	if pagePosts == nil {
		pagePosts = []*models.Post{}
	}
	return &models.ListingView{
		Posts:      pagePosts,
		Pagination: pagination,
		PageTitle:  title,
		Site:       s.siteSetup(ctx),
	}
}

// Index returns the unfiltered listing of visible posts. The assembled page
// is cached briefly per page number; filtered listings change too often per
// selector to be worth caching.
func (s *ViewService) Index(ctx context.Context, rawPage string) (*models.ListingView, error) {
	page := ParsePage(rawPage)

	// A cache failure is a miss, never a request failure.
	var view models.ListingView
	if found, err := cache.Lookup(ctx, cache.IndexListingKey(page), &view); err == nil && found {
		return &view, nil
	}

	posts, err := s.posts.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	view = *s.buildListing(ctx, posts, rawPage, HomeTitle())

	// Store under the clamped page so out-of-range page numbers cannot grow
	// the key space past the real pages.
	_ = cache.SetJSON(ctx, cache.IndexListingKey(view.Pagination.CurrentPage), &view, cache.ListingTTL)
	return &view, nil
}

// ByAuthor returns the listing of visible posts by the given author. An
// unknown author is a soft failure: the caller redirects to the index
// instead of rendering an error page. An existing author with zero posts is
// a valid empty listing.
func (s *ViewService) ByAuthor(ctx context.Context, authorID uint, rawPage string) (*models.ListingView, error) {
	author, err := s.authors.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewRedirectToIndex("author", authorID)
		}
		return nil, err
	}

	posts, err := s.posts.ListByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	view := s.buildListing(ctx, posts, rawPage, AuthorTitle(author))
	view.Author = author
	return view, nil
}

// ByCategory returns the listing of visible posts in the category with the
// given slug. An unknown slug is NotFound; a known category with zero posts
// is a valid empty listing.
func (s *ViewService) ByCategory(ctx context.Context, slug, rawPage string) (*models.ListingView, error) {
	category, err := s.taxonomy.GetCategoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("category", slug)
		}
		return nil, err
	}

	posts, err := s.posts.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	view := s.buildListing(ctx, posts, rawPage, CategoryTitle(category))
	view.Category = category
	return view, nil
}

// ByTag returns the listing of visible posts carrying the tag with the given
// slug, with the same empty-vs-NotFound distinction as ByCategory.
func (s *ViewService) ByTag(ctx context.Context, slug, rawPage string) (*models.ListingView, error) {
	tag, err := s.taxonomy.GetTagBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("tag", slug)
		}
		return nil, err
	}

	posts, err := s.posts.ListByTag(ctx, tag.ID)
	if err != nil {
		return nil, err
	}

	view := s.buildListing(ctx, posts, rawPage, TagTitle(tag))
	view.Tag = tag
	return view, nil
}

// Search returns the listing of visible posts matching term in title,
// excerpt or content. An empty or whitespace-only term falls back to the
// full visible listing, not an empty result.
func (s *ViewService) Search(ctx context.Context, term, rawPage string) (*models.ListingView, error) {
	term = strings.TrimSpace(term)

	var (
		posts []*models.Post
		err   error
		title string
	)
	if term == "" {
		posts, err = s.posts.ListPublished(ctx)
		title = HomeTitle()
	} else {
		posts, err = s.posts.Search(ctx, term)
		title = SearchTitle(term)
	}
	if err != nil {
		return nil, err
	}

	view := s.buildListing(ctx, posts, rawPage, title)
	view.SearchValue = term
	return view, nil
}

// PostDetail returns the single visible post with the given slug.
func (s *ViewService) PostDetail(ctx context.Context, slug string) (*models.PostView, error) {
	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("post", slug)
		}
		return nil, err
	}

	return &models.PostView{
		Post:      post,
		PageTitle: DetailTitle(post.Title),
		Site:      s.siteSetup(ctx),
	}, nil
}

// PageDetail returns the single visible page with the given slug.
func (s *ViewService) PageDetail(ctx context.Context, slug string) (*models.PageView, error) {
	page, err := s.pages.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("page", slug)
		}
		return nil, err
	}

	return &models.PageView{
		Page:      page,
		PageTitle: DetailTitle(page.Title),
		Site:      s.siteSetup(ctx),
	}, nil
}
