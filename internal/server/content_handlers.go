package server

import (
	"inkwell/internal/models"
	"inkwell/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// indexPath is where soft author failures redirect to.
const indexPath = "/api/posts"

// respondListing maps a listing outcome to its transport response and
// records the outcome metric for the view kind.
func (s *Server) respondListing(c *fiber.Ctx, kind string, view *models.ListingView, err error) error {
	switch {
	case err == nil:
		observability.ListingRequests.WithLabelValues(kind, "success").Inc()
		return c.JSON(view)
	case models.IsRedirectToIndex(err):
		observability.ListingRequests.WithLabelValues(kind, "redirect").Inc()
		return c.Redirect(indexPath, fiber.StatusFound)
	case models.IsNotFound(err):
		observability.ListingRequests.WithLabelValues(kind, "not_found").Inc()
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	default:
		observability.ListingRequests.WithLabelValues(kind, "error").Inc()
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}
}

// GetIndex handles GET /api/posts?page=
func (s *Server) GetIndex(c *fiber.Ctx) error {
	view, err := s.views.Index(c.Context(), c.Query("page"))
	return s.respondListing(c, "index", view, err)
}

// GetSearch handles GET /api/posts/search?search=&page=
func (s *Server) GetSearch(c *fiber.Ctx) error {
	view, err := s.views.Search(c.Context(), c.Query("search"), c.Query("page"))
	return s.respondListing(c, "search", view, err)
}

// GetByAuthor handles GET /api/posts/author/:authorId?page=
func (s *Server) GetByAuthor(c *fiber.Ctx) error {
	authorID, err := s.parseID(c, "authorId")
	if err != nil {
		return nil
	}

	view, err := s.views.ByAuthor(c.Context(), authorID, c.Query("page"))
	return s.respondListing(c, "author", view, err)
}

// GetByCategory handles GET /api/posts/category/:slug?page=
func (s *Server) GetByCategory(c *fiber.Ctx) error {
	view, err := s.views.ByCategory(c.Context(), c.Params("slug"), c.Query("page"))
	return s.respondListing(c, "category", view, err)
}

// GetByTag handles GET /api/posts/tag/:slug?page=
func (s *Server) GetByTag(c *fiber.Ctx) error {
	view, err := s.views.ByTag(c.Context(), c.Params("slug"), c.Query("page"))
	return s.respondListing(c, "tag", view, err)
}

// GetPost handles GET /api/posts/:slug
func (s *Server) GetPost(c *fiber.Ctx) error {
	view, err := s.views.PostDetail(c.Context(), c.Params("slug"))
	switch {
	case err == nil:
		observability.ListingRequests.WithLabelValues("post_detail", "success").Inc()
		return c.JSON(view)
	case models.IsNotFound(err):
		observability.ListingRequests.WithLabelValues("post_detail", "not_found").Inc()
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	default:
		observability.ListingRequests.WithLabelValues("post_detail", "error").Inc()
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}
}

// GetPage handles GET /api/pages/:slug
func (s *Server) GetPage(c *fiber.Ctx) error {
	view, err := s.views.PageDetail(c.Context(), c.Params("slug"))
	switch {
	case err == nil:
		observability.ListingRequests.WithLabelValues("page_detail", "success").Inc()
		return c.JSON(view)
	case models.IsNotFound(err):
		observability.ListingRequests.WithLabelValues("page_detail", "not_found").Inc()
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	default:
		observability.ListingRequests.WithLabelValues("page_detail", "error").Inc()
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}
}
