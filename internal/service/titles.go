package service

import (
	"fmt"

	"inkwell/internal/models"
)

// Every title ends in " - "; the rendering collaborator appends the site name.

// HomeTitle is the title for the index and for searches without a term.
func HomeTitle() string {
	return "Home - "
}

// AuthorTitle derives the by-author listing title from the author's display name.
func AuthorTitle(a *models.Author) string {
	return a.DisplayName() + " posts - "
}

// CategoryTitle derives the by-category listing title.
func CategoryTitle(c *models.Category) string {
	return c.Name + " posts - "
}

// TagTitle derives the by-tag listing title.
func TagTitle(t *models.Tag) string {
	return t.Name + " posts - "
}

// SearchTitle derives the title for a search with a non-empty term.
func SearchTitle(term string) string {
	return fmt.Sprintf("Results for %q - ", term)
}

// DetailTitle derives the title for a post or page detail view.
func DetailTitle(itemTitle string) string {
	return itemTitle + " - "
}
