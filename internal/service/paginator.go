// Package service contains the decision logic for public content views:
// pagination, title resolution, and the per-kind view assembly.
package service

import (
	"strconv"

	"inkwell/internal/models"
)

// PerPage is the fixed page size shared by every listing view.
const PerPage = 9

// ParsePage turns the untrusted `page` query value into a page number.
// Missing, non-numeric, zero or negative input all resolve to the first page.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate slices items into the requested page of size pageSize. It never
// fails: out-of-range page numbers clamp to the nearest valid page, and an
// empty input yields a single empty page.
func Paginate[T any](items []T, page, pageSize int) ([]T, models.Pagination) {
	if pageSize < 1 {
		pageSize = PerPage
	}

	totalItems := len(items)
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return items[start:end], models.Pagination{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
