package models

// Pagination is the derived page metadata accompanying a listing.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// ListingView is the assembled payload for every list-style view. The
// rendering collaborator appends the site name to PageTitle, which always
// ends in " - ". Exactly one of Author, Category, Tag is set for filtered
// listings; none for the index and search.
type ListingView struct {
	Posts       []*Post    `json:"posts"`
	Pagination  Pagination `json:"pagination"`
	PageTitle   string     `json:"page_title"`
	SearchValue string     `json:"search_value,omitempty"`
	Author      *Author    `json:"author,omitempty"`
	Category    *Category  `json:"category,omitempty"`
	Tag         *Tag       `json:"tag,omitempty"`
	Site        *SiteSetup `json:"site,omitempty"`
}

// PostView is the payload for a single post detail view.
type PostView struct {
	Post      *Post      `json:"post"`
	PageTitle string     `json:"page_title"`
	Site      *SiteSetup `json:"site,omitempty"`
}

// PageView is the payload for a single page detail view.
type PageView struct {
	Page      *Page      `json:"page"`
	PageTitle string     `json:"page_title"`
	Site      *SiteSetup `json:"site,omitempty"`
}
