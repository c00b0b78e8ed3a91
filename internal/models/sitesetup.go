package models

import "time"

// SiteSetup holds the site-wide presentation settings maintained by the
// admin collaborator. The newest row (highest id) wins; this service reads
// it once per request and never writes it.
type SiteSetup struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"size:120;not null" json:"title"`
	Description     string    `gorm:"size:255" json:"description"`
	FaviconURL      string    `json:"favicon_url"`
	ShowHeader      bool      `gorm:"not null;default:true" json:"show_header"`
	ShowSearch      bool      `gorm:"not null;default:true" json:"show_search"`
	ShowMenu        bool      `gorm:"not null;default:true" json:"show_menu"`
	ShowDescription bool      `gorm:"not null;default:true" json:"show_description"`
	ShowPagination  bool      `gorm:"not null;default:true" json:"show_pagination"`
	ShowFooter      bool      `gorm:"not null;default:true" json:"show_footer"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (SiteSetup) TableName() string {
	return "site_setups"
}
