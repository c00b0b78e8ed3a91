// Package models contains data structures for the application's domain models.
package models

import (
	"strings"
	"time"
)

// Author represents a content author. Authors are owned by the external
// authoring/admin system; this service only ever reads them.
type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:150;unique;not null" json:"username"`
	Email     string    `gorm:"size:254;unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FirstName string    `gorm:"size:150" json:"first_name"`
	LastName  string    `gorm:"size:150" json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Posts     []Post    `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
}

// DisplayName returns "First Last" when either name part is set, falling
// back to the username so the result is never empty.
func (a *Author) DisplayName() string {
	parts := make([]string, 0, 2)
	if first := strings.TrimSpace(a.FirstName); first != "" {
		parts = append(parts, first)
	}
	if last := strings.TrimSpace(a.LastName); last != "" {
		parts = append(parts, last)
	}
	if len(parts) == 0 {
		return a.Username
	}
	return strings.Join(parts, " ")
}
