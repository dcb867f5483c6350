package models

import "time"

// Category is the database row model for a category.
type Category struct {
	CategoryID int64
	Kind       string
	Name       string
	CreatedAt  time.Time
}

