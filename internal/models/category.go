package models

import "time"

// Category is the row shape of the categories table.
type Category struct {
	CategoryID string `db:"category_id"`
	UserID     string `db:"user_id"`
	Name       string `db:"name"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
