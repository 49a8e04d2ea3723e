package domain

import "time"

// Tag is a free-form label users attach to transactions.
type Tag struct {
	TagID  string `json:"tagID"` // Primary Key (UUID)
	UserID string `json:"userID"`
	Name   string `json:"name"` // Unique per user
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
