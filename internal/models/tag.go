package models

import "time"

// Tag is the row shape of the tags table. transaction_tags joins tags to
// transactions and carries no payload of its own.
type Tag struct {
	TagID  string `db:"tag_id"`
	UserID string `db:"user_id"`
	Name   string `db:"name"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
