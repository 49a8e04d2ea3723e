package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cadence is how often a recurring rule fires.
type Cadence string

const (
	Daily   Cadence = "DAILY"
	Weekly  Cadence = "WEEKLY"
	Monthly Cadence = "MONTHLY"
)

// RecurringRule is a template that materializes one transaction each time it
// comes due. NextRunAt is always set; the rule is due when NextRunAt is at or
// before the reference instant.
type RecurringRule struct {
	RecurringID     string          `json:"recurringID"` // Primary Key (UUID)
	UserID          string          `json:"userID"`
	AccountID       *string         `json:"accountID"` // Optional FK -> Account
	CategoryID      string          `json:"categoryID"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType TransactionType `json:"transactionType"`
	Cadence         Cadence         `json:"cadence"`
	NextRunAt       time.Time       `json:"nextRunAt"` // UTC
	Note            string          `json:"note"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// NextAfter returns the instant one cadence period after t. The second return
// is false for a cadence outside the closed set, in which case t is returned
// unchanged; callers treat such rules as data anomalies and skip them.
//
// Monthly advancement clamps the day-of-month to the length of the target
// month (Jan 31 -> Feb 28, or Feb 29 in a leap year). time.AddDate is not
// used for the monthly case because it normalizes overflow past month end.
func (c Cadence) NextAfter(t time.Time) (time.Time, bool) {
	switch c {
	case Daily:
		return t.AddDate(0, 0, 1), true
	case Weekly:
		return t.AddDate(0, 0, 7), true
	case Monthly:
		return addOneMonthClamped(t), true
	default:
		return t, false
	}
}

func addOneMonthClamped(t time.Time) time.Time {
	year, month, day := t.Date()
	// First day of the target month, keeping the wall-clock time.
	first := time.Date(year, month+1, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsDue reports whether the rule should fire at the given reference instant.
func (r RecurringRule) IsDue(ref time.Time) bool {
	return !r.NextRunAt.After(ref)
}

// Materialize snapshots the rule into a concrete transaction dated at the
// reference instant. The caller assigns the transaction ID and audit fields.
func (r RecurringRule) Materialize(ref time.Time) Transaction {
	categoryID := r.CategoryID
	return Transaction{
		UserID:          r.UserID,
		Amount:          r.Amount,
		TransactionType: r.TransactionType,
		Date:            ref,
		Note:            r.Note,
		AccountID:       r.AccountID,
		CategoryID:      &categoryID,
	}
}
