package domain_test

import (
	"testing"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCadence_NextAfter(t *testing.T) {
	tests := []struct {
		name    string
		cadence domain.Cadence
		from    time.Time
		want    time.Time
		wantOK  bool
	}{
		{
			name:    "daily adds one day",
			cadence: domain.Daily,
			from:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			want:    time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			wantOK:  true,
		},
		{
			name:    "weekly adds seven days",
			cadence: domain.Weekly,
			from:    time.Date(2024, 2, 26, 9, 30, 0, 0, time.UTC),
			want:    time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC),
			wantOK:  true,
		},
		{
			name:    "monthly keeps day when it exists",
			cadence: domain.Monthly,
			from:    time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
			want:    time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC),
			wantOK:  true,
		},
		{
			name:    "monthly clamps jan 31 to feb 29 in leap year",
			cadence: domain.Monthly,
			from:    time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			want:    time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			wantOK:  true,
		},
		{
			name:    "monthly clamps jan 31 to feb 28 in non-leap year",
			cadence: domain.Monthly,
			from:    time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
			want:    time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
			wantOK:  true,
		},
		{
			name:    "monthly across year boundary",
			cadence: domain.Monthly,
			from:    time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC),
			want:    time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC),
			wantOK:  true,
		},
		{
			name:    "unknown cadence is a no-op",
			cadence: domain.Cadence("FORTNIGHTLY"),
			from:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			want:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.cadence.NextAfter(tt.from)
			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestRecurringRule_IsDue(t *testing.T) {
	ref := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, domain.RecurringRule{NextRunAt: ref}.IsDue(ref), "due exactly at the reference instant")
	assert.True(t, domain.RecurringRule{NextRunAt: ref.Add(-time.Hour)}.IsDue(ref))
	assert.False(t, domain.RecurringRule{NextRunAt: ref.Add(time.Second)}.IsDue(ref))
}
