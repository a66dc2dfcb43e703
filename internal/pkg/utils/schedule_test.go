package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidTime(t *testing.T) {
	t.Run("Accepts valid 24-hour times", func(t *testing.T) {
		for _, value := range []string{"00:00", "09:30", "13:05", "19:59", "23:59"} {
			assert.True(t, IsValidTime(value), value)
		}
	})

	t.Run("Rejects malformed times", func(t *testing.T) {
		for _, value := range []string{"24:00", "12:60", "9:30", "09:5", "09-30", "", "noon", "09:30:00"} {
			assert.False(t, IsValidTime(value), value)
		}
	})
}

func TestIsValidWeekday(t *testing.T) {
	t.Run("Accepts the seven day names", func(t *testing.T) {
		for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
			assert.True(t, IsValidWeekday(day), day)
		}
	})

	t.Run("Rejects other values", func(t *testing.T) {
		for _, day := range []string{"All", "monday", "Mon", "", "Weekend"} {
			assert.False(t, IsValidWeekday(day), day)
		}
	})
}

func TestExpandAllDays(t *testing.T) {
	t.Run("Expands a set containing All to the full week", func(t *testing.T) {
		expanded := ExpandAllDays([]string{"All"})
		assert.Len(t, expanded, 7)
		assert.Contains(t, expanded, "Monday")
		assert.Contains(t, expanded, "Sunday")
	})

	t.Run("Expands even when All is mixed with day names", func(t *testing.T) {
		expanded := ExpandAllDays([]string{"Monday", "All"})
		assert.Len(t, expanded, 7)
	})

	t.Run("Leaves a plain day set unchanged", func(t *testing.T) {
		days := []string{"Monday", "Friday"}
		assert.Equal(t, days, ExpandAllDays(days))
	})
}

func TestIsDaySubset(t *testing.T) {
	t.Run("Subset passes", func(t *testing.T) {
		assert.True(t, IsDaySubset([]string{"Monday"}, []string{"Monday", "Tuesday"}))
	})

	t.Run("Equal sets pass", func(t *testing.T) {
		assert.True(t, IsDaySubset([]string{"Monday", "Tuesday"}, []string{"Tuesday", "Monday"}))
	})

	t.Run("Extra day fails", func(t *testing.T) {
		assert.False(t, IsDaySubset([]string{"Monday", "Sunday"}, []string{"Monday", "Tuesday"}))
	})

	t.Run("Empty set is always a subset", func(t *testing.T) {
		assert.True(t, IsDaySubset(nil, []string{"Monday"}))
	})
}

func TestNormalizeBookingDate(t *testing.T) {
	t.Run("Truncates to midnight preserving the location", func(t *testing.T) {
		loc, err := time.LoadLocation("Asia/Riyadh")
		assert.NoError(t, err)

		ts := time.Date(2025, time.March, 14, 17, 45, 12, 999, loc)
		normalized := NormalizeBookingDate(ts)

		assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, loc), normalized)
		assert.Equal(t, loc, normalized.Location())
	})

	t.Run("Same day timestamps normalize to one date", func(t *testing.T) {
		morning := time.Date(2025, time.March, 14, 8, 0, 0, 0, time.UTC)
		evening := time.Date(2025, time.March, 14, 22, 30, 0, 0, time.UTC)
		assert.Equal(t, NormalizeBookingDate(morning), NormalizeBookingDate(evening))
	})
}

func TestParseBookingDate(t *testing.T) {
	t.Run("Parses and normalizes YYYY-MM-DD", func(t *testing.T) {
		parsed, err := ParseBookingDate("2025-06-01")
		assert.NoError(t, err)
		assert.Equal(t, 2025, parsed.Year())
		assert.Equal(t, time.June, parsed.Month())
		assert.Equal(t, 1, parsed.Day())
		assert.Equal(t, 0, parsed.Hour())
	})

	t.Run("Rejects other layouts", func(t *testing.T) {
		_, err := ParseBookingDate("01/06/2025")
		assert.Error(t, err)
	})
}
