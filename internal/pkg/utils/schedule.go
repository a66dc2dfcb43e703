package utils

import (
	"regexp"
	"time"

	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
)

var timeHHMMRegex = regexp.MustCompile(constvars.RegexTimeHHMM)

// IsValidTime reports whether value is a 24-hour clock time in HH:MM form.
func IsValidTime(value string) bool {
	return timeHHMMRegex.MatchString(value)
}

// IsValidWeekday reports whether value is one of the seven English day
// names. "All" is not a weekday; callers that accept it check separately.
func IsValidWeekday(value string) bool {
	for _, day := range constvars.Weekdays {
		if value == day {
			return true
		}
	}
	return false
}

// ExpandAllDays replaces a day set containing "All" with the full week.
// Any other set is returned unchanged.
func ExpandAllDays(days []string) []string {
	for _, day := range days {
		if day == constvars.WeekdayAll {
			expanded := make([]string, len(constvars.Weekdays))
			copy(expanded, constvars.Weekdays)
			return expanded
		}
	}
	return days
}

// ContainsAllDays reports whether the day set includes the "All" marker.
func ContainsAllDays(days []string) bool {
	for _, day := range days {
		if day == constvars.WeekdayAll {
			return true
		}
	}
	return false
}

// IsDaySubset reports whether every day in days appears in allowed.
func IsDaySubset(days, allowed []string) bool {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, day := range allowed {
		allowedSet[day] = struct{}{}
	}
	for _, day := range days {
		if _, ok := allowedSet[day]; !ok {
			return false
		}
	}
	return true
}

// NormalizeBookingDate truncates a timestamp to midnight in its location
// so bookings on the same calendar day share one stored date.
func NormalizeBookingDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseBookingDate parses a YYYY-MM-DD date string and normalizes it to
// the start of the day.
func ParseBookingDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	return NormalizeBookingDate(t), nil
}
