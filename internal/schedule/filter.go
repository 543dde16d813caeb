package schedule

import (
	"strings"

	"github.com/campus-ce/catalog-api/internal/models"
)

// MatchesDay reports whether the row passes the day-of-week criterion:
// the selected set is empty, or the row's day is an exact member of it.
// Comparison is exact string equality against the canonical names.
func (c Criteria) MatchesDay(s models.Schedule) bool {
	return c.allowsDay(Weekday(s.DayOfWeek))
}

// MatchesDateRange reports whether the row's date range sits inside the
// criteria's inclusive calendar-date bounds. Dates are compared as ISO-8601
// strings; there is no time-of-day component and no timezone involved.
func (c Criteria) MatchesDateRange(s models.Schedule) bool {
	if c.StartDateAfter != "" && s.StartDate < c.StartDateAfter {
		return false
	}
	if c.EndDateBefore != "" && s.EndDate > c.EndDateBefore {
		return false
	}
	return true
}

// MatchesTime applies the course-level time-of-day test: with bounds active,
// the course qualifies when at least one schedule has a known time window
// inside them. TBD schedules never satisfy an active bound, so a course
// whose every meeting is TBD is hidden while a time bucket is selected.
// Rows that do qualify by day and date are still grouped in full; the time
// bound gates the course, not individual rows.
func (c Criteria) MatchesTime(schedules []models.Schedule) bool {
	if c.StartAfter == "" && c.EndBefore == "" {
		return true
	}
	for _, s := range schedules {
		start, end, ok := clockWindow(s)
		if !ok {
			continue
		}
		if c.StartAfter != "" && start < normalizeClock(c.StartAfter) {
			continue
		}
		if c.EndBefore != "" && end > normalizeClock(c.EndBefore) {
			continue
		}
		return true
	}
	return false
}

// MatchesDelivery is the case-insensitive delivery-type equality test.
// A nil delivery type never matches a non-empty selection.
func MatchesDelivery(deliveryType *string, want string) bool {
	if want == "" {
		return true
	}
	if deliveryType == nil {
		return false
	}
	return strings.EqualFold(*deliveryType, want)
}

// MatchesPrefix is the case-insensitive department-prefix equality test.
func MatchesPrefix(prefix, want string) bool {
	if want == "" {
		return true
	}
	return strings.EqualFold(prefix, want)
}

// MatchesSearch splits the query on whitespace and requires every term to
// appear, case-insensitively, in the course code or the course name.
func MatchesSearch(code, name, query string) bool {
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return true
	}
	code = strings.ToLower(code)
	name = strings.ToLower(name)
	for _, term := range terms {
		term = strings.ToLower(term)
		if !strings.Contains(code, term) && !strings.Contains(name, term) {
			return false
		}
	}
	return true
}

// clockWindow extracts the normalized time window of a row. A row with
// fewer than two known times is untimed: one-sided pairs are malformed
// upstream data and are passed through as TBD rather than rejected.
func clockWindow(s models.Schedule) (start, end string, ok bool) {
	if s.StartTime == nil || s.EndTime == nil || *s.StartTime == "" || *s.EndTime == "" {
		return "", "", false
	}
	return normalizeClock(*s.StartTime), normalizeClock(*s.EndTime), true
}

// normalizeClock pads "HH:MM" to "HH:MM:SS" so 24-hour wall-clock strings
// compare correctly as plain strings.
func normalizeClock(t string) string {
	if len(t) == 5 {
		return t + ":00"
	}
	return t
}
