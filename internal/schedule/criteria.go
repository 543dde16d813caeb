package schedule

import "github.com/campus-ce/catalog-api/internal/models"

// TimeOfDay is a coarse meeting-time bucket. Each bucket translates to
// wall-clock bounds; a schedule with no times can never satisfy an active
// bucket, which intentionally hides TBD meetings while one is selected.
type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayEvening   TimeOfDay = "evening"
)

// Bounds translates the bucket into an inclusive (start-after, end-before)
// wall-clock pair. Morning means the meeting ends by noon, evening means it
// starts at or after 17:00, afternoon is the 12:00-17:00 window. An empty
// string means the corresponding bound is unset.
func (t TimeOfDay) Bounds() (startAfter, endBefore string) {
	switch t {
	case TimeOfDayMorning:
		return "", "12:00"
	case TimeOfDayAfternoon:
		return "12:00", "17:00"
	case TimeOfDayEvening:
		return "17:00", ""
	default:
		return "", ""
	}
}

// Criteria is the caller-owned filter state for one grouping invocation.
// Zero values mean "no restriction"; an empty Days slice matches every day.
// The engine never mutates a Criteria and holds no state between calls.
type Criteria struct {
	// Days restricts which weekdays may appear, both per row and for the
	// group as a whole.
	Days []Weekday

	// StartAfter and EndBefore are inclusive wall-clock bounds ("HH:MM" or
	// "HH:MM:SS") applied per course, not per row: a course qualifies when
	// at least one timed schedule falls inside them.
	StartAfter string
	EndBefore  string

	// StartDateAfter and EndDateBefore are inclusive ISO-8601 calendar-date
	// bounds applied per row.
	StartDateAfter string
	EndDateBefore  string
}

// CriteriaFromFilter lifts the transport-level filter into core criteria.
// Day names that fail to parse are dropped; the handler validates them
// before they reach this point.
func CriteriaFromFilter(filter models.CourseFilter) Criteria {
	c := Criteria{
		StartAfter:     filter.StartAfter,
		EndBefore:      filter.EndBefore,
		StartDateAfter: filter.StartDateAfter,
		EndDateBefore:  filter.EndDateBefore,
	}
	for _, raw := range filter.Days {
		if day, ok := ParseWeekday(raw); ok {
			c.Days = append(c.Days, day)
		}
	}
	return c
}

// hasDayFilter reports whether a day restriction is active. An empty set is
// "no restriction", never "match nothing".
func (c Criteria) hasDayFilter() bool {
	return len(c.Days) > 0
}

func (c Criteria) allowsDay(day Weekday) bool {
	if !c.hasDayFilter() {
		return true
	}
	for _, d := range c.Days {
		if d == day {
			return true
		}
	}
	return false
}
