// Package schedule implements the catalog's schedule aggregation engine:
// deciding which rows of a course survive the active filters, merging the
// survivors into display groups that share a time window and date range,
// and deriving the human-readable labels for each group. Everything here is
// a pure function of its arguments; the engine performs no I/O, keeps no
// state, and yields identical output for identical input.
package schedule

import "github.com/campus-ce/catalog-api/internal/models"

// groupKey is the composite clustering key: a tagged time-window variant
// (timed with both clock values, or the untimed sentinel) combined with the
// date pair. A struct key avoids the delimiter-collision bugs of string
// concatenation.
type groupKey struct {
	timed     bool
	startTime string
	endTime   string
	startDate string
	endDate   string
}

func keyFor(s models.Schedule) groupKey {
	key := groupKey{startDate: s.StartDate, endDate: s.EndDate}
	if start, end, ok := clockWindow(s); ok {
		key.timed = true
		key.startTime = start
		key.endTime = end
	}
	return key
}

// DisplayGroup is an ephemeral cluster of schedules sharing one time window
// and date range, rendered as a single line item. Members keep the order
// they arrived in.
type DisplayGroup struct {
	Schedules []models.Schedule
	Timed     bool
	StartTime string
	EndTime   string
	StartDate string
	EndDate   string
}

// Group converts a course's schedule list into its ordered display groups
// under the given criteria.
//
// Stage 1 drops rows failing the day or date-range test. Stage 2 clusters
// survivors by composite key, preserving first-seen key order and original
// member order within a cluster. Stage 3 emits a cluster only when no day
// filter is active or every member's day is inside the selected set — kept
// on top of the row-level test so a group label never names a day the user
// filtered out. An empty result means the course must not be rendered.
func Group(schedules []models.Schedule, c Criteria) []DisplayGroup {
	var order []groupKey
	clusters := make(map[groupKey][]models.Schedule)

	for _, s := range schedules {
		if !c.MatchesDay(s) || !c.MatchesDateRange(s) {
			continue
		}
		key := keyFor(s)
		if _, seen := clusters[key]; !seen {
			order = append(order, key)
		}
		clusters[key] = append(clusters[key], s)
	}

	groups := make([]DisplayGroup, 0, len(order))
	for _, key := range order {
		members := clusters[key]
		if c.hasDayFilter() && !allDaysAllowed(members, c) {
			continue
		}
		groups = append(groups, DisplayGroup{
			Schedules: members,
			Timed:     key.timed,
			StartTime: key.startTime,
			EndTime:   key.endTime,
			StartDate: key.startDate,
			EndDate:   key.endDate,
		})
	}
	return groups
}

// Visible is the course-visibility predicate: a course with zero display
// groups under the active criteria is excluded from the rendered list.
func Visible(schedules []models.Schedule, c Criteria) bool {
	return len(Group(schedules, c)) > 0
}

func allDaysAllowed(members []models.Schedule, c Criteria) bool {
	for _, s := range members {
		if !c.allowsDay(Weekday(s.DayOfWeek)) {
			return false
		}
	}
	return true
}
