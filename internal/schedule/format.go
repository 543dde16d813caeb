package schedule

import (
	"sort"
	"strings"
	"time"
)

// TBDLabel marks a group whose meeting time is not yet known.
const TBDLabel = "Time TBD"

// Delivery badge categories derived from the course delivery type.
const (
	BadgeOnline   = "online"
	BadgeOnCampus = "on-campus"
	BadgeOther    = "other"
)

// DayLabel renders the group's weekday set: distinct days sorted into
// canonical Monday-first order, abbreviated to three letters, then joined
// as "Mon", "Mon & Wed", or "Mon, Wed, Fri". The label depends only on the
// day set, never on the order rows arrived in.
func (g DisplayGroup) DayLabel() string {
	seen := make(map[Weekday]struct{}, len(g.Schedules))
	days := make([]Weekday, 0, len(g.Schedules))
	for _, s := range g.Schedules {
		d := Weekday(s.DayOfWeek)
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].sortIndex() < days[j].sortIndex() })

	labels := make([]string, len(days))
	for i, d := range days {
		labels[i] = d.Abbrev()
	}
	if len(labels) == 2 {
		return labels[0] + " & " + labels[1]
	}
	return strings.Join(labels, ", ")
}

// TimeLabel renders "HH:MM–HH:MM" with seconds truncated, or the TBD marker
// for untimed groups.
func (g DisplayGroup) TimeLabel() string {
	if !g.Timed {
		return TBDLabel
	}
	return truncateClock(g.StartTime) + "–" + truncateClock(g.EndTime)
}

// DateLabel renders the date range as abbreviated month and day, no year:
// all schedules in scope share one academic cycle, and the full dates stay
// on the underlying rows. Unparseable dates fall back to their raw value.
func (g DisplayGroup) DateLabel() string {
	return shortDate(g.StartDate) + "–" + shortDate(g.EndDate)
}

// DeliveryBadge maps a course delivery type onto a badge category and its
// display text. "online" and "on campus" (any casing) select the fixed
// categories, any other non-null value renders verbatim as a neutral badge,
// and nil yields no badge at all.
func DeliveryBadge(deliveryType *string) (category, label string) {
	if deliveryType == nil || *deliveryType == "" {
		return "", ""
	}
	switch strings.ToLower(*deliveryType) {
	case "online":
		return BadgeOnline, *deliveryType
	case "on campus":
		return BadgeOnCampus, *deliveryType
	default:
		return BadgeOther, *deliveryType
	}
}

func truncateClock(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

func shortDate(d string) string {
	parsed, err := time.Parse("2006-01-02", d)
	if err != nil {
		return d
	}
	return parsed.Format("Jan 2")
}
