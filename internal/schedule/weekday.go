package schedule

// Weekday is the closed set of canonical English weekday names carried by
// schedule rows. Matching against rows is exact and case-sensitive; the
// fixed Monday-first order drives day-label sorting.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists the canonical days in display order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayIndex = map[Weekday]int{
	Monday:    0,
	Tuesday:   1,
	Wednesday: 2,
	Thursday:  3,
	Friday:    4,
	Saturday:  5,
	Sunday:    6,
}

var weekdayAbbrev = map[Weekday]string{
	Monday:    "Mon",
	Tuesday:   "Tue",
	Wednesday: "Wed",
	Thursday:  "Thu",
	Friday:    "Fri",
	Saturday:  "Sat",
	Sunday:    "Sun",
}

// ParseWeekday resolves a raw day-of-week string to its canonical value.
func ParseWeekday(raw string) (Weekday, bool) {
	d := Weekday(raw)
	_, ok := weekdayIndex[d]
	return d, ok
}

// Valid reports whether the value is one of the seven canonical days.
func (d Weekday) Valid() bool {
	_, ok := weekdayIndex[d]
	return ok
}

// Abbrev returns the 3-letter display abbreviation, or the raw value when
// the day is not canonical.
func (d Weekday) Abbrev() string {
	if abbr, ok := weekdayAbbrev[d]; ok {
		return abbr
	}
	return string(d)
}

// sortIndex orders canonical days Monday..Sunday; unknown values sort last
// so malformed rows never panic the formatter.
func (d Weekday) sortIndex() int {
	if i, ok := weekdayIndex[d]; ok {
		return i
	}
	return len(weekdayIndex)
}
