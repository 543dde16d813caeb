package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campus-ce/catalog-api/internal/models"
)

func TestMatchesDay(t *testing.T) {
	row := untimed("Monday", "2024-01-15", "2024-04-15")

	assert.True(t, Criteria{}.MatchesDay(row), "empty day set matches everything")
	assert.True(t, Criteria{Days: []Weekday{Monday, Friday}}.MatchesDay(row))
	assert.False(t, Criteria{Days: []Weekday{Tuesday}}.MatchesDay(row))

	// Exact, case-sensitive comparison against the canonical names.
	lower := untimed("monday", "2024-01-15", "2024-04-15")
	assert.False(t, Criteria{Days: []Weekday{Monday}}.MatchesDay(lower))
}

func TestMatchesDateRange(t *testing.T) {
	row := untimed("Monday", "2024-01-15", "2024-04-15")

	cases := []struct {
		name   string
		after  string
		before string
		want   bool
	}{
		{"no bounds", "", "", true},
		{"inside both bounds", "2024-01-01", "2024-05-01", true},
		{"lower bound inclusive", "2024-01-15", "", true},
		{"upper bound inclusive", "", "2024-04-15", true},
		{"starts before lower bound", "2024-02-01", "", false},
		{"ends after upper bound", "", "2024-04-01", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Criteria{StartDateAfter: tc.after, EndDateBefore: tc.before}
			assert.Equal(t, tc.want, c.MatchesDateRange(row))
		})
	}
}

func TestMatchesTimeBuckets(t *testing.T) {
	morning := timed("Monday", "2024-01-15", "2024-04-15", "09:00:00", "11:00:00")
	afternoon := timed("Monday", "2024-01-15", "2024-04-15", "13:00:00", "16:00:00")
	evening := timed("Monday", "2024-01-15", "2024-04-15", "18:00:00", "21:00:00")
	tbd := untimed("Monday", "2024-01-15", "2024-04-15")

	bucket := func(b TimeOfDay) Criteria {
		start, end := b.Bounds()
		return Criteria{StartAfter: start, EndBefore: end}
	}

	assert.True(t, bucket(TimeOfDayMorning).MatchesTime([]models.Schedule{morning}))
	assert.False(t, bucket(TimeOfDayMorning).MatchesTime([]models.Schedule{afternoon}))

	assert.True(t, bucket(TimeOfDayAfternoon).MatchesTime([]models.Schedule{afternoon}))
	assert.False(t, bucket(TimeOfDayAfternoon).MatchesTime([]models.Schedule{morning}))
	assert.False(t, bucket(TimeOfDayAfternoon).MatchesTime([]models.Schedule{evening}))

	assert.True(t, bucket(TimeOfDayEvening).MatchesTime([]models.Schedule{evening}))
	assert.False(t, bucket(TimeOfDayEvening).MatchesTime([]models.Schedule{afternoon}))

	// One qualifying schedule is enough for the course.
	assert.True(t, bucket(TimeOfDayMorning).MatchesTime([]models.Schedule{evening, morning}))

	// TBD schedules never satisfy an active bucket.
	assert.False(t, bucket(TimeOfDayMorning).MatchesTime([]models.Schedule{tbd}))
	assert.True(t, Criteria{}.MatchesTime([]models.Schedule{tbd}), "no bound active passes TBD")
}

func TestMatchesTimeBoundaryInclusive(t *testing.T) {
	endsAtNoon := timed("Monday", "2024-01-15", "2024-04-15", "10:00:00", "12:00:00")
	startsAtFive := timed("Monday", "2024-01-15", "2024-04-15", "17:00:00", "19:00:00")

	morningStart, morningEnd := TimeOfDayMorning.Bounds()
	assert.True(t, Criteria{StartAfter: morningStart, EndBefore: morningEnd}.
		MatchesTime([]models.Schedule{endsAtNoon}))

	eveningStart, eveningEnd := TimeOfDayEvening.Bounds()
	assert.True(t, Criteria{StartAfter: eveningStart, EndBefore: eveningEnd}.
		MatchesTime([]models.Schedule{startsAtFive}))
}

func TestMatchesSearch(t *testing.T) {
	assert.True(t, MatchesSearch("CSKI 1001", "Intro to Welding", ""))
	assert.True(t, MatchesSearch("CSKI 1001", "Intro to Welding", "weld"))
	assert.True(t, MatchesSearch("CSKI 1001", "Intro to Welding", "cski weld"))
	assert.True(t, MatchesSearch("CSKI 1001", "Intro to Welding", "WELDING"))
	assert.False(t, MatchesSearch("CSKI 1001", "Intro to Welding", "cski pottery"))
}

func TestMatchesDelivery(t *testing.T) {
	online := "Online"
	assert.True(t, MatchesDelivery(&online, ""))
	assert.True(t, MatchesDelivery(&online, "online"))
	assert.True(t, MatchesDelivery(&online, "ONLINE"))
	assert.False(t, MatchesDelivery(&online, "on campus"))
	assert.False(t, MatchesDelivery(nil, "online"))
	assert.True(t, MatchesDelivery(nil, ""))
}

func TestMatchesPrefix(t *testing.T) {
	assert.True(t, MatchesPrefix("CSKI", ""))
	assert.True(t, MatchesPrefix("CSKI", "cski"))
	assert.False(t, MatchesPrefix("CSKI", "ARTS"))
}

func TestCriteriaFromFilter(t *testing.T) {
	c := CriteriaFromFilter(models.CourseFilter{
		Days:           []string{"Monday", "NotADay", "Friday"},
		StartAfter:     "12:00",
		EndBefore:      "17:00",
		StartDateAfter: "2024-02-01",
		EndDateBefore:  "2024-06-01",
	})

	assert.Equal(t, []Weekday{Monday, Friday}, c.Days)
	assert.Equal(t, "12:00", c.StartAfter)
	assert.Equal(t, "2024-02-01", c.StartDateAfter)
}
