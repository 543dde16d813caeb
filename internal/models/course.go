package models

// Course is one continuing-education offering with its recurring meeting
// schedules. Rows are sourced read-only from the catalog store; nothing in
// the service layer mutates them.
type Course struct {
	ID                 int64      `db:"id" json:"id"`
	CourseCode         string     `db:"course_code" json:"course_code"`
	CoursePrefix       string     `db:"course_prefix" json:"course_prefix"`
	CourseNumber       string     `db:"course_number" json:"course_number"`
	CourseName         string     `db:"course_name" json:"course_name"`
	CourseDeliveryType *string    `db:"course_delivery_type" json:"course_delivery_type"`
	Prereqs            *string    `db:"prereqs" json:"prereqs"`
	Hours              *string    `db:"hours" json:"hours"`
	Fees               *string    `db:"fees" json:"fees"`
	CourseDescription  *string    `db:"course_description" json:"course_description"`
	CourseLink         *string    `db:"course_link" json:"course_link"`
	Schedules          []Schedule `db:"-" json:"schedules"`
}

// Schedule is one recurring meeting pattern belonging to a course. Dates are
// ISO-8601 calendar dates and times are 24-hour wall-clock values; both are
// carried as strings end to end so no timezone conversion can sneak in.
// Start/end time are either both present or both absent (a "TBD" schedule).
type Schedule struct {
	ID        int64   `db:"id" json:"id"`
	CourseID  int64   `db:"course_id" json:"-"`
	StartDate string  `db:"start_date" json:"start_date"`
	EndDate   string  `db:"end_date" json:"end_date"`
	DayOfWeek string  `db:"day_of_week" json:"day_of_week"`
	StartTime *string `db:"start_time" json:"start_time"`
	EndTime   *string `db:"end_time" json:"end_time"`
}

// CourseFilter mirrors the query parameters accepted by GET /courses/.
// All criteria are optional and ANDed together.
type CourseFilter struct {
	Search         string   `validate:"omitempty,max=200"`
	Prefix         string   `validate:"omitempty,max=20"`
	Days           []string `validate:"dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartAfter     string   `validate:"omitempty"`
	EndBefore      string   `validate:"omitempty"`
	TimeOfDay      string   `validate:"omitempty,oneof=morning afternoon evening"`
	DeliveryType   string   `validate:"omitempty,max=50"`
	StartDateAfter string   `validate:"omitempty,datetime=2006-01-02"`
	EndDateBefore  string   `validate:"omitempty,datetime=2006-01-02"`
	Ordering       string   `validate:"omitempty,oneof=course_code course_name course_prefix"`
	HasSchedules   bool
	Page           int
	PageSize       int
}
