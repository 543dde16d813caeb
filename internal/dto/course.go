package dto

import (
	"github.com/campus-ce/catalog-api/internal/models"
	"github.com/campus-ce/catalog-api/internal/schedule"
)

// ScheduleGroup is one rendered line item: schedules sharing a time window
// and date range, collapsed into display labels. Full dates stay alongside
// the labels so clients can do their own rendering if they prefer.
type ScheduleGroup struct {
	Days        string  `json:"days"`
	Time        string  `json:"time"`
	TimeTBD     bool    `json:"time_tbd"`
	Dates       string  `json:"dates"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	ScheduleIDs []int64 `json:"schedule_ids"`
}

// CourseResult is a course entry in the listing, carrying its display
// groups and the derived delivery badge.
type CourseResult struct {
	ID                 int64             `json:"id"`
	CourseCode         string            `json:"course_code"`
	CoursePrefix       string            `json:"course_prefix"`
	CourseNumber       string            `json:"course_number"`
	CourseName         string            `json:"course_name"`
	CourseDeliveryType *string           `json:"course_delivery_type"`
	DeliveryBadge      string            `json:"delivery_badge,omitempty"`
	Prereqs            *string           `json:"prereqs"`
	Hours              *string           `json:"hours"`
	Fees               *string           `json:"fees"`
	CourseDescription  *string           `json:"course_description"`
	CourseLink         *string           `json:"course_link"`
	Schedules          []models.Schedule `json:"schedules"`
	Groups             []ScheduleGroup   `json:"schedule_groups"`
}

// CoursePage is the paginated listing contract consumed by the frontend.
type CoursePage struct {
	Count    int            `json:"count"`
	Next     *string        `json:"next"`
	Previous *string        `json:"previous"`
	Results  []CourseResult `json:"results"`
}

// NewCourseResult assembles the display form of a course from its already
// computed groups.
func NewCourseResult(course models.Course, groups []schedule.DisplayGroup) CourseResult {
	badge, _ := schedule.DeliveryBadge(course.CourseDeliveryType)

	result := CourseResult{
		ID:                 course.ID,
		CourseCode:         course.CourseCode,
		CoursePrefix:       course.CoursePrefix,
		CourseNumber:       course.CourseNumber,
		CourseName:         course.CourseName,
		CourseDeliveryType: course.CourseDeliveryType,
		DeliveryBadge:      badge,
		Prereqs:            course.Prereqs,
		Hours:              course.Hours,
		Fees:               course.Fees,
		CourseDescription:  course.CourseDescription,
		CourseLink:         course.CourseLink,
		Schedules:          course.Schedules,
		Groups:             make([]ScheduleGroup, 0, len(groups)),
	}

	for _, g := range groups {
		ids := make([]int64, len(g.Schedules))
		for i, s := range g.Schedules {
			ids[i] = s.ID
		}
		result.Groups = append(result.Groups, ScheduleGroup{
			Days:        g.DayLabel(),
			Time:        g.TimeLabel(),
			TimeTBD:     !g.Timed,
			Dates:       g.DateLabel(),
			StartDate:   g.StartDate,
			EndDate:     g.EndDate,
			ScheduleIDs: ids,
		})
	}
	return result
}
