package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/campus-ce/catalog-api/internal/models"
	"github.com/campus-ce/catalog-api/internal/schedule"
)

// FixtureCourseSource serves the catalog from a JSON fixture instead of
// Postgres. It backs the mock-data mode used for local frontend work and
// demos, and applies the same store-level prefilters the SQL repository
// does so the two sources are interchangeable behind the service.
type FixtureCourseSource struct {
	courses []models.Course
}

// NewFixtureCourseSource loads the fixture file once at startup.
func NewFixtureCourseSource(path string) (*FixtureCourseSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read course fixture: %w", err)
	}

	var courses []models.Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		return nil, fmt.Errorf("parse course fixture: %w", err)
	}

	// Fixtures may omit ids; assign stable ones so grouped output stays
	// deterministic across requests.
	for i := range courses {
		if courses[i].ID == 0 {
			courses[i].ID = int64(i + 1)
		}
	}

	return &FixtureCourseSource{courses: courses}, nil
}

// List filters, orders, and pages the fixture in memory.
func (f *FixtureCourseSource) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, int, error) {
	criteria := schedule.CriteriaFromFilter(filter)

	var matched []models.Course
	for _, course := range f.courses {
		if !schedule.MatchesSearch(course.CourseCode, course.CourseName, filter.Search) {
			continue
		}
		if !schedule.MatchesPrefix(course.CoursePrefix, filter.Prefix) {
			continue
		}
		if !schedule.MatchesDelivery(course.CourseDeliveryType, filter.DeliveryType) {
			continue
		}
		if filter.HasSchedules && len(course.Schedules) == 0 {
			continue
		}
		if len(criteria.Days) > 0 && !anyDayMatches(course.Schedules, criteria) {
			continue
		}
		if !criteria.MatchesTime(course.Schedules) {
			continue
		}
		matched = append(matched, course)
	}

	sortCourses(matched, filter.Ordering)
	total := len(matched)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 20
	}
	start := (page - 1) * size
	if start >= total {
		return []models.Course{}, total, nil
	}
	end := start + size
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

// Prefixes returns the ordered distinct prefixes of scheduled courses.
func (f *FixtureCourseSource) Prefixes(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var prefixes []string
	for _, course := range f.courses {
		if len(course.Schedules) == 0 {
			continue
		}
		if _, dup := seen[course.CoursePrefix]; dup {
			continue
		}
		seen[course.CoursePrefix] = struct{}{}
		prefixes = append(prefixes, course.CoursePrefix)
	}
	sort.Strings(prefixes)
	return prefixes, nil
}

func anyDayMatches(schedules []models.Schedule, c schedule.Criteria) bool {
	for _, s := range schedules {
		if c.MatchesDay(s) {
			return true
		}
	}
	return false
}

func sortCourses(courses []models.Course, ordering string) {
	sort.SliceStable(courses, func(i, j int) bool {
		switch ordering {
		case "course_code":
			return courses[i].CourseCode < courses[j].CourseCode
		case "course_name":
			return courses[i].CourseName < courses[j].CourseName
		case "course_prefix":
			return courses[i].CoursePrefix < courses[j].CoursePrefix
		default:
			if courses[i].CoursePrefix != courses[j].CoursePrefix {
				return courses[i].CoursePrefix < courses[j].CoursePrefix
			}
			return courses[i].CourseNumber < courses[j].CourseNumber
		}
	})
}
