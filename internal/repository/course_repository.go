package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/campus-ce/catalog-api/internal/models"
)

const courseColumns = "id, course_code, course_prefix, course_number, course_name, course_delivery_type, prereqs, hours, fees, course_description, course_link"

const scheduleColumns = "id, course_id, start_date::text AS start_date, end_date::text AS end_date, day_of_week, start_time::text AS start_time, end_time::text AS end_time"

// CourseRepository provides read access to the catalog store plus the bulk
// load path used by the importer.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns one page of courses with their schedules attached, plus the
// total count under the same conditions. The SQL conditions mirror the
// store-level prefilters; date-range and grouping decisions stay with the
// in-memory engine.
func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, int, error) {
	base := "FROM courses c WHERE 1=1"
	var conditions []string
	var args []interface{}

	for _, term := range strings.Fields(filter.Search) {
		conditions = append(conditions, fmt.Sprintf("(c.course_code ILIKE $%d OR c.course_name ILIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+term+"%")
	}
	if filter.Prefix != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(c.course_prefix) = LOWER($%d)", len(args)+1))
		args = append(args, filter.Prefix)
	}
	if filter.DeliveryType != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(c.course_delivery_type) = LOWER($%d)", len(args)+1))
		args = append(args, filter.DeliveryType)
	}
	if len(filter.Days) > 0 {
		conditions = append(conditions, fmt.Sprintf("EXISTS (SELECT 1 FROM schedules s WHERE s.course_id = c.id AND s.day_of_week = ANY($%d))", len(args)+1))
		args = append(args, pq.Array(filter.Days))
	}
	if filter.StartAfter != "" || filter.EndBefore != "" {
		var timeConds []string
		if filter.StartAfter != "" {
			timeConds = append(timeConds, fmt.Sprintf("s.start_time >= $%d", len(args)+1))
			args = append(args, filter.StartAfter)
		}
		if filter.EndBefore != "" {
			timeConds = append(timeConds, fmt.Sprintf("s.end_time <= $%d", len(args)+1))
			args = append(args, filter.EndBefore)
		}
		conditions = append(conditions, fmt.Sprintf("EXISTS (SELECT 1 FROM schedules s WHERE s.course_id = c.id AND %s)", strings.Join(timeConds, " AND ")))
	}
	if filter.HasSchedules {
		conditions = append(conditions, "EXISTS (SELECT 1 FROM schedules s WHERE s.course_id = c.id)")
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	orderBy := "c.course_prefix ASC, c.course_number ASC"
	switch filter.Ordering {
	case "course_code", "course_name", "course_prefix":
		orderBy = "c." + filter.Ordering + " ASC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 20
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s %s ORDER BY %s LIMIT %d OFFSET %d", prefixColumns("c"), base, orderBy, size, offset)
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list courses: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count courses: %w", err)
	}

	if err := r.attachSchedules(ctx, courses); err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// Prefixes returns the distinct department prefixes of courses that have at
// least one schedule, in ascending order.
func (r *CourseRepository) Prefixes(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT course_prefix FROM courses c WHERE EXISTS (SELECT 1 FROM schedules s WHERE s.course_id = c.id) ORDER BY course_prefix ASC`
	var prefixes []string
	if err := r.db.SelectContext(ctx, &prefixes, query); err != nil {
		return nil, fmt.Errorf("list course prefixes: %w", err)
	}
	return prefixes, nil
}

// ReplaceAll clears the catalog and loads the provided courses and their
// schedules inside one transaction. The importer runs this against the
// cleaned scrape output, matching the original clear-and-reload semantics.
func (r *CourseRepository) ReplaceAll(ctx context.Context, courses []models.Course) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin catalog import: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM schedules`); err != nil {
		return fmt.Errorf("clear schedules: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM courses`); err != nil {
		return fmt.Errorf("clear courses: %w", err)
	}

	const insertCourse = `INSERT INTO courses (course_code, course_prefix, course_number, course_name, course_delivery_type, prereqs, hours, fees, course_description, course_link) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	const insertSchedule = `INSERT INTO schedules (course_id, start_date, end_date, day_of_week, start_time, end_time) VALUES ($1, $2, $3, $4, $5, $6)`

	for i := range courses {
		course := &courses[i]
		if err = tx.QueryRowxContext(ctx, insertCourse,
			course.CourseCode,
			course.CoursePrefix,
			course.CourseNumber,
			course.CourseName,
			course.CourseDeliveryType,
			course.Prereqs,
			course.Hours,
			course.Fees,
			course.CourseDescription,
			course.CourseLink,
		).Scan(&course.ID); err != nil {
			return fmt.Errorf("insert course %s: %w", course.CourseCode, err)
		}

		for _, sched := range course.Schedules {
			if _, err = tx.ExecContext(ctx, insertSchedule,
				course.ID,
				sched.StartDate,
				sched.EndDate,
				sched.DayOfWeek,
				sched.StartTime,
				sched.EndTime,
			); err != nil {
				return fmt.Errorf("insert schedule for %s: %w", course.CourseCode, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog import: %w", err)
	}
	return nil
}

func (r *CourseRepository) attachSchedules(ctx context.Context, courses []models.Course) error {
	if len(courses) == 0 {
		return nil
	}

	ids := make([]int64, len(courses))
	index := make(map[int64]*models.Course, len(courses))
	for i := range courses {
		ids[i] = courses[i].ID
		index[courses[i].ID] = &courses[i]
	}

	query, args, err := sqlx.In(fmt.Sprintf("SELECT %s FROM schedules WHERE course_id IN (?) ORDER BY start_date ASC, start_time ASC NULLS LAST, id ASC", scheduleColumns), ids)
	if err != nil {
		return fmt.Errorf("build schedule lookup: %w", err)
	}

	var schedules []models.Schedule
	if err := r.db.SelectContext(ctx, &schedules, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("list schedules for page: %w", err)
	}

	for _, sched := range schedules {
		if course, ok := index[sched.CourseID]; ok {
			course.Schedules = append(course.Schedules, sched)
		}
	}
	return nil
}

func prefixColumns(alias string) string {
	cols := strings.Split(courseColumns, ", ")
	for i, col := range cols {
		cols[i] = alias + "." + col
	}
	return strings.Join(cols, ", ")
}
