package service

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campus-ce/catalog-api/internal/dto"
	"github.com/campus-ce/catalog-api/internal/models"
	"github.com/campus-ce/catalog-api/internal/schedule"
	appErrors "github.com/campus-ce/catalog-api/pkg/errors"
)

// CourseSource is the data-fetch collaborator: the Postgres repository in
// live mode, the JSON fixture source in mock mode.
type CourseSource interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.Course, int, error)
	Prefixes(ctx context.Context) ([]string, error)
}

// CatalogConfig tunes listing behaviour.
type CatalogConfig struct {
	APIPrefix   string
	PageSize    int
	MaxPageSize int
}

// CatalogService turns raw catalog rows into the filtered, grouped listing
// the frontend renders. The source applies store-level prefilters; the
// schedule engine then decides grouping and per-course visibility.
type CatalogService struct {
	source    CourseSource
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       CatalogConfig
}

// NewCatalogService instantiates CatalogService.
func NewCatalogService(source CourseSource, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, cfg CatalogConfig) *CatalogService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 20
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}
	return &CatalogService{source: source, cache: cache, metrics: metrics, validator: validate, logger: logger, cfg: cfg}
}

// ListCourses returns one page of visible courses with their display groups.
// A course whose schedules produce zero groups under the active criteria is
// dropped from the results entirely.
func (s *CatalogService) ListCourses(ctx context.Context, filter models.CourseFilter) (*dto.CoursePage, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course filter")
	}

	// A named bucket is shorthand for explicit clock bounds; explicit bounds
	// win when both are sent.
	if filter.TimeOfDay != "" && filter.StartAfter == "" && filter.EndBefore == "" {
		filter.StartAfter, filter.EndBefore = schedule.TimeOfDay(filter.TimeOfDay).Bounds()
	}
	filter.TimeOfDay = ""

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = s.cfg.PageSize
	}
	if filter.PageSize > s.cfg.MaxPageSize {
		filter.PageSize = s.cfg.MaxPageSize
	}

	cacheKey := s.listCacheKey(filter)
	var cached dto.CoursePage
	if s.cache.Get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	courses, total, err := s.source.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}

	criteria := schedule.CriteriaFromFilter(filter)

	results := make([]dto.CourseResult, 0, len(courses))
	hidden := 0
	for _, course := range courses {
		if !criteria.MatchesTime(course.Schedules) {
			hidden++
			continue
		}
		groups := schedule.Group(course.Schedules, criteria)
		if len(groups) == 0 {
			hidden++
			continue
		}
		results = append(results, dto.NewCourseResult(course, groups))
	}
	if s.metrics != nil {
		s.metrics.RecordHiddenCourses(hidden)
	}

	page := &dto.CoursePage{
		Count:    total,
		Next:     s.pageURL(filter, filter.Page+1, filter.Page*filter.PageSize < total),
		Previous: s.pageURL(filter, filter.Page-1, filter.Page > 1),
		Results:  results,
	}

	s.cache.Set(ctx, cacheKey, page)
	return page, nil
}

// Prefixes returns the distinct department prefixes available for filtering.
func (s *CatalogService) Prefixes(ctx context.Context) ([]string, error) {
	const cacheKey = "catalog:prefixes"
	var cached []string
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	prefixes, err := s.source.Prefixes(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list prefixes")
	}
	if prefixes == nil {
		prefixes = []string{}
	}

	s.cache.Set(ctx, cacheKey, prefixes)
	return prefixes, nil
}

func (s *CatalogService) pageURL(filter models.CourseFilter, page int, ok bool) *string {
	if !ok {
		return nil
	}
	values := filterValues(filter)
	values.Set("page", strconv.Itoa(page))
	u := fmt.Sprintf("%s/courses/?%s", s.cfg.APIPrefix, values.Encode())
	return &u
}

func (s *CatalogService) listCacheKey(filter models.CourseFilter) string {
	values := filterValues(filter)
	values.Set("page", strconv.Itoa(filter.Page))
	return "catalog:courses:" + values.Encode()
}

func filterValues(filter models.CourseFilter) url.Values {
	values := url.Values{}
	if filter.Search != "" {
		values.Set("search", filter.Search)
	}
	if filter.Prefix != "" {
		values.Set("prefix", filter.Prefix)
	}
	if len(filter.Days) > 0 {
		days := append([]string(nil), filter.Days...)
		sort.Strings(days)
		values["day"] = days
	}
	if filter.StartAfter != "" {
		values.Set("start_after", filter.StartAfter)
	}
	if filter.EndBefore != "" {
		values.Set("end_before", filter.EndBefore)
	}
	if filter.DeliveryType != "" {
		values.Set("delivery_type", filter.DeliveryType)
	}
	if filter.StartDateAfter != "" {
		values.Set("start_date_after", filter.StartDateAfter)
	}
	if filter.EndDateBefore != "" {
		values.Set("end_date_before", filter.EndDateBefore)
	}
	if filter.Ordering != "" {
		values.Set("ordering", filter.Ordering)
	}
	if filter.HasSchedules {
		values.Set("has_schedules", "true")
	}
	values.Set("page_size", strconv.Itoa(filter.PageSize))
	return values
}
