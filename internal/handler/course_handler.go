package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campus-ce/catalog-api/internal/dto"
	"github.com/campus-ce/catalog-api/internal/models"
	"github.com/campus-ce/catalog-api/internal/service"
	"github.com/campus-ce/catalog-api/pkg/response"
)

type catalogService interface {
	ListCourses(ctx context.Context, filter models.CourseFilter) (*dto.CoursePage, error)
	Prefixes(ctx context.Context) ([]string, error)
}

type exportService interface {
	Export(ctx context.Context, filter models.CourseFilter, format string) (*service.ExportResult, error)
}

// CourseHandler serves the catalog endpoints.
type CourseHandler struct {
	catalog catalogService
	export  exportService
}

// NewCourseHandler constructs handler.
func NewCourseHandler(catalog catalogService, export exportService) *CourseHandler {
	return &CourseHandler{catalog: catalog, export: export}
}

// List godoc
// @Summary List courses with grouped schedules
// @Tags Courses
// @Produce json
// @Param search query string false "Search terms over code and name"
// @Param prefix query string false "Department prefix"
// @Param day query []string false "Weekday name, repeatable"
// @Param start_after query string false "Earliest start time (HH:MM)"
// @Param end_before query string false "Latest end time (HH:MM)"
// @Param time_of_day query string false "morning, afternoon or evening"
// @Param delivery_type query string false "Delivery type"
// @Param start_date_after query string false "Earliest start date (YYYY-MM-DD)"
// @Param end_date_before query string false "Latest end date (YYYY-MM-DD)"
// @Param ordering query string false "Sort key"
// @Param has_schedules query bool false "Only scheduled courses (default true)"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.CoursePage
// @Router /courses/ [get]
func (h *CourseHandler) List(c *gin.Context) {
	filter := parseCourseFilter(c)

	page, err := h.catalog.ListCourses(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Raw(c, http.StatusOK, page)
}

// Prefixes godoc
// @Summary List distinct department prefixes
// @Tags Courses
// @Produce json
// @Success 200 {array} string
// @Router /courses/prefixes/ [get]
func (h *CourseHandler) Prefixes(c *gin.Context) {
	prefixes, err := h.catalog.Prefixes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Raw(c, http.StatusOK, prefixes)
}

// Export godoc
// @Summary Export the visible catalog
// @Tags Courses
// @Produce octet-stream
// @Param format query string true "csv, pdf or xlsx"
// @Security BearerAuth
// @Router /courses/export [get]
func (h *CourseHandler) Export(c *gin.Context) {
	filter := parseCourseFilter(c)
	format := c.DefaultQuery("format", service.FormatCSV)

	result, err := h.export.Export(c.Request.Context(), filter, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, result.ContentType, result.Filename, result.Data)
}

func parseCourseFilter(c *gin.Context) models.CourseFilter {
	filter := models.CourseFilter{
		Search:         c.Query("search"),
		Prefix:         c.Query("prefix"),
		Days:           c.QueryArray("day"),
		StartAfter:     c.Query("start_after"),
		EndBefore:      c.Query("end_before"),
		TimeOfDay:      c.Query("time_of_day"),
		DeliveryType:   c.Query("delivery_type"),
		StartDateAfter: c.Query("start_date_after"),
		EndDateBefore:  c.Query("end_date_before"),
		Ordering:       c.Query("ordering"),
		HasSchedules:   c.DefaultQuery("has_schedules", "true") == "true",
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("page_size", "0")); err == nil {
		filter.PageSize = size
	}
	return filter
}
