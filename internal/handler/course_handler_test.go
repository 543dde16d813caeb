package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-ce/catalog-api/internal/dto"
	"github.com/campus-ce/catalog-api/internal/models"
	"github.com/campus-ce/catalog-api/internal/service"
	appErrors "github.com/campus-ce/catalog-api/pkg/errors"
)

type catalogServiceMock struct {
	page       *dto.CoursePage
	listErr    error
	prefixes   []string
	lastFilter models.CourseFilter
	listCalled bool
}

func (m *catalogServiceMock) ListCourses(ctx context.Context, filter models.CourseFilter) (*dto.CoursePage, error) {
	m.listCalled = true
	m.lastFilter = filter
	return m.page, m.listErr
}

func (m *catalogServiceMock) Prefixes(ctx context.Context) ([]string, error) {
	return m.prefixes, nil
}

type exportServiceMock struct {
	result     *service.ExportResult
	err        error
	lastFormat string
}

func (m *exportServiceMock) Export(ctx context.Context, filter models.CourseFilter, format string) (*service.ExportResult, error) {
	m.lastFormat = format
	return m.result, m.err
}

func TestCourseHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &catalogServiceMock{
		page: &dto.CoursePage{Count: 1, Results: []dto.CourseResult{{CourseCode: "ACCT 101"}}},
	}
	handler := NewCourseHandler(mockSvc, &exportServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/courses/?day=Monday&day=Wednesday&prefix=ACCT&start_after=17:00&page=2&page_size=10", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.listCalled)
	assert.Equal(t, []string{"Monday", "Wednesday"}, mockSvc.lastFilter.Days)
	assert.Equal(t, "ACCT", mockSvc.lastFilter.Prefix)
	assert.Equal(t, "17:00", mockSvc.lastFilter.StartAfter)
	assert.Equal(t, 2, mockSvc.lastFilter.Page)
	assert.Equal(t, 10, mockSvc.lastFilter.PageSize)
	assert.True(t, mockSvc.lastFilter.HasSchedules)

	var page dto.CoursePage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Count)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "ACCT 101", page.Results[0].CourseCode)
}

func TestCourseHandlerListHasSchedulesOptOut(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &catalogServiceMock{page: &dto.CoursePage{}}
	handler := NewCourseHandler(mockSvc, &exportServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/courses/?has_schedules=false", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, mockSvc.lastFilter.HasSchedules)
}

func TestCourseHandlerListServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &catalogServiceMock{listErr: appErrors.Clone(appErrors.ErrValidation, "invalid course filter")}
	handler := NewCourseHandler(mockSvc, &exportServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/courses/?day=Funday", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCourseHandlerPrefixes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &catalogServiceMock{prefixes: []string{"ACCT", "BIOL"}}
	handler := NewCourseHandler(mockSvc, &exportServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/courses/prefixes/", nil)
	c.Request = req

	handler.Prefixes(c)
	require.Equal(t, http.StatusOK, w.Code)

	var prefixes []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prefixes))
	assert.Equal(t, []string{"ACCT", "BIOL"}, prefixes)
}

func TestCourseHandlerExport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockExport := &exportServiceMock{
		result: &service.ExportResult{Data: []byte("a,b\n"), ContentType: "text/csv", Filename: "course-catalog.csv"},
	}
	handler := NewCourseHandler(&catalogServiceMock{}, mockExport)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/courses/export?format=csv", nil)
	c.Request = req

	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "csv", mockExport.lastFormat)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "course-catalog.csv")
	assert.Equal(t, "a,b\n", w.Body.String())
}

func TestCourseHandlerExportDefaultsToCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockExport := &exportServiceMock{
		result: &service.ExportResult{Data: []byte{}, ContentType: "text/csv", Filename: "x.csv"},
	}
	handler := NewCourseHandler(&catalogServiceMock{}, mockExport)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/courses/export", nil)
	c.Request = req

	handler.Export(c)
	assert.Equal(t, service.FormatCSV, mockExport.lastFormat)
}

func TestCourseHandlerExportUnsupportedFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockExport := &exportServiceMock{err: appErrors.Clone(appErrors.ErrValidation, `unsupported export format "docx"`)}
	handler := NewCourseHandler(&catalogServiceMock{}, mockExport)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/courses/export?format=docx", nil)
	c.Request = req

	handler.Export(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
