package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-ce/catalog-api/internal/dto"
	"github.com/campus-ce/catalog-api/internal/models"
	appErrors "github.com/campus-ce/catalog-api/pkg/errors"
	"github.com/campus-ce/catalog-api/pkg/export"
)

type catalogListerMock struct {
	pages []dto.CoursePage
	calls int
}

func (m *catalogListerMock) ListCourses(ctx context.Context, filter models.CourseFilter) (*dto.CoursePage, error) {
	page := m.pages[m.calls]
	m.calls++
	return &page, nil
}

func exportPage(next *string) dto.CoursePage {
	return dto.CoursePage{
		Count: 2,
		Next:  next,
		Results: []dto.CourseResult{
			{
				CourseCode:   "ACCT 101",
				CourseName:   "Intro Accounting",
				CoursePrefix: "ACCT",
				Groups: []dto.ScheduleGroup{
					{Days: "Mon & Wed", Time: "18:00–20:00", Dates: "Jan 15–Apr 15"},
				},
			},
		},
	}
}

func newTestExportService(lister catalogLister) *ExportService {
	return NewExportService(lister, export.NewCSVExporter(), export.NewPDFExporter(), export.NewXLSXExporter(), nil, 100)
}

func TestExportCSVWalksAllPages(t *testing.T) {
	next := "/api/v1/courses/?page=2"
	lister := &catalogListerMock{pages: []dto.CoursePage{exportPage(&next), exportPage(nil)}}
	svc := newTestExportService(lister)

	result, err := svc.Export(context.Background(), models.CourseFilter{}, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, 2, lister.calls)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Contains(t, result.Filename, ".csv")

	records, err := csv.NewReader(bytes.NewReader(result.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header plus one row per page
	assert.Equal(t, exportHeaders, records[0])
	assert.Equal(t, "ACCT 101", records[1][0])
	assert.Equal(t, "Mon & Wed", records[1][4])
}

func TestExportOneRowPerGroup(t *testing.T) {
	page := exportPage(nil)
	page.Results[0].Groups = append(page.Results[0].Groups, dto.ScheduleGroup{Days: "Sat", Time: "Time TBD", Dates: "May 1–May 1"})
	lister := &catalogListerMock{pages: []dto.CoursePage{page}}
	svc := newTestExportService(lister)

	result, err := svc.Export(context.Background(), models.CourseFilter{}, FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(result.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Time TBD", records[2][5])
}

func TestExportPDF(t *testing.T) {
	lister := &catalogListerMock{pages: []dto.CoursePage{exportPage(nil)}}
	svc := newTestExportService(lister)

	result, err := svc.Export(context.Background(), models.CourseFilter{}, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, bytes.HasPrefix(result.Data, []byte("%PDF")))
}

func TestExportXLSX(t *testing.T) {
	lister := &catalogListerMock{pages: []dto.CoursePage{exportPage(nil)}}
	svc := newTestExportService(lister)

	result, err := svc.Export(context.Background(), models.CourseFilter{}, FormatXLSX)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Data)
	assert.Contains(t, result.Filename, ".xlsx")
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc := newTestExportService(&catalogListerMock{})

	_, err := svc.Export(context.Background(), models.CourseFilter{}, "docx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
