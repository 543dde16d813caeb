package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/campus-ce/catalog-api/internal/dto"
	"github.com/campus-ce/catalog-api/internal/models"
	appErrors "github.com/campus-ce/catalog-api/pkg/errors"
	"github.com/campus-ce/catalog-api/pkg/export"
)

// Supported export formats.
const (
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

var exportHeaders = []string{"Course Code", "Course Name", "Prefix", "Delivery", "Days", "Time", "Dates", "Fees", "Hours"}

type catalogLister interface {
	ListCourses(ctx context.Context, filter models.CourseFilter) (*dto.CoursePage, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

type xlsxRenderer interface {
	Render(data export.Dataset, sheet string) ([]byte, error)
}

// ExportResult carries a rendered catalog document.
type ExportResult struct {
	Data        []byte
	ContentType string
	Filename    string
}

// ExportService flattens the visible catalog (one row per course and
// display group) and renders it in the requested format.
type ExportService struct {
	catalog catalogLister
	csv     csvRenderer
	pdf     pdfRenderer
	xlsx    xlsxRenderer
	logger  *zap.Logger
	maxPage int
}

// NewExportService constructs an ExportService.
func NewExportService(catalog catalogLister, csv csvRenderer, pdf pdfRenderer, xlsx xlsxRenderer, logger *zap.Logger, maxPage int) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxPage <= 0 {
		maxPage = 100
	}
	return &ExportService{catalog: catalog, csv: csv, pdf: pdf, xlsx: xlsx, logger: logger, maxPage: maxPage}
}

// Export renders the catalog visible under the given filter. It walks every
// page of the listing so the document matches exactly what a user paging
// through the UI would see.
func (s *ExportService) Export(ctx context.Context, filter models.CourseFilter, format string) (*ExportResult, error) {
	if format != FormatCSV && format != FormatPDF && format != FormatXLSX {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	dataset, err := s.buildDataset(ctx, filter)
	if err != nil {
		return nil, err
	}

	stamp := time.Now().UTC().Format("2006-01-02")
	var payload []byte
	var contentType string
	switch format {
	case FormatCSV:
		payload, err = s.csv.Render(*dataset)
		contentType = "text/csv"
	case FormatPDF:
		payload, err = s.pdf.Render(*dataset, "Course Catalog")
		contentType = "application/pdf"
	case FormatXLSX:
		payload, err = s.xlsx.Render(*dataset, "Courses")
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render catalog export")
	}

	s.logger.Info("catalog exported",
		zap.String("format", format),
		zap.Int("rows", len(dataset.Rows)),
	)

	return &ExportResult{
		Data:        payload,
		ContentType: contentType,
		Filename:    fmt.Sprintf("course-catalog-%s.%s", stamp, format),
	}, nil
}

func (s *ExportService) buildDataset(ctx context.Context, filter models.CourseFilter) (*export.Dataset, error) {
	filter.Page = 1
	filter.PageSize = s.maxPage

	dataset := &export.Dataset{Headers: exportHeaders}
	for {
		page, err := s.catalog.ListCourses(ctx, filter)
		if err != nil {
			return nil, err
		}
		for _, course := range page.Results {
			for _, group := range course.Groups {
				dataset.Rows = append(dataset.Rows, map[string]string{
					"Course Code": course.CourseCode,
					"Course Name": course.CourseName,
					"Prefix":      course.CoursePrefix,
					"Delivery":    deref(course.CourseDeliveryType),
					"Days":        group.Days,
					"Time":        group.Time,
					"Dates":       group.Dates,
					"Fees":        deref(course.Fees),
					"Hours":       deref(course.Hours),
				})
			}
		}
		if page.Next == nil {
			break
		}
		filter.Page++
	}
	return dataset, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
