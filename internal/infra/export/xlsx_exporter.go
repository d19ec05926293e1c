// Package export renders catalog data into downloadable documents.
package export

import (
	"io"

	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/tealeg/xlsx"
)

const (
	sheetName       = "Services"
	timestampLayout = "2006-01-02 15:04:05"
)

var serviceHeaders = []string{
	"ID", "Name", "Description", "Price", "Duration", "ImageURL", "CategoryID", "Category", "CreatedAt", "UpdatedAt",
}

type xlsxExporter struct{}

// NewXLSXExporter creates the spreadsheet exporter used by the admin catalog download
func NewXLSXExporter() service.CatalogExporter {
	return &xlsxExporter{}
}

func (e *xlsxExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *xlsxExporter) FileName() string {
	return "services.xlsx"
}

// ExportServices writes one header row followed by one row per service
func (e *xlsxExporter) ExportServices(w io.Writer, services []*entity.Service) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return errors.Wrap(err, "failed to create sheet")
	}

	headerRow := sheet.AddRow()
	for _, h := range serviceHeaders {
		headerRow.AddCell().SetValue(h)
	}

	for _, s := range services {
		row := sheet.AddRow()

		row.AddCell().SetValue(s.ID)
		row.AddCell().SetValue(s.Name)
		row.AddCell().SetValue(s.Description)
		row.AddCell().SetFloat(s.Price.InexactFloat64())
		row.AddCell().SetValue(s.Duration)
		row.AddCell().SetValue(s.ImageURL)
		row.AddCell().SetValue(s.CategoryID)
		row.AddCell().SetValue(s.CategoryName)
		row.AddCell().SetValue(s.CreatedAt.Format(timestampLayout))
		row.AddCell().SetValue(s.UpdatedAt.Format(timestampLayout))
	}

	if err := file.Write(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}

	return nil
}
