package service

import (
	"io"

	"servicehub/internal/domain/entity"
)

// CatalogExporter writes the catalog as a spreadsheet document.
type CatalogExporter interface {
	ContentType() string
	FileName() string
	ExportServices(w io.Writer, services []*entity.Service) error
}
