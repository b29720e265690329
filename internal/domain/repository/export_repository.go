package repository

import (
	"github.com/fleetwatch/cw-fleet/internal/domain/entity"
)

// ExportRepository persists run artifacts: alarm reports and widget images.
type ExportRepository interface {
	// WriteAlarmReportJSON writes the full record set to path in one write,
	// overwriting any prior file. Returns the absolute path written.
	WriteAlarmReportJSON(records []entity.AlarmRecord, path string) (string, error)

	ExportAlarmReportToCSV(records []entity.AlarmRecord, filename, outputDir string) (string, error)
	ExportAlarmReportToPDF(records []entity.AlarmRecord, filename, outputDir string) (string, error)

	// WriteMetricImage writes the image bytes under outputDir with a name
	// derived from the request. Returns the path written.
	WriteMetricImage(image []byte, req entity.WidgetRequest, outputDir string) (string, error)
}
