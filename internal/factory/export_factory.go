package factory

import (
	"github.com/mikey/llm-comms-surveillance/internal/adapters/report"
	"github.com/mikey/llm-comms-surveillance/internal/config"
	"github.com/mikey/llm-comms-surveillance/internal/core"
	"go.uber.org/zap"
)

// Exporter pairs a report exporter with its output path, so artifacts can be
// uploaded after a successful export.
type Exporter interface {
	core.ReportExporter
	Path() string
}

// ExportFactory creates report exporters based on configuration
type ExportFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewExportFactory creates a new export factory
func NewExportFactory(cfg *config.Config, logger *zap.Logger) *ExportFactory {
	return &ExportFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateExporters creates one exporter per configured export path
func (f *ExportFactory) CreateExporters() []Exporter {
	reportConfig := f.cfg.GetReport()

	var exporters []Exporter
	if reportConfig.CSVPath != "" {
		exporters = append(exporters, report.NewCSVExporter(reportConfig.CSVPath, f.logger))
	}
	if reportConfig.JSONPath != "" {
		exporters = append(exporters, report.NewJSONExporter(reportConfig.JSONPath, f.logger))
	}
	if reportConfig.ChartPath != "" {
		exporters = append(exporters, report.NewChartExporter(reportConfig.ChartPath, f.logger))
	}
	return exporters
}
