package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mikey/llm-comms-surveillance/internal/core"
	"go.uber.org/zap"
)

// CSVExporter writes the ranked report to a CSV file
type CSVExporter struct {
	path   string
	logger *zap.Logger
}

// NewCSVExporter creates a new CSV report exporter
func NewCSVExporter(path string, logger *zap.Logger) *CSVExporter {
	return &CSVExporter{
		path:   path,
		logger: logger,
	}
}

// Path returns the export destination
func (e *CSVExporter) Path() string {
	return e.path
}

// Export writes the report ranked by descending priority
func (e *CSVExporter) Export(_ context.Context, report *core.Report) error {
	f, err := os.Create(e.path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"From", "To", "Subject", "Non-Compliant", "Category",
		"Priority", "Reason", "Evidence", "Analyzed At", "Model",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	rows := report.SortedRows()
	for _, row := range rows {
		record := []string{
			row.From,
			row.To,
			row.Subject,
			strconv.FormatBool(row.NonCompliant),
			row.Category,
			strconv.Itoa(row.Priority),
			row.Reason,
			strings.Join(row.EvidenceTexts, " | "),
			row.AnalyzedAt.Format(time.RFC3339),
			row.ModelUsed,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write export record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}

	e.logger.Info("Exported report",
		zap.String("format", "csv"),
		zap.String("path", e.path),
		zap.Int("rows", len(rows)))
	return nil
}
