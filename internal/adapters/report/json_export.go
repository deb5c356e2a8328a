package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mikey/llm-comms-surveillance/internal/core"
	"go.uber.org/zap"
)

// JSONExporter writes the ranked report to a JSON file
type JSONExporter struct {
	path   string
	logger *zap.Logger
}

// NewJSONExporter creates a new JSON report exporter
func NewJSONExporter(path string, logger *zap.Logger) *JSONExporter {
	return &JSONExporter{
		path:   path,
		logger: logger,
	}
}

// Path returns the export destination
func (e *JSONExporter) Path() string {
	return e.path
}

type jsonRow struct {
	From          string   `json:"from"`
	To            string   `json:"to"`
	Subject       string   `json:"subject"`
	NonCompliant  bool     `json:"non_compliant"`
	Category      string   `json:"category"`
	Priority      int      `json:"priority"`
	Reason        string   `json:"reason"`
	EvidenceTexts []string `json:"evidence"`
	AnalyzedAt    string   `json:"analyzed_at"`
	ModelUsed     string   `json:"model"`
}

type jsonReport struct {
	GeneratedAt    string         `json:"generated_at"`
	Rows           []jsonRow      `json:"rows"`
	CategoryCounts map[string]int `json:"category_counts"`
}

// Export writes the report ranked by descending priority
func (e *JSONExporter) Export(_ context.Context, report *core.Report) error {
	rows := report.SortedRows()
	doc := jsonReport{
		GeneratedAt:    time.Now().Format(time.RFC3339),
		Rows:           make([]jsonRow, 0, len(rows)),
		CategoryCounts: report.CategoryCounts(),
	}
	for _, row := range rows {
		evidence := row.EvidenceTexts
		if evidence == nil {
			evidence = []string{}
		}
		doc.Rows = append(doc.Rows, jsonRow{
			From:          row.From,
			To:            row.To,
			Subject:       row.Subject,
			NonCompliant:  row.NonCompliant,
			Category:      row.Category,
			Priority:      row.Priority,
			Reason:        row.Reason,
			EvidenceTexts: evidence,
			AnalyzedAt:    row.AnalyzedAt.Format(time.RFC3339),
			ModelUsed:     row.ModelUsed,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(e.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	e.logger.Info("Exported report",
		zap.String("format", "json"),
		zap.String("path", e.path),
		zap.Int("rows", len(rows)))
	return nil
}
