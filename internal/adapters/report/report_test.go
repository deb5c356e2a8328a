package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/mikey/llm-comms-surveillance/internal/core"
	"go.uber.org/zap"
)

func buildTestReport() *core.Report {
	r := core.NewReport()
	r.Append(core.ReportRow{
		From:         "alice@corp.com",
		To:           "bob@corp.com",
		Subject:      "Lunch",
		NonCompliant: false,
		Category:     "Unknown",
		Priority:     0,
		Reason:       "No issues found",
		AnalyzedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		ModelUsed:    "gpt-4o-mini",
	})
	r.Append(core.ReportRow{
		From:          "carol@corp.com",
		To:            "dave@corp.com",
		Subject:       "Payment",
		NonCompliant:  true,
		Category:      "Market Bribery",
		Priority:      5,
		Reason:        "Offers money for a favor",
		EvidenceTexts: []string{"Wire the usual fee."},
		AnalyzedAt:    time.Date(2026, 8, 1, 12, 1, 0, 0, time.UTC),
		ModelUsed:     "gpt-4o-mini",
	})
	return r
}

func TestConsoleReporterRowLine(t *testing.T) {
	report := buildTestReport()
	var buf bytes.Buffer
	c := NewConsoleReporter(&buf, report, false, zap.NewNop())

	rows := report.Rows()
	c.OnRowComplete(&rows[1])

	out := buf.String()
	if !strings.Contains(out, "FLAG") {
		t.Errorf("non-compliant row not flagged: %q", out)
	}
	if !strings.Contains(out, "P5") {
		t.Errorf("priority missing: %q", out)
	}
}

func TestConsoleReporterRankedTable(t *testing.T) {
	report := buildTestReport()
	var buf bytes.Buffer
	c := NewConsoleReporter(&buf, report, false, zap.NewNop())
	c.PrintReport()

	out := buf.String()
	bribery := strings.Index(out, "Market Bribery")
	lunch := strings.Index(out, "Lunch")
	if bribery == -1 || lunch == -1 {
		t.Fatalf("rows missing from table: %q", out)
	}
	if bribery > lunch {
		t.Errorf("high priority row not ranked first: %q", out)
	}
}

func TestCSVExporterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	e := NewCSVExporter(path, zap.NewNop())
	if err := e.Export(context.Background(), buildTestReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open export: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d records", len(records))
	}
	if records[1][4] != "Market Bribery" || records[1][5] != "5" {
		t.Errorf("highest priority row not first: %v", records[1])
	}
	if records[1][7] != "Wire the usual fee." {
		t.Errorf("evidence not exported: %v", records[1])
	}
}

func TestJSONExporterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	e := NewJSONExporter(path, zap.NewNop())
	if err := e.Export(context.Background(), buildTestReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	var doc jsonReport
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("failed to parse export: %v", err)
	}
	if len(doc.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(doc.Rows))
	}
	if doc.Rows[0].Category != "Market Bribery" {
		t.Errorf("highest priority row not first: %+v", doc.Rows[0])
	}
	if doc.Rows[1].EvidenceTexts == nil {
		t.Error("empty evidence should serialize as an empty list")
	}
	if doc.CategoryCounts["Market Bribery"] != 1 {
		t.Errorf("unexpected category counts: %v", doc.CategoryCounts)
	}
}

func TestChartExporterEmptyReportSkips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	e := NewChartExporter(path, zap.NewNop())
	if err := e.Export(context.Background(), core.NewReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("chart file should not exist for an empty report")
	}
}

func TestChartExporterUniformCounts(t *testing.T) {
	// Every category holding the same count collapses the derived data
	// range; the explicit axis range must keep rendering valid. A
	// single-row report is the smallest such case.
	r := core.NewReport()
	r.Append(core.ReportRow{Category: "Secrecy", Priority: 4, NonCompliant: true})

	path := filepath.Join(t.TempDir(), "chart.png")
	e := NewChartExporter(path, zap.NewNop())
	if err := e.Export(context.Background(), r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("chart file missing: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Error("export is not a PNG file")
	}
}

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	in := strings.Repeat("é", 40)
	for max := 2; max <= 10; max++ {
		out := truncate(in, max)
		if !utf8.ValidString(out) {
			t.Fatalf("truncate(%d) produced invalid UTF-8: %q", max, out)
		}
	}
	if got := truncate(in, 10); got != strings.Repeat("é", 7)+"..." {
		t.Errorf("unexpected truncation: %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Errorf("short strings must pass through, got %q", got)
	}
}

func TestChartExporterWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	e := NewChartExporter(path, zap.NewNop())
	if err := e.Export(context.Background(), buildTestReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("chart file missing: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Error("export is not a PNG file")
	}
}
