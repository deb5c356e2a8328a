package report

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/mikey/llm-comms-surveillance/internal/core"
	"go.uber.org/zap"
)

// ConsoleReporter prints the surveillance report to a terminal. As an
// observer it emits one line per completed row; with the live table enabled
// it re-renders the full ranked table after every row instead, so the
// highest-priority findings are always at the top of the output.
type ConsoleReporter struct {
	mu        sync.Mutex
	out       io.Writer
	report    *core.Report
	liveTable bool
	logger    *zap.Logger
}

// NewConsoleReporter creates a new console reporter
func NewConsoleReporter(out io.Writer, report *core.Report, liveTable bool, logger *zap.Logger) *ConsoleReporter {
	return &ConsoleReporter{
		out:       out,
		report:    report,
		liveTable: liveTable,
		logger:    logger,
	}
}

// OnRowComplete renders progress for a freshly analyzed email
func (c *ConsoleReporter) OnRowComplete(row *core.ReportRow) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.liveTable {
		fmt.Fprintf(c.out, "\nAnalyzed %d message(s)\n", c.report.Len())
		c.renderRanked()
		return
	}

	marker := "ok"
	if row.NonCompliant {
		marker = "FLAG"
	}
	fmt.Fprintf(c.out, "[%s] P%d %-28s %s | %s\n",
		marker, row.Priority, truncate(row.Category, 28), truncate(row.From, 30), truncate(row.Subject, 50))
}

// PrintReport renders the final ranked table
func (c *ConsoleReporter) PrintReport() {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.out, "\nSurveillance report (%d message(s))\n", c.report.Len())
	c.renderRanked()
}

// renderRanked writes the ranked table. Callers hold the mutex.
func (c *ConsoleReporter) renderRanked() {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRIORITY\tFLAG\tCATEGORY\tFROM\tSUBJECT\tREASON")
	for _, row := range c.report.SortedRows() {
		flag := ""
		if row.NonCompliant {
			flag = "FLAG"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			row.Priority,
			flag,
			truncate(row.Category, 28),
			truncate(row.From, 30),
			truncate(row.Subject, 40),
			truncate(row.Reason, 60))
	}
	if err := w.Flush(); err != nil {
		c.logger.Error("Failed to render report table", zap.Error(err))
	}
}

// truncate caps a cell at max runes, never splitting a multibyte rune
func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
