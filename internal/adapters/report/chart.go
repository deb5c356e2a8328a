package report

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/mikey/llm-comms-surveillance/internal/core"
	"github.com/wcharczuk/go-chart/v2"
	"go.uber.org/zap"
)

// ChartExporter renders the per-category finding counts as a PNG bar chart
type ChartExporter struct {
	path   string
	logger *zap.Logger
}

// NewChartExporter creates a new category chart exporter
func NewChartExporter(path string, logger *zap.Logger) *ChartExporter {
	return &ChartExporter{
		path:   path,
		logger: logger,
	}
}

// Path returns the export destination
func (e *ChartExporter) Path() string {
	return e.path
}

// Export renders the category distribution chart. Categories are ordered by
// descending count so the dominant risk is the leftmost bar.
func (e *ChartExporter) Export(_ context.Context, report *core.Report) error {
	counts := report.CategoryCounts()
	if len(counts) == 0 {
		e.logger.Info("Skipping chart export, report is empty",
			zap.String("path", e.path))
		return nil
	}

	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		if counts[categories[i]] != counts[categories[j]] {
			return counts[categories[i]] > counts[categories[j]]
		}
		return categories[i] < categories[j]
	})

	bars := make([]chart.Value, 0, len(categories))
	maxCount := 0
	for _, category := range categories {
		bars = append(bars, chart.Value{
			Label: truncate(category, 24),
			Value: float64(counts[category]),
		})
		if counts[category] > maxCount {
			maxCount = counts[category]
		}
	}

	graph := chart.BarChart{
		Title:    "Findings by category",
		Width:    1024,
		Height:   512,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 40,
			},
		},
		// An explicit range keeps rendering valid when every bar has the
		// same height, where the derived range would collapse to zero.
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount)},
		},
		Bars: bars,
	}

	f, err := os.Create(e.path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	e.logger.Info("Exported category chart",
		zap.String("path", e.path),
		zap.Int("categories", len(bars)))
	return nil
}
