package factory

import (
	"fmt"

	"github.com/mikey/llm-comms-surveillance/internal/adapters/source"
	"github.com/mikey/llm-comms-surveillance/internal/config"
	"github.com/mikey/llm-comms-surveillance/internal/core"
	"github.com/mikey/llm-comms-surveillance/internal/utils"
	"go.uber.org/zap"
)

// SourceFactory creates email dataset sources based on configuration
type SourceFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewSourceFactory creates a new source factory
func NewSourceFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *SourceFactory {
	return &SourceFactory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateEmailSource creates an email source based on the configuration
func (f *SourceFactory) CreateEmailSource() (core.EmailSource, error) {
	srcConfig := f.cfg.GetSource()

	switch srcConfig.Type {
	case "csv":
		if srcConfig.CSVPath == "" {
			return nil, fmt.Errorf("source.csv_path is required for the csv source")
		}
		return source.NewCSVSource(srcConfig.CSVPath, srcConfig.MaxBodySize, f.logger, f.textProcessor), nil
	case "eml":
		if srcConfig.EMLPath == "" {
			return nil, fmt.Errorf("source.eml_path is required for the eml source")
		}
		return source.NewEMLSource(srcConfig.EMLPath, srcConfig.MaxBodySize, f.logger, f.textProcessor), nil
	default:
		return nil, fmt.Errorf("unsupported source type: %s", srcConfig.Type)
	}
}
