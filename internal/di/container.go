package di

import (
	"os"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/llm-comms-surveillance/internal/adapters/intake"
	"github.com/mikey/llm-comms-surveillance/internal/adapters/report"
	"github.com/mikey/llm-comms-surveillance/internal/config"
	"github.com/mikey/llm-comms-surveillance/internal/core"
	"github.com/mikey/llm-comms-surveillance/internal/factory"
	"github.com/mikey/llm-comms-surveillance/internal/logging"
	"github.com/mikey/llm-comms-surveillance/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewLLMFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewSourceFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewExportFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register LLM client
	if err := container.Provide(func(f *factory.LLMFactory) (core.LLMClient, error) {
		return f.CreateLLMClient()
	}); err != nil {
		return nil, err
	}

	// Register cache repository
	if err := container.Provide(func(f *factory.CacheFactory) (core.CacheRepository, error) {
		return f.CreateCacheRepository()
	}); err != nil {
		return nil, err
	}

	// Register cache TTL and enabled flag
	if err := container.Provide(func(f *factory.CacheFactory) (time.Duration, error) {
		return f.GetCacheTTL()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.CacheFactory) bool {
		return f.IsCacheEnabled()
	}); err != nil {
		return nil, err
	}

	// Register whitelisted domains
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) []string {
		whitelistedDomains := cfg.GetStringSlice("surveillance.whitelisted_domains")
		if len(whitelistedDomains) > 0 {
			logger.Info("Loaded whitelisted domains", zap.Strings("domains", whitelistedDomains))
		}
		return whitelistedDomains
	}); err != nil {
		return nil, err
	}

	// Register model display name
	if err := container.Provide(func(cfg *config.Config) string {
		return cfg.ModelName()
	}); err != nil {
		return nil, err
	}

	// Register risk weights and the live report
	if err := container.Provide(func() *core.RiskTable {
		return core.NewRiskTable(core.DefaultRiskWeights())
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(core.NewReport); err != nil {
		return nil, err
	}

	// Register surveillance service
	if err := container.Provide(core.NewSurveillanceService); err != nil {
		return nil, err
	}

	// Register email source
	if err := container.Provide(func(f *factory.SourceFactory) (core.EmailSource, error) {
		return f.CreateEmailSource()
	}); err != nil {
		return nil, err
	}

	// Register report exporters
	if err := container.Provide(func(f *factory.ExportFactory) []factory.Exporter {
		return f.CreateExporters()
	}); err != nil {
		return nil, err
	}

	// Register console reporter
	if err := container.Provide(func(cfg *config.Config, rep *core.Report, logger *zap.Logger) *report.ConsoleReporter {
		return report.NewConsoleReporter(os.Stdout, rep, cfg.GetReport().LiveTable, logger)
	}); err != nil {
		return nil, err
	}

	// Register SMTP intake
	if err := container.Provide(func(
		service *core.SurveillanceService,
		cfg *config.Config,
		logger *zap.Logger,
		textProcessor *utils.TextProcessor,
	) *intake.SMTPIntake {
		intakeConfig := cfg.GetIntake()
		return intake.NewSMTPIntake(
			service,
			logger,
			intakeConfig.ListenAddress,
			int64(intakeConfig.MaxMessageBytes),
			cfg.GetSource().MaxBodySize,
			textProcessor,
		)
	}); err != nil {
		return nil, err
	}

	return container, nil
}
