package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mikey/llm-comms-surveillance/internal/adapters/intake"
	"github.com/mikey/llm-comms-surveillance/internal/adapters/report"
	"github.com/mikey/llm-comms-surveillance/internal/adapters/storage"
	"github.com/mikey/llm-comms-surveillance/internal/config"
	"github.com/mikey/llm-comms-surveillance/internal/core"
	"github.com/mikey/llm-comms-surveillance/internal/di"
	"github.com/mikey/llm-comms-surveillance/internal/factory"
	"go.uber.org/zap"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Pick the run mode from configuration
	var mode string
	if err := container.Invoke(func(cfg *config.Config) {
		mode = cfg.GetString("mode")
	}); err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	switch mode {
	case "intake":
		err = container.Invoke(runIntake)
	case "batch":
		err = container.Invoke(runBatch)
	default:
		err = fmt.Errorf("unsupported mode: %s", mode)
	}
	if err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// runBatch analyzes the configured dataset and renders the ranked report
func runBatch(
	logger *zap.Logger,
	cfg *config.Config,
	service *core.SurveillanceService,
	source core.EmailSource,
	consoleReporter *report.ConsoleReporter,
	exporters []factory.Exporter,
	llmClient core.LLMClient,
	cacheRepo core.CacheRepository,
) error {
	defer logger.Sync()
	defer closeResources(logger, llmClient, cacheRepo)

	reportConfig := cfg.GetReport()
	if reportConfig.Console {
		service.AddObserver(consoleReporter)
	}

	// Cancel the batch on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := service.Run(ctx, source, cfg.GetBool("batch.continue_on_error")); err != nil {
		return err
	}

	if reportConfig.Console {
		consoleReporter.PrintReport()
	}

	return exportReport(logger, cfg, service.Report(), exporters)
}

// runIntake analyzes live messages until interrupted, then exports
func runIntake(
	logger *zap.Logger,
	cfg *config.Config,
	service *core.SurveillanceService,
	smtpIntake *intake.SMTPIntake,
	consoleReporter *report.ConsoleReporter,
	exporters []factory.Exporter,
	llmClient core.LLMClient,
	cacheRepo core.CacheRepository,
) error {
	defer logger.Sync()
	defer closeResources(logger, llmClient, cacheRepo)

	reportConfig := cfg.GetReport()
	if reportConfig.Console {
		service.AddObserver(consoleReporter)
	}

	if err := smtpIntake.Start(); err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("Shutting down...")

	if err := smtpIntake.Stop(); err != nil {
		logger.Error("Failed to stop SMTP intake", zap.Error(err))
	}

	if reportConfig.Console {
		consoleReporter.PrintReport()
	}

	return exportReport(logger, cfg, service.Report(), exporters)
}

// exportReport runs every configured exporter and uploads the artifacts when
// object storage is enabled
func exportReport(logger *zap.Logger, cfg *config.Config, rep *core.Report, exporters []factory.Exporter) error {
	if len(exporters) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var exported []string
	for _, exporter := range exporters {
		if err := exporter.Export(ctx, rep); err != nil {
			logger.Error("Failed to export report",
				zap.Error(err),
				zap.String("path", exporter.Path()))
			continue
		}
		exported = append(exported, exporter.Path())
	}

	storageConfig := cfg.GetStorage()
	if !storageConfig.Enabled || len(exported) == 0 {
		return nil
	}

	store, err := storage.NewArtifactStore(ctx,
		storageConfig.Endpoint,
		storageConfig.Region,
		storageConfig.Bucket,
		storageConfig.AccessKey,
		storageConfig.SecretKey,
		storageConfig.UseSSL,
		logger)
	if err != nil {
		logger.Error("Failed to connect to artifact storage", zap.Error(err))
		return nil
	}

	prefix := time.Now().UTC().Format("2006-01-02T15-04-05Z")
	for _, path := range exported {
		key := fmt.Sprintf("%s/%s", prefix, filepath.Base(path))
		if _, err := store.Upload(ctx, path, key); err != nil {
			logger.Error("Failed to upload artifact",
				zap.Error(err),
				zap.String("path", path))
		}
	}
	return nil
}

// closeResources closes the LLM client and stops the cache if they support it
func closeResources(logger *zap.Logger, llmClient core.LLMClient, cacheRepo core.CacheRepository) {
	if closer, ok := llmClient.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close LLM client", zap.Error(err))
		}
	}
	if stopper, ok := cacheRepo.(interface{ Stop() }); ok {
		stopper.Stop()
	}
}
