package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mikey/llm-comms-surveillance/internal/adapters/source"
	"github.com/mikey/llm-comms-surveillance/internal/config"
	"github.com/mikey/llm-comms-surveillance/internal/core"
	"github.com/mikey/llm-comms-surveillance/internal/factory"
	"github.com/mikey/llm-comms-surveillance/internal/logging"
	"github.com/mikey/llm-comms-surveillance/internal/utils"
	"github.com/mikey/llm-comms-surveillance/internal/whitelist"
	"go.uber.org/zap"
)

var (
	// LLM provider flags
	provider    = flag.String("provider", "openai", "LLM provider (bedrock, gemini, openai)")
	maxTokens   = flag.Int("max-tokens", 1000, "Maximum tokens for LLM response")
	temperature = flag.Float64("temperature", 0.0, "Temperature for LLM generation")
	topP        = flag.Float64("top-p", 0.9, "Top-p for LLM generation")
	maxBodySize = flag.Int("max-body-size", 16384, "Maximum email body size to analyze")

	// Bedrock flags
	bedrockRegion  = flag.String("bedrock-region", "us-east-1", "AWS region for Bedrock")
	bedrockModelID = flag.String("bedrock-model", "anthropic.claude-v2", "Bedrock model ID")

	// Gemini flags
	geminiAPIKey    = flag.String("gemini-api-key", "", "API key for Google Gemini")
	geminiModelName = flag.String("gemini-model", "gemini-pro", "Gemini model name")

	// OpenAI flags
	openaiAPIKey    = flag.String("openai-api-key", "", "API key for OpenAI")
	openaiModelName = flag.String("openai-model", "gpt-4", "OpenAI model name")

	// Surveillance flags
	whitelistDomains = flag.String("whitelist", "", "Comma-separated list of whitelisted domains")

	// Input flags
	inputFile  = flag.String("file", "", "Input email file (use stdin if not specified)")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog    = flag.Bool("json-log", false, "Output logs in JSON format")
	configFile = flag.String("config", "", "Path to config file (overrides command line flags)")
)

func main() {
	flag.Parse()

	var cfg *config.Config
	var err error

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load configuration from file if specified
	if *configFile != "" {
		cfg, err = config.New()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
	} else {
		// Create config from command line flags
		cfg = createConfigFromFlags()
	}

	// Initialize LLM client
	llmFactory := factory.NewLLMFactory(cfg, logger)
	llmClient, err := llmFactory.CreateLLMClient()
	if err != nil {
		logger.Fatal("Failed to create LLM client", zap.Error(err))
	}

	// Parse whitelisted domains
	var whitelistedDomains []string
	if *whitelistDomains != "" {
		whitelistedDomains = strings.Split(*whitelistDomains, ",")
		for i, domain := range whitelistedDomains {
			whitelistedDomains[i] = strings.TrimSpace(domain)
		}
	} else {
		whitelistedDomains = cfg.GetStringSlice("surveillance.whitelisted_domains")
	}

	if len(whitelistedDomains) > 0 {
		logger.Info("Using whitelisted domains", zap.Strings("domains", whitelistedDomains))
	}

	// Create whitelist checker
	whitelistChecker := whitelist.NewChecker(whitelistedDomains, logger)

	// Read email from file or stdin
	var raw []byte
	if *inputFile != "" {
		raw, err = os.ReadFile(*inputFile)
		if err != nil {
			logger.Fatal("Failed to read input file", zap.Error(err), zap.String("file", *inputFile))
		}
		logger.Info("Reading email from file", zap.String("file", *inputFile))
	} else {
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			logger.Fatal("Failed to read stdin", zap.Error(err))
		}
		logger.Info("Reading email from stdin")
	}

	// Parse email
	textProcessor := utils.NewTextProcessor(logger)
	email, err := source.ParseRawMessage(raw, textProcessor, cfg.GetSource().MaxBodySize)
	if err != nil {
		logger.Fatal("Failed to parse email", zap.Error(err))
	}

	// Print email summary
	fmt.Printf("\n=== Email Summary ===\n")
	fmt.Printf("From: %s\n", email.From)
	fmt.Printf("To: %s\n", strings.Join(email.To, ", "))
	fmt.Printf("Subject: %s\n", email.Subject)
	fmt.Printf("Body length: %d bytes\n", len(email.Body))

	fmt.Printf("\n=== Analysis ===\n")
	fmt.Printf("Provider: %s\n", cfg.GetString("llm.provider"))
	fmt.Printf("Model: %s\n", cfg.ModelName())

	startTime := time.Now()
	risk := core.NewRiskTable(core.DefaultRiskWeights())

	// Check if sender domain is whitelisted
	if whitelistChecker.IsWhitelisted(email.From) {
		fmt.Printf("\n=== Results ===\n")
		fmt.Printf("Non-compliant: false (sender domain is whitelisted)\n")
		fmt.Printf("Category: Whitelisted\n")
		fmt.Printf("Priority: 0\n")
		fmt.Printf("Processing time: %v\n", time.Since(startTime))
		return
	}

	// Run the pipeline
	sentences := core.SegmentSentences(email.Body)
	prompt := core.BuildPrompt(email.Subject, email.Body, sentences)
	if *verbose {
		fmt.Printf("\n=== Prompt ===\n%s\n", prompt)
	}

	rawResponse, err := llmClient.Complete(context.Background(), prompt)
	if err != nil {
		logger.Fatal("Failed to analyze email", zap.Error(err))
	}
	duration := time.Since(startTime)

	analysis := core.NormalizeResponse(rawResponse)
	evidence := core.ResolveEvidence(analysis.EvidenceLineIDs, sentences)

	// Print results
	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Non-compliant: %t\n", analysis.IsNonCompliant)
	fmt.Printf("Category: %s\n", analysis.Category)
	fmt.Printf("Priority: %d\n", risk.Score(analysis))
	fmt.Printf("Reason: %s\n", analysis.Reason)
	for _, text := range evidence {
		fmt.Printf("Evidence: %s\n", text)
	}
	fmt.Printf("Processing time: %v\n", duration)

	// Close any resources that need closing
	if closer, ok := llmClient.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close LLM client", zap.Error(err))
		}
	}
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()

	// Set LLM provider
	v.Set("llm.provider", *provider)

	// Set provider-specific configuration
	switch *provider {
	case "bedrock":
		v.Set("bedrock.region", *bedrockRegion)
		v.Set("bedrock.model_id", *bedrockModelID)
		v.Set("bedrock.max_tokens", *maxTokens)
		v.Set("bedrock.temperature", *temperature)
		v.Set("bedrock.top_p", *topP)
	case "gemini":
		v.Set("gemini.api_key", *geminiAPIKey)
		v.Set("gemini.model_name", *geminiModelName)
		v.Set("gemini.max_tokens", *maxTokens)
		v.Set("gemini.temperature", *temperature)
		v.Set("gemini.top_p", *topP)
	case "openai":
		v.Set("openai.api_key", *openaiAPIKey)
		v.Set("openai.model_name", *openaiModelName)
		v.Set("openai.max_tokens", *maxTokens)
		v.Set("openai.temperature", *temperature)
		v.Set("openai.top_p", *topP)
	}

	// Set body size cap
	v.Set("source.max_body_size", *maxBodySize)

	// Set whitelisted domains
	if *whitelistDomains != "" {
		domains := strings.Split(*whitelistDomains, ",")
		for i, domain := range domains {
			domains[i] = strings.TrimSpace(domain)
		}
		v.Set("surveillance.whitelisted_domains", domains)
	} else {
		v.Set("surveillance.whitelisted_domains", []string{})
	}

	return config.NewFromViper(v)
}
