package config

// LLMConfig represents the configuration for the LLM provider
type LLMConfig struct {
	Provider string
}

// OpenAIConfig represents the configuration for OpenAI
type OpenAIConfig struct {
	APIKey      string
	ModelName   string
	MaxTokens   int
	Temperature float32
	TopP        float32
}

// GeminiConfig represents the configuration for Google Gemini
type GeminiConfig struct {
	APIKey      string
	ModelName   string
	MaxTokens   int
	Temperature float32
	TopP        float32
}

// BedrockConfig represents the configuration for Amazon Bedrock
type BedrockConfig struct {
	Region      string
	ModelID     string
	MaxTokens   int
	Temperature float32
	TopP        float32
}

// SourceConfig represents the configuration for the email dataset source
type SourceConfig struct {
	Type        string
	CSVPath     string
	EMLPath     string
	MaxBodySize int
}

// IntakeConfig represents the configuration for the live SMTP intake
type IntakeConfig struct {
	ListenAddress   string
	MaxMessageBytes int
}

// StorageConfig represents the configuration for artifact storage
type StorageConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// ReportConfig represents the configuration for report rendering and export
type ReportConfig struct {
	Console   bool
	LiveTable bool
	CSVPath   string
	JSONPath  string
	ChartPath string
}

// GetLLM returns the LLM configuration
func (c *Config) GetLLM() LLMConfig {
	return LLMConfig{
		Provider: c.GetString("llm.provider"),
	}
}

// GetOpenAI returns the OpenAI configuration
func (c *Config) GetOpenAI() OpenAIConfig {
	return OpenAIConfig{
		APIKey:      c.GetString("openai.api_key"),
		ModelName:   c.GetString("openai.model_name"),
		MaxTokens:   c.GetInt("openai.max_tokens"),
		Temperature: float32(c.GetFloat64("openai.temperature")),
		TopP:        float32(c.GetFloat64("openai.top_p")),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:      c.GetString("gemini.api_key"),
		ModelName:   c.GetString("gemini.model_name"),
		MaxTokens:   c.GetInt("gemini.max_tokens"),
		Temperature: float32(c.GetFloat64("gemini.temperature")),
		TopP:        float32(c.GetFloat64("gemini.top_p")),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:      c.GetString("bedrock.region"),
		ModelID:     c.GetString("bedrock.model_id"),
		MaxTokens:   c.GetInt("bedrock.max_tokens"),
		Temperature: float32(c.GetFloat64("bedrock.temperature")),
		TopP:        float32(c.GetFloat64("bedrock.top_p")),
	}
}

// GetSource returns the email source configuration
func (c *Config) GetSource() SourceConfig {
	return SourceConfig{
		Type:        c.GetString("source.type"),
		CSVPath:     c.GetString("source.csv_path"),
		EMLPath:     c.GetString("source.eml_path"),
		MaxBodySize: c.GetInt("source.max_body_size"),
	}
}

// GetIntake returns the live intake configuration
func (c *Config) GetIntake() IntakeConfig {
	return IntakeConfig{
		ListenAddress:   c.GetString("intake.listen_address"),
		MaxMessageBytes: c.GetInt("intake.max_message_bytes"),
	}
}

// GetStorage returns the artifact storage configuration
func (c *Config) GetStorage() StorageConfig {
	return StorageConfig{
		Enabled:   c.GetBool("storage.enabled"),
		Endpoint:  c.GetString("storage.endpoint"),
		Region:    c.GetString("storage.region"),
		Bucket:    c.GetString("storage.bucket"),
		AccessKey: c.GetString("storage.access_key"),
		SecretKey: c.GetString("storage.secret_key"),
		UseSSL:    c.GetBool("storage.use_ssl"),
	}
}

// GetReport returns the report configuration
func (c *Config) GetReport() ReportConfig {
	return ReportConfig{
		Console:   c.GetBool("report.console"),
		LiveTable: c.GetBool("report.live_table"),
		CSVPath:   c.GetString("report.csv_path"),
		JSONPath:  c.GetString("report.json_path"),
		ChartPath: c.GetString("report.chart_path"),
	}
}

// ModelName returns the display name of the configured model
func (c *Config) ModelName() string {
	switch c.GetString("llm.provider") {
	case "gemini":
		return c.GetString("gemini.model_name")
	case "bedrock":
		return c.GetString("bedrock.model_id")
	default:
		return c.GetString("openai.model_name")
	}
}
