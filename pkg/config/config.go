package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM provider configuration"`

	Pipeline PipelineConfig `yaml:"pipeline" json:"pipeline" jsonschema:"description=Processing pipeline configuration"`

	Cleaner CleanerConfig `yaml:"cleaner" json:"cleaner" jsonschema:"description=Text cleaner configuration"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Full-text extraction configuration"`

	Feeds []Feed `yaml:"feeds" json:"feeds" jsonschema:"description=Travel blog feeds used as a data source"`
}

// LLMConfig holds LLM provider settings, read once per provider instance
type LLMConfig struct {
	Provider    string        `yaml:"provider" json:"provider" jsonschema:"default=openai,description=Provider name for status reporting"`
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. doubao-seed-1.6-flash or gpt-4o-mini)"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,minimum=0,maximum=2,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=2000,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
	MaxRetries  int           `yaml:"max_retries" json:"max_retries" jsonschema:"default=3,description=Maximum attempts for transient failures"`
	RetryDelay  time.Duration `yaml:"retry_delay" json:"retry_delay" jsonschema:"default=2s,description=Initial backoff delay between retries"`
}

// PipelineConfig holds orchestration settings
type PipelineConfig struct {
	Concurrency int `yaml:"concurrency" json:"concurrency" jsonschema:"default=3,minimum=1,description=Maximum concurrent in-flight LLM calls"`
}

// CleanerConfig holds text cleaning settings. RemoveEmoji and RemoveAds
// default to on, use explicit false to disable.
type CleanerConfig struct {
	RemoveEmoji    *bool `yaml:"remove_emoji" json:"remove_emoji" jsonschema:"default=true,description=Strip emoji and pictographs"`
	RemoveAds      *bool `yaml:"remove_ads" json:"remove_ads" jsonschema:"default=true,description=Strip advertisement markers"`
	RemoveHashtags bool  `yaml:"remove_hashtags" json:"remove_hashtags" jsonschema:"default=false,description=Strip hashtag and bracketed emoji tokens"`
	MinLength      int   `yaml:"min_length" json:"min_length" jsonschema:"default=10,description=Minimum meaningful length after cleaning"`
}

// ExtractionConfig holds full-text extraction settings for note detail pages
type ExtractionConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable full-text extraction for note details"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per page"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Notescope/1.0,description=User agent for HTTP requests"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum text length to consider valid"`
}

// Feed describes one travel blog feed used by the feed data source
type Feed struct {
	Name string `yaml:"name" json:"name" jsonschema:"description=Human-readable feed name"`
	URL  string `yaml:"url" json:"url" jsonschema:"required,description=RSS/Atom feed URL"`
	City string `yaml:"city" json:"city" jsonschema:"description=Default city for notes from this feed"`
}

// Load reads configuration from a YAML file, expanding environment variables
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// setDefaults fills unset fields with their defaults
func setDefaults(cfg *Config) {
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "openai"
	}
	if cfg.LLM.Endpoint == "" {
		cfg.LLM.Endpoint = "https://ark.cn-beijing.volces.com/api/v3"
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "doubao-seed-1.6-flash"
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.3
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 2000
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 60 * time.Second
	}
	if cfg.LLM.MaxRetries == 0 {
		cfg.LLM.MaxRetries = 3
	}
	if cfg.LLM.RetryDelay == 0 {
		cfg.LLM.RetryDelay = 2 * time.Second
	}

	if cfg.Pipeline.Concurrency == 0 {
		cfg.Pipeline.Concurrency = 3
	}

	if cfg.Cleaner.RemoveEmoji == nil {
		on := true
		cfg.Cleaner.RemoveEmoji = &on
	}
	if cfg.Cleaner.RemoveAds == nil {
		on := true
		cfg.Cleaner.RemoveAds = &on
	}
	if cfg.Cleaner.MinLength == 0 {
		cfg.Cleaner.MinLength = 10
	}

	if cfg.Extraction.Timeout == 0 {
		cfg.Extraction.Timeout = 30 * time.Second
	}
	if cfg.Extraction.UserAgent == "" {
		cfg.Extraction.UserAgent = "Notescope/1.0"
	}
	if cfg.Extraction.MinTextLength == 0 {
		cfg.Extraction.MinTextLength = 100
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.LLM.Endpoint == "" {
		return fmt.Errorf("llm.endpoint is required")
	}
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.LLM.MaxRetries < 1 {
		return fmt.Errorf("llm.max_retries must be at least 1")
	}

	if cfg.Pipeline.Concurrency < 1 {
		return fmt.Errorf("pipeline.concurrency must be at least 1")
	}

	if cfg.Cleaner.MinLength < 0 {
		return fmt.Errorf("cleaner.min_length must be non-negative")
	}

	if cfg.Extraction.Enabled {
		if cfg.Extraction.Timeout < time.Second {
			return fmt.Errorf("extraction timeout must be at least 1 second")
		}
		if cfg.Extraction.MinTextLength < 0 {
			return fmt.Errorf("extraction min_text_length must be non-negative")
		}
	}

	for i, f := range cfg.Feeds {
		if f.URL == "" {
			return fmt.Errorf("feeds[%d].url is required", i)
		}
	}

	return nil
}
