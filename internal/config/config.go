package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries everything the binaries need. All environment access
// happens in Load; nothing below the main packages reads the process
// environment.
type Config struct {
	DatabaseURL     string
	RedisURL        string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	FinnhubAPIKey   string
	FrontendURL     string

	// LLMProvider selects the summarization backend: "openai" or "anthropic".
	LLMProvider string

	// TokenizerModel names the model family whose tiktoken encoding is
	// used for all budget comparisons.
	TokenizerModel string

	// BatchTokenLimit and MaxTokens override the batcher defaults when
	// positive; zero keeps the built-in limits.
	BatchTokenLimit int
	MaxTokens       int

	LLMTimeout time.Duration

	// SkipExisting makes the summarizer a no-op for dates that already
	// have a summary row instead of writing a duplicate.
	SkipExisting bool

	CrawlLimit int
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		FinnhubAPIKey:   os.Getenv("FINNHUB_API_KEY"),
		FrontendURL:     os.Getenv("FRONTEND_URL"),
		LLMProvider:     getEnv("LLM_PROVIDER", "openai"),
		TokenizerModel:  getEnv("TOKENIZER_MODEL", "gpt-4"),
		BatchTokenLimit: getEnvInt("BATCH_TOKEN_LIMIT", 0),
		MaxTokens:       getEnvInt("MAX_TOKENS", 0),
		LLMTimeout:      getEnvDuration("LLM_TIMEOUT", 2*time.Minute),
		SkipExisting:    getEnvBool("SKIP_EXISTING_SUMMARY", false),
		CrawlLimit:      getEnvInt("CRAWL_LIMIT", 30),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	return cfg, nil
}

func getEnv(name, defaultValue string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(name string, defaultValue int) int {
	v := os.Getenv(name)
	if v == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvBool(name string, defaultValue bool) bool {
	v := os.Getenv(name)
	if v == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvDuration(name string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue
	}
	return parsed
}
