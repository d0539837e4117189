package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Application ApplicationConfig `mapstructure:"application"`
	AI          AIConfig          `mapstructure:"ai"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

type ApplicationConfig struct {
	Name    string        `mapstructure:"name"`
	Host    string        `mapstructure:"host"`
	Port    int           `mapstructure:"port"`
	Storage StorageConfig `mapstructure:"storage"`
}

type StorageConfig struct {
	// Presentations is the root directory holding one subdirectory per
	// report id, each with a single .pptx inside.
	Presentations string `mapstructure:"presentations"`
}

type AIConfig struct {
	ActiveProvider string                      `mapstructure:"active_provider"`
	Template       string                      `mapstructure:"template"`
	MaxPromptChars int                         `mapstructure:"max_prompt_chars"`
	Providers      map[string]ProviderSettings `mapstructure:"providers"`
}

type ProviderSettings struct {
	Driver        string   `mapstructure:"driver"` // titan, azure, gemini
	Key           string   `mapstructure:"key"`
	Endpoint      string   `mapstructure:"endpoint"`
	Deployment    string   `mapstructure:"deployment"`
	Region        string   `mapstructure:"region"`
	Model         string   `mapstructure:"model"`
	Temperature   float64  `mapstructure:"temperature"`
	TopP          float64  `mapstructure:"top_p"`
	MaxTokens     int      `mapstructure:"max_tokens"`
	StopSequences []string `mapstructure:"stop_sequences"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Active resolves the configured provider. Unknown names are an error so a
// typo fails at startup instead of at the first summarization call.
func (c *AIConfig) Active() (string, ProviderSettings, error) {
	settings, ok := c.Providers[c.ActiveProvider]
	if !ok {
		return "", ProviderSettings{}, fmt.Errorf("unknown AI provider %q", c.ActiveProvider)
	}
	return c.ActiveProvider, settings, nil
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not found, using system environment variables")
	}

	viper.SetConfigFile("config.yaml") // Support optional config.yaml
	viper.AutomaticEnv()

	// Environment variable mappings
	mappings := []struct {
		key, env string
	}{
		{"application.host", "HOST"},
		{"application.port", "PORT"},
		{"application.storage.presentations", "STORAGE_PRESENTATIONS"},

		{"logging.level", "LOG_LEVEL"},

		{"ai.active_provider", "AI_PROVIDER"},
		{"ai.template", "AI_TEMPLATE"},
		{"ai.max_prompt_chars", "AI_MAX_PROMPT_CHARS"},

		// AI Providers
		{"ai.providers.titan.region", "AWS_REGION"},
		{"ai.providers.titan.model", "TITAN_MODEL"},
		{"ai.providers.titan.max_tokens", "TITAN_MAX_TOKENS"},
		{"ai.providers.azure.key", "AZURE_OPENAI_KEY"},
		{"ai.providers.azure.endpoint", "AZURE_OPENAI_ENDPOINT"},
		{"ai.providers.azure.deployment", "AZURE_OPENAI_DEPLOYMENT"},
		{"ai.providers.gemini.key", "GEMINI_KEY"},
		{"ai.providers.gemini.model", "GEMINI_MODEL"},
	}

	for _, m := range mappings {
		viper.BindEnv(m.key, m.env)
	}

	// Defaults
	viper.SetDefault("application.name", "slidesage")
	viper.SetDefault("application.storage.presentations", "presentations")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("ai.template", "report")
	viper.SetDefault("ai.max_prompt_chars", 3000)
	viper.SetDefault("ai.providers.titan.driver", "titan")
	viper.SetDefault("ai.providers.titan.region", "us-west-2")
	viper.SetDefault("ai.providers.titan.model", "amazon.titan-text-express-v1")
	viper.SetDefault("ai.providers.titan.max_tokens", 4096)
	viper.SetDefault("ai.providers.titan.temperature", 0.7)
	viper.SetDefault("ai.providers.titan.top_p", 1.0)
	viper.SetDefault("ai.providers.azure.driver", "azure")
	viper.SetDefault("ai.providers.azure.temperature", 0.7)
	viper.SetDefault("ai.providers.gemini.driver", "gemini")
	viper.SetDefault("ai.providers.gemini.model", "gemini-2.0-flash")
	viper.SetDefault("ai.providers.gemini.temperature", 0.7)
	viper.SetDefault("ai.providers.gemini.top_p", 1.0)
	viper.SetDefault("ai.providers.gemini.max_tokens", 2048)

	if err := viper.ReadInConfig(); err != nil {
		// Ignore if config.yaml is missing
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.AI.ActiveProvider == "" {
		cfg.AI.ActiveProvider = "titan"
	}

	return &cfg, nil
}
