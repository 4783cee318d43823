package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port string `mapstructure:"port"`

	MongoURI      string `mapstructure:"MONGODB_URI"`
	MongoDatabase string `mapstructure:"mongo_database"`

	Storage StorageConfig `mapstructure:"storage"`
	AI      AIConfig      `mapstructure:"ai"`

	JWTSecret string `mapstructure:"JWT_SECRET"`
}

type StorageConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"MINIO_ACCESS_KEY"`
	SecretKey string `mapstructure:"MINIO_SECRET_KEY"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	Bucket    string `mapstructure:"bucket"`
}

type AIConfig struct {
	// Provider selects the answer backend: "openai" (any OpenAI-compatible
	// endpoint, Groq included) or "gemini".
	Provider string `mapstructure:"provider"`
	Endpoint string `mapstructure:"endpoint"`
	Model    string `mapstructure:"model"`
	APIKey   string `mapstructure:"GROQ_API_KEY"`
	// GeminiAPIKeys are rotated when a call fails.
	GeminiAPIKeys []string `mapstructure:"GEMINI_API_KEYS"`
	// TimeoutSeconds bounds a single completion call. The upstream default
	// is no timeout at all, which is not acceptable for a request handler.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	// MaxCorpusChars is the prompt truncation limit in runes.
	MaxCorpusChars int `mapstructure:"max_corpus_chars"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.BindEnv("MONGODB_URI")
	v.BindEnv("ai.GROQ_API_KEY", "GROQ_API_KEY")
	v.BindEnv("ai.GEMINI_API_KEYS", "GEMINI_API_KEYS")
	v.BindEnv("storage.MINIO_ACCESS_KEY", "MINIO_ACCESS_KEY")
	v.BindEnv("storage.MINIO_SECRET_KEY", "MINIO_SECRET_KEY")
	v.BindEnv("JWT_SECRET")

	v.SetDefault("port", "8080")
	v.SetDefault("mongo_database", "pdfchat")
	v.SetDefault("ai.provider", "openai")
	v.SetDefault("ai.endpoint", "https://api.groq.com/openai/v1")
	v.SetDefault("ai.model", "llama3-8b-8192")
	v.SetDefault("ai.timeout_seconds", 60)
	v.SetDefault("ai.max_corpus_chars", 4000)
	v.SetDefault("storage.bucket", "uploads")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
