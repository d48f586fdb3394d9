package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr       string
	DBPath           string
	AssistantBackend string
	AnthropicAPIKey  string
	AnthropicModel   string
	LogLevel         string
	LogFile          string
}

func Load() *Config {
	// A .env file is optional; variables already in the environment win.
	_ = godotenv.Load()

	return &Config{
		ListenAddr:       getEnv("LISTEN_ADDR", ":8080"),
		DBPath:           getEnv("DB_PATH", "bartulos.db"),
		AssistantBackend: getEnv("ASSISTANT_BACKEND", "stub"),
		AnthropicAPIKey:  getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:   getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-5"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFile:          getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
