package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the bot.
type Config struct {
	Discord         DiscordConfig
	DataPath        string
	HTTP            HTTPConfig
	ShutdownTimeout time.Duration
	Log             LogConfig
	Metrics         MetricsConfig
}

// HTTPConfig controls the ops server that exposes health and metrics.
type HTTPConfig struct {
	Enabled bool
	Port    string
}

// LogConfig mirrors logging.Config without importing it.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Discord:  loadDiscord(),
		DataPath: envOrDefault(envDataPath, defaultDataPath),
		HTTP: HTTPConfig{
			Enabled: boolEnvOrDefault(envHTTPEnabled, true),
			Port:    envOrDefault(envHTTPPort, defaultHTTPPort),
		},
		ShutdownTimeout: durationEnvOrDefault(envShutdown, defaultShutdownTimeout),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, "info"),
			Format: envOrDefault(envLogFormat, "text"),
		},
		Metrics: loadMetrics(),
	}
}

// LoadDotEnv populates the environment from .env files without overriding
// variables that are already set. Missing files are ignored.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}
