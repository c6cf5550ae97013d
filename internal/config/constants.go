package config

import "time"

const (
	envDiscordToken   = "DISCORD_BOT_TOKEN"
	envDiscordAppID   = "DISCORD_APPLICATION_ID"
	envDiscordGuildID = "DISCORD_GUILD_ID"
	envDataPath       = "DATA_PATH"
	envHTTPEnabled    = "HTTP_ENABLED"
	envHTTPPort       = "PORT"
	envShutdown       = "SHUTDOWN_TIMEOUT"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultDataPath        = "data/data.json"
	defaultHTTPPort        = "8080"
	defaultShutdownTimeout = 10 * time.Second
	defaultServiceName     = "team-roster-bot"
)
