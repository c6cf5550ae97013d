package logging

import "log/slog"

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService     = "service"
	FieldVersion     = "version"
	FieldRequestID   = "request_id"
	FieldPath        = "path"
	FieldMethod      = "method"
	FieldStatusCode  = "status_code"
	FieldDurationMS  = "duration_ms"
	FieldInteraction = "interaction_id"
	FieldKind        = "kind"
	FieldCustomID    = "custom_id"
	FieldCommand     = "command"
	FieldUser        = "user_id"
	FieldGuild       = "guild_id"
	FieldChannel     = "channel_id"
	FieldPlayers     = "players"
	FieldTeams       = "teams"
)

// WithCommon appends service/version fields when provided.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
