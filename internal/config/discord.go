package config

import "errors"

// ErrMissingToken is returned by Validate when no bot token is configured.
var ErrMissingToken = errors.New(envDiscordToken + " is required")

// DiscordConfig holds the bot credentials and command registration scope.
type DiscordConfig struct {
	Token         string
	ApplicationID string
	// GuildID scopes slash command registration; empty registers globally.
	GuildID string
}

func loadDiscord() DiscordConfig {
	return DiscordConfig{
		Token:         envOrDefault(envDiscordToken, ""),
		ApplicationID: envOrDefault(envDiscordAppID, ""),
		GuildID:       envOrDefault(envDiscordGuildID, ""),
	}
}

// Validate reports missing credentials needed to open a gateway session.
func (c DiscordConfig) Validate() error {
	if c.Token == "" {
		return ErrMissingToken
	}
	return nil
}
