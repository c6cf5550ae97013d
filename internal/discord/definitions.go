package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/preston-bernstein/team-roster-bot/internal/commands"
)

func nameOption(description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        commands.OptionName,
		Description: description,
		Required:    required,
	}
}

func subcommand(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options:     options,
	}
}

// Definitions is the full slash command set.
func Definitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "player",
			Description: "Manage players",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("add", "Add a player", nameOption("Player tag", true)),
				subcommand("manage", "Show player details", nameOption("Player tag", true)),
				subcommand("assign", "Assign a player to a team",
					nameOption("Player tag", true),
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        commands.OptionTeam,
						Description: "Target team (optional)",
					},
				),
				subcommand("list", "List every player"),
			},
		},
		{
			Name:        "team",
			Description: "Manage teams",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("add", "Add a team", nameOption("Team name", true)),
				subcommand("manage", "Show team details", nameOption("Team name", false)),
			},
		},
		{
			Name:        "teams",
			Description: "List teams with points and players",
		},
	}
}
