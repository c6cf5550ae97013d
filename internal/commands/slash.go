package commands

import (
	"context"

	"github.com/preston-bernstein/team-roster-bot/internal/screens"
	"github.com/preston-bernstein/team-roster-bot/internal/views"
)

// Slash is a decoded application command.
type Slash struct {
	Name string
	// Sub is the subcommand, empty for top-level commands.
	Sub     string
	Options map[string]string
}

// Option names shared with command registration.
const (
	OptionName = "name"
	OptionTeam = "team"
)

// Slash answers an application command with a card.
func (h *Handler) Slash(ctx context.Context, cmd Slash) views.View {
	name := cmd.Options[OptionName]

	switch {
	case cmd.Name == "player" && cmd.Sub == "add":
		r := h.addPlayer(ctx, name)
		h.record("player add", r)
		if !r.ok {
			return views.Error(r.text)
		}
		return views.Render(screens.PlayerAdded{Player: r.key}, h.roster.Snapshot())
	case cmd.Name == "player" && cmd.Sub == "assign":
		r := h.assignPlayer(ctx, name, cmd.Options[OptionTeam])
		h.record("player assign", r)
		return views.Notice(r.text, views.ColorPlayer)
	case cmd.Name == "player" && cmd.Sub == "manage":
		doc := h.roster.Snapshot()
		if _, ok := doc.Player(name); !ok {
			return views.Error("Player not found: " + name)
		}
		h.metrics.RecordCommand("player manage", nil)
		return views.Render(screens.PlayerHome{Player: name}, doc)
	case cmd.Name == "player" && cmd.Sub == "list":
		h.metrics.RecordCommand("player list", nil)
		return views.PlayerList(h.roster.Snapshot(), 0)
	case cmd.Name == "team" && cmd.Sub == "add":
		r := h.addTeam(ctx, name)
		h.record("team add", r)
		if !r.ok {
			return views.Error(r.text)
		}
		return views.Success(r.text)
	case cmd.Name == "team" && cmd.Sub == "manage":
		doc := h.roster.Snapshot()
		h.metrics.RecordCommand("team manage", nil)
		if name == "" {
			return views.Render(screens.ManageTeamsHome{}, doc)
		}
		if _, ok := doc.Team(name); !ok {
			return views.Error("Team not found: " + name)
		}
		return views.Render(screens.TeamHome{Team: name}, doc)
	case cmd.Name == "teams":
		h.metrics.RecordCommand("teams", nil)
		return views.TeamsList(h.roster.Snapshot())
	}
	return views.Error("Unknown command.")
}
