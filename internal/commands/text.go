package commands

import (
	"context"
	"strings"

	"github.com/preston-bernstein/team-roster-bot/internal/views"
)

// Prefixes mark a chat message as a command.
var Prefixes = []string{"!", "/"}

// Command is a parsed text command: `<prefix><root> <action> <args...>`.
type Command struct {
	Root   string
	Action string
	Args   []string
}

// Parse splits content into a command. ok is false when content carries no
// prefix or nothing after it.
func Parse(content string) (cmd Command, ok bool) {
	trimmed := strings.TrimSpace(content)
	var raw string
	found := false
	for _, p := range Prefixes {
		if rest, cut := strings.CutPrefix(trimmed, p); cut {
			raw, found = strings.TrimSpace(rest), true
			break
		}
	}
	if !found || raw == "" {
		return Command{}, false
	}

	tokens := strings.Fields(raw)
	cmd.Root = strings.ToLower(tokens[0])
	if len(tokens) > 1 {
		cmd.Action = strings.ToLower(tokens[1])
	}
	if len(tokens) > 2 {
		cmd.Args = tokens[2:]
	}
	return cmd, true
}

// Rest joins the arguments back into one name.
func (c Command) Rest() string {
	return strings.Join(c.Args, " ")
}

// Text answers a chat message. ok is false when the message is not a command.
func (h *Handler) Text(ctx context.Context, content string) (reply string, ok bool) {
	cmd, ok := Parse(content)
	if !ok {
		return "", false
	}

	switch {
	case cmd.Root == "player":
		return h.playerText(ctx, cmd), true
	case cmd.Root == "teams" && cmd.Action == "":
		h.metrics.RecordCommand("teams", nil)
		return views.FormatTeamList(h.roster.Snapshot()), true
	case cmd.Root == "team" || cmd.Root == "teams":
		return h.teamText(ctx, cmd), true
	}
	return "Unknown command.", true
}

func (h *Handler) playerText(ctx context.Context, cmd Command) string {
	switch cmd.Action {
	case "add":
		r := h.addPlayer(ctx, cmd.Rest())
		h.record("player add", r)
		return r.text
	case "assign":
		var name, team string
		if len(cmd.Args) > 0 {
			name, team = cmd.Args[0], strings.Join(cmd.Args[1:], " ")
		}
		r := h.assignPlayer(ctx, name, team)
		h.record("player assign", r)
		return r.text
	case "manage":
		name := strings.TrimSpace(cmd.Rest())
		if name == "" {
			return "Usage: /player manage [playerName]"
		}
		p, found := h.roster.Snapshot().Player(name)
		if !found {
			return "Player not found: " + name
		}
		h.metrics.RecordCommand("player manage", nil)
		return views.FormatPlayer(p)
	}
	return "Unknown /player command. Try: add, manage"
}

func (h *Handler) teamText(ctx context.Context, cmd Command) string {
	switch cmd.Action {
	case "add":
		r := h.addTeam(ctx, cmd.Rest())
		h.record("team add", r)
		return r.text
	case "manage":
		name := strings.TrimSpace(cmd.Rest())
		if name == "" {
			return "Usage: /team manage [teamName]"
		}
		doc := h.roster.Snapshot()
		t, found := doc.Team(name)
		if !found {
			return "Team not found: " + name
		}
		h.metrics.RecordCommand("team manage", nil)
		return views.FormatTeam(t, doc)
	}
	return "Unknown /team command. Try: add, manage"
}
