package views

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/team-roster-bot/internal/domain"
	"github.com/preston-bernstein/team-roster-bot/internal/domain/players"
	"github.com/preston-bernstein/team-roster-bot/internal/domain/teams"
)

// FormatPlayer is the plain-text player summary used by text commands.
func FormatPlayer(p players.Player) string {
	team := "(unassigned)"
	if p.Assigned() {
		team = p.Team
	}
	return strings.Join([]string{
		"Tag: " + p.Tag,
		"Team: " + team,
		"Top Player: " + lowerYesNo(p.TopPlayer),
		"Captain: " + lowerYesNo(p.Captain),
	}, "\n")
}

// FormatTeam is the plain-text team summary used by text commands.
func FormatTeam(t teams.Team, doc domain.Document) string {
	members := doc.Members(t.Name)
	return strings.Join([]string{
		"Team: " + t.Name,
		"Players: " + tags(members, "(none)"),
		"Captains: " + tags(captains(members), "(none)"),
		fmt.Sprintf("Points: %d", t.Points),
	}, "\n")
}

// FormatTeamList lists every team with its points.
func FormatTeamList(doc domain.Document) string {
	all := doc.SortedTeams()
	if len(all) == 0 {
		return "No teams yet."
	}
	lines := make([]string, len(all))
	for i, t := range all {
		lines[i] = fmt.Sprintf("%s — %d pts", t.Name, t.Points)
	}
	return strings.Join(lines, "\n")
}

func lowerYesNo(b bool) string {
	return strings.ToLower(yesNo(b))
}
