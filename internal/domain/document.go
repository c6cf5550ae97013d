package domain

import (
	"sort"
	"strings"

	"github.com/preston-bernstein/team-roster-bot/internal/domain/players"
	"github.com/preston-bernstein/team-roster-bot/internal/domain/teams"
)

// Document is the whole persisted roster state. Both maps are keyed by
// NormalizeName of the entity's display name.
type Document struct {
	Players map[string]players.Player `json:"players"`
	Teams   map[string]teams.Team     `json:"teams"`
}

// NewDocument returns an empty document with initialized maps.
func NewDocument() Document {
	return Document{
		Players: make(map[string]players.Player),
		Teams:   make(map[string]teams.Team),
	}
}

// NormalizeName trims surrounding whitespace and lower-cases the result.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Clone returns a deep copy; entries are plain values so copying the maps is enough.
func (d Document) Clone() Document {
	out := Document{
		Players: make(map[string]players.Player, len(d.Players)),
		Teams:   make(map[string]teams.Team, len(d.Teams)),
	}
	for k, p := range d.Players {
		out.Players[k] = p
	}
	for k, t := range d.Teams {
		out.Teams[k] = t
	}
	return out
}

// Ensure replaces nil maps, which appear when a file omits a section.
func (d *Document) Ensure() {
	if d.Players == nil {
		d.Players = make(map[string]players.Player)
	}
	if d.Teams == nil {
		d.Teams = make(map[string]teams.Team)
	}
}

// Player looks up a player by any casing of the tag.
func (d Document) Player(name string) (players.Player, bool) {
	p, ok := d.Players[NormalizeName(name)]
	return p, ok
}

// Team looks up a team by any casing of the name.
func (d Document) Team(name string) (teams.Team, bool) {
	t, ok := d.Teams[NormalizeName(name)]
	return t, ok
}

// SortedPlayers returns every player ordered by key.
func (d Document) SortedPlayers() []players.Player {
	keys := make([]string, 0, len(d.Players))
	for k := range d.Players {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]players.Player, 0, len(keys))
	for _, k := range keys {
		out = append(out, d.Players[k])
	}
	return out
}

// SortedTeams returns every team ordered by key.
func (d Document) SortedTeams() []teams.Team {
	keys := d.teamKeys()
	out := make([]teams.Team, 0, len(keys))
	for _, k := range keys {
		out = append(out, d.Teams[k])
	}
	return out
}

// Members returns the players whose team matches teamName case-insensitively,
// captains first, then top players, then alphabetical by tag.
func (d Document) Members(teamName string) []players.Player {
	key := NormalizeName(teamName)
	var out []players.Player
	for _, p := range d.SortedPlayers() {
		if p.Assigned() && NormalizeName(p.Team) == key {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Captain != b.Captain {
			return a.Captain
		}
		if a.TopPlayer != b.TopPlayer {
			return a.TopPlayer
		}
		return NormalizeName(a.Tag) < NormalizeName(b.Tag)
	})
	return out
}

// OnTeam reports whether the player belongs to the named team.
func OnTeam(p players.Player, teamName string) bool {
	return p.Assigned() && NormalizeName(p.Team) == NormalizeName(teamName)
}

func (d Document) teamKeys() []string {
	keys := make([]string, 0, len(d.Teams))
	for k := range d.Teams {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
