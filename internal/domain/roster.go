package domain

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/team-roster-bot/internal/domain/players"
	"github.com/preston-bernstein/team-roster-bot/internal/domain/teams"
)

// AddPlayer creates an unassigned player with both flags cleared.
func (d *Document) AddPlayer(name string) (players.Player, error) {
	tag := strings.TrimSpace(name)
	if tag == "" {
		return players.Player{}, ErrEmptyName
	}
	key := NormalizeName(tag)
	if existing, ok := d.Players[key]; ok {
		return existing, fmt.Errorf("player %q: %w", existing.Tag, ErrDuplicate)
	}
	p := players.Player{Tag: tag}
	d.Players[key] = p
	return p, nil
}

// AddTeam creates a team with zero points.
func (d *Document) AddTeam(name string) (teams.Team, error) {
	display := strings.TrimSpace(name)
	if display == "" {
		return teams.Team{}, ErrEmptyName
	}
	key := NormalizeName(display)
	if existing, ok := d.Teams[key]; ok {
		return existing, fmt.Errorf("team %q: %w", existing.Name, ErrDuplicate)
	}
	t := teams.Team{Name: display}
	d.Teams[key] = t
	return t, nil
}

// RenamePlayer re-keys a player. Renaming to the same key only updates casing.
func (d *Document) RenamePlayer(oldName, newName string) (players.Player, error) {
	oldKey := NormalizeName(oldName)
	p, ok := d.Players[oldKey]
	if !ok {
		return players.Player{}, fmt.Errorf("player %q: %w", oldName, ErrNotFound)
	}
	tag := strings.TrimSpace(newName)
	if tag == "" {
		return p, ErrEmptyName
	}
	newKey := NormalizeName(tag)
	if newKey != oldKey {
		if _, taken := d.Players[newKey]; taken {
			return p, fmt.Errorf("player %q: %w", tag, ErrDuplicate)
		}
	}
	delete(d.Players, oldKey)
	p.Tag = tag
	d.Players[newKey] = p
	return p, nil
}

// RenameTeam re-keys a team and rewrites the team field of every member.
func (d *Document) RenameTeam(oldName, newName string) (teams.Team, error) {
	oldKey := NormalizeName(oldName)
	t, ok := d.Teams[oldKey]
	if !ok {
		return teams.Team{}, fmt.Errorf("team %q: %w", oldName, ErrNotFound)
	}
	display := strings.TrimSpace(newName)
	if display == "" {
		return t, ErrEmptyName
	}
	newKey := NormalizeName(display)
	if newKey != oldKey {
		if _, taken := d.Teams[newKey]; taken {
			return t, fmt.Errorf("team %q: %w", display, ErrDuplicate)
		}
	}
	previous := t.Name
	delete(d.Teams, oldKey)
	t.Name = display
	d.Teams[newKey] = t
	for k, p := range d.Players {
		if OnTeam(p, previous) {
			p.Team = display
			d.Players[k] = p
		}
	}
	return t, nil
}

// RemovePlayer deletes a player.
func (d *Document) RemovePlayer(name string) (players.Player, error) {
	key := NormalizeName(name)
	p, ok := d.Players[key]
	if !ok {
		return players.Player{}, fmt.Errorf("player %q: %w", name, ErrNotFound)
	}
	delete(d.Players, key)
	return p, nil
}

// RemoveTeam deletes a team and unassigns all of its members.
func (d *Document) RemoveTeam(name string) (teams.Team, error) {
	key := NormalizeName(name)
	t, ok := d.Teams[key]
	if !ok {
		return teams.Team{}, fmt.Errorf("team %q: %w", name, ErrNotFound)
	}
	delete(d.Teams, key)
	for k, p := range d.Players {
		if OnTeam(p, t.Name) {
			p.Team = ""
			d.Players[k] = p
		}
	}
	return t, nil
}

// ToggleTopPlayer flips the top-player flag.
func (d *Document) ToggleTopPlayer(name string) (players.Player, error) {
	return d.updatePlayer(name, func(p *players.Player) { p.TopPlayer = !p.TopPlayer })
}

// ToggleCaptain flips the captain flag.
func (d *Document) ToggleCaptain(name string) (players.Player, error) {
	return d.updatePlayer(name, func(p *players.Player) { p.Captain = !p.Captain })
}

// SetPlayerTeam assigns a player to an existing team, storing the team's
// display name. An empty team name unassigns.
func (d *Document) SetPlayerTeam(playerName, teamName string) (players.Player, error) {
	display := ""
	if strings.TrimSpace(teamName) != "" {
		t, ok := d.Team(teamName)
		if !ok {
			return players.Player{}, fmt.Errorf("team %q: %w", teamName, ErrNotFound)
		}
		display = t.Name
	}
	return d.updatePlayer(playerName, func(p *players.Player) { p.Team = display })
}

// ToggleMembership unassigns the player when already on the team and assigns
// them otherwise. The boolean reports whether the player ended up on the team.
func (d *Document) ToggleMembership(teamName, playerName string) (players.Player, bool, error) {
	t, ok := d.Team(teamName)
	if !ok {
		return players.Player{}, false, fmt.Errorf("team %q: %w", teamName, ErrNotFound)
	}
	p, ok := d.Player(playerName)
	if !ok {
		return players.Player{}, false, fmt.Errorf("player %q: %w", playerName, ErrNotFound)
	}
	target := t.Name
	if OnTeam(p, t.Name) {
		target = ""
	}
	updated, err := d.SetPlayerTeam(p.Tag, target)
	return updated, target != "", err
}

func (d *Document) updatePlayer(name string, fn func(*players.Player)) (players.Player, error) {
	key := NormalizeName(name)
	p, ok := d.Players[key]
	if !ok {
		return players.Player{}, fmt.Errorf("player %q: %w", name, ErrNotFound)
	}
	fn(&p)
	d.Players[key] = p
	return p, nil
}
