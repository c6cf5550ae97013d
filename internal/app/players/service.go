package players

import (
	"github.com/preston-bernstein/team-roster-bot/internal/domain"
	"github.com/preston-bernstein/team-roster-bot/internal/domain/players"
)

// Store defines the contract for reading and mutating the roster document.
type Store interface {
	Snapshot() domain.Document
	Update(func(*domain.Document) error) error
}

// Service coordinates player operations using a Store.
type Service struct {
	store Store
	rnd   domain.Rand
}

// NewService constructs a Service; rnd feeds the assignment tie-break.
func NewService(store Store, rnd domain.Rand) *Service {
	return &Service{store: store, rnd: rnd}
}

// Players returns every player sorted by key.
func (s *Service) Players() []players.Player {
	return s.store.Snapshot().SortedPlayers()
}

// Player looks up a player by any casing of the tag.
func (s *Service) Player(name string) (players.Player, bool) {
	return s.store.Snapshot().Player(name)
}

// Add registers a new unassigned player.
func (s *Service) Add(name string) (players.Player, error) {
	return s.mutate(func(d *domain.Document) (players.Player, error) { return d.AddPlayer(name) })
}

// Rename changes a player's tag.
func (s *Service) Rename(oldName, newName string) (players.Player, error) {
	return s.mutate(func(d *domain.Document) (players.Player, error) { return d.RenamePlayer(oldName, newName) })
}

// Remove deletes a player.
func (s *Service) Remove(name string) (players.Player, error) {
	return s.mutate(func(d *domain.Document) (players.Player, error) { return d.RemovePlayer(name) })
}

// ToggleTopPlayer flips the top-player flag.
func (s *Service) ToggleTopPlayer(name string) (players.Player, error) {
	return s.mutate(func(d *domain.Document) (players.Player, error) { return d.ToggleTopPlayer(name) })
}

// ToggleCaptain flips the captain flag.
func (s *Service) ToggleCaptain(name string) (players.Player, error) {
	return s.mutate(func(d *domain.Document) (players.Player, error) { return d.ToggleCaptain(name) })
}

// SetTeam assigns a player to a team; an empty team unassigns.
func (s *Service) SetTeam(name, team string) (players.Player, error) {
	return s.mutate(func(d *domain.Document) (players.Player, error) { return d.SetPlayerTeam(name, team) })
}

// Assign places a player on team, or on the team chosen by the balancing
// heuristic when team is empty.
func (s *Service) Assign(name, team string) (domain.Assignment, error) {
	var out domain.Assignment
	err := s.store.Update(func(d *domain.Document) error {
		if team == "" {
			a, err := d.AssignPlayer(name, s.rnd)
			out = a
			return err
		}
		p, err := d.SetPlayerTeam(name, team)
		if err != nil {
			return err
		}
		t, _ := d.Team(team)
		out = domain.Assignment{Player: p, Team: t}
		return nil
	})
	return out, err
}

func (s *Service) mutate(fn func(*domain.Document) (players.Player, error)) (players.Player, error) {
	var out players.Player
	err := s.store.Update(func(d *domain.Document) error {
		p, err := fn(d)
		out = p
		return err
	})
	return out, err
}
