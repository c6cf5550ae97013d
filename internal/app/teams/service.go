package teams

import (
	"github.com/preston-bernstein/team-roster-bot/internal/domain"
	"github.com/preston-bernstein/team-roster-bot/internal/domain/players"
	"github.com/preston-bernstein/team-roster-bot/internal/domain/teams"
)

// Store defines the contract for reading and mutating the roster document.
type Store interface {
	Snapshot() domain.Document
	Update(func(*domain.Document) error) error
}

// Service coordinates team operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Teams returns every team sorted by key.
func (s *Service) Teams() []teams.Team {
	return s.store.Snapshot().SortedTeams()
}

// Team looks up a team by any casing of the name.
func (s *Service) Team(name string) (teams.Team, bool) {
	return s.store.Snapshot().Team(name)
}

// Members returns the team's roster in display order.
func (s *Service) Members(name string) []players.Player {
	return s.store.Snapshot().Members(name)
}

// Add registers a team with zero points.
func (s *Service) Add(name string) (teams.Team, error) {
	return s.mutate(func(d *domain.Document) (teams.Team, error) { return d.AddTeam(name) })
}

// Rename changes a team's name and relabels its members.
func (s *Service) Rename(oldName, newName string) (teams.Team, error) {
	return s.mutate(func(d *domain.Document) (teams.Team, error) { return d.RenameTeam(oldName, newName) })
}

// Remove deletes a team and unassigns its members.
func (s *Service) Remove(name string) (teams.Team, error) {
	return s.mutate(func(d *domain.Document) (teams.Team, error) { return d.RemoveTeam(name) })
}

// AdjustPoints parses raw and applies op to the team's points.
func (s *Service) AdjustPoints(name string, op domain.PointsOp, raw string) (teams.Team, error) {
	amount, err := domain.ParseAmount(raw)
	if err != nil {
		return teams.Team{}, err
	}
	return s.mutate(func(d *domain.Document) (teams.Team, error) { return d.AdjustTeamPoints(name, op, amount) })
}

// ToggleMember assigns the player to the team, or unassigns them when they
// are already on it. joined reports the resulting membership.
func (s *Service) ToggleMember(team, player string) (p players.Player, joined bool, err error) {
	err = s.store.Update(func(d *domain.Document) error {
		var inner error
		p, joined, inner = d.ToggleMembership(team, player)
		return inner
	})
	return p, joined, err
}

func (s *Service) mutate(fn func(*domain.Document) (teams.Team, error)) (teams.Team, error) {
	var out teams.Team
	err := s.store.Update(func(d *domain.Document) error {
		t, err := fn(d)
		out = t
		return err
	})
	return out, err
}
