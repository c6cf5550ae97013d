package domain

import (
	"fmt"
	"math"

	"github.com/preston-bernstein/team-roster-bot/internal/domain/players"
	"github.com/preston-bernstein/team-roster-bot/internal/domain/teams"
)

// BalancedSpread is the largest roster size difference still reported as balanced.
const BalancedSpread = 4

const (
	rosterWeight = 10
	topWeight    = 5
)

// Rand supplies the tie-break jitter for team selection. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Assignment is the outcome of the balancing heuristic.
type Assignment struct {
	Player   players.Player
	Team     teams.Team
	Spread   int
	Balanced bool
}

// Status is the user-facing summary of the assignment.
func (a Assignment) Status() string {
	if a.Balanced {
		return fmt.Sprintf("Assigned to %s while keeping rosters balanced.", a.Team.Name)
	}
	return fmt.Sprintf("Assigned to %s; distribution is slightly uneven.", a.Team.Name)
}

type teamLoad struct {
	key   string
	count int
	top   int
}

// ChooseTeam picks the team for a player without mutating the document.
// The player being assigned is excluded from every team's counts.
func (d Document) ChooseTeam(playerName string, rnd Rand) (Assignment, error) {
	playerKey := NormalizeName(playerName)
	p, ok := d.Players[playerKey]
	if !ok {
		return Assignment{}, fmt.Errorf("player %q: %w", playerName, ErrNotFound)
	}
	if len(d.Teams) == 0 {
		return Assignment{}, ErrNoTeams
	}

	loads := d.loads(playerKey)
	minCount := math.MaxInt
	for _, l := range loads {
		minCount = min(minCount, l.count)
	}

	best := -1
	bestScore := math.Inf(1)
	for i, l := range loads {
		score := float64(max(l.count-minCount, 0) * rosterWeight)
		if p.TopPlayer {
			score += float64(l.top * topWeight)
		}
		score += rnd.Float64()
		if score < bestScore {
			best, bestScore = i, score
		}
	}

	loads[best].count++
	lo, hi := math.MaxInt, 0
	for _, l := range loads {
		lo = min(lo, l.count)
		hi = max(hi, l.count)
	}
	spread := hi - lo
	return Assignment{
		Player:   p,
		Team:     d.Teams[loads[best].key],
		Spread:   spread,
		Balanced: spread <= BalancedSpread,
	}, nil
}

// AssignPlayer runs ChooseTeam and applies the result.
func (d *Document) AssignPlayer(playerName string, rnd Rand) (Assignment, error) {
	a, err := d.ChooseTeam(playerName, rnd)
	if err != nil {
		return a, err
	}
	p, err := d.SetPlayerTeam(a.Player.Tag, a.Team.Name)
	if err != nil {
		return a, err
	}
	a.Player = p
	return a, nil
}

func (d Document) loads(excludeKey string) []teamLoad {
	keys := d.teamKeys()
	loads := make([]teamLoad, len(keys))
	index := make(map[string]int, len(keys))
	for i, k := range keys {
		loads[i] = teamLoad{key: k}
		index[k] = i
	}
	for k, p := range d.Players {
		if k == excludeKey || !p.Assigned() {
			continue
		}
		i, ok := index[NormalizeName(p.Team)]
		if !ok {
			continue
		}
		loads[i].count++
		if p.TopPlayer {
			loads[i].top++
		}
	}
	return loads
}
