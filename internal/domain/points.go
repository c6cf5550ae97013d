package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/preston-bernstein/team-roster-bot/internal/domain/teams"
)

// PointsOp selects how AdjustTeamPoints combines the amount with the total.
type PointsOp string

const (
	PointsAdd    PointsOp = "add"
	PointsDeduct PointsOp = "deduct"
	PointsSet    PointsOp = "set"
)

// PointsOps lists the operations in menu order.
var PointsOps = []PointsOp{PointsAdd, PointsDeduct, PointsSet}

// ParsePointsOp validates a raw operation name.
func ParsePointsOp(raw string) (PointsOp, error) {
	op := PointsOp(strings.ToLower(strings.TrimSpace(raw)))
	switch op {
	case PointsAdd, PointsDeduct, PointsSet:
		return op, nil
	}
	return "", fmt.Errorf("points operation %q: %w", raw, ErrInvalidOperation)
}

// ParseAmount parses a whole number, tolerating surrounding whitespace.
func ParseAmount(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", raw, ErrInvalidAmount)
	}
	return n, nil
}

// AdjustTeamPoints applies op with amount to the team's total.
func (d *Document) AdjustTeamPoints(name string, op PointsOp, amount int) (teams.Team, error) {
	key := NormalizeName(name)
	t, ok := d.Teams[key]
	if !ok {
		return teams.Team{}, fmt.Errorf("team %q: %w", name, ErrNotFound)
	}
	switch op {
	case PointsAdd:
		t.Points += amount
	case PointsDeduct:
		t.Points -= amount
	case PointsSet:
		t.Points = amount
	default:
		return t, fmt.Errorf("points operation %q: %w", op, ErrInvalidOperation)
	}
	d.Teams[key] = t
	return t, nil
}
