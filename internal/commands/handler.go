// Package commands implements the text-prefix and slash command front ends.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/team-roster-bot/internal/domain"
	"github.com/preston-bernstein/team-roster-bot/internal/domain/players"
	"github.com/preston-bernstein/team-roster-bot/internal/domain/teams"
	"github.com/preston-bernstein/team-roster-bot/internal/logging"
	"github.com/preston-bernstein/team-roster-bot/internal/metrics"
	"github.com/preston-bernstein/team-roster-bot/internal/screens"
	"github.com/preston-bernstein/team-roster-bot/internal/views"
)

// Snapshotter exposes a read-only copy of the roster.
type Snapshotter interface {
	Snapshot() domain.Document
}

// PlayerService is the subset of the players service commands use.
type PlayerService interface {
	Add(name string) (players.Player, error)
	Assign(name, team string) (domain.Assignment, error)
}

// TeamService is the subset of the teams service commands use.
type TeamService interface {
	Add(name string) (teams.Team, error)
}

// Handler answers text and slash commands.
type Handler struct {
	roster  Snapshotter
	players PlayerService
	teams   TeamService
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewHandler builds a Handler over the roster and its services.
func NewHandler(roster Snapshotter, p PlayerService, t TeamService, logger *slog.Logger, recorder *metrics.Recorder) *Handler {
	return &Handler{roster: roster, players: p, teams: t, logger: logger, metrics: recorder}
}

// result is a command outcome: the user-facing text plus whether it succeeded.
type result struct {
	text string
	ok   bool
	// key is the normalized subject, set on success.
	key string
}

func (h *Handler) addPlayer(ctx context.Context, name string) result {
	name = strings.TrimSpace(name)
	if name == "" {
		return result{text: "Usage: /player add [playerName]"}
	}
	p, err := h.players.Add(name)
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return result{text: "Player already exists: " + p.Tag}
	case err != nil:
		return h.failed(ctx, "player add", err, screens.SubjectPlayer)
	}
	return result{text: "Added player: " + p.Tag, ok: true, key: domain.NormalizeName(p.Tag)}
}

func (h *Handler) assignPlayer(ctx context.Context, name, team string) result {
	name, team = strings.TrimSpace(name), strings.TrimSpace(team)
	if name == "" {
		return result{text: "Usage: /player assign [playerName] (optional target team)"}
	}
	doc := h.roster.Snapshot()
	if _, ok := doc.Player(name); !ok {
		return result{text: "Player not found: " + name}
	}
	if team != "" {
		if _, ok := doc.Team(team); !ok {
			return result{text: "Team not found: " + team}
		}
	}

	a, err := h.players.Assign(name, team)
	if err != nil {
		return h.failed(ctx, "player assign", err, screens.SubjectPlayer)
	}
	if team != "" {
		return result{text: fmt.Sprintf("Assigned %s to %s", a.Player.Tag, a.Team.Name), ok: true}
	}
	return result{text: a.Status(), ok: true}
}

func (h *Handler) addTeam(ctx context.Context, name string) result {
	name = strings.TrimSpace(name)
	if name == "" {
		return result{text: "Usage: /team add [teamName]"}
	}
	t, err := h.teams.Add(name)
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return result{text: "Team already exists: " + t.Name}
	case err != nil:
		return h.failed(ctx, "team add", err, screens.SubjectTeam)
	}
	return result{text: "Added team: " + t.Name, ok: true, key: domain.NormalizeName(t.Name)}
}

func (h *Handler) failed(ctx context.Context, command string, err error, kind screens.SubjectKind) result {
	msg := views.ErrorMessage(err, kind)
	if msg == views.GenericError {
		logging.Error(logging.FromContext(ctx, h.logger), "command failed", err, logging.FieldCommand, command)
	}
	return result{text: msg}
}

func (h *Handler) record(command string, r result) {
	var err error
	if !r.ok {
		err = errors.New(r.text)
	}
	h.metrics.RecordCommand(command, err)
}
