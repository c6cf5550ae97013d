// Package interactions applies component and modal events to the roster and
// decides what the platform should send back.
package interactions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/team-roster-bot/internal/domain"
	"github.com/preston-bernstein/team-roster-bot/internal/domain/players"
	"github.com/preston-bernstein/team-roster-bot/internal/domain/teams"
	"github.com/preston-bernstein/team-roster-bot/internal/logging"
	"github.com/preston-bernstein/team-roster-bot/internal/screens"
	"github.com/preston-bernstein/team-roster-bot/internal/views"
)

// Kind says how a Response is delivered.
type Kind int

const (
	// Update edits the originating message.
	Update Kind = iota
	// Close deletes the originating message.
	Close
	// ShowModal opens Modal.
	ShowModal
	// Patch edits message Target and replies ephemerally with Notice.
	Patch
	// Ephemeral replies privately with View and leaves the message alone.
	Ephemeral
)

// Response is the router's answer to one event.
type Response struct {
	Kind   Kind
	View   views.View
	Modal  views.Modal
	Target string
	// Notice is an ephemeral follow-up line.
	Notice string
}

// Snapshotter exposes a read-only copy of the roster.
type Snapshotter interface {
	Snapshot() domain.Document
}

// PlayerService is the subset of the players service the router drives.
type PlayerService interface {
	Rename(oldName, newName string) (players.Player, error)
	Remove(name string) (players.Player, error)
	ToggleTopPlayer(name string) (players.Player, error)
	ToggleCaptain(name string) (players.Player, error)
	SetTeam(name, team string) (players.Player, error)
}

// TeamService is the subset of the teams service the router drives.
type TeamService interface {
	Rename(oldName, newName string) (teams.Team, error)
	Remove(name string) (teams.Team, error)
	AdjustPoints(name string, op domain.PointsOp, raw string) (teams.Team, error)
	ToggleMember(team, player string) (players.Player, bool, error)
}

// Router dispatches decoded events.
type Router struct {
	roster  Snapshotter
	players PlayerService
	teams   TeamService
	logger  *slog.Logger
}

// NewRouter builds a Router over the roster and its services.
func NewRouter(roster Snapshotter, p PlayerService, t TeamService, logger *slog.Logger) *Router {
	return &Router{roster: roster, players: p, teams: t, logger: logger}
}

// Open renders s as a fresh message, for commands that start a flow.
func (r *Router) Open(s screens.Screen) views.View {
	return views.Render(s, r.roster.Snapshot())
}

// Handle reduces ev, applies its mutation and renders the result. The
// returned error is set only for failures the user cannot fix; the Response
// is usable either way.
func (r *Router) Handle(ctx context.Context, ev screens.Event) (Response, error) {
	logger := logging.FromContext(ctx, r.logger)

	t, err := screens.Reduce(ev)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOperation) {
			return ephemeral(views.Error(views.ErrorMessage(err, screens.SubjectTeam))), nil
		}
		return ephemeral(views.Failure(ev.ID())), err
	}

	if !r.exists(t.Requires) {
		return ephemeral(views.NotFound(t.Requires.Kind)), nil
	}

	next := t.Next
	if t.Mutation != nil {
		status, err := r.apply(t.Mutation)
		switch {
		case err == nil:
			if mt, ok := next.(screens.ManageTeam); ok {
				mt.Status = status
				next = mt
			}
		case errors.Is(err, domain.ErrNotFound) && t.Fallback != nil:
			logging.Warn(logger, "interaction subject vanished", logging.FieldCustomID, ev.ID(), "error", err)
			next = t.Fallback
		default:
			msg := views.ErrorMessage(err, subjectOf(t.Mutation))
			if msg == views.GenericError {
				return ephemeral(views.Failure(ev.ID())), err
			}
			return ephemeral(views.Error(msg)), nil
		}
	}

	doc := r.roster.Snapshot()
	if m, ok := next.(screens.TeamMember); ok && t.Fallback != nil {
		if p, found := doc.Player(m.Player); !found || !domain.OnTeam(p, m.Team) {
			next = t.Fallback
		}
	}

	switch t.Reply {
	case screens.ReplyClose:
		return Response{Kind: Close}, nil
	case screens.ReplyModal:
		modal, ok := views.RenderModal(next, doc)
		if !ok {
			return ephemeral(views.NotFound(t.Requires.Kind)), nil
		}
		return Response{Kind: ShowModal, Modal: modal}, nil
	case screens.ReplyPatch:
		return Response{Kind: Patch, View: views.Render(next, doc), Target: t.Target, Notice: t.Confirm}, nil
	}
	return Response{Kind: Update, View: views.Render(next, doc), Notice: t.Notice}, nil
}

func (r *Router) exists(s screens.Subject) bool {
	doc := r.roster.Snapshot()
	switch s.Kind {
	case screens.SubjectPlayer:
		_, ok := doc.Player(s.Key)
		return ok
	case screens.SubjectTeam:
		_, ok := doc.Team(s.Key)
		return ok
	}
	return true
}

// apply runs m and returns a short description of what changed.
func (r *Router) apply(m screens.Mutation) (string, error) {
	switch m := m.(type) {
	case screens.TogglePlayerTop:
		p, err := r.players.ToggleTopPlayer(m.Player)
		if err != nil {
			return "", err
		}
		if p.TopPlayer {
			return "Added top player: " + p.Tag, nil
		}
		return "Removed top player: " + p.Tag, nil
	case screens.TogglePlayerCaptain:
		p, err := r.players.ToggleCaptain(m.Player)
		if err != nil {
			return "", err
		}
		if p.Captain {
			return "Added captain: " + p.Tag, nil
		}
		return "Removed captain: " + p.Tag, nil
	case screens.SetPlayerTeam:
		p, err := r.players.SetTeam(m.Player, m.Team)
		if err != nil {
			return "", err
		}
		if !p.Assigned() {
			return "Unassigned " + p.Tag, nil
		}
		return fmt.Sprintf("Assigned %s to %s", p.Tag, p.Team), nil
	case screens.ToggleMembership:
		p, joined, err := r.teams.ToggleMember(m.Team, m.Player)
		if err != nil {
			return "", err
		}
		if joined {
			return fmt.Sprintf("Assigned %s to %s", p.Tag, p.Team), nil
		}
		return "Unassigned " + p.Tag, nil
	case screens.RemovePlayer:
		_, err := r.players.Remove(m.Player)
		return "", err
	case screens.RenamePlayer:
		_, err := r.players.Rename(m.Player, m.Name)
		return "", err
	case screens.RenameTeam:
		_, err := r.teams.Rename(m.Team, m.Name)
		return "", err
	case screens.RemoveTeam:
		_, err := r.teams.Remove(m.Team)
		return "", err
	case screens.AdjustPoints:
		_, err := r.teams.AdjustPoints(m.Team, m.Op, m.Amount)
		return "", err
	}
	return "", fmt.Errorf("unsupported mutation %T", m)
}

func subjectOf(m screens.Mutation) screens.SubjectKind {
	switch m.(type) {
	case screens.RenameTeam, screens.RemoveTeam, screens.AdjustPoints, screens.ToggleMembership:
		return screens.SubjectTeam
	}
	return screens.SubjectPlayer
}

func ephemeral(v views.View) Response {
	return Response{Kind: Ephemeral, View: v}
}
