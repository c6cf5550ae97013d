package views

import (
	"errors"

	"github.com/preston-bernstein/team-roster-bot/internal/domain"
	"github.com/preston-bernstein/team-roster-bot/internal/screens"
)

// GenericError is shown for failures with no better explanation.
const GenericError = "Something went wrong handling that action."

// ErrorMessage maps a domain failure to user text. kind names the entity the
// failing operation was about.
func ErrorMessage(err error, kind screens.SubjectKind) string {
	switch {
	case errors.Is(err, domain.ErrEmptyName):
		return "Name cannot be empty."
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Amount must be a whole number."
	case errors.Is(err, domain.ErrInvalidOperation):
		return "Unknown points operation."
	case errors.Is(err, domain.ErrNoTeams):
		return "No teams exist yet. Create one with /team add first."
	case errors.Is(err, domain.ErrDuplicate):
		if kind == screens.SubjectTeam {
			return "A team with that name already exists."
		}
		return "A player with that name already exists."
	case errors.Is(err, domain.ErrNotFound):
		if kind == screens.SubjectTeam {
			return msgTeamNotFound
		}
		return msgPlayerNotFound
	}
	return GenericError
}

// NotFound is the ephemeral card for a missing subject.
func NotFound(kind screens.SubjectKind) View {
	if kind == screens.SubjectTeam {
		return Error(msgTeamNotFound)
	}
	return Error(msgPlayerNotFound)
}

// Failure is the ephemeral card for an unexpected component error.
func Failure(customID string) View {
	v := Error(GenericError)
	v.Description = "Action: " + customID
	return v
}
