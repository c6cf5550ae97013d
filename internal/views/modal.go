package views

import (
	"github.com/preston-bernstein/team-roster-bot/internal/domain"
	"github.com/preston-bernstein/team-roster-bot/internal/screens"
)

// RenderModal returns the form for a modal screen. ok is false when s is not a
// modal or its subject no longer exists.
func RenderModal(s screens.Screen, doc domain.Document) (m Modal, ok bool) {
	switch s := s.(type) {
	case screens.RenamePlayerModal:
		p, found := doc.Player(s.Player)
		if !found {
			return Modal{}, false
		}
		return Modal{
			ID:    screens.ID(screens.ScopePlayer, "renameModal", key(p.Tag), s.MessageID),
			Title: "Update player name",
			Input: TextInput{ID: screens.FieldName, Label: "New player name", Value: p.Tag},
		}, true
	case screens.RenameTeamModal:
		t, found := doc.Team(s.Team)
		if !found {
			return Modal{}, false
		}
		return Modal{
			ID:    screens.ID(screens.ScopeTeam, "renameModal", key(t.Name), s.MessageID),
			Title: "Update team name",
			Input: TextInput{ID: screens.FieldName, Label: "New team name", Value: t.Name},
		}, true
	case screens.PointsModal:
		t, found := doc.Team(s.Team)
		if !found {
			return Modal{}, false
		}
		return Modal{
			ID:    screens.ID(screens.ScopeTeam, "pointsModal", key(t.Name), s.Op, s.MessageID),
			Title: "Adjust points",
			Input: TextInput{ID: screens.FieldAmount, Label: "Amount (whole number)", Placeholder: "e.g. 5"},
		}, true
	}
	return Modal{}, false
}
