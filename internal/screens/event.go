package screens

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Scope is the first segment of a custom ID.
type Scope string

const (
	ScopePlayerAdd   Scope = "playerAdd"
	ScopePlayer      Scope = "player"
	ScopeTeam        Scope = "team"
	ScopeManageTeams Scope = "manageTeams"
	ScopePlayerList  Scope = "playerList"
)

// UnassignedValue is the select option that clears a player's team.
const UnassignedValue = "__unassigned__"

// Modal text input IDs.
const (
	FieldName   = "name"
	FieldAmount = "amount"
)

var (
	// ErrMalformedID is returned for custom IDs that cannot be decoded.
	ErrMalformedID = errors.New("malformed custom id")
	// ErrUnknownAction is returned when no transition exists for an event.
	ErrUnknownAction = errors.New("unknown action")
	// ErrMissingValue is returned when a select or modal arrives without input.
	ErrMissingValue = errors.New("missing value")
)

// Event is a decoded component or modal interaction.
type Event struct {
	Scope  Scope
	Action string
	// Key is the primary subject: a player or team key, or the paging direction.
	Key   string
	Extra []string
	// Values holds select menu choices.
	Values []string
	// Fields holds modal text inputs by ID.
	Fields map[string]string
	// MessageID identifies the message that carried the component.
	MessageID string
}

// ID builds a custom ID. Every part is query-escaped so keys may contain colons.
func ID(scope Scope, action string, parts ...string) string {
	segs := make([]string, 0, len(parts)+2)
	segs = append(segs, string(scope), action)
	for _, p := range parts {
		segs = append(segs, url.QueryEscape(p))
	}
	return strings.Join(segs, ":")
}

// Parse decodes a custom ID built by ID.
func Parse(customID string) (Event, error) {
	segs := strings.Split(customID, ":")
	if len(segs) < 3 || segs[0] == "" || segs[1] == "" {
		return Event{}, fmt.Errorf("%w: %q", ErrMalformedID, customID)
	}
	parts := make([]string, 0, len(segs)-2)
	for _, s := range segs[2:] {
		v, err := url.QueryUnescape(s)
		if err != nil {
			v = s
		}
		parts = append(parts, v)
	}
	return Event{
		Scope:  Scope(segs[0]),
		Action: segs[1],
		Key:    parts[0],
		Extra:  parts[1:],
	}, nil
}

// Value returns the first select choice.
func (e Event) Value() (string, error) {
	if len(e.Values) == 0 || e.Values[0] == "" {
		return "", fmt.Errorf("%s:%s: %w", e.Scope, e.Action, ErrMissingValue)
	}
	return e.Values[0], nil
}

func (e Event) extra(i int) (string, error) {
	if i >= len(e.Extra) || e.Extra[i] == "" {
		return "", fmt.Errorf("%w: %s:%s needs %d extra parts", ErrMalformedID, e.Scope, e.Action, i+1)
	}
	return e.Extra[i], nil
}

// ID re-encodes the event's custom ID.
func (e Event) ID() string {
	return ID(e.Scope, e.Action, append([]string{e.Key}, e.Extra...)...)
}
