// Package localtest drives the bot's commands and menus from a terminal
// without a Discord connection.
package localtest

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/preston-bernstein/team-roster-bot/internal/commands"
	"github.com/preston-bernstein/team-roster-bot/internal/interactions"
	"github.com/preston-bernstein/team-roster-bot/internal/screens"
	"github.com/preston-bernstein/team-roster-bot/internal/views"
)

// NoResponse is printed when a line is not a command.
const NoResponse = "(no response)"

// Commands answers text and slash commands.
type Commands interface {
	Text(ctx context.Context, content string) (string, bool)
	Slash(ctx context.Context, cmd commands.Slash) views.View
}

// Router applies menu events.
type Router interface {
	Handle(ctx context.Context, ev screens.Event) (interactions.Response, error)
}

// RunOnce answers a single text command and writes the reply to w.
func RunOnce(ctx context.Context, h Commands, text string, w io.Writer) error {
	reply, ok := h.Text(ctx, text)
	if !ok || reply == "" {
		reply = NoResponse
	}
	_, err := fmt.Fprintln(w, reply)
	return err
}

// manageCommand reports the slash command a "player manage" or "team manage"
// line maps to.
func manageCommand(line string) (commands.Slash, bool) {
	cmd, ok := commands.Parse(line)
	if !ok || cmd.Action != "manage" {
		return commands.Slash{}, false
	}
	root := cmd.Root
	if root == "teams" {
		root = "team"
	}
	name := strings.TrimSpace(cmd.Rest())
	// A bare "player manage" falls through to the text usage reply; a bare
	// "team manage" opens the team browser.
	if root != "team" && (root != "player" || name == "") {
		return commands.Slash{}, false
	}
	return commands.Slash{
		Name:    root,
		Sub:     "manage",
		Options: map[string]string{commands.OptionName: name},
	}, true
}

// item is one selectable entry in a menu: a button, or one option of a select.
type item struct {
	label string
	id    string
	value string
	// hasValue marks select options, which send Values instead of a click.
	hasValue bool
}

func (it item) event() (screens.Event, error) {
	ev, err := screens.Parse(it.id)
	if err != nil {
		return ev, err
	}
	if it.hasValue {
		ev.Values = []string{it.value}
	}
	ev.MessageID = localMessageID
	return ev, nil
}

const localMessageID = "local"

// menuItems flattens v's enabled controls into a single list.
func menuItems(v views.View) []item {
	var out []item
	for _, row := range v.Rows {
		for _, c := range row {
			switch c := c.(type) {
			case views.Button:
				if !c.Disabled {
					out = append(out, item{label: c.Label, id: c.ID})
				}
			case views.Select:
				if c.Disabled {
					continue
				}
				for _, o := range c.Options {
					out = append(out, item{
						label:    c.Placeholder + ": " + o.Label,
						id:       c.ID,
						value:    o.Value,
						hasValue: true,
					})
				}
			}
		}
	}
	return out
}

// plain renders a view as text for the scrollback.
func plain(v views.View) string {
	if v.Description == "" {
		return v.Title
	}
	if v.Title == "" {
		return v.Description
	}
	return v.Title + "\n" + v.Description
}
