package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appplayers "github.com/preston-bernstein/team-roster-bot/internal/app/players"
	appteams "github.com/preston-bernstein/team-roster-bot/internal/app/teams"
	"github.com/preston-bernstein/team-roster-bot/internal/domain"
	"github.com/preston-bernstein/team-roster-bot/internal/metrics"
	"github.com/preston-bernstein/team-roster-bot/internal/testutil"
)

func newHandler(t *testing.T, doc domain.Document) (*Handler, *testutil.MemStore, *metrics.Recorder) {
	t.Helper()
	store := testutil.NewMemStore(doc)
	logger, _ := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	h := NewHandler(store, appplayers.NewService(store, &testutil.FixedRand{}), appteams.NewService(store), logger, rec)
	return h, store, rec
}

func TestParse(t *testing.T) {
	cmd, ok := Parse("  !Player ADD  Big   Dog ")
	require.True(t, ok)
	assert.Equal(t, Command{Root: "player", Action: "add", Args: []string{"Big", "Dog"}}, cmd)
	assert.Equal(t, "Big Dog", cmd.Rest())

	cmd, ok = Parse("/teams")
	require.True(t, ok)
	assert.Equal(t, Command{Root: "teams"}, cmd)

	for _, in := range []string{"hello", "!", "/   ", ""} {
		_, ok := Parse(in)
		assert.False(t, ok, in)
	}
}

func TestTextCommands(t *testing.T) {
	h, _, _ := newHandler(t, testutil.SampleDocument())
	ctx := context.Background()

	cases := []struct {
		in   string
		want string
	}{
		{"!player add", "Usage: /player add [playerName]"},
		{"!player add ACE", "Player already exists: Ace"},
		{"!player add Dee Dee", "Added player: Dee Dee"},
		{"!player assign", "Usage: /player assign [playerName] (optional target team)"},
		{"!player assign ghost", "Player not found: ghost"},
		{"!player assign cat Gamma", "Team not found: Gamma"},
		{"!player assign cat beta", "Assigned Cat to Beta"},
		{"!player manage", "Usage: /player manage [playerName]"},
		{"!player manage cat", "Tag: Cat\nTeam: Beta\nTop Player: no\nCaptain: no"},
		{"!player manage ghost", "Player not found: ghost"},
		{"!player kick cat", "Unknown /player command. Try: add, manage"},
		{"/team add", "Usage: /team add [teamName]"},
		{"/team add alpha", "Team already exists: Alpha"},
		{"/teams add Gamma", "Added team: Gamma"},
		{"/team manage", "Usage: /team manage [teamName]"},
		{"/team manage ghost", "Team not found: ghost"},
		{"/team manage beta", "Team: Beta\nPlayers: Cat\nCaptains: (none)\nPoints: 0"},
		{"/team rename beta", "Unknown /team command. Try: add, manage"},
		{"/teams", "Alpha — 10 pts\nBeta — 0 pts\nGamma — 0 pts"},
		{"/dance", "Unknown command."},
	}
	for _, tc := range cases {
		got, ok := h.Text(ctx, tc.in)
		require.True(t, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, ok := h.Text(ctx, "just chatting")
	assert.False(t, ok)
}

func TestTextAutoAssign(t *testing.T) {
	h, store, rec := newHandler(t, testutil.SampleDocument())

	got, _ := h.Text(context.Background(), "!player assign cat")
	assert.Equal(t, "Assigned to Beta while keeping rosters balanced.", got)
	p, _ := store.Snapshot().Player("cat")
	assert.Equal(t, "Beta", p.Team)
	assert.Equal(t, 1, rec.Commands("player assign").Calls)
}

func TestTextAssignWithoutTeams(t *testing.T) {
	doc := domain.NewDocument()
	_, _ = doc.AddPlayer("Solo")
	h, _, rec := newHandler(t, doc)

	got, _ := h.Text(context.Background(), "!player assign solo")
	assert.Equal(t, "No teams exist yet. Create one with /team add first.", got)
	assert.Equal(t, 1, rec.Commands("player assign").Errors)
}
