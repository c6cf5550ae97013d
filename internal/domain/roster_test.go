package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/team-roster-bot/internal/domain/players"
	"github.com/preston-bernstein/team-roster-bot/internal/domain/teams"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "ace", NormalizeName("  ACE "))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestAddPlayerIsCaseInsensitive(t *testing.T) {
	doc := NewDocument()
	p, err := doc.AddPlayer("Ace")
	require.NoError(t, err)
	assert.Equal(t, players.Player{Tag: "Ace"}, p)

	_, err = doc.AddPlayer("ace")
	require.ErrorIs(t, err, ErrDuplicate)

	got, ok := doc.Player("ACE")
	require.True(t, ok)
	assert.Equal(t, "Ace", got.Tag)
}

func TestAddRejectsBlankNames(t *testing.T) {
	doc := NewDocument()
	_, err := doc.AddPlayer("   ")
	require.ErrorIs(t, err, ErrEmptyName)
	_, err = doc.AddTeam("")
	require.ErrorIs(t, err, ErrEmptyName)
}

func TestAddTeamStartsAtZero(t *testing.T) {
	doc := NewDocument()
	team, err := doc.AddTeam(" Alpha ")
	require.NoError(t, err)
	assert.Equal(t, teams.Team{Name: "Alpha"}, team)

	_, err = doc.AddTeam("ALPHA")
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestRenamePlayerToSameKeyUpdatesCasing(t *testing.T) {
	doc := NewDocument()
	_, err := doc.AddPlayer("x")
	require.NoError(t, err)

	p, err := doc.RenamePlayer("x", "X")
	require.NoError(t, err)
	assert.Equal(t, "X", p.Tag)
	assert.Len(t, doc.Players, 1)
	assert.Equal(t, "X", doc.Players["x"].Tag)
}

func TestRenamePlayerConflicts(t *testing.T) {
	doc := NewDocument()
	_, _ = doc.AddPlayer("Ace")
	_, _ = doc.AddPlayer("Bee")

	_, err := doc.RenamePlayer("Ace", "bee")
	require.ErrorIs(t, err, ErrDuplicate)

	_, err = doc.RenamePlayer("ghost", "Zed")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = doc.RenamePlayer("Ace", "Cat")
	require.NoError(t, err)
	_, ok := doc.Players["ace"]
	assert.False(t, ok)
	assert.Equal(t, "Cat", doc.Players["cat"].Tag)
}

func TestRenameTeamCascadesToMembers(t *testing.T) {
	doc := NewDocument()
	_, _ = doc.AddTeam("A")
	_, _ = doc.AddPlayer("p1")
	_, _ = doc.AddPlayer("p2")
	_, err := doc.SetPlayerTeam("p1", "a")
	require.NoError(t, err)

	_, err = doc.RenameTeam("A", "B")
	require.NoError(t, err)

	assert.Equal(t, "B", doc.Players["p1"].Team)
	assert.Equal(t, "", doc.Players["p2"].Team)
	_, ok := doc.Teams["a"]
	assert.False(t, ok)
	assert.Equal(t, "B", doc.Teams["b"].Name)
}

func TestRenameTeamCascadeIgnoresCase(t *testing.T) {
	doc := NewDocument()
	doc.Teams["a"] = teams.Team{Name: "A"}
	doc.Players["p1"] = players.Player{Tag: "p1", Team: "a"}

	_, err := doc.RenameTeam("a", "Alpha")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", doc.Players["p1"].Team)
}

func TestRemoveTeamUnassignsMembers(t *testing.T) {
	doc := NewDocument()
	_, _ = doc.AddTeam("A")
	_, _ = doc.AddTeam("B")
	_, _ = doc.AddPlayer("p1")
	_, _ = doc.AddPlayer("p2")
	_, _ = doc.SetPlayerTeam("p1", "A")
	_, _ = doc.SetPlayerTeam("p2", "B")

	_, err := doc.RemoveTeam("a")
	require.NoError(t, err)

	want := map[string]players.Player{
		"p1": {Tag: "p1"},
		"p2": {Tag: "p2", Team: "B"},
	}
	if diff := cmp.Diff(want, doc.Players); diff != "" {
		t.Fatalf("players mismatch (-want +got):\n%s", diff)
	}

	_, err = doc.RemoveTeam("a")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRemovePlayer(t *testing.T) {
	doc := NewDocument()
	_, _ = doc.AddPlayer("Ace")
	_, err := doc.RemovePlayer("ACE")
	require.NoError(t, err)
	assert.Empty(t, doc.Players)

	_, err = doc.RemovePlayer("Ace")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestToggles(t *testing.T) {
	doc := NewDocument()
	_, _ = doc.AddPlayer("Ace")

	p, err := doc.ToggleTopPlayer("ace")
	require.NoError(t, err)
	assert.True(t, p.TopPlayer)

	p, err = doc.ToggleCaptain("ace")
	require.NoError(t, err)
	assert.True(t, p.Captain)

	p, err = doc.ToggleTopPlayer("ace")
	require.NoError(t, err)
	assert.False(t, p.TopPlayer)

	_, err = doc.ToggleCaptain("ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSetPlayerTeamStoresDisplayName(t *testing.T) {
	doc := NewDocument()
	_, _ = doc.AddTeam("Alpha")
	_, _ = doc.AddPlayer("Ace")

	p, err := doc.SetPlayerTeam("ace", "ALPHA")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", p.Team)

	_, err = doc.SetPlayerTeam("ace", "Nope")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Alpha", doc.Players["ace"].Team)

	p, err = doc.SetPlayerTeam("ace", "")
	require.NoError(t, err)
	assert.False(t, p.Assigned())
}

func TestToggleMembership(t *testing.T) {
	doc := NewDocument()
	_, _ = doc.AddTeam("Alpha")
	_, _ = doc.AddTeam("Beta")
	_, _ = doc.AddPlayer("Ace")
	_, _ = doc.SetPlayerTeam("Ace", "Beta")

	p, joined, err := doc.ToggleMembership("alpha", "ace")
	require.NoError(t, err)
	assert.True(t, joined)
	assert.Equal(t, "Alpha", p.Team)

	p, joined, err = doc.ToggleMembership("alpha", "ace")
	require.NoError(t, err)
	assert.False(t, joined)
	assert.Equal(t, "", p.Team)

	_, _, err = doc.ToggleMembership("alpha", "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMembersOrdering(t *testing.T) {
	doc := NewDocument()
	doc.Teams["a"] = teams.Team{Name: "A"}
	doc.Players["zed"] = players.Player{Tag: "Zed", Team: "A"}
	doc.Players["amy"] = players.Player{Tag: "Amy", Team: "a"}
	doc.Players["cap"] = players.Player{Tag: "Cap", Team: "A", Captain: true}
	doc.Players["top"] = players.Player{Tag: "Top", Team: "A", TopPlayer: true}
	doc.Players["out"] = players.Player{Tag: "Out"}

	var tags []string
	for _, p := range doc.Members("A") {
		tags = append(tags, p.Tag)
	}
	assert.Equal(t, []string{"Cap", "Top", "Amy", "Zed"}, tags)
}

func TestCloneIsIndependent(t *testing.T) {
	doc := NewDocument()
	_, _ = doc.AddPlayer("Ace")
	clone := doc.Clone()
	_, _ = clone.ToggleCaptain("Ace")

	assert.False(t, doc.Players["ace"].Captain)
	assert.True(t, clone.Players["ace"].Captain)
}
