package teams

import (
	"errors"
	"testing"

	"github.com/preston-bernstein/team-roster-bot/internal/domain"
	"github.com/preston-bernstein/team-roster-bot/internal/testutil"
)

func TestTeamsServiceReadsStore(t *testing.T) {
	svc := NewService(testutil.NewMemStore(testutil.SampleDocument()))

	if len(svc.Teams()) != 2 {
		t.Fatalf("expected teams from store")
	}
	if _, ok := svc.Team("ALPHA"); !ok {
		t.Fatalf("expected team by name")
	}
	members := svc.Members("alpha")
	if len(members) != 2 || members[0].Tag != "Ace" {
		t.Fatalf("expected captain first in roster, got %+v", members)
	}
}

func TestTeamsServiceRenameCascades(t *testing.T) {
	svc := NewService(testutil.NewMemStore(testutil.SampleDocument()))

	if _, err := svc.Rename("alpha", "beta"); !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("expected duplicate, got %v", err)
	}
	team, err := svc.Rename("alpha", "Omega")
	if err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if team.Name != "Omega" || len(svc.Members("omega")) != 2 {
		t.Fatalf("expected members to follow rename, got %+v", svc.Members("omega"))
	}
}

func TestTeamsServiceAdjustPoints(t *testing.T) {
	svc := NewService(testutil.NewMemStore(testutil.SampleDocument()))

	team, err := svc.AdjustPoints("alpha", domain.PointsAdd, " 5 ")
	if err != nil || team.Points != 15 {
		t.Fatalf("expected 15 points, got %+v %v", team, err)
	}
	if _, err := svc.AdjustPoints("alpha", domain.PointsSet, "lots"); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}
	if team, _ := svc.Team("alpha"); team.Points != 15 {
		t.Fatalf("expected points unchanged after invalid amount, got %d", team.Points)
	}
}

func TestTeamsServiceAddRemoveAndToggleMember(t *testing.T) {
	svc := NewService(testutil.NewMemStore(testutil.SampleDocument()))

	if _, err := svc.Add("Gamma"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	p, joined, err := svc.ToggleMember("gamma", "cat")
	if err != nil || !joined || p.Team != "Gamma" {
		t.Fatalf("expected cat to join gamma, got %+v %v %v", p, joined, err)
	}
	if _, err := svc.Remove("gamma"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(svc.Members("gamma")) != 0 {
		t.Fatalf("expected members unassigned after removal")
	}
}
