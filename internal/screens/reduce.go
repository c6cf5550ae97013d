package screens

import (
	"fmt"
	"strconv"

	"github.com/preston-bernstein/team-roster-bot/internal/domain"
)

// Reply says how the platform should deliver a transition.
type Reply int

const (
	// ReplyUpdate edits the originating message in place.
	ReplyUpdate Reply = iota
	// ReplyClose deletes the originating message.
	ReplyClose
	// ReplyModal opens the modal described by Next.
	ReplyModal
	// ReplyPatch edits message Target with Next and answers with Confirm.
	ReplyPatch
)

// SubjectKind distinguishes player and team subjects.
type SubjectKind int

const (
	SubjectNone SubjectKind = iota
	SubjectPlayer
	SubjectTeam
)

// Subject is an entity that must exist before the transition applies.
type Subject struct {
	Kind SubjectKind
	Key  string
}

// Transition is the result of reducing one event.
type Transition struct {
	Next     Screen
	Mutation Mutation
	// Fallback replaces Next when a secondary subject has disappeared.
	Fallback Screen
	Requires Subject
	Reply    Reply
	// Notice is sent ephemerally after an in-place update.
	Notice string
	// Confirm answers a modal submit after the patch.
	Confirm string
	Target  string
}

// Mutation is a state change the router applies before rendering Next.
type Mutation interface {
	isMutation()
}

type (
	TogglePlayerTop     struct{ Player string }
	TogglePlayerCaptain struct{ Player string }
	// SetPlayerTeam with an empty Team unassigns.
	SetPlayerTeam    struct{ Player, Team string }
	RemovePlayer     struct{ Player string }
	RenamePlayer     struct{ Player, Name string }
	RenameTeam       struct{ Team, Name string }
	RemoveTeam       struct{ Team string }
	ToggleMembership struct{ Team, Player string }
	AdjustPoints     struct {
		Team   string
		Op     domain.PointsOp
		Amount string
	}
)

func (TogglePlayerTop) isMutation()     {}
func (TogglePlayerCaptain) isMutation() {}
func (SetPlayerTeam) isMutation()       {}
func (RemovePlayer) isMutation()        {}
func (RenamePlayer) isMutation()        {}
func (RenameTeam) isMutation()          {}
func (RemoveTeam) isMutation()          {}
func (ToggleMembership) isMutation()    {}
func (AdjustPoints) isMutation()        {}

// Canceled is the notice sent when a confirm or picker is backed out of.
const Canceled = "Canceled."

// Reduce maps an event to its transition. It is pure: subject existence and
// mutation failures are the caller's concern.
func Reduce(ev Event) (Transition, error) {
	switch ev.Scope {
	case ScopePlayerAdd:
		return reducePlayerAdd(ev)
	case ScopePlayer:
		return reducePlayer(ev)
	case ScopeTeam:
		return reduceTeam(ev)
	case ScopeManageTeams:
		return reduceManageTeams(ev)
	case ScopePlayerList:
		return reducePlayerList(ev)
	}
	return Transition{}, unknown(ev)
}

func reducePlayerAdd(ev Event) (Transition, error) {
	if ev.Action != "top" {
		return Transition{}, unknown(ev)
	}
	return Transition{
		Requires: player(ev.Key),
		Mutation: TogglePlayerTop{Player: ev.Key},
		Next:     PlayerAdded{Player: ev.Key},
	}, nil
}

func reducePlayer(ev Event) (Transition, error) {
	key := ev.Key
	t := Transition{Requires: player(key), Next: PlayerHome{Player: key}}

	switch ev.Action {
	case "toggleTop":
		t.Mutation = TogglePlayerTop{Player: key}
	case "toggleCaptain":
		t.Mutation = TogglePlayerCaptain{Player: key}
	case "assignTeam":
		t.Next = PlayerAssignTeam{Player: key}
	case "assignTeamBack", "cancelRemove":
		t.Notice = Canceled
	case "assignTeamSelect":
		v, err := ev.Value()
		if err != nil {
			return Transition{}, err
		}
		team := v
		if v == UnassignedValue {
			team = ""
		}
		t.Mutation = SetPlayerTeam{Player: key, Team: team}
		t.Fallback = PlayerHome{Player: key}
	case "removeConfirm":
		t.Next = PlayerConfirmRemove{Player: key}
	case "remove":
		t.Mutation = RemovePlayer{Player: key}
		t.Next = PlayerRemoved{}
	case "done":
		t.Next = nil
		t.Reply = ReplyClose
	case "rename":
		t.Next = RenamePlayerModal{Player: key, MessageID: ev.MessageID}
		t.Reply = ReplyModal
	case "renameModal":
		name := ev.Fields[FieldName]
		t.Mutation = RenamePlayer{Player: key, Name: name}
		t.Next = PlayerHome{Player: domain.NormalizeName(name)}
		t.Reply = ReplyPatch
		t.Confirm = "Player updated."
		t.Target = optional(ev.Extra, 0)
	default:
		return Transition{}, unknown(ev)
	}
	return t, nil
}

func reduceTeam(ev Event) (Transition, error) {
	key := ev.Key
	t := Transition{Requires: team(key), Next: TeamHome{Team: key}}

	switch ev.Action {
	case "back":
	case "cancelRemove":
		t.Notice = Canceled
	case "rename":
		t.Next = RenameTeamModal{Team: key, MessageID: ev.MessageID}
		t.Reply = ReplyModal
	case "points":
		t.Next = TeamPoints{Team: key}
	case "pointsSelect":
		v, err := ev.Value()
		if err != nil {
			return Transition{}, err
		}
		op, err := domain.ParsePointsOp(v)
		if err != nil {
			return Transition{}, err
		}
		t.Next = PointsModal{Team: key, Op: string(op), MessageID: ev.MessageID}
		t.Reply = ReplyModal
	case "roster":
		t.Next = TeamRoster{Team: key}
	case "rosterSelect":
		v, err := ev.Value()
		if err != nil {
			return Transition{}, err
		}
		t.Next = TeamMember{Team: key, Player: v}
		t.Fallback = TeamHome{Team: key}
	case "memberToggleCaptain":
		member, err := ev.extra(0)
		if err != nil {
			return Transition{}, err
		}
		t.Mutation = TogglePlayerCaptain{Player: member}
		t.Next = TeamMember{Team: key, Player: member}
		t.Fallback = TeamHome{Team: key}
	case "memberRemove":
		member, err := ev.extra(0)
		if err != nil {
			return Transition{}, err
		}
		t.Mutation = SetPlayerTeam{Player: member}
		t.Next = TeamRoster{Team: key}
		t.Fallback = TeamHome{Team: key}
	case "removeConfirm":
		t.Next = TeamConfirmRemove{Team: key}
	case "remove":
		t.Mutation = RemoveTeam{Team: key}
		t.Next = TeamRemoved{}
	case "renameModal":
		name := ev.Fields[FieldName]
		t.Mutation = RenameTeam{Team: key, Name: name}
		t.Next = TeamHome{Team: domain.NormalizeName(name)}
		t.Reply = ReplyPatch
		t.Confirm = "Team updated."
		t.Target = optional(ev.Extra, 0)
	case "pointsModal":
		raw, err := ev.extra(0)
		if err != nil {
			return Transition{}, err
		}
		op, err := domain.ParsePointsOp(raw)
		if err != nil {
			return Transition{}, err
		}
		t.Mutation = AdjustPoints{Team: key, Op: op, Amount: ev.Fields[FieldAmount]}
		t.Reply = ReplyPatch
		t.Confirm = "Points updated."
		t.Target = optional(ev.Extra, 1)
	default:
		return Transition{}, unknown(ev)
	}
	return t, nil
}

func reduceManageTeams(ev Event) (Transition, error) {
	key := ev.Key
	home := ManageTeam{Team: key}
	t := Transition{Requires: team(key), Next: home}

	switch ev.Action {
	case "select", "back":
	case "assign":
		t.Next = ManageTeamAssign{Team: key}
	case "captain":
		t.Next = ManageTeamCaptains{Team: key}
	case "top":
		t.Next = ManageTeamTopPlayers{Team: key}
	case "assignSelect", "captainSelect", "topSelect":
		v, err := ev.Value()
		if err != nil {
			return Transition{}, err
		}
		switch ev.Action {
		case "assignSelect":
			t.Mutation = ToggleMembership{Team: key, Player: v}
		case "captainSelect":
			t.Mutation = TogglePlayerCaptain{Player: v}
		default:
			t.Mutation = TogglePlayerTop{Player: v}
		}
		t.Fallback = home
	case "done":
		t.Next = nil
		t.Reply = ReplyClose
	default:
		return Transition{}, unknown(ev)
	}
	return t, nil
}

func reducePlayerList(ev Event) (Transition, error) {
	if ev.Action != "nav" {
		return Transition{}, unknown(ev)
	}
	page := 0
	if raw := optional(ev.Extra, 0); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Transition{}, fmt.Errorf("%w: page %q", ErrMalformedID, raw)
		}
		page = n
	}
	switch ev.Key {
	case "prev":
		return Transition{Next: PlayerList{Page: max(page-1, 0)}}, nil
	case "next":
		return Transition{Next: PlayerList{Page: page + 1}}, nil
	case "close":
		return Transition{Reply: ReplyClose}, nil
	}
	return Transition{}, unknown(ev)
}

func player(key string) Subject { return Subject{Kind: SubjectPlayer, Key: key} }
func team(key string) Subject   { return Subject{Kind: SubjectTeam, Key: key} }

func optional(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}

func unknown(ev Event) error {
	return fmt.Errorf("%w: %s:%s", ErrUnknownAction, ev.Scope, ev.Action)
}
