package views

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/team-roster-bot/internal/domain"
	"github.com/preston-bernstein/team-roster-bot/internal/domain/players"
	"github.com/preston-bernstein/team-roster-bot/internal/domain/teams"
	"github.com/preston-bernstein/team-roster-bot/internal/screens"
)

const (
	// PageSize is the number of players per list page.
	PageSize = 10
	// maxOptions and maxButtons are the platform's per-menu and per-message limits.
	maxOptions    = 25
	maxButtons    = 25
	buttonsPerRow = 5
)

const (
	msgPlayerNotFound = "Player not found."
	msgTeamNotFound   = "Team not found."
	labelDone         = "I'm done, close this message"
)

// Render draws s against doc. Subjects missing from doc render as an error card.
func Render(s screens.Screen, doc domain.Document) View {
	switch s := s.(type) {
	case screens.PlayerAdded:
		return withPlayer(doc, s.Player, playerAdded)
	case screens.PlayerHome:
		return withPlayer(doc, s.Player, playerHome)
	case screens.PlayerAssignTeam:
		return withPlayer(doc, s.Player, func(p players.Player) View { return playerAssignTeam(p, doc) })
	case screens.PlayerConfirmRemove:
		return withPlayer(doc, s.Player, playerConfirmRemove)
	case screens.PlayerRemoved:
		return Error("Player removed.")
	case screens.PlayerList:
		return PlayerList(doc, s.Page)
	case screens.TeamHome:
		return withTeam(doc, s.Team, func(t teams.Team) View { return teamHome(t, doc) })
	case screens.TeamPoints:
		return withTeam(doc, s.Team, func(t teams.Team) View { return teamPoints(t, doc) })
	case screens.TeamRoster:
		return withTeam(doc, s.Team, func(t teams.Team) View { return teamRoster(t, doc) })
	case screens.TeamMember:
		return withTeam(doc, s.Team, func(t teams.Team) View {
			return withPlayer(doc, s.Player, func(p players.Player) View { return teamMember(t, p) })
		})
	case screens.TeamConfirmRemove:
		return withTeam(doc, s.Team, teamConfirmRemove)
	case screens.TeamRemoved:
		return Error("Team removed.")
	case screens.ManageTeamsHome:
		return manageTeamsHome(doc)
	case screens.ManageTeam:
		return withTeam(doc, s.Team, func(t teams.Team) View {
			v := manageTeamCard(t, doc, s.Status)
			v.Rows = manageTeamActions(t)
			return v
		})
	case screens.ManageTeamAssign:
		return withTeam(doc, s.Team, func(t teams.Team) View { return manageTeamAssign(t, doc) })
	case screens.ManageTeamCaptains:
		return withTeam(doc, s.Team, func(t teams.Team) View { return manageTeamCaptains(t, doc) })
	case screens.ManageTeamTopPlayers:
		return withTeam(doc, s.Team, func(t teams.Team) View { return manageTeamTopPlayers(t, doc) })
	}
	return Error(fmt.Sprintf("Nothing to show for %T.", s))
}

func withPlayer(doc domain.Document, key string, fn func(players.Player) View) View {
	p, ok := doc.Player(key)
	if !ok {
		return Error(msgPlayerNotFound)
	}
	return fn(p)
}

func withTeam(doc domain.Document, key string, fn func(teams.Team) View) View {
	t, ok := doc.Team(key)
	if !ok {
		return Error(msgTeamNotFound)
	}
	return fn(t)
}

func key(name string) string { return domain.NormalizeName(name) }

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func teamLabel(p players.Player) string {
	if p.Assigned() {
		return p.Team
	}
	return "Unassigned"
}

func badges(p players.Player) string {
	var b strings.Builder
	if p.Captain {
		b.WriteString("👑")
	}
	if p.TopPlayer {
		b.WriteString("⭐")
	}
	if b.Len() == 0 {
		return ""
	}
	return b.String() + " "
}

func tags(ps []players.Player, empty string) string {
	if len(ps) == 0 {
		return empty
	}
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Tag
	}
	return strings.Join(names, ", ")
}

func captains(ps []players.Player) []players.Player {
	var out []players.Player
	for _, p := range ps {
		if p.Captain {
			out = append(out, p)
		}
	}
	return out
}

// PlayerCard is the player detail embed without controls.
func PlayerCard(p players.Player) View {
	return View{
		Title: "Player: " + p.Tag,
		Description: strings.Join([]string{
			"**Team:** " + teamLabel(p),
			"**Top Player:** " + yesNo(p.TopPlayer),
			"**Captain:** " + yesNo(p.Captain),
		}, "\n"),
		Color: ColorPlayer,
	}
}

// PlayerAddedCard is the confirmation shown after creating a player.
func PlayerAddedCard(p players.Player) View {
	return playerAdded(p)
}

func playerAdded(p players.Player) View {
	label, style := "Top Player", StyleSecondary
	if p.TopPlayer {
		label, style = "Top Player (set)", StyleSuccess
	}
	return View{
		Title:       p.Tag + " added",
		Description: p.Tag + " added. Please select any additional player information below.",
		Color:       ColorPlayer,
		Rows: []Row{{
			Button{ID: screens.ID(screens.ScopePlayerAdd, "top", key(p.Tag)), Label: label, Style: style},
		}},
	}
}

func playerHome(p players.Player) View {
	k := key(p.Tag)
	top, captain := "Assign top player", "Assign captain"
	if p.TopPlayer {
		top = "Unset top player"
	}
	if p.Captain {
		captain = "Unset captain"
	}
	v := PlayerCard(p)
	v.Rows = []Row{
		{
			Button{ID: screens.ID(screens.ScopePlayer, "rename", k), Label: "Update name", Style: StylePrimary},
			Button{ID: screens.ID(screens.ScopePlayer, "toggleTop", k), Label: top, Style: StyleSecondary},
			Button{ID: screens.ID(screens.ScopePlayer, "toggleCaptain", k), Label: captain, Style: StyleSecondary},
		},
		{
			Button{ID: screens.ID(screens.ScopePlayer, "assignTeam", k), Label: "Assign team", Style: StylePrimary},
			Button{ID: screens.ID(screens.ScopePlayer, "removeConfirm", k), Label: "Remove player", Style: StyleDanger},
			Button{ID: screens.ID(screens.ScopePlayer, "done", k), Label: labelDone, Style: StyleSecondary},
		},
	}
	return v
}

func playerAssignTeam(p players.Player, doc domain.Document) View {
	k := key(p.Tag)
	options := []Option{{Label: "Unassigned", Value: screens.UnassignedValue}}
	for _, t := range doc.SortedTeams() {
		if len(options) == maxOptions {
			break
		}
		options = append(options, Option{Label: t.Name, Value: key(t.Name)})
	}
	v := PlayerCard(p)
	v.Rows = []Row{
		{Select{ID: screens.ID(screens.ScopePlayer, "assignTeamSelect", k), Placeholder: "Select a team", Options: options}},
		{Button{ID: screens.ID(screens.ScopePlayer, "assignTeamBack", k), Label: "Cancel", Style: StyleSecondary}},
	}
	return v
}

func playerConfirmRemove(p players.Player) View {
	k := key(p.Tag)
	return View{
		Title:       fmt.Sprintf("Remove player: %s?", p.Tag),
		Description: "This will delete the player.",
		Color:       ColorError,
		Rows: []Row{{
			Button{ID: screens.ID(screens.ScopePlayer, "remove", k), Label: "Confirm remove", Style: StyleDanger},
			Button{ID: screens.ID(screens.ScopePlayer, "cancelRemove", k), Label: "Cancel", Style: StyleSecondary},
		}},
	}
}

// PlayerList renders one page of players, clamping page into range.
func PlayerList(doc domain.Document, page int) View {
	all := doc.SortedPlayers()
	if len(all) == 0 {
		return View{Title: "Players", Description: "No players registered yet.", Color: ColorList}
	}

	total := (len(all) + PageSize - 1) / PageSize
	page = min(max(page, 0), total-1)
	start := page * PageSize
	end := min(start+PageSize, len(all))

	lines := make([]string, 0, end-start)
	for _, p := range all[start:end] {
		lines = append(lines, fmt.Sprintf("%s%s — %s", badges(p), p.Tag, teamLabel(p)))
	}
	current := fmt.Sprint(page)
	return View{
		Title:       "Players",
		Description: fmt.Sprintf("%s\n\nPage %d of %d", strings.Join(lines, "\n"), page+1, total),
		Color:       ColorList,
		Rows: []Row{{
			Button{ID: screens.ID(screens.ScopePlayerList, "nav", "prev", current), Label: "Previous", Style: StyleSecondary, Disabled: page <= 0},
			Button{ID: screens.ID(screens.ScopePlayerList, "nav", "next", current), Label: "Next", Style: StyleSecondary, Disabled: page >= total-1},
			Button{ID: screens.ID(screens.ScopePlayerList, "nav", "close", current), Label: "Close", Style: StyleDanger},
		}},
	}
}

// TeamCard is the team detail embed without controls.
func TeamCard(t teams.Team, doc domain.Document) View {
	members := doc.Members(t.Name)
	return View{
		Title: "Team: " + t.Name,
		Description: strings.Join([]string{
			fmt.Sprintf("**Points:** %d", t.Points),
			"**Players:** " + tags(members, "None"),
			"**Captains:** " + tags(captains(members), "None"),
		}, "\n"),
		Color: ColorTeam,
	}
}

func teamHome(t teams.Team, doc domain.Document) View {
	k := key(t.Name)
	v := TeamCard(t, doc)
	v.Rows = []Row{
		{
			Button{ID: screens.ID(screens.ScopeTeam, "rename", k), Label: "Update name", Style: StylePrimary},
			Button{ID: screens.ID(screens.ScopeTeam, "points", k), Label: "Adjust points", Style: StyleSecondary},
			Button{ID: screens.ID(screens.ScopeTeam, "roster", k), Label: "Manage roster", Style: StylePrimary},
		},
		{
			Button{ID: screens.ID(screens.ScopeTeam, "removeConfirm", k), Label: "Remove team", Style: StyleDanger},
		},
	}
	return v
}

func backToTeam(t teams.Team) Row {
	return Row{Button{ID: screens.ID(screens.ScopeTeam, "back", key(t.Name)), Label: "Back to team", Style: StyleSecondary}}
}

func teamPoints(t teams.Team, doc domain.Document) View {
	v := TeamCard(t, doc)
	v.Rows = []Row{
		{Select{
			ID:          screens.ID(screens.ScopeTeam, "pointsSelect", key(t.Name)),
			Placeholder: "Choose how to adjust points",
			Options: []Option{
				{Label: "Add points", Value: string(domain.PointsAdd)},
				{Label: "Deduct points", Value: string(domain.PointsDeduct)},
				{Label: "Set points", Value: string(domain.PointsSet)},
			},
		}},
		backToTeam(t),
	}
	return v
}

func teamRoster(t teams.Team, doc domain.Document) View {
	var options []Option
	for _, p := range doc.Members(t.Name) {
		options = append(options, Option{Label: p.Tag, Value: key(p.Tag)})
	}
	return View{
		Title:       "Roster: " + t.Name,
		Description: "Select a member to manage.",
		Color:       ColorTeam,
		Rows: []Row{
			{memberSelect(screens.ID(screens.ScopeTeam, "rosterSelect", key(t.Name)), "Select a team member", options)},
			backToTeam(t),
		},
	}
}

func teamMember(t teams.Team, p players.Player) View {
	tk, pk := key(t.Name), key(p.Tag)
	label := "Make captain"
	if p.Captain {
		label = "Unset captain"
	}
	return View{
		Title:       "Member: " + p.Tag,
		Description: "Captain: " + yesNo(p.Captain),
		Color:       ColorPlayer,
		Rows: []Row{
			{
				Button{ID: screens.ID(screens.ScopeTeam, "memberToggleCaptain", tk, pk), Label: label, Style: StyleSecondary},
				Button{ID: screens.ID(screens.ScopeTeam, "memberRemove", tk, pk), Label: "Remove from team", Style: StyleDanger},
			},
			{Button{ID: screens.ID(screens.ScopeTeam, "roster", tk), Label: "Back to roster", Style: StyleSecondary}},
		},
	}
}

func teamConfirmRemove(t teams.Team) View {
	k := key(t.Name)
	return View{
		Title:       fmt.Sprintf("Remove team: %s?", t.Name),
		Description: "This will delete the team and unassign its players.",
		Color:       ColorError,
		Rows: []Row{{
			Button{ID: screens.ID(screens.ScopeTeam, "remove", k), Label: "Confirm remove", Style: StyleDanger},
			Button{ID: screens.ID(screens.ScopeTeam, "cancelRemove", k), Label: "Cancel", Style: StyleSecondary},
		}},
	}
}

func manageTeamsHome(doc domain.Document) View {
	all := doc.SortedTeams()
	v := View{Title: "Manage Teams", Color: ColorTeam}
	if len(all) == 0 {
		v.Description = "No teams yet. Add one with /teams add."
		return v
	}
	v.Description = "Select a team to manage."
	if len(all) > maxButtons {
		v.Description += " (Showing first 25)"
		all = all[:maxButtons]
	}
	for i := 0; i < len(all); i += buttonsPerRow {
		var row Row
		for _, t := range all[i:min(i+buttonsPerRow, len(all))] {
			row = append(row, Button{ID: screens.ID(screens.ScopeManageTeams, "select", key(t.Name)), Label: t.Name, Style: StylePrimary})
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}

func manageTeamCard(t teams.Team, doc domain.Document, status string) View {
	members := doc.Members(t.Name)
	lines := make([]string, len(members))
	for i, p := range members {
		lines[i] = badges(p) + p.Tag
	}
	roster := "None yet"
	if len(lines) > 0 {
		roster = strings.Join(lines, "\n")
	}
	parts := []string{
		"**Team:** " + t.Name,
		"**Players:** " + roster,
		"**What would you like to manage?**",
	}
	if status != "" {
		parts = append(parts, "**Last action:** "+status)
	}
	return View{
		Title:       "Manage Team: " + t.Name,
		Description: strings.Join(parts, "\n\n"),
		Color:       ColorTeam,
	}
}

func manageTeamActions(t teams.Team) []Row {
	k := key(t.Name)
	return []Row{
		{
			Button{ID: screens.ID(screens.ScopeManageTeams, "assign", k), Label: "Player Assignments", Style: StylePrimary},
			Button{ID: screens.ID(screens.ScopeManageTeams, "captain", k), Label: "Captains", Style: StyleSecondary},
		},
		{
			Button{ID: screens.ID(screens.ScopeManageTeams, "top", k), Label: "Top Players", Style: StyleSecondary},
			Button{ID: screens.ID(screens.ScopeManageTeams, "done", k), Label: labelDone, Style: StyleSecondary},
		},
	}
}

func backToManageTeam(t teams.Team) Row {
	return Row{Button{ID: screens.ID(screens.ScopeManageTeams, "back", key(t.Name)), Label: "Back to team", Style: StyleSecondary}}
}

func manageTeamAssign(t teams.Team, doc domain.Document) View {
	var options []Option
	for _, p := range doc.SortedPlayers() {
		options = append(options, Option{Label: p.Tag, Value: key(p.Tag), Description: "Currently: " + teamLabel(p)})
	}
	v := manageTeamCard(t, doc, "")
	v.Rows = []Row{
		{memberSelectNamed(screens.ID(screens.ScopeManageTeams, "assignSelect", key(t.Name)), "Select a player", "No players yet", options)},
		backToManageTeam(t),
	}
	return v
}

func manageTeamCaptains(t teams.Team, doc domain.Document) View {
	return manageTeamToggle(t, doc, "captainSelect", func(p players.Player) string {
		if p.Captain {
			return "Captain"
		}
		return "Not captain"
	})
}

func manageTeamTopPlayers(t teams.Team, doc domain.Document) View {
	return manageTeamToggle(t, doc, "topSelect", func(p players.Player) string {
		if p.TopPlayer {
			return "Top player"
		}
		return "Not top player"
	})
}

func manageTeamToggle(t teams.Team, doc domain.Document, action string, describe func(players.Player) string) View {
	var options []Option
	for _, p := range doc.Members(t.Name) {
		options = append(options, Option{Label: p.Tag, Value: key(p.Tag), Description: describe(p)})
	}
	v := manageTeamCard(t, doc, "")
	v.Rows = []Row{
		{memberSelect(screens.ID(screens.ScopeManageTeams, action, key(t.Name)), "Select a team member", options)},
		backToManageTeam(t),
	}
	return v
}

func memberSelect(id, placeholder string, options []Option) Select {
	return memberSelectNamed(id, placeholder, "No members yet", options)
}

// memberSelectNamed disables the menu when empty. The platform rejects menus
// without options, so an inert placeholder option is kept.
func memberSelectNamed(id, placeholder, empty string, options []Option) Select {
	if len(options) == 0 {
		return Select{ID: id, Placeholder: empty, Options: []Option{{Label: empty, Value: "none"}}, Disabled: true}
	}
	if len(options) > maxOptions {
		options = options[:maxOptions]
	}
	return Select{ID: id, Placeholder: placeholder, Options: options}
}

// TeamsList is the overview of every team with points and members.
func TeamsList(doc domain.Document) View {
	all := doc.SortedTeams()
	if len(all) == 0 {
		return View{Title: "Teams", Description: "No teams yet. Add one with `/team add`.", Color: ColorTeam}
	}
	blocks := make([]string, len(all))
	for i, t := range all {
		blocks[i] = fmt.Sprintf("**%s** — %d pts\nPlayers: %s", t.Name, t.Points, tags(doc.Members(t.Name), "None yet"))
	}
	return View{Title: "Teams", Description: strings.Join(blocks, "\n\n"), Color: ColorTeam}
}
