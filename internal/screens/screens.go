// Package screens models the interactive message flows as an explicit state
// machine. A Screen names what a message shows, an Event is a decoded
// component or modal interaction, and Reduce maps one to the next without
// touching storage or the chat platform.
package screens

// Screen is one card the bot can display. The set of variants is closed.
type Screen interface {
	isScreen()
}

// PlayerAdded is the card shown right after a player is created.
type PlayerAdded struct{ Player string }

// PlayerHome shows a player's details with the management buttons.
type PlayerHome struct{ Player string }

// PlayerAssignTeam offers a team picker for the player.
type PlayerAssignTeam struct{ Player string }

// PlayerConfirmRemove asks before deleting the player.
type PlayerConfirmRemove struct{ Player string }

// PlayerRemoved is the terminal card after a delete.
type PlayerRemoved struct{}

// PlayerList is one page of the paginated player listing.
type PlayerList struct{ Page int }

// TeamHome shows a team's details with the management buttons.
type TeamHome struct{ Team string }

// TeamPoints offers the add/deduct/set picker.
type TeamPoints struct{ Team string }

// TeamRoster offers a member picker.
type TeamRoster struct{ Team string }

// TeamMember shows one member with captain and removal controls.
type TeamMember struct{ Team, Player string }

// TeamConfirmRemove asks before deleting the team.
type TeamConfirmRemove struct{ Team string }

// TeamRemoved is the terminal card after a delete.
type TeamRemoved struct{}

// ManageTeamsHome lists teams as buttons.
type ManageTeamsHome struct{}

// ManageTeam is the roster overview with an optional last-action line.
type ManageTeam struct {
	Team   string
	Status string
}

// ManageTeamAssign toggles any player's membership in the team.
type ManageTeamAssign struct{ Team string }

// ManageTeamCaptains toggles captaincy among members.
type ManageTeamCaptains struct{ Team string }

// ManageTeamTopPlayers toggles top-player status among members.
type ManageTeamTopPlayers struct{ Team string }

// RenamePlayerModal prompts for a new tag. MessageID is the card to patch afterwards.
type RenamePlayerModal struct{ Player, MessageID string }

// RenameTeamModal prompts for a new team name.
type RenameTeamModal struct{ Team, MessageID string }

// PointsModal prompts for the amount of a points operation.
type PointsModal struct {
	Team      string
	Op        string
	MessageID string
}

func (PlayerAdded) isScreen()          {}
func (PlayerHome) isScreen()           {}
func (PlayerAssignTeam) isScreen()     {}
func (PlayerConfirmRemove) isScreen()  {}
func (PlayerRemoved) isScreen()        {}
func (PlayerList) isScreen()           {}
func (TeamHome) isScreen()             {}
func (TeamPoints) isScreen()           {}
func (TeamRoster) isScreen()           {}
func (TeamMember) isScreen()           {}
func (TeamConfirmRemove) isScreen()    {}
func (TeamRemoved) isScreen()          {}
func (ManageTeamsHome) isScreen()      {}
func (ManageTeam) isScreen()           {}
func (ManageTeamAssign) isScreen()     {}
func (ManageTeamCaptains) isScreen()   {}
func (ManageTeamTopPlayers) isScreen() {}
func (RenamePlayerModal) isScreen()    {}
func (RenameTeamModal) isScreen()      {}
func (PointsModal) isScreen()          {}
