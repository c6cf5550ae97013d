package players

// Player is a community member tracked by their display tag.
type Player struct {
	Tag       string `json:"tag"`
	Team      string `json:"team"`
	TopPlayer bool   `json:"topPlayer"`
	Captain   bool   `json:"captain"`
}

// Assigned reports whether the player references any team.
func (p Player) Assigned() bool {
	return p.Team != ""
}
