package teams

// Team is a named roster with a running points total.
// Players reference a team by its display name, never by key.
type Team struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}
