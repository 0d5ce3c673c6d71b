package entity

// Player is one side of a match. ID is the live connection id; the
// player exists only for as long as that connection does.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
