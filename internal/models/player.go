package models

import "github.com/google/uuid"

// Player is a participant in one Caída game. Bot players are driven by the
// game's internal scheduler instead of external actions.
type Player struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsBot     bool      `json:"isBot"`
	Connected bool      `json:"connected"`
}

// NewPlayer creates a connected human player.
func NewPlayer(name string) *Player {
	id, _ := uuid.NewRandom()
	return &Player{ID: id, Name: name, Connected: true}
}

// NewBot creates a machine-driven player.
func NewBot(name string) *Player {
	p := NewPlayer(name)
	p.IsBot = true
	return p
}
