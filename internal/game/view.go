// internal/game/view.go
package game

import (
	"github.com/google/uuid"
)

// ViewPlayer represents one seat as seen by a specific observer. The hand is
// revealed only to its owner; opponents see the count.
type ViewPlayer struct {
	PlayerID      uuid.UUID   `json:"playerId"`
	Name          string      `json:"name"`
	IsBot         bool        `json:"isBot"`
	Connected     bool        `json:"connected"`
	HandSize      int         `json:"handSize"`
	CapturedCount int         `json:"capturedCount"`
	Score         int         `json:"score"`
	IsCurrentTurn bool        `json:"isCurrentTurn"`
	Hand          []EventCard `json:"hand,omitempty"` // Populated only for the observer.
}

// ViewState is the full game state tailored to one observer.
type ViewState struct {
	GameID      uuid.UUID    `json:"gameId"`
	Status      string       `json:"status"`
	RoundNumber int          `json:"roundNumber"`
	HandNumber  int          `json:"handNumber"`
	DeckSize    int          `json:"deckSize"`
	Table       []EventCard  `json:"table"`
	Players     []ViewPlayer `json:"players"`
	TargetScore int          `json:"targetScore"`
	WinnerID    uuid.UUID    `json:"winnerId,omitempty"`
	GameOver    bool         `json:"gameOver"`
}

// ViewFor generates a snapshot of the game state tailored to the requesting
// player. The engine state is the authoritative source.
// Assumes lock is held by caller.
func (g *CaidaGame) ViewFor(forUser uuid.UUID) ViewState {
	view := ViewState{
		GameID:      g.ID,
		Status:      g.State.Status.String(),
		RoundNumber: int(g.State.RoundNumber),
		HandNumber:  int(g.State.HandNumber),
		DeckSize:    int(g.State.DeckLen),
		Table:       engineCardsToEvent(g.State.TableCards()),
		TargetScore: int(g.Rules.TargetScore),
		GameOver:    g.GameOver || g.State.IsFinished(),
	}

	actor := g.actingPlayer()
	for seat := uint8(0); seat < 2; seat++ {
		p := g.Players[seat]
		vp := ViewPlayer{
			PlayerID:      p.ID,
			Name:          p.Name,
			IsBot:         p.IsBot,
			Connected:     p.Connected,
			HandSize:      int(g.State.Players[seat].HandLen),
			CapturedCount: int(g.State.Players[seat].CapturedLen),
			Score:         int(g.State.Players[seat].Score),
			IsCurrentTurn: actor != nil && actor.ID == p.ID,
		}
		if p.ID == forUser {
			vp.Hand = engineCardsToEvent(g.State.HandCards(seat))
		}
		view.Players = append(view.Players, vp)
	}

	if g.State.Winner >= 0 {
		view.WinnerID = g.Players[g.State.Winner].ID
	}
	return view
}
