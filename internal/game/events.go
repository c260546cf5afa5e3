// internal/game/events.go
package game

import (
	"fmt"

	"github.com/deikotec/caida-game/engine"
	"github.com/google/uuid"
)

// GameEventType represents the type of a game-related event sent to clients.
type GameEventType string

// Constants defining the GameEvent types.
const (
	EventGameDealerDraw GameEventType = "game_dealer_draw" // Public: opening high-card draw picked the table-setter.
	EventGameRoundStart GameEventType = "game_round_start" // Public: new round laid on the table.
	EventPlayerOrder    GameEventType = "player_table_order"
	EventGameHandsDealt GameEventType = "game_hands_dealt"
	EventPlayerCanto    GameEventType = "player_canto"
	EventPlayerCard     GameEventType = "player_card_played"
	EventPlayerCaida    GameEventType = "player_caida"
	EventPlayerCapture  GameEventType = "player_capture"
	EventPlayerLimpia   GameEventType = "player_mesa_limpia"
	EventGameRoundEnd   GameEventType = "game_round_end"
	EventGameSwept      GameEventType = "game_table_swept" // Public: round leftovers went to the last capturer.
	EventPlayerCupo     GameEventType = "player_cupo_bonus"
	EventGamePlayerTurn GameEventType = "game_player_turn"
	EventPrivateSync    GameEventType = "private_sync_state" // Private: full state for one player.
	EventGameEnd        GameEventType = "game_end"
)

// EventUser identifies a user within a GameEvent payload.
type EventUser struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name,omitempty"`
}

// EventCard carries one card's details in a GameEvent payload. Every card in
// Caída is public once it leaves the deck, so nothing is obfuscated here.
type EventCard struct {
	Rank    string `json:"rank"`
	Suit    string `json:"suit"`
	Ordinal int    `json:"ordinal"`
	Name    string `json:"name"`
}

// GameEvent is the standard structure for broadcasting game state changes.
type GameEvent struct {
	Type    GameEventType `json:"type"`
	User    *EventUser    `json:"user,omitempty"`
	Cards   []EventCard   `json:"cards,omitempty"`
	Points  int           `json:"points,omitempty"`
	Order   string        `json:"order,omitempty"`
	Canto   string        `json:"canto,omitempty"`
	Message string        `json:"message,omitempty"`

	State *ViewState `json:"state,omitempty"` // Full state for sync events.
}

// engineCardToEvent converts an engine.Card to its payload form.
func engineCardToEvent(c engine.Card) EventCard {
	return EventCard{
		Rank:    c.RankName(),
		Suit:    c.SuitName(),
		Ordinal: int(c.Ordinal()),
		Name:    c.String(),
	}
}

func engineCardsToEvent(cards []engine.Card) []EventCard {
	if len(cards) == 0 {
		return nil
	}
	out := make([]EventCard, len(cards))
	for i, c := range cards {
		out[i] = engineCardToEvent(c)
	}
	return out
}

var engineEventTypes = map[engine.EventType]GameEventType{
	engine.EventDealerDraw: EventGameDealerDraw,
	engine.EventNewRound:   EventGameRoundStart,
	engine.EventTableOrder: EventPlayerOrder,
	engine.EventHandsDealt: EventGameHandsDealt,
	engine.EventCanto:      EventPlayerCanto,
	engine.EventCardPlayed: EventPlayerCard,
	engine.EventCaida:      EventPlayerCaida,
	engine.EventCapture:    EventPlayerCapture,
	engine.EventMesaLimpia: EventPlayerLimpia,
	engine.EventRoundEnded: EventGameRoundEnd,
	engine.EventTableSwept: EventGameSwept,
	engine.EventCupoBonus:  EventPlayerCupo,
	engine.EventGameEnded:  EventGameEnd,
}

// engineEventToGameEvent translates one engine event into the client form.
// Assumes lock is held by caller.
func (g *CaidaGame) engineEventToGameEvent(ev engine.Event) GameEvent {
	out := GameEvent{
		Type:   engineEventTypes[ev.Type],
		Cards:  engineCardsToEvent(ev.Cards),
		Points: ev.Points,
	}
	if ev.Player >= 0 && int(ev.Player) < len(g.Players) {
		p := g.Players[ev.Player]
		out.User = &EventUser{ID: p.ID, Name: p.Name}
	}
	if ev.Type == engine.EventTableOrder {
		out.Order = ev.Order.String()
	}
	if ev.Type == engine.EventCanto {
		out.Canto = ev.Canto.String()
	}
	out.Message = g.eventMessage(ev)
	return out
}

// eventMessage renders the Spanish table-talk line shown in the client log.
// Assumes lock is held by caller.
func (g *CaidaGame) eventMessage(ev engine.Event) string {
	name := "?"
	if ev.Player >= 0 && int(ev.Player) < len(g.Players) {
		name = g.Players[ev.Player].Name
	}

	switch ev.Type {
	case engine.EventDealerDraw:
		return fmt.Sprintf("%s gana la carta alta y echa la mesa", name)
	case engine.EventNewRound:
		return fmt.Sprintf("Ronda %d: %s echa la mesa", g.State.RoundNumber, name)
	case engine.EventTableOrder:
		if ev.WellLaid {
			return fmt.Sprintf("Mesa bien echada (%s): %s suma %d", ev.Order, name, ev.Points)
		}
		return fmt.Sprintf("Mesa mal echada: %s suma %d", name, ev.Points)
	case engine.EventHandsDealt:
		return "Se reparten tres cartas a cada jugador"
	case engine.EventCanto:
		return fmt.Sprintf("%s canta %s por %d puntos", name, ev.Canto, ev.Points)
	case engine.EventCardPlayed:
		if len(ev.Cards) == 1 {
			return fmt.Sprintf("%s juega %s", name, ev.Cards[0])
		}
		return fmt.Sprintf("%s juega", name)
	case engine.EventCaida:
		return fmt.Sprintf("¡Caída! %s suma %d puntos", name, ev.Points)
	case engine.EventCapture:
		return fmt.Sprintf("%s recoge %d cartas", name, len(ev.Cards))
	case engine.EventMesaLimpia:
		return fmt.Sprintf("¡Mesa limpia! %s suma %d puntos", name, ev.Points)
	case engine.EventRoundEnded:
		return "Fin de la ronda"
	case engine.EventTableSwept:
		return fmt.Sprintf("%s se lleva las %d cartas sobrantes (%d puntos)", name, len(ev.Cards), ev.Points)
	case engine.EventCupoBonus:
		return fmt.Sprintf("Cupo: %s suma %d puntos", name, ev.Points)
	case engine.EventGameEnded:
		return fmt.Sprintf("%s gana la partida con %d puntos", name, ev.Points)
	default:
		return ""
	}
}
