package engine

// EventType identifies a state-changing game event.
type EventType uint8

const (
	EventDealerDraw EventType = iota // opening high-card draw for the first table-setter
	EventNewRound                    // round opened: table laid, starter chosen
	EventTableOrder                  // order declared and scored (bien/mal echada)
	EventHandsDealt                  // three cards dealt to each player
	EventCanto                       // a canto scored at deal time
	EventCardPlayed                  // a card left a player's hand
	EventCaida                       // played rank repeated the previous one
	EventCapture                     // table cards captured (direct match + escalera)
	EventMesaLimpia                  // capture emptied the table
	EventRoundEnded                  // hands and deck exhausted, round awaiting settlement
	EventTableSwept                  // leftovers awarded to the round's last capturer
	EventCupoBonus                   // round capture count reached the cupo
	EventGameEnded                   // a player reached the target score or auto-won
)

var eventNames = [...]string{
	"dealer_draw",
	"new_round",
	"table_order",
	"hands_dealt",
	"canto",
	"card_played",
	"caida",
	"capture",
	"mesa_limpia",
	"round_ended",
	"table_swept",
	"cupo_bonus",
	"game_ended",
}

func (t EventType) String() string {
	if int(t) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[t]
}

// Event records one state-changing occurrence inside a transition. Every
// transition returns the full ordered list of events it produced; rendering
// them into a human-readable log is the presentation layer's concern.
type Event struct {
	Type   EventType
	Player int8   // acting or awarded player, NoPlayer for neutral events
	Cards  []Card // cards involved, in event-specific order
	Points int    // points awarded by this event, if any

	Order    Order     // EventTableOrder: the declared order
	WellLaid bool      // EventTableOrder: true for mesa bien echada
	Canto    CantoType // EventCanto: which combination scored
}
