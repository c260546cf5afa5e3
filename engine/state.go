// Package engine implements the Caída card game rules.
//
// The engine is a pure state-transition component: every operation takes the
// current RoundState, validates the proposed action, and either mutates the
// state in full or returns an error leaving it untouched. It performs no I/O
// and no locking; serializing access to one RoundState is the coordinator's
// responsibility.
package engine

// Scoring constants for the two-player game.
const (
	HandSize        = 3  // cards dealt to each player per hand
	TableStartSize  = 4  // face-up cards laid at round start
	TargetScore     = 24 // first to reach this wins
	MesaLimpiaBonus = 4  // bonus for emptying the table on a capture
	CupoThreshold   = 20 // round capture count at which the cupo bonus starts
)

// NoRank marks the absence of a previously played rank.
const NoRank uint8 = 0xFF

// NoPlayer marks the absence of a player reference (no capturer, no winner).
const NoPlayer int8 = -1

// Status is the round state machine's current phase.
type Status uint8

const (
	StatusWaitingForTableOrder Status = iota
	StatusDealingHands
	StatusInProgress
	StatusRoundEnd
	StatusFinished
)

var statusNames = [...]string{
	"waiting_for_table_order",
	"dealing_hands",
	"in_progress",
	"round_end",
	"finished",
}

func (s Status) String() string {
	if int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// Order is the table-order declaration made by the round starter.
type Order uint8

const (
	OrderAscending Order = iota
	OrderDescending
)

func (o Order) String() string {
	if o == OrderAscending {
		return "ascendente"
	}
	return "descendente"
}

// PlayerState holds one player's hand, captured pile, and cumulative score.
type PlayerState struct {
	Hand        [HandSize]Card
	HandLen     uint8
	Captured    [DeckSize]Card // cards captured this round; reset each round
	CapturedLen uint8
	Score       int16 // cumulative across rounds, reset only on a new game
}

// RoundState holds the complete, self-contained state of a Caída game.
// It is a flat value type (no pointers, no slices) so that snapshots for the
// compare-and-swap store and retry-safe transitions are plain struct copies.
type RoundState struct {
	Status        Status
	Players       [2]PlayerState
	Deck          [DeckSize]Card // remaining cards; drawn from the top (highest index)
	DeckLen       uint8
	Table         [DeckSize]Card
	TableLen      uint8
	CurrentPlayer uint8
	RoundStarter  uint8 // table-setter; plays first each hand of the round

	LastPlayedRank  uint8 // rank of the most recently played card, or NoRank
	LastCapturer    int8  // player who captured most recently this round, or NoPlayer
	FirstHandOfGame bool  // true only before the game's first deal
	HandNumber      uint8 // deals completed this round
	RoundNumber     uint8
	Winner          int8 // NoPlayer until Status == StatusFinished

	Rules Rules
	RNG   uint64 // xorshift64 state, seeded by the coordinator
}

// ---------------------------------------------------------------------------
// xorshift64 RNG, inline, no interface
// ---------------------------------------------------------------------------

func (g *RoundState) nextRand() uint64 {
	x := g.RNG
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.RNG = x
	return x
}

// randN returns a random number in [0, n).
func (g *RoundState) randN(n uint64) uint64 {
	return g.nextRand() % n
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewGame initializes a RoundState with the given seed and rules. The deck
// is built but the opening draw and first round setup happen in Start.
func NewGame(seed uint64, rules Rules) RoundState {
	var g RoundState
	g.RNG = seed
	if g.RNG == 0 {
		g.RNG = 1 // xorshift can't start at 0
	}
	g.Rules = rules
	g.LastPlayedRank = NoRank
	g.LastCapturer = NoPlayer
	g.Winner = NoPlayer
	g.FirstHandOfGame = true
	g.fillDeck()
	return g
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// IsFinished reports whether the game has ended.
func (g *RoundState) IsFinished() bool { return g.Status == StatusFinished }

// Opponent returns the other player's index.
func Opponent(player uint8) uint8 { return 1 - player }

// HandContains reports whether the player currently holds card.
func (g *RoundState) HandContains(player uint8, card Card) bool {
	p := &g.Players[player]
	for i := uint8(0); i < p.HandLen; i++ {
		if p.Hand[i] == card {
			return true
		}
	}
	return false
}

// TableCards returns a copy of the current face-up table pool.
func (g *RoundState) TableCards() []Card {
	out := make([]Card, g.TableLen)
	copy(out, g.Table[:g.TableLen])
	return out
}

// HandCards returns a copy of the player's current hand.
func (g *RoundState) HandCards(player uint8) []Card {
	p := &g.Players[player]
	out := make([]Card, p.HandLen)
	copy(out, p.Hand[:p.HandLen])
	return out
}

// bothHandsEmpty reports whether neither player holds any cards.
func (g *RoundState) bothHandsEmpty() bool {
	return g.Players[0].HandLen == 0 && g.Players[1].HandLen == 0
}

// award adds points to the player's score. It does not check for game end;
// callers do that after each scoring event so later events in the same batch
// cannot fire once the game is over.
func (g *RoundState) award(player uint8, points int) {
	g.Players[player].Score += int16(points)
}

// checkGameEnd finishes the game if the player has reached the target score.
// Returns true when the game ended.
func (g *RoundState) checkGameEnd(player uint8) bool {
	if g.Players[player].Score >= g.Rules.TargetScore {
		g.finish(player)
		return true
	}
	return false
}

// finish marks the game over in favor of winner.
func (g *RoundState) finish(winner uint8) {
	g.Status = StatusFinished
	g.Winner = int8(winner)
}

// ---------------------------------------------------------------------------
// Snapshot (Save / Restore)
// ---------------------------------------------------------------------------

// Snapshot is a complete value-copy of RoundState. The coordinator's
// compare-and-swap retry loop relies on transitions being replayable from a
// saved copy.
type Snapshot RoundState

// Save returns a snapshot of the current state.
func (g *RoundState) Save() Snapshot { return Snapshot(*g) }

// Restore replaces the state with the given snapshot.
func (g *RoundState) Restore(s Snapshot) { *g = RoundState(s) }
