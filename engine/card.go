package engine

import "fmt"

// Suit constants, packed into the upper 4 bits of Card.
const (
	SuitOros    uint8 = 0
	SuitCopas   uint8 = 1
	SuitEspadas uint8 = 2
	SuitBastos  uint8 = 3
)

// Rank constants, packed into the lower 4 bits of Card. The Spanish deck has no
// 8s or 9s; the three face cards follow the 7 directly.
const (
	RankAs      uint8 = 0
	RankDos     uint8 = 1
	RankTres    uint8 = 2
	RankCuatro  uint8 = 3
	RankCinco   uint8 = 4
	RankSeis    uint8 = 5
	RankSiete   uint8 = 6
	RankSota    uint8 = 7
	RankCaballo uint8 = 8
	RankRey     uint8 = 9
)

const (
	NumRanks = 10
	NumSuits = 4
	DeckSize = 40 // NumRanks * NumSuits
)

// Card is a packed uint8: upper 4 bits = suit, lower 4 bits = rank.
type Card uint8

// EmptyCard represents the absence of a card.
const EmptyCard Card = 0xFF

// NewCard constructs a Card from suit and rank.
func NewCard(suit, rank uint8) Card {
	return Card((suit << 4) | (rank & 0x0F))
}

// ParseCard validates suit and rank ranges before constructing a Card.
func ParseCard(suit, rank uint8) (Card, error) {
	if suit >= NumSuits {
		return EmptyCard, fmt.Errorf("suit %d out of range", suit)
	}
	if rank >= NumRanks {
		return EmptyCard, fmt.Errorf("rank %d out of range", rank)
	}
	return NewCard(suit, rank), nil
}

// Suit returns the suit bits (upper 4).
func (c Card) Suit() uint8 { return uint8(c) >> 4 }

// Rank returns the rank bits (lower 4).
func (c Card) Rank() uint8 { return uint8(c) & 0x0F }

// Ordinal returns the sequencing value 1–10 used for escalera chains and the
// table-order declaration: As through Siete map to 1–7, then Sota 8,
// Caballo 9, Rey 10.
func (c Card) Ordinal() uint8 {
	return c.Rank() + 1
}

// PipValue returns the card's point value when awarded directly (table-order
// scoring, leftover table cards at round end). It equals the ordinal.
func (c Card) PipValue() int {
	return int(c.Ordinal())
}

// CaidaPoints returns the bonus awarded when this card lands a caída:
// 1 for the number cards, 2/3/4 for Sota/Caballo/Rey.
func (c Card) CaidaPoints() int {
	switch c.Rank() {
	case RankSota:
		return 2
	case RankCaballo:
		return 3
	case RankRey:
		return 4
	default:
		return 1
	}
}

var rankNames = [NumRanks]string{
	"As", "Dos", "Tres", "Cuatro", "Cinco", "Seis", "Siete",
	"Sota", "Caballo", "Rey",
}

var suitNames = [NumSuits]string{"Oros", "Copas", "Espadas", "Bastos"}

// RankName returns the Spanish rank name, or "?" for malformed cards.
func (c Card) RankName() string {
	r := c.Rank()
	if r >= NumRanks {
		return "?"
	}
	return rankNames[r]
}

// SuitName returns the Spanish suit name, or "?" for malformed cards.
func (c Card) SuitName() string {
	s := c.Suit()
	if s >= NumSuits {
		return "?"
	}
	return suitNames[s]
}

func (c Card) String() string {
	if c == EmptyCard {
		return "ninguna"
	}
	return c.RankName() + " de " + c.SuitName()
}
