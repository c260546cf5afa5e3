package engine

// fillDeck rebuilds the full 40-card deck in the state, clearing hands,
// table, and captured piles. Called at game start and at each round start.
func (g *RoundState) fillDeck() {
	idx := 0
	for suit := uint8(0); suit < NumSuits; suit++ {
		for rank := uint8(0); rank < NumRanks; rank++ {
			g.Deck[idx] = NewCard(suit, rank)
			idx++
		}
	}
	g.DeckLen = DeckSize
	g.TableLen = 0
	for p := 0; p < 2; p++ {
		g.Players[p].HandLen = 0
		g.Players[p].CapturedLen = 0
	}
}

// shuffleDeck applies a Fisher-Yates shuffle to the remaining deck.
func (g *RoundState) shuffleDeck() {
	for i := int(g.DeckLen) - 1; i > 0; i-- {
		j := int(g.randN(uint64(i + 1)))
		g.Deck[i], g.Deck[j] = g.Deck[j], g.Deck[i]
	}
}

// drawCard pops the top card. The caller must have checked DeckLen.
func (g *RoundState) drawCard() Card {
	g.DeckLen--
	return g.Deck[g.DeckLen]
}

// Draw removes n cards from the top of the deck. Fails with
// ErrInsufficientCards, leaving the deck untouched, if fewer than n remain.
func (g *RoundState) Draw(n int) ([]Card, error) {
	if n < 0 || n > int(g.DeckLen) {
		return nil, ErrInsufficientCards
	}
	out := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.drawCard())
	}
	return out, nil
}

// layTable draws the four opening table cards, reshuffling the full deck
// until no two of them share a rank. The distinct-rank constraint is a game
// rule, not cosmetics: the table-order declaration assumes four distinct
// ranks.
func (g *RoundState) layTable() {
	for {
		g.shuffleDeck()
		top := g.Deck[g.DeckLen-TableStartSize : g.DeckLen]
		if !hasDuplicateRank(top) {
			for i := 0; i < TableStartSize; i++ {
				g.Table[g.TableLen] = g.drawCard()
				g.TableLen++
			}
			return
		}
		// Collision: all 40 cards are still in the deck, so reshuffling the
		// whole deck is the same as returning the four and redrawing.
	}
}

func hasDuplicateRank(cards []Card) bool {
	var seen [NumRanks]bool
	for _, c := range cards {
		if seen[c.Rank()] {
			return true
		}
		seen[c.Rank()] = true
	}
	return false
}
