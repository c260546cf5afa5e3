package engine

// CaptureResult describes the table outcome of one played card.
type CaptureResult struct {
	// Captured lists the played card first, then the matched table card,
	// then any escalera cards in capture order. Empty when the card stayed
	// on the table.
	Captured []Card
	// CaidaBonus is the played card's caída points when its rank repeats
	// the previously played rank, else 0. It stacks with any capture.
	CaidaBonus int
	// MesaLimpia is set when a capture left the table empty.
	MesaLimpia bool
}

// ResolveCapture plays one card against the table:
//
//  1. Caída: if the played rank equals lastRank, the played card's caída
//     points are granted. This alone removes nothing from the table.
//  2. Direct match: the first table card of the same rank is captured
//     together with the played card. With no match, the played card joins
//     the table.
//  3. Escalera: from the matched card's ordinal, table cards with strictly
//     consecutive ordinals (+1 each step) are captured one by one until the
//     chain breaks.
//  4. Mesa limpia is flagged when the capture emptied the table.
//
// The input slice is not modified; the remaining table is returned. Updating
// lastRank to the played card's rank afterwards is the caller's job; it
// governs the next caída check regardless of capture outcome.
func ResolveCapture(table []Card, played Card, lastRank uint8) ([]Card, CaptureResult) {
	var res CaptureResult

	if lastRank != NoRank && lastRank == played.Rank() {
		res.CaidaBonus = played.CaidaPoints()
	}

	rest := make([]Card, len(table))
	copy(rest, table)

	matchIdx := -1
	for i, c := range rest {
		if c.Rank() == played.Rank() {
			matchIdx = i
			break
		}
	}
	if matchIdx == -1 {
		rest = append(rest, played)
		return rest, res
	}

	matched := rest[matchIdx]
	rest = append(rest[:matchIdx], rest[matchIdx+1:]...)
	res.Captured = []Card{played, matched}

	// Escalera: each pass removes a card, so the loop terminates.
	runValue := matched.Ordinal()
	for {
		next := -1
		for i, c := range rest {
			if c.Ordinal() == runValue+1 {
				next = i
				break
			}
		}
		if next == -1 {
			break
		}
		runValue = rest[next].Ordinal()
		res.Captured = append(res.Captured, rest[next])
		rest = append(rest[:next], rest[next+1:]...)
	}

	res.MesaLimpia = len(rest) == 0
	return rest, res
}
