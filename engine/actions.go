package engine

import (
	"fmt"
	"sort"
)

// Start performs the opening high-card draw to pick the first table-setter
// and opens the first round. It must be called exactly once, on a state
// freshly built by NewGame; later calls are no-ops.
func (g *RoundState) Start() []Event {
	if g.RoundNumber != 0 {
		return nil
	}

	var events []Event

	// Each player exposes one card; the higher ordinal sets the first
	// table. Ties redraw. The cards return to the deck before the round is
	// laid out, so the full 40 stay in play.
	var starter uint8
	for {
		if g.DeckLen < 2 {
			g.fillDeck()
		}
		g.shuffleDeck()
		c0 := g.drawCard()
		c1 := g.drawCard()
		if c0.Ordinal() == c1.Ordinal() {
			continue
		}
		if c0.Ordinal() > c1.Ordinal() {
			starter = 0
		} else {
			starter = 1
		}
		events = append(events, Event{
			Type:   EventDealerDraw,
			Player: int8(starter),
			Cards:  []Card{c0, c1},
		})
		break
	}

	g.startRound(starter, &events)
	return events
}

// startRound rebuilds and lays out a round: full shuffled deck, four
// distinct-rank table cards, per-round trackers cleared. Scores persist.
func (g *RoundState) startRound(starter uint8, events *[]Event) {
	g.fillDeck()
	g.layTable()
	g.RoundNumber++
	g.HandNumber = 0
	g.LastPlayedRank = NoRank
	g.LastCapturer = NoPlayer
	g.RoundStarter = starter
	g.CurrentPlayer = starter
	g.Status = StatusWaitingForTableOrder

	*events = append(*events, Event{
		Type:   EventNewRound,
		Player: int8(starter),
		Cards:  g.TableCards(),
	})
}

// ScoreTableOrder evaluates a table-order declaration against four laid
// cards. The cards are sorted by ordinal; position i is compared to the
// expected rank run (As..Cuatro ascending, Cuatro..As descending) and each
// hit awards that card's pip value. A zero total is the "mesa mal echada"
// case, which the state machine converts into +1 for the opponent.
//
// The four table cards never share a rank by construction; duplicate-rank
// input is rejected defensively.
func ScoreTableOrder(table []Card, order Order) (int, error) {
	if len(table) != TableStartSize {
		return 0, fmt.Errorf("table order needs %d cards, got %d", TableStartSize, len(table))
	}
	if hasDuplicateRank(table) {
		return 0, fmt.Errorf("table cards must have distinct ranks")
	}

	sorted := make([]Card, TableStartSize)
	copy(sorted, table)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Ordinal() < sorted[j].Ordinal() })

	points := 0
	for i, c := range sorted {
		expected := uint8(i) // RankAs..RankCuatro
		if order == OrderDescending {
			expected = uint8(TableStartSize - 1 - i)
		}
		if c.Rank() == expected {
			points += c.PipValue()
		}
	}
	return points, nil
}

// ChooseTableOrder applies the round starter's ascending/descending
// declaration, scores it, and deals the first hands of the round.
func (g *RoundState) ChooseTableOrder(player uint8, order Order) ([]Event, error) {
	if g.Status != StatusWaitingForTableOrder {
		return nil, ErrInvalidStateForAction
	}
	if player != g.RoundStarter {
		return nil, ErrNotPlayerTurn
	}

	points, err := ScoreTableOrder(g.Table[:g.TableLen], order)
	if err != nil {
		return nil, err
	}

	var events []Event
	scorer := g.RoundStarter
	wellLaid := points > 0
	if !wellLaid {
		// Mesa mal echada: the opponent takes one point instead.
		scorer = Opponent(g.RoundStarter)
		points = 1
	}
	g.award(scorer, points)
	events = append(events, Event{
		Type:     EventTableOrder,
		Player:   int8(scorer),
		Points:   points,
		Order:    order,
		WellLaid: wellLaid,
	})
	if g.checkGameEnd(scorer) {
		return g.appendGameEnded(events), nil
	}

	g.dealHands(&events)
	return events, nil
}

// dealHands deals three cards to each player and settles cantos. With fewer
// than six cards left the round ends instead of a short deal.
func (g *RoundState) dealHands(events *[]Event) {
	g.Status = StatusDealingHands

	if int(g.DeckLen) < 2*HandSize {
		g.Status = StatusRoundEnd
		*events = append(*events, Event{Type: EventRoundEnded, Player: NoPlayer})
		return
	}

	for p := uint8(0); p < 2; p++ {
		for i := 0; i < HandSize; i++ {
			g.Players[p].Hand[i] = g.drawCard()
		}
		g.Players[p].HandLen = HandSize
	}
	g.HandNumber++
	firstHand := g.FirstHandOfGame
	g.FirstHandOfGame = false

	*events = append(*events, Event{Type: EventHandsDealt, Player: NoPlayer})

	// Cantos are scanned only over the three cards just dealt. When both
	// players hold one, only the better canto scores.
	c0, ok0 := EvaluateCantos(g.Players[0].Hand, firstHand)
	c1, ok1 := EvaluateCantos(g.Players[1].Hand, firstHand)

	if ok0 || ok1 {
		var winner uint8
		switch {
		case ok0 && ok1:
			winner = betterCanto(c0, c1, g.RoundStarter)
		case ok0:
			winner = 0
		default:
			winner = 1
		}
		canto := c0
		if winner == 1 {
			canto = c1
		}
		if canto.AutoWin {
			// The first-hand Tribilín pays the full target.
			canto.Points = int(g.Rules.TargetScore)
		}

		*events = append(*events, Event{
			Type:   EventCanto,
			Player: int8(winner),
			Points: canto.Points,
			Canto:  canto.Type,
			Cards:  g.HandCards(winner),
		})

		g.award(winner, canto.Points)
		if canto.AutoWin {
			g.finish(winner)
			*events = g.appendGameEnded(*events)
			return
		}
		if g.checkGameEnd(winner) {
			*events = g.appendGameEnded(*events)
			return
		}
	}

	g.Status = StatusInProgress
}

// PlayCard resolves one card played by the current player: caída bonus,
// table capture with escalera chaining, mesa limpia, turn alternation, and
// redeal or round end once both hands empty.
func (g *RoundState) PlayCard(player uint8, card Card) ([]Event, error) {
	if g.Status != StatusInProgress {
		return nil, ErrInvalidStateForAction
	}
	if player != g.CurrentPlayer {
		return nil, ErrNotPlayerTurn
	}
	if !g.HandContains(player, card) {
		return nil, ErrCardNotInHand
	}

	g.removeFromHand(player, card)

	events := []Event{{Type: EventCardPlayed, Player: int8(player), Cards: []Card{card}}}

	newTable, res := ResolveCapture(g.Table[:g.TableLen], card, g.LastPlayedRank)
	g.LastPlayedRank = card.Rank()

	// Card movement completes unconditionally; only scoring is cut off
	// once the game ends mid-play.
	copy(g.Table[:], newTable)
	g.TableLen = uint8(len(newTable))
	if len(res.Captured) > 0 {
		pile := &g.Players[player]
		for _, c := range res.Captured {
			pile.Captured[pile.CapturedLen] = c
			pile.CapturedLen++
		}
		g.LastCapturer = int8(player)
	}

	if res.CaidaBonus > 0 {
		g.award(player, res.CaidaBonus)
		events = append(events, Event{
			Type:   EventCaida,
			Player: int8(player),
			Cards:  []Card{card},
			Points: res.CaidaBonus,
		})
	}
	if len(res.Captured) > 0 {
		events = append(events, Event{
			Type:   EventCapture,
			Player: int8(player),
			Cards:  res.Captured,
		})
	}

	// Scoring applies one event at a time: once a player reaches the
	// target the game is over and nothing later in this play may score.
	if res.CaidaBonus > 0 && g.checkGameEnd(player) {
		return g.appendGameEnded(events), nil
	}

	if res.MesaLimpia {
		g.award(player, g.Rules.MesaLimpiaBonus)
		events = append(events, Event{
			Type:   EventMesaLimpia,
			Player: int8(player),
			Points: g.Rules.MesaLimpiaBonus,
		})
		if g.checkGameEnd(player) {
			return g.appendGameEnded(events), nil
		}
	}

	g.CurrentPlayer = Opponent(g.CurrentPlayer)

	if g.bothHandsEmpty() {
		g.dealHands(&events)
	}

	return events, nil
}

// AdvanceRound settles a finished round: leftover table cards go to the last
// capturer, the cupo bonus is applied, and either the game ends or the next
// round opens with the starter swapped. The coordinator re-enters the engine
// with this once it observes StatusRoundEnd.
func (g *RoundState) AdvanceRound() ([]Event, error) {
	if g.Status != StatusRoundEnd {
		return nil, ErrInvalidStateForAction
	}

	var events []Event

	if g.LastCapturer != NoPlayer && g.TableLen > 0 {
		captor := uint8(g.LastCapturer)
		swept := g.TableCards()
		points := 0
		pile := &g.Players[captor]
		for _, c := range swept {
			points += c.PipValue()
			pile.Captured[pile.CapturedLen] = c
			pile.CapturedLen++
		}
		g.TableLen = 0
		g.award(captor, points)
		events = append(events, Event{
			Type:   EventTableSwept,
			Player: int8(captor),
			Cards:  swept,
			Points: points,
		})
		if g.checkGameEnd(captor) {
			return g.appendGameEnded(events), nil
		}
	}

	for p := uint8(0); p < 2; p++ {
		count := int(g.Players[p].CapturedLen)
		if count >= g.Rules.CupoThreshold {
			bonus := count - (g.Rules.CupoThreshold - 1)
			g.award(p, bonus)
			events = append(events, Event{
				Type:   EventCupoBonus,
				Player: int8(p),
				Points: bonus,
			})
			if g.checkGameEnd(p) {
				return g.appendGameEnded(events), nil
			}
		}
	}

	g.startRound(Opponent(g.RoundStarter), &events)
	return events, nil
}

// removeFromHand deletes card from the player's hand, compacting the array.
// The caller must have verified membership.
func (g *RoundState) removeFromHand(player uint8, card Card) {
	p := &g.Players[player]
	for i := uint8(0); i < p.HandLen; i++ {
		if p.Hand[i] == card {
			p.Hand[i] = p.Hand[p.HandLen-1]
			p.Hand[p.HandLen-1] = EmptyCard
			p.HandLen--
			return
		}
	}
}

// appendGameEnded records the terminal event with the winner and their score.
func (g *RoundState) appendGameEnded(events []Event) []Event {
	return append(events, Event{
		Type:   EventGameEnded,
		Player: g.Winner,
		Points: int(g.Players[g.Winner].Score),
	})
}
