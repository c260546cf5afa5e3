// internal/game/bot.go
package game

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/deikotec/caida-game/engine"
)

// scheduleBotMove arms the think-time timer when the awaited player is a
// bot. Assumes lock is held by caller.
func (g *CaidaGame) scheduleBotMove() {
	actor := g.actingPlayer()
	if actor == nil || !actor.IsBot {
		return
	}

	if g.botTimer != nil {
		g.botTimer.Stop()
	}
	g.botTimer = time.AfterFunc(g.BotDelay, func() {
		g.Mu.Lock()
		defer g.Mu.Unlock()
		g.botMoveLocked()
	})
}

// botMoveLocked performs one bot action matching the current state.
// Assumes lock is held by caller.
func (g *CaidaGame) botMoveLocked() {
	if g.GameOver {
		return
	}
	actor := g.actingPlayer()
	if actor == nil || !actor.IsBot {
		return
	}

	switch g.State.Status {
	case engine.StatusWaitingForTableOrder:
		order := g.botChooseOrder()
		if err := g.chooseTableOrderLocked(actor.ID, order); err != nil {
			g.log.WithError(err).Error("bot table order rejected")
		}
	case engine.StatusInProgress:
		card := g.botChooseCard(g.State.CurrentPlayer)
		if err := g.playCardLocked(actor.ID, card); err != nil {
			g.log.WithError(err).WithField("card", card.String()).Error("bot play rejected")
		}
	}
}

// botChooseOrder declares the direction that scores more pips, ascending on
// a tie. Assumes lock is held by caller.
func (g *CaidaGame) botChooseOrder() engine.Order {
	table := g.State.TableCards()
	asc, errA := engine.ScoreTableOrder(table, engine.OrderAscending)
	desc, errD := engine.ScoreTableOrder(table, engine.OrderDescending)
	if errA != nil || errD != nil {
		return engine.OrderAscending
	}
	if desc > asc {
		return engine.OrderDescending
	}
	return engine.OrderAscending
}

// botChooseCard picks the first hand card whose rank appears on the table,
// falling back to the first card when nothing matches.
// Assumes lock is held by caller.
func (g *CaidaGame) botChooseCard(seat uint8) engine.Card {
	hand := g.State.HandCards(seat)
	table := g.State.TableCards()

	for _, h := range hand {
		for _, t := range table {
			if h.Rank() == t.Rank() {
				g.log.WithFields(logrus.Fields{"card": h.String()}).Debug("bot found table match")
				return h
			}
		}
	}
	return hand[0]
}
