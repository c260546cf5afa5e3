// internal/game/game.go
package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/deikotec/caida-game/engine"
	"github.com/deikotec/caida-game/internal/models"
)

// OnGameEndFunc defines the signature for a callback executed when a game
// ends. It receives the game ID, the winner's ID, and the final scores.
type OnGameEndFunc func(gameID uuid.UUID, winner uuid.UUID, scores map[uuid.UUID]int)

// CaidaGame coordinates a single two-player Caída match: it holds the
// authoritative engine state, validates and applies player actions, drives
// bot opponents and round transitions on timers, and pushes events out
// through the broadcast callbacks.
type CaidaGame struct {
	ID uuid.UUID

	Players [2]*models.Player
	Rules   engine.Rules

	// State is the authoritative game state. All reads and writes go
	// through Mu.
	State engine.RoundState

	// Timer configuration.
	BotDelay   time.Duration // Artificial think time before a bot move.
	RoundPause time.Duration // Pause shown between rounds.

	botTimer   *time.Timer
	roundTimer *time.Timer

	Started  bool
	GameOver bool

	Mu  sync.Mutex
	log *logrus.Entry

	// Communication callbacks.
	BroadcastFn         func(ev GameEvent)
	BroadcastToPlayerFn func(playerID uuid.UUID, ev GameEvent)
	OnGameEnd           OnGameEndFunc

	// PersistFn, when set, receives the authoritative state after every
	// applied action so the coordinator's store stays current.
	PersistFn func(state engine.RoundState)
}

// NewCaidaGame creates a game instance for the two given players.
func NewCaidaGame(p0, p1 *models.Player, rules engine.Rules) *CaidaGame {
	id, _ := uuid.NewRandom()
	return &CaidaGame{
		ID:         id,
		Players:    [2]*models.Player{p0, p1},
		Rules:      rules,
		BotDelay:   1200 * time.Millisecond,
		RoundPause: 2 * time.Second,
		log:        logrus.WithField("game_id", id),
	}
}

// Begin initializes the engine, performs the opening draw, and lays the
// first round's table. Safe to call once; later calls are ignored.
func (g *CaidaGame) Begin() {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.Started || g.GameOver {
		g.log.WithFields(logrus.Fields{"started": g.Started, "over": g.GameOver}).
			Warn("Begin called in invalid state")
		return
	}
	g.Started = true

	seed := uint64(time.Now().UnixNano())
	g.State = engine.NewGame(seed, g.Rules)
	g.log.WithFields(logrus.Fields{
		"player_0": g.Players[0].Name,
		"player_1": g.Players[1].Name,
		"seed":     seed,
	}).Info("game started")

	events := g.State.Start()
	g.applyEvents(events)
	g.afterAction()
}

// ChooseTableOrder applies the table-setter's ascending or descending
// declaration on their behalf.
func (g *CaidaGame) ChooseTableOrder(playerID uuid.UUID, order engine.Order) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.chooseTableOrderLocked(playerID, order)
}

// PlayCard plays one card from the player's hand.
func (g *CaidaGame) PlayCard(playerID uuid.UUID, card engine.Card) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.playCardLocked(playerID, card)
}

// chooseTableOrderLocked validates and applies the declaration.
// Assumes lock is held by caller.
func (g *CaidaGame) chooseTableOrderLocked(playerID uuid.UUID, order engine.Order) error {
	idx, ok := g.playerIndex(playerID)
	if !ok {
		return ErrUnknownPlayer
	}
	if !g.Started || g.GameOver {
		return engine.ErrInvalidStateForAction
	}

	events, err := g.State.ChooseTableOrder(idx, order)
	if err != nil {
		return err
	}
	g.log.WithFields(logrus.Fields{"player": g.Players[idx].Name, "order": order}).
		Debug("table order declared")
	g.applyEvents(events)
	g.afterAction()
	return nil
}

// playCardLocked validates and applies one card play.
// Assumes lock is held by caller.
func (g *CaidaGame) playCardLocked(playerID uuid.UUID, card engine.Card) error {
	idx, ok := g.playerIndex(playerID)
	if !ok {
		return ErrUnknownPlayer
	}
	if !g.Started || g.GameOver {
		return engine.ErrInvalidStateForAction
	}

	events, err := g.State.PlayCard(idx, card)
	if err != nil {
		return err
	}
	g.log.WithFields(logrus.Fields{"player": g.Players[idx].Name, "card": card.String()}).
		Debug("card played")
	g.applyEvents(events)
	g.afterAction()
	return nil
}

// applyEvents translates engine events to client events, broadcasts them,
// and finishes the game when the terminal event appears.
// Assumes lock is held by caller.
func (g *CaidaGame) applyEvents(events []engine.Event) {
	for _, ev := range events {
		out := g.engineEventToGameEvent(ev)
		if out.Message != "" {
			g.log.Info(out.Message)
		}
		g.fireEvent(out)

		if ev.Type == engine.EventGameEnded {
			g.finishGame()
		}
	}
}

// afterAction reacts to the state left behind by the last batch of events:
// it schedules the round transition or the next bot move and keeps the
// clients in sync. Assumes lock is held by caller.
func (g *CaidaGame) afterAction() {
	if g.PersistFn != nil {
		g.PersistFn(g.State)
	}
	g.broadcastSyncStateToAll()
	if g.GameOver {
		return
	}

	switch g.State.Status {
	case engine.StatusRoundEnd:
		g.scheduleRoundAdvance()
	case engine.StatusWaitingForTableOrder, engine.StatusInProgress:
		g.broadcastPlayerTurn()
		g.scheduleBotMove()
	}
}

// scheduleRoundAdvance arms the inter-round timer. The engine stays in
// round_end until it fires, so clients can show the sweep and bonuses.
// Assumes lock is held by caller.
func (g *CaidaGame) scheduleRoundAdvance() {
	if g.roundTimer != nil {
		g.roundTimer.Stop()
	}
	g.roundTimer = time.AfterFunc(g.RoundPause, func() {
		g.Mu.Lock()
		defer g.Mu.Unlock()
		if g.GameOver || g.State.Status != engine.StatusRoundEnd {
			return
		}
		events, err := g.State.AdvanceRound()
		if err != nil {
			g.log.WithError(err).Error("round advance failed")
			return
		}
		g.applyEvents(events)
		g.afterAction()
	})
}

// AdvanceRoundNow settles the round immediately instead of waiting for the
// inter-round timer. Used by tests and headless drivers.
func (g *CaidaGame) AdvanceRoundNow() error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.roundTimer != nil {
		g.roundTimer.Stop()
		g.roundTimer = nil
	}
	events, err := g.State.AdvanceRound()
	if err != nil {
		return err
	}
	g.applyEvents(events)
	g.afterAction()
	return nil
}

// finishGame marks the game over, stops all timers, and reports the result.
// Assumes lock is held by caller.
func (g *CaidaGame) finishGame() {
	if g.GameOver {
		return
	}
	g.GameOver = true

	if g.botTimer != nil {
		g.botTimer.Stop()
		g.botTimer = nil
	}
	if g.roundTimer != nil {
		g.roundTimer.Stop()
		g.roundTimer = nil
	}

	scores := map[uuid.UUID]int{
		g.Players[0].ID: int(g.State.Players[0].Score),
		g.Players[1].ID: int(g.State.Players[1].Score),
	}
	var winnerID uuid.UUID
	if g.State.Winner >= 0 {
		winnerID = g.Players[g.State.Winner].ID
	}

	g.log.WithFields(logrus.Fields{
		"winner":  winnerID,
		"score_0": scores[g.Players[0].ID],
		"score_1": scores[g.Players[1].ID],
	}).Info("game over")

	if g.OnGameEnd != nil {
		g.OnGameEnd(g.ID, winnerID, scores)
	}
}

// playerIndex maps a player UUID to their engine seat.
// Assumes lock is held by caller.
func (g *CaidaGame) playerIndex(playerID uuid.UUID) (uint8, bool) {
	for i, p := range g.Players {
		if p != nil && p.ID == playerID {
			return uint8(i), true
		}
	}
	return 0, false
}

// actingPlayer returns the player whose action the engine is waiting on.
// Assumes lock is held by caller.
func (g *CaidaGame) actingPlayer() *models.Player {
	switch g.State.Status {
	case engine.StatusWaitingForTableOrder:
		return g.Players[g.State.RoundStarter]
	case engine.StatusInProgress:
		return g.Players[g.State.CurrentPlayer]
	default:
		return nil
	}
}

// fireEvent broadcasts an event to all players via the BroadcastFn callback.
// Assumes lock is held by caller.
func (g *CaidaGame) fireEvent(ev GameEvent) {
	if g.BroadcastFn != nil {
		g.BroadcastFn(ev)
	}
}

// fireEventToPlayer sends an event to a single connected player.
// Assumes lock is held by caller.
func (g *CaidaGame) fireEventToPlayer(playerID uuid.UUID, ev GameEvent) {
	if g.BroadcastToPlayerFn == nil {
		return
	}
	for _, p := range g.Players {
		if p.ID == playerID && p.Connected {
			g.BroadcastToPlayerFn(playerID, ev)
			return
		}
	}
}

// broadcastPlayerTurn notifies all players whose action is awaited.
// Assumes lock is held by caller.
func (g *CaidaGame) broadcastPlayerTurn() {
	actor := g.actingPlayer()
	if actor == nil {
		return
	}
	g.fireEvent(GameEvent{
		Type: EventGamePlayerTurn,
		User: &EventUser{ID: actor.ID, Name: actor.Name},
	})
}

// broadcastSyncStateToAll sends each player their own view of the state.
// Assumes lock is held by caller.
func (g *CaidaGame) broadcastSyncStateToAll() {
	for _, p := range g.Players {
		view := g.ViewFor(p.ID)
		g.fireEventToPlayer(p.ID, GameEvent{Type: EventPrivateSync, State: &view})
	}
}

// HandleDisconnect marks a player as disconnected. The game keeps running;
// bots and the opponent are unaffected, and a reconnecting player is synced
// from the authoritative state.
func (g *CaidaGame) HandleDisconnect(playerID uuid.UUID) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	idx, ok := g.playerIndex(playerID)
	if !ok {
		return
	}
	g.Players[idx].Connected = false
	g.log.WithField("player", g.Players[idx].Name).Info("player disconnected")
}

// HandleReconnect marks a player as connected again and sends them a fresh
// state snapshot.
func (g *CaidaGame) HandleReconnect(playerID uuid.UUID) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	idx, ok := g.playerIndex(playerID)
	if !ok {
		return
	}
	g.Players[idx].Connected = true
	g.log.WithField("player", g.Players[idx].Name).Info("player reconnected")

	view := g.ViewFor(playerID)
	g.fireEventToPlayer(playerID, GameEvent{Type: EventPrivateSync, State: &view})
	g.broadcastPlayerTurn()
}
