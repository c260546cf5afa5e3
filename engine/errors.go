package engine

import "errors"

// Engine errors are returned, never panicked; a failed transition leaves the
// input state untouched.
var (
	// ErrInsufficientCards signals a draw below the deck's remaining size.
	// Inside the state machine this routes to round end rather than
	// surfacing to the player.
	ErrInsufficientCards = errors.New("insufficient cards in deck")

	// ErrNotPlayerTurn rejects an action from a player who is not the
	// current player (or, for the table order, not the round starter).
	ErrNotPlayerTurn = errors.New("not this player's turn")

	// ErrCardNotInHand rejects a play of a card the acting player does not
	// hold.
	ErrCardNotInHand = errors.New("card not in player's hand")

	// ErrInvalidStateForAction rejects an action submitted in a phase that
	// does not accept it.
	ErrInvalidStateForAction = errors.New("invalid state for action")
)
