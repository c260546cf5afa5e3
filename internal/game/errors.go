package game

import "errors"

// ErrUnknownPlayer is returned when an action names a player who is not
// seated at this game.
var ErrUnknownPlayer = errors.New("player is not part of this game")
