package apperror

import "errors"

var (
	ErrTileOutOfBounds    = errors.New("tile is out of bounds")
	ErrTileAlreadySet     = errors.New("tile is already set")
	ErrNotPlayersTurn     = errors.New("it's not this player's turn")
	ErrGameAlreadyOver    = errors.New("game is already over")
	ErrGameAlreadyStarted = errors.New("game has already started")
	ErrGameAlreadyExists  = errors.New("game account already exists")
	ErrInvalidSignature   = errors.New("invalid signature")
)
