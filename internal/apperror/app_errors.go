package apperror

import "errors"

var (
	ErrOutOfBounds           = errors.New("coordinate is outside the board")
	ErrIllegalMove           = errors.New("illegal move")
	ErrNotYourTurn           = errors.New("it's not your turn")
	ErrGameFinished          = errors.New("game is already finished")
	ErrSimultaneousDepletion = errors.New("both players ran out of tokens at once")
)
