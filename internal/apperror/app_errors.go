package apperror

import "errors"

var (
	ErrRoomNotFound         = errors.New("room not found")
	ErrRoomFull             = errors.New("room is full")
	ErrNotHost              = errors.New("only the host can start the game")
	ErrInsufficientPlayers  = errors.New("waiting for another player to join")
	ErrMatchInProgress      = errors.New("match is already in progress")
	ErrMatchNotStarted      = errors.New("match is not started")
	ErrRoundNotActive       = errors.New("round is not active")
	ErrNotYourTurn          = errors.New("it's not your turn")
	ErrInvalidWord          = errors.New("not a valid word")
	ErrValidatorUnavailable = errors.New("could not validate word")
	ErrEmptyPlayerName      = errors.New("player name must not be empty")
)
