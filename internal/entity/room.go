package entity

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/wordduel/wordduel-backend/internal/apperror"
)

const (
	StatusWaiting  = "waiting"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	MaxPlayers = 2
	MaxRows    = 6

	ReasonCorrect        = "correct"
	ReasonDraw           = "draw"
	ReasonBestOfComplete = "bestOf5Complete"
	ReasonTrueDraw       = "trueDraw"
)

// Room is one isolated two-player match. The slice index of a player in
// Players is that player's turn index for the whole lifetime of the room.
//
// Room methods are pure state transitions; timers, word lookups and
// broadcasting live in the usecase layer. All mutations of one room must
// happen under its lock.
type Room struct {
	mu sync.Mutex

	Code         string
	Players      []*Player
	HostID       string
	Scores       [2]int
	CurrentRound int
	MaxRounds    int
	TargetWord   string
	CurrentTurn  int
	CurrentRow   int
	Status       string

	// RoundActive is false in the gap between a round ending and the
	// next one starting; guesses submitted in the gap consume nothing.
	RoundActive bool
}

// GuessOutcome describes one resolved guess.
type GuessOutcome struct {
	PlayerName string
	Guess      string
	Row        int
	IsCorrect  bool
	RoundOver  bool
}

func NewRoom(code string, host *Player, maxRounds int) *Room {
	return &Room{
		Code:      code,
		Players:   []*Player{host},
		HostID:    host.ID,
		MaxRounds: maxRounds,
		Status:    StatusWaiting,
	}
}

// Lock serializes all event processing for this room, including the time
// a guess spends waiting on the word validator.
func (that *Room) Lock() {
	that.mu.Lock()
}

func (that *Room) Unlock() {
	that.mu.Unlock()
}

// AddPlayer appends a player at turn index 1. Joining a full room or a
// room whose match already started is rejected.
func (that *Room) AddPlayer(player *Player) error {
	if len(that.Players) >= MaxPlayers || !that.IsWaiting() {
		return apperror.ErrRoomFull
	}

	that.Players = append(that.Players, player)

	return nil
}

// RemovePlayer drops the player at the given turn index. Only valid in
// the lobby; once a match starts the room is torn down instead.
func (that *Room) RemovePlayer(index int) *Player {
	if index < 0 || index >= len(that.Players) {
		return nil
	}

	removed := that.Players[index]
	that.Players = append(that.Players[:index], that.Players[index+1:]...)

	return removed
}

func (that *Room) PlayerIndexByID(id string) int {
	for i, player := range that.Players {
		if player.ID == id {
			return i
		}
	}

	return -1
}

func (that *Room) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Room) InProgress() bool {
	return that.Status == StatusOngoing
}

func (that *Room) IsFinished() bool {
	return that.Status == StatusFinished
}

// Finish marks the room dead. Stale timer callbacks that still hold a
// reference check this and back off.
func (that *Room) Finish() {
	that.Status = StatusFinished
}

// AdvanceRound moves the room to the next round and reports whether the
// match is over. The round counter never grows past MaxRounds+1.
func (that *Room) AdvanceRound() bool {
	if that.CurrentRound <= that.MaxRounds {
		that.CurrentRound++
	}

	return that.CurrentRound > that.MaxRounds
}

// BeginRound arms the room for a fresh round: new target word, a fresh
// starting turn and an empty board.
func (that *Room) BeginRound(word string, startingTurn int) {
	that.TargetWord = strings.ToUpper(word)
	that.CurrentTurn = startingTurn
	that.CurrentRow = 0
	that.Status = StatusOngoing
	that.RoundActive = true
}

// ResolveGuess applies one validated guess: the row is consumed, the turn
// flips, and a correct guess scores. The returned Row is the row the
// guess occupied, counted before the increment.
func (that *Room) ResolveGuess(playerIndex int, guess string) (*GuessOutcome, error) {
	if !that.InProgress() {
		return nil, apperror.ErrMatchNotStarted
	}

	if !that.RoundActive {
		return nil, apperror.ErrRoundNotActive
	}

	if that.CurrentTurn != playerIndex {
		return nil, apperror.ErrNotYourTurn
	}

	normalized := strings.ToUpper(strings.TrimSpace(guess))

	outcome := &GuessOutcome{
		PlayerName: that.Players[playerIndex].Name,
		Guess:      normalized,
		Row:        that.CurrentRow,
		IsCorrect:  normalized == that.TargetWord,
	}

	that.CurrentTurn = 1 - that.CurrentTurn
	that.CurrentRow++

	if outcome.IsCorrect {
		that.Scores[playerIndex]++
	}

	outcome.RoundOver = outcome.IsCorrect || that.CurrentRow >= MaxRows
	if outcome.RoundOver {
		that.RoundActive = false
	}

	return outcome, nil
}

// SkipTurn forfeits the active player's row on timeout. A skip can never
// win a round, only exhaust it.
func (that *Room) SkipTurn() (*Player, int, bool) {
	skipped := that.Players[that.CurrentTurn]
	row := that.CurrentRow

	that.CurrentTurn = 1 - that.CurrentTurn
	that.CurrentRow++

	roundOver := that.CurrentRow >= MaxRows
	if roundOver {
		that.RoundActive = false
	}

	return skipped, row, roundOver
}

// MatchWinner returns the player with the strictly higher score, or false
// for a true draw.
func (that *Room) MatchWinner() (*Player, bool) {
	switch {
	case that.Scores[0] > that.Scores[1]:
		return that.Players[0], true
	case that.Scores[1] > that.Scores[0]:
		return that.Players[1], true
	default:
		return nil, false
	}
}

// RandomStartingTurn picks which player opens a round.
func RandomStartingTurn() int {
	return rand.Intn(MaxPlayers) //nolint: gosec // it's ok
}
