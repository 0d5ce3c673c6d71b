package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/wordduel/wordduel-backend/internal/apperror"
	"github.com/wordduel/wordduel-backend/internal/entity"
	"github.com/wordduel/wordduel-backend/internal/event"
	"github.com/wordduel/wordduel-backend/internal/registry"
)

// Broadcaster delivers outbound events; the websocket transport
// implements it. ToRoom fans out to every player still connected to the
// room's channel, ToConnection targets a single connection.
type Broadcaster interface {
	ToConnection(connID, name string, payload any)
	ToRoom(room *entity.Room, name string, payload any)
}

type wordSource interface {
	RandomWord(difficulty string) (string, error)
}

type wordValidator interface {
	IsValidWord(ctx context.Context, word string) (bool, error)
}

type scoreRecorder interface {
	RecordWin(ctx context.Context, playerName string) error
}

// Options carries the tunable match parameters from config.
type Options struct {
	TurnDuration time.Duration
	RestartDelay time.Duration
	MaxRounds    int
	Difficulty   string
}

// MatchManager binds inbound connection events to room operations and
// broadcasts the resulting state. Every mutation of a room happens under
// that room's lock, including the wait on the word validator, so events
// for one room are processed strictly one at a time.
type MatchManager struct {
	logger *slog.Logger

	registry  *registry.Registry
	words     wordSource
	validator wordValidator
	scores    scoreRecorder
	timers    *turnTimers

	broadcaster Broadcaster

	opts Options
}

func NewMatchManager(logger *slog.Logger, reg *registry.Registry, words wordSource, validator wordValidator, scores scoreRecorder, opts Options) *MatchManager {
	return &MatchManager{
		logger:    logger,
		registry:  reg,
		words:     words,
		validator: validator,
		scores:    scores,
		timers:    newTurnTimers(),
		opts:      opts,
	}
}

// SetBroadcaster wires the transport in after construction; the websocket
// server and the manager reference each other.
func (that *MatchManager) SetBroadcaster(broadcaster Broadcaster) {
	that.broadcaster = broadcaster
}

// CreateRoom registers a new room with the caller as host at turn index 0.
func (that *MatchManager) CreateRoom(_ context.Context, connID, playerName string) error {
	log := that.logger.With("method", "CreateRoom")

	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return apperror.ErrEmptyPlayerName
	}

	host := &entity.Player{ID: connID, Name: playerName}

	room, err := that.registry.Create(host, that.opts.MaxRounds)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}

	log.Info("room created", "roomCode", room.Code, "playerName", playerName)

	that.broadcaster.ToConnection(connID, event.RoomCreated, event.RoomCreatedPayload{
		RoomCode:   room.Code,
		PlayerName: playerName,
	})

	return nil
}

// JoinRoom appends the caller as guest at turn index 1.
func (that *MatchManager) JoinRoom(_ context.Context, connID, playerName, roomCode string) error {
	log := that.logger.With("method", "JoinRoom", "roomCode", roomCode)

	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return apperror.ErrEmptyPlayerName
	}

	room, ok := that.registry.GetByCode(roomCode)
	if !ok {
		return apperror.ErrRoomNotFound
	}

	room.Lock()
	defer room.Unlock()

	if room.IsFinished() {
		return apperror.ErrRoomNotFound
	}

	if err := room.AddPlayer(&entity.Player{ID: connID, Name: playerName}); err != nil {
		return err
	}

	log.Info("player joined room", "playerName", playerName)

	that.broadcaster.ToConnection(connID, event.RoomJoined, event.RoomJoinedPayload{
		RoomCode:    room.Code,
		PlayerName:  playerName,
		Player1Name: room.Players[0].Name,
	})

	that.broadcaster.ToConnection(room.HostID, event.PlayerJoined, event.PlayerJoinedPayload{
		PlayerName: playerName,
	})

	return nil
}

// StartGame begins round 1. Only the host may start, and only with two
// players present.
func (that *MatchManager) StartGame(_ context.Context, connID string) error {
	log := that.logger.With("method", "StartGame")

	room, _, ok := that.registry.GetByConnection(connID)
	if !ok {
		return apperror.ErrRoomNotFound
	}

	room.Lock()
	defer room.Unlock()

	if room.IsFinished() {
		return apperror.ErrRoomNotFound
	}

	if room.HostID != connID {
		return apperror.ErrNotHost
	}

	if room.InProgress() {
		return apperror.ErrMatchInProgress
	}

	if len(room.Players) < entity.MaxPlayers {
		return apperror.ErrInsufficientPlayers
	}

	word, err := that.words.RandomWord(that.opts.Difficulty)
	if err != nil {
		return fmt.Errorf("failed to pick target word: %w", err)
	}

	room.AdvanceRound()
	room.BeginRound(word, entity.RandomStartingTurn())

	log.Info("match started", "roomCode", room.Code, "round", room.CurrentRound)

	that.broadcaster.ToRoom(room, event.GameStarted, event.GameStartedPayload{
		Player1:     room.Players[0].Name,
		Player2:     room.Players[1].Name,
		TargetWord:  room.TargetWord,
		CurrentTurn: room.CurrentTurn,
	})

	that.startTurnTimer(room)

	return nil
}

// SubmitGuess is the central transition. Precondition failures are
// reported to the caller only and consume nothing: a guess from the
// non-active player or a word the dictionary rejects leaves the row
// counter, the turn and the running timer exactly as they were.
func (that *MatchManager) SubmitGuess(ctx context.Context, connID, guess string, _ int) error {
	log := that.logger.With("method", "SubmitGuess")

	room, playerIndex, ok := that.registry.GetByConnection(connID)
	if !ok {
		return apperror.ErrRoomNotFound
	}

	room.Lock()
	defer room.Unlock()

	if room.IsFinished() {
		return apperror.ErrRoomNotFound
	}

	if !room.InProgress() {
		return apperror.ErrMatchNotStarted
	}

	if !room.RoundActive {
		return apperror.ErrRoundNotActive
	}

	if room.CurrentTurn != playerIndex {
		return apperror.ErrNotYourTurn
	}

	// The room lock is held across this call: no other event for the
	// room can interleave with a pending validation.
	valid, err := that.validator.IsValidWord(ctx, guess)
	if err != nil {
		log.Error("word validation failed", "roomCode", room.Code, "error", err)
		return apperror.ErrValidatorUnavailable
	}

	if !valid {
		return apperror.ErrInvalidWord
	}

	that.timers.cancel(room.Code)

	outcome, err := room.ResolveGuess(playerIndex, guess)
	if err != nil {
		return fmt.Errorf("failed to resolve guess: %w", err)
	}

	log.Info("guess resolved", "roomCode", room.Code, "playerName", outcome.PlayerName, "row", outcome.Row, "isCorrect", outcome.IsCorrect)

	that.broadcaster.ToRoom(room, event.GuessResult, event.GuessResultPayload{
		Guess:       outcome.Guess,
		Row:         outcome.Row,
		IsCorrect:   outcome.IsCorrect,
		PlayerName:  outcome.PlayerName,
		CurrentTurn: room.CurrentTurn,
	})

	switch {
	case outcome.IsCorrect:
		winner := outcome.PlayerName
		that.broadcaster.ToRoom(room, event.RoundEnded, event.RoundEndedPayload{
			Winner: &winner,
			Scores: room.Scores,
			Reason: entity.ReasonCorrect,
		})
		that.scheduleRoundRestart(room.Code)
	case outcome.RoundOver:
		that.broadcaster.ToRoom(room, event.RoundEnded, event.RoundEndedPayload{
			Winner:      nil,
			Scores:      room.Scores,
			Reason:      entity.ReasonDraw,
			CorrectWord: room.TargetWord,
		})
		that.scheduleRoundRestart(room.Code)
	default:
		that.startTurnTimer(room)
	}

	return nil
}

// HandleDisconnect tears down or shrinks the leaver's room. An id with no
// room is a no-op: idle connections come and go.
func (that *MatchManager) HandleDisconnect(connID string) {
	log := that.logger.With("method", "HandleDisconnect")

	room, playerIndex, ok := that.registry.GetByConnection(connID)
	if !ok {
		return
	}

	room.Lock()
	defer room.Unlock()

	if room.IsFinished() {
		return
	}

	leaver := room.Players[playerIndex]

	switch {
	case room.InProgress():
		// The match cannot continue with a missing player.
		log.Info("player disconnected during match", "roomCode", room.Code, "playerName", leaver.Name)
		that.broadcaster.ToRoom(room, event.GameEnded, event.GameEndedPayload{
			Reason: fmt.Sprintf("%s disconnected. Game ended.", leaver.Name),
		})
		that.destroyRoomLocked(room)
	case room.HostID == connID:
		log.Info("host left lobby, closing room", "roomCode", room.Code)
		that.broadcaster.ToRoom(room, event.HostDisconnected, event.HostDisconnectedPayload{})
		that.destroyRoomLocked(room)
	default:
		log.Info("guest left lobby", "roomCode", room.Code, "playerName", leaver.Name)
		room.RemovePlayer(playerIndex)
		that.broadcaster.ToRoom(room, event.PlayerLeft, event.PlayerLeftPayload{
			PlayerName: leaver.Name,
		})
	}
}

// startTurnTimer arms the countdown for the active player and tells the
// room. Caller holds the room lock.
func (that *MatchManager) startTurnTimer(room *entity.Room) {
	that.broadcaster.ToRoom(room, event.TimerStart, event.TimerStartPayload{
		Duration: int(that.opts.TurnDuration.Seconds()),
	})

	code := room.Code
	that.timers.start(code, that.opts.TurnDuration, func(gen uint64) {
		that.handleTurnTimeout(code, gen)
	})
}

// handleTurnTimeout is the expiry path: the active player forfeits the
// row, symmetric to a wrong guess. It re-enters the same transition logic
// a guess submission drives.
func (that *MatchManager) handleTurnTimeout(roomCode string, gen uint64) {
	log := that.logger.With("method", "handleTurnTimeout", "roomCode", roomCode)

	room, ok := that.registry.GetByCode(roomCode)
	if !ok {
		return
	}

	room.Lock()
	defer room.Unlock()

	// A guess or teardown that beat us to the lock has bumped the
	// generation; this fire is stale.
	if room.IsFinished() || !that.timers.current(roomCode, gen) {
		return
	}

	skipped, row, roundOver := room.SkipTurn()

	log.Info("turn skipped", "playerName", skipped.Name, "row", row)

	that.broadcaster.ToRoom(room, event.TurnSkipped, event.TurnSkippedPayload{
		PlayerName:  skipped.Name,
		Row:         row,
		CurrentTurn: room.CurrentTurn,
	})

	if roundOver {
		that.broadcaster.ToRoom(room, event.RoundEnded, event.RoundEndedPayload{
			Winner:      nil,
			Scores:      room.Scores,
			Reason:      entity.ReasonDraw,
			CorrectWord: room.TargetWord,
		})
		that.scheduleRoundRestart(room.Code)
		return
	}

	that.startTurnTimer(room)
}

// scheduleRoundRestart gives clients a short window to show the round
// result before the board resets.
func (that *MatchManager) scheduleRoundRestart(roomCode string) {
	time.AfterFunc(that.opts.RestartDelay, func() {
		that.startNewRound(roomCode)
	})
}

// startNewRound advances the match: either the next round begins or the
// match is over and the room is destroyed.
func (that *MatchManager) startNewRound(roomCode string) {
	log := that.logger.With("method", "startNewRound", "roomCode", roomCode)

	room, ok := that.registry.GetByCode(roomCode)
	if !ok {
		return
	}

	room.Lock()
	defer room.Unlock()

	if room.IsFinished() {
		return
	}

	if room.AdvanceRound() {
		that.endMatch(room)
		return
	}

	word, err := that.words.RandomWord(that.opts.Difficulty)
	if err != nil {
		log.Error("failed to pick target word", "error", err)
		that.broadcaster.ToRoom(room, event.GameEnded, event.GameEndedPayload{
			Reason: "failed to start the next round",
		})
		that.destroyRoomLocked(room)
		return
	}

	room.BeginRound(word, entity.RandomStartingTurn())

	log.Info("new round starting", "round", room.CurrentRound)

	that.broadcaster.ToRoom(room, event.NewRoundStarting, event.NewRoundStartingPayload{
		Round:       room.CurrentRound,
		MaxRounds:   room.MaxRounds,
		Scores:      room.Scores,
		TargetWord:  room.TargetWord,
		CurrentTurn: room.CurrentTurn,
	})

	that.startTurnTimer(room)
}

// endMatch compares final scores, reports the result and retires the
// room. Caller holds the room lock.
func (that *MatchManager) endMatch(room *entity.Room) {
	log := that.logger.With("method", "endMatch", "roomCode", room.Code)

	payload := event.MatchEndedPayload{
		Scores: room.Scores,
		Reason: entity.ReasonTrueDraw,
	}

	winner, hasWinner := room.MatchWinner()
	if hasWinner {
		payload.Winner = &winner.Name
		payload.Reason = entity.ReasonBestOfComplete
	}

	that.broadcaster.ToRoom(room, event.MatchEnded, payload)

	if hasWinner {
		if err := that.scores.RecordWin(context.Background(), winner.Name); err != nil {
			log.Error("failed to record win", "playerName", winner.Name, "error", err)
		}
	}

	log.Info("match ended", "scores", fmt.Sprintf("%d:%d", room.Scores[0], room.Scores[1]))

	that.destroyRoomLocked(room)
}

// destroyRoomLocked retires the room: timers are dropped, the code is
// released. Caller holds the room lock.
func (that *MatchManager) destroyRoomLocked(room *entity.Room) {
	that.timers.drop(room.Code)
	room.Finish()
	that.registry.Delete(room.Code)
}
