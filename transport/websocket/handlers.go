package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wordduel/wordduel-backend/internal/apperror"
	"github.com/wordduel/wordduel-backend/internal/event"
)

func (that *Server) handleCreateRoom(ctx context.Context, connID string, payload json.RawMessage) error {
	var payloadReq CreateRoomPayload

	if err := json.Unmarshal(payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return that.match.CreateRoom(ctx, connID, payloadReq.PlayerName)
}

func (that *Server) handleJoinRoom(ctx context.Context, connID string, payload json.RawMessage) error {
	var payloadReq JoinRoomPayload

	if err := json.Unmarshal(payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return that.match.JoinRoom(ctx, connID, payloadReq.PlayerName, payloadReq.RoomCode)
}

func (that *Server) handleStartGame(ctx context.Context, connID string, _ json.RawMessage) error {
	return that.match.StartGame(ctx, connID)
}

func (that *Server) handleSubmitGuess(ctx context.Context, connID string, payload json.RawMessage) error {
	var payloadReq SubmitGuessPayload

	if err := json.Unmarshal(payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return that.match.SubmitGuess(ctx, connID, payloadReq.Guess, payloadReq.Row)
}

func (that *Server) handleLeaveRoom(_ context.Context, connID string, _ json.RawMessage) error {
	that.match.HandleDisconnect(connID)

	return nil
}

// sendFailure reports a failed operation to the originating connection
// only. A rejected word gets its own event so clients can keep the row
// editable; everything else is a plain error.
func (that *Server) sendFailure(connID string, err error) {
	if errors.Is(err, apperror.ErrInvalidWord) || errors.Is(err, apperror.ErrValidatorUnavailable) {
		that.ToConnection(connID, event.InvalidWord, event.ErrorPayload{Message: err.Error()})
		return
	}

	that.ToConnection(connID, event.Error, event.ErrorPayload{Message: err.Error()})
}
