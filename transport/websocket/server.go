package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/wordduel/wordduel-backend/internal/entity"
)

type matchManager interface {
	CreateRoom(ctx context.Context, connID, playerName string) error
	JoinRoom(ctx context.Context, connID, playerName, roomCode string) error
	StartGame(ctx context.Context, connID string) error
	SubmitGuess(ctx context.Context, connID, guess string, row int) error
	HandleDisconnect(connID string)
}

type Server struct {
	logger *slog.Logger
	match  matchManager

	upgrader websocket.Upgrader

	connsMutex sync.RWMutex
	conns      map[string]*client

	handlers map[string]func(ctx context.Context, connID string, payload json.RawMessage) error
}

func New(logger *slog.Logger, match matchManager) *Server {
	server := &Server{
		logger: logger,
		match:  match,

		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},

		conns: make(map[string]*client),

		handlers: make(map[string]func(context.Context, string, json.RawMessage) error),
	}

	server.handlers["createRoom"] = server.handleCreateRoom
	server.handlers["joinRoom"] = server.handleJoinRoom
	server.handlers["startGame"] = server.handleStartGame
	server.handlers["submitGuess"] = server.handleSubmitGuess
	server.handlers["leaveRoom"] = server.handleLeaveRoom

	return server
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.handleConnection(ctx, w, r)
	})

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// handleConnection upgrades the request and runs the connection's read
// loop. Each connection gets an ephemeral id that doubles as the player
// id for the lifetime of the socket.
func (that *Server) handleConnection(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "handleConnection")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	connID := uuid.NewString()
	newConn := newClient(connID, conn)

	that.connsMutex.Lock()
	that.conns[connID] = newConn
	that.connsMutex.Unlock()

	go newConn.writePump(that.logger)

	log.Info("connection established", "connID", connID)

	that.readLoop(ctx, newConn)

	that.connsMutex.Lock()
	delete(that.conns, connID)
	close(newConn.send)
	that.connsMutex.Unlock()

	_ = conn.Close()

	log.Info("connection closed", "connID", connID)

	that.match.HandleDisconnect(connID)
}

// readLoop - processes messages from the client until the socket drops.
func (that *Server) readLoop(ctx context.Context, conn *client) {
	log := that.logger.With("method", "readLoop", "connID", conn.id)

	for {
		_, data, err := conn.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			continue
		}

		if err = handler(ctx, conn.id, message.Payload); err != nil {
			that.sendFailure(conn.id, err)
		}
	}
}

// ToConnection sends one event to one connection. Unknown connections and
// full send buffers drop the event; a dead peer must never block a room.
func (that *Server) ToConnection(connID, name string, payload any) {
	log := that.logger.With("method", "ToConnection")

	data, err := encodeMessage(name, payload)
	if err != nil {
		log.Error("failed to encode event", "event", name, "error", err)
		return
	}

	// The read lock is held across the send: teardown closes the channel
	// under the write lock, so a close can never interleave with a send.
	that.connsMutex.RLock()
	defer that.connsMutex.RUnlock()

	conn, ok := that.conns[connID]
	if !ok {
		return
	}

	select {
	case conn.send <- data:
	default:
		log.Warn("send buffer full, dropping event", "connID", connID, "event", name)
	}
}

// ToRoom fans an event out to every player in the room, and only them.
func (that *Server) ToRoom(room *entity.Room, name string, payload any) {
	for _, player := range room.Players {
		that.ToConnection(player.ID, name, payload)
	}
}

func encodeMessage(action string, payload any) ([]byte, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := Message{
		Action:  action,
		Payload: payloadBytes,
	}

	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return data, nil
}
