package websocket

import "encoding/json"

// Message is the wire envelope in both directions: a named action and an
// action-specific payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type CreateRoomPayload struct {
	PlayerName string `json:"playerName"`
}

type JoinRoomPayload struct {
	PlayerName string `json:"playerName"`
	RoomCode   string `json:"roomCode"`
}

type SubmitGuessPayload struct {
	Guess string `json:"guess"`
	// Row is the client's view of the board and is echoed nowhere: all
	// broadcasts carry the server's authoritative row counter.
	Row int `json:"row"`
}
