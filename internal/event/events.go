package event

// Outbound event names. The catalogue is a closed set: for every name
// there is exactly one payload shape below, and nothing else ever goes
// out on the wire.
const (
	RoomCreated      = "roomCreated"
	RoomJoined       = "roomJoined"
	PlayerJoined     = "playerJoined"
	GameStarted      = "gameStarted"
	TimerStart       = "timerStart"
	GuessResult      = "guessResult"
	InvalidWord      = "invalidWord"
	TurnSkipped      = "turnSkipped"
	RoundEnded       = "roundEnded"
	NewRoundStarting = "newRoundStarting"
	MatchEnded       = "matchEnded"
	HostDisconnected = "hostDisconnected"
	PlayerLeft       = "playerLeft"
	GameEnded        = "gameEnded"
	Error            = "error"
)

type RoomCreatedPayload struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

type RoomJoinedPayload struct {
	RoomCode    string `json:"roomCode"`
	PlayerName  string `json:"playerName"`
	Player1Name string `json:"player1Name"`
}

type PlayerJoinedPayload struct {
	PlayerName string `json:"playerName"`
}

// GameStartedPayload carries the target word to every room member; after
// this point the word is not treated as a secret.
type GameStartedPayload struct {
	Player1     string `json:"player1"`
	Player2     string `json:"player2"`
	TargetWord  string `json:"targetWord"`
	CurrentTurn int    `json:"currentTurn"`
}

type TimerStartPayload struct {
	Duration int `json:"duration"` // seconds
}

type GuessResultPayload struct {
	Guess       string `json:"guess"`
	Row         int    `json:"row"`
	IsCorrect   bool   `json:"isCorrect"`
	PlayerName  string `json:"playerName"`
	CurrentTurn int    `json:"currentTurn"`
}

type TurnSkippedPayload struct {
	PlayerName  string `json:"playerName"`
	Row         int    `json:"row"`
	CurrentTurn int    `json:"currentTurn"`
}

type RoundEndedPayload struct {
	Winner      *string `json:"winner"`
	Scores      [2]int  `json:"scores"`
	Reason      string  `json:"reason"`
	CorrectWord string  `json:"correctWord,omitempty"`
}

type NewRoundStartingPayload struct {
	Round       int    `json:"round"`
	MaxRounds   int    `json:"maxRounds"`
	Scores      [2]int `json:"scores"`
	TargetWord  string `json:"targetWord"`
	CurrentTurn int    `json:"currentTurn"`
}

type MatchEndedPayload struct {
	Winner *string `json:"winner"`
	Scores [2]int  `json:"scores"`
	Reason string  `json:"reason"`
}

type HostDisconnectedPayload struct{}

type PlayerLeftPayload struct {
	PlayerName string `json:"playerName"`
}

type GameEndedPayload struct {
	Reason string `json:"reason"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
