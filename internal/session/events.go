package session

import "hangman-party/internal/shared"

// Event is an outbound payload. The transport decides how to frame it;
// EventName is the wire name.
type Event interface {
	EventName() string
}

type Joined struct {
	PlayerID string `json:"playerId"`
	RoomID   string `json:"roomId"`
	IsHost   bool   `json:"isHost"`
}

type StateSnapshot struct {
	shared.GameState
}

type PlayerJoined struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

type PlayerLeft struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

type GameStarted struct {
	shared.GameState
}

type RoundStarted struct {
	shared.GameState
}

type CorrectGuess struct {
	PlayerID     string   `json:"playerId"`
	PlayerName   string   `json:"playerName"`
	Letter       string   `json:"letter"`
	RevealedWord []string `json:"revealedWord"`
}

type WrongGuess struct {
	PlayerID     string `json:"playerId"`
	PlayerName   string `json:"playerName"`
	Letter       string `json:"letter"`
	Strikes      int    `json:"strikes"`
	TotalStrikes int    `json:"totalStrikes"`
}

type TurnTimeout struct {
	PlayerID     string `json:"playerId"`
	PlayerName   string `json:"playerName"`
	Strikes      int    `json:"strikes"`
	TotalStrikes int    `json:"totalStrikes"`
}

type RoundWon struct {
	WinnerID   string `json:"winnerId"`
	WinnerName string `json:"winnerName"`
	SecretWord string `json:"secretWord"`
	Points     int    `json:"points"`
}

type RoundLost struct {
	SecretWord   string `json:"secretWord"`
	TotalStrikes int    `json:"totalStrikes"`
}

type WaitingForWord struct {
	shared.GameState
}

type GameOver struct {
	Leaderboard []shared.LeaderboardEntry `json:"leaderboard"`
	Winner      *shared.PlayerView        `json:"winner,omitempty"`
}

type NewMessage struct {
	shared.ChatMessage
}

type Error struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

func (Joined) EventName() string         { return "joined-room" }
func (StateSnapshot) EventName() string  { return "game-state" }
func (PlayerJoined) EventName() string   { return "player-joined" }
func (PlayerLeft) EventName() string     { return "player-left" }
func (GameStarted) EventName() string    { return "game-started" }
func (RoundStarted) EventName() string   { return "round-started" }
func (CorrectGuess) EventName() string   { return "correct-guess" }
func (WrongGuess) EventName() string     { return "wrong-guess" }
func (TurnTimeout) EventName() string    { return "turn-timeout" }
func (RoundWon) EventName() string       { return "round-won" }
func (RoundLost) EventName() string      { return "round-lost" }
func (WaitingForWord) EventName() string { return "waiting-for-word" }
func (GameOver) EventName() string       { return "game-over" }
func (NewMessage) EventName() string     { return "new-message" }
func (Error) EventName() string          { return "error" }

// ErrorEvent renders a rejection for the actor.
func ErrorEvent(err error) Error {
	return Error{Message: err.Error(), Kind: KindOf(err).String()}
}
