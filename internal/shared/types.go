package shared

import "time"

// PlayerView is what clients see of a player. It never carries the
// transport session.
type PlayerView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Score        int    `json:"score"`
	Strikes      int    `json:"strikes"`
	IsHost       bool   `json:"isHost"`
	IsWordSetter bool   `json:"isWordSetter"`
}

type ChatMessage struct {
	ID         int64     `json:"id"`
	PlayerID   string    `json:"playerId"`
	PlayerName string    `json:"playerName"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

// GameState is the full room snapshot sent to clients. The secret word is
// deliberately absent.
type GameState struct {
	RoomID           string        `json:"roomId"`
	Players          []PlayerView  `json:"players"`
	CurrentRound     int           `json:"currentRound"`
	TotalRounds      int           `json:"totalRounds"`
	RevealedWord     []string      `json:"revealedWord"`
	GuessedLetters   []string      `json:"guessedLetters"`
	CurrentTurnIndex int           `json:"currentTurnIndex"`
	WordSetterIndex  int           `json:"wordSetterIndex"`
	MaxStrikes       int           `json:"maxStrikes"`
	GameStarted      bool          `json:"gameStarted"`
	RoundInProgress  bool          `json:"roundInProgress"`
	GameOver         bool          `json:"gameOver"`
	Messages         []ChatMessage `json:"messages"`
}

type LeaderboardEntry struct {
	Rank int `json:"rank"`
	PlayerView
}
