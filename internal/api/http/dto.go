package http

import "hangman-party/internal/config"

// CreateRoomRequest represents the payload for /api/create-room.
type CreateRoomRequest struct {
	HostName string `json:"hostName" binding:"required"`
}

// CreateRoomResponse tells the host which room to join and as whom.
type CreateRoomResponse struct {
	RoomID   string `json:"roomId"`
	HostID   string `json:"hostId"`
	HostName string `json:"hostName"`
}

// SettingsResponse is the game configuration clients render timers and
// input limits from.
type SettingsResponse struct {
	TotalRounds         int `json:"totalRounds"`
	MaxStrikes          int `json:"maxStrikes"`
	TurnSeconds         int `json:"turnSeconds"`
	RoundSummarySeconds int `json:"roundSummarySeconds"`
	MinWordLength       int `json:"minWordLength"`
	MaxWordLength       int `json:"maxWordLength"`
	MaxNameLength       int `json:"maxNameLength"`
	MaxChatLength       int `json:"maxChatLength"`
}

func newSettingsResponse(g config.Game) SettingsResponse {
	return SettingsResponse{
		TotalRounds:         g.TotalRounds,
		MaxStrikes:          g.MaxStrikes,
		TurnSeconds:         int(g.TurnDuration.Seconds()),
		RoundSummarySeconds: int(g.RoundSummaryDelay.Seconds()),
		MinWordLength:       g.MinWordLength,
		MaxWordLength:       g.MaxWordLength,
		MaxNameLength:       g.MaxNameLength,
		MaxChatLength:       g.MaxChatLength,
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
