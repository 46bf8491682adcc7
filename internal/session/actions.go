package session

// Action is one inbound request. The set is closed: Dispatch handles every
// type below and rejects anything else.
type Action interface {
	// Session is the transport session the action arrived on; rejections
	// are delivered there.
	Session() string
}

type Join struct {
	RoomCode   string `json:"roomId" validate:"required"`
	PlayerID   string `json:"playerId" validate:"required"`
	PlayerName string `json:"playerName" validate:"required"`
	SessionID  string `json:"-"`
}

type StartGame struct {
	RoomCode  string `json:"roomId" validate:"required"`
	PlayerID  string `json:"playerId" validate:"required"`
	SessionID string `json:"-"`
}

type SetWord struct {
	RoomCode  string `json:"roomId" validate:"required"`
	PlayerID  string `json:"playerId" validate:"required"`
	Word      string `json:"word"`
	SessionID string `json:"-"`
}

type GuessLetter struct {
	RoomCode  string `json:"roomId" validate:"required"`
	PlayerID  string `json:"playerId" validate:"required"`
	Letter    string `json:"letter"`
	SessionID string `json:"-"`
}

// AdvanceRound may be sent by anyone who knows the room code.
type AdvanceRound struct {
	RoomCode  string `json:"roomId" validate:"required"`
	SessionID string `json:"-"`
}

type SendMessage struct {
	RoomCode  string `json:"roomId" validate:"required"`
	PlayerID  string `json:"playerId" validate:"required"`
	Message   string `json:"message"`
	SessionID string `json:"-"`
}

// Disconnect is raised by the transport when a session goes away.
type Disconnect struct {
	SessionID string `json:"-"`
}

func (a Join) Session() string         { return a.SessionID }
func (a StartGame) Session() string    { return a.SessionID }
func (a SetWord) Session() string      { return a.SessionID }
func (a GuessLetter) Session() string  { return a.SessionID }
func (a AdvanceRound) Session() string { return a.SessionID }
func (a SendMessage) Session() string  { return a.SessionID }
func (a Disconnect) Session() string   { return a.SessionID }
