package session

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hangman-party/internal/config"
	"hangman-party/internal/room"
	"hangman-party/internal/shared"
)

// Store is the room table. Only the Manager writes to it.
type Store interface {
	GetRoom(code string) (*room.Room, bool)
	SaveRoom(r *room.Room)
	DeleteRoom(code string)
	Rooms() []*room.Room
}

// Manager is the single point of control for every room. All state
// transitions, including timer expiries, run under mu one at a time.
type Manager struct {
	mu      sync.Mutex
	store   Store
	emitter Emitter
	clock   Scheduler
	cfg     config.Game
	log     zerolog.Logger

	now   func() time.Time
	newID func() string
}

func NewManager(s Store, e Emitter, clock Scheduler, cfg config.Game, log zerolog.Logger) *Manager {
	if clock == nil {
		clock = SystemScheduler{}
	}
	return &Manager{
		store:   s,
		emitter: e,
		clock:   clock,
		cfg:     cfg,
		log:     log,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// SetEmitter breaks the construction cycle between the manager and the
// transport hub.
func (m *Manager) SetEmitter(e Emitter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emitter = e
}

func (m *Manager) Settings() config.Game {
	return m.cfg
}

// CreateRoom registers a new room with hostName as its first player and
// host. The host has no transport session until it joins.
func (m *Manager) CreateRoom(hostName string) (code, hostID string, err error) {
	name, err := m.cleanName(hostName)
	if err != nil {
		return "", "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	code = m.newCode()
	hostID = m.newID()

	r := room.New(code, m.cfg.TotalRounds, m.cfg.MaxStrikes)
	host := r.AddPlayer(hostID, name, "")
	host.IsHost = true
	m.store.SaveRoom(r)

	m.log.Info().Str("room", code).Str("host", hostID).Msg("room created")
	return code, hostID, nil
}

func (m *Manager) newCode() string {
	for {
		code := strings.ToUpper(strings.ReplaceAll(m.newID(), "-", "")[:8])
		if _, exists := m.store.GetRoom(code); !exists {
			return code
		}
	}
}

func (m *Manager) Snapshot(code string) (shared.GameState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.store.GetRoom(code)
	if !ok {
		return shared.GameState{}, false
	}
	return r.State(), true
}

// Dispatch applies one action. A rejection is sent to the actor's session
// and also returned.
func (m *Manager) Dispatch(a Action) error {
	if a == nil {
		return invalid(ErrUnknownAction)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var err error
	switch a := a.(type) {
	case Join:
		err = m.join(a)
	case StartGame:
		err = m.startGame(a)
	case SetWord:
		err = m.setWord(a)
	case GuessLetter:
		err = m.guessLetter(a)
	case AdvanceRound:
		err = m.advanceRound(a)
	case SendMessage:
		err = m.sendMessage(a)
	case Disconnect:
		m.disconnect(a)
	default:
		err = invalid(ErrUnknownAction)
	}

	if err != nil {
		m.log.Debug().Str("session", a.Session()).Str("action", actionName(a)).Err(err).Msg("action rejected")
		if sid := a.Session(); sid != "" {
			m.emitter.Send(sid, ErrorEvent(err))
		}
	}
	return err
}

func actionName(a Action) string {
	switch a.(type) {
	case Join:
		return "join-room"
	case StartGame:
		return "start-game"
	case SetWord:
		return "set-word"
	case GuessLetter:
		return "guess-letter"
	case AdvanceRound:
		return "next-round"
	case SendMessage:
		return "send-message"
	case Disconnect:
		return "disconnect"
	default:
		return "unknown"
	}
}

func (m *Manager) room(code string) (*room.Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, notFound(ErrRoomNotFound)
	}
	return r, nil
}

func (m *Manager) cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > m.cfg.MaxNameLength {
		return "", invalid(ErrInvalidName)
	}
	return name, nil
}

func (m *Manager) join(a Join) error {
	if strings.TrimSpace(a.PlayerID) == "" {
		return invalid(ErrInvalidPlayer)
	}
	name, err := m.cleanName(a.PlayerName)
	if err != nil {
		return err
	}
	r, err := m.room(a.RoomCode)
	if err != nil {
		return err
	}

	p, rejoin := r.FindPlayer(a.PlayerID)
	if rejoin {
		p.SessionID = a.SessionID
	} else {
		p = r.AddPlayer(a.PlayerID, name, a.SessionID)
	}

	m.emitter.Subscribe(r.Code, a.SessionID)
	m.emitter.Send(a.SessionID, Joined{PlayerID: p.ID, RoomID: r.Code, IsHost: p.IsHost})
	m.broadcastState(r)
	m.emitter.Broadcast(r.Code, PlayerJoined{PlayerID: p.ID, PlayerName: p.Name})

	m.log.Info().Str("room", r.Code).Str("player", p.ID).Bool("rejoin", rejoin).Msg("player joined")
	return nil
}

func (m *Manager) startGame(a StartGame) error {
	r, err := m.room(a.RoomCode)
	if err != nil {
		return err
	}
	p, ok := r.FindPlayer(a.PlayerID)
	if !ok || !p.IsHost {
		return forbidden(ErrNotHost)
	}
	if r.Phase() != room.PhaseLobby {
		return conflict(ErrAlreadyStarted)
	}
	if len(r.Players) < 2 {
		return conflict(ErrNotEnoughPlayers)
	}

	r.StartGame()
	m.emitter.Broadcast(r.Code, GameStarted{r.State()})
	m.log.Info().Str("room", r.Code).Int("players", len(r.Players)).Msg("game started")
	return nil
}

func (m *Manager) broadcastState(r *room.Room) {
	m.emitter.Broadcast(r.Code, StateSnapshot{r.State()})
}
