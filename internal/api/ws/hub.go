package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"hangman-party/internal/config"
	"hangman-party/internal/session"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = time.Minute
	pingPeriod     = pongWait * 9 / 10
	maxFrameSize   = 4096
	sendBufferSize = 64
)

// Dispatcher applies decoded actions. *session.Manager implements it.
type Dispatcher interface {
	Dispatch(a session.Action) error
}

// Hub owns every websocket connection and implements session.Emitter.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
	rooms   map[string]map[string]struct{}

	dispatcher Dispatcher
	limits     config.Transport
	log        zerolog.Logger
	upgrader   websocket.Upgrader
}

func NewHub(d Dispatcher, limits config.Transport, allowedOrigin string, log zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]*client),
		rooms:      make(map[string]map[string]struct{}),
		dispatcher: d,
		limits:     limits,
		log:        log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowedOrigin == "" || allowedOrigin == "*" || origin == "" || origin == allowedOrigin
			},
		},
	}
}

// SetDispatcher wires the manager in after both sides exist.
func (h *Hub) SetDispatcher(d Dispatcher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dispatcher = d
}

func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Str("remote", c.ClientIP()).Msg("websocket upgrade failed")
		return
	}

	cl := &client{
		id:      uuid.NewString(),
		conn:    conn,
		send:    make(chan []byte, sendBufferSize),
		limiter: rate.NewLimiter(rate.Limit(h.limits.RatePerSecond), h.limits.RateBurst),
	}
	h.register(cl)
	h.log.Debug().Str("session", cl.id).Msg("websocket connected")

	go h.writePump(cl)
	h.readPump(cl)
}

func (h *Hub) register(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[cl.id] = cl
}

// unregister forgets the session and closes its send queue. It reports
// whether the session was still registered.
func (h *Hub) unregister(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	cl, ok := h.clients[id]
	if !ok {
		return false
	}
	delete(h.clients, id)
	for code, members := range h.rooms {
		delete(members, id)
		if len(members) == 0 {
			delete(h.rooms, code)
		}
	}
	close(cl.send)
	return true
}

func (h *Hub) readPump(cl *client) {
	defer func() {
		if h.unregister(cl.id) {
			h.currentDispatcher().Dispatch(session.Disconnect{SessionID: cl.id})
		}
		_ = cl.conn.Close()
		h.log.Debug().Str("session", cl.id).Msg("websocket closed")
	}()

	cl.conn.SetReadLimit(maxFrameSize)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn().Err(err).Str("session", cl.id).Msg("websocket read failed")
			}
			return
		}

		if !cl.limiter.Allow() {
			h.Send(cl.id, session.ErrorEvent(&session.RejectError{Kind: session.KindValidation, Err: errRateLimited}))
			continue
		}

		action, err := decodeAction(data, cl.id)
		if err != nil {
			h.log.Debug().Err(err).Str("session", cl.id).Msg("bad frame")
			h.Send(cl.id, session.ErrorEvent(err))
			continue
		}
		// rejections are delivered by the manager itself
		_ = h.currentDispatcher().Dispatch(action)
	}
}

func (h *Hub) writePump(cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = cl.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = cl.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := cl.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.log.Warn().Err(err).Str("session", cl.id).Msg("websocket write failed")
				return
			}
		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) currentDispatcher() Dispatcher {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.dispatcher
}

func (h *Hub) Subscribe(roomCode, sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[sessionID]; !ok {
		return
	}
	members, ok := h.rooms[roomCode]
	if !ok {
		members = make(map[string]struct{})
		h.rooms[roomCode] = members
	}
	members[sessionID] = struct{}{}
}

func (h *Hub) Broadcast(roomCode string, e session.Event) {
	msg, err := encodeEvent(e)
	if err != nil {
		h.log.Error().Err(err).Str("event", e.EventName()).Msg("encode event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id := range h.rooms[roomCode] {
		if cl, ok := h.clients[id]; ok {
			h.enqueue(cl, msg)
		}
	}
}

func (h *Hub) Send(sessionID string, e session.Event) {
	msg, err := encodeEvent(e)
	if err != nil {
		h.log.Error().Err(err).Str("event", e.EventName()).Msg("encode event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if cl, ok := h.clients[sessionID]; ok {
		h.enqueue(cl, msg)
	}
}

// enqueue never blocks. A client whose queue is full is too slow to keep
// up and gets disconnected; its read pump then cleans up.
// Callers hold h.mu.
func (h *Hub) enqueue(cl *client, msg []byte) {
	select {
	case cl.send <- msg:
	default:
		h.log.Warn().Str("session", cl.id).Msg("send queue full, dropping client")
		_ = cl.conn.Close()
	}
}

// Sessions returns the number of open connections.
func (h *Hub) Sessions() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close drops every connection. Each read pump then raises its disconnect.
func (h *Hub) Close() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, cl := range h.clients {
		_ = cl.conn.Close()
	}
}
