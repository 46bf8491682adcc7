package ws

import (
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// client is one websocket connection. Its id is the transport session id
// the manager binds players to.
type client struct {
	id      string
	conn    *websocket.Conn
	send    chan []byte
	limiter *rate.Limiter
}
