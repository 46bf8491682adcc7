package session

import (
	"time"

	"hangman-party/internal/room"
)

// Emitter delivers events. Implementations must not block: the manager
// calls them while holding its lock.
type Emitter interface {
	Broadcast(roomCode string, e Event)
	Send(sessionID string, e Event)
	Subscribe(roomCode, sessionID string)
}

// Scheduler runs f once after d. Tests substitute a manual clock.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) room.Timer
}

type SystemScheduler struct{}

func (SystemScheduler) AfterFunc(d time.Duration, f func()) room.Timer {
	return time.AfterFunc(d, f)
}
