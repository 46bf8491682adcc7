package room

// Timer is a pending turn deadline. Stop reports whether it was stopped
// before firing, like *time.Timer.
type Timer interface {
	Stop() bool
}

// ArmTurnTimer replaces any pending turn timer. start receives the
// generation the new timer belongs to; the callback it schedules must check
// TurnTimerCurrent with that generation before touching the room.
func (r *Room) ArmTurnTimer(start func(gen uint64) Timer) {
	r.CancelTurnTimer()
	r.turnTimer = start(r.timerGen)
}

// CancelTurnTimer stops the pending timer, if any, and invalidates its
// generation so a callback already in flight becomes a no-op.
func (r *Room) CancelTurnTimer() bool {
	r.timerGen++
	if r.turnTimer == nil {
		return false
	}
	stopped := r.turnTimer.Stop()
	r.turnTimer = nil
	return stopped
}

func (r *Room) TurnTimerCurrent(gen uint64) bool {
	return r.turnTimer != nil && r.timerGen == gen
}

func (r *Room) HasTurnTimer() bool {
	return r.turnTimer != nil
}
