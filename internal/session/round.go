package session

import (
	"fmt"
	"strings"

	"hangman-party/internal/game"
	"hangman-party/internal/room"
)

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func (m *Manager) validateWord(word string) error {
	if len(word) < m.cfg.MinWordLength || len(word) > m.cfg.MaxWordLength {
		return &RejectError{
			Kind:   KindValidation,
			Err:    ErrWordLength,
			Detail: fmt.Sprintf("must be %d to %d letters", m.cfg.MinWordLength, m.cfg.MaxWordLength),
		}
	}
	for i := 0; i < len(word); i++ {
		if !isASCIILetter(word[i]) {
			return invalid(ErrWordNotLetters)
		}
	}
	return nil
}

// phaseError explains why an action that needs want cannot run in got.
func phaseError(got, want room.Phase) error {
	switch got {
	case want:
		return nil
	case room.PhaseGameOver:
		return conflict(ErrGameOver)
	case room.PhaseLobby:
		return conflict(ErrNotStarted)
	case room.PhaseRoundActive:
		return conflict(ErrRoundInProgress)
	case room.PhaseRoundEnded:
		if want == room.PhaseRoundActive {
			return conflict(ErrNoActiveRound)
		}
		return conflict(ErrRoundOver)
	default:
		if want == room.PhaseRoundEnded {
			return conflict(ErrRoundNotOver)
		}
		return conflict(ErrNoActiveRound)
	}
}

func (m *Manager) setWord(a SetWord) error {
	r, err := m.room(a.RoomCode)
	if err != nil {
		return err
	}
	if err := phaseError(r.Phase(), room.PhaseAwaitingWord); err != nil {
		return err
	}
	p, ok := r.FindPlayer(a.PlayerID)
	setter := r.WordSetter()
	if !ok || setter == nil || p.ID != setter.ID {
		return forbidden(ErrNotWordSetter)
	}
	if len(r.Players) < 2 {
		return conflict(ErrNotEnoughPlayers)
	}
	word := strings.TrimSpace(a.Word)
	if err := m.validateWord(word); err != nil {
		return err
	}

	r.BeginRound(word)
	m.emitter.Broadcast(r.Code, RoundStarted{r.State()})
	m.startTurnTimer(r)

	m.log.Info().Str("room", r.Code).Int("round", r.CurrentRound).Int("length", len(word)).Msg("round started")
	return nil
}

func (m *Manager) guessLetter(a GuessLetter) error {
	r, err := m.room(a.RoomCode)
	if err != nil {
		return err
	}
	if err := phaseError(r.Phase(), room.PhaseRoundActive); err != nil {
		return err
	}
	p, ok := r.FindPlayer(a.PlayerID)
	current := r.CurrentPlayer()
	if !ok || current == nil || p.ID != current.ID {
		return forbidden(ErrNotYourTurn)
	}
	letter := strings.TrimSpace(a.Letter)
	if len(letter) != 1 || !isASCIILetter(letter[0]) {
		return invalid(ErrInvalidLetter)
	}

	// The pending timeout must be dead before the guess is evaluated, or a
	// late expiry could strike the same turn twice.
	r.CancelTurnTimer()

	res := r.GuessLetter(letter)
	if res.AlreadyGuessed {
		m.startTurnTimer(r)
		return conflict(ErrAlreadyGuessed)
	}

	if res.Correct {
		m.emitter.Broadcast(r.Code, CorrectGuess{
			PlayerID:     p.ID,
			PlayerName:   p.Name,
			Letter:       res.Letter,
			RevealedWord: res.RevealedWord,
		})
	} else {
		p.AddStrike()
		m.emitter.Broadcast(r.Code, WrongGuess{
			PlayerID:     p.ID,
			PlayerName:   p.Name,
			Letter:       res.Letter,
			Strikes:      p.Strikes,
			TotalStrikes: game.TotalStrikes(r),
		})
	}

	if r.IsWordComplete() {
		points := game.CalculatePoints(r.CurrentRound, p.Strikes)
		p.AddScore(points)
		m.emitter.Broadcast(r.Code, RoundWon{
			WinnerID:   p.ID,
			WinnerName: p.Name,
			SecretWord: r.SecretWord,
			Points:     points,
		})
		m.endRound(r)
		return nil
	}

	if game.OutOfStrikes(r) {
		m.loseRound(r, game.TotalStrikes(r))
		return nil
	}

	m.passTurn(r)
	return nil
}

func (m *Manager) passTurn(r *room.Room) {
	r.NextTurn()
	m.broadcastState(r)
	m.startTurnTimer(r)
}

func (m *Manager) loseRound(r *room.Room, totalStrikes int) {
	m.emitter.Broadcast(r.Code, RoundLost{SecretWord: r.SecretWord, TotalStrikes: totalStrikes})
	m.endRound(r)
}

// endRound stops the clock and schedules the post-round snapshot.
func (m *Manager) endRound(r *room.Room) {
	r.EndRound()
	m.log.Info().Str("room", r.Code).Int("round", r.CurrentRound).Msg("round ended")

	code := r.Code
	m.clock.AfterFunc(m.cfg.RoundSummaryDelay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if cur, ok := m.store.GetRoom(code); ok && cur == r {
			m.broadcastState(r)
		}
	})
}

func (m *Manager) startTurnTimer(r *room.Room) {
	code := r.Code
	r.ArmTurnTimer(func(gen uint64) room.Timer {
		return m.clock.AfterFunc(m.cfg.TurnDuration, func() {
			m.turnExpired(code, r, gen)
		})
	})
}

// turnExpired treats the turn-holder as if they had guessed wrong. The
// callback may have been queued behind a guess or a removal that already
// cancelled it, so it acts only if its generation is still the live one.
func (m *Manager) turnExpired(code string, r *room.Room, gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cur, ok := m.store.GetRoom(code); !ok || cur != r {
		return
	}
	if !r.TurnTimerCurrent(gen) || !r.RoundInProgress {
		return
	}
	r.CancelTurnTimer()

	p := r.CurrentPlayer()
	if p == nil {
		return
	}
	p.AddStrike()
	total := game.TotalStrikes(r)
	m.emitter.Broadcast(r.Code, TurnTimeout{
		PlayerID:     p.ID,
		PlayerName:   p.Name,
		Strikes:      p.Strikes,
		TotalStrikes: total,
	})
	m.log.Debug().Str("room", r.Code).Str("player", p.ID).Msg("turn timed out")

	if game.OutOfStrikes(r) {
		m.loseRound(r, total)
		return
	}
	m.passTurn(r)
}

func (m *Manager) advanceRound(a AdvanceRound) error {
	r, err := m.room(a.RoomCode)
	if err != nil {
		return err
	}
	if err := phaseError(r.Phase(), room.PhaseRoundEnded); err != nil {
		return err
	}

	if r.CurrentRound >= r.TotalRounds {
		r.GameOver = true
		evt := GameOver{Leaderboard: game.Leaderboard(r.Players)}
		if w := game.Winner(r.Players); w != nil {
			v := w.View()
			evt.Winner = &v
		}
		m.emitter.Broadcast(r.Code, evt)
		m.log.Info().Str("room", r.Code).Msg("game over")
		return nil
	}

	r.NextRound()
	r.MarkWordSetter()
	m.emitter.Broadcast(r.Code, WaitingForWord{r.State()})
	return nil
}

func (m *Manager) sendMessage(a SendMessage) error {
	r, err := m.room(a.RoomCode)
	if err != nil {
		return err
	}
	p, ok := r.FindPlayer(a.PlayerID)
	if !ok {
		return forbidden(ErrNotInRoom)
	}
	text := strings.TrimSpace(a.Message)
	if text == "" {
		return invalid(ErrEmptyMessage)
	}
	if len([]rune(text)) > m.cfg.MaxChatLength {
		return invalid(ErrMessageTooLong)
	}

	msg := r.AddMessage(p.ID, text, m.now())
	m.emitter.Broadcast(r.Code, NewMessage{msg})
	return nil
}

// disconnect removes whoever was bound to the session, in every room they
// were in. Unknown sessions are ignored.
func (m *Manager) disconnect(a Disconnect) {
	if a.SessionID == "" {
		return
	}
	for _, r := range m.store.Rooms() {
		if p, ok := r.PlayerBySession(a.SessionID); ok {
			m.removePlayer(r, p)
		}
	}
}

func (m *Manager) removePlayer(r *room.Room, p *room.Player) {
	phase := r.Phase()
	strikesBefore := game.TotalStrikes(r)

	rem, ok := r.RemovePlayer(p.ID)
	if !ok {
		return
	}
	m.emitter.Broadcast(r.Code, PlayerLeft{PlayerID: p.ID, PlayerName: p.Name})
	m.log.Info().Str("room", r.Code).Str("player", p.ID).Msg("player left")

	if len(r.Players) == 0 {
		r.CancelTurnTimer()
		m.store.DeleteRoom(r.Code)
		m.log.Info().Str("room", r.Code).Msg("room reclaimed")
		return
	}

	switch phase {
	case room.PhaseRoundActive:
		switch {
		case rem.WasWordSetter:
			m.loseRound(r, strikesBefore)
		case len(r.Players) < 2:
			m.loseRound(r, game.TotalStrikes(r))
		case rem.WasTurnHolder:
			m.startTurnTimer(r)
		}
	case room.PhaseAwaitingWord:
		if rem.WasWordSetter {
			r.PromoteNextWordSetter()
		}
	}
	m.broadcastState(r)
}
