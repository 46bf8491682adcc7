package room

import (
	"strings"
	"time"
	"unicode"

	"hangman-party/internal/shared"
)

// Placeholder marks an unsolved position of the revealed word.
const Placeholder = '_'

type Phase string

const (
	PhaseLobby        Phase = "lobby"
	PhaseAwaitingWord Phase = "awaiting_word"
	PhaseRoundActive  Phase = "round_active"
	PhaseRoundEnded   Phase = "round_ended"
	PhaseGameOver     Phase = "game_over"
)

type Room struct {
	Code             string               `json:"code"`
	Players          []*Player            `json:"players"`
	CurrentRound     int                  `json:"currentRound"`
	TotalRounds      int                  `json:"totalRounds"`
	SecretWord       string               `json:"-"`
	RevealedWord     []rune               `json:"-"`
	GuessedLetters   []rune               `json:"-"`
	CurrentTurnIndex int                  `json:"currentTurnIndex"`
	WordSetterIndex  int                  `json:"wordSetterIndex"`
	MaxStrikes       int                  `json:"maxStrikes"`
	GameStarted      bool                 `json:"gameStarted"`
	RoundInProgress  bool                 `json:"roundInProgress"`
	GameOver         bool                 `json:"gameOver"`
	Messages         []shared.ChatMessage `json:"messages"`
	CreatedAt        time.Time            `json:"createdAt"`

	turnTimer Timer
	timerGen  uint64
	lastMsgID int64
}

type GuessResult struct {
	Letter         string
	AlreadyGuessed bool
	Correct        bool
	RevealedWord   []string
}

// Removal describes what the departing player was doing when removed.
type Removal struct {
	Player        *Player
	WasTurnHolder bool
	WasWordSetter bool
}

func New(code string, totalRounds, maxStrikes int) *Room {
	return &Room{
		Code:        code,
		TotalRounds: totalRounds,
		MaxStrikes:  maxStrikes,
		CreatedAt:   time.Now(),
	}
}

func (r *Room) Phase() Phase {
	switch {
	case r.GameOver:
		return PhaseGameOver
	case !r.GameStarted:
		return PhaseLobby
	case r.RoundInProgress:
		return PhaseRoundActive
	case r.SecretWord != "":
		return PhaseRoundEnded
	default:
		return PhaseAwaitingWord
	}
}

func (r *Room) AddPlayer(id, name, sessionID string) *Player {
	p := NewPlayer(id, name, sessionID)
	r.Players = append(r.Players, p)
	return p
}

func (r *Room) FindPlayer(id string) (*Player, bool) {
	for _, p := range r.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

func (r *Room) PlayerBySession(sessionID string) (*Player, bool) {
	if sessionID == "" {
		return nil, false
	}
	for _, p := range r.Players {
		if p.SessionID == sessionID {
			return p, true
		}
	}
	return nil, false
}

func (r *Room) indexOf(id string) int {
	for i, p := range r.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// RemovePlayer drops the player and keeps the turn and word-setter indices
// pointing at the same people they pointed at before. If the removed player
// held one of those seats, the index moves to the seat before it so the next
// rotation reaches whoever followed; a removed turn-holder in an active round
// is replaced right away.
func (r *Room) RemovePlayer(id string) (Removal, bool) {
	idx := r.indexOf(id)
	if idx == -1 {
		return Removal{}, false
	}

	out := Removal{
		Player:        r.Players[idx],
		WasTurnHolder: r.RoundInProgress && idx == r.CurrentTurnIndex,
		WasWordSetter: r.GameStarted && idx == r.WordSetterIndex,
	}
	r.Players = append(r.Players[:idx], r.Players[idx+1:]...)
	n := len(r.Players)

	if out.Player.IsHost && n > 0 {
		r.Players[0].IsHost = true
	}

	r.WordSetterIndex = reanchor(r.WordSetterIndex, idx, n)
	r.CurrentTurnIndex = reanchor(r.CurrentTurnIndex, idx, n)

	switch {
	case n == 0:
	case out.WasTurnHolder:
		r.NextTurn()
	case r.GameStarted && !r.RoundInProgress:
		r.CurrentTurnIndex = (r.WordSetterIndex + 1) % n
	}
	return out, true
}

func reanchor(pos, removed, n int) int {
	switch {
	case n == 0:
		return 0
	case removed < pos:
		return pos - 1
	case removed == pos:
		return (pos - 1 + n) % n
	default:
		return pos
	}
}

// SetSecretWord performs no length validation; callers enforce it.
func (r *Room) SetSecretWord(word string) {
	r.SecretWord = strings.ToUpper(word)
	r.RevealedWord = make([]rune, 0, len(r.SecretWord))
	for range r.SecretWord {
		r.RevealedWord = append(r.RevealedWord, Placeholder)
	}
	r.GuessedLetters = nil
}

func (r *Room) GuessLetter(letter string) GuessResult {
	upper := strings.ToUpper(letter)
	ch, _ := firstRune(upper)

	for _, g := range r.GuessedLetters {
		if g == ch {
			return GuessResult{Letter: upper, AlreadyGuessed: true, RevealedWord: r.revealed()}
		}
	}
	r.GuessedLetters = append(r.GuessedLetters, ch)

	correct := false
	for i, c := range []rune(r.SecretWord) {
		if c == ch {
			r.RevealedWord[i] = ch
			correct = true
		}
	}
	return GuessResult{Letter: upper, Correct: correct, RevealedWord: r.revealed()}
}

func firstRune(s string) (rune, bool) {
	for _, c := range s {
		return unicode.ToUpper(c), true
	}
	return 0, false
}

func (r *Room) IsWordComplete() bool {
	for _, c := range r.RevealedWord {
		if c == Placeholder {
			return false
		}
	}
	return true
}

func (r *Room) CurrentPlayer() *Player {
	if r.CurrentTurnIndex < 0 || r.CurrentTurnIndex >= len(r.Players) {
		return nil
	}
	return r.Players[r.CurrentTurnIndex]
}

func (r *Room) WordSetter() *Player {
	if r.WordSetterIndex < 0 || r.WordSetterIndex >= len(r.Players) {
		return nil
	}
	return r.Players[r.WordSetterIndex]
}

// NextTurn moves the turn to the next player, skipping the word setter. It
// does nothing with fewer than two players.
func (r *Room) NextTurn() {
	n := len(r.Players)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		r.CurrentTurnIndex = (r.CurrentTurnIndex + 1) % n
		if r.CurrentTurnIndex != r.WordSetterIndex {
			return
		}
	}
}

// NextRound rotates the word setter and clears the puzzle. It does not flag
// the new word setter; see MarkWordSetter.
func (r *Room) NextRound() {
	r.CurrentRound++
	if n := len(r.Players); n > 0 {
		r.WordSetterIndex = (r.WordSetterIndex + 1) % n
		r.CurrentTurnIndex = (r.WordSetterIndex + 1) % n
	}
	r.clearPuzzle()
	r.RoundInProgress = false
	for _, p := range r.Players {
		p.ResetForNewRound()
	}
}

func (r *Room) clearPuzzle() {
	r.SecretWord = ""
	r.RevealedWord = nil
	r.GuessedLetters = nil
}

// StartGame moves a lobby into round one with the first player setting the
// word.
func (r *Room) StartGame() {
	r.GameStarted = true
	r.CurrentRound = 1
	r.WordSetterIndex = 0
	r.CurrentTurnIndex = 1 % max(len(r.Players), 1)
	r.clearPuzzle()
	for _, p := range r.Players {
		p.ResetForNewRound()
	}
	r.MarkWordSetter()
}

func (r *Room) MarkWordSetter() {
	for i, p := range r.Players {
		p.IsWordSetter = i == r.WordSetterIndex
	}
}

// PromoteNextWordSetter hands the word-setter seat to the following player
// while no round is running.
func (r *Room) PromoteNextWordSetter() {
	n := len(r.Players)
	if n == 0 {
		return
	}
	r.WordSetterIndex = (r.WordSetterIndex + 1) % n
	r.CurrentTurnIndex = (r.WordSetterIndex + 1) % n
	r.MarkWordSetter()
}

func (r *Room) BeginRound(word string) {
	r.SetSecretWord(word)
	r.RoundInProgress = true
	if n := len(r.Players); n > 0 {
		r.CurrentTurnIndex = (r.WordSetterIndex + 1) % n
	}
}

// EndRound keeps the secret word so the ended round can still be shown.
func (r *Room) EndRound() {
	r.RoundInProgress = false
	r.CancelTurnTimer()
}

func (r *Room) AddMessage(playerID, text string, at time.Time) shared.ChatMessage {
	name := "Unknown"
	if p, ok := r.FindPlayer(playerID); ok {
		name = p.Name
	}
	r.lastMsgID++
	msg := shared.ChatMessage{
		ID:         r.lastMsgID,
		PlayerID:   playerID,
		PlayerName: name,
		Message:    text,
		Timestamp:  at,
	}
	r.Messages = append(r.Messages, msg)
	return msg
}

func (r *Room) revealed() []string {
	out := make([]string, len(r.RevealedWord))
	for i, c := range r.RevealedWord {
		out[i] = string(c)
	}
	return out
}

func (r *Room) State() shared.GameState {
	players := make([]shared.PlayerView, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, p.View())
	}
	guessed := make([]string, len(r.GuessedLetters))
	for i, c := range r.GuessedLetters {
		guessed[i] = string(c)
	}
	messages := make([]shared.ChatMessage, len(r.Messages))
	copy(messages, r.Messages)

	return shared.GameState{
		RoomID:           r.Code,
		Players:          players,
		CurrentRound:     r.CurrentRound,
		TotalRounds:      r.TotalRounds,
		RevealedWord:     r.revealed(),
		GuessedLetters:   guessed,
		CurrentTurnIndex: r.CurrentTurnIndex,
		WordSetterIndex:  r.WordSetterIndex,
		MaxStrikes:       r.MaxStrikes,
		GameStarted:      r.GameStarted,
		RoundInProgress:  r.RoundInProgress,
		GameOver:         r.GameOver,
		Messages:         messages,
	}
}
