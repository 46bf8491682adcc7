package session

import "errors"

// Kind classifies why an action was rejected. Every kind is local to the
// actor: the room is left untouched and only the sender hears about it.
type Kind int

const (
	KindNone Kind = iota
	KindNotFound
	KindAuthorization
	KindValidation
	KindStateConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAuthorization:
		return "authorization"
	case KindValidation:
		return "validation"
	case KindStateConflict:
		return "state_conflict"
	default:
		return "none"
	}
}

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrPlayerNotFound = errors.New("player not found")

	ErrNotHost       = errors.New("only the host can start the game")
	ErrNotWordSetter = errors.New("you are not the word setter")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrNotInRoom     = errors.New("you are not in this room")

	ErrInvalidName    = errors.New("invalid player name")
	ErrInvalidPlayer  = errors.New("player id is required")
	ErrWordLength     = errors.New("word length out of range")
	ErrWordNotLetters = errors.New("word must contain only letters A-Z")
	ErrInvalidLetter  = errors.New("invalid letter")
	ErrEmptyMessage   = errors.New("message is empty")
	ErrMessageTooLong = errors.New("message is too long")
	ErrUnknownAction  = errors.New("unknown action")

	ErrNotEnoughPlayers = errors.New("need at least 2 players")
	ErrAlreadyStarted   = errors.New("game already started")
	ErrNotStarted       = errors.New("game has not started")
	ErrNoActiveRound    = errors.New("no round in progress")
	ErrRoundInProgress  = errors.New("round already in progress")
	ErrRoundNotOver     = errors.New("round has not ended")
	ErrRoundOver        = errors.New("round has ended, advance to the next round")
	ErrGameOver         = errors.New("game is over")
	ErrAlreadyGuessed   = errors.New("letter already guessed")
)

// RejectError wraps a sentinel with its Kind and optional detail.
type RejectError struct {
	Kind   Kind
	Err    error
	Detail string
}

func (e *RejectError) Error() string {
	if e.Detail != "" {
		return e.Err.Error() + ": " + e.Detail
	}
	return e.Err.Error()
}

func (e *RejectError) Unwrap() error { return e.Err }

func reject(kind Kind, err error) *RejectError {
	return &RejectError{Kind: kind, Err: err}
}

func notFound(err error) error  { return reject(KindNotFound, err) }
func forbidden(err error) error { return reject(KindAuthorization, err) }
func invalid(err error) error   { return reject(KindValidation, err) }
func conflict(err error) error  { return reject(KindStateConflict, err) }

// KindOf returns the rejection kind of err, or KindNone.
func KindOf(err error) Kind {
	var re *RejectError
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindNone
}
