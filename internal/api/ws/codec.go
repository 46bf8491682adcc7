package ws

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"hangman-party/internal/session"
)

var (
	errMalformedFrame = errors.New("malformed frame")
	errRateLimited    = errors.New("too many actions, slow down")
)

type inboundFrame struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type outboundFrame struct {
	Action string `json:"action"`
	Data   any    `json:"data"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report the wire name, not the Go field name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func encodeEvent(e session.Event) ([]byte, error) {
	return json.Marshal(outboundFrame{Action: e.EventName(), Data: e})
}

// decodeAction turns one inbound frame into a session action bound to
// sessionID.
func decodeAction(raw []byte, sessionID string) (session.Action, error) {
	var f inboundFrame
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, malformed(err.Error())
	}
	if len(f.Data) == 0 || string(f.Data) == "null" {
		f.Data = json.RawMessage("{}")
	}

	switch f.Action {
	case "join-room":
		a := session.Join{SessionID: sessionID}
		return bindAction(f.Data, &a)
	case "start-game":
		a := session.StartGame{SessionID: sessionID}
		return bindAction(f.Data, &a)
	case "set-word":
		a := session.SetWord{SessionID: sessionID}
		return bindAction(f.Data, &a)
	case "guess-letter":
		a := session.GuessLetter{SessionID: sessionID}
		return bindAction(f.Data, &a)
	case "next-round":
		a := session.AdvanceRound{SessionID: sessionID}
		return bindAction(f.Data, &a)
	case "send-message":
		a := session.SendMessage{SessionID: sessionID}
		return bindAction(f.Data, &a)
	default:
		return nil, &session.RejectError{
			Kind:   session.KindValidation,
			Err:    session.ErrUnknownAction,
			Detail: f.Action,
		}
	}
}

// bindAction fills dst from data and validates it. dst must point at one of
// the session action structs; the value it points at is returned.
func bindAction[T session.Action](data json.RawMessage, dst *T) (session.Action, error) {
	if err := json.Unmarshal(data, dst); err != nil {
		return nil, malformed(err.Error())
	}
	if err := validate.Struct(dst); err != nil {
		return nil, malformed(describe(err))
	}
	return *dst, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+" is "+fe.Tag())
	}
	return strings.Join(parts, ", ")
}

func malformed(detail string) error {
	return &session.RejectError{Kind: session.KindValidation, Err: errMalformedFrame, Detail: detail}
}
