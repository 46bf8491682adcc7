package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hangman-party/internal/session"
)

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want session.Action
	}{
		{
			name: "join",
			raw:  `{"action":"join-room","data":{"roomId":"ABCD1234","playerId":"p1","playerName":"Ann"}}`,
			want: session.Join{RoomCode: "ABCD1234", PlayerID: "p1", PlayerName: "Ann", SessionID: "s1"},
		},
		{
			name: "start",
			raw:  `{"action":"start-game","data":{"roomId":"R","playerId":"p1"}}`,
			want: session.StartGame{RoomCode: "R", PlayerID: "p1", SessionID: "s1"},
		},
		{
			name: "set word",
			raw:  `{"action":"set-word","data":{"roomId":"R","playerId":"p1","word":"cat"}}`,
			want: session.SetWord{RoomCode: "R", PlayerID: "p1", Word: "cat", SessionID: "s1"},
		},
		{
			name: "guess",
			raw:  `{"action":"guess-letter","data":{"roomId":"R","playerId":"p2","letter":"a"}}`,
			want: session.GuessLetter{RoomCode: "R", PlayerID: "p2", Letter: "a", SessionID: "s1"},
		},
		{
			name: "next round",
			raw:  `{"action":"next-round","data":{"roomId":"R"}}`,
			want: session.AdvanceRound{RoomCode: "R", SessionID: "s1"},
		},
		{
			name: "chat",
			raw:  `{"action":"send-message","data":{"roomId":"R","playerId":"p2","message":"hi"}}`,
			want: session.SendMessage{RoomCode: "R", PlayerID: "p2", Message: "hi", SessionID: "s1"},
		},
		{
			name: "session id in payload is ignored",
			raw:  `{"action":"next-round","data":{"roomId":"R","SessionID":"spoofed"}}`,
			want: session.AdvanceRound{RoomCode: "R", SessionID: "s1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeAction([]byte(tt.raw), "s1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeAction_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
		detail  string
	}{
		{"not json", `hello`, errMalformedFrame, ""},
		{"unknown action", `{"action":"draw","data":{}}`, session.ErrUnknownAction, "draw"},
		{"missing data", `{"action":"start-game"}`, errMalformedFrame, "roomId is required, playerId is required"},
		{"missing room", `{"action":"guess-letter","data":{"playerId":"p","letter":"a"}}`, errMalformedFrame, "roomId is required"},
		{"wrong type", `{"action":"set-word","data":{"roomId":"R","playerId":"p","word":7}}`, errMalformedFrame, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeAction([]byte(tt.raw), "s1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, session.KindValidation, session.KindOf(err))

			var re *session.RejectError
			require.ErrorAs(t, err, &re)
			if tt.detail != "" {
				assert.Equal(t, tt.detail, re.Detail)
			}
		})
	}
}

func TestEncodeEvent(t *testing.T) {
	raw, err := encodeEvent(session.RoundLost{SecretWord: "CAT", TotalStrikes: 6})
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"round-lost","data":{"secretWord":"CAT","totalStrikes":6}}`, string(raw))

	raw, err = encodeEvent(session.ErrorEvent(&session.RejectError{Kind: session.KindValidation, Err: errRateLimited}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"error","data":{"message":"too many actions, slow down","kind":"validation"}}`, string(raw))
}
