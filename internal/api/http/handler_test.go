package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hangman-party/internal/config"
	"hangman-party/internal/session"
	"hangman-party/internal/shared"
)

type MockRoomService struct {
	mock.Mock
}

func (m *MockRoomService) CreateRoom(hostName string) (string, string, error) {
	args := m.Called(hostName)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockRoomService) Snapshot(code string) (shared.GameState, bool) {
	args := m.Called(code)
	return args.Get(0).(shared.GameState), args.Bool(1)
}

func (m *MockRoomService) Settings() config.Game {
	args := m.Called()
	return args.Get(0).(config.Game)
}

type fixedCounter int

func (n fixedCounter) Len() int { return int(n) }

func newTestRouter(rooms *MockRoomService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterDeps{
		Rooms:          rooms,
		Counter:        fixedCounter(2),
		FrontendOrigin: "http://localhost:3000",
		PublicURL:      "https://play.example",
		Log:            zerolog.Nop(),
	})
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)
	return res
}

func TestCreateRoomHandler(t *testing.T) {
	testCases := []struct {
		name         string
		setupMocks   func(*MockRoomService)
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name: "created",
			setupMocks: func(m *MockRoomService) {
				m.On("CreateRoom", " Ann ").Return("ABCD1234", "host-1", nil)
				m.On("Snapshot", "ABCD1234").Return(shared.GameState{
					RoomID:  "ABCD1234",
					Players: []shared.PlayerView{{ID: "host-1", Name: "Ann", IsHost: true}},
				}, true)
			},
			body:         `{"hostName":" Ann "}`,
			expectedCode: http.StatusOK,
			expectedBody: `{"roomId":"ABCD1234","hostId":"host-1","hostName":"Ann"}`,
		},
		{
			name:         "invalid json",
			setupMocks:   func(m *MockRoomService) {},
			body:         `{invalid}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"hostName required","kind":"validation"}`,
		},
		{
			name:         "missing name",
			setupMocks:   func(m *MockRoomService) {},
			body:         `{}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"hostName required","kind":"validation"}`,
		},
		{
			name: "name rejected by manager",
			setupMocks: func(m *MockRoomService) {
				m.On("CreateRoom", "   ").Return("", "", &session.RejectError{Kind: session.KindValidation, Err: session.ErrInvalidName})
			},
			body:         `{"hostName":"   "}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid player name","kind":"validation"}`,
		},
		{
			name: "unexpected failure",
			setupMocks: func(m *MockRoomService) {
				m.On("CreateRoom", "Ann").Return("", "", errors.New("boom"))
			},
			body:         `{"hostName":"Ann"}`,
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"internal error","kind":"none"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rooms := new(MockRoomService)
			tc.setupMocks(rooms)

			res := do(newTestRouter(rooms), http.MethodPost, "/api/create-room", tc.body)

			assert.Equal(t, tc.expectedCode, res.Code)
			assert.JSONEq(t, tc.expectedBody, res.Body.String())
			rooms.AssertExpectations(t)
		})
	}
}

func TestGetRoomHandler(t *testing.T) {
	rooms := new(MockRoomService)
	rooms.On("Snapshot", "ABCD1234").Return(shared.GameState{RoomID: "ABCD1234", TotalRounds: 5, MaxStrikes: 6}, true)
	rooms.On("Snapshot", "NOPE").Return(shared.GameState{}, false)
	r := newTestRouter(rooms)

	res := do(r, http.MethodGet, "/api/rooms/ABCD1234", "")
	require.Equal(t, http.StatusOK, res.Code)
	var state shared.GameState
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &state))
	assert.Equal(t, "ABCD1234", state.RoomID)
	assert.Equal(t, 6, state.MaxStrikes)

	res = do(r, http.MethodGet, "/api/rooms/NOPE", "")
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.JSONEq(t, `{"error":"room not found","kind":"not_found"}`, res.Body.String())
}

func TestRoomQRHandler(t *testing.T) {
	rooms := new(MockRoomService)
	rooms.On("Snapshot", "ABCD1234").Return(shared.GameState{RoomID: "ABCD1234"}, true)
	rooms.On("Snapshot", "NOPE").Return(shared.GameState{}, false)
	r := newTestRouter(rooms)

	res := do(r, http.MethodGet, "/api/rooms/ABCD1234/qr", "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "image/png", res.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(res.Body.Bytes(), []byte("\x89PNG")))

	res = do(r, http.MethodGet, "/api/rooms/NOPE/qr", "")
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestJoinURL(t *testing.T) {
	assert.Equal(t, "https://play.example/room/ABCD1234", joinURL("https://play.example", "ABCD1234"))
}

func TestGetSettingsHandler(t *testing.T) {
	rooms := new(MockRoomService)
	g := config.DefaultGame()
	g.TurnDuration = 45 * time.Second
	rooms.On("Settings").Return(g)

	res := do(newTestRouter(rooms), http.MethodGet, "/api/config", "")

	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{
		"totalRounds": 5,
		"maxStrikes": 6,
		"turnSeconds": 45,
		"roundSummarySeconds": 3,
		"minWordLength": 3,
		"maxWordLength": 24,
		"maxNameLength": 32,
		"maxChatLength": 280
	}`, res.Body.String())
}

func TestHealthz(t *testing.T) {
	res := do(newTestRouter(new(MockRoomService)), http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"status":"ok","rooms":2}`, res.Body.String())
}

func TestCORSAllowsFrontendOrigin(t *testing.T) {
	r := newTestRouter(new(MockRoomService))

	req := httptest.NewRequest(http.MethodOptions, "/api/create-room", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)

	assert.Equal(t, "http://localhost:3000", res.Header().Get("Access-Control-Allow-Origin"))
}
