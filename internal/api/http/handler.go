package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/skip2/go-qrcode"

	"hangman-party/internal/config"
	"hangman-party/internal/session"
	"hangman-party/internal/shared"
)

const qrSize = 320

// RoomService is the part of the session manager the HTTP surface uses.
type RoomService interface {
	CreateRoom(hostName string) (code, hostID string, err error)
	Snapshot(code string) (shared.GameState, bool)
	Settings() config.Game
}

type RoomHandler struct {
	rooms     RoomService
	publicURL string
	log       zerolog.Logger
}

func NewRoomHandler(rooms RoomService, publicURL string, log zerolog.Logger) *RoomHandler {
	return &RoomHandler{rooms: rooms, publicURL: publicURL, log: log}
}

// CreateRoomHandler
// @Summary Create new room
// @Description Create a room hosted by the named player
// @Tags Room
// @Accept json
// @Produce json
// @Param request body CreateRoomRequest true "Host info"
// @Success 200 {object} CreateRoomResponse
// @Router /api/create-room [post]
func (h *RoomHandler) CreateRoomHandler(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "hostName required", Kind: session.KindValidation.String()})
		return
	}

	code, hostID, err := h.rooms.CreateRoom(req.HostName)
	if err != nil {
		writeError(c, err)
		return
	}
	h.log.Debug().Str("room", code).Str("remote", c.ClientIP()).Msg("create-room")

	state, _ := h.rooms.Snapshot(code)
	name := req.HostName
	if len(state.Players) > 0 {
		name = state.Players[0].Name
	}
	c.JSON(http.StatusOK, CreateRoomResponse{RoomID: code, HostID: hostID, HostName: name})
}

// GetRoomHandler
// @Summary Get room state
// @Tags Room
// @Produce json
// @Param code path string true "Room Code"
// @Success 200 {object} shared.GameState
// @Router /api/rooms/{code} [get]
func (h *RoomHandler) GetRoomHandler(c *gin.Context) {
	state, ok := h.rooms.Snapshot(c.Param("code"))
	if !ok {
		writeError(c, &session.RejectError{Kind: session.KindNotFound, Err: session.ErrRoomNotFound})
		return
	}
	c.JSON(http.StatusOK, state)
}

// RoomQRHandler renders the room's join link as a PNG QR code.
// @Summary Room join QR code
// @Tags Room
// @Produce png
// @Param code path string true "Room Code"
// @Router /api/rooms/{code}/qr [get]
func (h *RoomHandler) RoomQRHandler(c *gin.Context) {
	code := c.Param("code")
	if _, ok := h.rooms.Snapshot(code); !ok {
		writeError(c, &session.RejectError{Kind: session.KindNotFound, Err: session.ErrRoomNotFound})
		return
	}

	png, err := qrcode.Encode(joinURL(h.publicURL, code), qrcode.Medium, qrSize)
	if err != nil {
		h.log.Error().Err(err).Str("room", code).Msg("qr generation failed")
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "qr generation failed"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func joinURL(base, code string) string {
	return base + "/room/" + code
}

// writeError maps a rejection to a status code.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch session.KindOf(err) {
	case session.KindNotFound:
		status = http.StatusNotFound
	case session.KindValidation:
		status = http.StatusBadRequest
	case session.KindAuthorization:
		status = http.StatusForbidden
	case session.KindStateConflict:
		status = http.StatusConflict
	}

	msg := err.Error()
	var re *session.RejectError
	if !errors.As(err, &re) {
		msg = "internal error"
	}
	c.JSON(status, errorResponse{Error: msg, Kind: session.KindOf(err).String()})
}
