package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hangman-party/internal/config"
)

// SettingsSource exposes the rules every room is created with.
type SettingsSource interface {
	Settings() config.Game
}

type ConfigHandler struct {
	src SettingsSource
}

func NewConfigHandler(src SettingsSource) *ConfigHandler {
	return &ConfigHandler{src: src}
}

// GetSettingsHandler returns the game settings
// @Summary Get game settings
// @Description Returns rounds, strikes, turn length and input limits
// @Tags Config
// @Produce json
// @Success 200 {object} SettingsResponse
// @Router /api/config [get]
func (h *ConfigHandler) GetSettingsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, newSettingsResponse(h.src.Settings()))
}
