package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RoomCounter reports how many rooms are live.
type RoomCounter interface {
	Len() int
}

type RouterDeps struct {
	Rooms          RoomService
	Counter        RoomCounter
	WS             gin.HandlerFunc
	FrontendOrigin string
	PublicURL      string
	Log            zerolog.Logger
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(d.Log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{d.FrontendOrigin},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "rooms": d.Counter.Len()})
	})

	// WebSocket for live game events
	if d.WS != nil {
		r.GET("/ws", d.WS)
	}

	rooms := NewRoomHandler(d.Rooms, d.PublicURL, d.Log)
	cfg := NewConfigHandler(d.Rooms)

	api := r.Group("/api")
	{
		api.POST("/create-room", rooms.CreateRoomHandler)
		api.GET("/rooms/:code", rooms.GetRoomHandler)
		api.GET("/rooms/:code/qr", rooms.RoomQRHandler)
		api.GET("/config", cfg.GetSettingsHandler)
	}
	return r
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(start)).
			Msg("http")
	}
}
