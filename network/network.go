package network

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"fasthands/room"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewRouter wires the HTTP surface: the websocket endpoint plus a small
// read-only API for the room list.
func NewRouter(m *room.Manager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	r.GET("/rooms", func(c *gin.Context) {
		c.JSON(http.StatusOK, m.ListRooms())
	})

	r.GET("/ws", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Error().Err(err).Str("ip", c.ClientIP()).Msg("ws upgrade failed")
			return
		}

		client := newClient(m, conn)
		log.Info().Str("client", client.id).Str("ip", c.ClientIP()).Msg("client connected")

		go client.writePump()
		client.readPump()

		log.Info().Str("client", client.id).Msg("client disconnected")
	})

	return r
}
