package network

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"fasthands/protocol"
	"fasthands/room"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 25 * time.Second
	maxMessageSize = 4096
	sendBuffer     = 256

	// a human types well under this; anything faster is a misbehaving client
	msgsPerSecond = 100
	msgBurst      = 200
)

// Client is one websocket session: a read pump feeding room commands and a
// buffered write pump draining broadcasts. It implements room.Conn.
type Client struct {
	id      string
	conn    *websocket.Conn
	send    chan []byte
	manager *room.Manager
	limiter *rate.Limiter

	// the room this session is seated in, nil before create/join; only
	// touched from the read pump
	room *room.Room
}

func newClient(m *room.Manager, conn *websocket.Conn) *Client {
	return &Client{
		id:      uuid.NewString(),
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		manager: m,
		limiter: rate.NewLimiter(rate.Limit(msgsPerSecond), msgBurst),
	}
}

// Send enqueues a frame for the write pump. It never blocks: a full buffer
// means the peer is not keeping up and the room will drop the seat.
func (c *Client) Send(b []byte) error {
	select {
	case c.send <- b:
		return nil
	default:
		return errors.New("send buffer full")
	}
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) readPump() {
	defer func() {
		c.post(room.Leave{PlayerID: c.id})
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("client", c.id).Msg("read")
			}
			return
		}

		c.handleFrame(msg)
	}
}

// handleFrame applies the read budget and routes one raw frame. Frames over
// budget are dropped; the connection stays up.
func (c *Client) handleFrame(msg []byte) {
	if !c.limiter.Allow() {
		return
	}

	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		log.Debug().Err(err).Str("client", c.id).Msg("bad envelope")
		return
	}
	c.dispatch(env)
}

func (c *Client) dispatch(env protocol.Envelope) {
	switch env.T {
	case protocol.MsgCreateGame:
		c.handleCreate()
	case protocol.MsgJoinGame:
		payload, err := protocol.DecodePayload[protocol.JoinGame](env)
		if err != nil {
			return
		}
		c.handleJoin(payload.RoomID)
	case protocol.MsgPlayerReady:
		c.post(room.Ready{PlayerID: c.id})
	case protocol.MsgKeyPress:
		payload, err := protocol.DecodePayload[protocol.KeyPress](env)
		if err != nil {
			return
		}
		c.post(room.KeyPress{PlayerID: c.id, Key: payload.Key})
	case protocol.MsgClickVulture:
		payload, err := protocol.DecodePayload[protocol.ClickVulture](env)
		if err != nil {
			return
		}
		c.post(room.ClickVulture{PlayerID: c.id, VultureID: payload.VultureID})
	default:
		log.Debug().Str("client", c.id).Str("type", env.T).Msg("unknown message type")
	}
}

// clearDeadRoom drops the room reference once the room has shut down, for
// example after the opponent abandoned a started match. Without this the
// survivor would stay "in" the dead room and be refused a new game.
func (c *Client) clearDeadRoom() {
	if c.room == nil {
		return
	}
	select {
	case <-c.room.Done():
		c.room = nil
	default:
	}
}

func (c *Client) handleCreate() {
	c.clearDeadRoom()
	if c.room != nil {
		c.reply(protocol.MsgError, protocol.ErrorMsg{Error: "Already in a game"})
		return
	}
	r := c.manager.CreateRoom()
	if jr := c.joinRoom(r); !jr.Success {
		c.reply(protocol.MsgError, protocol.ErrorMsg{Error: jr.Err})
		return
	}
	c.room = r
	c.reply(protocol.MsgRoomCreated, protocol.RoomCreated{RoomID: r.Code})
}

func (c *Client) handleJoin(roomID string) {
	c.clearDeadRoom()
	if c.room != nil {
		c.reply(protocol.MsgJoinResult, protocol.JoinResult{Success: false, Error: "Already in a game"})
		return
	}
	r, ok := c.manager.Get(roomID)
	if !ok {
		c.reply(protocol.MsgJoinResult, protocol.JoinResult{Success: false, Error: room.ErrRoomNotFound.Error()})
		return
	}

	jr := c.joinRoom(r)
	if !jr.Success {
		c.reply(protocol.MsgJoinResult, protocol.JoinResult{Success: false, Error: jr.Err})
		return
	}
	c.room = r

	players := make([]protocol.PlayerInfo, 0, len(jr.Players))
	for _, s := range jr.Players {
		players = append(players, protocol.PlayerInfo{ID: s.PlayerID, Position: s.Position, Ready: s.Ready})
	}
	c.reply(protocol.MsgJoinResult, protocol.JoinResult{
		Success:  true,
		Position: jr.Position,
		Players:  players,
	})
}

func (c *Client) joinRoom(r *room.Room) room.JoinReply {
	reply := make(chan room.JoinReply, 1)
	select {
	case r.Inbox <- room.Join{PlayerID: c.id, Conn: c, Reply: reply}:
	case <-r.Done():
		return room.JoinReply{Err: room.ErrRoomNotFound.Error()}
	}
	select {
	case jr := <-reply:
		return jr
	case <-r.Done():
		return room.JoinReply{Err: room.ErrRoomNotFound.Error()}
	}
}

// post forwards a command to the client's room, dropping it if the client
// is roomless or the room has already shut down. A dead room's buffered
// inbox still accepts sends, so shutdown is checked before racing the two.
func (c *Client) post(cmd any) {
	c.clearDeadRoom()
	r := c.room
	if r == nil {
		return
	}
	select {
	case r.Inbox <- cmd:
	case <-r.Done():
		c.room = nil
	}
}

func (c *Client) reply(msgType string, payload any) {
	b, err := protocol.Encode(msgType, payload)
	if err != nil {
		log.Error().Err(err).Str("type", msgType).Msg("encode reply")
		return
	}
	_ = c.Send(b)
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case b := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
