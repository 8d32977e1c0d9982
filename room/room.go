package room

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"fasthands/game"
	"fasthands/protocol"
)

type seat struct {
	conn  Conn
	side  game.Side
	ready bool
}

// Room is one live match: an actor owning its seats and, once started, the
// authoritative GameState. All access is serialized through Run's loop, so
// ticks and input events can never interleave mid-mutation.
type Room struct {
	Inbox   chan any
	Code    string
	OnClose func(code string) // called when the room should leave the registry

	seats   map[string]*seat
	started bool
	over    bool
	state   *game.State

	ticker *time.Ticker
	tickCh <-chan time.Time // nil until the match starts

	rng      *rand.Rand
	quit     chan struct{}
	stopOnce sync.Once

	// read by the manager's room listing without entering the loop
	numSeats  atomic.Int32
	isStarted atomic.Bool
}

func New(code string) *Room {
	return &Room{
		Inbox: make(chan any, 256),
		Code:  code,
		seats: make(map[string]*seat, 2),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		quit:  make(chan struct{}),
	}
}

// Stop ends the room's loop. Safe to call more than once and safe to call
// on a room that never ran.
func (r *Room) Stop() {
	r.stopOnce.Do(func() { close(r.quit) })
}

// Done is closed once the room is stopped; the network layer uses it to
// avoid posting into a dead inbox.
func (r *Room) Done() <-chan struct{} {
	return r.quit
}

// NumPlayers returns the current seat count.
func (r *Room) NumPlayers() int {
	return int(r.numSeats.Load())
}

// Started reports whether the match has begun.
func (r *Room) Started() bool {
	return r.isStarted.Load()
}

func (r *Room) Run() {
	defer r.stopTicker()

	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-r.tickCh:
			r.handleTick()
		}
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		r.handleJoin(c)
	case Ready:
		r.handleReady(c.PlayerID)
	case KeyPress:
		r.handleAction(c.PlayerID, protocol.MsgKeyPressResult, func(s *game.State) game.Result {
			return game.ResolveKeyPress(s, c.PlayerID, c.Key)
		})
	case ClickVulture:
		r.handleAction(c.PlayerID, protocol.MsgVultureClickResult, func(s *game.State) game.Result {
			return game.ResolveVultureClick(s, c.PlayerID, c.VultureID)
		})
	case Leave:
		r.handleLeave(c.PlayerID)
	case func(*game.State):
		// runs on the room goroutine between ticks; tests use this to
		// reach the state without racing the loop
		if r.state != nil {
			c(r.state)
		}
	}
}

func (r *Room) handleJoin(c Join) {
	reply := func(jr JoinReply) {
		if c.Reply != nil {
			c.Reply <- jr
		}
	}

	if r.started {
		reply(JoinReply{Err: ErrRoomStarted.Error()})
		return
	}
	if len(r.seats) >= 2 {
		reply(JoinReply{Err: ErrRoomFull.Error()})
		return
	}

	side := game.SideLeft
	if l := r.seatOnSide(game.SideLeft); l != nil {
		side = game.SideRight
	}
	r.seats[c.PlayerID] = &seat{conn: c.Conn, side: side}
	r.numSeats.Store(int32(len(r.seats)))

	r.broadcastExcept(c.PlayerID, protocol.MsgPlayerJoined, protocol.PlayerJoined{
		PlayerID: c.PlayerID,
		Position: string(side),
	})

	reply(JoinReply{Success: true, Position: string(side), Players: r.seatInfos()})
}

func (r *Room) handleReady(playerID string) {
	st, ok := r.seats[playerID]
	if !ok {
		return
	}
	if r.started {
		r.sendTo(playerID, protocol.MsgReadyResult, protocol.ReadyResult{Success: false})
		return
	}
	st.ready = !st.ready

	r.sendTo(playerID, protocol.MsgReadyResult, protocol.ReadyResult{Success: true, Ready: st.ready})
	r.broadcast(protocol.MsgPlayerReadyUpdate, protocol.PlayerReadyUpdate{
		PlayerID: playerID,
		Ready:    st.ready,
	})

	if len(r.seats) != 2 {
		return
	}
	for _, s := range r.seats {
		if !s.ready {
			return
		}
	}
	r.startGame()
}

func (r *Room) startGame() {
	sides := make(map[string]game.Side, len(r.seats))
	for id, s := range r.seats {
		sides[id] = s.side
	}
	r.state = game.New(r.Code, sides, time.Now(), r.rng)
	r.started = true
	r.isStarted.Store(true)

	r.broadcast(protocol.MsgGameStarted, protocol.GameStarted{Players: r.playerInfos()})

	r.ticker = time.NewTicker(game.TickPeriod)
	r.tickCh = r.ticker.C

	log.Info().Str("room", r.Code).Msg("match started")
}

func (r *Room) handleTick() {
	if !r.started || r.over {
		return
	}

	game.Step(r.state, time.Now())
	r.broadcast(protocol.MsgGameStateUpdate, r.buildSnapshot())

	if r.state.GameOver {
		r.finishGame()
	}
}

// finishGame announces the terminal result exactly once and stops the tick
// scheduler. The room itself stays registered until the players disconnect.
func (r *Room) finishGame() {
	r.over = true
	r.stopTicker()

	winner := ""
	for id := range r.seats {
		if id != r.state.LoserID {
			winner = id
		}
	}
	r.broadcast(protocol.MsgGameOver, protocol.GameOver{
		WinnerID: winner,
		LoserID:  r.state.LoserID,
	})

	log.Info().Str("room", r.Code).Str("loser", r.state.LoserID).Msg("match over")
}

func (r *Room) handleAction(playerID, msgType string, resolve func(*game.State) game.Result) {
	if !r.started || r.over {
		return
	}
	if _, seated := r.seats[playerID]; !seated {
		return
	}

	res := resolve(r.state)
	if res == nil {
		return
	}
	r.broadcast(msgType, protocol.ActionResult{
		PlayerID: playerID,
		Kind:     res.Kind(),
		Result:   res,
	})
}

func (r *Room) handleLeave(playerID string) {
	if _, ok := r.seats[playerID]; !ok {
		return
	}
	delete(r.seats, playerID)
	r.numSeats.Store(int32(len(r.seats)))

	r.broadcast(protocol.MsgPlayerLeft, protocol.PlayerLeft{PlayerID: playerID})

	// a started match cannot continue one-sided: tear the room down; a
	// pending room survives until its last player gives up on it
	if r.started || len(r.seats) == 0 {
		r.stopTicker()
		r.state = nil
		if r.OnClose != nil {
			r.OnClose(r.Code)
		}
	}
}

func (r *Room) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
		r.ticker = nil
		r.tickCh = nil
	}
}

func (r *Room) seatOnSide(side game.Side) *seat {
	for _, s := range r.seats {
		if s.side == side {
			return s
		}
	}
	return nil
}

func (r *Room) seatInfos() []SeatInfo {
	infos := make([]SeatInfo, 0, len(r.seats))
	for id, s := range r.seats {
		infos = append(infos, SeatInfo{PlayerID: id, Position: string(s.side), Ready: s.ready})
	}
	return infos
}

func (r *Room) playerInfos() []protocol.PlayerInfo {
	infos := make([]protocol.PlayerInfo, 0, len(r.seats))
	for id, s := range r.seats {
		infos = append(infos, protocol.PlayerInfo{ID: id, Position: string(s.side), Ready: s.ready})
	}
	return infos
}

func (r *Room) sendTo(playerID, msgType string, payload any) {
	s, ok := r.seats[playerID]
	if !ok {
		return
	}
	b, err := protocol.Encode(msgType, payload)
	if err != nil {
		log.Error().Err(err).Str("room", r.Code).Str("type", msgType).Msg("encode reply")
		return
	}
	_ = s.conn.Send(b)
}

func (r *Room) broadcast(msgType string, payload any) {
	r.broadcastExcept("", msgType, payload)
}

func (r *Room) broadcastExcept(skipID, msgType string, payload any) {
	b, err := protocol.Encode(msgType, payload)
	if err != nil {
		log.Error().Err(err).Str("room", r.Code).Str("type", msgType).Msg("encode broadcast")
		return
	}

	var failed []string
	for id, s := range r.seats {
		if id == skipID {
			continue
		}
		if err := s.conn.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		log.Warn().Str("room", r.Code).Str("player", id).Msg("dropping unreachable player")
		if s, ok := r.seats[id]; ok {
			_ = s.conn.Close()
			r.handleLeave(id)
		}
	}
}

func (r *Room) buildSnapshot() protocol.GameState {
	s := r.state
	snap := protocol.GameState{
		RoomID:   s.RoomID,
		Tick:     s.Tick,
		GameTime: s.GameTime,
		Level:    s.Difficulty.Level,
		GameOver: s.GameOver,
		Players:  make([]protocol.PlayerSnapshot, 0, len(s.Players)),
		Ants:     make([]protocol.AntSnapshot, 0, len(s.Ants)),
		Vultures: make([]protocol.VultureSnapshot, 0, len(s.Vultures)),
	}
	for id, p := range s.Players {
		snap.Players = append(snap.Players, protocol.PlayerSnapshot{
			ID:        id,
			Position:  string(p.Side),
			Health:    p.Health,
			Score:     p.Score,
			Accuracy:  p.Accuracy.Percent(),
			AntID:     p.Typing.ActiveAntID,
			Typed:     p.Typing.Current,
			SeqNumber: p.SeqNumber,
		})
	}
	for _, a := range s.Ants {
		snap.Ants = append(snap.Ants, protocol.AntSnapshot{
			ID:        a.ID,
			X:         a.X,
			Y:         a.Y,
			Word:      a.Word,
			Remaining: a.Remaining,
			Active:    a.Active,
			TypeDir:   string(a.TypeDir),
			Direction: a.Direction,
		})
	}
	for _, v := range s.Vultures {
		snap.Vultures = append(snap.Vultures, protocol.VultureSnapshot{
			ID:      v.ID,
			X:       v.X,
			Y:       v.Y,
			Number:  v.Number,
			Clicked: v.Clicked,
			Group:   v.Group,
			Side:    string(v.Side),
		})
	}
	return snap
}
