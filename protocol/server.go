package protocol

// Server-to-client payloads: direct replies, room broadcasts, and the
// per-tick full state snapshot.

type RoomCreated struct {
	RoomID string `json:"roomId"`
}

type PlayerInfo struct {
	ID       string `json:"id"`
	Position string `json:"position"`
	Ready    bool   `json:"ready"`
}

type JoinResult struct {
	Success  bool         `json:"success"`
	Position string       `json:"position,omitempty"`
	Players  []PlayerInfo `json:"players,omitempty"`
	Error    string       `json:"error,omitempty"`
}

type PlayerJoined struct {
	PlayerID string `json:"playerId"`
	Position string `json:"position"`
}

// ReadyResult is the direct ack for a playerReady request; the room-wide
// state lands separately in playerReadyUpdate.
type ReadyResult struct {
	Success bool `json:"success"`
	Ready   bool `json:"ready"`
}

type PlayerReadyUpdate struct {
	PlayerID string `json:"playerId"`
	Ready    bool   `json:"ready"`
}

type GameStarted struct {
	Players []PlayerInfo `json:"players"`
}

type PlayerLeft struct {
	PlayerID string `json:"playerId"`
}

type GameOver struct {
	WinnerID string `json:"winnerId"`
	LoserID  string `json:"loserId"`
}

type ErrorMsg struct {
	Error string `json:"error"`
}

// ActionResult wraps an input-resolution result for broadcast, tagged with
// who acted and which variant the payload is.
type ActionResult struct {
	PlayerID string `json:"playerId"`
	Kind     string `json:"kind"`
	Result   any    `json:"result"`
}

// GameState is the authoritative snapshot streamed every tick.

type GameState struct {
	RoomID   string            `json:"roomId"`
	Tick     int               `json:"tick"`
	GameTime int64             `json:"gameTime"`
	Level    int               `json:"level"`
	GameOver bool              `json:"isGameOver"`
	Players  []PlayerSnapshot  `json:"players"`
	Ants     []AntSnapshot     `json:"ants"`
	Vultures []VultureSnapshot `json:"vultures"`
}

type PlayerSnapshot struct {
	ID        string `json:"id"`
	Position  string `json:"position"`
	Health    int    `json:"health"`
	Score     int    `json:"score"`
	Accuracy  int    `json:"accuracy"`
	AntID     int    `json:"activeAntId"`
	Typed     string `json:"currentWord"`
	SeqNumber int    `json:"vultureSequence"`
}

type AntSnapshot struct {
	ID        int     `json:"id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Word      string  `json:"word"`
	Remaining string  `json:"remainingWord"`
	Active    bool    `json:"isActive"`
	TypeDir   string  `json:"typeDirection"`
	Direction float64 `json:"direction"`
}

type VultureSnapshot struct {
	ID      int     `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Number  int     `json:"number"`
	Clicked bool    `json:"clicked"`
	Group   int     `json:"group"`
	Side    string  `json:"side"`
}
