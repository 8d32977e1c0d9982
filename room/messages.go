package room

// Conn is the write half of a player's connection as the room sees it. The
// network layer's implementation must not block: a stuck peer gets an error
// back, never a stalled room loop.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Commands posted to a room's Inbox. Every mutation of room or game state
// goes through here, so the room goroutine is the only writer.

// Join seats a player. Reply receives the outcome synchronously.
type Join struct {
	PlayerID string
	Conn     Conn
	Reply    chan<- JoinReply
}

type JoinReply struct {
	Success  bool
	Position string
	Players  []SeatInfo
	Err      string
}

type SeatInfo struct {
	PlayerID string
	Position string
	Ready    bool
}

// Ready toggles the player's ready flag; both ready starts the match.
type Ready struct {
	PlayerID string
}

// KeyPress routes one keystroke into input resolution.
type KeyPress struct {
	PlayerID string
	Key      string
}

// ClickVulture routes one pointer click into input resolution.
type ClickVulture struct {
	PlayerID  string
	VultureID int
}

// Leave is issued on disconnect.
type Leave struct {
	PlayerID string
}
