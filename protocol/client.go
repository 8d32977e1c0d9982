package protocol

// Payloads coming in from clients. Room codes ride along on every message
// after creation; the server never trusts them beyond a registry lookup.

type CreateGame struct{}

type JoinGame struct {
	RoomID string `json:"roomId"`
}

type PlayerReady struct {
	RoomID string `json:"roomId"`
}

type KeyPress struct {
	RoomID string `json:"roomId"`
	Key    string `json:"key"`
}

type ClickVulture struct {
	RoomID    string `json:"roomId"`
	VultureID int    `json:"vultureId"`
}
