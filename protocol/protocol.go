package protocol

import (
	"encoding/json"
)

// Message types carried in the envelope's "t" field.
const (
	// client -> server
	MsgCreateGame   = "createGame"
	MsgJoinGame     = "joinGame"
	MsgPlayerReady  = "playerReady"
	MsgKeyPress     = "keyPress"
	MsgClickVulture = "clickVulture"

	// server -> client
	MsgRoomCreated        = "roomCreated"
	MsgJoinResult         = "joinResult"
	MsgPlayerJoined       = "playerJoined"
	MsgReadyResult        = "readyResult"
	MsgPlayerReadyUpdate  = "playerReadyUpdate"
	MsgGameStarted        = "gameStarted"
	MsgGameStateUpdate    = "gameStateUpdate"
	MsgKeyPressResult     = "keyPressResult"
	MsgVultureClickResult = "vultureClickResult"
	MsgPlayerLeft         = "playerLeft"
	MsgGameOver           = "gameOver"
	MsgError              = "error"
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
