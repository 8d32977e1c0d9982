package room

import "errors"

// Join failures, surfaced to clients verbatim in joinResult payloads.
var (
	ErrRoomNotFound = errors.New("Game not found")
	ErrRoomFull     = errors.New("Game is full")
	ErrRoomStarted  = errors.New("Game already started")
)
