package room

import (
	"crypto/rand"
	"math/big"
	"sync"

	"github.com/rs/zerolog/log"
)

// RoomInfo is returned by the API for the room list.
type RoomInfo struct {
	Code    string `json:"code"`
	Players int    `json:"players"`
	Started bool   `json:"started"`
}

// Manager is the room registry: it owns the code -> room mapping, creates
// rooms with fresh collision-free codes, and drops them when they close.
type Manager struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewManager() *Manager {
	return &Manager{rooms: make(map[string]*Room)}
}

// ambiguous characters (0/O, 1/I) are left out of room codes
const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const codeLen = 6

// CreateRoom generates an unused code, registers a room under it, starts
// its loop, and returns it.
func (m *Manager) CreateRoom() *Room {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		code := generateCode(codeLen)
		if _, exists := m.rooms[code]; exists {
			continue
		}
		r := New(code)
		r.OnClose = func(c string) {
			m.removeRoom(c)
		}
		m.rooms[code] = r
		go r.Run()
		log.Info().Str("room", code).Msg("room created")
		return r
	}
}

// Get looks up a room by code.
func (m *Manager) Get(code string) (*Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[code]
	return r, ok
}

func (m *Manager) removeRoom(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		r.Stop()
		delete(m.rooms, code)
		log.Info().Str("room", code).Msg("room removed")
	}
}

// ListRooms returns all active rooms with code and player count.
func (m *Manager) ListRooms() []RoomInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RoomInfo, 0, len(m.rooms))
	for code, r := range m.rooms {
		out = append(out, RoomInfo{Code: code, Players: r.NumPlayers(), Started: r.Started()})
	}
	return out
}

func generateCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeChars)))
	for i := range b {
		idx, _ := rand.Int(rand.Reader, max)
		b[i] = codeChars[idx.Int64()]
	}
	return string(b)
}
