package game

import (
	"math"
	"math/rand"
	"time"
)

// Authoritative game state. One State per live room, owned
// by that room's goroutine; nothing in here is safe for concurrent use.

type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// NoActiveAnt marks a player who is not currently typing anything.
const NoActiveAnt = -1

// NoSequence marks a player with no in-progress vulture sequence.
const NoSequence = -1

type State struct {
	RoomID  string
	Players map[string]*Player

	Ants     []*Ant
	Vultures []*Vulture

	GameTime   int64 // elapsed simulated ms
	Tick       int
	AntIDs     int // next ant id
	VultureIDs int
	Groups     int // vulture group counter, bumped once per spawned triple

	Difficulty Difficulty

	GameOver bool
	LoserID  string

	StartTime time.Time

	// vulture spawn schedule, counted in ticks
	VultureSpawnCounter int
	NextVultureSpawn    int

	rng *rand.Rand
}

type Player struct {
	ID       string
	Side     Side
	Health   int
	Score    int
	Ready    bool
	Typing   Typing
	Accuracy Accuracy

	// in-progress vulture sequence; weak reference by (number, group)
	SeqNumber int
	SeqGroup  int
}

// Typing tracks the word a player is currently working through. ActiveAntID
// is a weak reference: the ant may be removed by the tick loop at any time,
// so it must be re-resolved on every read.
type Typing struct {
	ActiveAntID int
	Current     string
}

type Accuracy struct {
	Correct int
	Total   int
}

// Percent reports rounded keystroke accuracy, 100 before any input.
func (a Accuracy) Percent() int {
	if a.Total == 0 {
		return 100
	}
	return int(math.Round(float64(a.Correct) / float64(a.Total) * 100))
}

// New builds the authoritative state for a freshly started room. sides maps
// player id to the seat the coordinator assigned. The rng is owned by the
// caller and must only be used from the room's goroutine.
func New(roomID string, sides map[string]Side, now time.Time, rng *rand.Rand) *State {
	s := &State{
		RoomID:           roomID,
		Players:          make(map[string]*Player, len(sides)),
		Difficulty:       newDifficulty(now),
		StartTime:        now,
		NextVultureSpawn: FirstVultureSpawnTicks,
		rng:              rng,
	}
	for id, side := range sides {
		s.Players[id] = &Player{
			ID:        id,
			Side:      side,
			Health:    InitialHealth,
			Ready:     true,
			Typing:    Typing{ActiveAntID: NoActiveAnt},
			SeqNumber: NoSequence,
		}
	}
	return s
}

// PlayerOnSide returns the player seated on the given side, or nil.
func (s *State) PlayerOnSide(side Side) *Player {
	for _, p := range s.Players {
		if p.Side == side {
			return p
		}
	}
	return nil
}

// FindAnt resolves an ant id, nil if it no longer exists.
func (s *State) FindAnt(id int) *Ant {
	for _, a := range s.Ants {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// FindVulture resolves a vulture id, nil if it no longer exists.
func (s *State) FindVulture(id int) *Vulture {
	for _, v := range s.Vultures {
		if v.ID == id {
			return v
		}
	}
	return nil
}

func (s *State) removeAnt(id int) {
	for i, a := range s.Ants {
		if a.ID == id {
			s.Ants = append(s.Ants[:i], s.Ants[i+1:]...)
			return
		}
	}
}

// clearTypists resets the typing state of any player working on the given
// ant. Called whenever an ant is removed out from under a player.
func (s *State) clearTypists(antID int) {
	for _, p := range s.Players {
		if p.Typing.ActiveAntID == antID {
			p.Typing = Typing{ActiveAntID: NoActiveAnt}
		}
	}
}

// damagePlayer applies one point of damage to the player on side. Health is
// clamped at zero; the first player to hit zero loses and flips GameOver.
func (s *State) damagePlayer(side Side) {
	p := s.PlayerOnSide(side)
	if p == nil || s.GameOver {
		return
	}
	p.Health--
	if p.Health <= 0 {
		p.Health = 0
		s.GameOver = true
		s.LoserID = p.ID
	}
}
