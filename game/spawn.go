package game

import "math/rand"

// SpawnSide forces or defers the spawn origin of a new ant.
type SpawnSide int

const (
	SpawnAuto SpawnSide = iota // alternate by ant-id parity
	SpawnLeft
	SpawnRight
)

// SpawnAnt creates a new ant and appends it to the state. Side assignment:
// a left-spawned ant starts at x=0, marches right, and is typed by (and
// eventually damages) the left player.
func SpawnAnt(s *State, side SpawnSide) *Ant {
	var fromLeft bool
	switch side {
	case SpawnLeft:
		fromLeft = true
	case SpawnRight:
		fromLeft = false
	default:
		fromLeft = s.AntIDs%2 == 0
	}

	word := PickWord(s.rng, fromLeft)

	ant := &Ant{
		ID:        s.AntIDs,
		Word:      word,
		Remaining: word,
		TypeDir:   SideRight,
		X:         MapWidth,
		Direction: -1,
	}
	if fromLeft {
		ant.TypeDir = SideLeft
		ant.X = 0
		ant.Direction = 1
	}
	s.AntIDs++
	s.Ants = append(s.Ants, ant)
	return ant
}

// SpawnVultureGroup creates a triple of vultures with consecutive numbers
// starting at 1, 4 or 7, scattered across the screen so the left-to-right
// order rarely matches the numeric order. The group counter is bumped once
// per call.
func SpawnVultureGroup(s *State) []*Vulture {
	start := s.rng.Intn(3)*3 + 1
	positions := vulturePositions(s.rng)

	spawned := make([]*Vulture, 0, 3)
	for i := 0; i < 3; i++ {
		v := &Vulture{
			ID:     s.VultureIDs,
			X:      positions[i],
			Y:      VultureSpawnY,
			Number: start + i,
			Group:  s.Groups,
			Side:   SideRight,
		}
		if v.X < MapMidX {
			v.Side = SideLeft
		}
		s.VultureIDs++
		s.Vultures = append(s.Vultures, v)
		spawned = append(spawned, v)
	}
	s.Groups++
	return spawned
}

// vulturePositions partitions the screen into three sections with margins,
// picks one x per section, then shuffles.
func vulturePositions(rng *rand.Rand) [3]float64 {
	var positions [3]float64
	usable := MapWidth - VultureWidth
	section := usable / 3

	for i := 0; i < 3; i++ {
		minX := float64(i)*section + SectionMargin
		maxX := float64(i+1)*section - SectionMargin
		if minX < 0 {
			minX = 0
		}
		if maxX > usable {
			maxX = usable
		}
		if minX < maxX {
			positions[i] = minX + rng.Float64()*(maxX-minX)
		} else {
			positions[i] = usable / 4 * float64(i+1)
		}
	}

	for i := len(positions) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		positions[i], positions[j] = positions[j], positions[i]
	}
	return positions
}
