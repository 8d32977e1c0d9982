package game

import "time"

// Step advances the authoritative state by one tick. Order matters: clock,
// difficulty, ant movement and lane damage, vulture descent and damage,
// then spawning. Once GameOver flips, the rest of the tick is skipped and
// every later call is a no-op.
func Step(s *State, now time.Time) {
	if s.GameOver {
		return
	}

	s.GameTime += TickMs
	s.Tick++

	s.Difficulty.advance(now)

	s.moveAnts()
	if s.GameOver {
		return
	}

	s.moveVultures()
	if s.GameOver {
		return
	}

	if s.Tick%s.Difficulty.SpawnInterval(now) == 0 {
		SpawnAnt(s, SpawnAuto)
	}

	s.VultureSpawnCounter++
	if s.VultureSpawnCounter >= s.NextVultureSpawn {
		SpawnVultureGroup(s)
		s.VultureSpawnCounter = 0
		s.NextVultureSpawn = nextVultureSpawn(s)
	}
}

// moveAnts marches every ant along its lane. An ant crossing into its
// player's damage zone hurts that player and is removed; anyone typing it
// has their typing state cleared.
func (s *State) moveAnts() {
	speed := s.Difficulty.AntSpeed()

	var crossed []int
	for i, ant := range s.Ants {
		ant.X += ant.Direction * speed

		if (ant.TypeDir == SideLeft && ant.X > LeftDamageX) ||
			(ant.TypeDir == SideRight && ant.X < RightDamageX) {
			crossed = append(crossed, i)
		}
	}

	for i := len(crossed) - 1; i >= 0; i-- {
		idx := crossed[i]
		ant := s.Ants[idx]
		s.clearTypists(ant.ID)
		s.Ants = append(s.Ants[:idx], s.Ants[idx+1:]...)
		s.damagePlayer(ant.TypeDir)
		if s.GameOver {
			return
		}
	}
}

// moveVultures descends every vulture; one reaching the damage line hurts
// the player on its side and is removed.
func (s *State) moveVultures() {
	speed := s.Difficulty.VultureSpeed()

	var landed []int
	for i, v := range s.Vultures {
		v.Y += speed
		if v.Y > VultureDamageY {
			landed = append(landed, i)
		}
	}

	for i := len(landed) - 1; i >= 0; i-- {
		idx := landed[i]
		side := s.Vultures[idx].Side
		s.Vultures = append(s.Vultures[:idx], s.Vultures[idx+1:]...)
		s.damagePlayer(side)
		if s.GameOver {
			return
		}
	}
}

// nextVultureSpawn schedules the following vulture triple: quicker at
// higher levels, with some jitter, never below the floor.
func nextVultureSpawn(s *State) int {
	base := VultureSpawnBase - s.Difficulty.Level*VultureSpawnPerLevel
	jitter := s.rng.Intn(VultureSpawnJitter*2) - VultureSpawnJitter
	next := base + jitter
	if next < VultureSpawnMin {
		next = VultureSpawnMin
	}
	return next
}
