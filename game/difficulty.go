package game

import "time"

// Difficulty is a small time-driven state machine: five levels, terminal at
// the last, each lasting a fixed wall-clock duration. The level feeds the
// spawn interval and movement speeds.
type Difficulty struct {
	Level      int
	LevelStart time.Time
}

func newDifficulty(now time.Time) Difficulty {
	return Difficulty{Level: 1, LevelStart: now}
}

func (d *Difficulty) advance(now time.Time) {
	if d.Level >= MaxLevel {
		return
	}
	if now.Sub(d.LevelStart).Milliseconds() >= LevelDurationsMs[d.Level-1] {
		d.Level++
		d.LevelStart = now
	}
}

// SpawnInterval is the current ant spawn interval in ticks. Within a level
// it shrinks gradually with time spent in the level, floored at
// max(15, base-10).
func (d Difficulty) SpawnInterval(now time.Time) int {
	base := BaseSpawnRates[d.Level-1]
	ticksInLevel := float64(now.Sub(d.LevelStart).Milliseconds()) / 10
	minimum := base - SpawnFloorDelta
	if minimum < MinSpawnFloor {
		minimum = MinSpawnFloor
	}
	rate := base - int(ticksInLevel*SpawnScale)
	if rate < minimum {
		rate = minimum
	}
	return rate
}

// AntSpeed is the per-tick ant movement distance at the current level.
func (d Difficulty) AntSpeed() float64 {
	return AntBaseSpeed * (1 + float64(d.Level-1)*AntSpeedPerLevel)
}

// VultureSpeed is the per-tick vulture descent distance at the current level.
func (d Difficulty) VultureSpeed() float64 {
	return VultureBaseSpeed * (1 + float64(d.Level-1)*VultureSpeedPerLevel)
}
