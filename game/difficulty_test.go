package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyTransitionsAfterLevelDuration(t *testing.T) {
	now := time.Now()
	d := Difficulty{Level: 1, LevelStart: now.Add(-21 * time.Second)}

	d.advance(now)

	assert.Equal(t, 2, d.Level)
	assert.Equal(t, now, d.LevelStart)
}

func TestDifficultyHoldsBeforeThreshold(t *testing.T) {
	now := time.Now()
	d := Difficulty{Level: 1, LevelStart: now.Add(-19 * time.Second)}

	d.advance(now)

	assert.Equal(t, 1, d.Level)
}

func TestDifficultyTerminalAtMaxLevel(t *testing.T) {
	now := time.Now()
	d := Difficulty{Level: MaxLevel, LevelStart: now.Add(-time.Hour)}

	d.advance(now)

	assert.Equal(t, MaxLevel, d.Level)
}

func TestSpawnIntervalStartsAtFlooredBaseRate(t *testing.T) {
	now := time.Now()
	for level := 1; level <= MaxLevel; level++ {
		d := Difficulty{Level: level, LevelStart: now}

		// the floor max(15, base-10) bites at the fast levels: base rates
		// 10 and 5 are already below it at level start
		want := BaseSpawnRates[level-1]
		if floor := max(MinSpawnFloor, want-SpawnFloorDelta); want < floor {
			want = floor
		}
		assert.Equal(t, want, d.SpawnInterval(now), "level %d", level)
	}
}

func TestSpawnIntervalRampsDownToFloor(t *testing.T) {
	now := time.Now()
	d := Difficulty{Level: 1, LevelStart: now.Add(-10 * time.Minute)}

	// 600s in level = 60000 ten-ms slices, 60000*0.0002 = 12 below base,
	// floored at base-10
	assert.Equal(t, 90, d.SpawnInterval(now))
}

func TestMovementSpeedsScaleWithLevel(t *testing.T) {
	l1 := Difficulty{Level: 1}
	l5 := Difficulty{Level: 5}

	assert.InDelta(t, 1.25, l1.AntSpeed(), 1e-9)
	assert.InDelta(t, 2.25, l5.AntSpeed(), 1e-9)
	assert.InDelta(t, 0.03, l1.VultureSpeed(), 1e-9)
	assert.InDelta(t, 0.042, l5.VultureSpeed(), 1e-9)
}

func TestAccuracyPercent(t *testing.T) {
	assert.Equal(t, 100, Accuracy{}.Percent())
	assert.Equal(t, 75, Accuracy{Correct: 3, Total: 4}.Percent())
	assert.Equal(t, 67, Accuracy{Correct: 2, Total: 3}.Percent())
}
