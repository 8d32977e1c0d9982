package game

import "time"

const (
	TickPeriod = 50 * time.Millisecond
	TickMs     = 50

	MapWidth       = 600.0
	MapMidX        = 300.0
	LeftDamageX    = 250.0 // left-lane ant past this hits the left player
	RightDamageX   = 350.0
	VultureSpawnY  = -30.0 // vultures start above the screen
	VultureDamageY = 380.0
	VultureWidth   = 30.0
	SectionMargin  = 20.0
	LeftPlayerX    = 150.0 // approximate player positions, used for tie-breaks
	RightPlayerX   = 450.0

	InitialHealth = 15

	AntBaseSpeed         = 1.25 // units per tick at level 1
	AntSpeedPerLevel     = 0.2
	VultureBaseSpeed     = 0.03
	VultureSpeedPerLevel = 0.1

	WordStartPoints    = 5
	KeystrokePoints    = 1
	MinCompletionBonus = 10
	CompletionPerChar  = 2
	VultureClickPoints = 20
	SequenceBonus      = 30
	WrongOrderPenalty  = 10

	PressureKey  = "1" // spend score to spawn an ant in the opponent's lane
	PressureCost = 100
	EraseKey     = "Backspace"

	MaxLevel        = 5
	SpawnScale      = 0.0002 // spawn interval ramp within a level, per 10ms slice
	MinSpawnFloor   = 15
	SpawnFloorDelta = 10

	FirstVultureSpawnTicks = 1500
	VultureSpawnBase       = 2000
	VultureSpawnPerLevel   = 200
	VultureSpawnJitter     = 250
	VultureSpawnMin        = 800
)

// Per-level tables, indexed by level-1.
var (
	LevelDurationsMs = [MaxLevel]int64{20000, 50000, 100000, 290000, 80000}
	BaseSpawnRates   = [MaxLevel]int{100, 50, 25, 10, 5}
)
