package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func addAnt(s *State, id int, word string, side Side, x float64) *Ant {
	dir := -1.0
	if side == SideLeft {
		dir = 1
	}
	a := &Ant{ID: id, X: x, Word: word, Remaining: word, TypeDir: side, Direction: dir}
	s.Ants = append(s.Ants, a)
	if id >= s.AntIDs {
		s.AntIDs = id + 1
	}
	return a
}

func addVulture(s *State, id, number, group int, side Side) *Vulture {
	x := 450.0
	if side == SideLeft {
		x = 150.0
	}
	v := &Vulture{ID: id, X: x, Y: 100, Number: number, Group: group, Side: side}
	s.Vultures = append(s.Vultures, v)
	return v
}

func TestTypingFullWordScoresTwentyTwo(t *testing.T) {
	s, _ := testState()
	addAnt(s, 0, "colony", SideLeft, 140)
	p := s.Players["p1"]

	res := ResolveKeyPress(s, "p1", "c")
	require.IsType(t, Hit{}, res)
	require.Equal(t, 5, p.Score)

	for _, k := range []string{"o", "l", "o", "n"} {
		res = ResolveKeyPress(s, "p1", k)
		require.IsType(t, Hit{}, res)
	}
	require.Equal(t, 9, p.Score)

	res = ResolveKeyPress(s, "p1", "y")
	done, ok := res.(Completed)
	require.True(t, ok)
	require.Equal(t, 12, done.Bonus) // max(10, 6*2)
	require.Equal(t, 22, p.Score)
	require.Empty(t, s.Ants)
	require.Equal(t, NoActiveAnt, p.Typing.ActiveAntID)
}

func TestShortWordGetsMinimumBonus(t *testing.T) {
	s, _ := testState()
	addAnt(s, 0, "cat", SideLeft, 140)
	p := s.Players["p1"]

	ResolveKeyPress(s, "p1", "c")
	ResolveKeyPress(s, "p1", "a")
	res := ResolveKeyPress(s, "p1", "t")

	done, ok := res.(Completed)
	require.True(t, ok)
	require.Equal(t, MinCompletionBonus, done.Bonus) // 3*2 floored at 10
	require.Equal(t, 5+2+10, p.Score)
}

func TestAccuracyReporting(t *testing.T) {
	s, _ := testState()
	addAnt(s, 0, "colony", SideLeft, 140)
	p := s.Players["p1"]

	ResolveKeyPress(s, "p1", "c")
	ResolveKeyPress(s, "p1", "o")
	ResolveKeyPress(s, "p1", "l")
	res := ResolveKeyPress(s, "p1", "z")

	miss, ok := res.(Miss)
	require.True(t, ok)
	require.Equal(t, 75, miss.Accuracy)
	require.Equal(t, Accuracy{Correct: 3, Total: 4}, p.Accuracy)
	// a wrong key does not consume the word
	require.Equal(t, "ony", s.Ants[0].Remaining)
}

func TestStartPicksClosestMatchingAnt(t *testing.T) {
	s, _ := testState()
	far := addAnt(s, 0, "cat", SideLeft, 10)
	near := addAnt(s, 1, "colony", SideLeft, 140)

	res := ResolveKeyPress(s, "p1", "c")

	hit, ok := res.(Hit)
	require.True(t, ok)
	require.Equal(t, near.ID, hit.AntID)
	require.True(t, near.Active)
	require.False(t, far.Active)
}

func TestStartIgnoresClaimedAndWrongLaneAnts(t *testing.T) {
	s, _ := testState()
	claimed := addAnt(s, 0, "cat", SideLeft, 140)
	claimed.Active = true
	addAnt(s, 1, "nest", SideRight, 400) // other lane

	res := ResolveKeyPress(s, "p1", "c")

	miss, ok := res.(Miss)
	require.True(t, ok)
	require.Equal(t, NoActiveAnt, miss.AntID)
	require.Equal(t, Accuracy{Correct: 0, Total: 1}, s.Players["p1"].Accuracy)
}

func TestKeyMatchingIsCaseInsensitive(t *testing.T) {
	s, _ := testState()
	addAnt(s, 0, "colony", SideLeft, 140)

	res := ResolveKeyPress(s, "p1", "C")
	require.IsType(t, Hit{}, res)

	res = ResolveKeyPress(s, "p1", "O")
	require.IsType(t, Hit{}, res)
}

func TestStaleActiveAntResolvesSilently(t *testing.T) {
	s, _ := testState()
	p := s.Players["p1"]
	p.Typing = Typing{ActiveAntID: 99, Current: "co"}

	res := ResolveKeyPress(s, "p1", "l")

	require.Nil(t, res)
	require.Equal(t, NoActiveAnt, p.Typing.ActiveAntID)
	require.Empty(t, p.Typing.Current)
}

func TestModifierKeysAreIgnored(t *testing.T) {
	s, _ := testState()
	addAnt(s, 0, "colony", SideLeft, 140)
	p := s.Players["p1"]

	require.Nil(t, ResolveKeyPress(s, "p1", "ArrowLeft"))
	require.Nil(t, ResolveKeyPress(s, "p1", "Shift"))
	require.Equal(t, 0, p.Accuracy.Total)

	// Backspace passes the filter but can never match, so it misses
	res := ResolveKeyPress(s, "p1", EraseKey)
	require.IsType(t, Miss{}, res)
	require.Equal(t, 1, p.Accuracy.Total)
}

func TestPressurePlaySpawnsOppositeLane(t *testing.T) {
	s, _ := testState()
	p := s.Players["p1"]
	p.Score = 120

	res := ResolveKeyPress(s, "p1", PressureKey)

	require.Nil(t, res)
	require.Equal(t, 20, p.Score)
	require.Len(t, s.Ants, 1)
	require.Equal(t, SideRight, s.Ants[0].TypeDir)
}

func TestPressurePlayNeedsFullCost(t *testing.T) {
	s, _ := testState()
	p := s.Players["p1"]
	p.Score = 99

	res := ResolveKeyPress(s, "p1", PressureKey)

	// falls through to the normal path and misses
	require.IsType(t, Miss{}, res)
	require.Equal(t, 99, p.Score)
	require.Empty(t, s.Ants)
}

func TestVultureSequenceAwardsNinety(t *testing.T) {
	s, _ := testState()
	addVulture(s, 1, 1, 0, SideLeft)
	addVulture(s, 2, 2, 0, SideLeft)
	addVulture(s, 3, 3, 0, SideLeft)
	p := s.Players["p1"]

	res := ResolveVultureClick(s, "p1", 1)
	require.IsType(t, SequenceStart{}, res)
	require.Equal(t, 20, p.Score)

	res = ResolveVultureClick(s, "p1", 2)
	require.IsType(t, SequenceContinue{}, res)
	require.Equal(t, 40, p.Score)

	res = ResolveVultureClick(s, "p1", 3)
	done, ok := res.(SequenceComplete)
	require.True(t, ok)
	require.Equal(t, SequenceBonus, done.Bonus)
	require.Equal(t, 90, p.Score)
	require.Equal(t, NoSequence, p.SeqNumber)
	require.Empty(t, s.Vultures, "completed triple should be purged")
}

func TestWrongOrderPenaltyClampsAtZero(t *testing.T) {
	s, _ := testState()
	addVulture(s, 1, 1, 0, SideLeft)
	addVulture(s, 2, 7, 0, SideLeft)
	p := s.Players["p1"]
	p.Score = 0

	ResolveVultureClick(s, "p1", 1) // start, +20
	res := ResolveVultureClick(s, "p1", 2)
	require.IsType(t, WrongOrder{}, res)
	require.Equal(t, 10, p.Score)

	p.Score = 0
	res = ResolveVultureClick(s, "p1", 2)
	require.IsType(t, WrongOrder{}, res)
	require.Equal(t, 0, p.Score)
}

func TestWrongSideClickDoesNotMutate(t *testing.T) {
	s, _ := testState()
	v := addVulture(s, 1, 1, 0, SideRight)
	p := s.Players["p1"]

	res := ResolveVultureClick(s, "p1", 1)

	require.IsType(t, WrongSide{}, res)
	require.False(t, v.Clicked)
	require.Equal(t, 0, p.Score)
	require.Equal(t, NoSequence, p.SeqNumber)
}

func TestRepeatClickIsIdempotent(t *testing.T) {
	s, _ := testState()
	addVulture(s, 1, 1, 0, SideLeft)
	p := s.Players["p1"]

	// keep the triple open so the clicked vulture is not purged
	addVulture(s, 2, 2, 0, SideLeft)

	ResolveVultureClick(s, "p1", 1)
	res := ResolveVultureClick(s, "p1", 1)

	require.Nil(t, res)
	require.Equal(t, 20, p.Score)
}

func TestUnknownVultureIsNoOp(t *testing.T) {
	s, _ := testState()
	require.Nil(t, ResolveVultureClick(s, "p1", 404))
}

func TestMidTripleStartersCountAsWrongOrder(t *testing.T) {
	s, _ := testState()
	addVulture(s, 1, 4, 0, SideLeft)
	addVulture(s, 2, 7, 1, SideLeft)
	p := s.Players["p1"]
	p.Score = 50

	// opening with 4 is legal
	res := ResolveVultureClick(s, "p1", 1)
	require.IsType(t, SequenceStart{}, res)

	// but 7 belongs to another triple while a sequence runs
	res = ResolveVultureClick(s, "p1", 2)
	require.IsType(t, WrongOrder{}, res)
	require.Equal(t, 60, p.Score) // 50 +20 -10
}

func TestInputIgnoredAfterGameOver(t *testing.T) {
	s, _ := testState()
	addAnt(s, 0, "colony", SideLeft, 140)
	addVulture(s, 1, 1, 0, SideLeft)
	s.GameOver = true

	require.Nil(t, ResolveKeyPress(s, "p1", "c"))
	require.Nil(t, ResolveVultureClick(s, "p1", 1))
}

func TestUnknownPlayerIsNoOp(t *testing.T) {
	s, _ := testState()
	addAnt(s, 0, "colony", SideLeft, 140)

	require.Nil(t, ResolveKeyPress(s, "ghost", "c"))
	require.Nil(t, ResolveVultureClick(s, "ghost", 1))
}
