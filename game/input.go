package game

import (
	"math"
	"strings"
)

// Input resolution: validates one player action against the current state,
// mutates it, and returns a Result for the room to broadcast. No network
// I/O happens here. A nil Result is a deliberate no-op (stale references,
// filtered keys), not an error.

func keyMatches(key string, next byte) bool {
	return len(key) == 1 && strings.EqualFold(key, string(next))
}

// ResolveKeyPress scores a single keystroke for the given player.
func ResolveKeyPress(s *State, playerID, key string) Result {
	if s == nil || s.GameOver {
		return nil
	}
	p, ok := s.Players[playerID]
	if !ok {
		return nil
	}

	// cross-lane pressure play: spend score to flood the opponent
	if key == PressureKey && p.Score >= PressureCost {
		if p.Side == SideLeft {
			SpawnAnt(s, SpawnRight)
		} else {
			SpawnAnt(s, SpawnLeft)
		}
		p.Score -= PressureCost
		return nil
	}

	// drop modifier and navigation keys; Backspace falls through and
	// scores as a miss, same as any non-matching input
	if len(key) != 1 && key != EraseKey {
		return nil
	}

	if p.Typing.ActiveAntID == NoActiveAnt {
		return startWord(s, p, key)
	}
	return continueWord(s, p, key)
}

// startWord claims the closest untaken ant on the player's side whose word
// opens with the pressed key.
func startWord(s *State, p *Player, key string) Result {
	playerX := RightPlayerX
	if p.Side == SideLeft {
		playerX = LeftPlayerX
	}

	var best *Ant
	bestDist := math.MaxFloat64
	for _, ant := range s.Ants {
		if ant.TypeDir != p.Side || ant.Active || !keyMatches(key, ant.Word[0]) {
			continue
		}
		if d := math.Abs(ant.X - playerX); d < bestDist {
			best, bestDist = ant, d
		}
	}

	if best == nil {
		p.Accuracy.Total++
		return Miss{
			AntID:    NoActiveAnt,
			Accuracy: p.Accuracy.Percent(),
			Score:    p.Score,
			Feedback: key,
			Color:    FeedbackRed,
		}
	}

	best.Active = true
	best.Remaining = best.Word[1:]
	p.Typing = Typing{ActiveAntID: best.ID, Current: key}
	p.Accuracy.Correct++
	p.Accuracy.Total++
	p.Score += WordStartPoints

	return Hit{
		AntID:     best.ID,
		Remaining: best.Remaining,
		Typed:     p.Typing.Current,
		Score:     p.Score,
		Accuracy:  p.Accuracy.Percent(),
		Feedback:  key,
		Color:     FeedbackGreen,
	}
}

// continueWord advances the player's active word by one keystroke. The ant
// is re-resolved by id first: the tick loop may have removed it since the
// last event, which is normal and resolves silently.
func continueWord(s *State, p *Player, key string) Result {
	ant := s.FindAnt(p.Typing.ActiveAntID)
	if ant == nil {
		p.Typing = Typing{ActiveAntID: NoActiveAnt}
		return nil
	}

	if len(ant.Remaining) == 0 || !keyMatches(key, ant.Remaining[0]) {
		p.Accuracy.Total++
		return Miss{
			AntID:     ant.ID,
			Remaining: ant.Remaining,
			Typed:     p.Typing.Current,
			Score:     p.Score,
			Accuracy:  p.Accuracy.Percent(),
			Feedback:  key,
			Color:     FeedbackRed,
		}
	}

	ant.Remaining = ant.Remaining[1:]
	p.Typing.Current += key
	p.Accuracy.Correct++
	p.Accuracy.Total++
	p.Score += KeystrokePoints

	if len(ant.Remaining) == 0 {
		s.removeAnt(ant.ID)
		bonus := len(p.Typing.Current) * CompletionPerChar
		if bonus < MinCompletionBonus {
			bonus = MinCompletionBonus
		}
		p.Score += bonus
		p.Typing = Typing{ActiveAntID: NoActiveAnt}

		return Completed{
			AntID:    ant.ID,
			Score:    p.Score,
			Accuracy: p.Accuracy.Percent(),
			Bonus:    bonus,
			Feedback: "✓",
			Color:    FeedbackGreen,
		}
	}

	return Hit{
		AntID:     ant.ID,
		Remaining: ant.Remaining,
		Typed:     p.Typing.Current,
		Score:     p.Score,
		Accuracy:  p.Accuracy.Percent(),
		Feedback:  key,
		Color:     FeedbackGreen,
	}
}

// ResolveVultureClick scores a pointer click on a vulture.
func ResolveVultureClick(s *State, playerID string, vultureID int) Result {
	if s == nil || s.GameOver {
		return nil
	}
	p, ok := s.Players[playerID]
	if !ok {
		return nil
	}

	v := s.FindVulture(vultureID)
	if v == nil {
		return nil
	}

	if v.Side != p.Side {
		return WrongSide{
			VultureID: vultureID,
			Feedback:  "Wrong side!",
			Color:     FeedbackRed,
		}
	}

	if v.Clicked {
		return nil
	}

	// opening click of a fresh triple; SeqNumber tracks the next number
	// expected from this player
	if sequenceStart(v.Number) && p.SeqNumber == NoSequence {
		p.SeqNumber = v.Number + 1
		p.SeqGroup = v.Group
		v.Clicked = true
		p.Score += VultureClickPoints
		return SequenceStart{
			VultureID: vultureID,
			Score:     p.Score,
			Feedback:  "+20",
			Color:     FeedbackGreen,
		}
	}

	if v.Number == p.SeqNumber && v.Group == p.SeqGroup {
		v.Clicked = true
		p.Score += VultureClickPoints
		p.SeqNumber++

		if sequenceDone(p.SeqNumber) {
			p.Score += SequenceBonus
			s.purgeClicked(p.Side)
			p.SeqNumber = NoSequence
			return SequenceComplete{
				VultureID: vultureID,
				Score:     p.Score,
				Bonus:     SequenceBonus,
				Feedback:  "Sequence Complete! +30",
				Color:     FeedbackYellow,
			}
		}

		return SequenceContinue{
			VultureID: vultureID,
			Score:     p.Score,
			Feedback:  "+20",
			Color:     FeedbackGreen,
		}
	}

	p.Score -= WrongOrderPenalty
	if p.Score < 0 {
		p.Score = 0
	}
	return WrongOrder{
		VultureID: vultureID,
		Score:     p.Score,
		Feedback:  "Wrong order!",
		Color:     FeedbackRed,
	}
}

// purgeClicked drops every already-clicked vulture on the given side.
func (s *State) purgeClicked(side Side) {
	for i := len(s.Vultures) - 1; i >= 0; i-- {
		v := s.Vultures[i]
		if v.Side == side && v.Clicked {
			s.Vultures = append(s.Vultures[:i], s.Vultures[i+1:]...)
		}
	}
}
