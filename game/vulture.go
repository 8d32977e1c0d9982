package game

// Vulture is a descending target clicked in ascending-number order. Spawned
// in triples sharing a group id; Number is one of 1..9 with the triple
// starting at 1, 4 or 7.
type Vulture struct {
	ID      int
	X, Y    float64
	Number  int
	Clicked bool
	Group   int
	Side    Side // which side's player may click it
}

// sequenceStart reports whether n opens a vulture triple.
func sequenceStart(n int) bool {
	return n == 1 || n == 4 || n == 7
}

// sequenceDone reports whether an advanced sequence counter has walked past
// the end of its triple (1..3 lands on 4, 4..6 on 7, 7..9 on 10).
func sequenceDone(n int) bool {
	return n == 4 || n == 7 || n == 10
}
