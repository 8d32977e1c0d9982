package game

// Ant is a word-bearing target marching toward one player's lane. X is the
// authoritative coordinate; Y is cosmetic and positioned by the client.
type Ant struct {
	ID        int
	X, Y      float64
	Word      string
	Remaining string // untyped suffix
	Active    bool   // someone is currently typing this ant
	TypeDir   Side   // which side's player may type it
	Direction float64 // +1 moving right, -1 moving left
}
