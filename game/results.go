package game

// Result is what input resolution hands back for broadcast. Each action
// kind is its own variant carrying only the fields that matter for it; a
// nil Result means the action resolved to nothing worth announcing.
type Result interface {
	Kind() string
}

const (
	FeedbackRed    = 0xFF0000
	FeedbackGreen  = 0x00FF00
	FeedbackYellow = 0xFFFF00
)

// Miss: a keystroke that matched nothing, or mistyped the active word.
// AntID is NoActiveAnt when the player had no target.
type Miss struct {
	AntID     int    `json:"antId"`
	Remaining string `json:"remainingWord,omitempty"`
	Typed     string `json:"currentTypingWord,omitempty"`
	Score     int    `json:"score"`
	Accuracy  int    `json:"accuracy"`
	Feedback  string `json:"feedback"`
	Color     int    `json:"feedbackColor"`
}

func (Miss) Kind() string { return "miss" }

// Hit: a correct keystroke, either claiming a fresh ant or continuing one.
type Hit struct {
	AntID     int    `json:"antId"`
	Remaining string `json:"remainingWord"`
	Typed     string `json:"currentTypingWord"`
	Score     int    `json:"score"`
	Accuracy  int    `json:"accuracy"`
	Feedback  string `json:"feedback"`
	Color     int    `json:"feedbackColor"`
}

func (Hit) Kind() string { return "hit" }

// Completed: the keystroke finished the word and removed the ant.
type Completed struct {
	AntID    int    `json:"antId"`
	Score    int    `json:"score"`
	Accuracy int    `json:"accuracy"`
	Bonus    int    `json:"bonusPoints"`
	Feedback string `json:"feedback"`
	Color    int    `json:"feedbackColor"`
}

func (Completed) Kind() string { return "completed" }

// SequenceStart: clicked a triple-opening vulture with no sequence running.
type SequenceStart struct {
	VultureID int    `json:"vultureId"`
	Score     int    `json:"score"`
	Feedback  string `json:"feedback"`
	Color     int    `json:"feedbackColor"`
}

func (SequenceStart) Kind() string { return "sequenceStart" }

// SequenceContinue: clicked the next vulture of the running sequence.
type SequenceContinue struct {
	VultureID int    `json:"vultureId"`
	Score     int    `json:"score"`
	Feedback  string `json:"feedback"`
	Color     int    `json:"feedbackColor"`
}

func (SequenceContinue) Kind() string { return "sequenceContinue" }

// SequenceComplete: the click closed out the whole triple.
type SequenceComplete struct {
	VultureID int    `json:"vultureId"`
	Score     int    `json:"score"`
	Bonus     int    `json:"bonusPoints"`
	Feedback  string `json:"feedback"`
	Color     int    `json:"feedbackColor"`
}

func (SequenceComplete) Kind() string { return "sequenceComplete" }

// WrongOrder: clicked a vulture out of sequence; costs points.
type WrongOrder struct {
	VultureID int    `json:"vultureId"`
	Score     int    `json:"score"`
	Feedback  string `json:"feedback"`
	Color     int    `json:"feedbackColor"`
}

func (WrongOrder) Kind() string { return "wrongOrder" }

// WrongSide: clicked the opponent's vulture; no mutation, no penalty.
type WrongSide struct {
	VultureID int    `json:"vultureId"`
	Feedback  string `json:"feedback"`
	Color     int    `json:"feedbackColor"`
}

func (WrongSide) Kind() string { return "wrongSide" }
