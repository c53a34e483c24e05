package entity

type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeRedWins    Outcome = "red_wins"
	OutcomeGreenWins  Outcome = "green_wins"
	// OutcomeAmbiguous marks a board where both sides ran out of tokens together.
	OutcomeAmbiguous Outcome = "ambiguous"
)

type Phase string

const (
	PhaseAwaitingHuman Phase = "awaiting_human"
	PhaseBotThinking   Phase = "bot_thinking"
	PhaseGameOver      Phase = "game_over"
)

// The human always plays Green, the bot plays Red.
const (
	HumanPlayer = PlayerGreen
	BotPlayer   = PlayerRed
)

type TurnState struct {
	Turn    Player  `json:"turn"`
	Phase   Phase   `json:"phase"`
	Outcome Outcome `json:"outcome"`
	// HumanCanMove is false when Green has no legal advance or jump left.
	HumanCanMove bool `json:"human_can_move"`
}

func NewTurnState() TurnState {
	return TurnState{
		Turn:         HumanPlayer,
		Phase:        PhaseAwaitingHuman,
		Outcome:      OutcomeInProgress,
		HumanCanMove: true,
	}
}

func (that TurnState) IsFinished() bool {
	return that.Phase == PhaseGameOver
}

func (that TurnState) IsAwaitingHuman() bool {
	return that.Phase == PhaseAwaitingHuman
}

func (that Outcome) IsDecided() bool {
	return that != OutcomeInProgress
}

// Scores is the tally of finished games by outcome.
type Scores struct {
	RedWins   int64 `json:"red_wins"`
	GreenWins int64 `json:"green_wins"`
	Ambiguous int64 `json:"ambiguous"`
}

// Counters maps every final outcome to its counter field.
func (that *Scores) Counters() map[Outcome]*int64 {
	return map[Outcome]*int64{
		OutcomeRedWins:   &that.RedWins,
		OutcomeGreenWins: &that.GreenWins,
		OutcomeAmbiguous: &that.Ambiguous,
	}
}
