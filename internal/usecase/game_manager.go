package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/edgerun-backend/internal/apperror"
	"github.com/rocketscienceinc/edgerun-backend/internal/entity"
	"github.com/rocketscienceinc/edgerun-backend/internal/rules"
	"github.com/rocketscienceinc/edgerun-backend/internal/service"
)

type MoveOutcome string

const (
	MoveApplied     MoveOutcome = "applied"
	MoveIllegal     MoveOutcome = "illegal"
	MoveNotYourTurn MoveOutcome = "not_your_turn"
)

type botService interface {
	BestMove(board *entity.Board) (service.BotMove, bool)
}

type scoreRepo interface {
	Record(ctx context.Context, outcome entity.Outcome) error
	Get(ctx context.Context) (entity.Scores, error)
}

// GameView is a consistent copy of everything a presentation layer draws.
type GameView struct {
	Board       entity.Grid      `json:"board"`
	State       entity.TurnState `json:"state"`
	LastBotMove *rules.Move      `json:"last_bot_move,omitempty"`
}

// GameManager drives a single game: it accepts the human's moves, answers with the bot and
// owns the turn state. Every call is serialized so nobody sees the board mid-search.
type GameManager struct {
	logger    *slog.Logger
	bot       botService
	scoreRepo scoreRepo

	mu          sync.Mutex
	board       *entity.Board
	state       entity.TurnState
	lastBotMove *rules.Move
}

func NewGameManager(logger *slog.Logger, bot botService, scoreRepo scoreRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		bot:       bot,
		scoreRepo: scoreRepo,

		board: entity.NewBoard(),
		state: entity.NewTurnState(),
	}
}

func (that *GameManager) Snapshot() entity.Grid {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.board.Snapshot()
}

func (that *GameManager) TurnState() entity.TurnState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state
}

func (that *GameManager) View() GameView {
	that.mu.Lock()
	defer that.mu.Unlock()

	view := GameView{
		Board: that.board.Snapshot(),
		State: that.state,
	}

	if that.lastBotMove != nil {
		move := *that.lastBotMove
		view.LastBotMove = &move
	}

	return view
}

// SubmitHumanMove plays Green's token at (row, col) and, unless the game ends, the bot's reply.
// The returned error explains an Illegal or NotYourTurn outcome; with Applied it is only set
// when both sides ran out of tokens at once.
func (that *GameManager) SubmitHumanMove(ctx context.Context, row, col int) (MoveOutcome, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "SubmitHumanMove")

	if that.state.IsFinished() {
		return MoveNotYourTurn, fmt.Errorf("%w: %w", apperror.ErrNotYourTurn, apperror.ErrGameFinished)
	}

	if !that.state.IsAwaitingHuman() {
		return MoveNotYourTurn, apperror.ErrNotYourTurn
	}

	move, err := rules.AttemptMove(that.board, entity.HumanPlayer, entity.Position{Row: row, Col: col})
	if err != nil {
		log.Debug("human move rejected", "row", row, "col", col, "error", err)
		return MoveIllegal, fmt.Errorf("failed to make human move: %w", err)
	}

	log.Debug("human move applied", "from", move.From, "to", move.To, "kind", move.Kind, "exited", move.Exited)

	if finished, settleErr := that.settle(ctx); finished {
		return MoveApplied, settleErr
	}

	that.state.Turn = entity.BotPlayer
	that.state.Phase = entity.PhaseBotThinking

	return MoveApplied, that.playBot(ctx)
}

// Reset puts the starting board back and hands the first move to the human.
func (that *GameManager) Reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.board = entity.NewBoard()
	that.state = entity.NewTurnState()
	that.lastBotMove = nil

	that.logger.Info("game reset")
}

func (that *GameManager) Scores(ctx context.Context) (entity.Scores, error) {
	scores, err := that.scoreRepo.Get(ctx)
	if err != nil {
		return entity.Scores{}, fmt.Errorf("failed to get scores: %w", err)
	}

	return scores, nil
}

func (that *GameManager) playBot(ctx context.Context) error {
	log := that.logger.With("method", "playBot")

	choice, ok := that.bot.BestMove(that.board)
	if !ok {
		log.Info("bot has no move, turn goes back to the human")
		that.awaitHuman()

		return nil
	}

	move, err := rules.AttemptMove(that.board, entity.BotPlayer, choice.From)
	if err != nil {
		that.awaitHuman()
		return fmt.Errorf("bot move rejected: %w", err)
	}

	that.lastBotMove = &move

	log.Debug("bot move applied",
		"from", move.From, "to", move.To, "kind", move.Kind, "exited", move.Exited,
		"score", choice.Score, "nodes", choice.Nodes)

	if finished, settleErr := that.settle(ctx); finished {
		return settleErr
	}

	that.awaitHuman()

	return nil
}

// settle ends the game when the board is decided and records the result.
func (that *GameManager) settle(ctx context.Context) (bool, error) {
	log := that.logger.With("method", "settle")

	outcome, outcomeErr := rules.Outcome(that.board)
	if !outcome.IsDecided() {
		return false, nil
	}

	that.state.Phase = entity.PhaseGameOver
	that.state.Outcome = outcome
	that.state.HumanCanMove = false

	if outcomeErr != nil {
		log.Error("game ended without a winner", "error", outcomeErr)
	} else {
		log.Info("game over", "outcome", outcome)
	}

	if err := that.scoreRepo.Record(ctx, outcome); err != nil {
		log.Error("failed to record score", "error", err)
	}

	return true, outcomeErr
}

func (that *GameManager) awaitHuman() {
	that.state.Turn = entity.HumanPlayer
	that.state.Phase = entity.PhaseAwaitingHuman
	that.state.HumanCanMove = rules.HasLegalMove(that.board, entity.HumanPlayer)
}
