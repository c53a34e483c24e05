package service

import (
	"github.com/rocketscienceinc/edgerun-backend/internal/entity"
	"github.com/rocketscienceinc/edgerun-backend/internal/rules"
)

const (
	// SearchDepth is the lookahead of the bot's decision, in plies.
	SearchDepth = 3

	WinScore = 10

	// sentinels returned by a node whose side has no candidate move
	maximizerFloor = -1000
	minimizerCeil  = 1000
)

// BotMove is the move chosen by the bot together with its search result.
type BotMove struct {
	From  entity.Position `json:"from"`
	To    entity.Position `json:"to"`
	Score int             `json:"score"`
	Nodes int             `json:"nodes"`
}

type BotService interface {
	// Evaluate scores the board from Red's side: +10 when Green is out of tokens,
	// -10 when Red is, 0 otherwise.
	Evaluate(board *entity.Board) int
	// Search runs plain minimax to the given depth and leaves the board as it found it.
	Search(board *entity.Board, depth int, maximizing bool) int
	// BestMove picks Red's move; false when Red has no candidate.
	BestMove(board *entity.Board) (BotMove, bool)
}

type BotOptions struct {
	// IncludeJumps lets the search generate jump-captures besides one-step advances.
	IncludeJumps bool
}

type botService struct {
	includeJumps bool
}

func NewBotService(opts BotOptions) BotService {
	return &botService{
		includeJumps: opts.IncludeJumps,
	}
}

func (that *botService) Evaluate(board *entity.Board) int {
	return evaluate(board)
}

func (that *botService) Search(board *entity.Board, depth int, maximizing bool) int {
	return that.newSearcher(board).minimax(depth, maximizing)
}

func (that *botService) BestMove(board *entity.Board) (BotMove, bool) {
	search := that.newSearcher(board)

	var (
		best  BotMove
		found bool
	)

	for _, move := range search.candidates(entity.PlayerRed) {
		undo := search.apply(move)
		score := search.minimax(SearchDepth, false)
		undo()

		// strict comparison keeps the first of equally scored moves
		if !found || score > best.Score {
			best = BotMove{From: move.from, To: move.to, Score: score}
			found = true
		}
	}

	best.Nodes = search.nodes

	return best, found
}

func (that *botService) newSearcher(board *entity.Board) *searcher {
	return &searcher{
		board:        board,
		includeJumps: that.includeJumps,
	}
}

func evaluate(board *entity.Board) int {
	redGone := rules.HasNoTokens(board, entity.PlayerRed)
	greenGone := rules.HasNoTokens(board, entity.PlayerGreen)

	switch {
	case redGone && greenGone:
		return 0
	case greenGone:
		return WinScore
	case redGone:
		return -WinScore
	default:
		return 0
	}
}
