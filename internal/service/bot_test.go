package service

import (
	"testing"

	"github.com/rocketscienceinc/edgerun-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardFrom(t *testing.T, rows ...string) *entity.Board {
	t.Helper()
	require.Len(t, rows, entity.BoardSize)

	var grid entity.Grid
	for row, line := range rows {
		require.Len(t, line, entity.BoardSize)
		for col, ch := range line {
			switch ch {
			case 'R':
				grid[row][col] = entity.RedCell
			case 'G':
				grid[row][col] = entity.GreenCell
			}
		}
	}

	return entity.NewBoardFromGrid(grid)
}

func TestBotService_Evaluate(t *testing.T) {
	bot := NewBotService(BotOptions{})

	t.Run("Neutral while both sides have tokens", func(t *testing.T) {
		assert.Equal(t, 0, bot.Evaluate(entity.NewBoard()))
	})

	t.Run("Plus ten when green has no tokens", func(t *testing.T) {
		board := boardFrom(t, ".....", "R....", ".....", ".....", ".....")

		assert.Equal(t, WinScore, bot.Evaluate(board))
	})

	t.Run("Minus ten when red has no tokens", func(t *testing.T) {
		board := boardFrom(t, ".G...", ".....", ".....", ".....", ".....")

		assert.Equal(t, -WinScore, bot.Evaluate(board))
	})

	t.Run("Neutral on an empty board", func(t *testing.T) {
		board := boardFrom(t, ".....", ".....", ".....", ".....", ".....")

		assert.Equal(t, 0, bot.Evaluate(board))
	})
}

func TestBotService_SearchShortCircuit(t *testing.T) {
	bot := NewBotService(BotOptions{})

	t.Run("Decided boards return their score at any depth", func(t *testing.T) {
		// Given: one board without green tokens and one without red tokens
		redWon := boardFrom(t, ".....", "R....", ".....", ".....", ".....")
		greenWon := boardFrom(t, ".G...", ".....", ".....", ".....", ".....")

		for depth := 0; depth <= 5; depth++ {
			for _, maximizing := range []bool{true, false} {
				// Then: the evaluation is returned without searching
				assert.Equal(t, WinScore, bot.Search(redWon, depth, maximizing))
				assert.Equal(t, -WinScore, bot.Search(greenWon, depth, maximizing))
			}
		}
	})

	t.Run("Depth zero is neutral", func(t *testing.T) {
		assert.Equal(t, 0, bot.Search(entity.NewBoard(), 0, true))
		assert.Equal(t, 0, bot.Search(entity.NewBoard(), 0, false))
	})

	t.Run("Side without candidates returns its sentinel", func(t *testing.T) {
		// Given: red blocked by green tokens
		board := boardFrom(t,
			".....",
			".....",
			"RGG..",
			".....",
			".....",
		)

		// Then: the maximizer has nothing to try
		assert.Equal(t, maximizerFloor, bot.Search(board, 1, true))
	})

	t.Run("Search advances never remove tokens", func(t *testing.T) {
		// Given: the only red token next to the far column
		board := boardFrom(t,
			".G...",
			".....",
			"...R.",
			".....",
			".....",
		)

		// Then: advancing onto the far column inside the search is not a loss
		assert.Equal(t, 0, bot.Search(board, 1, true))
	})
}

func TestBotService_SearchLeavesBoardUntouched(t *testing.T) {
	boards := map[string]*entity.Board{
		"starting board": entity.NewBoard(),
		"crowded board": boardFrom(t,
			".GG..",
			"R.G..",
			".RG..",
			"R..R.",
			".....",
		),
	}

	for name, board := range boards {
		for _, opts := range []BotOptions{{}, {IncludeJumps: true}} {
			bot := NewBotService(opts)

			// Given: a snapshot taken before searching
			before := board.Snapshot()
			redBefore := board.Tokens(entity.PlayerRed)
			greenBefore := board.Tokens(entity.PlayerGreen)

			// When: searching from both sides and picking a move
			bot.Search(board, SearchDepth, true)
			bot.Search(board, SearchDepth, false)
			bot.BestMove(board)

			// Then: the board is identical
			assert.Equal(t, before, board.Snapshot(), name)
			assert.Equal(t, redBefore, board.Tokens(entity.PlayerRed), name)
			assert.Equal(t, greenBefore, board.Tokens(entity.PlayerGreen), name)
		}
	}
}

func TestBotService_BestMove(t *testing.T) {
	t.Run("First candidate wins ties on the starting board", func(t *testing.T) {
		bot := NewBotService(BotOptions{})

		move, ok := bot.BestMove(entity.NewBoard())

		require.True(t, ok)
		assert.Equal(t, entity.Position{Row: 1, Col: 0}, move.From)
		assert.Equal(t, entity.Position{Row: 1, Col: 1}, move.To)
		assert.Equal(t, 0, move.Score)
		assert.Positive(t, move.Nodes)
	})

	t.Run("Skips a blocked token", func(t *testing.T) {
		// Given: green moved in front of the top red token
		bot := NewBotService(BotOptions{})
		board := boardFrom(t,
			"..GG.",
			"RG...",
			"R....",
			"R....",
			".....",
		)

		// When: the bot picks a move
		move, ok := bot.BestMove(board)

		// Then: the next red token in row-major order advances
		require.True(t, ok)
		assert.Equal(t, entity.Position{Row: 2, Col: 0}, move.From)
	})

	t.Run("No move when red can only jump", func(t *testing.T) {
		// Given: red whose only legal move is a jump
		bot := NewBotService(BotOptions{})
		board := boardFrom(t,
			".....",
			".....",
			"RG...",
			".....",
			".....",
		)

		// When: the bot picks a move
		_, ok := bot.BestMove(board)

		// Then: jumps are not candidates by default
		assert.False(t, ok)
	})

	t.Run("Jump search finds the winning capture", func(t *testing.T) {
		// Given: red can capture the last green token, jumps enabled
		bot := NewBotService(BotOptions{IncludeJumps: true})
		board := boardFrom(t,
			".....",
			"R....",
			"..RG.",
			".....",
			".....",
		)

		// When: the bot picks a move
		move, ok := bot.BestMove(board)

		// Then: the capture is preferred over the earlier advance
		require.True(t, ok)
		assert.Equal(t, entity.Position{Row: 2, Col: 2}, move.From)
		assert.Equal(t, entity.Position{Row: 2, Col: 4}, move.To)
		assert.Equal(t, WinScore, move.Score)
	})
}
