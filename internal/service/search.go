package service

import (
	"github.com/rocketscienceinc/edgerun-backend/internal/entity"
)

// searchMove is a candidate applied in place on the searched board.
type searchMove struct {
	player entity.Player
	from   entity.Position
	to     entity.Position
	over   *entity.Position
	exits  bool
}

// searcher mutates one board in place and restores every cell it touches before returning.
type searcher struct {
	board        *entity.Board
	includeJumps bool
	nodes        int
}

func (that *searcher) minimax(depth int, maximizing bool) int {
	that.nodes++

	score := evaluate(that.board)
	if score == WinScore || score == -WinScore {
		return score
	}

	if depth == 0 {
		return 0
	}

	if maximizing {
		best := maximizerFloor
		for _, move := range that.candidates(entity.PlayerRed) {
			undo := that.apply(move)
			best = max(best, that.minimax(depth-1, false))
			undo()
		}

		return best
	}

	best := minimizerCeil
	for _, move := range that.candidates(entity.PlayerGreen) {
		undo := that.apply(move)
		best = min(best, that.minimax(depth-1, true))
		undo()
	}

	return best
}

// candidates lists the player's one-step advances in row-major order. Red never needs the last
// row or column scanned, Green scans every cell. Advances are placed even on the far edge here.
func (that *searcher) candidates(player entity.Player) []searchMove {
	rows, cols := entity.BoardSize, entity.BoardSize
	if player == entity.PlayerRed {
		rows, cols = entity.BoardSize-1, entity.BoardSize-1
	}

	dr, dc := player.Forward()
	marker := player.Marker()

	var moves []searchMove

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if that.cell(row, col) != marker {
				continue
			}

			from := entity.Position{Row: row, Col: col}
			next := entity.Position{Row: row + dr, Col: col + dc}

			if !entity.IsInside(next.Row, next.Col) {
				continue
			}

			if that.cell(next.Row, next.Col) == entity.EmptyCell {
				moves = append(moves, searchMove{player: player, from: from, to: next})
				continue
			}

			if move, ok := that.jump(player, from, next); ok {
				moves = append(moves, move)
			}
		}
	}

	return moves
}

func (that *searcher) jump(player entity.Player, from, over entity.Position) (searchMove, bool) {
	if !that.includeJumps || that.cell(over.Row, over.Col) != player.Opponent().Marker() {
		return searchMove{}, false
	}

	dr, dc := player.Forward()
	landing := entity.Position{Row: over.Row + dr, Col: over.Col + dc}

	if !entity.IsInside(landing.Row, landing.Col) || that.cell(landing.Row, landing.Col) != entity.EmptyCell {
		return searchMove{}, false
	}

	return searchMove{
		player: player,
		from:   from,
		to:     landing,
		over:   &over,
		exits:  player.IsFarEdge(landing),
	}, true
}

// apply plays the move and returns the function restoring the touched cells.
func (that *searcher) apply(move searchMove) func() {
	touched := []entity.Position{move.from, move.to}
	if move.over != nil {
		touched = append(touched, *move.over)
	}

	saved := make([]entity.Cell, len(touched))
	for i, p := range touched {
		saved[i] = that.cell(p.Row, p.Col)
	}

	that.put(move.from, entity.EmptyCell)
	if move.over != nil {
		that.put(*move.over, entity.EmptyCell)
	}
	if !move.exits {
		that.put(move.to, move.player.Marker())
	}

	return func() {
		for i, p := range touched {
			that.put(p, saved[i])
		}
	}
}

// cell and put only see coordinates generated inside the board.
func (that *searcher) cell(row, col int) entity.Cell {
	cell, _ := that.board.CellAt(row, col)
	return cell
}

func (that *searcher) put(pos entity.Position, cell entity.Cell) {
	_ = that.board.SetCell(pos.Row, pos.Col, cell)
}
