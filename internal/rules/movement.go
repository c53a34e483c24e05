package rules

import (
	"fmt"

	"github.com/rocketscienceinc/edgerun-backend/internal/apperror"
	"github.com/rocketscienceinc/edgerun-backend/internal/entity"
)

type MoveKind string

const (
	KindAdvance MoveKind = "advance"
	KindJump    MoveKind = "jump"
)

// Move describes an applied or planned move.
type Move struct {
	Player entity.Player   `json:"player"`
	Kind   MoveKind        `json:"kind"`
	From   entity.Position `json:"from"`
	To     entity.Position `json:"to"`
	// Over is the opponent cell emptied by a jump.
	Over *entity.Position `json:"over,omitempty"`
	// Exited is set when the destination is the far edge and the token left the board.
	Exited bool `json:"exited"`
}

// AttemptMove applies the player's move from the given origin. An advance is tried first,
// then a jump. A rejected move returns apperror.ErrIllegalMove and leaves the board untouched.
func AttemptMove(board *entity.Board, player entity.Player, from entity.Position) (Move, error) {
	if !board.IsInside(from.Row, from.Col) {
		return Move{}, fmt.Errorf("%w: origin %s", apperror.ErrOutOfBounds, from)
	}

	move, ok := planMove(board, player, from)
	if !ok {
		return Move{}, fmt.Errorf("%w: %s from %s", apperror.ErrIllegalMove, player, from)
	}

	if err := applyMove(board, move); err != nil {
		return Move{}, fmt.Errorf("failed to apply move: %w", err)
	}

	return move, nil
}

// LegalMoves lists every move the player can make, scanning origins in row-major order.
func LegalMoves(board *entity.Board, player entity.Player) []Move {
	var moves []Move

	for _, from := range board.Tokens(player) {
		if move, ok := planMove(board, player, from); ok {
			moves = append(moves, move)
		}
	}

	return moves
}

func HasLegalMove(board *entity.Board, player entity.Player) bool {
	return len(LegalMoves(board, player)) > 0
}

// planMove resolves the move from the origin without mutating the board.
func planMove(board *entity.Board, player entity.Player, from entity.Position) (Move, bool) {
	if cellOf(board, from) != player.Marker() {
		return Move{}, false
	}

	dr, dc := player.Forward()
	next := entity.Position{Row: from.Row + dr, Col: from.Col + dc}

	if !board.IsInside(next.Row, next.Col) {
		return Move{}, false
	}

	switch cellOf(board, next) {
	case entity.EmptyCell:
		return Move{
			Player: player,
			Kind:   KindAdvance,
			From:   from,
			To:     next,
			Exited: player.IsFarEdge(next),
		}, true
	case player.Opponent().Marker():
		landing := entity.Position{Row: from.Row + 2*dr, Col: from.Col + 2*dc}
		if !board.IsInside(landing.Row, landing.Col) || cellOf(board, landing) != entity.EmptyCell {
			return Move{}, false
		}

		return Move{
			Player: player,
			Kind:   KindJump,
			From:   from,
			To:     landing,
			Over:   &next,
			Exited: player.IsFarEdge(landing),
		}, true
	default:
		return Move{}, false
	}
}

func applyMove(board *entity.Board, move Move) error {
	if err := board.SetCell(move.From.Row, move.From.Col, entity.EmptyCell); err != nil {
		return err
	}

	if move.Over != nil {
		if err := board.SetCell(move.Over.Row, move.Over.Col, entity.EmptyCell); err != nil {
			return err
		}
	}

	if !move.Exited {
		if err := board.SetCell(move.To.Row, move.To.Col, move.Player.Marker()); err != nil {
			return err
		}
	}

	board.Resync()

	return nil
}

// cellOf reads a position already known to be inside the board.
func cellOf(board *entity.Board, pos entity.Position) entity.Cell {
	cell, _ := board.CellAt(pos.Row, pos.Col)
	return cell
}
