package rules

import (
	"fmt"

	"github.com/rocketscienceinc/edgerun-backend/internal/apperror"
	"github.com/rocketscienceinc/edgerun-backend/internal/entity"
)

// HasNoTokens scans the whole grid for the player's marker.
func HasNoTokens(board *entity.Board, player entity.Player) bool {
	grid := board.Snapshot()
	marker := player.Marker()

	for row := range grid {
		for col := range grid[row] {
			if grid[row][col] == marker {
				return false
			}
		}
	}

	return true
}

// Outcome reports the winner: a side wins once the opponent has no tokens left. A board where
// both sides are empty is reported as entity.OutcomeAmbiguous with ErrSimultaneousDepletion.
func Outcome(board *entity.Board) (entity.Outcome, error) {
	redGone := HasNoTokens(board, entity.PlayerRed)
	greenGone := HasNoTokens(board, entity.PlayerGreen)

	switch {
	case redGone && greenGone:
		return entity.OutcomeAmbiguous, fmt.Errorf("%w: no tokens on the board", apperror.ErrSimultaneousDepletion)
	case greenGone:
		return entity.OutcomeRedWins, nil
	case redGone:
		return entity.OutcomeGreenWins, nil
	default:
		return entity.OutcomeInProgress, nil
	}
}
