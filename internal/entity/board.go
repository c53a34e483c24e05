package entity

import (
	"fmt"

	"github.com/rocketscienceinc/edgerun-backend/internal/apperror"
)

// BoardSize is the side length of the square board.
const BoardSize = 5

type Cell string

const (
	EmptyCell Cell = ""
	RedCell   Cell = "R"
	GreenCell Cell = "G"
)

// Grid is a value copy of the board cells, indexed [row][col].
type Grid [BoardSize][BoardSize]Cell

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board holds the grid and the token lists derived from it. The grid is the source of truth,
// the lists are rebuilt by Resync.
type Board struct {
	grid  Grid
	red   []Position
	green []Position
}

// NewBoard returns a board in the starting configuration.
func NewBoard() *Board {
	board := &Board{}

	for row := 1; row < BoardSize-1; row++ {
		board.grid[row][0] = RedCell
	}

	for col := 1; col < BoardSize-1; col++ {
		board.grid[0][col] = GreenCell
	}

	// the top-left corner always starts empty
	board.grid[0][0] = EmptyCell

	board.Resync()

	return board
}

// NewBoardFromGrid builds a board from an arbitrary grid.
func NewBoardFromGrid(grid Grid) *Board {
	board := &Board{grid: grid}
	board.Resync()

	return board
}

func IsInside(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func (that *Board) IsInside(row, col int) bool {
	return IsInside(row, col)
}

func (that *Board) CellAt(row, col int) (Cell, error) {
	if !IsInside(row, col) {
		return EmptyCell, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	return that.grid[row][col], nil
}

// SetCell writes a cell without touching the token lists; call Resync after structural changes.
func (that *Board) SetCell(row, col int, cell Cell) error {
	if !IsInside(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	that.grid[row][col] = cell

	return nil
}

// Resync rebuilds both token lists with a row-major scan of the grid.
func (that *Board) Resync() {
	that.red = that.red[:0]
	that.green = that.green[:0]

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch that.grid[row][col] {
			case RedCell:
				that.red = append(that.red, Position{Row: row, Col: col})
			case GreenCell:
				that.green = append(that.green, Position{Row: row, Col: col})
			case EmptyCell:
			}
		}
	}
}

// Tokens returns a copy of the player's token list.
func (that *Board) Tokens(player Player) []Position {
	var tokens []Position
	if player == PlayerRed {
		tokens = that.red
	} else {
		tokens = that.green
	}

	return append([]Position{}, tokens...)
}

func (that *Board) Snapshot() Grid {
	return that.grid
}

func (that *Board) Clone() *Board {
	return NewBoardFromGrid(that.grid)
}
