package entity

// Player is one of the two sides. Red advances along columns, Green along rows.
type Player string

const (
	PlayerRed   Player = "red"
	PlayerGreen Player = "green"
)

func (that Player) Marker() Cell {
	if that == PlayerRed {
		return RedCell
	}
	return GreenCell
}

func (that Player) Opponent() Player {
	if that == PlayerRed {
		return PlayerGreen
	}
	return PlayerRed
}

// Forward returns the row and column step of the player's only move direction.
func (that Player) Forward() (int, int) {
	if that == PlayerRed {
		return 0, 1
	}
	return 1, 0
}

// IsFarEdge reports whether the position lies on the boundary the player exits through.
func (that Player) IsFarEdge(pos Position) bool {
	if that == PlayerRed {
		return pos.Col == BoardSize-1
	}
	return pos.Row == BoardSize-1
}
