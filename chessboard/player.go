package chessboard

// Player identifies a side.
type Player uint8

const (
	White Player = 0
	Black Player = 1
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == White {
		return Black
	}
	return White
}

// forward is the row direction pawns of this side advance in.
func (p Player) forward() int {
	if p == White {
		return 1
	}
	return -1
}

// pawnRow is the rank this side's pawns start on.
func (p Player) pawnRow() int {
	if p == White {
		return 1
	}
	return BoardSize - 2
}

func (p Player) String() string {
	if p == White {
		return "white"
	}
	return "black"
}
