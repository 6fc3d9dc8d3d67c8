package chessboard

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Square is a (row, column) coordinate. Row 0 is White's back rank and
// column 0 is the a-file. Off-board squares are representable but are
// rejected by the board.
type Square struct {
	Row int
	Col int
}

// NoSquare marks the absence of a square (e.g. no en-passant target).
var NoSquare = Square{Row: -1, Col: -1}

// At returns the square at the given row and column.
func At(row, col int) Square { return Square{Row: row, Col: col} }

// Offset returns the square shifted by the given row and column deltas.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// Valid reports whether both coordinates lie in [0,7].
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// String returns algebraic coordinates, e.g. "e2" for (1,4). Off-board squares print "-".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.Col), '1' + byte(s.Row)})
}

// ParseSquare converts algebraic coordinates ("e4") to a Square.
func ParseSquare(coord string) (Square, error) {
	if len(coord) != 2 {
		return NoSquare, wrapf(ErrOutOfBounds, "square %q", coord)
	}
	file, rank := coord[0], coord[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, wrapf(ErrOutOfBounds, "square %q", coord)
	}
	return Square{Row: int(rank - '1'), Col: int(file - 'a')}, nil
}

// MustParseSquare is like ParseSquare but panics on invalid input. Intended
// for literals in tests and tools.
func MustParseSquare(coord string) Square {
	sq, err := ParseSquare(coord)
	if err != nil {
		panic(err)
	}
	return sq
}
