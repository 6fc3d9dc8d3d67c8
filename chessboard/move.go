package chessboard

// Move is a from/to pair produced by move generation.
type Move struct {
	From Square
	To   Square
}

// String produces the coordinate form of the move, e.g. "e2e4".
func (m Move) String() string { return m.From.String() + m.To.String() }

// Apply plays the move on b. See Board.MovePiece.
func (m Move) Apply(b *Board) (MoveState, error) { return b.MovePiece(m.From, m.To) }

// ParseMove converts coordinate notation ("e2e4") into a Move. A trailing
// promotion letter is accepted and ignored since pawns always promote to a queen.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, wrapf(ErrInvalidMove, "move %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, wrapf(ErrInvalidMove, "move %q: %v", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, wrapf(ErrInvalidMove, "move %q: %v", s, err)
	}
	return Move{From: from, To: to}, nil
}
