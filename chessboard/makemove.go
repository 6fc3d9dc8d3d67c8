package chessboard

// MoveState records what MovePiece changed so the move can be reported and undone.
type MoveState struct {
	applied bool
	from    Square
	to      Square

	moved    Piece // piece that left from (the pawn, when promoting)
	placed   Piece // piece standing on to afterwards
	captured Piece // piece that stood on to, if any

	epCaptured Piece // pawn removed en passant, if any
	epSquare   Square

	prevEnPassant Square
	prevPlayer    Player
}

// Applied reports whether the board accepted the move.
func (st MoveState) Applied() bool { return st.applied }

// From returns the source square of the move.
func (st MoveState) From() Square { return st.from }

// To returns the destination square of the move.
func (st MoveState) To() Square { return st.to }

// Moved returns the piece that left the source square.
func (st MoveState) Moved() Piece { return st.moved }

// Promoted reports whether a pawn was replaced by a queen.
func (st MoveState) Promoted() bool { return st.applied && st.placed != st.moved }

// Captured returns the captured piece, or nil.
func (st MoveState) Captured() Piece {
	if st.captured != nil {
		return st.captured
	}
	return st.epCaptured
}

// CapturedAt returns where the captured piece stood, or NoSquare. For an
// en-passant capture this is the victim's square, not the destination.
func (st MoveState) CapturedAt() Square {
	switch {
	case st.captured != nil:
		return st.to
	case st.epCaptured != nil:
		return st.epSquare
	default:
		return NoSquare
	}
}

// EnPassant reports whether the move captured en passant.
func (st MoveState) EnPassant() bool { return st.epCaptured != nil }

// Points returns the capture value of everything the move removed.
func (st MoveState) Points() int {
	pts := 0
	if st.captured != nil {
		pts += st.captured.Kind().Value()
	}
	if st.epCaptured != nil {
		pts += st.epCaptured.Kind().Value()
	}
	return pts
}

// MovePiece moves the piece on from to to and resolves the side effects:
// capture, promotion to a queen, en-passant capture, the next en-passant
// target and the turn change.
//
// Requests to move from an empty square or to move the opponent's piece are
// ignored: the returned state reports Applied() == false and the board is
// unchanged. Only off-board squares produce an error.
func (b *Board) MovePiece(from, to Square) (st MoveState, err error) {
	if !from.Valid() {
		return st, wrapf(ErrOutOfBounds, "move from %d,%d", from.Row, from.Col)
	}
	if !to.Valid() {
		return st, wrapf(ErrOutOfBounds, "move to %d,%d", to.Row, to.Col)
	}
	st.from, st.to = from, to
	st.epSquare = NoSquare
	st.prevEnPassant = b.enPassant
	st.prevPlayer = b.currentPlayer

	moving := b.grid[from.Row][from.Col]
	if moving == nil || moving.Player() != b.currentPlayer {
		return st, nil
	}
	st.applied = true
	st.moved = moving
	st.captured = b.grid[to.Row][to.Col]

	b.grid[to.Row][to.Col] = moving
	st.placed = moving

	pawn := isPawn(moving)
	if pawn && (to.Row == 0 || to.Row == BoardSize-1) {
		promoted := NewQueen(moving.Player())
		b.grid[to.Row][to.Col] = promoted
		st.placed = promoted
	}

	if ep := b.enPassant; ep != NoSquare && pawn {
		landing := 5
		if ep.Row == 3 {
			landing = 2
		}
		if to.Col == ep.Col && to.Row == landing {
			st.epCaptured = b.grid[ep.Row][ep.Col]
			st.epSquare = ep
			b.grid[ep.Row][ep.Col] = nil
		}
	}

	b.grid[from.Row][from.Col] = nil

	if pawn && abs(to.Row-from.Row) == 2 {
		b.enPassant = to
	} else {
		b.enPassant = NoSquare
	}

	b.currentPlayer = b.currentPlayer.Opponent()
	return st, nil
}

// UnmakeMove restores the position from before the move recorded in st.
// States of rejected moves are ignored.
func (b *Board) UnmakeMove(st MoveState) {
	if !st.applied {
		return
	}
	b.grid[st.to.Row][st.to.Col] = st.captured
	b.grid[st.from.Row][st.from.Col] = st.moved
	if st.epCaptured != nil {
		b.grid[st.epSquare.Row][st.epSquare.Col] = st.epCaptured
	}
	b.enPassant = st.prevEnPassant
	b.currentPlayer = st.prevPlayer
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
