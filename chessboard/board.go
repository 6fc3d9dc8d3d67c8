package chessboard

import "fmt"

// Board holds piece placement and the state needed to resolve the next move.
// A Board is not safe for concurrent use; guard the whole value with one
// mutex if it must be shared.
type Board struct {
	// Piece placement, indexed [row][col]; nil means empty.
	grid [BoardSize][BoardSize]Piece

	// Side to move
	currentPlayer Player

	// Square of the pawn that just advanced two ranks, otherwise NoSquare
	enPassant Square
}

// backRank lists the piece kinds of the first rank from the a-file to the h-file.
var backRank = [BoardSize]Kind{
	KindRook, KindKnight, KindBishop, KindQueen, KindKing, KindBishop, KindKnight, KindRook,
}

// NewBoard returns an empty board with White to move.
func NewBoard() *Board {
	return &Board{currentPlayer: White, enPassant: NoSquare}
}

// StartingPosition returns a board set up with the standard opening arrangement.
func StartingPosition() *Board {
	b := NewBoard()
	for col := 0; col < BoardSize; col++ {
		b.grid[0][col] = NewPiece(backRank[col], White)
		b.grid[1][col] = NewPawn(White)
		b.grid[BoardSize-2][col] = NewPawn(Black)
		b.grid[BoardSize-1][col] = NewPiece(backRank[col], Black)
	}
	return b
}

// CurrentPlayer reports which side is to move.
func (b *Board) CurrentPlayer() Player { return b.currentPlayer }

// SetCurrentPlayer updates the side to move. Normal move making toggles automatically.
func (b *Board) SetCurrentPlayer(p Player) { b.currentPlayer = p }

// EnPassantSquare returns the square of the pawn that may be captured en
// passant, or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.enPassant }

// SetEnPassantSquare records sq as the en-passant target. NoSquare clears it.
func (b *Board) SetEnPassantSquare(sq Square) error {
	if sq != NoSquare && !sq.Valid() {
		return wrapf(ErrOutOfBounds, "en passant target %d,%d", sq.Row, sq.Col)
	}
	b.enPassant = sq
	return nil
}

// SquareExists reports whether sq lies on the board.
func (b *Board) SquareExists(sq Square) bool { return sq.Valid() }

// SetPiece writes p into sq, replacing whatever was there. A nil piece clears the square.
func (b *Board) SetPiece(sq Square, p Piece) error {
	if !sq.Valid() {
		return wrapf(ErrOutOfBounds, "set piece at %d,%d", sq.Row, sq.Col)
	}
	b.grid[sq.Row][sq.Col] = p
	return nil
}

// GetPiece returns the piece on sq, or nil if the square is empty.
func (b *Board) GetPiece(sq Square) (Piece, error) {
	if !sq.Valid() {
		return nil, wrapf(ErrOutOfBounds, "get piece at %d,%d", sq.Row, sq.Col)
	}
	return b.grid[sq.Row][sq.Col], nil
}

// PieceAt returns the piece on sq. Off-board squares read as empty.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return nil
	}
	return b.grid[sq.Row][sq.Col]
}

// IsSquareEmpty reports whether no piece stands on sq. Off-board squares are empty.
func (b *Board) IsSquareEmpty(sq Square) bool { return b.PieceAt(sq) == nil }

// FindPiece returns the square holding exactly this piece.
func (b *Board) FindPiece(p Piece) (Square, error) {
	if p != nil {
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				if b.grid[row][col] == p {
					return Square{Row: row, Col: col}, nil
				}
			}
		}
	}
	return NoSquare, fmt.Errorf("find %v: %w", describe(p), ErrPieceNotFound)
}

// Pieces returns the squares holding pieces of player, in row-major order.
func (b *Board) Pieces(player Player) []Square {
	out := make([]Square, 0, 16)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.grid[row][col]; p != nil && p.Player() == player {
				out = append(out, Square{Row: row, Col: col})
			}
		}
	}
	return out
}

// Material sums the capture value of every piece player has on the board.
func (b *Board) Material(player Player) int {
	total := 0
	for _, sq := range b.Pieces(player) {
		total += b.grid[sq.Row][sq.Col].Kind().Value()
	}
	return total
}

// Validate checks the board invariants: a piece identity stands on at most
// one square, and an en-passant target, when set, holds a pawn on row 3 or 4.
func (b *Board) Validate() error {
	seen := make(map[Piece]Square, 32)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.grid[row][col]
			if p == nil {
				continue
			}
			sq := Square{Row: row, Col: col}
			if prev, dup := seen[p]; dup {
				return fmt.Errorf("%v on both %v and %v", describe(p), prev, sq)
			}
			seen[p] = sq
		}
	}
	if b.enPassant == NoSquare {
		return nil
	}
	if !b.enPassant.Valid() {
		return wrapf(ErrOutOfBounds, "en passant target %d,%d", b.enPassant.Row, b.enPassant.Col)
	}
	if b.enPassant.Row != 3 && b.enPassant.Row != 4 {
		return fmt.Errorf("en passant target %v not on a double-step rank", b.enPassant)
	}
	if !isPawn(b.PieceAt(b.enPassant)) {
		return fmt.Errorf("en passant target %v does not hold a pawn", b.enPassant)
	}
	return nil
}

// String renders the board with row 7 at the top, one FEN letter per square
// and '.' for empty squares.
func (b *Board) String() string {
	buf := make([]byte, 0, (BoardSize+1)*BoardSize)
	for row := BoardSize - 1; row >= 0; row-- {
		for col := 0; col < BoardSize; col++ {
			if p := b.grid[row][col]; p != nil {
				buf = append(buf, pieceChar(p))
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func describe(p Piece) string {
	if p == nil {
		return "<nil>"
	}
	return p.Player().String() + " " + p.Kind().String()
}
