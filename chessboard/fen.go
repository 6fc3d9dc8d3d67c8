package chessboard

import (
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string and returns a new Board set up to that position.
//
// Castling rights and the move clocks are validated but not kept. The FEN
// en-passant field names the square the capturing pawn lands on; the board
// stores the square of the pawn that may be captured instead.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, wrapf(ErrInvalidFEN, "not enough fields")
	}

	board := NewBoard()

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != BoardSize {
		return nil, wrapf(ErrInvalidFEN, "expected %d ranks, got %d", BoardSize, len(ranks))
	}
	for i, rankStr := range ranks {
		row := BoardSize - 1 - i
		col := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == nil {
				return nil, wrapf(ErrInvalidFEN, "unrecognized piece character %q", ch)
			}
			if col >= BoardSize {
				return nil, wrapf(ErrInvalidFEN, "too many squares in rank %d", row+1)
			}
			board.grid[row][col] = piece
			col++
		}
		if col != BoardSize {
			return nil, wrapf(ErrInvalidFEN, "rank %d does not have %d columns", row+1, BoardSize)
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		board.currentPlayer = White
	case "b":
		board.currentPlayer = Black
	default:
		return nil, wrapf(ErrInvalidFEN, "side to move must be 'w' or 'b'")
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			if !strings.ContainsRune("KQkq", ch) {
				return nil, wrapf(ErrInvalidFEN, "invalid castling rights character %q", ch)
			}
		}
	}

	// 4. En passant
	if fields[3] != "-" {
		landing, err := ParseSquare(fields[3])
		if err != nil {
			return nil, wrapf(ErrInvalidFEN, "en passant square %q", fields[3])
		}
		switch landing.Row {
		case 2:
			board.enPassant = landing.Offset(1, 0)
		case 5:
			board.enPassant = landing.Offset(-1, 0)
		default:
			return nil, wrapf(ErrInvalidFEN, "en passant square %v not on rank 3 or 6", landing)
		}
	}

	// 5, 6. Clocks
	for _, f := range fields[4:min(len(fields), 6)] {
		if _, err := strconv.Atoi(f); err != nil {
			return nil, wrapf(ErrInvalidFEN, "clock %q is not a number", f)
		}
	}
	return board, nil
}

// MustParseFEN is like ParseFEN but panics on invalid input.
func MustParseFEN(fen string) *Board {
	b, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// ToFEN produces the FEN string of the board. Castling is always "-" and the
// clocks are "0 1".
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for row := BoardSize - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < BoardSize; col++ {
			p := b.grid[row][col]
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(pieceChar(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	if b.currentPlayer == White {
		sb.WriteString(" w - ")
	} else {
		sb.WriteString(" b - ")
	}

	sb.WriteString(b.enPassantLanding().String())
	sb.WriteString(" 0 1")
	return sb.String()
}

// enPassantLanding returns the square behind the en-passant target, i.e. the
// square a capturing pawn lands on, or NoSquare.
func (b *Board) enPassantLanding() Square {
	switch {
	case !b.enPassant.Valid():
		return NoSquare
	case b.enPassant.Row == 3:
		return b.enPassant.Offset(-1, 0)
	default:
		return b.enPassant.Offset(1, 0)
	}
}
