package chessboard

import "fmt"

// Kind is the colorless type of a piece.
type Kind uint8

const (
	KindNone Kind = iota
	KindPawn
	KindKnight
	KindBishop
	KindRook
	KindQueen
	KindKing
)

// kindValue holds the capture points for each kind, indexed by Kind.
var kindValue = [...]int{
	KindNone:   0,
	KindPawn:   1,
	KindKnight: 3,
	KindBishop: 3,
	KindRook:   5,
	KindQueen:  9,
	KindKing:   15,
}

// Value returns the number of points scored for capturing a piece of this kind.
func (k Kind) Value() int {
	if int(k) >= len(kindValue) {
		return 0
	}
	return kindValue[k]
}

func (k Kind) String() string {
	switch k {
	case KindPawn:
		return "pawn"
	case KindKnight:
		return "knight"
	case KindBishop:
		return "bishop"
	case KindRook:
		return "rook"
	case KindQueen:
		return "queen"
	case KindKing:
		return "king"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Piece is a chess piece placed on a Board. Pieces do not know where they
// stand: the board is the only record of position, and a piece is located
// by identity (pointer equality), never by value.
//
// The set of implementations is closed: *Pawn, *Knight, *Bishop, *Rook,
// *Queen and *King.
type Piece interface {
	Kind() Kind
	Player() Player
	// MovesFrom returns the destinations available to the piece when it
	// stands on from. The result is in a stable order.
	MovesFrom(b *Board, from Square) []Square

	sealed()
}

type owner struct{ player Player }

func (o owner) Player() Player { return o.player }
func (owner) sealed()          {}

type Pawn struct{ owner }
type Knight struct{ owner }
type Bishop struct{ owner }
type Rook struct{ owner }
type Queen struct{ owner }
type King struct{ owner }

func NewPawn(p Player) *Pawn     { return &Pawn{owner{p}} }
func NewKnight(p Player) *Knight { return &Knight{owner{p}} }
func NewBishop(p Player) *Bishop { return &Bishop{owner{p}} }
func NewRook(p Player) *Rook     { return &Rook{owner{p}} }
func NewQueen(p Player) *Queen   { return &Queen{owner{p}} }
func NewKing(p Player) *King     { return &King{owner{p}} }

func (*Pawn) Kind() Kind   { return KindPawn }
func (*Knight) Kind() Kind { return KindKnight }
func (*Bishop) Kind() Kind { return KindBishop }
func (*Rook) Kind() Kind   { return KindRook }
func (*Queen) Kind() Kind  { return KindQueen }
func (*King) Kind() Kind   { return KindKing }

// NewPiece creates a fresh piece of the given kind. It returns nil for KindNone
// or an unknown kind.
func NewPiece(k Kind, p Player) Piece {
	switch k {
	case KindPawn:
		return NewPawn(p)
	case KindKnight:
		return NewKnight(p)
	case KindBishop:
		return NewBishop(p)
	case KindRook:
		return NewRook(p)
	case KindQueen:
		return NewQueen(p)
	case KindKing:
		return NewKing(p)
	default:
		return nil
	}
}

// isPawn reports whether p is a pawn. A nil piece is not.
func isPawn(p Piece) bool {
	_, ok := p.(*Pawn)
	return ok
}

// pieceChar returns the FEN letter for a piece: upper case for White.
func pieceChar(p Piece) byte {
	var c byte
	switch p.Kind() {
	case KindPawn:
		c = 'p'
	case KindKnight:
		c = 'n'
	case KindBishop:
		c = 'b'
	case KindRook:
		c = 'r'
	case KindQueen:
		c = 'q'
	case KindKing:
		c = 'k'
	default:
		return '?'
	}
	if p.Player() == White {
		c -= 'a' - 'A'
	}
	return c
}

// pieceFromChar is the inverse of pieceChar. It returns nil for unknown letters.
func pieceFromChar(ch byte) Piece {
	player := Black
	if ch >= 'A' && ch <= 'Z' {
		player = White
		ch += 'a' - 'A'
	}
	switch ch {
	case 'p':
		return NewPawn(player)
	case 'n':
		return NewKnight(player)
	case 'b':
		return NewBishop(player)
	case 'r':
		return NewRook(player)
	case 'q':
		return NewQueen(player)
	case 'k':
		return NewKing(player)
	default:
		return nil
	}
}
