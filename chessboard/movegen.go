package chessboard

import "golang.org/x/exp/slices"

// direction is a (row, col) step vector.
type direction struct{ dRow, dCol int }

// Rook directions: N, S, E, W
var rookDirections = [4]direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Bishop directions: NE, NW, SE, SW
var bishopDirections = [4]direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// Queen and king share the union, rook vectors first.
var royalDirections = [8]direction{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

var knightOffsets = [8]direction{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

// probe appends the square one step from 'from' along d if it is on the board
// and either empty or held by an opponent of 'us'.
func (b *Board) probe(dst []Square, from Square, d direction, us Player) []Square {
	sq := from.Offset(d.dRow, d.dCol)
	if !sq.Valid() {
		return dst
	}
	if p := b.grid[sq.Row][sq.Col]; p == nil || p.Player() != us {
		dst = append(dst, sq)
	}
	return dst
}

// walk appends squares along d until the edge or the first occupied square,
// which is included only when it holds an opponent of 'us'.
func (b *Board) walk(dst []Square, from Square, d direction, us Player) []Square {
	for sq := from.Offset(d.dRow, d.dCol); sq.Valid(); sq = sq.Offset(d.dRow, d.dCol) {
		p := b.grid[sq.Row][sq.Col]
		if p == nil {
			dst = append(dst, sq)
			continue
		}
		if p.Player() != us {
			dst = append(dst, sq)
		}
		break
	}
	return dst
}

// MovesFrom returns forward one, forward two, capture left, capture right
// and en passant, in that order.
func (p *Pawn) MovesFrom(b *Board, from Square) []Square {
	return b.pawnMoves(make([]Square, 0, 4), from, p.player)
}

func (b *Board) pawnMoves(dst []Square, from Square, us Player) []Square {
	dir := us.forward()

	one := from.Offset(dir, 0)
	if one.Valid() && b.IsSquareEmpty(one) {
		dst = append(dst, one)
		two := one.Offset(dir, 0)
		if from.Row == us.pawnRow() && two.Valid() && b.IsSquareEmpty(two) {
			dst = append(dst, two)
		}
	}

	for _, dCol := range [2]int{-1, 1} {
		sq := from.Offset(dir, dCol)
		if !sq.Valid() {
			continue
		}
		if victim := b.grid[sq.Row][sq.Col]; victim != nil && victim.Player() != us {
			dst = append(dst, sq)
		}
	}

	if ep := b.enPassant; ep != NoSquare && ep.Row == from.Row && abs(ep.Col-from.Col) == 1 {
		victim := b.PieceAt(ep)
		landing := from.Offset(dir, ep.Col-from.Col)
		// An occupied landing square was already handled as a plain capture.
		if victim != nil && victim.Player() != us && landing.Valid() && b.IsSquareEmpty(landing) {
			dst = append(dst, landing)
		}
	}
	return dst
}

// MovesFrom returns the eight L-shaped jumps that land on the board and are
// not blocked by a friendly piece.
func (p *Knight) MovesFrom(b *Board, from Square) []Square {
	return b.knightMoves(make([]Square, 0, 8), from, p.player)
}

func (b *Board) knightMoves(dst []Square, from Square, us Player) []Square {
	for _, d := range knightOffsets {
		dst = b.probe(dst, from, d, us)
	}
	return dst
}

func (p *Bishop) MovesFrom(b *Board, from Square) []Square {
	return b.slide(make([]Square, 0, 13), from, bishopDirections[:], p.player)
}

func (p *Rook) MovesFrom(b *Board, from Square) []Square {
	return b.slide(make([]Square, 0, 14), from, rookDirections[:], p.player)
}

func (p *Queen) MovesFrom(b *Board, from Square) []Square {
	return b.slide(make([]Square, 0, 27), from, royalDirections[:], p.player)
}

// MovesFrom returns one step in each of the eight directions.
func (p *King) MovesFrom(b *Board, from Square) []Square {
	return b.kingMoves(make([]Square, 0, 8), from, p.player)
}

func (b *Board) kingMoves(dst []Square, from Square, us Player) []Square {
	for _, d := range royalDirections {
		dst = b.probe(dst, from, d, us)
	}
	return dst
}

func (b *Board) slide(dst []Square, from Square, dirs []direction, us Player) []Square {
	for _, d := range dirs {
		dst = b.walk(dst, from, d, us)
	}
	return dst
}

// movesInto appends the destinations of the piece on from to dst.
func (b *Board) movesInto(dst []Square, from Square, p Piece) []Square {
	us := p.Player()
	switch p.Kind() {
	case KindPawn:
		return b.pawnMoves(dst, from, us)
	case KindKnight:
		return b.knightMoves(dst, from, us)
	case KindBishop:
		return b.slide(dst, from, bishopDirections[:], us)
	case KindRook:
		return b.slide(dst, from, rookDirections[:], us)
	case KindQueen:
		return b.slide(dst, from, royalDirections[:], us)
	case KindKing:
		return b.kingMoves(dst, from, us)
	default:
		return dst
	}
}

// AvailableMoves locates p on the board and returns the squares it may move to.
func AvailableMoves(b *Board, p Piece) ([]Square, error) {
	from, err := b.FindPiece(p)
	if err != nil {
		return nil, err
	}
	return p.MovesFrom(b, from), nil
}

// CanMoveTo reports whether to is among the available moves of p.
func CanMoveTo(b *Board, p Piece, to Square) (bool, error) {
	moves, err := AvailableMoves(b, p)
	if err != nil {
		return false, err
	}
	return slices.Contains(moves, to), nil
}

// MoveTo locates p on the board and moves it to 'to'. The usual MovePiece
// rules apply; moving out of turn is a silent no-op.
func MoveTo(b *Board, p Piece, to Square) (MoveState, error) {
	from, err := b.FindPiece(p)
	if err != nil {
		return MoveState{}, err
	}
	return b.MovePiece(from, to)
}

// GenerateMoves returns every move available to the side to move.
func (b *Board) GenerateMoves() []Move { return b.GenerateMovesInto(make([]Move, 0, 64)) }

// GenerateMovesInto appends every move available to the side to move to dst.
// Pieces are visited in row-major order, each in its own stable order.
func (b *Board) GenerateMovesInto(dst []Move) []Move {
	var buf [27]Square
	us := b.currentPlayer
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.grid[row][col]
			if p == nil || p.Player() != us {
				continue
			}
			from := Square{Row: row, Col: col}
			for _, to := range b.movesInto(buf[:0], from, p) {
				dst = append(dst, Move{From: from, To: to})
			}
		}
	}
	return dst
}

// Perft counts the move sequences of the given length from the position.
// Moves are the pseudo-legal moves produced by GenerateMoves.
func Perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(b, depth, &pc)
}

type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]Move, 0, 128)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func perftRec(b *Board, depth int, pc *perftCtx) uint64 {
	moves := b.GenerateMovesInto(pc.bufFor(depth))
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		st, err := b.MovePiece(m.From, m.To)
		if err != nil || !st.Applied() {
			continue
		}
		nodes += perftRec(b, depth-1, pc)
		b.UnmakeMove(st)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.GenerateMoves() {
		st, err := b.MovePiece(m.From, m.To)
		if err != nil || !st.Applied() {
			continue
		}
		result[m] = Perft(b, depth-1)
		b.UnmakeMove(st)
	}
	return result
}
