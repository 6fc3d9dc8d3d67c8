package chessboard_test

import (
	"testing"

	cb "chessington/chessboard"
)

func mustMove(t *testing.T, b *cb.Board, from, to cb.Square) cb.MoveState {
	t.Helper()
	st, err := b.MovePiece(from, to)
	if err != nil {
		t.Fatalf("MovePiece %v-%v: %v", from, to, err)
	}
	return st
}

func TestMovePieceRejectsEmptySource(t *testing.T) {
	b := cb.NewBoard()
	st := mustMove(t, b, cb.At(3, 3), cb.At(4, 3))
	if st.Applied() {
		t.Fatalf("move from empty square was applied")
	}
	if b.CurrentPlayer() != cb.White {
		t.Fatalf("turn changed after rejected move")
	}
}

func TestMovePieceRejectsWrongPlayer(t *testing.T) {
	b := cb.StartingPosition()
	before := b.ToFEN()
	st := mustMove(t, b, cb.At(6, 4), cb.At(4, 4))
	if st.Applied() {
		t.Fatalf("black moved on white's turn")
	}
	if b.CurrentPlayer() != cb.White {
		t.Fatalf("turn changed after rejected move")
	}
	if b.ToFEN() != before {
		t.Fatalf("board changed after rejected move: %s", b.ToFEN())
	}
}

func TestMovePieceAlternatesTurns(t *testing.T) {
	b := cb.StartingPosition()
	moves := []struct{ from, to cb.Square }{
		{cb.At(1, 4), cb.At(3, 4)},
		{cb.At(6, 4), cb.At(4, 4)},
		{cb.At(0, 6), cb.At(2, 5)},
		{cb.At(7, 1), cb.At(5, 2)},
	}
	player := cb.White
	for _, m := range moves {
		st := mustMove(t, b, m.from, m.to)
		if !st.Applied() {
			t.Fatalf("%v-%v rejected", m.from, m.to)
		}
		player = player.Opponent()
		if b.CurrentPlayer() != player {
			t.Fatalf("after %v-%v expected %v to move, got %v", m.from, m.to, player, b.CurrentPlayer())
		}
	}
}

func TestMovePieceCaptureScoresPoints(t *testing.T) {
	b := cb.NewBoard()
	rook := cb.NewRook(cb.White)
	knight := cb.NewKnight(cb.Black)
	_ = b.SetPiece(cb.At(0, 0), rook)
	_ = b.SetPiece(cb.At(5, 0), knight)

	st := mustMove(t, b, cb.At(0, 0), cb.At(5, 0))
	if st.Captured() != knight {
		t.Fatalf("expected the knight to be captured, got %v", st.Captured())
	}
	if st.CapturedAt() != cb.At(5, 0) {
		t.Fatalf("CapturedAt: got %v", st.CapturedAt())
	}
	if st.Points() != 3 {
		t.Fatalf("Points: got %d want 3", st.Points())
	}
	if b.PieceAt(cb.At(5, 0)) != rook || !b.IsSquareEmpty(cb.At(0, 0)) {
		t.Fatalf("rook not moved:\n%s", b)
	}
}

func TestPromotion(t *testing.T) {
	tests := []struct {
		name     string
		player   cb.Player
		from, to cb.Square
	}{
		{"white", cb.White, cb.At(6, 0), cb.At(7, 0)},
		{"black", cb.Black, cb.At(1, 7), cb.At(0, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := cb.NewBoard()
			b.SetCurrentPlayer(tt.player)
			pawn := cb.NewPawn(tt.player)
			_ = b.SetPiece(tt.from, pawn)

			st := mustMove(t, b, tt.from, tt.to)
			if !st.Applied() || !st.Promoted() {
				t.Fatalf("expected an applied promotion, got applied=%v promoted=%v", st.Applied(), st.Promoted())
			}
			got := b.PieceAt(tt.to)
			if got == nil || got.Kind() != cb.KindQueen || got.Player() != tt.player {
				t.Fatalf("expected %v queen on %v, got %v", tt.player, tt.to, got)
			}
			if !b.IsSquareEmpty(tt.from) {
				t.Fatalf("source square not cleared")
			}
			if _, err := b.FindPiece(pawn); err == nil {
				t.Fatalf("promoted pawn still on the board")
			}
		})
	}
}

func TestPromotionByCapture(t *testing.T) {
	b := cb.NewBoard()
	_ = b.SetPiece(cb.At(6, 1), cb.NewPawn(cb.White))
	_ = b.SetPiece(cb.At(7, 0), cb.NewRook(cb.Black))

	st := mustMove(t, b, cb.At(6, 1), cb.At(7, 0))
	if !st.Promoted() || st.Points() != 5 {
		t.Fatalf("expected promotion capturing a rook, got promoted=%v points=%d", st.Promoted(), st.Points())
	}
	if b.PieceAt(cb.At(7, 0)).Kind() != cb.KindQueen {
		t.Fatalf("expected a queen on a8, got %v", b.PieceAt(cb.At(7, 0)))
	}
}

func TestNonPawnOnLastRankDoesNotPromote(t *testing.T) {
	b := cb.NewBoard()
	rook := cb.NewRook(cb.White)
	_ = b.SetPiece(cb.At(6, 0), rook)
	st := mustMove(t, b, cb.At(6, 0), cb.At(7, 0))
	if st.Promoted() || b.PieceAt(cb.At(7, 0)) != rook {
		t.Fatalf("rook was replaced on the last rank")
	}
}

func TestEnPassantStateTracking(t *testing.T) {
	b := cb.StartingPosition()

	mustMove(t, b, cb.At(1, 4), cb.At(3, 4))
	if b.EnPassantSquare() != cb.At(3, 4) {
		t.Fatalf("after e2e4 expected target e4, got %v", b.EnPassantSquare())
	}

	mustMove(t, b, cb.At(6, 0), cb.At(5, 0))
	if b.EnPassantSquare() != cb.NoSquare {
		t.Fatalf("single step left target %v", b.EnPassantSquare())
	}

	mustMove(t, b, cb.At(1, 3), cb.At(3, 3))
	mustMove(t, b, cb.At(7, 1), cb.At(5, 2))
	if b.EnPassantSquare() != cb.NoSquare {
		t.Fatalf("knight move left target %v", b.EnPassantSquare())
	}

	// A rejected move leaves the state alone.
	mustMove(t, b, cb.At(1, 0), cb.At(3, 0))
	mustMove(t, b, cb.At(1, 1), cb.At(3, 1))
	if b.EnPassantSquare() != cb.At(3, 0) {
		t.Fatalf("rejected move changed target to %v", b.EnPassantSquare())
	}
}

func TestEnPassantCapture(t *testing.T) {
	for _, col := range []int{3, 5} {
		b := cb.NewBoard()
		white := cb.NewPawn(cb.White)
		black := cb.NewPawn(cb.Black)
		_ = b.SetPiece(cb.At(1, 4), white)
		_ = b.SetPiece(cb.At(3, col), black)

		mustMove(t, b, cb.At(1, 4), cb.At(3, 4))

		ok, err := cb.CanMoveTo(b, black, cb.At(2, 4))
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatalf("black pawn on col %d cannot capture en passant", col)
		}

		st, err := cb.MoveTo(b, black, cb.At(2, 4))
		if err != nil {
			t.Fatal(err)
		}
		if !st.EnPassant() || st.Captured() != white || st.CapturedAt() != cb.At(3, 4) {
			t.Fatalf("expected en passant capture of e4, got captured=%v at %v", st.Captured(), st.CapturedAt())
		}
		if !b.IsSquareEmpty(cb.At(3, 4)) {
			t.Fatalf("captured pawn still on e4")
		}
		if b.PieceAt(cb.At(2, 4)) != black {
			t.Fatalf("black pawn not on e3")
		}
		if b.EnPassantSquare() != cb.NoSquare {
			t.Fatalf("target not cleared after capture: %v", b.EnPassantSquare())
		}
	}
}

func TestEnPassantCaptureByWhite(t *testing.T) {
	b := cb.MustParseFEN("k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	if b.EnPassantSquare() != cb.At(4, 3) {
		t.Fatalf("FEN d6 should map to target d5, got %v", b.EnPassantSquare())
	}
	st := mustMove(t, b, cb.At(4, 4), cb.At(5, 3))
	if !st.EnPassant() || !b.IsSquareEmpty(cb.At(4, 3)) {
		t.Fatalf("d5 pawn not captured:\n%s", b)
	}
}

func TestUnmakeMoveRestoresPosition(t *testing.T) {
	fens := []string{
		cb.FENStartPos,
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		"1r5k/P7/8/8/8/8/8/7K w - - 0 1",
	}
	for _, fen := range fens {
		b := cb.MustParseFEN(fen)
		startFEN := b.ToFEN()
		startHash := b.Hash()
		for _, m := range b.GenerateMoves() {
			st, err := m.Apply(b)
			if err != nil || !st.Applied() {
				t.Fatalf("%s: %v not applied (err %v)", fen, m, err)
			}
			if b.Hash() == startHash {
				t.Errorf("%s: hash unchanged after %v", fen, m)
			}
			b.UnmakeMove(st)
			if b.ToFEN() != startFEN {
				t.Fatalf("%s: after %v unmake got %q", fen, m, b.ToFEN())
			}
			if b.Hash() != startHash {
				t.Fatalf("%s: hash mismatch after %v unmake", fen, m)
			}
			if err := b.Validate(); err != nil {
				t.Fatalf("%s: invalid after %v unmake: %v", fen, m, err)
			}
		}
	}
}
