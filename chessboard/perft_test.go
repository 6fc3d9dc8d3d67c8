package chessboard_test

import (
	"testing"

	cb "chessington/chessboard"
)

func TestPerftInitialPosition(t *testing.T) {
	board := cb.StartingPosition()
	for depth, want := range []uint64{1, 20, 400, 8902} {
		if got := cb.Perft(board, depth); got != want {
			t.Fatalf("perft depth%d: got %d want %d", depth, got, want)
		}
	}
	if got := board.ToFEN(); got != cb.StartingPosition().ToFEN() {
		t.Fatalf("perft left the board modified: %s", got)
	}
}

func TestPerftDivide(t *testing.T) {
	board := cb.StartingPosition()
	div := cb.PerftDivide(board, 2)
	if len(div) != 20 {
		t.Fatalf("expected 20 root moves, got %d", len(div))
	}
	var sum uint64
	for m, n := range div {
		if n != 20 {
			t.Errorf("%v: got %d want 20", m, n)
		}
		sum += n
	}
	if sum != 400 {
		t.Fatalf("divide total: got %d want 400", sum)
	}
	if len(cb.PerftDivide(board, 0)) != 0 {
		t.Fatalf("divide at depth 0 should be empty")
	}
}
