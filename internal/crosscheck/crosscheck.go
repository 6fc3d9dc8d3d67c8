// Package crosscheck compares the moves generated by chessboard with those of
// independent move generators.
//
// The reference generators produce strictly legal moves, so the move sets only
// agree on positions where no king is in check, no piece is pinned and no king
// can step onto an attacked square. Promotions are compared by from/to pair.
package crosscheck

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
	"golang.org/x/exp/maps"

	"chessington/chessboard"
)

// ErrNeedsKings is returned for positions the references cannot load.
var ErrNeedsKings = errors.New("reference generators need exactly one king per side")

// Reference is an independent legal-move generator.
type Reference interface {
	Name() string
	Moves(fen string) ([]chessboard.Move, error)
}

// Dragontooth wraps github.com/dylhunn/dragontoothmg.
type Dragontooth struct{}

func (Dragontooth) Name() string { return "dragontoothmg" }

func (Dragontooth) Moves(fen string) ([]chessboard.Move, error) {
	b := dragontoothmg.ParseFen(fen)
	legal := b.GenerateLegalMoves()
	out := make([]chessboard.Move, 0, len(legal))
	for _, m := range legal {
		out = append(out, chessboard.Move{From: fromIndex(int(m.From())), To: fromIndex(int(m.To()))})
	}
	return out, nil
}

// Notnil wraps github.com/notnil/chess.
type Notnil struct{}

func (Notnil) Name() string { return "notnil/chess" }

func (Notnil) Moves(fen string) ([]chessboard.Move, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("notnil: %w", err)
	}
	game := chess.NewGame(opt)
	valid := game.ValidMoves()
	out := make([]chessboard.Move, 0, len(valid))
	for _, m := range valid {
		out = append(out, chessboard.Move{From: fromIndex(int(m.S1())), To: fromIndex(int(m.S2()))})
	}
	return out, nil
}

// References returns every known reference generator.
func References() []Reference { return []Reference{Dragontooth{}, Notnil{}} }

// ByName returns the reference with the given name.
func ByName(name string) (Reference, bool) {
	for _, r := range References() {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}

// fromIndex maps a0..h8 indexing (a1=0, h1=7, a2=8) used by both references.
func fromIndex(idx int) chessboard.Square { return chessboard.At(idx/8, idx%8) }

// Report lists the differences between chessboard and one reference.
type Report struct {
	Reference string
	FEN       string
	Missing   []chessboard.Move // produced by the reference only
	Extra     []chessboard.Move // produced by chessboard only
}

// Agree reports whether both generators produced the same from/to pairs.
func (r Report) Agree() bool { return len(r.Missing) == 0 && len(r.Extra) == 0 }

func (r Report) String() string {
	if r.Agree() {
		return fmt.Sprintf("%s: agree", r.Reference)
	}
	return fmt.Sprintf("%s: missing %v extra %v", r.Reference, r.Missing, r.Extra)
}

// Compare generates the moves of the side to move on b and diffs them
// against ref.
func Compare(b *chessboard.Board, ref Reference) (Report, error) {
	if err := checkKings(b); err != nil {
		return Report{}, err
	}
	fen := b.ToFEN()
	theirs, err := ref.Moves(fen)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", ref.Name(), err)
	}
	ours := toSet(b.GenerateMoves())
	want := toSet(theirs)

	rep := Report{Reference: ref.Name(), FEN: fen}
	for m := range want {
		if !ours[m] {
			rep.Missing = append(rep.Missing, m)
		}
	}
	for m := range ours {
		if !want[m] {
			rep.Extra = append(rep.Extra, m)
		}
	}
	sortMoves(rep.Missing)
	sortMoves(rep.Extra)
	return rep, nil
}

// CompareAll runs Compare against every reference.
func CompareAll(b *chessboard.Board) ([]Report, error) {
	refs := References()
	out := make([]Report, 0, len(refs))
	for _, ref := range refs {
		rep, err := Compare(b, ref)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, nil
}

func checkKings(b *chessboard.Board) error {
	var kings [2]int
	for _, player := range []chessboard.Player{chessboard.White, chessboard.Black} {
		for _, sq := range b.Pieces(player) {
			if b.PieceAt(sq).Kind() == chessboard.KindKing {
				kings[player]++
			}
		}
	}
	if kings[chessboard.White] != 1 || kings[chessboard.Black] != 1 {
		return fmt.Errorf("white %d, black %d: %w", kings[chessboard.White], kings[chessboard.Black], ErrNeedsKings)
	}
	return nil
}

func toSet(moves []chessboard.Move) map[chessboard.Move]bool {
	set := make(map[chessboard.Move]bool, len(moves))
	for _, m := range moves {
		set[m] = true
	}
	return set
}

// SortedMoves returns the keys of a divide map in coordinate order.
func SortedMoves(div map[chessboard.Move]uint64) []chessboard.Move {
	moves := maps.Keys(div)
	sortMoves(moves)
	return moves
}

func sortMoves(moves []chessboard.Move) {
	sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })
}
