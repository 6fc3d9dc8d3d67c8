package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"chessington/chessboard"
	"chessington/internal/config"
	"chessington/internal/crosscheck"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	fen := flag.String("fen", cfg.FEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", cfg.Depth, "Perft depth (required unless -crosscheck)")
	divide := flag.Bool("divide", cfg.Divide, "Print per-move node counts at root")
	repeat := flag.Int("repeat", cfg.Repeat, "Repeat perft N times and report aggregate (for steadier timings)")
	cross := flag.Bool("crosscheck", cfg.CrossCheck, "Compare root moves against the reference generators")
	refs := flag.String("refs", strings.Join(cfg.References, ","), "Comma-separated reference generators for -crosscheck")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	board, err := chessboard.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *cross {
		os.Exit(crossCheck(board, *refs))
	}

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	if *divide {
		div := chessboard.PerftDivide(board, *depth)
		var sum uint64
		for _, m := range crosscheck.SortedMoves(div) {
			fmt.Printf("%s: %d\n", m, div[m])
			sum += div[m]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += chessboard.Perft(board, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

// crossCheck prints one line per reference and returns the exit status:
// 0 when every reference agrees, 1 on a difference, 2 on error.
func crossCheck(board *chessboard.Board, names string) int {
	status := 0
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		ref, ok := crosscheck.ByName(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown reference %q\n", name)
			return 2
		}
		rep, err := crosscheck.Compare(board, ref)
		if err != nil {
			fmt.Fprintf(os.Stderr, "crosscheck: %v\n", err)
			return 2
		}
		fmt.Println(rep)
		if !rep.Agree() {
			status = 1
		}
	}
	return status
}
