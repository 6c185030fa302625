// main.go implements a debugging and benchmarking tool for the move
// generator. It is internal, as it is only used for testing purposes.

package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/kestrelchess/kestrel"
)

// result holds the breakdown printed when the verbose flag is used.
type result struct {
	nodes        int
	captures     int
	epCaptures   int
	castles      int
	promotions   int
	checks       int
	doubleChecks int
}

// perft walks the move generation tree of strictly legal moves to the
// given depth and counts the visited leaf nodes.
//
// See https://www.chessprogramming.org/Perft_Results
func perft(p *kestrel.Position, depth int) int {
	l := p.AllLegalMoves()

	if depth == 1 {
		return int(l.LastMoveIndex)
	}

	nodes := 0
	for i := range l.LastMoveIndex {
		p.MakeMove(l.Moves[i])
		nodes += perft(p, depth-1)
		p.UnmakeMove()
	}

	return nodes
}

// perftVerbose follows the same principle as perft, but accumulates a
// move-kind breakdown into r and, at the root, logs the per-move
// subtree node count. Use this to find invalid branches in the move
// generation tree, not to measure performance.
func perftVerbose(p *kestrel.Position, depth int, r *result, isRoot bool) int {
	l := p.AllLegalMoves()

	if depth == 1 {
		for i := range l.LastMoveIndex {
			m := l.Moves[i]
			if m.IsCapture() {
				r.captures++
				if p.GetPieceFromSquare(m.To()) == kestrel.PieceNone {
					r.epCaptures++
				}
			}
			if m.IsCastling() {
				r.castles++
			}
			if m.IsPromotion() {
				r.promotions++
			}
			if isRoot {
				log.Printf("%s 1", kestrel.Move2UCI(m))
			}
		}
		return int(l.LastMoveIndex)
	}

	nodes := 0
	for i := range l.LastMoveIndex {
		m := l.Moves[i]

		p.MakeMove(m)
		if checkers := p.NumCheckers(); checkers > 0 {
			r.checks++
			if checkers >= 2 {
				r.doubleChecks++
			}
		}

		cnt := perftVerbose(p, depth-1, r, false)
		if isRoot {
			log.Printf("%s %d", kestrel.Move2UCI(m), cnt)
		}
		nodes += cnt

		p.UnmakeMove()
	}

	return nodes
}

// main runs perft (or its verbose variant) and measures execution
// time.
func main() {
	depth := flag.Int("depth", 1, "Performance test depth")
	verbose := flag.Bool("verbose", false, "Whether to print the debug info")
	fen := flag.String("fen", kestrel.InitialPos, "FEN of the position to search from")
	cpuprofile := flag.String("cpuprofile", "", "File to write a cpu profile")
	memprofile := flag.String("memprofile", "", "File to write a memory profile")

	flag.Parse()

	kestrel.InitAttackTables()
	kestrel.InitZobristKeys()

	r := &result{}
	p := kestrel.ParseFEN(*fen)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	start := time.Now()
	if *verbose {
		r.nodes = perftVerbose(&p, *depth, r, true)
	} else {
		r.nodes = perft(&p, *depth)
	}
	elapsed := time.Since(start)

	if *verbose {
		log.Printf("\nRoot position:\n%s\n\n\t%s\n\n", position(p), *fen)
		log.Printf("depth=%d nodes=%d captures=%d ep=%d castles=%d promotions=%d checks=%d double_checks=%d",
			*depth, r.nodes, r.captures, r.epCaptures, r.castles, r.promotions, r.checks, r.doubleChecks)
	} else {
		log.Printf("Nodes reached: %d", r.nodes)
	}
	log.Printf("Elapsed time: %s", elapsed)
}

// position formats a full chess position into a human-readable
// board diagram, for --verbose debugging output.
func position(p kestrel.Position) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + 1 + '0')
		b.WriteString("  ")

		for file := range 8 {
			square := rank*8 + file
			symbol := byte('.')
			if pc := p.GetPieceFromSquare(square); pc != kestrel.PieceNone {
				symbol = kestrel.PieceSymbols[pc]
			}
			b.WriteByte(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}

	b.WriteString("   a  b  c  d  e  f  g  h\n")

	return b.String()
}
