package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/dylhunn/dragontoothmg"

	"github.com/hailam/chessrules/internal/board"
)

var (
	depth      = flag.Int("depth", 4, "perft depth")
	divide     = flag.Bool("divide", false, "print node counts per root move")
	verify     = flag.Bool("verify", false, "cross-check the total against dragontoothmg")
	moves      = flag.String("moves", "", "space separated UCI moves to play from the start first")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run does the work so deferred profile cleanup finishes before main exits.
func run() error {
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	s := board.NewGameState()
	if err := playMoves(s, strings.Fields(*moves)); err != nil {
		return err
	}
	fmt.Println(s.FEN())

	start := time.Now()
	var nodes int64
	if *divide {
		for _, e := range s.Divide(*depth) {
			fmt.Printf("%s: %d\n", e.Move.UCI(), e.Nodes)
			nodes += e.Nodes
		}
	} else {
		nodes = s.Perft(*depth)
	}
	elapsed := time.Since(start)
	fmt.Printf("perft(%d) = %d in %v (%.0f nps)\n", *depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())

	if *verify {
		ref := dragontoothmg.ParseFen(s.FEN())
		if want := referencePerft(&ref, *depth); want != nodes {
			return fmt.Errorf("mismatch: dragontoothmg counts %d, got %d", want, nodes)
		}
		fmt.Println("dragontoothmg agrees")
	}
	return nil
}

// playMoves applies UCI moves such as "e2e4" in order.
func playMoves(s *board.GameState, list []string) error {
	for _, uci := range list {
		found := false
		for _, m := range s.LegalMoves() {
			if m.UCI() == uci || m.String() == uci {
				s.MakeMove(m)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("illegal move %q in position %s", uci, s.FEN())
		}
	}
	return nil
}

// referencePerft counts with dragontoothmg, skipping underpromotions.
func referencePerft(b *dragontoothmg.Board, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var nodes int64
	for _, m := range b.GenerateLegalMoves() {
		if p := m.Promote(); p != dragontoothmg.Nothing && p != dragontoothmg.Queen {
			continue
		}
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}
