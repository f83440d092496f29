// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
//
// FEN parsing is out of scope for this module (the external command handler
// owns position encoding), so this tool only exercises the standard start
// position; use -divide to break down node counts by the first move.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/bjorling/corvid/pkg/board"
	"github.com/bjorling/corvid/pkg/movegen"
	"github.com/seekerror/logw"
)

var (
	depth  = flag.Int("depth", 4, "Search depth")
	divide = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	pos := board.NewPosition()
	if *depth < 1 {
		logw.Exitf(ctx, "invalid depth %v", *depth)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := search(&pos, i, *divide && i == *depth)
		duration := time.Since(start)

		fmt.Printf("perft,%v,%v,%v\n", i, nodes, duration.Microseconds())
	}
}

func search(pos *board.Position, depth int, divide bool) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	for _, m := range movegen.LegalMoves(pos) {
		next := pos.MakeMove(m)
		count := search(&next, depth-1, false)
		if divide {
			fmt.Printf("%v: %v\n", m, count)
		}
		nodes += count
	}
	return nodes
}
