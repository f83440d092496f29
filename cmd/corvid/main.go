// corvid is a minimal line-oriented driver for the engine facade: it plays
// white or black interactively over stdin/stdout, reading the opponent's
// moves in long algebraic notation and replying with its own. It exists to
// exercise pkg/engine end to end; a real deployment would sit a protocol
// handler (UCI or otherwise) in front of pkg/engine instead.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bjorling/corvid/pkg/board"
	"github.com/bjorling/corvid/pkg/config"
	"github.com/bjorling/corvid/pkg/engine"
	"github.com/bjorling/corvid/pkg/movegen"
	"github.com/seekerror/logw"
)

var (
	configPath  = flag.String("config", "", "Path to a config.toml overriding evaluator/search defaults")
	engineColor = flag.String("color", "black", "Color the engine plays: white or black")
	depth       = flag.Int("depth", 0, "Search depth cap (0 uses the configured default)")
	timeBudget  = flag.Int("movetime", 2000, "Time budget per engine move, in milliseconds")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logw.Exitf(ctx, "load config: %v", err)
	}

	side := board.White
	if strings.EqualFold(*engineColor, "black") {
		side = board.Black
	}

	e := engine.New(ctx, "corvid",
		engine.WithOptions(engine.Options{DefaultDepth: cfg.Search.DefaultDepthPlies, HashEntries: cfg.Search.HashSizeEntries}),
		engine.WithWeights(cfg.Weights()),
	)

	pos := e.NewStartPosition()
	hist := movegen.NewHistory()
	hist.Push(pos.Hash())

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Printf("%v ready, engine plays %v\n", e.Name(), side)

	for {
		state := e.Classify(pos, hist)
		if state.Outcome != movegen.Ongoing {
			fmt.Printf("game over: %v\n", state.Outcome)
			return
		}

		if pos.Turn() == side {
			best := e.FindBestMove(ctx, pos, *depth, *timeBudget)
			fmt.Printf("corvid plays %v\n", best)
			if best == board.NoMoveNotation {
				return
			}

			pos, err = e.ApplyMove(ctx, pos, best)
			if err != nil {
				logw.Exitf(ctx, "engine produced an illegal move: %v", err)
			}
			hist.Push(pos.Hash())
			continue
		}

		fmt.Print("your move: ")
		if !scanner.Scan() {
			return
		}
		move := strings.TrimSpace(scanner.Text())
		if move == "" {
			continue
		}

		next, err := e.ApplyMove(ctx, pos, move)
		if err != nil {
			fmt.Printf("%v\n", err)
			continue
		}
		pos = next
		hist.Push(pos.Hash())
	}
}
