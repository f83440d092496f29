// Package config loads evaluator weights and search limits from a TOML file,
// following the layout frankkopp/FrankyGo uses for its own config.toml:
// defaults are compiled in, and a file on disk overrides only the fields it
// sets.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"

	"github.com/bjorling/corvid/pkg/eval"
)

// Search holds the search-side limits a config file may override.
type Search struct {
	// DefaultDepthPlies is the depth used when a caller does not specify one.
	DefaultDepthPlies int
	// HashSizeEntries sizes the transposition table (rounded to a power of
	// two by tt.New).
	HashSizeEntries int
}

// Eval holds the evaluator weights a config file may override. Fields the
// file does not set keep their compiled-in DefaultWeights() value; see Load.
type Eval struct {
	DoubledPawnPenalty  int32
	IsolatedPawnPenalty int32
	PassedPawnBonus     int32
	ConnectedPawnBonus  int32
	PawnShieldBonus     int32
	OpenKingFilePenalty int32
	HalfOpenFilePenalty int32
}

// Config is the top-level decoded shape of a config.toml file.
type Config struct {
	Search Search
	Eval   Eval
}

// Default returns the compiled-in configuration: eval.DefaultWeights()'s
// tunables and a conservative search depth/hash size suitable for a single
// synchronous search goroutine.
func Default() Config {
	w := eval.DefaultWeights()
	return Config{
		Search: Search{
			DefaultDepthPlies: 6,
			HashSizeEntries:   1 << 20,
		},
		Eval: Eval{
			DoubledPawnPenalty:  int32(w.DoubledPawnPenalty),
			IsolatedPawnPenalty: int32(w.IsolatedPawnPenalty),
			PassedPawnBonus:     int32(w.PassedPawnBonus),
			ConnectedPawnBonus:  int32(w.ConnectedPawnBonus),
			PawnShieldBonus:     int32(w.PawnShieldBonus),
			OpenKingFilePenalty: int32(w.OpenKingFilePenalty),
			HalfOpenFilePenalty: int32(w.HalfOpenFilePenalty),
		},
	}
}

// Load decodes path into the compiled-in defaults, so a partial file (e.g.
// just a [Search] table) leaves every other field at its default. A missing
// file is not an error: the caller gets Default() back unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("decode config %q: %w", path, err)
	}
	return cfg, nil
}

// Weights builds an eval.Weights from c, starting from eval.DefaultWeights()
// and applying only the pawn/king tunables a config file may override. The
// material table and piece-square tables are not config-tunable; they are
// part of the evaluator's grounded behavior, not a deployment knob.
func (c Config) Weights() eval.Weights {
	w := eval.DefaultWeights()
	w.DoubledPawnPenalty = eval.Score(c.Eval.DoubledPawnPenalty)
	w.IsolatedPawnPenalty = eval.Score(c.Eval.IsolatedPawnPenalty)
	w.PassedPawnBonus = eval.Score(c.Eval.PassedPawnBonus)
	w.ConnectedPawnBonus = eval.Score(c.Eval.ConnectedPawnBonus)
	w.PawnShieldBonus = eval.Score(c.Eval.PawnShieldBonus)
	w.OpenKingFilePenalty = eval.Score(c.Eval.OpenKingFilePenalty)
	w.HalfOpenFilePenalty = eval.Score(c.Eval.HalfOpenFilePenalty)
	return w
}
