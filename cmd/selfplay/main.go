// selfplay pits two AI presets against each other without a terminal UI and
// reports the win/loss/draw tally.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"reversi-local/ai"
	"reversi-local/board"
	"reversi-local/logging"
	"reversi-local/record"
)

type result struct {
	Winner     board.Tile
	Light      int
	Dark       int
	Plies      int
	Transcript string
}

// tally counts results from Light's point of view.
type tally struct {
	mu         sync.Mutex
	lightWins  int
	darkWins   int
	draws      int
	lightDiscs int
	darkDiscs  int
}

func (t *tally) add(r result) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch r.Winner {
	case board.Light:
		t.lightWins++
	case board.Dark:
		t.darkWins++
	default:
		t.draws++
	}
	t.lightDiscs += r.Light
	t.darkDiscs += r.Dark
}

// playGame plays one game to the end from start with Light to move.
// A side with no legal move passes.
func playGame(ctx context.Context, start board.Board, light, dark *ai.Agent) (result, error) {
	b := start
	turn := board.Light
	tree := record.NewGameTree(b, turn)

	for !b.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return result{}, err
		}
		if !b.HasAnyLegalMove(turn) {
			tree.AddMove(record.Move{Tile: turn, Pass: true}, b, turn.Invert())
			turn = turn.Invert()
			continue
		}
		agent := light
		if turn == board.Dark {
			agent = dark
		}
		c, lines := agent.PickMove(b, turn)
		next, err := b.Update(turn, c, lines)
		if err != nil {
			return result{}, errors.Wrapf(err, "ply %d", tree.Ply()+1)
		}
		tree.AddMove(record.Move{Tile: turn, Coord: c}, next, turn.Invert())
		b = next
		turn = turn.Invert()
	}

	lightCount, darkCount := b.DiscCounts()
	return result{
		Winner:     b.Winner(),
		Light:      lightCount,
		Dark:       darkCount,
		Plies:      tree.Ply(),
		Transcript: tree.Transcript(),
	}, nil
}

func presetConfig(name string, size int) (ai.Config, error) {
	cfg, ok := ai.Preset(name)
	if !ok {
		return ai.Config{}, errors.Errorf("unknown preset %q (want one of %v)", name, ai.Levels)
	}
	cfg = cfg.ForSize(size)
	if err := cfg.Validate(size); err != nil {
		return ai.Config{}, errors.Wrapf(err, "preset %s", name)
	}
	return cfg, nil
}

// seeded gives each agent its own source, so a seeded game replays the same
// regardless of worker scheduling. Seed 0 keeps the agent's default source.
func seeded(seed int64, n int) []ai.Option {
	if seed == 0 {
		return nil
	}
	return []ai.Option{ai.WithRandom(rand.New(rand.NewSource(seed + int64(n))))}
}

func run(ctx context.Context, log zerolog.Logger, games, workers, size int, lightName, darkName string, seed int64) (*tally, error) {
	lightCfg, err := presetConfig(lightName, size)
	if err != nil {
		return nil, err
	}
	darkCfg, err := presetConfig(darkName, size)
	if err != nil {
		return nil, err
	}

	t := &tally{}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < games; i++ {
		i := i
		g.Go(func() error {
			light := ai.New(lightCfg, seeded(seed, 2*i)...)
			dark := ai.New(darkCfg, seeded(seed, 2*i+1)...)

			start := time.Now()
			r, err := playGame(ctx, board.Reset(size), light, dark)
			if err != nil {
				return errors.Wrapf(err, "game %d", i+1)
			}
			t.add(r)
			log.Info().
				Int("game", i+1).
				Stringer("winner", r.Winner).
				Int("light", r.Light).
				Int("dark", r.Dark).
				Int("plies", r.Plies).
				Dur("elapsed", time.Since(start)).
				Msg("game-over")
			log.Debug().Int("game", i+1).Str("moves", r.Transcript).Msg("transcript")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return t, err
	}
	return t, nil
}

func main() {
	games := flag.Int("games", 10, "Number of games to play")
	workers := flag.Int("workers", runtime.NumCPU(), "Number of games played concurrently")
	size := flag.Int("size", board.DefaultSize, "Board size (4, 6, or 8)")
	lightName := flag.String("light", "expert", fmt.Sprintf("Preset playing Light, one of %v", ai.Levels))
	darkName := flag.String("dark", "adept", fmt.Sprintf("Preset playing Dark, one of %v", ai.Levels))
	seed := flag.Int64("seed", 0, "Random seed; 0 uses a fresh source per agent")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log, err := logging.Console(os.Stderr, *level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *games < 1 || *workers < 1 {
		log.Error().Int("games", *games).Int("workers", *workers).Msg("games and workers must be positive")
		os.Exit(2)
	}
	switch *size {
	case 4, 6, 8:
	default:
		log.Error().Int("size", *size).Msg("unsupported board size")
		os.Exit(2)
	}

	start := time.Now()
	t, err := run(context.Background(), log, *games, *workers, *size, *lightName, *darkName, *seed)
	if err != nil {
		log.Error().Err(err).Msg("selfplay")
		os.Exit(1)
	}

	played := t.lightWins + t.darkWins + t.draws
	log.Info().
		Str("light", *lightName).
		Str("dark", *darkName).
		Int("games", played).
		Int("light_wins", t.lightWins).
		Int("dark_wins", t.darkWins).
		Int("draws", t.draws).
		Float64("light_avg_discs", float64(t.lightDiscs)/float64(played)).
		Float64("dark_avg_discs", float64(t.darkDiscs)/float64(played)).
		Dur("elapsed", time.Since(start)).
		Msg("summary")
	fmt.Printf("%s (Light) vs %s (Dark): W %d / L %d / D %d\n",
		*lightName, *darkName, t.lightWins, t.darkWins, t.draws)
}
