package main

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"reversi-local/ai"
	"reversi-local/board"
)

func TestPlayGameEndsWithFullCount(t *testing.T) {
	cfg := ai.Level(2).ForSize(4)
	light := ai.New(cfg, ai.WithRandom(rand.New(rand.NewSource(1))))
	dark := ai.New(cfg, ai.WithRandom(rand.New(rand.NewSource(2))))

	r, err := playGame(context.Background(), board.Reset(4), light, dark)
	if err != nil {
		t.Fatal(err)
	}
	if r.Light+r.Dark > 16 {
		t.Errorf("disc count %d+%d exceeds board", r.Light, r.Dark)
	}
	switch {
	case r.Light > r.Dark && r.Winner != board.Light,
		r.Dark > r.Light && r.Winner != board.Dark,
		r.Light == r.Dark && r.Winner != board.Empty:
		t.Errorf("winner %v does not match %d-%d", r.Winner, r.Light, r.Dark)
	}
	if got := len(strings.Fields(r.Transcript)); got != r.Plies {
		t.Errorf("transcript has %d tokens, want %d", got, r.Plies)
	}
}

func TestPlayGameSeededIsReproducible(t *testing.T) {
	play := func() result {
		cfg := ai.Level(1).ForSize(6)
		light := ai.New(cfg, seeded(7, 0)...)
		dark := ai.New(cfg, seeded(7, 1)...)
		r, err := playGame(context.Background(), board.Reset(6), light, dark)
		if err != nil {
			t.Fatal(err)
		}
		return r
	}
	a, b := play(), play()
	if a.Transcript != b.Transcript {
		t.Errorf("seeded games differ:\n%s\n%s", a.Transcript, b.Transcript)
	}
}

func TestPlayGameCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := ai.Level(1).ForSize(4)
	_, err := playGame(ctx, board.Reset(4), ai.New(cfg), ai.New(cfg))
	if err != context.Canceled {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestRunTallies(t *testing.T) {
	tl, err := run(context.Background(), zerolog.Nop(), 6, 3, 4, "goblin", "novice", 42)
	if err != nil {
		t.Fatal(err)
	}
	if got := tl.lightWins + tl.darkWins + tl.draws; got != 6 {
		t.Errorf("tallied %d games, want 6", got)
	}
}

func TestRunUnknownPreset(t *testing.T) {
	_, err := run(context.Background(), zerolog.Nop(), 1, 1, 8, "grandmaster", "novice", 0)
	if err == nil || !strings.Contains(err.Error(), "grandmaster") {
		t.Errorf("got %v, want unknown preset error", err)
	}
}
