package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/ghostmaze/internal/config"
	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/entity"
	"github.com/vovakirdan/ghostmaze/internal/storage"
)

func newRunner(t *testing.T) (*Runner, *storage.Store) {
	t.Helper()
	store, err := storage.Open(storage.MemoryPath)
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewRunner(config.DefaultGameConfig(), store, nil), store
}

func TestPlayDeterministic(t *testing.T) {
	r, _ := newRunner(t)

	a, err := r.Play(42, 300)
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	b, err := r.Play(42, 300)
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}

	if a.ID == b.ID {
		t.Error("each run should get its own ID")
	}
	a.ID, b.ID = "", ""
	if a != b {
		t.Errorf("same seed gave different runs:\n%+v\n%+v", a, b)
	}
}

func TestPlayRespectsTickCap(t *testing.T) {
	r, _ := newRunner(t)

	run, err := r.Play(7, 5)
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if run.Ticks > 5 {
		t.Errorf("Ticks = %d, expected at most 5", run.Ticks)
	}
	if run.Outcome == OutcomeTimeout && run.Ticks != 5 {
		t.Errorf("a timed out run should have used every tick, got %d", run.Ticks)
	}
	if _, err := uuid.Parse(run.ID); err != nil {
		t.Errorf("run ID %q is not a UUID: %v", run.ID, err)
	}
	if run.Boards < 1 {
		t.Errorf("Boards = %d, expected at least 1", run.Boards)
	}
}

func TestPlayInvalidConfig(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Board.Height = 2
	r := NewRunner(cfg, nil, nil)

	if _, err := r.Play(1, 10); !errors.Is(err, config.ErrBoardTooSmall) {
		t.Errorf("expected ErrBoardTooSmall, got %v", err)
	}
}

func TestRunAllRecordsRuns(t *testing.T) {
	r, store := newRunner(t)

	runs, err := r.RunAll(context.Background(), Options{Games: 4, MaxTicks: 100, Seed: 10})
	if err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}
	if len(runs) != 4 {
		t.Fatalf("got %d runs, expected 4", len(runs))
	}
	for i, run := range runs {
		if run.Seed != 10+int64(i) {
			t.Errorf("runs[%d].Seed = %d, expected %d", i, run.Seed, 10+i)
		}
		if run.Variant != "ghostmaze" {
			t.Errorf("runs[%d].Variant = %q", i, run.Variant)
		}
	}

	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if sum.Count != 4 {
		t.Errorf("journal holds %d runs, expected 4", sum.Count)
	}
}

func TestRunAllStopsOnCancel(t *testing.T) {
	r, store := newRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runs, err := r.RunAll(ctx, Options{Games: 3, MaxTicks: 10})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("cancelled batch played %d games", len(runs))
	}
	if sum, _ := store.Summary(); sum.Count != 0 {
		t.Errorf("cancelled batch saved %d runs", sum.Count)
	}
}

func TestRunAllRejectsZeroGames(t *testing.T) {
	r, _ := newRunner(t)
	if _, err := r.RunAll(context.Background(), Options{}); err == nil {
		t.Error("expected an error for zero games")
	}
}

type fakeMover struct {
	dir  core.Direction
	open map[core.Direction]bool
}

func (f fakeMover) CanMove(d core.Direction) bool { return f.open[d] }
func (f fakeMover) Player() entity.Player         { return entity.Player{Direction: f.dir} }

func TestWalker(t *testing.T) {
	tests := []struct {
		name string
		m    fakeMover
		want func(core.Direction) bool
	}{
		{
			name: "boxed in stays still",
			m:    fakeMover{dir: core.DirLeft, open: map[core.Direction]bool{}},
			want: func(d core.Direction) bool { return d == core.DirStill },
		},
		{
			name: "single exit",
			m:    fakeMover{dir: core.DirLeft, open: map[core.Direction]bool{core.DirDown: true}},
			want: func(d core.Direction) bool { return d == core.DirDown },
		},
		{
			name: "never walks into a wall",
			m:    fakeMover{dir: core.DirStill, open: map[core.Direction]bool{core.DirUp: true, core.DirRight: true}},
			want: func(d core.Direction) bool { return d == core.DirUp || d == core.DirRight },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWalker(1)
			for i := 0; i < 50; i++ {
				if got := w.next(tt.m); !tt.want(got) {
					t.Fatalf("next() = %v", got)
				}
			}
		})
	}
}
