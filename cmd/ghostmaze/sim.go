package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ghostmaze/internal/sim"
	"github.com/vovakirdan/ghostmaze/internal/storage"
)

var (
	flagSimGames int
	flagSimTicks int
	flagSimTop   int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless bot games and summarize them",
	Long: `Play games with a random-walk bot, no terminal UI. Every run is kept
in an in-memory journal for the lifetime of the command; the best runs and
an aggregate summary are printed at the end.

Examples:
  ghostmaze sim
  ghostmaze sim --games 200 --ticks 5000 --seed 1`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimGames, "games", 20, "Number of games to play")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", sim.DefaultMaxTicks, "Tick limit per game")
	simCmd.Flags().IntVar(&flagSimTop, "top", 10, "Number of best runs to list")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func runSim(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	store, err := storage.Open(storage.MemoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runner := sim.NewRunner(gameCfg, store, logger)
	start := time.Now()
	runs, err := runner.RunAll(ctx, sim.Options{
		Games:    flagSimGames,
		MaxTicks: flagSimTicks,
		Seed:     seed,
		Variant:  "ghostmaze",
	})
	if err != nil && ctx.Err() == nil {
		return err
	}
	if err != nil {
		logger.Warn("interrupted", "played", len(runs))
	}
	logger.Info("simulation done", "games", len(runs), "elapsed", time.Since(start).Round(time.Millisecond))

	best, err := store.Runs(flagSimTop)
	if err != nil {
		return err
	}
	sum, err := store.Summary()
	if err != nil {
		return err
	}

	fmt.Println(runsTable(best))
	fmt.Println(summaryTable(sum))
	return nil
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func runsTable(runs []storage.Run) *table.Table {
	t := newTable("#", "Seed", "Outcome", "Score", "Ticks", "Lives", "Tokens left", "Boards", "Run")
	for i, r := range runs {
		t.Row(
			strconv.Itoa(i+1),
			strconv.FormatInt(r.Seed, 10),
			r.Outcome,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Ticks),
			strconv.Itoa(r.Lives),
			strconv.Itoa(r.TokensLeft),
			strconv.Itoa(r.Boards),
			r.ID[:8],
		)
	}
	return t
}

func summaryTable(s storage.Summary) *table.Table {
	return newTable("Games", "Best", "Average", "Wins").Row(
		strconv.Itoa(s.Count),
		strconv.Itoa(s.Best),
		fmt.Sprintf("%.1f", s.Avg),
		strconv.Itoa(s.Wins),
	)
}
