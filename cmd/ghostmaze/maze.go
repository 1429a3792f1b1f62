package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ghostmaze/internal/maze"
)

var (
	flagMazeWidth  int
	flagMazeHeight int
)

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Print a generated maze",
	Long: `Generate one maze and print it as text with a few statistics.
Width and height default to the configured board size.

Legend: # wall, . floor, P player spawn, G ghost spawn

Examples:
  ghostmaze maze
  ghostmaze maze --width 41 --height 21 --seed 3`,
	Args: cobra.NoArgs,
	RunE: runMaze,
}

func init() {
	mazeCmd.Flags().IntVar(&flagMazeWidth, "width", 0, "Maze width (0 = configured board width)")
	mazeCmd.Flags().IntVar(&flagMazeHeight, "height", 0, "Maze height (0 = configured board height)")
}

var statStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

func runMaze(cmd *cobra.Command, args []string) error {
	p := maze.Params{
		Width:      gameCfg.Board.Width,
		Height:     gameCfg.Board.Height,
		EmptySpace: gameCfg.Board.EmptySpace,
	}
	if flagMazeWidth > 0 {
		p.Width = flagMazeWidth
	}
	if flagMazeHeight > 0 {
		p.Height = flagMazeHeight
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := maze.Generate(p, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	fmt.Print(g.String())
	fmt.Println()

	patches := maze.Patches(g)
	largest := 0
	for _, pt := range patches {
		largest = max(largest, len(pt))
	}
	fmt.Println(statStyle.Render(fmt.Sprintf(
		"%dx%d  seed %d  walls %d  floor %d  patches %d  largest %d",
		g.W, g.H, seed, g.Count(maze.Wall), g.Count(maze.Empty), len(patches), largest,
	)))
	return nil
}
