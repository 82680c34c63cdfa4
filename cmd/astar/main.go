// Command astar runs an A* search over a tile grid and renders the result.
//
// With no arguments it solves the built-in demo world. A custom world can
// be given as a layout file: '.' open, '#' blocked, 'S' start, 'G' goal.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"

	astar "github.com/Systemcluster/Adaptable-A-Star"
	"github.com/Systemcluster/Adaptable-A-Star/grid"
)

var (
	layoutPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "astar",
	Short: "Find the shortest path through a tile grid",
	Args:  cobra.NoArgs,
	RunE:  run,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&layoutPath, "layout", "l", "", "layout file ('.' open, '#' blocked, 'S' start, 'G' goal); built-in demo world if omitted")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log search progress to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	world, start, goal, err := loadWorld()
	if err != nil {
		return err
	}

	log := logr.Discard()
	if verbose {
		log = funcr.New(func(prefix, args string) {
			fmt.Fprintln(os.Stderr, prefix, args)
		}, funcr.Options{Verbosity: 2})
	}

	search, err := astar.New(cmd.Context(), world.Nodes(), start, goal, astar.WithLogger(log))
	if err != nil {
		return err
	}
	if !search.Successful() {
		return fmt.Errorf("no path from %v to %v", start, goal)
	}

	fmt.Println(render(world, search))
	fmt.Printf("Shortest path found with %.2f weight in %d steps (%d nodes expanded).\n",
		search.TotalCost(), search.Steps(), search.Expanded())
	return nil
}

func loadWorld() (*grid.Grid, *grid.Cell, *grid.Cell, error) {
	if layoutPath == "" {
		world := grid.DemoWorld()
		return world, world.At(0, 0), world.At(world.Width-1, world.Height-1), nil
	}
	layout, err := os.ReadFile(layoutPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read layout: %w", err)
	}
	return grid.Parse(string(layout))
}

var (
	styleOpen    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleWall    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	stylePath    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleEndpoint = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func render(world *grid.Grid, search *astar.Search[*grid.Cell]) string {
	onPath := make(map[*grid.Cell]bool)
	for cell := range search.Path() {
		onPath[cell] = true
	}
	path := search.PathNodes()
	start, goal := path[0], path[len(path)-1]

	var out string
	for y := 0; y < world.Height; y++ {
		for x := 0; x < world.Width; x++ {
			cell := world.At(x, y)
			switch {
			case cell == start:
				out += styleEndpoint.Render("S")
			case cell == goal:
				out += styleEndpoint.Render("G")
			case onPath[cell]:
				out += stylePath.Render("o")
			case cell.Blocked:
				out += styleWall.Render("#")
			default:
				out += styleOpen.Render(".")
			}
			out += " "
		}
		out += "\n"
	}
	return out
}
