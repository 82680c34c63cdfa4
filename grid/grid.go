// Package grid provides a rectangular tile graph whose cells satisfy the
// astar node contract. Cells are connected to their four orthogonal
// neighbors, one unit apart; blocked cells stay in the graph but are never
// traversed. Suitable for tile-collision style 2D maps.
package grid

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrBadDimensions is returned for non-positive grid sizes.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrBadLayout is returned by Parse for malformed layout text.
	ErrBadLayout = errors.New("grid: bad layout")
)

// Cell is one tile of the grid. X/Y is its position; Blocked marks it
// untraversable. Cells are created by their Grid and identified by pointer:
// a Grid hands out exactly one *Cell per position.
type Cell struct {
	X, Y    int
	Blocked bool

	grid *Grid
}

// Distance returns the Euclidean distance to rhs. For orthogonal neighbors
// this is always 1, but the full calculation keeps the cost correct if
// diagonal connections are ever added.
func (c *Cell) Distance(rhs *Cell) float64 {
	dx := float64(c.X - rhs.X)
	dy := float64(c.Y - rhs.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Heuristic estimates the remaining cost as the straight-line distance,
// which never overestimates a path over unit-cost orthogonal edges.
func (c *Cell) Heuristic(goal *Cell) float64 {
	return c.Distance(goal)
}

// Successors returns the orthogonal neighbors, computed by index arithmetic
// over the grid's node range. Blocked neighbors are included; the search
// engine filters them out.
func (c *Cell) Successors(graph []*Cell) []*Cell {
	w, h := c.grid.Width, c.grid.Height
	successors := make([]*Cell, 0, 4)
	if c.X+1 < w {
		successors = append(successors, graph[c.Y*w+c.X+1])
	}
	if c.X-1 >= 0 {
		successors = append(successors, graph[c.Y*w+c.X-1])
	}
	if c.Y+1 < h {
		successors = append(successors, graph[(c.Y+1)*w+c.X])
	}
	if c.Y-1 >= 0 {
		successors = append(successors, graph[(c.Y-1)*w+c.X])
	}
	return successors
}

// Available reports whether the cell can be traversed.
func (c *Cell) Available() bool {
	return !c.Blocked
}

func (c *Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is a Width x Height field of cells in row-major order.
type Grid struct {
	Width, Height int

	cells []*Cell
}

// New creates an open grid of the given size.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	g := &Grid{Width: width, Height: height}
	g.cells = make([]*Cell, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[y*width+x] = &Cell{X: x, Y: y, grid: g}
		}
	}
	return g, nil
}

// At returns the cell at (x, y), or nil when out of bounds.
func (g *Grid) At(x, y int) *Cell {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil
	}
	return g.cells[y*g.Width+x]
}

// Block marks the cell at (x, y) untraversable. Out-of-bounds positions are
// ignored.
func (g *Grid) Block(x, y int) {
	if cell := g.At(x, y); cell != nil {
		cell.Blocked = true
	}
}

// Nodes returns the grid's node range in row-major order. The slice is
// shared with the grid and must not be modified.
func (g *Grid) Nodes() []*Cell {
	return g.cells
}

// Parse builds a grid from a text layout. Every line is one row; '.' is an
// open cell, '#' a blocked one, 'S' the start and 'G' the goal. Lines must
// all have the same length and exactly one 'S' and one 'G' must be present.
func Parse(layout string) (g *Grid, start, goal *Cell, err error) {
	lines := strings.Split(strings.Trim(layout, "\n"), "\n")
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: empty layout", ErrBadLayout)
	}

	width := len(lines[0])
	g, err = New(width, len(lines))
	if err != nil {
		return nil, nil, nil, err
	}

	for y, line := range lines {
		if len(line) != width {
			return nil, nil, nil, fmt.Errorf("%w: line %d has length %d, want %d", ErrBadLayout, y+1, len(line), width)
		}
		for x, r := range line {
			cell := g.At(x, y)
			switch r {
			case '.':
			case '#':
				cell.Blocked = true
			case 'S':
				if start != nil {
					return nil, nil, nil, fmt.Errorf("%w: multiple start cells", ErrBadLayout)
				}
				start = cell
			case 'G':
				if goal != nil {
					return nil, nil, nil, fmt.Errorf("%w: multiple goal cells", ErrBadLayout)
				}
				goal = cell
			default:
				return nil, nil, nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrBadLayout, r, x, y)
			}
		}
	}
	if start == nil || goal == nil {
		return nil, nil, nil, fmt.Errorf("%w: layout needs one 'S' and one 'G'", ErrBadLayout)
	}
	return g, start, goal, nil
}

// DemoWorld returns the 5x10 example world: a field of walls with a single
// shortest corridor from the top-left to the bottom-right corner.
func DemoWorld() *Grid {
	g, _ := New(5, 10)
	for _, p := range [][2]int{
		{2, 0}, {4, 0},
		{0, 1}, {2, 1},
		{0, 2}, {3, 2}, {4, 2},
		{0, 3}, {1, 3}, {4, 3},
		{1, 5}, {2, 5},
		{4, 7},
		{1, 8}, {3, 8},
		{1, 9},
	} {
		g.Block(p[0], p[1])
	}
	return g
}
