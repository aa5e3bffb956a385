package universe

import "fmt"

// Cell is the state of one position of the universe
type Cell bool

const (
	Dead  Cell = false
	Alive Cell = true
)

// Grid is the fixed-size field where cells are living
// the dimensions are set once by NewGrid and never change
type Grid struct {
	width   int
	height  int
	rows    [][]Cell
	//version is bumped by every write to the cells
	version uint64
	changes changeList
}

// changeList holds the cells changed by the last Step into the grid
// it is valid while neither the grid nor from are modified
type changeList struct {
	from        *Grid
	fromVersion uint64
	version     uint64
	cells       []int // y*width + x
}

// NewGrid allocates the all-dead grid
func NewGrid(width int, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("universe: invalid grid dimension %vx%v", width, height))
	}
	g := Grid{width: width, height: height, rows: make([][]Cell, height)}
	b := make([]Cell, width*height)
	for i := range g.rows {
		start := width * i
		g.rows[i] = b[start : start+width : start+width]
	}
	return &g
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

// Contains reports whether x,y addresses a cell of the grid
func (g *Grid) Contains(x int, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the cell at x,y
// out-of-range coordinates are a caller bug and panic
func (g *Grid) At(x int, y int) Cell {
	g.check(x, y)
	return g.rows[y][x]
}

// Set places the cell at x,y
func (g *Grid) Set(x int, y int, c Cell) {
	g.check(x, y)
	g.rows[y][x] = c
	g.version++
}

// Toggle inverses the cell state at x,y and returns the new state
func (g *Grid) Toggle(x int, y int) Cell {
	g.check(x, y)
	g.rows[y][x] = !g.rows[y][x]
	g.version++
	return g.rows[y][x]
}

// LiveCells calculates the count of live cells
func (g *Grid) LiveCells() int {
	n := 0
	g.Walk(func(_ int, _ int, c Cell) {
		if c {
			n++
		}
	})
	return n
}

// Walk walks the entire grid row by row and calls cb for each cell
func (g *Grid) Walk(cb func(x int, y int, c Cell)) {
	for y := range g.rows {
		for x, c := range g.rows[y] {
			cb(x, y, c)
		}
	}
}

// ChangesFrom calls cb for every cell changed when g was calculated from previous by Step
// it returns false without calling cb if g is not the last Step result of previous
// or any of the grids was modified since, the caller has to compare the grids itself then
func (g *Grid) ChangesFrom(previous *Grid, cb func(x int, y int, c Cell)) bool {
	ch := &g.changes
	if previous == nil || ch.from != previous || ch.fromVersion != previous.version || ch.version != g.version {
		return false
	}
	for _, i := range ch.cells {
		x, y := i%g.width, i/g.width
		cb(x, y, g.rows[y][x])
	}
	return true
}

// SameSize reports whether both grids have identical dimensions
func (g *Grid) SameSize(o *Grid) bool {
	return g.width == o.width && g.height == o.height
}

func (g *Grid) check(x int, y int) {
	if !g.Contains(x, y) {
		panic(fmt.Sprintf("universe: cell %v,%v is outside the %vx%v grid", x, y, g.width, g.height))
	}
}
