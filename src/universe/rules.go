package universe

import (
	"fmt"
	"time"
)

// Generation summarizes one Step
type Generation struct {
	LiveCells     int
	ChangedCells  int
	IterationTime time.Duration
}

// Step calculates the next generation of active into staging
// walking the area and calculating the next state for the each cell, active is never modified
// the changed cells are recorded into staging, see ChangesFrom
func Step(active *Grid, staging *Grid) (gen Generation) {
	if !active.SameSize(staging) {
		panic(fmt.Sprintf("universe: step between %vx%v and %vx%v grids",
			active.width, active.height, staging.width, staging.height))
	}
	start := time.Now()
	staging.version++
	ch := &staging.changes
	ch.from = active
	ch.fromVersion = active.version
	ch.version = staging.version
	ch.cells = ch.cells[:0]
	for y, row := range active.rows {
		next := staging.rows[y]
		for x, c := range row {
			nextState := NextState(c, active.liveNeighbours(x, y))
			if nextState {
				gen.LiveCells++
			}
			if nextState != c {
				ch.cells = append(ch.cells, y*active.width+x)
			}
			next[x] = nextState
		}
	}
	gen.ChangedCells = len(ch.cells)
	gen.IterationTime = time.Since(start)
	return
}

// NextState applies the life rule to the cell with n live neighbours
func NextState(c Cell, n int) Cell {
	if n < 2 {
		return Dead
	} else if n > 3 {
		return Dead
	} else if n == 3 {
		return Alive
	}
	return c
}

// liveNeighbours counts the live neighbours of x,y
// the grid edges are hard boundaries, coordinates outside the area do not count
func (g *Grid) liveNeighbours(x int, y int) int {
	n := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			nx := x + i
			ny := y + j
			//skip coordinates outside the area
			if nx < 0 || ny < 0 || nx >= g.width || ny >= g.height {
				continue
			}
			if g.rows[ny][nx] {
				n++
			}
		}
	}
	return n
}
