package universe

import "math/rand"

const (
	SoupMargin = 5  // cells closer than SoupMargin to any edge are not touched
	SoupChance = 12 // one cell of SoupChance is settled alive
)

// Soup settles the grid with random data
// every cell inside the margin becomes alive with 1/SoupChance probability, dead otherwise
func Soup(g *Grid, rnd *rand.Rand) {
	g.version++
	for y := SoupMargin; y < g.height-SoupMargin; y++ {
		for x := SoupMargin; x < g.width-SoupMargin; x++ {
			g.rows[y][x] = Cell(rnd.Intn(SoupChance) == 0)
		}
	}
}

// InSoupArea reports whether x,y is affected by Soup for the grid
func (g *Grid) InSoupArea(x int, y int) bool {
	return x >= SoupMargin && y >= SoupMargin && x < g.width-SoupMargin && y < g.height-SoupMargin
}
