package view

import "strings"

// Canvas is the in-memory Surface, it keeps the visible characters and counts the writes
type Canvas struct {
	Width   int
	Height  int
	Cells   [][]rune
	Writes  int
	Cursor  [2]int
	Visible bool // the cursor visibility
	Shown   int  // Show calls
}

func NewCanvas(width int, height int) *Canvas {
	c := Canvas{Width: width, Height: height}
	c.Clear()
	return &c
}

func (c *Canvas) SetCell(x int, y int, r rune) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.Cells[y][x] = r
	c.Writes++
}

func (c *Canvas) Clear() {
	c.Cells = make([][]rune, c.Height)
	for y := range c.Cells {
		c.Cells[y] = []rune(strings.Repeat(" ", c.Width))
	}
}

func (c *Canvas) ShowCursor(x int, y int) {
	c.Cursor = [2]int{x, y}
	c.Visible = true
}

func (c *Canvas) HideCursor() {
	c.Visible = false
}

func (c *Canvas) Show() {
	c.Shown++
}

// Lines returns the visible content line by line
func (c *Canvas) Lines() []string {
	lines := make([]string, len(c.Cells))
	for i, l := range c.Cells {
		lines[i] = string(l)
	}
	return lines
}

func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}
