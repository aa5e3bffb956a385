package universe

// Buffer is the double buffered universe:
// the active grid holds the current generation, the next one is calculated into the staging grid
// and then the grids change their roles by Swap, no data is copied between them.
type Buffer struct {
	grids [2]*Grid
	flip  bool
}

// NewBuffer allocates both grids, all cells are dead
func NewBuffer(width int, height int) *Buffer {
	b := Buffer{}
	b.Reset(width, height)
	return &b
}

// Active returns the grid with the current state
func (b *Buffer) Active() *Grid {
	if b.flip {
		return b.grids[1]
	}
	return b.grids[0]
}

// Staging returns the grid the next state is written to
func (b *Buffer) Staging() *Grid {
	if b.flip {
		return b.grids[0]
	}
	return b.grids[1]
}

// Swap flips the active and the staging grids
// should be called only after the staging grid is completely calculated
func (b *Buffer) Swap() {
	b.flip = !b.flip
}

// Reset reallocates both grids with all dead cells
func (b *Buffer) Reset(width int, height int) {
	b.grids[0] = NewGrid(width, height)
	b.grids[1] = NewGrid(width, height)
	b.flip = false
}

func (b *Buffer) Width() int {
	return b.grids[0].width
}

func (b *Buffer) Height() int {
	return b.grids[0].height
}
