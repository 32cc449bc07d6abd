package core

// Cell is a well coordinate; X grows to the right, Y grows downward
type Cell struct {
	X, Y int
}

// Add returns the cell translated by (dx, dy)
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// InBounds reports whether the cell lies within a width x height grid
func (c Cell) InBounds(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}
