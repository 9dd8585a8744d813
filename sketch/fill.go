package sketch

// FloodFill paints the 4-connected region of matching pixels around the
// start cell with the fill index, staying strictly inside the active grid
// area. It reports the number of cells painted. Filling with the index
// already present, or starting outside the grid, paints nothing.
//
// The fill is iterative with an explicit stack sized for the worst case,
// so no input can exhaust it or recurse.
func (s *Sketch) FloodFill(x, y int, fill byte) int {
	if x < 0 || x >= s.gridSize || y < 0 || y >= s.gridSize || fill > MaxIndex {
		return 0
	}

	original := s.pixels[y*GridCapacity+x]
	if original == fill {
		return 0
	}

	type cell struct {
		x, y int
	}

	var (
		visited [numPixels]bool
		stack   [numPixels]cell
	)

	// Cells are marked visited as they are pushed so nothing is ever
	// stacked twice
	push := func(top int, x, y int) int {
		if visited[y*GridCapacity+x] {
			return top
		}
		visited[y*GridCapacity+x] = true
		stack[top] = cell{x, y}
		return top + 1
	}

	top := push(0, x, y)

	painted := 0
	for top > 0 {
		top--
		c := stack[top]

		if s.pixels[c.y*GridCapacity+c.x] != original {
			continue
		}

		s.pixels[c.y*GridCapacity+c.x] = fill
		painted++

		if c.y > 0 {
			top = push(top, c.x, c.y-1)
		}
		if c.y < s.gridSize-1 {
			top = push(top, c.x, c.y+1)
		}
		if c.x > 0 {
			top = push(top, c.x-1, c.y)
		}
		if c.x < s.gridSize-1 {
			top = push(top, c.x+1, c.y)
		}
	}

	return painted
}
