package core

// Bounds describes a fixed rectangular grid stored in row-major order. Edges
// are hard boundaries: nothing wraps.
type Bounds struct {
	W, H int
}

// Area returns the number of cells covered by the bounds.
func (b Bounds) Area() int { return b.W * b.H }

// Index returns the linear slice index for coordinates (x, y).
func (b Bounds) Index(x, y int) int { return y*b.W + x }

// Coords converts a linear index back into coordinates.
func (b Bounds) Coords(idx int) (int, int) { return idx % b.W, idx / b.W }

// Contains reports whether (x, y) lies inside the grid.
func (b Bounds) Contains(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Neighbors appends the indices of the Moore neighborhood of (x, y) to dst,
// row by row from the top-left. Cells outside the grid are skipped, so edge
// cells yield fewer than eight neighbors.
func (b Bounds) Neighbors(dst []int, x, y int) []int {
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= b.H {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= b.W {
				continue
			}
			dst = append(dst, ny*b.W+nx)
		}
	}
	return dst
}

// Square returns the clipped region within Chebyshev distance radius of
// (cx, cy) as half-open ranges [x0, x1) and [y0, y1). The region is empty when
// it misses the grid entirely.
func (b Bounds) Square(cx, cy, radius int) (x0, y0, x1, y1 int) {
	if radius < 0 {
		return 0, 0, 0, 0
	}
	x0, y0 = max(cx-radius, 0), max(cy-radius, 0)
	x1, y1 = min(cx+radius+1, b.W), min(cy+radius+1, b.H)
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0
	}
	return x0, y0, x1, y1
}
