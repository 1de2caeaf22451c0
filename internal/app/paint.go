package app

// stroke calls fn for every cell on the segment from (x0, y0) to (x1, y1),
// stepping along the longer axis, and finally for (x1, y1) itself.
func stroke(x0, y0, x1, y1 int, fn func(x, y int)) {
	dx, dy := x1-x0, y1-y0
	n := max(abs(dx), abs(dy))
	for i := 0; i < n; i++ {
		fn(x0+dx*i/n, y0+dy*i/n)
	}
	fn(x1, y1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
