package app

const (
	minScale = 1
	maxScale = 32
)

// View maps between screen pixels and board cells.
type View struct {
	Scale      int
	OffX, OffY int
}

// CellAt returns the cell under screen position (px, py). Positions left of
// or above the board map to negative cells.
func (v View) CellAt(px, py int) (int, int) {
	return floorDiv(px-v.OffX, v.Scale), floorDiv(py-v.OffY, v.Scale)
}

// Zoom doubles (steps > 0) or halves (steps < 0) the cell size once per step
// within [minScale, maxScale], keeping the board point under (mx, my) fixed.
func (v *View) Zoom(steps, mx, my int) {
	posX := float64(mx-v.OffX) / float64(v.Scale)
	posY := float64(my-v.OffY) / float64(v.Scale)

	for ; steps > 0; steps-- {
		if v.Scale < maxScale {
			v.Scale *= 2
		}
	}
	for ; steps < 0; steps++ {
		if v.Scale > minScale {
			v.Scale /= 2
		}
	}

	v.OffX = int(float64(mx) - posX*float64(v.Scale))
	v.OffY = int(float64(my) - posY*float64(v.Scale))
}

// Fit centres a board that is smaller than the window on an axis and
// otherwise clamps the offset so no gap opens at either edge.
func (v *View) Fit(boardW, boardH, winW, winH int) {
	v.OffX = fitAxis(v.OffX, boardW*v.Scale, winW)
	v.OffY = fitAxis(v.OffY, boardH*v.Scale, winH)
}

func fitAxis(off, board, win int) int {
	if board < win {
		return (win - board) / 2
	}
	return clamp(off, win-board, 0)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
