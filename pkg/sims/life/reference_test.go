package life

// scanBoard is the straightforward scalar Life: every tick it counts the eight
// neighbours of every cell. Cells outside the board are dead.
type scanBoard struct {
	w, h int
	cur  []bool
	nxt  []bool
}

func newScanBoard(w, h int) *scanBoard {
	return &scanBoard{w: w, h: h, cur: make([]bool, w*h), nxt: make([]bool, w*h)}
}

func (s *scanBoard) get(x, y int) bool {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return false
	}
	return s.cur[y*s.w+x]
}

func (s *scanBoard) step() {
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if s.get(x+dx, y+dy) {
						n++
					}
				}
			}
			alive := s.cur[y*s.w+x]
			s.nxt[y*s.w+x] = n == 3 || (alive && n == 2)
		}
	}
	s.cur, s.nxt = s.nxt, s.cur
}

// counterBoard keeps a live-neighbour count per cell and adjusts only the
// eight neighbours when a cell flips.
type counterBoard struct {
	w, h   int
	cells  []bool
	counts []uint8
	flips  []int
}

func newCounterBoard(w, h int) *counterBoard {
	return &counterBoard{w: w, h: h, cells: make([]bool, w*h), counts: make([]uint8, w*h)}
}

func (c *counterBoard) set(x, y int, alive bool) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	idx := y*c.w + x
	if c.cells[idx] == alive {
		return
	}
	c.cells[idx] = alive
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= c.w || ny < 0 || ny >= c.h {
				continue
			}
			if alive {
				c.counts[ny*c.w+nx]++
			} else {
				c.counts[ny*c.w+nx]--
			}
		}
	}
}

func (c *counterBoard) get(x, y int) bool { return c.cells[y*c.w+x] }

func (c *counterBoard) step() {
	c.flips = c.flips[:0]
	for idx, alive := range c.cells {
		n := c.counts[idx]
		next := n == 3 || (alive && n == 2)
		if next != alive {
			c.flips = append(c.flips, idx)
		}
	}
	for _, idx := range c.flips {
		c.set(idx%c.w, idx/c.w, !c.cells[idx])
	}
}
