package life

// fullAdd sums three one-bit planes, returning the sum (weight 1) and carry
// (weight 2) planes.
func fullAdd(a, b, c uint64) (sum, carry uint64) {
	ab := a ^ b
	return ab ^ c, a&b | ab&c
}

// halfAdd sums two one-bit planes.
func halfAdd(a, b uint64) (sum, carry uint64) {
	return a ^ b, a & b
}

// shiftRows fills the horizontal neighbour planes for every storage word.
// The bit carried in at each word edge comes from the adjacent word in the
// flat buffer, which is either a data word of the same row or a zero padding
// word.
func (g *Grid) shiftRows() {
	cur, left, right := g.cur, g.left, g.right
	last := len(cur) - 1
	for i, word := range cur {
		var prev, next uint64
		if i > 0 {
			prev = cur[i-1]
		}
		if i < last {
			next = cur[i+1]
		}
		right[i] = word<<1 | prev>>(WordBits-1)
		left[i] = word>>1 | next<<(WordBits-1)
	}
}

// Advance moves the grid forward one generation.
func (g *Grid) Advance() {
	g.shiftRows()

	cur, nxt, left, right := g.cur, g.nxt, g.left, g.right
	stride := g.stride
	for y := 1; y <= g.h; y++ {
		base := y * stride
		for c := 0; c < g.cols; c++ {
			i := base + c
			up, down := i-stride, i+stride

			// Row above: NE, N, NW.
			s0, c0 := fullAdd(left[up], cur[up], right[up])
			// Row below: SE, S, SW.
			s1, c1 := fullAdd(left[down], cur[down], right[down])
			// Same row: E, W.
			s2, c2 := halfAdd(left[i], right[i])

			// ones is bit 0 of the count; c3 is one more weight-2 carry.
			ones, c3 := fullAdd(s0, s1, s2)

			// Four weight-2 carries c0..c3. t + 2*f4 = c0+c1+c2 and
			// twos + 2*f4b = t+c3, so count = ones + 2*twos + 4*(f4+f4b).
			t, f4 := fullAdd(c0, c1, c2)
			twos, f4b := halfAdd(t, c3)
			fours := f4 | f4b

			// count is 2 or 3 when twos is set and no weight-4 bit is.
			// 3 births or survives; 2 only survives.
			word := twos &^ fours & (ones | cur[i])
			if c == g.cols-1 {
				word &= g.tail
			}
			nxt[i] = word
		}
	}

	g.cur, g.nxt = g.nxt, g.cur
}
