// Package life implements Conway's Game of Life (B3/S23) on a fixed-size,
// dead-bordered grid packed 64 cells to a word.
//
// Storage is row-major. Every row holds ceil(width/64)+1 words; the last word
// of each row is padding that is always zero. Because rows are contiguous, that
// padding word is also the left neighbour of the next row's first word, so
// horizontal shifts never need a bounds check. One padding row sits above the
// grid and one below it.
package life

import (
	"errors"
	"fmt"
	"math/bits"
)

// WordBits is the number of cells packed into one storage word.
const WordBits = 64

// ErrInvalidSize is returned when a grid is requested with a non-positive
// width or height.
var ErrInvalidSize = errors.New("life: invalid grid size")

// BoolSource yields independent random booleans.
type BoolSource interface {
	Bool() bool
}

// Grid is a bit-packed Life board. It is not safe for concurrent use.
type Grid struct {
	w, h   int
	cols   int    // data words per row
	stride int    // words per storage row, cols plus the padding word
	tail   uint64 // live-cell bits of the last data word in a row

	cur   []uint64
	nxt   []uint64
	left  []uint64 // bit i holds the cell east of cell i
	right []uint64 // bit i holds the cell west of cell i
}

// NewEmpty allocates an all-dead grid of the given size.
func NewEmpty(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	cols := (w + WordBits - 1) / WordBits
	stride := cols + 1
	n := stride * (h + 2)

	tail := ^uint64(0)
	if r := w % WordBits; r != 0 {
		tail = 1<<uint(r) - 1
	}

	return &Grid{
		w:      w,
		h:      h,
		cols:   cols,
		stride: stride,
		tail:   tail,
		cur:    make([]uint64, n),
		nxt:    make([]uint64, n),
		left:   make([]uint64, n),
		right:  make([]uint64, n),
	}, nil
}

// Size returns the logical grid dimensions.
func (g *Grid) Size() (w, h int) { return g.w, g.h }

// Contains reports whether (x, y) addresses a cell of the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// index returns the storage word and bit for an in-range cell.
func (g *Grid) index(x, y int) (int, uint) {
	return (y+1)*g.stride + x/WordBits, uint(x % WordBits)
}

// Get returns the state of cell (x, y). The caller must check Contains first;
// the result for out-of-range coordinates is unspecified.
func (g *Grid) Get(x, y int) bool {
	i, b := g.index(x, y)
	return g.cur[i]>>b&1 != 0
}

// Set updates cell (x, y). Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.Contains(x, y) {
		return
	}
	i, b := g.index(x, y)
	if alive {
		g.cur[i] |= 1 << b
	} else {
		g.cur[i] &^= 1 << b
	}
}

// Clear kills every cell.
func (g *Grid) Clear() {
	clear(g.cur)
}

// RandomInit assigns every cell the next value drawn from src, row by row
// from the top, left to right within a row.
func (g *Grid) RandomInit(src BoolSource) {
	for y := 0; y < g.h; y++ {
		row := g.cur[(y+1)*g.stride : (y+1)*g.stride+g.cols]
		for c := range row {
			n := WordBits
			if c == g.cols-1 {
				n = g.w - c*WordBits
			}
			var word uint64
			for b := 0; b < n; b++ {
				if src.Bool() {
					word |= 1 << uint(b)
				}
			}
			row[c] = word
		}
	}
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, word := range g.cur {
		n += bits.OnesCount64(word)
	}
	return n
}
