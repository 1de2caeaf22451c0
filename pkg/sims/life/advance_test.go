package life

import (
	"fmt"
	"slices"
	"testing"

	"bitlife/pkg/core"
)

// stamp sets the '#' cells of pattern with its top-left corner at (x, y).
func stamp(g *Grid, x, y int, pattern ...string) {
	for dy, row := range pattern {
		for dx, ch := range row {
			if ch == '#' {
				g.Set(x+dx, y+dy, true)
			}
		}
	}
}

func expectLive(t *testing.T, g *Grid, live map[[2]int]bool) {
	t.Helper()
	w, h := g.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if got, want := g.Get(x, y), live[[2]int{x, y}]; got != want {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := mustGrid(t, 5, 5)
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	g.Set(2, 3, true)

	g.Advance()
	expectLive(t, g, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})

	g.Advance()
	expectLive(t, g, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})
}

func TestBlockIsStill(t *testing.T) {
	// Straddle a word boundary so the shifted carries are exercised.
	g := mustGrid(t, 128, 4)
	stamp(g, 63, 1, "##", "##")
	before := cells(g)
	for i := 0; i < 3; i++ {
		g.Advance()
		if !slices.Equal(before, cells(g)) {
			t.Fatalf("block changed after %d generations", i+1)
		}
	}
}

func TestGliderTranslates(t *testing.T) {
	glider := []string{
		".#.",
		"..#",
		"###",
	}
	for _, origin := range [][2]int{{1, 1}, {61, 3}} {
		t.Run(fmt.Sprintf("at %d,%d", origin[0], origin[1]), func(t *testing.T) {
			g := mustGrid(t, 80, 16)
			stamp(g, origin[0], origin[1], glider...)

			want := mustGrid(t, 80, 16)
			stamp(want, origin[0]+1, origin[1]+1, glider...)

			for i := 0; i < 4; i++ {
				g.Advance()
			}
			if !slices.Equal(cells(g), cells(want)) {
				t.Fatal("glider did not move by (1,1) after 4 generations")
			}
			if g.Population() != 5 {
				t.Fatalf("glider population %d, want 5", g.Population())
			}
		})
	}
}

func TestCornerCellsSeeDeadBorder(t *testing.T) {
	// A lone 2x2 block in the corner stays put; with wraparound the opposite
	// corners would come alive.
	g := mustGrid(t, 6, 6)
	stamp(g, 0, 0, "##", "##")
	g.Advance()
	expectLive(t, g, map[[2]int]bool{
		{0, 0}: true, {1, 0}: true,
		{0, 1}: true, {1, 1}: true,
	})

	// Three cells along the right edge would birth a cell past the last
	// column if the border were not dead.
	g = mustGrid(t, 64, 5)
	g.Set(63, 1, true)
	g.Set(63, 2, true)
	g.Set(63, 3, true)
	g.Advance()
	expectLive(t, g, map[[2]int]bool{
		{62, 2}: true,
		{63, 2}: true,
	})
}

func TestBorderStaysDead(t *testing.T) {
	for _, w := range []int{1, 5, 63, 64, 65, 130} {
		g := mustGrid(t, w, 6)
		g.RandomInit(&sequence{vals: []bool{true}})
		for i := 0; i < 8; i++ {
			g.Advance()
			assertPaddingDead(t, g)
		}
	}
}

func TestAdvanceMatchesReferences(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {5, 5}, {63, 9}, {64, 8}, {65, 11}, {127, 6}, {128, 5}, {129, 13}}
	for _, size := range sizes {
		w, h := size[0], size[1]
		for seed := int64(1); seed <= 6; seed++ {
			g := mustGrid(t, w, h)
			g.RandomInit(core.NewRNG(seed))

			scan := newScanBoard(w, h)
			counter := newCounterBoard(w, h)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					v := g.Get(x, y)
					scan.cur[y*w+x] = v
					counter.set(x, y, v)
				}
			}

			for gen := 1; gen <= 24; gen++ {
				g.Advance()
				scan.step()
				counter.step()
				for y := 0; y < h; y++ {
					for x := 0; x < w; x++ {
						got := g.Get(x, y)
						if want := scan.cur[y*w+x]; got != want {
							t.Fatalf("%dx%d seed %d gen %d: cell (%d,%d) = %v, scan reference %v", w, h, seed, gen, x, y, got, want)
						}
						if want := counter.get(x, y); got != want {
							t.Fatalf("%dx%d seed %d gen %d: cell (%d,%d) = %v, counter reference %v", w, h, seed, gen, x, y, got, want)
						}
					}
				}
			}
		}
	}
}

func TestFullAdderTruthTable(t *testing.T) {
	for in := 0; in < 8; in++ {
		a, b, c := uint64(in&1), uint64(in>>1&1), uint64(in>>2&1)
		sum, carry := fullAdd(a, b, c)
		if int(sum+2*carry) != int(a+b+c) {
			t.Fatalf("fullAdd(%d,%d,%d) = sum %d carry %d", a, b, c, sum, carry)
		}
	}
}

func BenchmarkAdvance(b *testing.B) {
	g := mustGrid(b, 512, 512)
	g.RandomInit(core.NewRNG(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Advance()
	}
}

func BenchmarkScanReference(b *testing.B) {
	s := newScanBoard(512, 512)
	rng := core.NewRNG(1)
	for i := range s.cur {
		s.cur[i] = rng.Bool()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.step()
	}
}
