// Package conway adapts the bit-packed Life engine to the simulation host.
package conway

import (
	"fmt"
	"strconv"
	"time"

	"bitlife/internal/core"
	rng "bitlife/pkg/core"
	"bitlife/pkg/sims/life"
)

// Life drives a life.Grid for the GUI and tools.
type Life struct {
	cfg     Config
	grid    *life.Grid
	display *core.ByteGrid
	dirty   bool

	generation int
	lastStep   time.Duration
}

// New returns a Life simulation with an empty board.
func New(cfg Config) (*Life, error) {
	grid, err := life.NewEmpty(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &Life{
		cfg:     cfg,
		grid:    grid,
		display: core.NewByteGrid(cfg.Width, cfg.Height),
	}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Generation returns the number of steps since the last Reset or Clear.
func (l *Life) Generation() int { return l.generation }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.grid.Population() }

// Cells exposes the board as 0/1 bytes in row-major order.
func (l *Life) Cells() []uint8 {
	if l.dirty {
		l.display.Fill(func(x, y int) uint8 {
			if l.grid.Get(x, y) {
				return 1
			}
			return 0
		})
		l.dirty = false
	}
	return l.display.Cells()
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	l.cfg.Seed = seed
	l.grid.RandomInit(rng.NewRNG(seed))
	l.generation = 0
	l.dirty = true
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.grid.Clear()
	l.generation = 0
	l.dirty = true
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	start := time.Now()
	l.grid.Advance()
	l.lastStep = time.Since(start)
	l.generation++
	l.dirty = true
}

// Contains reports whether (x, y) is on the board.
func (l *Life) Contains(x, y int) bool { return l.grid.Contains(x, y) }

// Get returns the state of an on-board cell.
func (l *Life) Get(x, y int) bool { return l.grid.Get(x, y) }

// Set updates a cell; off-board coordinates are ignored.
func (l *Life) Set(x, y int, alive bool) {
	if !l.grid.Contains(x, y) {
		return
	}
	l.grid.Set(x, y, alive)
	l.dirty = true
}

// Resize replaces the board with one of size w by h. When the new board is
// larger on an axis the old contents are centred on it; otherwise the
// top-left region is kept.
func (l *Life) Resize(w, h int) error {
	grid, err := life.NewEmpty(w, h)
	if err != nil {
		return fmt.Errorf("resize life board: %w", err)
	}
	oldW, oldH := l.grid.Size()
	xoff, yoff := 0, 0
	if w > oldW {
		xoff = (w - oldW) / 2
	}
	if h > oldH {
		yoff = (h - oldH) / 2
	}
	for y := 0; y < min(h, oldH); y++ {
		for x := 0; x < min(w, oldW); x++ {
			if l.grid.Get(x, y) {
				grid.Set(x+xoff, y+yoff, true)
			}
		}
	}

	l.grid = grid
	l.cfg.Width, l.cfg.Height = w, h
	l.display = core.NewByteGrid(w, h)
	l.dirty = true
	return nil
}

// Parameters reports the board and run statistics.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("w", "Width", l.cfg.Width),
				intParam("h", "Height", l.cfg.Height),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(l.cfg.Seed, 10)},
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("generation", "Generation", l.generation),
				intParam("population", "Population", l.grid.Population()),
				{
					Key:   "step_ms",
					Label: "Step ms",
					Type:  core.ParamTypeFloat,
					Value: strconv.FormatFloat(float64(l.lastStep)/float64(time.Millisecond), 'f', 3, 64),
				},
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		l, err := New(c)
		if err != nil {
			return nil, err
		}
		l.Reset(c.Seed)
		return l, nil
	})
}
