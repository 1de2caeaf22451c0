//go:build ebiten

package app

import (
	"log"
	"time"

	"bitlife/internal/core"
	"bitlife/internal/render"
	"bitlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	pace    *core.FixedStep

	view       View
	hudWidth   int
	winW, winH int

	running  bool
	tickOnce bool

	lastX, lastY int
	panning      bool
	panMouseX    int
	panMouseY    int
	panOffX      int
	panOffY      int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	scale := clamp(cfg.Scale, minScale, maxScale)
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(sim, cfg.HUD),
		pace:     core.NewFixedStep(cfg.GPS),
		view:     View{Scale: scale},
		hudWidth: max(cfg.HUD, 0),
		winW:     size.W * scale,
		winH:     size.H * scale,
		running:  true,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if c, ok := g.sim.(core.Clearer); ok {
			c.Clear()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.running = !g.running
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fitToWindow()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && !g.running {
		g.tickOnce = true
	}

	g.handleMouse()
	size := g.sim.Size()
	g.view.Fit(size.W, size.H, g.winW, g.winH)

	if g.running {
		for n := g.pace.Due(); n > 0; n-- {
			g.sim.Step()
		}
	} else if g.tickOnce {
		g.sim.Step()
	}
	g.tickOnce = false

	status := "running"
	if !g.running {
		status = "paused"
	}
	g.hud.Update(status)
	return nil
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()

	if _, wy := ebiten.Wheel(); wy > 0 {
		g.view.Zoom(1, mx, my)
	} else if wy < 0 {
		g.view.Zoom(-1, mx, my)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		g.panning = true
		g.panMouseX, g.panMouseY = mx, my
		g.panOffX, g.panOffY = g.view.OffX, g.view.OffY
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle) {
		g.panning = false
	}
	if g.panning {
		g.view.OffX = g.panOffX + mx - g.panMouseX
		g.view.OffY = g.panOffY + my - g.panMouseY
	}

	cx, cy := g.view.CellAt(mx, my)
	fromX, fromY := g.lastX, g.lastY
	g.lastX, g.lastY = cx, cy

	drawing := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	erasing := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if drawing == erasing || mx >= g.winW {
		return
	}
	p, ok := g.sim.(core.Painter)
	if !ok {
		return
	}
	stroke(fromX, fromY, cx, cy, func(x, y int) {
		p.Set(x, y, drawing)
	})
}

// fitToWindow resizes the board to fill the area left of the HUD.
func (g *Game) fitToWindow() {
	r, ok := g.sim.(core.Resizer)
	if !ok {
		return
	}
	w, h := g.winW/g.view.Scale, g.winH/g.view.Scale
	if err := r.Resize(w, h); err != nil {
		log.Printf("fit to window: %v", err)
		return
	}
	g.painter = render.NewGridPainter(w, h)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.view.Scale, g.view.OffX, g.view.OffY)
	g.hud.Draw(screen, g.winW)
}

// Layout tracks the window size and reserves the HUD column on the right.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.winW = max(outsideWidth-g.hudWidth, 1)
	g.winH = max(outsideHeight, 1)
	return outsideWidth, outsideHeight
}
