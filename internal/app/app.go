//go:build ebiten

package app

import (
	"time"

	"curls/internal/core"
	"curls/internal/render"
	"curls/internal/ui"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type headProvider interface {
	Head() mgl64.Vec3
	HeadRadius() float64
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim       core.Sim
	grid      *core.ByteGrid
	projector *render.Projector
	painter   *render.GridPainter
	hud       *ui.HUD
	overlay   *ui.Overlay
	clock     *core.FixedStep

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) (*Game, error) {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	grid := core.NewByteGrid(cfg.GridW, cfg.GridH)
	projector := render.NewProjector(grid, sim.Shape(), render.Center(sim.Positions()), cfg.Zoom)
	if err := projector.Check(sim.Positions()); err != nil {
		return nil, err
	}
	g := &Game{
		sim:       sim,
		grid:      grid,
		projector: projector,
		painter:   render.NewGridPainter(grid.W, grid.H),
		hud:       ui.NewHUD(sim, cfg.HUDWidth),
		overlay:   ui.NewOverlay(sim, projector, scale),
		clock:     core.NewFixedStep(cfg.TPS),
		scale:     scale,
		hudWidth:  cfg.HUDWidth,
		seed:      cfg.Seed,
	}
	g.place()
	return g, nil
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.place()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update(g.grid.W * g.scale)

	if (!g.paused && g.clock.ShouldStep()) || g.tickOnce {
		g.sim.Step(g.clock.Seconds())
		g.tickOnce = false
		g.place()
	}
	return nil
}

func (g *Game) place() {
	head, radius := mgl64.Vec3{}, 0.0
	if hp, ok := g.sim.(headProvider); ok {
		head, radius = hp.Head(), hp.HeadRadius()
	}
	g.projector.Place(g.sim.Positions(), head, radius)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.grid.Cells(), render.DefaultPalette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.grid.W*g.scale, g.grid.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.W*g.scale + g.hudWidth, g.grid.H * g.scale
}
