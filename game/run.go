// Package game drives platform2d animations from an Ebitengine game loop.
//
// Run opens a window and calls Update(dt) on the root updater every tick,
// with dt derived from the configured ticks per second. It is only a tick
// source and debug overlay; drawing is left to the optional Drawer.
package game

import (
	"github.com/arbitrarypixel/platform2d"
	"github.com/hajimehoshi/ebiten/v2"
)

// Updater is advanced once per tick by dt seconds. *platform2d.AnimationCollection,
// *platform2d.ValueAnimation and *platform2d.AnimationGroup all satisfy it.
type Updater interface {
	Update(dt float64)
}

// Drawer is implemented by roots that also render. Draw is called once per
// frame before the debug overlay.
type Drawer interface {
	Draw(screen *ebiten.Image)
}

// RunConfig configures the window and loop created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS overrides the tick rate. Zero keeps ebiten's default of 60.
	TPS int
	// ShowFPS draws the current FPS and TPS in the top-left corner.
	ShowFPS bool
	// BuildInfo is drawn under the FPS counter when set, e.g. "v1.2.0 (abc123)".
	BuildInfo string
	// Debug logs per-tick update time to stderr.
	Debug bool
}

const (
	defaultWidth  = 640
	defaultHeight = 480
)

// Loop adapts an Updater to ebiten.Game.
type Loop struct {
	root    Updater
	cfg     RunConfig
	overlay *overlay
	clock   *platform2d.Stopwatch

	// tickDelta returns the seconds per tick; replaced in tests.
	tickDelta func() float64
	debugLog  func(format string, args ...any)
}

// NewLoop builds the ebiten.Game used by Run. It is exported for callers
// that want to hand it to ebiten.RunGame themselves.
func NewLoop(root Updater, cfg RunConfig) *Loop {
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	l := &Loop{
		root:      root,
		cfg:       cfg,
		clock:     platform2d.NewStopwatch(),
		tickDelta: ebitenTickDelta,
		debugLog:  stderrLog,
	}
	if cfg.ShowFPS || cfg.BuildInfo != "" {
		l.overlay = newOverlay(cfg.ShowFPS, cfg.BuildInfo)
	}
	return l
}

// Run configures the window and blocks running the game loop until the
// window is closed or the root's Update panics.
func Run(root Updater, cfg RunConfig) error {
	l := NewLoop(root, cfg)
	if l.cfg.Title != "" {
		ebiten.SetWindowTitle(l.cfg.Title)
	}
	ebiten.SetWindowSize(l.cfg.Width, l.cfg.Height)
	if l.cfg.TPS > 0 {
		ebiten.SetTPS(l.cfg.TPS)
	}
	return ebiten.RunGame(l)
}

// Update implements ebiten.Game.
func (l *Loop) Update() error {
	dt := l.tickDelta()

	if l.cfg.Debug {
		l.clock.Restart()
	}
	if l.root != nil {
		l.root.Update(dt)
	}
	if l.cfg.Debug {
		l.clock.Stop()
		l.debugLog("[platform2d] update: %v | dt: %.4fs\n", l.clock.Elapsed(), dt)
	}

	if l.overlay != nil {
		l.overlay.update(dt)
	}
	return nil
}

// Draw implements ebiten.Game.
func (l *Loop) Draw(screen *ebiten.Image) {
	if d, ok := l.root.(Drawer); ok {
		d.Draw(screen)
	}
	if l.overlay != nil {
		l.overlay.draw(screen)
	}
}

// Layout implements ebiten.Game with a fixed logical screen size.
func (l *Loop) Layout(outsideWidth, outsideHeight int) (int, int) {
	return l.cfg.Width, l.cfg.Height
}

func ebitenTickDelta() float64 {
	return 1.0 / float64(ebiten.TPS())
}
