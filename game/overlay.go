package game

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// overlayRefresh is how often, in seconds, the overlay text is rebuilt.
const overlayRefresh = 0.5

// overlay holds the FPS / build info text drawn over the game.
type overlay struct {
	showFPS   bool
	buildInfo string
	text      string
	sinceLast float64

	// rates returns the measured FPS and TPS; replaced in tests.
	rates func() (fps, tps float64)
}

func newOverlay(showFPS bool, buildInfo string) *overlay {
	// Rates are sampled on the first update; until then only the build info
	// is known.
	return &overlay{
		showFPS:   showFPS,
		buildInfo: buildInfo,
		text:      buildInfo,
		sinceLast: overlayRefresh,
		rates:     ebitenRates,
	}
}

// update accumulates dt and rebuilds the text every overlayRefresh seconds.
func (o *overlay) update(dt float64) {
	o.sinceLast += dt
	if o.sinceLast < overlayRefresh {
		return
	}
	o.sinceLast = 0
	o.refresh()
}

func (o *overlay) refresh() {
	var b strings.Builder
	if o.showFPS {
		fps, tps := o.rates()
		fmt.Fprintf(&b, "FPS: %.1f\nTPS: %.1f", fps, tps)
	}
	if o.buildInfo != "" {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(o.buildInfo)
	}
	o.text = b.String()
}

func (o *overlay) draw(screen *ebiten.Image) {
	if o.text == "" {
		return
	}
	ebitenutil.DebugPrint(screen, o.text)
}

func ebitenRates() (float64, float64) {
	return ebiten.ActualFPS(), ebiten.ActualTPS()
}
