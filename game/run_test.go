package game

import (
	"fmt"
	"strings"
	"testing"
)

type countingUpdater struct {
	calls int
	total float64
}

func (u *countingUpdater) Update(dt float64) {
	u.calls++
	u.total += dt
}

func newTestLoop(root Updater, cfg RunConfig) *Loop {
	l := NewLoop(root, cfg)
	l.tickDelta = func() float64 { return 0.25 }
	if l.overlay != nil {
		l.overlay.rates = func() (float64, float64) { return 59.5, 60 }
	}
	return l
}

func TestLoopUpdatePassesTickDelta(t *testing.T) {
	u := &countingUpdater{}
	l := newTestLoop(u, RunConfig{})

	for i := 0; i < 4; i++ {
		if err := l.Update(); err != nil {
			t.Fatalf("Update returned %v", err)
		}
	}

	if u.calls != 4 {
		t.Errorf("calls = %d, want 4", u.calls)
	}
	if u.total != 1.0 {
		t.Errorf("total dt = %f, want 1.0", u.total)
	}
}

func TestLoopUpdateNilRoot(t *testing.T) {
	l := newTestLoop(nil, RunConfig{})
	if err := l.Update(); err != nil {
		t.Fatalf("Update returned %v", err)
	}
}

func TestLoopLayoutDefaults(t *testing.T) {
	l := NewLoop(nil, RunConfig{})
	w, h := l.Layout(1920, 1080)
	if w != defaultWidth || h != defaultHeight {
		t.Errorf("Layout = %dx%d, want %dx%d", w, h, defaultWidth, defaultHeight)
	}

	l = NewLoop(nil, RunConfig{Width: 320, Height: 200})
	w, h = l.Layout(1920, 1080)
	if w != 320 || h != 200 {
		t.Errorf("Layout = %dx%d, want 320x200", w, h)
	}
}

func TestLoopDebugLogsEachTick(t *testing.T) {
	u := &countingUpdater{}
	l := newTestLoop(u, RunConfig{Debug: true})

	var lines []string
	l.debugLog = func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	l.Update()
	l.Update()

	if len(lines) != 2 {
		t.Fatalf("expected 2 debug lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "[platform2d] update:") {
		t.Errorf("unexpected debug line %q", lines[0])
	}
	if !strings.Contains(lines[0], "dt: 0.2500s") {
		t.Errorf("debug line %q should report dt", lines[0])
	}
}

func TestLoopNoDebugLogByDefault(t *testing.T) {
	l := newTestLoop(&countingUpdater{}, RunConfig{})
	l.debugLog = func(format string, args ...any) {
		t.Errorf("unexpected debug log: "+format, args...)
	}
	l.Update()
}

func TestLoopOverlayOnlyWhenConfigured(t *testing.T) {
	if l := NewLoop(nil, RunConfig{}); l.overlay != nil {
		t.Error("overlay should be nil without ShowFPS or BuildInfo")
	}
	if l := NewLoop(nil, RunConfig{BuildInfo: "v1"}); l.overlay == nil {
		t.Error("overlay should exist with BuildInfo")
	}
}
