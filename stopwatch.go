package platform2d

import "time"

// Stopwatch accumulates elapsed time. It can measure wall-clock time between
// Start and Stop, or game time fed to it through Advance, or both.
type Stopwatch struct {
	elapsed time.Duration
	started time.Time
	running bool

	// now is replaced in tests.
	now func() time.Time
}

// NewStopwatch returns a stopped stopwatch at zero.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{now: time.Now}
}

// StartNewStopwatch returns a stopwatch that is already running.
func StartNewStopwatch() *Stopwatch {
	s := NewStopwatch()
	s.Start()
	return s
}

// Start begins or resumes wall-clock timing. It is a no-op while running.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.started = s.clock()
	s.running = true
}

// Stop pauses wall-clock timing, folding the running span into Elapsed.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.elapsed += s.clock().Sub(s.started)
	s.running = false
}

// Advance adds dt seconds of game time.
func (s *Stopwatch) Advance(dt float64) {
	s.elapsed += time.Duration(dt * float64(time.Second))
}

// Reset stops the stopwatch and clears it.
func (s *Stopwatch) Reset() {
	s.elapsed = 0
	s.running = false
}

// Restart clears the stopwatch and starts it again.
func (s *Stopwatch) Restart() {
	s.Reset()
	s.Start()
}

// IsRunning reports whether wall-clock timing is active.
func (s *Stopwatch) IsRunning() bool { return s.running }

// Elapsed returns the total accumulated time, including the current running
// span.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.elapsed + s.clock().Sub(s.started)
	}
	return s.elapsed
}

// Seconds returns Elapsed in seconds.
func (s *Stopwatch) Seconds() float64 { return s.Elapsed().Seconds() }

func (s *Stopwatch) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}
