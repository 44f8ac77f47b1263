package telemetry

import "github.com/pthm-cable/aurora/systems"

// Collector accumulates per-frame field statistics and produces WindowStats.
type Collector struct {
	windowFrames int64
	frameSec     float64

	// Current window tracking
	windowStartFrame int64
	lastFrame        int64
	particles        int

	// Counters for current window
	expired       int
	spawned       int
	pointerFrames int
	resizes       int

	// Per-frame samples for distribution stats
	opacity     []float64
	connections []float64
	lineAlpha   []float64
}

// NewCollector creates a new stats collector.
// windowFrames: frames per stats window
// targetFPS: nominal frame rate (used for frame-to-time conversion)
func NewCollector(windowFrames, targetFPS int) *Collector {
	if windowFrames < 1 {
		windowFrames = 1
	}
	frameSec := 1.0 / 60.0
	if targetFPS > 0 {
		frameSec = 1.0 / float64(targetFPS)
	}

	return &Collector{
		windowFrames: int64(windowFrames),
		frameSec:     frameSec,
		opacity:      make([]float64, 0, windowFrames),
		connections:  make([]float64, 0, windowFrames),
		lineAlpha:    make([]float64, 0, windowFrames),
	}
}

// RecordFrame records the stats of one completed frame.
func (c *Collector) RecordFrame(fs systems.FrameStats, pointerPresent bool) {
	c.lastFrame = fs.Frame
	c.particles = fs.Particles
	c.expired += fs.Expired
	c.spawned += fs.Spawned
	if pointerPresent {
		c.pointerFrames++
	}

	c.opacity = append(c.opacity, fs.MeanOpacity)
	c.connections = append(c.connections, float64(fs.Connections))
	if fs.Connections > 0 {
		c.lineAlpha = append(c.lineAlpha, fs.MeanLineAlpha)
	}
}

// RecordResize records a viewport resize.
func (c *Collector) RecordResize() {
	c.resizes++
}

// ShouldFlush returns true if enough frames have passed to flush the window.
func (c *Collector) ShouldFlush(currentFrame int64) bool {
	return currentFrame-c.windowStartFrame >= c.windowFrames
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentFrame int64) WindowStats {
	opMean, opP10, opP50, opP90 := Summarize(c.opacity)
	connMean, connStd := MeanStd(c.connections)
	alphaMean, _ := MeanStd(c.lineAlpha)

	connMax := 0
	for _, n := range c.connections {
		if int(n) > connMax {
			connMax = int(n)
		}
	}

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   currentFrame,
		ElapsedSec:       float64(currentFrame) * c.frameSec,

		Particles: c.particles,
		Expired:   c.expired,
		Spawned:   c.spawned,

		OpacityMean: opMean,
		OpacityP10:  opP10,
		OpacityP50:  opP50,
		OpacityP90:  opP90,

		ConnectionsMean: connMean,
		ConnectionsStd:  connStd,
		ConnectionsMax:  connMax,
		LineAlphaMean:   alphaMean,

		PointerFrames: c.pointerFrames,
		Resizes:       c.resizes,
	}

	// Reset for next window
	c.windowStartFrame = currentFrame
	c.expired = 0
	c.spawned = 0
	c.pointerFrames = 0
	c.resizes = 0
	c.opacity = c.opacity[:0]
	c.connections = c.connections[:0]
	c.lineAlpha = c.lineAlpha[:0]

	return stats
}

// WindowFrames returns the number of frames per window.
func (c *Collector) WindowFrames() int64 {
	return c.windowFrames
}
