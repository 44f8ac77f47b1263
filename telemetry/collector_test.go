package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/aurora/systems"
)

func TestCollectorFlushAggregatesWindow(t *testing.T) {
	c := NewCollector(4, 60)

	frames := []systems.FrameStats{
		{Frame: 1, Particles: 100, Expired: 1, Spawned: 1, MeanOpacity: 0.5, Connections: 10, MeanLineAlpha: 0.1},
		{Frame: 2, Particles: 100, Expired: 0, Spawned: 0, MeanOpacity: 0.6, Connections: 20, MeanLineAlpha: 0.05},
		{Frame: 3, Particles: 100, Expired: 2, Spawned: 2, MeanOpacity: 0.7, Connections: 0},
		{Frame: 4, Particles: 100, Expired: 0, Spawned: 0, MeanOpacity: 0.8, Connections: 30, MeanLineAlpha: 0.15},
	}
	for i, fs := range frames {
		if c.ShouldFlush(fs.Frame - 1) {
			t.Fatalf("frame %d: flush requested too early", i)
		}
		c.RecordFrame(fs, i%2 == 0)
	}
	c.RecordResize()

	if !c.ShouldFlush(4) {
		t.Fatal("expected flush after 4 frames")
	}

	stats := c.Flush(4)

	if stats.WindowStartFrame != 0 || stats.WindowEndFrame != 4 {
		t.Errorf("window = [%d, %d], want [0, 4]", stats.WindowStartFrame, stats.WindowEndFrame)
	}
	if stats.Particles != 100 {
		t.Errorf("particles = %d, want 100", stats.Particles)
	}
	if stats.Expired != 3 || stats.Spawned != 3 {
		t.Errorf("expired/spawned = %d/%d, want 3/3", stats.Expired, stats.Spawned)
	}
	if math.Abs(stats.OpacityMean-0.65) > 1e-9 {
		t.Errorf("opacity mean = %v, want 0.65", stats.OpacityMean)
	}
	if stats.ConnectionsMax != 30 {
		t.Errorf("connections max = %d, want 30", stats.ConnectionsMax)
	}
	if math.Abs(stats.ConnectionsMean-15) > 1e-9 {
		t.Errorf("connections mean = %v, want 15", stats.ConnectionsMean)
	}
	// Frames without lines are excluded from the alpha mean
	if math.Abs(stats.LineAlphaMean-0.1) > 1e-9 {
		t.Errorf("line alpha mean = %v, want 0.1", stats.LineAlphaMean)
	}
	if stats.PointerFrames != 2 {
		t.Errorf("pointer frames = %d, want 2", stats.PointerFrames)
	}
	if stats.Resizes != 1 {
		t.Errorf("resizes = %d, want 1", stats.Resizes)
	}
	if math.Abs(stats.ElapsedSec-4.0/60) > 1e-9 {
		t.Errorf("elapsed = %v, want %v", stats.ElapsedSec, 4.0/60)
	}
}

func TestCollectorResetsAfterFlush(t *testing.T) {
	c := NewCollector(2, 30)
	c.RecordFrame(systems.FrameStats{Frame: 1, Expired: 5, Spawned: 5}, true)
	c.Flush(2)

	if c.ShouldFlush(3) {
		t.Error("flush requested one frame into new window")
	}
	stats := c.Flush(4)
	if stats.Expired != 0 || stats.PointerFrames != 0 {
		t.Errorf("counters not reset: expired=%d pointer=%d", stats.Expired, stats.PointerFrames)
	}
	if stats.WindowStartFrame != 2 {
		t.Errorf("window start = %d, want 2", stats.WindowStartFrame)
	}
}

func TestNewCollectorClampsWindow(t *testing.T) {
	c := NewCollector(0, 0)
	if c.WindowFrames() != 1 {
		t.Errorf("window frames = %d, want 1", c.WindowFrames())
	}
}
