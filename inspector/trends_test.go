package inspector

import (
	"math"
	"testing"

	"github.com/pthm-cable/aurora/telemetry"
)

func TestTrendPanelRingBuffer(t *testing.T) {
	p := NewTrendPanel(1280, 800)

	for i := 0; i < trendHistorySize+5; i++ {
		p.Record(telemetry.WindowStats{OpacityMean: float64(i)})
	}

	if p.Len() != trendHistorySize {
		t.Fatalf("Len() = %d, want %d", p.Len(), trendHistorySize)
	}
	// Oldest surviving window is the sixth recorded
	if got := p.value(seriesOpacity, 0); got != 5 {
		t.Errorf("oldest = %v, want 5", got)
	}
	if got := p.value(seriesOpacity, trendHistorySize-1); got != float64(trendHistorySize+4) {
		t.Errorf("newest = %v, want %d", got, trendHistorySize+4)
	}
}

func TestTrendPanelSeriesRange(t *testing.T) {
	p := NewTrendPanel(1280, 800)

	if min, max := p.seriesRange(fractionSeries); min != 0 || max != 1 {
		t.Errorf("empty range = [%v, %v], want [0, 1]", min, max)
	}

	p.Record(telemetry.WindowStats{OpacityMean: 0.4, LineAlphaMean: 0.05, ConnectionsMean: 10})
	p.Record(telemetry.WindowStats{OpacityMean: 0.6, LineAlphaMean: 0.05, ConnectionsMean: 30})

	min, max := p.seriesRange(fractionSeries)
	// Visible: opacity and line alpha, span [0.05, 0.6] padded by 10%
	if math.Abs(min-(0.05-0.055)) > 1e-9 || math.Abs(max-(0.6+0.055)) > 1e-9 {
		t.Errorf("fraction range = [%v, %v]", min, max)
	}

	min, max = p.seriesRange(countSeries)
	if math.Abs(min-8) > 1e-9 || math.Abs(max-32) > 1e-9 {
		t.Errorf("count range = [%v, %v], want [8, 32]", min, max)
	}

	// Hiding every fraction series falls back to the unit range
	p.Toggle(seriesOpacity)
	p.Toggle(seriesLineAlpha)
	if min, max := p.seriesRange(fractionSeries); min != 0 || max != 1 {
		t.Errorf("hidden range = [%v, %v], want [0, 1]", min, max)
	}
}

func TestTrendPanelFlatSeries(t *testing.T) {
	p := NewTrendPanel(1280, 800)
	p.Toggle(seriesConnections)
	p.Toggle(seriesExpired)
	p.Record(telemetry.WindowStats{Expired: 3})
	p.Record(telemetry.WindowStats{Expired: 3})

	min, max := p.seriesRange(countSeries)
	if min != 2.5 || max != 3.5 {
		t.Errorf("flat range = [%v, %v], want [2.5, 3.5]", min, max)
	}
}

func TestTrendPanelResize(t *testing.T) {
	p := NewTrendPanel(300, 600)
	if p.panelWidth != 400 {
		t.Errorf("panel width = %d, want minimum 400", p.panelWidth)
	}
	p.Resize(1920, 1080)
	if p.panelWidth != 1900 || p.panelY != 1080-180-40 {
		t.Errorf("after resize: width=%d y=%d", p.panelWidth, p.panelY)
	}
}
