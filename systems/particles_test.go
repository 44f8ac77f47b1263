package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/aurora/config"
)

// recorder captures draw calls for inspection.
type recorder struct {
	rects   []drawCall
	circles []drawCall
	lines   []drawCall
	order   []string
}

type drawCall struct {
	x1, y1, x2, y2 float32
	size           float32
	tint           Tint
}

func (r *recorder) FillRect(x, y, w, h float32, c Tint) {
	r.rects = append(r.rects, drawCall{x1: x, y1: y, x2: w, y2: h, tint: c})
	r.order = append(r.order, "rect")
}

func (r *recorder) FillCircle(x, y, radius float32, c Tint) {
	r.circles = append(r.circles, drawCall{x1: x, y1: y, size: radius, tint: c})
	r.order = append(r.order, "circle")
}

func (r *recorder) StrokeLine(x1, y1, x2, y2, width float32, c Tint) {
	r.lines = append(r.lines, drawCall{x1: x1, y1: y1, x2: x2, y2: y2, size: width, tint: c})
	r.order = append(r.order, "line")
}

func testParams(t *testing.T, count int) FieldParams {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	p := ParamsFromConfig(cfg)
	p.Count = count
	return p
}

func newTestField(t *testing.T, count int) *ParticleField {
	t.Helper()
	return NewParticleField(testParams(t, count), rand.New(rand.NewSource(7)))
}

// steady returns a mid-life particle that will not expire for a while.
func steady(x, y, vx, vy float32) Particle {
	return Particle{X: x, Y: y, VX: vx, VY: vy, Radius: 2, R: 0, G: 123, B: 255, Age: 100, Lifespan: 400, Opacity: 1}
}

func TestInitializePopulatesField(t *testing.T) {
	f := newTestField(t, 100)
	f.Initialize(800, 600)

	if f.Count() != 100 {
		t.Fatalf("count = %d, want 100", f.Count())
	}

	params := f.Params()
	for i, p := range f.Particles() {
		if p.X < 0 || p.X >= 800 || p.Y < 0 || p.Y >= 600 {
			t.Errorf("particle %d at (%v, %v) outside canvas", i, p.X, p.Y)
		}
		if p.Radius < params.MinSize || p.Radius > params.MaxSize {
			t.Errorf("particle %d radius %v outside [%v, %v]", i, p.Radius, params.MinSize, params.MaxSize)
		}
		if math.Abs(float64(p.VX)) > float64(params.Speed/2) || math.Abs(float64(p.VY)) > float64(params.Speed/2) {
			t.Errorf("particle %d velocity (%v, %v) exceeds speed/2", i, p.VX, p.VY)
		}
		if p.Lifespan < 200 || p.Lifespan >= 500 {
			t.Errorf("particle %d lifespan %d outside [200, 500)", i, p.Lifespan)
		}
		if p.Age != 0 || p.Opacity != 0 {
			t.Errorf("particle %d starts with age %d opacity %v, want 0/0", i, p.Age, p.Opacity)
		}
		if !nearPaletteEntry(p, params) {
			t.Errorf("particle %d colour (%d,%d,%d) not within jitter of any palette entry", i, p.R, p.G, p.B)
		}
	}
}

func nearPaletteEntry(p Particle, params FieldParams) bool {
	half := float64(params.ColorJitter)/2 + 1
	within := func(c, base uint8) bool {
		return math.Abs(float64(c)-float64(base)) <= half
	}
	for _, base := range params.Palette {
		if within(p.R, base.R) && within(p.G, base.G) && within(p.B, base.B) {
			return true
		}
	}
	return false
}

func TestInitializeOnResizeDiscardsOldParticles(t *testing.T) {
	f := newTestField(t, 100)
	f.Initialize(1920, 1080)
	for i := 0; i < 10; i++ {
		f.AdvanceFrame(1920, 1080, NoPointer)
	}

	f.Initialize(200, 100)
	if f.Count() != 100 {
		t.Fatalf("count after resize = %d, want 100", f.Count())
	}
	for i, p := range f.Particles() {
		if p.Age != 0 {
			t.Errorf("particle %d survived resize with age %d", i, p.Age)
		}
		if p.X >= 200 || p.Y >= 100 {
			t.Errorf("particle %d at (%v, %v) outside resized canvas", i, p.X, p.Y)
		}
	}
}

func TestPopulationInvariant(t *testing.T) {
	f := newTestField(t, 100)
	f.Initialize(640, 480)

	for frame := 0; frame < 1200; frame++ {
		pointer := NoPointer
		if frame%3 == 0 {
			pointer = PointerAt(float32(frame%640), 240)
		}
		f.AdvanceFrame(640, 480, pointer)

		if f.Count() != 100 {
			t.Fatalf("frame %d: count = %d, want 100", frame, f.Count())
		}
	}
	if got := len(f.Particles()); got != 100 {
		t.Errorf("snapshot has %d particles, want 100", got)
	}
}

func TestOpacityAndPositionBounds(t *testing.T) {
	f := newTestField(t, 100)
	f.Initialize(300, 200)

	for frame := 0; frame < 600; frame++ {
		f.AdvanceFrame(300, 200, PointerAt(150, 100))
		for i, p := range f.Particles() {
			if p.Opacity < 0 || p.Opacity > 1 {
				t.Fatalf("frame %d particle %d: opacity %v outside [0, 1]", frame, i, p.Opacity)
			}
			if p.X < 0 || p.X >= 300 || p.Y < 0 || p.Y >= 200 {
				t.Fatalf("frame %d particle %d: position (%v, %v) outside canvas", frame, i, p.X, p.Y)
			}
		}
	}
}

func TestAdvanceFrameWrapsRightEdge(t *testing.T) {
	f := newTestField(t, 1)
	f.Initialize(100, 100)
	f.clear()
	f.spawn(steady(99, 50, 2, 0))

	f.AdvanceFrame(100, 100, NoPointer)

	got := f.Particles()
	if len(got) != 1 {
		t.Fatalf("expected 1 particle, got %d", len(got))
	}
	if math.Abs(float64(got[0].X-1)) > 1e-4 || got[0].Y != 50 {
		t.Errorf("position = (%v, %v), want (1, 50)", got[0].X, got[0].Y)
	}
}

func TestAdvanceFrameWrapsAllEdges(t *testing.T) {
	tests := []struct {
		name         string
		start        Particle
		wantX, wantY float32
	}{
		{"left", steady(0.5, 50, -1, 0), 99.5, 50},
		{"top", steady(50, 0.25, 0, -0.5), 50, 99.75},
		{"bottom", steady(50, 99.5, 0, 1), 50, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField(t, 1)
			f.Initialize(100, 100)
			f.clear()
			f.spawn(tt.start)

			f.AdvanceFrame(100, 100, NoPointer)

			p := f.Particles()[0]
			if math.Abs(float64(p.X-tt.wantX)) > 1e-4 || math.Abs(float64(p.Y-tt.wantY)) > 1e-4 {
				t.Errorf("position = (%v, %v), want (%v, %v)", p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestExpiryReplacesParticleInSameFrame(t *testing.T) {
	f := newTestField(t, 1)
	f.Initialize(100, 100)
	f.clear()
	dying := steady(10, 10, 0, 0)
	dying.Age = 299
	dying.Lifespan = 300
	f.spawn(dying)

	f.AdvanceFrame(100, 100, NoPointer)

	if f.Count() != 1 {
		t.Fatalf("count = %d, want 1", f.Count())
	}
	stats := f.Stats()
	if stats.Expired != 1 || stats.Spawned != 1 {
		t.Errorf("expired/spawned = %d/%d, want 1/1", stats.Expired, stats.Spawned)
	}
	p := f.Particles()[0]
	if p.Age != 0 {
		t.Errorf("replacement age = %d, want 0", p.Age)
	}
}

func TestNearExpiryParticleSurvives(t *testing.T) {
	f := newTestField(t, 1)
	f.Initialize(100, 100)
	f.clear()
	p := steady(10, 10, 0, 0)
	p.Age = 298
	p.Lifespan = 300
	f.spawn(p)

	// Age 299 gives opacity 1/60, above the 0.01 floor
	f.AdvanceFrame(100, 100, NoPointer)

	got := f.Particles()[0]
	if got.Age != 299 {
		t.Errorf("age = %d, want 299 (particle should survive)", got.Age)
	}
	if f.Stats().Expired != 0 {
		t.Errorf("expired = %d, want 0", f.Stats().Expired)
	}
}

func TestNoPointerOnlyVelocity(t *testing.T) {
	f := newTestField(t, 4)
	f.Initialize(400, 400)
	f.clear()
	starts := []Particle{
		steady(10, 10, 0.02, -0.01),
		steady(200, 200, -0.02, 0.02),
		steady(390, 5, 0.01, 0.01),
		steady(150, 399.99, 0, 0.025),
	}
	for _, p := range starts {
		f.spawn(p)
	}

	f.AdvanceFrame(400, 400, NoPointer)

	got := f.Particles()
	for i, p := range got {
		wantX := Wrap(starts[i].X+starts[i].VX, 400)
		wantY := Wrap(starts[i].Y+starts[i].VY, 400)
		if p.X != wantX || p.Y != wantY {
			t.Errorf("particle %d at (%v, %v), want (%v, %v)", i, p.X, p.Y, wantX, wantY)
		}
	}
}

func TestPointerOutsideRadiusHasNoEffect(t *testing.T) {
	f := newTestField(t, 1)
	f.Initialize(400, 400)
	f.clear()
	f.spawn(steady(100, 100, 0, 0))

	f.AdvanceFrame(400, 400, PointerAt(300, 300))

	p := f.Particles()[0]
	if p.X != 100 || p.Y != 100 {
		t.Errorf("position = (%v, %v), want unchanged (100, 100)", p.X, p.Y)
	}
}

func TestPointerRepelsNearbyParticle(t *testing.T) {
	f := newTestField(t, 1)
	f.Initialize(400, 400)
	f.clear()
	f.spawn(steady(100, 100, 0, 0))

	f.AdvanceFrame(400, 400, PointerAt(90, 100))

	p := f.Particles()[0]
	if p.X <= 100 {
		t.Errorf("x = %v, want pushed away from pointer (> 100)", p.X)
	}
	if p.Y != 100 {
		t.Errorf("y = %v, want unchanged", p.Y)
	}
	// Barely perceptible: well under one pixel per frame
	if p.X-100 >= 1 {
		t.Errorf("displacement %v too strong", p.X-100)
	}
}

func TestRenderOrderAndTrail(t *testing.T) {
	f := newTestField(t, 20)
	f.Initialize(500, 300)
	for i := 0; i < 90; i++ {
		f.AdvanceFrame(500, 300, NoPointer)
	}

	rec := &recorder{}
	f.Render(rec)

	if len(rec.rects) != 1 || rec.order[0] != "rect" {
		t.Fatalf("expected trail rectangle first, got order %v", rec.order[:min(3, len(rec.order))])
	}
	trail := rec.rects[0]
	if trail.x1 != 0 || trail.y1 != 0 || trail.x2 != 500 || trail.y2 != 300 {
		t.Errorf("trail rect = %+v, want full canvas", trail)
	}
	if math.Abs(float64(trail.tint.Alpha-0.05)) > 1e-6 {
		t.Errorf("trail alpha = %v, want 0.05", trail.tint.Alpha)
	}
	if trail.tint.R != 10 || trail.tint.G != 27 || trail.tint.B != 44 {
		t.Errorf("trail colour = %+v, want (10, 27, 44)", trail.tint)
	}

	// Circles precede lines
	seenLine := false
	for _, op := range rec.order[1:] {
		if op == "line" {
			seenLine = true
		}
		if op == "circle" && seenLine {
			t.Fatal("circle drawn after connection lines")
		}
	}
}

func TestRenderConnectionLines(t *testing.T) {
	f := newTestField(t, 3)
	f.Initialize(500, 500)
	f.clear()
	f.spawn(steady(100, 100, 0, 0))
	f.spawn(steady(150, 100, 0, 0)) // 50 from the first
	f.spawn(steady(400, 400, 0, 0)) // far from both
	f.AdvanceFrame(500, 500, NoPointer)

	rec := &recorder{}
	f.Render(rec)

	if len(rec.circles) != 3 {
		t.Errorf("drew %d circles, want 3", len(rec.circles))
	}
	if len(rec.lines) != 1 {
		t.Fatalf("drew %d lines, want 1", len(rec.lines))
	}
	line := rec.lines[0]
	if math.Abs(float64(line.tint.Alpha-0.1)) > 1e-6 {
		t.Errorf("line alpha = %v, want 0.1", line.tint.Alpha)
	}
	if line.tint.R != 0 || line.tint.G != 123 || line.tint.B != 255 {
		t.Errorf("line colour = %+v, want (0, 123, 255)", line.tint)
	}
	if line.size != 0.5 {
		t.Errorf("line width = %v, want 0.5", line.size)
	}

	stats := f.Stats()
	if stats.Connections != 1 {
		t.Errorf("stats connections = %d, want 1", stats.Connections)
	}
}

func TestRenderSkipsFreshParticles(t *testing.T) {
	f := newTestField(t, 10)
	f.Initialize(200, 200)

	rec := &recorder{}
	f.Render(rec)

	if len(rec.circles) != 0 || len(rec.lines) != 0 {
		t.Errorf("fresh particles drew %d circles and %d lines, want none", len(rec.circles), len(rec.lines))
	}
}

func TestZeroCanvasDegradesSilently(t *testing.T) {
	f := newTestField(t, 10)
	f.Initialize(0, 0)
	for i := 0; i < 100; i++ {
		f.AdvanceFrame(0, 0, PointerAt(0, 0))
	}

	if f.Count() != 10 {
		t.Errorf("count = %d, want 10", f.Count())
	}
	for i, p := range f.Particles() {
		if p.X != 0 || p.Y != 0 {
			t.Errorf("particle %d at (%v, %v), want origin", i, p.X, p.Y)
		}
		if math.IsNaN(float64(p.Opacity)) {
			t.Errorf("particle %d has NaN opacity", i)
		}
	}

	rec := &recorder{}
	f.Render(rec)
	if len(rec.rects) != 1 || rec.rects[0].x2 != 0 || rec.rects[0].y2 != 0 {
		t.Errorf("expected a single zero-area trail rect, got %+v", rec.rects)
	}
}

func TestStatsMeanOpacity(t *testing.T) {
	f := newTestField(t, 2)
	f.Initialize(100, 100)
	f.clear()
	f.spawn(steady(10, 10, 0, 0))
	f.spawn(steady(90, 90, 0, 0))

	f.AdvanceFrame(100, 100, NoPointer)

	stats := f.Stats()
	if stats.Frame != 1 {
		t.Errorf("frame = %d, want 1", stats.Frame)
	}
	if math.Abs(stats.MeanOpacity-1) > 1e-6 {
		t.Errorf("mean opacity = %v, want 1", stats.MeanOpacity)
	}
}

func TestNearest(t *testing.T) {
	f := newTestField(t, 0)
	f.Initialize(200, 200)
	f.spawn(steady(10, 10, 0, 0))
	f.spawn(steady(50, 50, 0, 0))
	f.spawn(steady(54, 50, 0, 0))

	p, ok := f.Nearest(53, 50, 20)
	if !ok {
		t.Fatal("expected a particle within range")
	}
	if p.X != 54 || p.Y != 50 {
		t.Errorf("nearest = (%v, %v), want (54, 50)", p.X, p.Y)
	}

	if _, ok := f.Nearest(150, 150, 20); ok {
		t.Error("no particle should be within 20 of (150, 150)")
	}
}

func TestParticleComponentsRoundTrip(t *testing.T) {
	want := steady(1, 2, 0.01, -0.02)
	pos, vel, app, life := want.Components()
	if got := toParticle(&pos, &vel, &app, &life); got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLookupAfterExpiry(t *testing.T) {
	f := newTestField(t, 0)
	f.Initialize(200, 200)
	dying := steady(20, 20, 0, 0)
	dying.Age = 399
	e := f.spawn(dying)
	keep := f.spawn(steady(100, 100, 0, 0))

	if got, ok := f.EntityNear(21, 20, 5); !ok || got != e {
		t.Fatalf("EntityNear = %v, %v; want %v", got, ok, e)
	}

	f.AdvanceFrame(200, 200, NoPointer)

	if _, ok := f.Lookup(e); ok {
		t.Error("expired particle still resolvable")
	}
	p, ok := f.Lookup(keep)
	if !ok {
		t.Fatal("live particle not resolvable")
	}
	if p.Age != 101 {
		t.Errorf("age = %d, want 101", p.Age)
	}
}

func TestSetTuning(t *testing.T) {
	f := newTestField(t, 0)
	f.Initialize(300, 300)
	f.spawn(steady(100, 100, 0, 0))
	f.spawn(steady(140, 100, 0, 0))

	f.SetTuning(30, 0)
	rec := &recorder{}
	f.Render(rec)
	if len(rec.lines) != 0 {
		t.Errorf("drew %d lines with connection distance 30, want 0", len(rec.lines))
	}

	// Zero influence radius disables repulsion
	f.AdvanceFrame(300, 300, PointerAt(101, 100))
	if p, _ := f.Nearest(100, 100, 1); p.X != 100 {
		t.Errorf("particle moved to %v with zero influence radius", p.X)
	}

	f.SetTuning(-5, 50)
	if got := f.Params().ConnectionDistance; got != 0 {
		t.Errorf("connection distance = %v, want 0", got)
	}
	if got := f.Params().InfluenceRadius; got != 50 {
		t.Errorf("influence radius = %v, want 50", got)
	}
}
