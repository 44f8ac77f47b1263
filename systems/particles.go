package systems

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aurora/components"
)

// Particle is a flat snapshot of one particle's components.
type Particle struct {
	X, Y     float32
	VX, VY   float32
	Radius   float32
	R, G, B  uint8
	Age      int32
	Lifespan int32
	Opacity  float32
}

// FrameStats summarizes the most recent AdvanceFrame and Render calls.
type FrameStats struct {
	Frame         int64
	Particles     int
	Expired       int
	Spawned       int
	MeanOpacity   float64
	Connections   int
	MeanLineAlpha float64
}

// ParticleField owns a fixed-size population of particles and renders
// one animation frame at a time. Not safe for concurrent use; it is driven
// from a single frame callback.
type ParticleField struct {
	params FieldParams
	rng    *rand.Rand

	world  *ecs.World
	mapper *ecs.Map4[
		components.Position,
		components.Velocity,
		components.Appearance,
		components.Life,
	]
	filter *ecs.Filter4[
		components.Position,
		components.Velocity,
		components.Appearance,
		components.Life,
	]

	width, height float32
	population    int
	frame         int64
	stats         FrameStats

	// Scratch buffers reused across frames
	expired []ecs.Entity
	visible []Particle
}

// NewParticleField creates an empty field. Call Initialize before the first frame.
func NewParticleField(params FieldParams, rng *rand.Rand) *ParticleField {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	world := ecs.NewWorld()
	return &ParticleField{
		params: params,
		rng:    rng,
		world:  world,
		mapper: ecs.NewMap4[
			components.Position,
			components.Velocity,
			components.Appearance,
			components.Life,
		](world),
		filter: ecs.NewFilter4[
			components.Position,
			components.Velocity,
			components.Appearance,
			components.Life,
		](world),
		visible: make([]Particle, 0, params.Count),
	}
}

// Initialize discards all particles and repopulates the field for a
// canvas of the given size. Called at startup and on every resize.
func (f *ParticleField) Initialize(width, height float32) {
	f.width = width
	f.height = height
	f.clear()
	for i := 0; i < f.params.Count; i++ {
		f.spawn(f.newParticle())
	}
	f.stats = FrameStats{Frame: f.frame, Particles: f.population, Spawned: f.population}
}

// AdvanceFrame ages, moves and wraps every particle, applies pointer
// repulsion when the pointer is present, and replaces expired particles
// so the population stays at the configured count.
func (f *ParticleField) AdvanceFrame(width, height float32, pointer Pointer) {
	f.width = width
	f.height = height
	f.frame++
	f.expired = f.expired[:0]

	p := &f.params
	var opacitySum float64

	query := f.filter.Query()
	for query.Next() {
		pos, vel, _, life := query.Get()

		life.Age++
		life.Opacity = FadeOpacity(life.Age, life.Lifespan, p.FadeFrames)
		if life.Expired(p.ExpireOpacity) {
			f.expired = append(f.expired, query.Entity())
			continue
		}

		pos.X = Wrap(pos.X+vel.X, width)
		pos.Y = Wrap(pos.Y+vel.Y, height)

		if pointer.Present {
			ox, oy := RepulsionOffset(pos.X, pos.Y, pointer.X, pointer.Y,
				p.InfluenceRadius, p.RepulsionStrength, p.RepulsionDamping)
			if ox != 0 || oy != 0 {
				pos.X = Wrap(pos.X+ox, width)
				pos.Y = Wrap(pos.Y+oy, height)
			}
		}

		opacitySum += float64(life.Opacity)
	}

	// Replace after iteration; the world is locked while a query is open
	for _, e := range f.expired {
		f.world.RemoveEntity(e)
		f.population--
	}
	for range f.expired {
		f.spawn(f.newParticle())
	}

	f.stats.Frame = f.frame
	f.stats.Particles = f.population
	f.stats.Expired = len(f.expired)
	f.stats.Spawned = len(f.expired)
	f.stats.MeanOpacity = 0
	if f.population > 0 {
		// Fresh particles contribute zero opacity
		f.stats.MeanOpacity = opacitySum / float64(f.population)
	}
}

// Render paints the trail overlay, every visible particle, and the
// connection lines between particles closer than the connection distance.
// The pairwise pass is O(n^2) in the population size.
func (f *ParticleField) Render(target DrawTarget) {
	p := &f.params
	target.FillRect(0, 0, f.width, f.height, p.Trail)

	f.visible = f.visible[:0]
	query := f.filter.Query()
	for query.Next() {
		pos, vel, app, life := query.Get()
		if life.Opacity <= 0 {
			continue
		}
		target.FillCircle(pos.X, pos.Y, app.Radius, Tint{R: app.R, G: app.G, B: app.B, Alpha: life.Opacity})
		f.visible = append(f.visible, toParticle(pos, vel, app, life))
	}

	var alphaSum float64
	connections := 0
	for a := 0; a < len(f.visible); a++ {
		pa := &f.visible[a]
		for b := a + 1; b < len(f.visible); b++ {
			pb := &f.visible[b]
			d := distance(pa.X, pa.Y, pb.X, pb.Y)
			if d >= p.ConnectionDistance {
				continue
			}
			alpha := ConnectionAlpha(d, p.ConnectionDistance, pa.Opacity, pb.Opacity, p.AlphaScale)
			if alpha <= 0 {
				continue
			}
			line := p.Line
			line.Alpha = alpha
			target.StrokeLine(pa.X, pa.Y, pb.X, pb.Y, p.LineWidth, line)
			alphaSum += float64(alpha)
			connections++
		}
	}

	f.stats.Connections = connections
	f.stats.MeanLineAlpha = 0
	if connections > 0 {
		f.stats.MeanLineAlpha = alphaSum / float64(connections)
	}
}

// Count returns the current population size.
func (f *ParticleField) Count() int {
	return f.population
}

// Size returns the canvas dimensions last seen by the field.
func (f *ParticleField) Size() (float32, float32) {
	return f.width, f.height
}

// Stats returns statistics for the most recent frame.
func (f *ParticleField) Stats() FrameStats {
	return f.stats
}

// Params returns the field configuration.
func (f *ParticleField) Params() FieldParams {
	return f.params
}

// SetTuning adjusts the connection distance and pointer influence radius
// of a running field. Negative values are treated as zero.
func (f *ParticleField) SetTuning(connectionDistance, influenceRadius float32) {
	f.params.ConnectionDistance = max(connectionDistance, 0)
	f.params.InfluenceRadius = max(influenceRadius, 0)
}

// Particles returns a snapshot of every particle in the field.
func (f *ParticleField) Particles() []Particle {
	out := make([]Particle, 0, f.population)
	query := f.filter.Query()
	for query.Next() {
		pos, vel, app, life := query.Get()
		out = append(out, toParticle(pos, vel, app, life))
	}
	return out
}

// Nearest returns the particle closest to (x, y) within maxDist.
func (f *ParticleField) Nearest(x, y, maxDist float32) (Particle, bool) {
	e, ok := f.EntityNear(x, y, maxDist)
	if !ok {
		return Particle{}, false
	}
	return f.Lookup(e)
}

// EntityNear returns the entity of the particle closest to (x, y) within maxDist.
func (f *ParticleField) EntityNear(x, y, maxDist float32) (ecs.Entity, bool) {
	var best ecs.Entity
	found := false
	bestDist := maxDist

	query := f.filter.Query()
	for query.Next() {
		pos, _, _, _ := query.Get()
		if d := distance(x, y, pos.X, pos.Y); d <= bestDist {
			bestDist = d
			best = query.Entity()
			found = true
		}
	}
	return best, found
}

// Lookup returns the snapshot of a particle entity. ok is false once the
// particle has expired or the field was re-initialized.
func (f *ParticleField) Lookup(e ecs.Entity) (Particle, bool) {
	if !f.world.Alive(e) {
		return Particle{}, false
	}
	pos, vel, app, life := f.mapper.Get(e)
	return toParticle(pos, vel, app, life), true
}

// Components splits the snapshot back into its component values.
func (p Particle) Components() (components.Position, components.Velocity, components.Appearance, components.Life) {
	return components.Position{X: p.X, Y: p.Y},
		components.Velocity{X: p.VX, Y: p.VY},
		components.Appearance{Radius: p.Radius, R: p.R, G: p.G, B: p.B},
		components.Life{Age: p.Age, Lifespan: p.Lifespan, Opacity: p.Opacity}
}

// newParticle builds a particle with random position, size, velocity,
// lifespan and a jittered palette colour.
func (f *ParticleField) newParticle() Particle {
	p := &f.params
	r, g, b := f.jitteredColor()

	lifespan := p.MinLifespan
	if span := p.MaxLifespan - p.MinLifespan; span > 0 {
		lifespan += f.rng.Int31n(span)
	}

	return Particle{
		X:        f.rng.Float32() * max(f.width, 0),
		Y:        f.rng.Float32() * max(f.height, 0),
		VX:       (f.rng.Float32() - 0.5) * p.Speed,
		VY:       (f.rng.Float32() - 0.5) * p.Speed,
		Radius:   f.rng.Float32()*(p.MaxSize-p.MinSize) + p.MinSize,
		R:        r,
		G:        g,
		B:        b,
		Lifespan: lifespan,
	}
}

// jitteredColor picks a palette entry and offsets each channel by up to
// half the configured jitter in either direction.
func (f *ParticleField) jitteredColor() (uint8, uint8, uint8) {
	palette := f.params.Palette
	if len(palette) == 0 {
		return 255, 255, 255
	}
	base := palette[f.rng.Intn(len(palette))]
	jitter := func(c uint8) uint8 {
		v := float32(c) + (f.rng.Float32()-0.5)*f.params.ColorJitter
		return uint8(math.Round(float64(clampFloat(v, 0, 255))))
	}
	return jitter(base.R), jitter(base.G), jitter(base.B)
}

// spawn adds a particle entity built from the snapshot.
func (f *ParticleField) spawn(p Particle) ecs.Entity {
	pos, vel, app, life := p.Components()
	entity := f.mapper.NewEntity(&pos, &vel, &app, &life)
	f.population++
	return entity
}

// clear removes every particle entity.
func (f *ParticleField) clear() {
	var all []ecs.Entity
	query := f.filter.Query()
	for query.Next() {
		all = append(all, query.Entity())
	}
	for _, e := range all {
		f.world.RemoveEntity(e)
	}
	f.population = 0
}

func toParticle(pos *components.Position, vel *components.Velocity, app *components.Appearance, life *components.Life) Particle {
	return Particle{
		X:        pos.X,
		Y:        pos.Y,
		VX:       vel.X,
		VY:       vel.Y,
		Radius:   app.Radius,
		R:        app.R,
		G:        app.G,
		B:        app.B,
		Age:      life.Age,
		Lifespan: life.Lifespan,
		Opacity:  life.Opacity,
	}
}
