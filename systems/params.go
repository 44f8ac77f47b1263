package systems

import "github.com/pthm-cable/aurora/config"

// FieldParams holds the fixed configuration of a ParticleField.
type FieldParams struct {
	Count              int
	MinSize, MaxSize   float32
	Speed              float32
	ConnectionDistance float32
	InfluenceRadius    float32
	RepulsionStrength  float32
	RepulsionDamping   float32
	FadeFrames         int32
	MinLifespan        int32 // inclusive
	MaxLifespan        int32 // exclusive
	ExpireOpacity      float32
	ColorJitter        float32
	Palette            []config.RGBColor

	Trail      Tint
	Line       Tint // Alpha is ignored; per-line alpha is computed
	LineWidth  float32
	AlphaScale float32
}

// ParamsFromConfig builds field parameters from the loaded config.
func ParamsFromConfig(cfg *config.Config) FieldParams {
	p := cfg.Particles
	return FieldParams{
		Count:              p.Count,
		MinSize:            float32(p.MinSize),
		MaxSize:            float32(p.MaxSize),
		Speed:              float32(p.Speed),
		ConnectionDistance: float32(p.ConnectionDistance),
		InfluenceRadius:    float32(cfg.Pointer.InfluenceRadius),
		RepulsionStrength:  float32(cfg.Pointer.Strength),
		RepulsionDamping:   float32(cfg.Pointer.Damping),
		FadeFrames:         int32(p.FadeFrames),
		MinLifespan:        int32(p.MinLifespan),
		MaxLifespan:        int32(p.MaxLifespan),
		ExpireOpacity:      float32(p.ExpireOpacity),
		ColorJitter:        float32(p.ColorJitter),
		Palette:            p.Palette,
		Trail: Tint{
			R: cfg.Trail.Color.R, G: cfg.Trail.Color.G, B: cfg.Trail.Color.B,
			Alpha: float32(cfg.Trail.Alpha),
		},
		Line: Tint{
			R: cfg.Lines.Color.R, G: cfg.Lines.Color.G, B: cfg.Lines.Color.B,
			Alpha: 1,
		},
		LineWidth:  float32(cfg.Lines.Width),
		AlphaScale: float32(cfg.Lines.AlphaScale),
	}
}
