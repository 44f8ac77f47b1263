package systems

import "math"

// clampFloat clamps a float32 value between min and max.
func clampFloat(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clamp01 clamps a float32 value to the [0, 1] range.
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// distance returns Euclidean distance between two points.
func distance(x1, y1, x2, y2 float32) float32 {
	dx := x1 - x2
	dy := y1 - y2
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// Wrap maps v onto [0, dim) with toroidal topology.
// A non-positive dim is degenerate and collapses to 0.
func Wrap(v, dim float32) float32 {
	if dim <= 0 {
		return 0
	}
	r := float32(math.Mod(float64(v), float64(dim)))
	if r < 0 {
		r += dim
	}
	// float32 rounding can land exactly on dim for tiny negative inputs
	if r >= dim {
		r = 0
	}
	return r
}

// FadeOpacity returns the opacity of a particle at the given age.
// Opacity ramps up over the first fade frames, holds at 1, then ramps down
// over the final fade frames. Overlapping windows never reach 1.
func FadeOpacity(age, lifespan, fade int32) float32 {
	if fade < 1 {
		fade = 1
	}
	in := float32(age) / float32(fade)
	out := float32(lifespan-age) / float32(fade)
	return clamp01(min(in, out, 1))
}

// RepulsionOffset returns the displacement pushing a particle at (px, py)
// directly away from a pointer at (mx, my). The magnitude is
// (radius-d)/radius * strength * damping * radius: zero at the boundary,
// growing linearly toward the pointer. This deliberately replaces scaling the
// raw offset (dx, dy) by the same factor, which peaks mid-radius and vanishes
// at d=0. A particle exactly under the pointer has no defined direction and
// is left alone.
func RepulsionOffset(px, py, mx, my, radius, strength, damping float32) (float32, float32) {
	if radius <= 0 {
		return 0, 0
	}
	dx := px - mx
	dy := py - my
	d := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if d >= radius || d == 0 {
		return 0, 0
	}
	force := (radius - d) / radius * strength
	mag := force * damping * radius
	return dx / d * mag, dy / d * mag
}

// ConnectionAlpha returns the alpha of the line joining two particles at
// distance d. Zero at or beyond maxDist.
func ConnectionAlpha(d, maxDist, opacityA, opacityB, scale float32) float32 {
	if maxDist <= 0 || d >= maxDist {
		return 0
	}
	return (1 - d/maxDist) * min(opacityA, opacityB) * scale
}
