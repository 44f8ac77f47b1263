// Package components defines ECS components for the particle field.
package components

// Position represents a particle's canvas position.
type Position struct {
	X float32 `inspect:"label,fmt:%.1f"`
	Y float32 `inspect:"label,fmt:%.1f"`
}

// Velocity represents a particle's per-frame displacement.
// Fixed at creation.
type Velocity struct {
	X float32 `inspect:"label,fmt:%.3f"`
	Y float32 `inspect:"label,fmt:%.3f"`
}

// Appearance holds the fixed visual traits of a particle.
type Appearance struct {
	Radius float32 `inspect:"bar,max:3"`
	R      uint8
	G      uint8
	B      uint8
}

// Life tracks a particle's age and derived opacity.
type Life struct {
	Age      int32   `inspect:"label,fmt:%d frames"` // Frames since spawn
	Lifespan int32   `inspect:"label,fmt:%d frames"` // Frames until expiry
	Opacity  float32 `inspect:"bar"`                 // Derived from Age and Lifespan each frame
}

// Expired reports whether the particle has reached the end of its life
// or faded to the given opacity floor.
func (l *Life) Expired(minOpacity float32) bool {
	return l.Age >= l.Lifespan || l.Opacity <= minOpacity
}

// Remaining returns the frames left before the particle expires by age.
func (l *Life) Remaining() int32 {
	if l.Age >= l.Lifespan {
		return 0
	}
	return l.Lifespan - l.Age
}
