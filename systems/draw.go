package systems

// Tint is an RGB colour with a float alpha in [0, 1].
type Tint struct {
	R, G, B uint8
	Alpha   float32
}

// DrawTarget is the surface a ParticleField renders onto.
type DrawTarget interface {
	FillRect(x, y, w, h float32, c Tint)
	FillCircle(x, y, radius float32, c Tint)
	StrokeLine(x1, y1, x2, y2, width float32, c Tint)
}

// Pointer is a pointer sample for one frame. Present is false when the
// pointer has left the tracked surface.
type Pointer struct {
	X, Y    float32
	Present bool
}

// NoPointer is the absent pointer sample.
var NoPointer = Pointer{}

// PointerAt returns a present pointer sample at (x, y).
func PointerAt(x, y float32) Pointer {
	return Pointer{X: x, Y: y, Present: true}
}
