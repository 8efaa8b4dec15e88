package effects

import "fmt"

const (
	maxTiltDeg     = 6.0
	tiltScale      = 1.02
	magneticFactor = 0.25
)

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

type TiltResult struct {
	RotateX float64
	RotateY float64
	ShadowX float64
	ShadowY float64
	Scale   float64
}

// Tilt rotates a card toward the pointer, up to six degrees at the edges.
func Tilt(r Rect, px, py float64) TiltResult {
	if r.W <= 0 || r.H <= 0 {
		return Rest()
	}
	cx, cy := r.W/2, r.H/2
	x, y := px-r.X, py-r.Y

	rotX := ((y - cy) / cy) * -maxTiltDeg
	rotY := ((x - cx) / cx) * maxTiltDeg
	return TiltResult{
		RotateX: rotX,
		RotateY: rotY,
		ShadowX: -rotY * 2,
		ShadowY: rotX * 2,
		Scale:   tiltScale,
	}
}

func Rest() TiltResult {
	return TiltResult{Scale: 1}
}

func (t TiltResult) Transform() string {
	return fmt.Sprintf("perspective(1000px) rotateX(%gdeg) rotateY(%gdeg) scale3d(%g, %g, %g)",
		t.RotateX, t.RotateY, t.Scale, t.Scale, t.Scale)
}

// Magnetic pulls a button a quarter of the way toward the pointer.
func Magnetic(r Rect, px, py float64) (dx, dy float64) {
	x := px - r.X - r.W/2
	y := py - r.Y - r.H/2
	return x * magneticFactor, y * magneticFactor
}
