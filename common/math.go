package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// LerpVec3 interpolates component-wise between a and b.
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{Lerp(a[0], b[0], t), Lerp(a[1], b[1], t), Lerp(a[2], b[2], t)}
}

// Clamp01 limits t to [0,1].
func Clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Distance2D is the Euclidean distance between a and b ignoring z.
func Distance2D(a, b mgl32.Vec3) float32 {
	return math32.Hypot(b.X()-a.X(), b.Y()-a.Y())
}

// Finite reports whether f is neither NaN nor infinite.
func Finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// FiniteVec3 reports whether every component of v is finite.
func FiniteVec3(v mgl32.Vec3) bool {
	return Finite(v[0]) && Finite(v[1]) && Finite(v[2])
}

// Normalize2D returns the unit x,y direction of v with z dropped. ok is false
// when v has no usable length.
func Normalize2D(v mgl32.Vec3) (mgl32.Vec3, bool) {
	l := math32.Hypot(v.X(), v.Y())
	if !Finite(l) || l <= 1e-6 {
		return mgl32.Vec3{}, false
	}
	return mgl32.Vec3{v.X() / l, v.Y() / l, 0}, true
}

// Perpendicular returns dir × ẑ, the clockwise 2D perpendicular of dir.
func Perpendicular(dir mgl32.Vec3) mgl32.Vec3 {
	return dir.Cross(mgl32.Vec3{0, 0, 1})
}

// EaseInOutCubic maps linear progress t in [0,1] onto a cubic Bezier ease
// with control points at 0 and 1.
func EaseInOutCubic(t float32) float32 {
	t = Clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}
