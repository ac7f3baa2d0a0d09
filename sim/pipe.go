package sim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/ledgeswing/common"
)

// Pipe is a static obstacle; Top tells which half of a gap pair it is.
type Pipe struct {
	Top      bool
	Position mgl32.Vec3
	Width    float32
	Height   float32
}

// Extent returns the pipe size, falling back to the default footprint.
func (p Pipe) Extent() (w, h float32) {
	w, h = p.Width, p.Height
	if w <= 0 {
		w = common.PipeWidth * 2
	}
	if h <= 0 {
		h = common.PipeHeight
	}
	return w, h
}
