package sim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/ledgeswing/common"
)

// Rope is the segment from the player to the attach point. It is derived
// state and never authoritative.
type Rope struct {
	Start    mgl32.Vec3
	End      mgl32.Vec3
	Midpoint mgl32.Vec3
	// Angle is in radians, rotated a quarter turn so a sprite drawn along
	// its height follows the segment.
	Angle   float32
	Length  float32
	Visible bool
	Reach   float32
}

// DeriveRope computes the rope for p extended reach of the way to its attach
// point.
func DeriveRope(p *Player, reach float32) Rope {
	if p == nil {
		return Rope{}
	}
	reach = common.Clamp01(reach)
	start := p.Position
	end := p.AttachTarget()
	if reach < 1 {
		end = common.LerpVec3(start, end, reach)
	}
	delta := end.Sub(start)
	return Rope{
		Start:    start,
		End:      end,
		Midpoint: start.Add(end).Mul(0.5),
		Angle:    math32.Atan2(delta.Y(), delta.X()) + math32.Pi/2,
		Length:   math32.Hypot(delta.X(), delta.Y()),
		Visible:  p.Attached,
		Reach:    reach,
	}
}

// RopeSystem rewrites the scene rope from the settled player state.
type RopeSystem struct{}

func NewRopeSystem() *RopeSystem { return &RopeSystem{} }

func (rs *RopeSystem) Update(s *Scene, f Frame) {
	if s == nil || s.Player == nil || s.Rope == nil {
		return
	}
	*s.Rope = DeriveRope(s.Player, s.Player.Ease.Reach())
}
