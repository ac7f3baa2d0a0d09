package sim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/ledgeswing/common"
)

// PhysicsSystem integrates the player with explicit Euler.
//
// Free fall: gravity, then position. Swinging: the velocity is overwritten by
// the pendulum tangent, damped, then used to move the player.
type PhysicsSystem struct {
	tuning *Tuning
}

func NewPhysicsSystem(t *Tuning) *PhysicsSystem {
	return &PhysicsSystem{tuning: t}
}

func (ps *PhysicsSystem) Update(s *Scene, f Frame) {
	if s == nil || s.Player == nil || ps.tuning == nil {
		return
	}
	p := s.Player
	dt := f.Dt
	if !common.Finite(dt) || dt < 0 {
		dt = 0
	}

	if !p.Attached {
		p.Velocity[1] += ps.tuning.Gravity * dt
	}

	if p.Swinging && p.Attached {
		p.Velocity = SwingVelocity(p, ps.tuning.SwingSpeed)
		p.Velocity = p.Velocity.Mul(ps.tuning.Damping)
	}

	if !common.FiniteVec3(p.Velocity) {
		p.Velocity = mgl32.Vec3{}
	}
	p.Velocity[2] = 0

	p.Position = p.Position.Add(p.Velocity.Mul(dt))
	p.Position[2] = 0
}

// SwingVelocity is the kinematic pendulum velocity: the tangent of the line
// from the player to the attach point, scaled to speed. When the player sits
// on the attach point the previous heading is kept; with no heading at all the
// result is zero.
func SwingVelocity(p *Player, speed float32) mgl32.Vec3 {
	dir, ok := common.Normalize2D(p.AttachTarget().Sub(p.Position))
	if !ok {
		heading, ok := common.Normalize2D(p.Velocity)
		if !ok {
			return mgl32.Vec3{}
		}
		return heading.Mul(speed)
	}
	sign := p.SwingSign
	if sign == 0 {
		sign = 1
	}
	return common.Perpendicular(dir).Mul(sign * speed)
}
