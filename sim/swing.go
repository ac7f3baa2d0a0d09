package sim

import (
	"github.com/milk9111/ledgeswing/common"
)

// SwingSystem drives Detached <-> Swinging from the grab input.
type SwingSystem struct {
	tuning *Tuning
}

func NewSwingSystem(t *Tuning) *SwingSystem {
	return &SwingSystem{tuning: t}
}

func (ss *SwingSystem) Update(s *Scene, f Frame) {
	if s == nil || s.Player == nil {
		return
	}
	p := s.Player

	switch {
	case !f.Input.Grab:
		p.detach()
	case !p.Attached:
		hit, ok := s.Nearest()
		if !ok {
			return
		}
		ss.attach(p, hit)
	default:
		if l, ok := s.Ledge(p.AttachedLedge); ok {
			p.AttachPoint = l.Position.Vec2()
		}
		p.Ease.Advance(f.Dt)
	}
}

func (ss *SwingSystem) attach(p *Player, hit LedgeHit) {
	p.State = Attaching
	p.AttachedLedge = hit.Entity
	p.AttachPoint = hit.Position.Vec2()
	p.ClosestDistance = hit.Distance
	p.Attached = true
	p.Swinging = true

	var ease float32
	p.SwingSign = 1
	if ss.tuning != nil {
		p.Velocity = p.Velocity.Add(ss.tuning.AttachImpulse)
		ease = ss.tuning.AttachEase
		if ss.tuning.SwingFollowsImpulse {
			p.SwingSign = swingSign(p)
		}
	}
	p.Ease.Start(ease)
	p.State = Swinging
}

// swingSign orients the pendulum so it continues along the velocity the
// player has right after the attach impulse.
func swingSign(p *Player) float32 {
	dir, ok := common.Normalize2D(p.AttachTarget().Sub(p.Position))
	if !ok {
		return 1
	}
	if p.Velocity.Dot(common.Perpendicular(dir)) < 0 {
		return -1
	}
	return 1
}
