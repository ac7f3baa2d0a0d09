package sim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/ledgeswing/ecs"
)

// SwingState is the attachment state of the player.
type SwingState uint8

const (
	Detached SwingState = iota
	// Attaching only exists inside the tick that grabs a ledge.
	Attaching
	Swinging
)

func (s SwingState) String() string {
	switch s {
	case Detached:
		return "detached"
	case Attaching:
		return "attaching"
	case Swinging:
		return "swinging"
	}
	return "unknown"
}

// Player is the single controllable entity.
type Player struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3

	Attached bool
	Swinging bool
	State    SwingState

	// AttachedLedge is the zero handle whenever Attached is false.
	AttachedLedge ecs.Entity
	// AttachPoint caches the position of the ledge currently or most
	// recently targeted.
	AttachPoint     mgl32.Vec2
	ClosestDistance float32

	// SwingSign picks the pendulum direction (+1 or -1) at attach time.
	SwingSign float32
	Ease      AttachEase
}

func newPlayer(pos mgl32.Vec3) *Player {
	pos[2] = 0
	return &Player{
		Position:        pos,
		ClosestDistance: math32.MaxFloat32,
		SwingSign:       1,
	}
}

// AttachTarget returns the attach point lifted onto the z=0 plane.
func (p *Player) AttachTarget() mgl32.Vec3 {
	return p.AttachPoint.Vec3(0)
}

func (p *Player) detach() {
	p.Attached = false
	p.Swinging = false
	p.AttachedLedge = 0
	p.State = Detached
	p.Ease.Reset()
}
