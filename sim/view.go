package sim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/ledgeswing/ecs"
)

// PlayerView is a read-only copy of the player state.
type PlayerView struct {
	Position        mgl32.Vec3
	Velocity        mgl32.Vec3
	State           SwingState
	Attached        bool
	Swinging        bool
	AttachedLedge   LedgeID
	HasLedge        bool
	AttachPoint     mgl32.Vec2
	ClosestDistance float32
}

// LedgeView is a read-only copy of one ledge.
type LedgeView struct {
	ID       LedgeID
	Position mgl32.Vec3
	Distance float32
	Attached bool
}

// View is everything the presentation layer reads for one frame.
type View struct {
	HasPlayer bool
	Player    PlayerView
	Ledges    []LedgeView
	Pipes     []Pipe
	Rope      Rope
	Camera    mgl32.Vec3
	Contacts  int
}

// Snapshot copies the scene into a View.
func (sc *Scene) Snapshot() View {
	var v View
	if sc == nil {
		return v
	}
	if p := sc.Player; p != nil {
		v.HasPlayer = true
		v.Player = PlayerView{
			Position:        p.Position,
			Velocity:        p.Velocity,
			State:           p.State,
			Attached:        p.Attached,
			Swinging:        p.Swinging,
			AttachPoint:     p.AttachPoint,
			ClosestDistance: p.ClosestDistance,
		}
		if l, ok := sc.Ledge(p.AttachedLedge); ok {
			v.Player.AttachedLedge = l.ID
			v.Player.HasLedge = true
		}
	}
	v.Ledges = make([]LedgeView, 0, sc.Ledges.Len())
	sc.Ledges.Each(func(e ecs.Entity, l *Ledge) bool {
		v.Ledges = append(v.Ledges, LedgeView{
			ID:       l.ID,
			Position: l.Position,
			Distance: l.DistanceFromPlayer,
			Attached: sc.Player != nil && sc.Player.AttachedLedge == e,
		})
		return true
	})
	v.Pipes = make([]Pipe, 0, sc.Pipes.Len())
	sc.Pipes.Each(func(_ ecs.Entity, p *Pipe) bool {
		v.Pipes = append(v.Pipes, *p)
		return true
	})
	if sc.Rope != nil {
		v.Rope = *sc.Rope
	}
	if sc.Camera != nil {
		v.Camera = sc.Camera.Position
	}
	v.Contacts = sc.Contacts
	return v
}
