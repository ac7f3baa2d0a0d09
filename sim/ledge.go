package sim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/ledgeswing/common"
	"github.com/milk9111/ledgeswing/ecs"
)

// LedgeID is the bootstrap-assigned identifier of a ledge.
type LedgeID uint32

// Ledge is a static grapple point.
type Ledge struct {
	ID       LedgeID
	Position mgl32.Vec3
	// DistanceFromPlayer is scratch state rewritten every tick.
	DistanceFromPlayer float32
}

// LedgeHit is the result of a nearest-ledge query.
type LedgeHit struct {
	Entity   ecs.Entity
	ID       LedgeID
	Position mgl32.Vec3
	Distance float32
}

// NearestLedge returns the ledge closest to pos on the x,y plane. Ties go to
// the earliest inserted ledge. ok is false when there are no ledges.
func NearestLedge(pos mgl32.Vec3, ledges *ecs.Table[Ledge]) (hit LedgeHit, ok bool) {
	ledges.Each(func(e ecs.Entity, l *Ledge) bool {
		d := common.Distance2D(pos, l.Position)
		if !common.Finite(d) {
			return true
		}
		if !ok || d < hit.Distance {
			hit = LedgeHit{Entity: e, ID: l.ID, Position: l.Position, Distance: d}
			ok = true
		}
		return true
	})
	return hit, ok
}

// UpdateLedgeDistances rewrites every ledge's cached distance to pos.
func UpdateLedgeDistances(pos mgl32.Vec3, ledges *ecs.Table[Ledge]) {
	ledges.Each(func(_ ecs.Entity, l *Ledge) bool {
		l.DistanceFromPlayer = common.Distance2D(pos, l.Position)
		return true
	})
}

// LedgeScanSystem refreshes ledge distances and resolves the nearest ledge
// for the rest of the tick. While detached the nearest ledge also becomes the
// player's targeting preview.
type LedgeScanSystem struct{}

func NewLedgeScanSystem() *LedgeScanSystem { return &LedgeScanSystem{} }

func (ls *LedgeScanSystem) Update(s *Scene, f Frame) {
	if s == nil {
		return
	}
	s.nearest, s.hasNearest = LedgeHit{}, false

	p := s.Player
	if p == nil {
		return
	}

	UpdateLedgeDistances(p.Position, s.Ledges)

	hit, ok := NearestLedge(p.Position, s.Ledges)
	if !ok {
		return
	}
	s.nearest, s.hasNearest = hit, true

	if !p.Attached {
		p.AttachPoint = hit.Position.Vec2()
		p.ClosestDistance = hit.Distance
	}
}
