package sim

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ledgeswing/ecs"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypePipe
)

// sensorStep is the chipmunk step used for contact detection. The sensor
// body never moves on its own, so the value only has to be non-zero.
const sensorStep = 1.0 / 60.0

// ContactEvent is pushed when the player starts touching a pipe.
type ContactEvent struct {
	Entity ecs.Entity
	Pipe   Pipe
}

// CollisionSystem mirrors the pipes into a chipmunk space and reports when
// the player circle begins overlapping one. It never alters player motion.
type CollisionSystem struct {
	tuning *Tuning

	space         *cp.Space
	handlersReady bool

	body   *cp.Body
	shape  *cp.Shape
	radius float64

	pipeShapes map[*cp.Shape]ecs.Entity
	pipes      map[ecs.Entity]*cp.Shape

	touching map[ecs.Entity]struct{}
	previous map[ecs.Entity]struct{}
}

func NewCollisionSystem(t *Tuning) *CollisionSystem {
	return &CollisionSystem{
		tuning:     t,
		pipeShapes: make(map[*cp.Shape]ecs.Entity),
		pipes:      make(map[ecs.Entity]*cp.Shape),
		touching:   make(map[ecs.Entity]struct{}),
		previous:   make(map[ecs.Entity]struct{}),
	}
}

func (cs *CollisionSystem) Update(s *Scene, f Frame) {
	if cs == nil || s == nil || s.Player == nil || cs.tuning == nil {
		return
	}
	if cs.tuning.PlayerRadius <= 0 {
		cs.removePlayer()
		return
	}

	if cs.space == nil {
		cs.space = cp.NewSpace()
		cs.space.SetGravity(cp.Vector{})
		cs.handlersReady = false
	}
	cs.ensureHandlers()
	cs.syncPipes(s)
	cs.syncPlayer(s.Player)

	clear(cs.touching)
	cs.space.Step(sensorStep)

	for _, e := range s.Pipes.Entities() {
		if _, now := cs.touching[e]; !now {
			continue
		}
		if _, before := cs.previous[e]; before {
			continue
		}
		pipe, ok := s.Pipes.Get(e)
		if !ok {
			continue
		}
		s.Events.Push(ContactEvent{Entity: e, Pipe: *pipe})
		s.Contacts++
	}

	cs.previous, cs.touching = cs.touching, cs.previous
}

// Touching reports whether the player overlapped the pipe on the last step.
func (cs *CollisionSystem) Touching(e ecs.Entity) bool {
	if cs == nil {
		return false
	}
	_, ok := cs.previous[e]
	return ok
}

func (cs *CollisionSystem) ensureHandlers() {
	if cs.handlersReady || cs.space == nil {
		return
	}

	handler := cs.space.NewCollisionHandler(collisionTypePlayer, collisionTypePipe)
	handler.UserData = cs
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*CollisionSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		pipe, ok := sys.pipeShapes[shapeA]
		if !ok {
			pipe, ok = sys.pipeShapes[shapeB]
			if !ok {
				return true
			}
		}
		sys.touching[pipe] = struct{}{}
		return true
	}

	cs.handlersReady = true
}

func (cs *CollisionSystem) syncPipes(s *Scene) {
	for e, shape := range cs.pipes {
		if s.Pipes.Has(e) {
			continue
		}
		cs.space.RemoveShape(shape)
		delete(cs.pipeShapes, shape)
		delete(cs.pipes, e)
		delete(cs.previous, e)
	}

	s.Pipes.Each(func(e ecs.Entity, p *Pipe) bool {
		if _, ok := cs.pipes[e]; ok {
			return true
		}
		w, h := p.Extent()
		x, y := float64(p.Position.X()), float64(p.Position.Y())
		hw, hh := float64(w)/2, float64(h)/2
		bb := cp.BB{L: x - hw, B: y - hh, R: x + hw, T: y + hh}
		shape := cp.NewBox2(cs.space.StaticBody, bb, 0)
		shape.SetCollisionType(collisionTypePipe)
		cs.space.AddShape(shape)
		cs.pipes[e] = shape
		cs.pipeShapes[shape] = e
		return true
	})
}

func (cs *CollisionSystem) syncPlayer(p *Player) {
	radius := float64(cs.tuning.PlayerRadius)
	if cs.body != nil && cs.radius != radius {
		cs.removePlayer()
	}
	if cs.body == nil {
		body := cp.NewBody(1, cp.MomentForCircle(1, 0, radius, cp.Vector{}))
		shape := cp.NewCircle(body, radius, cp.Vector{})
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypePlayer)
		cs.space.AddBody(body)
		cs.space.AddShape(shape)
		cs.body = body
		cs.shape = shape
		cs.radius = radius
	}
	cs.body.SetPosition(cp.Vector{X: float64(p.Position.X()), Y: float64(p.Position.Y())})
	cs.body.SetVelocity(0, 0)
}

func (cs *CollisionSystem) removePlayer() {
	if cs.body == nil || cs.space == nil {
		return
	}
	cs.space.RemoveShape(cs.shape)
	cs.space.RemoveBody(cs.body)
	cs.body = nil
	cs.shape = nil
	clear(cs.previous)
}
