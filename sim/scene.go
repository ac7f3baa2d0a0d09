package sim

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/ledgeswing/common"
	"github.com/milk9111/ledgeswing/ecs"
)

var (
	ErrDuplicateLedgeID = errors.New("sim: duplicate ledge id")
	ErrNonFinite        = errors.New("sim: non-finite value")
	ErrInvariant        = errors.New("sim: invariant violated")
)

// LedgeSpawn is a bootstrap record for one ledge.
type LedgeSpawn struct {
	ID       LedgeID
	Position mgl32.Vec3
}

// Bootstrap is the initial layout handed to NewScene by the outer layer.
type Bootstrap struct {
	PlayerStart mgl32.Vec3
	CameraStart mgl32.Vec3
	Ledges      []LedgeSpawn
	Pipes       []Pipe
}

// Scene is every live entity of a session. Player, Rope and Camera are
// unique by construction; they are pointers so a stage can find them absent.
type Scene struct {
	Player *Player
	Rope   *Rope
	Camera *Camera

	Ledges *ecs.Table[Ledge]
	Pipes  *ecs.Table[Pipe]

	Events   ecs.EventQueue[ContactEvent]
	Contacts int

	registry ecs.Registry
	ledgeIDs map[LedgeID]ecs.Entity

	nearest    LedgeHit
	hasNearest bool
}

// NewScene validates b and builds a scene from it.
func NewScene(b Bootstrap, follow mgl32.Vec2) (*Scene, error) {
	if !common.FiniteVec3(b.PlayerStart) {
		return nil, fmt.Errorf("%w: player start %v", ErrNonFinite, b.PlayerStart)
	}
	if !common.FiniteVec3(b.CameraStart) {
		return nil, fmt.Errorf("%w: camera start %v", ErrNonFinite, b.CameraStart)
	}

	s := &Scene{
		Player:   newPlayer(b.PlayerStart),
		Rope:     &Rope{Reach: 1},
		Camera:   &Camera{Position: b.CameraStart, Follow: follow},
		Ledges:   ecs.NewTable[Ledge](),
		Pipes:    ecs.NewTable[Pipe](),
		ledgeIDs: make(map[LedgeID]ecs.Entity, len(b.Ledges)),
	}
	s.Camera.Position[2] = 0

	for i, spawn := range b.Ledges {
		if _, err := s.AddLedge(spawn); err != nil {
			return nil, fmt.Errorf("ledge %d: %w", i, err)
		}
	}
	for i, pipe := range b.Pipes {
		if _, err := s.AddPipe(pipe); err != nil {
			return nil, fmt.Errorf("pipe %d: %w", i, err)
		}
	}
	return s, nil
}

// AddLedge inserts a ledge after the existing ones.
func (s *Scene) AddLedge(spawn LedgeSpawn) (ecs.Entity, error) {
	if _, exists := s.ledgeIDs[spawn.ID]; exists {
		return 0, fmt.Errorf("%w: %d", ErrDuplicateLedgeID, spawn.ID)
	}
	if !common.FiniteVec3(spawn.Position) {
		return 0, fmt.Errorf("%w: ledge %d position %v", ErrNonFinite, spawn.ID, spawn.Position)
	}
	pos := spawn.Position
	pos[2] = 0
	e := s.registry.Create()
	s.Ledges.Insert(e, Ledge{ID: spawn.ID, Position: pos})
	s.ledgeIDs[spawn.ID] = e
	return e, nil
}

// RemoveLedge destroys the ledge with the given id. A player attached to it
// keeps swinging toward the last known attach point.
func (s *Scene) RemoveLedge(id LedgeID) bool {
	e, ok := s.ledgeIDs[id]
	if !ok {
		return false
	}
	delete(s.ledgeIDs, id)
	s.Ledges.Remove(e)
	s.registry.Destroy(e)
	return true
}

// AddPipe inserts a static pipe.
func (s *Scene) AddPipe(p Pipe) (ecs.Entity, error) {
	if !common.FiniteVec3(p.Position) || !common.Finite(p.Width) || !common.Finite(p.Height) {
		return 0, fmt.Errorf("%w: pipe %+v", ErrNonFinite, p)
	}
	p.Position[2] = 0
	e := s.registry.Create()
	s.Pipes.Insert(e, p)
	return e, nil
}

// Ledge resolves a ledge handle. Stale or zero handles miss.
func (s *Scene) Ledge(e ecs.Entity) (*Ledge, bool) {
	if s == nil {
		return nil, false
	}
	return s.Ledges.Get(e)
}

// LedgeByID resolves a bootstrap id to its handle and ledge.
func (s *Scene) LedgeByID(id LedgeID) (ecs.Entity, *Ledge, bool) {
	if s == nil {
		return 0, nil, false
	}
	e, ok := s.ledgeIDs[id]
	if !ok {
		return 0, nil, false
	}
	l, ok := s.Ledges.Get(e)
	return e, l, ok
}

// Nearest is the ledge resolved by the scan stage of the current tick.
func (s *Scene) Nearest() (LedgeHit, bool) {
	if s == nil {
		return LedgeHit{}, false
	}
	return s.nearest, s.hasNearest
}

// CheckInvariants reports the first violated scene invariant.
func (s *Scene) CheckInvariants() error {
	if s == nil {
		return nil
	}
	if p := s.Player; p != nil {
		if p.Swinging && !p.Attached {
			return fmt.Errorf("%w: swinging while detached", ErrInvariant)
		}
		if !p.Attached && p.AttachedLedge.Valid() {
			return fmt.Errorf("%w: detached player references ledge %v", ErrInvariant, p.AttachedLedge)
		}
		if !common.FiniteVec3(p.Position) || !common.FiniteVec3(p.Velocity) {
			return fmt.Errorf("%w: player state pos=%v vel=%v", ErrInvariant, p.Position, p.Velocity)
		}
	}
	var err error
	s.Ledges.Each(func(_ ecs.Entity, l *Ledge) bool {
		if !common.Finite(l.DistanceFromPlayer) || l.DistanceFromPlayer < 0 {
			err = fmt.Errorf("%w: ledge %d distance %v", ErrInvariant, l.ID, l.DistanceFromPlayer)
			return false
		}
		return true
	})
	return err
}
