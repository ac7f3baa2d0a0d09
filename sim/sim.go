// Package sim is the ledge-swing simulation core. It owns the scene state and
// advances it one tick at a time; it never reads the wall clock, polls input
// or draws.
package sim

import (
	"fmt"

	"github.com/milk9111/ledgeswing/ecs"
)

// Sim wires a scene to the ordered tick pipeline.
type Sim struct {
	scene     *Scene
	tuning    *Tuning
	clock     *Clock
	collision *CollisionSystem
	scheduler *Scheduler
	ticks     uint64
}

// New validates t, builds the scene from b and returns a ready simulation.
func New(b Bootstrap, t Tuning) (*Sim, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	scene, err := NewScene(b, t.CameraFollow)
	if err != nil {
		return nil, fmt.Errorf("sim: build scene: %w", err)
	}

	tuning := t
	s := &Sim{
		scene:  scene,
		tuning: &tuning,
		clock:  &Clock{Step: t.FixedStep, MaxSubsteps: t.MaxSubsteps},
	}
	s.buildScheduler()
	return s, nil
}

func (s *Sim) buildScheduler() {
	s.collision = NewCollisionSystem(s.tuning)
	s.scheduler = NewScheduler(
		NewLedgeScanSystem(),
		NewSwingSystem(s.tuning),
		NewPhysicsSystem(s.tuning),
		NewRopeSystem(),
		NewCameraSystem(),
		s.collision,
	)
}

// Tick runs one full tick with the given timestep.
func (s *Sim) Tick(in Input, dt float32) {
	if s == nil {
		return
	}
	s.scheduler.Update(s.scene, Frame{Input: in, Dt: dt})
	s.ticks++
}

// Advance spends elapsed wall-clock seconds through the clock and returns
// how many ticks ran.
func (s *Sim) Advance(in Input, elapsed float32) int {
	if s == nil {
		return 0
	}
	return s.clock.Advance(elapsed, func(dt float32) { s.Tick(in, dt) })
}

// SetTuning swaps the constants in place. The scene is kept.
func (s *Sim) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	*s.tuning = t
	s.clock.Step = t.FixedStep
	s.clock.MaxSubsteps = t.MaxSubsteps
	if s.scene.Camera != nil {
		s.scene.Camera.Follow = t.CameraFollow
	}
	return nil
}

// Reset rebuilds the scene from b. The previous scene is discarded only when
// b is valid.
func (s *Sim) Reset(b Bootstrap) error {
	scene, err := NewScene(b, s.tuning.CameraFollow)
	if err != nil {
		return fmt.Errorf("sim: reset scene: %w", err)
	}
	s.scene = scene
	s.clock.Reset()
	s.buildScheduler()
	return nil
}

func (s *Sim) Scene() *Scene { return s.scene }

func (s *Sim) Tuning() Tuning { return *s.tuning }

func (s *Sim) Clock() *Clock { return s.clock }

func (s *Sim) Ticks() uint64 { return s.ticks }

// DrainContacts returns the pipe contacts reported since the last drain.
func (s *Sim) DrainContacts() []ContactEvent {
	if s == nil {
		return nil
	}
	return s.scene.Events.Drain()
}

// Touching reports whether the player currently overlaps pipe e.
func (s *Sim) Touching(e ecs.Entity) bool {
	if s == nil {
		return false
	}
	return s.collision.Touching(e)
}
