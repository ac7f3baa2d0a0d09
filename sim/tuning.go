package sim

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/ledgeswing/common"
)

var ErrInvalidTuning = errors.New("sim: invalid tuning")

// Tuning holds the simulation constants. All values are world units
// (pixels, y up) and seconds.
type Tuning struct {
	Gravity       float32
	Damping       float32
	SwingSpeed    float32
	AttachImpulse mgl32.Vec3
	CameraFollow  mgl32.Vec2

	// SwingFollowsImpulse picks the pendulum direction on attach so it keeps
	// the post-impulse velocity. Off, the player always swings along dir × ẑ.
	SwingFollowsImpulse bool

	// AttachEase is how long the rope takes to reach the ledge. 0 snaps.
	AttachEase float32

	// FixedStep switches the clock to fixed-timestep mode when > 0.
	FixedStep   float32
	MaxSubsteps int

	// PlayerRadius sizes the pipe contact sensor. 0 disables it.
	PlayerRadius float32
}

func DefaultTuning() Tuning {
	return Tuning{
		Gravity:       common.Gravity,
		Damping:       common.Damping,
		SwingSpeed:    common.SwingSpeed,
		AttachImpulse: mgl32.Vec3{common.AttachImpulse, 0, 0},
		CameraFollow:  mgl32.Vec2{common.CameraFollowX, common.CameraFollowY},
		MaxSubsteps:   5,
		PlayerRadius:  common.PlayerRadius,
	}
}

// Validate reports the first out-of-range field.
func (t Tuning) Validate() error {
	switch {
	case !common.Finite(t.Gravity):
		return fmt.Errorf("%w: gravity %v", ErrInvalidTuning, t.Gravity)
	case !(t.Damping > 0 && t.Damping < 1):
		return fmt.Errorf("%w: damping %v not in (0,1)", ErrInvalidTuning, t.Damping)
	case !common.Finite(t.SwingSpeed) || t.SwingSpeed < 0:
		return fmt.Errorf("%w: swing speed %v", ErrInvalidTuning, t.SwingSpeed)
	case !common.FiniteVec3(t.AttachImpulse):
		return fmt.Errorf("%w: attach impulse %v", ErrInvalidTuning, t.AttachImpulse)
	case !inUnit(t.CameraFollow.X()) || !inUnit(t.CameraFollow.Y()):
		return fmt.Errorf("%w: camera follow %v not in [0,1]", ErrInvalidTuning, t.CameraFollow)
	case !common.Finite(t.AttachEase) || t.AttachEase < 0:
		return fmt.Errorf("%w: attach ease %v", ErrInvalidTuning, t.AttachEase)
	case !common.Finite(t.FixedStep) || t.FixedStep < 0:
		return fmt.Errorf("%w: fixed step %v", ErrInvalidTuning, t.FixedStep)
	case t.MaxSubsteps < 0:
		return fmt.Errorf("%w: max substeps %d", ErrInvalidTuning, t.MaxSubsteps)
	case !common.Finite(t.PlayerRadius) || t.PlayerRadius < 0:
		return fmt.Errorf("%w: player radius %v", ErrInvalidTuning, t.PlayerRadius)
	}
	return nil
}

func inUnit(f float32) bool {
	return f >= 0 && f <= 1
}
